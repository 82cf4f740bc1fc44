// dsademo runs a few of the containers and problems with sample inputs
// and prints the results for manual inspection.
package main

import (
	"fmt"
	"strings"

	"github.com/Be1newinner/dsa-go/algorithms/problems"
	"github.com/Be1newinner/dsa-go/algorithms/searching"
	"github.com/Be1newinner/dsa-go/containers/bst"
	"github.com/Be1newinner/dsa-go/containers/graph"
	"github.com/Be1newinner/dsa-go/containers/hashmap"
	"github.com/Be1newinner/dsa-go/containers/heap"
	"github.com/Be1newinner/dsa-go/utils"
)

func main() {
	utils.SetColorPrint(true)

	utils.LogInfo("heap sort")
	fmt.Println(heap.Sort([]int{10, 4, 20, 0, 2}))

	utils.LogInfo("bst inorder")
	tree := bst.New(21, 2, 4, 3, 5, 29, 11, 23)
	fmt.Println(tree.InOrder())
	fmt.Println("search 23:", tree.Search(23))

	utils.LogInfo("flight routes")
	routes := graph.New([]graph.Edge{
		{From: "Mumbai", To: "Paris"},
		{From: "Mumbai", To: "Dubai"},
		{From: "Paris", To: "Dubai"},
		{From: "Paris", To: "New York"},
		{From: "Dubai", To: "New York"},
		{From: "New York", To: "Toronto"},
	})
	for _, path := range routes.AllPaths("Mumbai", "New York") {
		fmt.Println(strings.Join(path, " -> "))
	}
	fmt.Println("shortest:", strings.Join(routes.ShortestPath("Mumbai", "New York"), " -> "))

	utils.LogInfo("hash map round trip")
	m := hashmap.New[int](16)
	for i := 0; i < 5; i++ {
		m.Put(fmt.Sprintf("key_%d", i), i)
	}
	fmt.Println("size after put:", m.Len())
	for i := 0; i < 5; i++ {
		m.Remove(fmt.Sprintf("key_%d", i))
	}
	fmt.Println("size after remove:", m.Len())

	utils.LogInfo("binary search")
	fmt.Println(searching.Binary([]int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, 17))

	utils.LogInfo("problems")
	fmt.Println("max window sum:", problems.MaxWindowSum([]int{2, 1, 5, 1, 3, 2}, 3))
	fmt.Println("roman LXVII:", problems.RomanToInt("LXVII"))
	fmt.Println("valid parens:", problems.ValidParentheses("({})([])[]"))
}
