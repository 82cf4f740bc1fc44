// Package graph provides an unweighted directed graph backed by an
// adjacency list, with exhaustive simple-path enumeration.
package graph

import (
	"sort"

	"golang.org/x/exp/maps"
)

// Edge is a directed connection between two labelled nodes.
type Edge struct {
	From string
	To   string
}

// Graph maps each node label to its ordered adjacency slice. Insertion
// order of edges is preserved per node.
type Graph struct {
	adj map[string][]string
}

func New(edges []Edge) *Graph {
	g := &Graph{adj: make(map[string][]string)}
	for _, e := range edges {
		g.adj[e.From] = append(g.adj[e.From], e.To)
	}
	return g
}

// Neighbors returns the adjacency slice of label, nil if unknown.
func (g *Graph) Neighbors(label string) []string {
	return g.adj[label]
}

// Labels returns all source labels in sorted order.
func (g *Graph) Labels() []string {
	labels := maps.Keys(g.adj)
	sort.Strings(labels)
	return labels
}

// AllPaths enumerates every simple path from start to end by depth-first
// recursion with path-so-far accumulation. Nodes already on the current
// path are skipped, so enumeration terminates on cyclic graphs. Returns
// an empty result when start is absent or end unreachable.
func (g *Graph) AllPaths(start, end string) [][]string {
	onPath := map[string]bool{}
	return g.allPaths(start, end, nil, onPath)
}

func (g *Graph) allPaths(start, end string, path []string, onPath map[string]bool) [][]string {
	path = append(path, start)

	if start == end {
		found := make([]string, len(path))
		copy(found, path)
		return [][]string{found}
	}

	var paths [][]string
	onPath[start] = true
	for _, next := range g.adj[start] {
		if onPath[next] {
			continue
		}
		paths = append(paths, g.allPaths(next, end, path, onPath)...)
	}
	onPath[start] = false
	return paths
}

// ShortestPath returns the minimum-length path among AllPaths(start, end),
// nil when none exists or start == end. This is a selection over the full
// enumeration, not Dijkstra, and is only suitable for small graphs. Ties
// keep the first path enumerated.
func (g *Graph) ShortestPath(start, end string) []string {
	if start == end {
		return nil
	}
	var shortest []string
	for _, path := range g.AllPaths(start, end) {
		if shortest == nil || len(path) < len(shortest) {
			shortest = path
		}
	}
	return shortest
}
