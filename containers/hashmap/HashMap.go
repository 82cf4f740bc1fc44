// Package hashmap provides a string-keyed hash table with a fixed bucket
// count and chaining for collision resolution.
package hashmap

import (
	"hash/fnv"

	"github.com/Be1newinner/dsa-go/utils/hashkit"

	"github.com/aviddiviner/go-murmur"
)

// HashFn maps a key to a 32-bit bucket hash.
type HashFn func([]byte) uint32

const murmur32Seed = 0x9747b28c

func JenkinsHash(v []byte) uint32 {
	return hashkit.Jenkins(v)
}

func FNVHash(v []byte) uint32 {
	h := fnv.New32a()
	h.Write(v)
	return h.Sum32()
}

func Murmur32Hash(v []byte) uint32 {
	h := murmur.New32(murmur32Seed)
	h.Write(v)
	return h.Sum32()
}

const DefaultBucketCount = 64

// entry is a chain node within a bucket.
type entry[V any] struct {
	key   string
	value V
	next  *entry[V]
}

// Map is a chaining hash map. The bucket count is fixed at construction,
// chains grow without bound.
type Map[V any] struct {
	buckets []*entry[V]
	hash    HashFn
	size    int
	pool    entryPool[V]
}

func New[V any](bucketCount int) *Map[V] {
	return NewWithHash[V](bucketCount, JenkinsHash)
}

func NewWithHash[V any](bucketCount int, hash HashFn) *Map[V] {
	if bucketCount <= 0 {
		bucketCount = DefaultBucketCount
	}
	if hash == nil {
		hash = JenkinsHash
	}
	return &Map[V]{
		buckets: make([]*entry[V], bucketCount),
		hash:    hash,
	}
}

func (m *Map[V]) bucketFor(key string) int {
	return int(m.hash([]byte(key)) % uint32(len(m.buckets)))
}

// Put stores value under key, overwriting on key match, otherwise
// prepending a new chain entry.
func (m *Map[V]) Put(key string, value V) {
	idx := m.bucketFor(key)
	for curr := m.buckets[idx]; curr != nil; curr = curr.next {
		if curr.key == key {
			curr.value = value
			return
		}
	}
	e := m.pool.get()
	e.key = key
	e.value = value
	e.next = m.buckets[idx]
	m.buckets[idx] = e
	m.size++
}

// Get returns the value stored under key. Comparison is against the
// requested key, never the bucket index.
func (m *Map[V]) Get(key string) (V, bool) {
	for curr := m.buckets[m.bucketFor(key)]; curr != nil; curr = curr.next {
		if curr.key == key {
			return curr.value, true
		}
	}
	var zero V
	return zero, false
}

// Remove unlinks the entry stored under key and reports whether it was
// present.
func (m *Map[V]) Remove(key string) bool {
	idx := m.bucketFor(key)
	var prev *entry[V]
	for curr := m.buckets[idx]; curr != nil; curr = curr.next {
		if curr.key == key {
			if prev == nil {
				m.buckets[idx] = curr.next
			} else {
				prev.next = curr.next
			}
			m.pool.put(curr)
			m.size--
			return true
		}
		prev = curr
	}
	return false
}

func (m *Map[V]) Len() int {
	return m.size
}

// Keys returns all stored keys, bucket by bucket, in no particular order.
func (m *Map[V]) Keys() []string {
	out := make([]string, 0, m.size)
	for _, head := range m.buckets {
		for curr := head; curr != nil; curr = curr.next {
			out = append(out, curr.key)
		}
	}
	return out
}

// BucketCount returns the fixed number of buckets.
func (m *Map[V]) BucketCount() int {
	return len(m.buckets)
}

// emptyBuckets counts buckets with no chain, used by tests.
func (m *Map[V]) emptyBuckets() int {
	n := 0
	for _, head := range m.buckets {
		if head == nil {
			n++
		}
	}
	return n
}
