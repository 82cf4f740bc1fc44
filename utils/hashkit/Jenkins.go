// Package hashkit provides small non-cryptographic hash functions used by
// the hash-based containers.
package hashkit

import "hash"

// sum32 is Bob Jenkins' one-at-a-time hash as an incremental hash.Hash32.
type sum32 uint32

func (s *sum32) BlockSize() int { return 1 }
func (s *sum32) Reset()         { *s = 0 }
func (s *sum32) Size() int      { return 4 }

func (s *sum32) Sum(in []byte) []byte {
	v := uint32(*s)
	return append(in, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func (s *sum32) Sum32() uint32 { return uint32(*s) }

func (s *sum32) Write(data []byte) (int, error) {
	h := uint32(*s)
	for _, b := range data {
		h = mix(h, b)
	}
	*s = sum32(finalize(h))
	return len(data), nil
}

func mix(h uint32, b byte) uint32 {
	h += uint32(b)
	h += h << 10
	h ^= h >> 6
	return h
}

func finalize(h uint32) uint32 {
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return h
}

func NewJenkins32() hash.Hash32 {
	var s sum32
	return &s
}

// Jenkins is the one-shot form of the one-at-a-time hash.
func Jenkins(data []byte) uint32 {
	var h uint32
	for _, b := range data {
		h = mix(h, b)
	}
	return finalize(h)
}
