package hashkit

const (
	murmur64Mul  uint64 = 0xc6a4a7935bd1e995
	murmur64Rot         = 47
	murmur64Seed uint64 = 19780211
)

// Murmur64 is MurmurHash64A over data with a fixed seed.
func Murmur64(data []byte) uint64 {
	h := murmur64Seed ^ (uint64(len(data)) * murmur64Mul)

	for ; len(data) >= 8; data = data[8:] {
		k := uint64(data[0]) | uint64(data[1])<<8 | uint64(data[2])<<16 |
			uint64(data[3])<<24 | uint64(data[4])<<32 | uint64(data[5])<<40 |
			uint64(data[6])<<48 | uint64(data[7])<<56
		k *= murmur64Mul
		k ^= k >> murmur64Rot
		k *= murmur64Mul

		h *= murmur64Mul
		h ^= k
	}

	switch len(data) {
	case 7:
		h ^= uint64(data[6]) << 48
		fallthrough
	case 6:
		h ^= uint64(data[5]) << 40
		fallthrough
	case 5:
		h ^= uint64(data[4]) << 32
		fallthrough
	case 4:
		h ^= uint64(data[3]) << 24
		fallthrough
	case 3:
		h ^= uint64(data[2]) << 16
		fallthrough
	case 2:
		h ^= uint64(data[1]) << 8
		fallthrough
	case 1:
		h ^= uint64(data[0])
		h *= murmur64Mul
	}

	h ^= h >> murmur64Rot
	h *= murmur64Mul
	h ^= h >> murmur64Rot
	return h
}
