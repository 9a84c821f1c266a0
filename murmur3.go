package smear

import (
	"encoding/binary"
)

// MurmurHash3, 32-bit variant
// refer:
//   - https://en.wikipedia.org/wiki/MurmurHash

const (
	murmurC1 = 0xcc9e2d51
	murmurC2 = 0x1b873593
)

func murmur32Scramble(k uint32) uint32 {
	k *= murmurC1
	k = (k << 15) | (k >> 17)
	k *= murmurC2
	return k
}

func murmur32Round(h, k uint32) uint32 {
	h ^= murmur32Scramble(k)
	h = (h << 13) | (h >> 19)
	return h*5 + 0xe6546b64
}

func murmur32Finalize(h uint32, length int) uint32 {
	h ^= uint32(length)
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

// Murmur332 murmur hash of a byte slice
func Murmur332(key []byte, seed uint32) uint32 {
	h := seed
	n := len(key)
	for ; len(key) >= 4; key = key[4:] {
		h = murmur32Round(h, binary.LittleEndian.Uint32(key))
	}
	var k uint32
	for i := len(key); i > 0; i-- {
		k <<= 8
		k |= uint32(key[i-1])
	}
	if len(key) > 0 {
		h ^= murmur32Scramble(k)
	}
	return murmur32Finalize(h, n)
}

// Murmur3Int64 hashes the 8 little-endian bytes of id, same result as
// Murmur332 over binary.LittleEndian.PutUint64(id) without the buffer.
func Murmur3Int64(id int64, seed uint32) uint32 {
	v := uint64(id)
	h := murmur32Round(seed, uint32(v))
	h = murmur32Round(h, uint32(v>>32))
	return murmur32Finalize(h, 8)
}
