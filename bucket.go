package smear

import (
	"math"
	"math/bits"
)

// CellID packs a grid cell into one 64-bit identity, x in the high half
// and y in the low half. Neighbouring cells share most of their low bits,
// which is what Smear is for.
func CellID(x, y int32) int64 {
	return int64(x)<<32 | int64(uint32(y))
}

// BucketIndex smears hashCode and reduces it into [0, capacity).
// Power-of-two capacities are masked, others use modulo.
func BucketIndex(hashCode int64, capacity int) int {
	if capacity <= 0 {
		return 0
	}
	h := uint32(Smear(hashCode))
	if capacity&(capacity-1) == 0 {
		return int(h & uint32(capacity-1))
	}
	if uint64(capacity) > math.MaxUint32 {
		return int(h)
	}
	return int(h % uint32(capacity))
}

// NextPowerOfTwo returns the smallest power of two >= n.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
