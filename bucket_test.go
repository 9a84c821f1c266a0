package smear

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellID(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(int64(0), CellID(0, 0))
	assert.Equal(int64(1), CellID(0, 1))
	assert.Equal(int64(0x100000000), CellID(1, 0))
	assert.Equal(int64(0x1FFFFFFFF), CellID(1, -1))
	assert.Equal(int64(-1), CellID(-1, -1))

	// the fold of a cell id is x ^ y
	assert.Equal(int32(3^5), Smear(CellID(3, 5)))
	assert.Equal(int32(0), Smear(CellID(7, 7)))
}

func TestBucketIndex(t *testing.T) {
	tests := []struct {
		name     string
		hashCode int64
		capacity int
		want     int
	}{
		{name: "zero capacity", hashCode: 12345, capacity: 0, want: 0},
		{name: "negative capacity", hashCode: 12345, capacity: -8, want: 0},
		{name: "one bucket", hashCode: 12345, capacity: 1, want: 0},
		{name: "mask", hashCode: 0x100000003, capacity: 16, want: 2},
		{name: "mask negative input", hashCode: -1, capacity: 16, want: 0},
		{name: "mask high only", hashCode: 0x700000000, capacity: 8, want: 7},
		{name: "modulo", hashCode: 10, capacity: 7, want: 3},
		{name: "modulo uses unsigned fold", hashCode: 0xFFFFFFFF, capacity: 10, want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equalf(t, tt.want, BucketIndex(tt.hashCode, tt.capacity), "BucketIndex(%#x, %d)", tt.hashCode, tt.capacity)
		})
	}
}

func TestBucketIndexSpreadsSequentialHighBits(t *testing.T) {
	assert := assert.New(t)

	// Ids that only differ in their upper half would all land in bucket
	// 0 under a plain mask of the low bits.
	const capacity = 64
	counts := make([]int, capacity)
	for i := int64(0); i < capacity*4; i++ {
		idx := BucketIndex(i<<32, capacity)
		assert.True(idx >= 0 && idx < capacity)
		counts[idx]++
	}
	for _, c := range counts {
		assert.Equal(4, c)
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(1, NextPowerOfTwo(-5))
	assert.Equal(1, NextPowerOfTwo(0))
	assert.Equal(1, NextPowerOfTwo(1))
	assert.Equal(2, NextPowerOfTwo(2))
	assert.Equal(4, NextPowerOfTwo(3))
	assert.Equal(1024, NextPowerOfTwo(1000))
	assert.Equal(1024, NextPowerOfTwo(1024))
	assert.Equal(2048, NextPowerOfTwo(1025))
}
