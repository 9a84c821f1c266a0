package smear

// Smear folds a 64-bit hash code into 32 bits by XOR-ing its high half
// into its low half, so that keys differing only in their upper bits
// still land in different buckets once the caller masks the result.
//
// The shift is done on the unsigned value, the result is the same as
// OpenJDK's Long.hashCode.
func Smear(hashCode int64) int32 {
	h := uint64(hashCode)
	return int32(h ^ (h >> 32))
}
