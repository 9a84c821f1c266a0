package smear

import (
	"fmt"
	"math"

	jsoniter "github.com/json-iterator/go"
)

// For an explanation of the math, visit
// https://en.wikipedia.org/wiki/Bloom_filter#Probability_of_false_positives.
// Indexes use double hashing (Kirsch-Mitzenmacher): h1 + i*h2, with h1
// the smeared id and h2 a murmur hash of the same id.

// maxBitArraySize caps a filter at 2^31 bits, 256MiB of words
const maxBitArraySize = math.MaxInt32

// IDFilter bloom filter over int64 identities.
// The zero value holds nothing; build one with NewIDFilter or UnPack.
type IDFilter struct {
	falsePositiveProb       float64
	bitArraySize, hashCount int
	numItems                int
	count                   int
	bit                     *BitSet
}

// NewIDFilter sizes a filter for numItems ids at the given false positive probability
func NewIDFilter(numItems int, falsePositiveProb float64) (*IDFilter, error) {
	if numItems <= 0 {
		return nil, fmt.Errorf("id filter num items must be positive, got: %d", numItems)
	}
	if falsePositiveProb <= 0 || falsePositiveProb >= 1 || math.IsNaN(falsePositiveProb) {
		return nil, fmt.Errorf("id filter false positive probability must be in (0, 1), got: %v", falsePositiveProb)
	}
	f := &IDFilter{
		falsePositiveProb: falsePositiveProb,
		numItems:          numItems,
	}
	size, err := calculateBitArraySize(numItems, falsePositiveProb)
	if err != nil {
		return nil, err
	}
	f.bitArraySize = size
	f.hashCount = calculateHashCount(f.bitArraySize, numItems)
	f.bit = NewBitSet(f.bitArraySize)
	return f, nil
}

func (f *IDFilter) Add(id int64) {
	if !f.ready() {
		return
	}
	h1, h2 := f.hashes(id)
	for i := 0; i < f.hashCount; i++ {
		f.bit.Set(f.index(h1, h2, i))
	}
	f.count++
}

// Check reports whether id may have been added. false is definite.
func (f *IDFilter) Check(id int64) bool {
	if !f.ready() {
		return false
	}
	h1, h2 := f.hashes(id)
	for i := 0; i < f.hashCount; i++ {
		if !f.bit.Has(f.index(h1, h2, i)) {
			return false
		}
	}
	return true
}

// Count number of Add calls
func (f *IDFilter) Count() int {
	return f.count
}

func (f *IDFilter) ready() bool {
	return f.bit != nil && f.hashCount > 0 && f.bitArraySize > 0
}

func (f *IDFilter) hashes(id int64) (uint64, uint64) {
	h1 := uint64(uint32(Smear(id)))
	h2 := uint64(Murmur3Int64(id, 0) | 1)
	return h1, h2
}

func (f *IDFilter) index(h1, h2 uint64, i int) int {
	return int((h1 + uint64(i)*h2) % uint64(f.bitArraySize))
}

func calculateBitArraySize(numItems int, probability float64) (int, error) {
	// m = -(n * lg(p)) / (lg(2)^2)
	m := -(float64(numItems) * math.Log(probability) / (math.Pow(math.Log(2), 2)))
	if math.IsNaN(m) || m > maxBitArraySize {
		return 0, fmt.Errorf("id filter too large: %v bits for %d items at p=%v, max %d",
			m, numItems, probability, maxBitArraySize)
	}
	if m < 1 {
		return 1, nil
	}
	return int(m), nil
}

func calculateHashCount(bitArraySize, numItems int) int {
	// k = (m/n) * lg(2)
	k := (float64(bitArraySize) / float64(numItems)) * math.Log(2)
	if k < 1 {
		return 1
	}
	return int(k)
}

func (f *IDFilter) Pack() (string, error) {
	str, err := jsoniter.MarshalToString(&filterMetadata{
		FalsePositiveProb: f.falsePositiveProb,
		BitArraySize:      f.bitArraySize,
		HashCount:         f.hashCount,
		NumItems:          f.numItems,
		Count:             f.count,
		Bit:               f.bit.words,
	})
	if err != nil {
		return "", fmt.Errorf("marshal id filter err: %s", err)
	}
	return str, nil
}

func (f *IDFilter) UnPack(data string) error {
	meta := &filterMetadata{}
	if err := meta.load(data); err != nil {
		return err
	}
	f.falsePositiveProb = meta.FalsePositiveProb
	f.bitArraySize = meta.BitArraySize
	f.hashCount = meta.HashCount
	f.numItems = meta.NumItems
	f.count = meta.Count
	f.bit = &BitSet{words: meta.Bit}

	return nil
}
