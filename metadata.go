package smear

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

type filterMetadata struct {
	FalsePositiveProb       float64
	BitArraySize, HashCount int
	NumItems                int
	Count                   int
	Bit                     []uint64
}

func (m *filterMetadata) load(data string) error {
	err := jsoniter.UnmarshalFromString(data, m)
	if err != nil {
		return fmt.Errorf("unmarshal id filter err: %s", err)
	}
	if m.BitArraySize <= 0 || m.HashCount <= 0 {
		return fmt.Errorf("id filter metadata not valid: size=%d hashCount=%d", m.BitArraySize, m.HashCount)
	}
	if m.BitArraySize > maxBitArraySize || m.HashCount > m.BitArraySize {
		return fmt.Errorf("id filter metadata not valid: size=%d hashCount=%d", m.BitArraySize, m.HashCount)
	}
	if m.NumItems <= 0 || m.Count < 0 {
		return fmt.Errorf("id filter metadata not valid: numItems=%d count=%d", m.NumItems, m.Count)
	}
	if len(m.Bit)*wordBits < m.BitArraySize {
		return fmt.Errorf("id filter metadata not valid: %d words for %d bits", len(m.Bit), m.BitArraySize)
	}
	return nil
}
