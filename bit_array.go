package smear

import (
	"math/bits"
	"strconv"
	"strings"
)

const wordBits = 64

// BitSet fixed size bit set backed by uint64 words
type BitSet struct {
	words []uint64
}

// NewBitSet init
// @param n, number of bits
func NewBitSet(n int) *BitSet {
	if n < 0 {
		n = 0
	}
	return &BitSet{
		words: make([]uint64, (n+wordBits-1)/wordBits),
	}
}

// Has check i is set
func (s *BitSet) Has(i int) bool {
	w, b := i/wordBits, uint(i%wordBits)
	return i >= 0 && w < len(s.words) && s.words[w]&(1<<b) != 0
}

// Set set i, growing the set if needed
func (s *BitSet) Set(i int) {
	if i < 0 {
		return
	}
	w, b := i/wordBits, uint(i%wordBits)
	for w >= len(s.words) {
		s.words = append(s.words, 0)
	}
	s.words[w] |= 1 << b
}

// SetAll set many
func (s *BitSet) SetAll(arr ...int) {
	for _, v := range arr {
		s.Set(v)
	}
}

// Clear unset i
func (s *BitSet) Clear(i int) {
	if !s.Has(i) {
		return
	}
	s.words[i/wordBits] &^= 1 << uint(i%wordBits)
}

// Reset unset every bit, keeping capacity
func (s *BitSet) Reset() {
	for i := range s.words {
		s.words[i] = 0
	}
}

// UnionWith merge with other
func (s *BitSet) UnionWith(other *BitSet) {
	for i, v := range other.words {
		if i < len(s.words) {
			s.words[i] |= v
		} else {
			s.words = append(s.words, v)
		}
	}
}

// Count return number of set bits
func (s *BitSet) Count() int {
	n := 0
	for _, v := range s.words {
		n += bits.OnesCount64(v)
	}
	return n
}

// Len return capacity in bits
func (s *BitSet) Len() int {
	return len(s.words) * wordBits
}

// String returns the set as a string of the form "{1 2 3}".
func (s *BitSet) String() string {
	var buf strings.Builder
	buf.WriteByte('{')
	for i, word := range s.words {
		for word != 0 {
			j := bits.TrailingZeros64(word)
			word &^= 1 << uint(j)
			if buf.Len() > len("{") {
				buf.WriteByte(' ')
			}
			buf.WriteString(strconv.Itoa(wordBits*i + j))
		}
	}
	buf.WriteByte('}')
	return buf.String()
}
