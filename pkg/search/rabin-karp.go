package search

import "bytes"

// RabinKarp finds occurrences by rolling a hash across the text and
// verifying every hash hit. It is kept as an independent check on
// KnuthMorrisPratt and as a point of comparison when benchmarking.
type RabinKarp struct{}

func NewRabinKarp() *RabinKarp {
	return new(RabinKarp)
}

func (rk *RabinKarp) String() string {
	return "RABIN-KARP"
}

func (rk *RabinKarp) FindIndex(text, pattern []byte) int {
	if text == nil || pattern == nil {
		return -1
	}
	return first(rabinKarpFindAll(text, pattern))
}

func (rk *RabinKarp) FindIndexString(text, pattern string) int {
	return first(rabinKarpFindAll([]byte(text), []byte(pattern)))
}

func (rk *RabinKarp) FindAll(text, pattern []byte) []int {
	return rabinKarpFindAll(text, pattern)
}

func (rk *RabinKarp) FindAllString(text, pattern string) []int {
	return rabinKarpFindAll([]byte(text), []byte(pattern))
}

// PrimeRK is the prime base used in Rabin-Karp algorithm.
const PrimeRK = 16777619

// rabinKarpFindAll returns the start of every occurrence of sep in s,
// overlapping ones included, or nil if there is none.
func rabinKarpFindAll(s, sep []byte) []int {
	n := len(sep)
	if n == 0 || n > len(s) {
		return nil
	}
	hashsep, pow := hashBytes(sep)
	var h uint32
	for i := 0; i < n; i++ {
		h = h*PrimeRK + uint32(s[i])
	}
	var ret []int
	if h == hashsep && bytes.Equal(s[:n], sep) {
		ret = append(ret, 0)
	}
	for i := n; i < len(s); {
		h *= PrimeRK
		h += uint32(s[i])
		h -= pow * uint32(s[i-n])
		i++
		if h == hashsep && bytes.Equal(s[i-n:i], sep) {
			ret = append(ret, i-n)
		}
	}
	return ret
}

// hashBytes returns the hash and the appropriate multiplicative
// factor for use in Rabin-Karp algorithm.
func hashBytes(sep []byte) (uint32, uint32) {
	hash := uint32(0)
	for i := 0; i < len(sep); i++ {
		hash = hash*PrimeRK + uint32(sep[i])
	}
	var pow, sq uint32 = 1, PrimeRK
	for i := len(sep); i > 0; i >>= 1 {
		if i&1 != 0 {
			pow *= sq
		}
		sq *= sq
	}
	return hash, pow
}
