package search

// PrefixFunction computes the prefix function of seq. Entry i of the
// returned array is the length of the longest proper prefix of
// seq[0..i] that is also a suffix of it. An empty sequence yields an
// empty array.
//
// The pass is linear in seq.Len(): every increment of the candidate
// length k is paid back by at most one fallback step later on.
func PrefixFunction(seq Sequence) []int {
	n := seq.Len()
	pi := make([]int, n)
	if n == 0 {
		return pi
	}
	pi[0] = 0
	for i := 1; i < n; i++ {
		k := pi[i-1]
		// fall back to the next shorter border of seq[0..i-1]
		for k > 0 && !seq.Equal(k, i) {
			k = pi[k-1]
		}
		if seq.Equal(k, i) {
			k++
		}
		pi[i] = k
	}
	return pi
}

// Compute returns the prefix function of s.
func Compute[T comparable](s []T) []int {
	return PrefixFunction(Slice[T](s))
}
