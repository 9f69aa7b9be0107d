package search

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// longestBorder is the quadratic definition of the prefix function
// entry at i, used as a reference.
func longestBorder[T comparable](s []T, i int) int {
	for l := i; l > 0; l-- {
		ok := true
		for j := 0; j < l; j++ {
			if s[j] != s[i+1-l+j] {
				ok = false
				break
			}
		}
		if ok {
			return l
		}
	}
	return 0
}

func randomBytes(r *rand.Rand, n int, alphabet string) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return b
}

func TestPrefixFunctionReference(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"a", []int{0}},
		{"aa", []int{0, 1}},
		{"ab", []int{0, 0}},
		{"aaaa", []int{0, 1, 2, 3}},
		{"abcfabcg", []int{0, 0, 0, 0, 1, 2, 3, 0}},
		{"abcabzabcabfz", []int{0, 0, 0, 1, 2, 0, 1, 2, 3, 4, 5, 0, 0}},
		{"abadababz", []int{0, 0, 1, 0, 1, 2, 3, 2, 0}},
		{"aabaaab", []int{0, 1, 0, 1, 2, 2, 3}},
	}
	for _, tt := range tests {
		got := Compute([]byte(tt.in))
		assert.Equal(t, tt.want, got, "prefix function of %q", tt.in)
	}
}

func TestPrefixFunctionEmpty(t *testing.T) {
	got := Compute([]byte{})
	require.NotNil(t, got)
	assert.Len(t, got, 0)

	got = PrefixFunction(Slice[int](nil))
	assert.Len(t, got, 0)
}

func TestPrefixFunctionInvariants(t *testing.T) {
	alphabets := []string{"a", "ab", "abc", "acgt"}
	r := rand.New(rand.NewSource(42))
	for n := 0; n < 500; n++ {
		s := randomBytes(r, 1+r.Intn(64), alphabets[n%len(alphabets)])
		pi := Compute(s)
		require.Len(t, pi, len(s))
		assert.Equal(t, 0, pi[0])
		for i, v := range pi {
			if v < 0 || v > i {
				t.Fatalf("error: %q: pi[%d]=%d out of range", s, i, v)
			}
			if v > 0 && s[v-1] != s[i] {
				t.Errorf("error: %q: s[pi[%d]-1]=%q, s[%d]=%q", s, i, s[v-1], i, s[i])
			}
			if want := longestBorder(s, i); v != want {
				t.Errorf("error: %q: pi[%d] expected=%d, got=%d", s, i, want, v)
			}
		}
	}
}

func TestPrefixFunctionTokens(t *testing.T) {
	words := []string{"to", "be", "or", "not", "to", "be"}
	assert.Equal(t, []int{0, 0, 0, 0, 1, 2}, Compute(words))

	runes := []rune("日本日本日")
	assert.Equal(t, []int{0, 0, 1, 2, 3}, Compute(runes))
}

func TestJoinedBoundary(t *testing.T) {
	// the boundary never equals anything, not even an identical element
	// value or itself
	q, txt := []byte{0, 0}, []byte{0, 0, 0}
	j := join(q, txt)
	require.Equal(t, 6, j.Len())
	assert.False(t, j.Equal(2, 2))
	assert.False(t, j.Equal(0, 2))
	assert.False(t, j.Equal(2, 3))
	assert.True(t, j.Equal(0, 3))
	assert.True(t, j.Equal(1, 5))

	pi := PrefixFunction(j)
	assert.Equal(t, []int{0, 1, 0, 1, 2, 2}, pi)
	for i, v := range pi {
		assert.LessOrEqual(t, v, len(q), "pi[%d]", i)
	}
}
