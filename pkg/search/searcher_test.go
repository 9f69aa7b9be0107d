package search

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

var searchers = []Searcher{
	NewKnuthMorrisPratt(),
	NewRabinKarp(),
}

var sonnet = `Not marble nor the gilded monuments
Of princes shall outlive this powerful rhyme;
But you shall shine more bright in these contents
Than unswept stone, besmear'd with sluttish time.`

func TestSearcherFindIndex(t *testing.T) {
	for _, s := range searchers {
		assert.Equal(t, 0, s.FindIndexString(sonnet, "Not marble"), "%s", s)
		assert.Equal(t, 53, s.FindIndexString(sonnet, "outlive"), "%s", s)
		assert.Equal(t, -1, s.FindIndexString(sonnet, "foo_DOES_NOT_EXIST"), "%s", s)
		assert.Equal(t, -1, s.FindIndex(nil, []byte("a")), "%s", s)
		assert.Equal(t, -1, s.FindIndex([]byte("a"), nil), "%s", s)
		assert.Equal(t, 4, s.FindIndex([]byte("abczabcf"), []byte("abcf")), "%s", s)
	}
}

func TestSearcherFindAll(t *testing.T) {
	for _, s := range searchers {
		assert.Equal(t, []int{0, 4}, s.FindAllString("abczabcf", "abc"), "%s", s)
		assert.Equal(t, []int{0, 1, 2}, s.FindAll([]byte("aaaa"), []byte("aa")), "%s", s)
		assert.Nil(t, s.FindAllString("abc", "abca"), "%s", s)
		assert.Nil(t, s.FindAllString("abc", ""), "%s", s)
	}
}

func TestSearchersAgree(t *testing.T) {
	kmp, rk := NewKnuthMorrisPratt(), NewRabinKarp()
	r := rand.New(rand.NewSource(1))
	for n := 0; n < 500; n++ {
		txt := randomBytes(r, r.Intn(120), "acgt")
		pat := randomBytes(r, 1+r.Intn(4), "acgt")
		want := rk.FindAll(txt, pat)
		got := kmp.FindAll(txt, pat)
		if !assert.Equal(t, want, got) {
			t.Logf("text=%q pattern=%q", txt, pat)
		}
	}
	long := bytes.Repeat([]byte("ab"), 1000)
	assert.Equal(t, rk.FindAll(long, []byte("abab")), kmp.FindAll(long, []byte("abab")))
}
