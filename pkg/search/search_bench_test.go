package search

import (
	"bytes"
	"testing"
)

// a highly repetitive text is the worst case for a naive search and
// the case the prefix function handles in linear time
var (
	benchText    = append(bytes.Repeat([]byte("a"), 1<<16), 'b')
	benchPattern = append(bytes.Repeat([]byte("a"), 1<<8), 'b')
)

func BenchmarkPrefixFunction(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Compute(benchText)
	}
}

func BenchmarkKnuthMorrisPratt_FindAll(b *testing.B) {
	kmp := NewKnuthMorrisPratt()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if n := kmp.FindAll(benchText, benchPattern); len(n) != 1 {
			b.Fatalf("error: expected=%d, got=%d\n", 1, len(n))
		}
	}
}

func BenchmarkRabinKarp_FindAll(b *testing.B) {
	rk := NewRabinKarp()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if n := rk.FindAll(benchText, benchPattern); len(n) != 1 {
			b.Fatalf("error: expected=%d, got=%d\n", 1, len(n))
		}
	}
}
