package search

// Searcher locates a pattern within a text. FindIndex and
// FindIndexString return the first occurrence or -1. FindAll and
// FindAllString return every occurrence, overlapping ones included, or
// nil when there is none.
type Searcher interface {
	FindIndex(text, pattern []byte) int
	FindIndexString(text, pattern string) int
	FindAll(text, pattern []byte) []int
	FindAllString(text, pattern string) []int
}

// first returns the first entry of positions, or -1.
func first(positions []int) int {
	if len(positions) > 0 {
		return positions[0]
	}
	return -1
}

// Knuth-Morris-Pratt:
// Pre-analyzes the pattern into its prefix function and re-uses whatever was already
// matched in the initial part of the pattern, so the text is never backtracked over.
// This can work quite well if your alphabet is small (f.ex. DNA bases), as you get a
// higher chance that your search patterns contain re-usable sub-patterns. KMP is best
// suited for searching texts that have a lot of tight repetition.

// Rabin-Karp:
// Works by utilizing efficient computation of hash values of the successive substrings
// of the text, which it then uses for comparing matches. Every hash hit is verified, so
// it never reports a false match, but its worst case is quadratic.
