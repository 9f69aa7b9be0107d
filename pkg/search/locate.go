package search

// FindPositions returns the zero-based start index of every occurrence
// of query in text, overlapping occurrences included, in increasing
// order. It returns nil when there is no occurrence; a non-nil result
// is never empty. An empty query has no occurrences.
//
// The prefix function is computed over query + boundary + text. Since
// nothing can match across the boundary, an entry equal to len(query)
// past it marks the end of an occurrence that lies wholly in text.
func FindPositions[T comparable](text, query []T) []int {
	m := len(query)
	if m == 0 || m > len(text) {
		return nil
	}
	pi := PrefixFunction(join(query, text))

	var positions []int
	for r, v := range pi[m+1:] {
		if v == m {
			// r is where the match ends, relative to text
			positions = append(positions, r-(m-1))
		}
	}
	return positions
}

// FindPositionsBytes is FindPositions over byte slices.
func FindPositionsBytes(text, query []byte) []int {
	return FindPositions(text, query)
}

// FindPositionsString is FindPositions over the raw bytes of two
// strings. Positions are byte offsets into text.
func FindPositionsString(text, query string) []int {
	if len(query) > len(text) {
		return nil
	}
	return FindPositions([]byte(text), []byte(query))
}
