package search

// Sequence is an ordered, indexable run of comparable elements. It
// must not change while a prefix function is being computed over it.
type Sequence interface {
	// Len returns the number of elements in the sequence.
	Len() int
	// Equal reports whether the elements at i and j are equal.
	Equal(i, j int) bool
}

// Slice adapts any slice of comparable elements to a Sequence.
type Slice[T comparable] []T

func (s Slice[T]) Len() int {
	return len(s)
}

func (s Slice[T]) Equal(i, j int) bool {
	return s[i] == s[j]
}

// joined is the sequence query + boundary + text. The boundary is not
// an element of either input, it is only an index: any comparison that
// touches it (itself included) is unequal. This holds for every element
// domain, so raw bytes using all 256 values are safe.
type joined[T comparable] struct {
	query []T
	text  []T
}

func join[T comparable](query, text []T) *joined[T] {
	return &joined[T]{
		query: query,
		text:  text,
	}
}

// boundary returns the index of the separator in the joined sequence.
func (j *joined[T]) boundary() int {
	return len(j.query)
}

func (j *joined[T]) Len() int {
	return len(j.query) + 1 + len(j.text)
}

func (j *joined[T]) Equal(a, b int) bool {
	sep := j.boundary()
	if a == sep || b == sep {
		return false
	}
	return j.at(a) == j.at(b)
}

func (j *joined[T]) at(i int) T {
	if i < len(j.query) {
		return j.query[i]
	}
	return j.text[i-len(j.query)-1]
}
