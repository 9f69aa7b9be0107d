package search

// KnuthMorrisPratt finds occurrences through the prefix function of the
// pattern joined with the text. It runs in time linear in the combined
// length regardless of how repetitive the input is.
type KnuthMorrisPratt struct{}

func NewKnuthMorrisPratt() *KnuthMorrisPratt {
	return new(KnuthMorrisPratt)
}

func (kmp *KnuthMorrisPratt) String() string {
	return "KNUTH-MORRIS-PRATT"
}

func (kmp *KnuthMorrisPratt) FindIndex(text, pattern []byte) int {
	if text == nil || pattern == nil {
		return -1
	}
	return first(FindPositionsBytes(text, pattern))
}

func (kmp *KnuthMorrisPratt) FindIndexString(text, pattern string) int {
	return first(FindPositionsString(text, pattern))
}

func (kmp *KnuthMorrisPratt) FindAll(text, pattern []byte) []int {
	return FindPositionsBytes(text, pattern)
}

func (kmp *KnuthMorrisPratt) FindAllString(text, pattern string) []int {
	return FindPositionsString(text, pattern)
}
