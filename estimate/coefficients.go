package estimate

// Coefficients supplies exact probabilities for small cases where the asymptotic binomial
// terms are poor. Each lookup returns false when no exact value is tabulated.
type Coefficients interface {
	// Repeat is the probability that words occurrences of one word form exactly k pairs.
	Repeat(alphabetSize, words, k int) (float64, bool)
	// Palindrome is Repeat with self pairs allowed.
	Palindrome(alphabetSize, words, k int) (float64, bool)
	// CrossPair is the probability that f1 words and f2 complements of a DNA word form
	// exactly k pairs.
	CrossPair(f1, f2, k int) (float64, bool)
}

// Table is a Coefficients backed by dense maps, mostly useful for supplying a handful of
// hand computed values.
type Table struct {
	Repeats     map[[2]int][]float64 // (alphabetSize, words) -> probability by k
	Palindromes map[[2]int][]float64 // (alphabetSize, words) -> probability by k
	CrossPairs  map[[2]int][]float64 // (f1, f2) -> probability by k
}

func (t Table) Repeat(alphabetSize, words, k int) (float64, bool) {
	return lookup(t.Repeats, alphabetSize, words, k)
}

func (t Table) Palindrome(alphabetSize, words, k int) (float64, bool) {
	return lookup(t.Palindromes, alphabetSize, words, k)
}

func (t Table) CrossPair(f1, f2, k int) (float64, bool) {
	return lookup(t.CrossPairs, f1, f2, k)
}

func lookup(m map[[2]int][]float64, a, b, k int) (float64, bool) {
	row, found := m[[2]int{a, b}]
	if !found || k < 0 || k >= len(row) {
		return 0, false
	}
	return row[k], true
}
