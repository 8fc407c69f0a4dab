package suffix

// Inverse maps each text position to its rank in the suffix array.
func Inverse(sa []int) []int {
	inv := make([]int, len(sa))
	for i := range sa {
		inv[sa[i]] = i
	}
	return inv
}

// BuildLcpArray computes lcp[i], the length of the common prefix of the suffixes at ranks
// i-1 and i, with lcp[0] = 0. A 0x00 byte never matches, not even another 0x00, so no
// common prefix extends across a separator.
func BuildLcpArray(text []byte, sa, inv []int) []int {
	n := len(text)
	lcp := make([]int, n)
	var h, i, j, k int
	for i = 0; i < n; i++ {
		k = inv[i]
		if k == 0 {
			h = 0
			continue
		}
		j = sa[k-1]
		for i+h < n && j+h < n && lettersEqual(text[i+h], text[j+h]) {
			h++
		}
		lcp[k] = h
		if h > 0 {
			h--
		}
	}
	return lcp
}

// lettersEqual is only ever called for two different text positions.
func lettersEqual(a, b byte) bool {
	return a == b && a != 0
}
