// Package suffix builds suffix arrays and longest common prefix arrays over byte texts.
package suffix

// BuildSuffixArray returns the suffix array of text using induced sorting (SA-IS).
// Suffixes are ordered by byte value as if a terminator smaller than every byte were
// appended to text, so a suffix always sorts before any longer suffix it prefixes.
func BuildSuffixArray(text []byte) []int {
	n := len(text)
	if n == 0 {
		return nil
	}
	s := make([]int, n+1)
	for i := range text {
		s[i] = int(text[i]) + 1
	}
	s[n] = 0 // sentinel
	sa := sais(s, 257)
	// sa[0] is always the sentinel suffix
	return sa[1:]
}

// sais constructs the suffix array for s. s must end with a unique smallest symbol 0 and
// every symbol must fall in [0, k).
func sais(s []int, k int) []int {
	n := len(s)
	sa := make([]int, n)
	if n == 1 {
		return sa
	}

	t := classify(s)
	var lms []int
	for i := 1; i < n; i++ {
		if isLMS(t, i) {
			lms = append(lms, i)
		}
	}

	sizes := bucketSizes(s, k)
	induceSort(s, sa, t, sizes, lms)

	sorted := make([]int, 0, len(lms))
	for _, pos := range sa {
		if isLMS(t, pos) {
			sorted = append(sorted, pos)
		}
	}

	// name LMS substrings by rank, equal substrings share a name
	names := make([]int, n)
	var name int
	names[sorted[0]] = 0
	for i := 1; i < len(sorted); i++ {
		if !lmsSubstringEqual(s, t, sorted[i-1], sorted[i]) {
			name++
		}
		names[sorted[i]] = name
	}

	reduced := make([]int, len(lms))
	for i, pos := range lms {
		reduced[i] = names[pos]
	}

	var reducedSA []int
	if name+1 < len(reduced) {
		reducedSA = sais(reduced, name+1)
	} else {
		reducedSA = make([]int, len(reduced))
		for i, c := range reduced {
			reducedSA[c] = i
		}
	}

	ordered := make([]int, len(reducedSA))
	for i, idx := range reducedSA {
		ordered[i] = lms[idx]
	}
	induceSort(s, sa, t, sizes, ordered)
	return sa
}

// classify marks each position as S-type (true) or L-type (false).
func classify(s []int) []bool {
	n := len(s)
	t := make([]bool, n)
	t[n-1] = true
	for i := n - 2; i >= 0; i-- {
		switch {
		case s[i] < s[i+1]:
			t[i] = true
		case s[i] > s[i+1]:
			t[i] = false
		default:
			t[i] = t[i+1]
		}
	}
	return t
}

func isLMS(t []bool, i int) bool {
	return i > 0 && t[i] && !t[i-1]
}

func induceSort(s []int, sa []int, t []bool, sizes []int, lms []int) {
	for i := range sa {
		sa[i] = -1
	}

	tails := bucketTails(sizes)
	for i := len(lms) - 1; i >= 0; i-- {
		pos := lms[i]
		c := s[pos]
		sa[tails[c]] = pos
		tails[c]--
	}

	heads := bucketHeads(sizes)
	for i := 0; i < len(sa); i++ {
		pos := sa[i]
		if pos > 0 && !t[pos-1] {
			c := s[pos-1]
			sa[heads[c]] = pos - 1
			heads[c]++
		}
	}

	tails = bucketTails(sizes)
	for i := len(sa) - 1; i >= 0; i-- {
		pos := sa[i]
		if pos > 0 && t[pos-1] {
			c := s[pos-1]
			sa[tails[c]] = pos - 1
			tails[c]--
		}
	}
}

func bucketSizes(s []int, k int) []int {
	sizes := make([]int, k)
	for _, c := range s {
		sizes[c]++
	}
	return sizes
}

func bucketHeads(sizes []int) []int {
	heads := make([]int, len(sizes))
	var sum int
	for i, v := range sizes {
		heads[i] = sum
		sum += v
	}
	return heads
}

func bucketTails(sizes []int) []int {
	tails := make([]int, len(sizes))
	var sum int
	for i, v := range sizes {
		sum += v
		tails[i] = sum - 1
	}
	return tails
}

// lmsSubstringEqual reports whether the LMS substrings starting at a and b are identical
// in both symbols and types, up to and including the next LMS position.
func lmsSubstringEqual(s []int, t []bool, a, b int) bool {
	n := len(s)
	if a == n-1 || b == n-1 {
		return a == b
	}
	for i := 0; ; i++ {
		if s[a+i] != s[b+i] || t[a+i] != t[b+i] {
			return false
		}
		if i > 0 && isLMS(t, a+i) {
			return isLMS(t, b+i)
		}
	}
}
