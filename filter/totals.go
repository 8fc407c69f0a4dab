package filter

// Totals accumulates word groups across records.
type Totals map[Key]int

func (t Totals) Add(h Histogram) {
	for word, count := range h {
		t[Key{Length: len(word), Count: count}]++
	}
}

// Groups returns the totals sorted by length and pair count.
func (t Totals) Groups() []Group {
	return sortedGroups(t)
}

// Filled is Groups with a zero entry for every missing pair count from 1 up to the largest
// count seen at each length.
func (t Totals) Filled() []Group {
	var answer []Group
	var next int
	prevLength := -1
	for _, g := range t.Groups() {
		if g.Length != prevLength {
			next = 1
			prevLength = g.Length
		}
		for ; next < g.Count; next++ {
			answer = append(answer, Group{Key: Key{Length: g.Length, Count: next}})
		}
		answer = append(answer, g)
		next = g.Count + 1
	}
	return answer
}

// Pairs is the number of repeat pairs behind the totals.
func (t Totals) Pairs() int {
	var answer int
	for k, words := range t {
		answer += k.Count * words
	}
	return answer
}
