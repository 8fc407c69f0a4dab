// Package filter keeps the repeats that are unlikely to occur by chance. Words are grouped
// by length and by the number of pairs they form, and a group passes when it holds more
// distinct words than a random sequence would produce at the chosen p-value.
package filter

import (
	"sort"

	"golang.org/x/exp/maps"
)

// Histogram maps a canonical word to the number of repeat pairs it took part in.
type Histogram map[string]int

func (h Histogram) Add(word string) {
	h[word]++
}

// Clear empties h so it can be reused for the next record.
func (h Histogram) Clear() {
	maps.Clear(h)
}

// Key identifies a group of words by word length and pair count.
type Key struct {
	Length int
	Count  int
}

// Group is every word of one length forming the same number of pairs.
type Group struct {
	Key
	Words    int
	Expected float64 // words expected by chance, filled by Evaluate
	Bound    int     // smallest significant word total, filled by Evaluate
	Passed   bool
}

// Categorize groups the words of h, sorted by length and then by pair count.
func Categorize(h Histogram) []Group {
	occurrence := make(map[Key]int)
	for word, count := range h {
		occurrence[Key{Length: len(word), Count: count}]++
	}
	return sortedGroups(occurrence)
}

func sortedGroups(occurrence map[Key]int) []Group {
	keys := maps.Keys(occurrence)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Length != keys[j].Length {
			return keys[i].Length < keys[j].Length
		}
		return keys[i].Count < keys[j].Count
	})
	answer := make([]Group, len(keys))
	for i := range keys {
		answer[i] = Group{Key: keys[i], Words: occurrence[keys[i]]}
	}
	return answer
}
