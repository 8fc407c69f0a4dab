package repeats

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/dasnellings/statRepeats/search"
	"github.com/dasnellings/statRepeats/suffix"
	"github.com/vertgenlab/gonomics/numbers"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInconsistent    = errors.New("inconsistent suffix data")
)

// Params holds one indexed text and what to look for in it.
type Params struct {
	Text      []byte
	SA        []int
	LCP       []int
	MinLength int
	MaxGap    int // -1 for no limit
	Motif     *regexp.Regexp
	Strategy  search.Strategy
}

// NewParams builds the suffix and lcp arrays of t.
func NewParams(t *search.Text, minLength, maxGap int, motif *regexp.Regexp) Params {
	sa := suffix.BuildSuffixArray(t.Bytes)
	lcp := suffix.BuildLcpArray(t.Bytes, sa, suffix.Inverse(sa))
	return Params{
		Text:      t.Bytes,
		SA:        sa,
		LCP:       lcp,
		MinLength: minLength,
		MaxGap:    maxGap,
		Motif:     motif,
		Strategy:  search.NewStrategy(t),
	}
}

type interval struct {
	lcp     int
	buckets []bucket
}

type enumerator struct {
	Params
	lists *lists
	emit  func(Event)
}

// Enumerate calls emit once for every maximal repeat pair of length at least MinLength
// accepted by the Strategy. Each pair is found at the lcp interval equal to its longest
// common extension, where the two suffixes are preceded by different letters.
func Enumerate(p Params, emit func(Event)) error {
	if err := p.validate(); err != nil {
		return err
	}
	n := len(p.Text)
	e := enumerator{Params: p, lists: newLists(n), emit: emit}

	var cur, leaf, lastRank int
	var closed interval
	var hasClosed bool
	stack := make([]interval, 1, 64)
	lastRank = -1
	for i := 1; i <= n; i++ {
		if i < n {
			cur = p.LCP[i]
		} else {
			cur = 0
		}
		if i-1 <= lastRank {
			return fmt.Errorf("%w: rank %d joined after rank %d", ErrInconsistent, i-1, lastRank)
		}
		lastRank = i - 1
		leaf = p.SA[i-1]
		hasClosed = false

		if cur <= stack[len(stack)-1].lcp {
			e.addLeaf(&stack[len(stack)-1], leaf)
		}
		for cur < stack[len(stack)-1].lcp {
			closed = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if cur <= stack[len(stack)-1].lcp {
				e.addChild(&stack[len(stack)-1], closed)
			} else {
				hasClosed = true
			}
		}
		if cur > stack[len(stack)-1].lcp {
			stack = append(stack, interval{lcp: cur})
			if cur >= p.MinLength {
				stack[len(stack)-1].buckets = e.lists.get()
			}
			if hasClosed {
				e.addChild(&stack[len(stack)-1], closed)
			} else {
				e.addLeaf(&stack[len(stack)-1], leaf)
			}
		}
	}
	return nil
}

// Collect returns every event of p in the order Enumerate finds them.
func Collect(p Params) ([]Event, error) {
	var answer []Event
	err := Enumerate(p, func(e Event) {
		answer = append(answer, e)
	})
	return answer, err
}

func (p Params) validate() error {
	n := len(p.Text)
	switch {
	case p.Strategy == nil:
		return fmt.Errorf("%w: no search strategy", ErrInvalidArgument)
	case p.MinLength < 1:
		return fmt.Errorf("%w: minimum length %d is below 1", ErrInvalidArgument, p.MinLength)
	case len(p.SA) != n || len(p.LCP) != n:
		return fmt.Errorf("%w: text of length %d with suffix array of %d and lcp array of %d", ErrInvalidArgument, n, len(p.SA), len(p.LCP))
	}
	seen := make([]bool, n)
	for i, pos := range p.SA {
		if pos < 0 || pos >= n || seen[pos] {
			return fmt.Errorf("%w: suffix array is not a permutation at rank %d", ErrInconsistent, i)
		}
		seen[pos] = true
	}
	if n > 0 && p.LCP[0] != 0 {
		return fmt.Errorf("%w: lcp of rank 0 is %d", ErrInconsistent, p.LCP[0])
	}
	for i := 1; i < n; i++ {
		if p.LCP[i] < 0 || p.LCP[i] > n-numbers.Max(p.SA[i-1], p.SA[i]) {
			return fmt.Errorf("%w: lcp %d at rank %d runs past the text", ErrInconsistent, p.LCP[i], i)
		}
	}
	return nil
}

func (e *enumerator) tracked(iv *interval) bool {
	return iv.lcp >= e.MinLength
}

func (e *enumerator) addLeaf(iv *interval, pos int) {
	if !e.tracked(iv) || pos == 0 {
		return
	}
	letter := e.Text[pos-1]
	for _, b := range iv.buckets {
		if !distinct(letter, b.letter) {
			continue
		}
		for y := b.head; y != -1; y = e.lists.next[y] {
			e.candidate(pos, y, iv.lcp)
		}
	}
	iv.buckets = e.lists.spliceOne(iv.buckets, letter, pos)
}

func (e *enumerator) addChild(parent *interval, child interval) {
	if !e.tracked(parent) {
		e.lists.put(child.buckets)
		return
	}
	var x, y int
	for _, c := range child.buckets {
		for _, b := range parent.buckets {
			if !distinct(c.letter, b.letter) {
				continue
			}
			for x = c.head; x != -1; x = e.lists.next[x] {
				for y = b.head; y != -1; y = e.lists.next[y] {
					e.candidate(x, y, parent.lcp)
				}
			}
		}
	}
	parent.buckets = e.lists.splice(parent.buckets, child.buckets)
	e.lists.put(child.buckets)
}

func (e *enumerator) candidate(x, y, length int) {
	if !e.Strategy.IsResult(x, y, length, e.Motif) {
		return
	}
	pos1, pos2 := e.Strategy.UpdateRepeatLocations(x, y, length)
	if pos1 == pos2 && !e.Strategy.IncludePalindromes() {
		return
	}
	if e.MaxGap >= 0 {
		diff := length - (pos2 - pos1)
		if diff < 0 {
			diff = -diff
		}
		if diff > e.MaxGap {
			return
		}
	}
	e.emit(Event{Pos1: pos1, Pos2: pos2, Length: length})
}
