package repeats

// bucket is a linked list of suffix positions that share the letter preceding them. The
// list is threaded through lists.next so buckets splice in constant time.
type bucket struct {
	letter byte
	head   int
	tail   int
}

// lists owns the shared next array and recycles bucket slices between intervals.
type lists struct {
	next []int
	free [][]bucket
}

func newLists(n int) *lists {
	return &lists{next: make([]int, n)}
}

func (l *lists) get() []bucket {
	if len(l.free) == 0 {
		return nil
	}
	b := l.free[len(l.free)-1]
	l.free = l.free[:len(l.free)-1]
	return b
}

func (l *lists) put(b []bucket) {
	if cap(b) > 0 {
		l.free = append(l.free, b[:0])
	}
}

// splice appends every list of from to the list with the same letter in to.
func (l *lists) splice(to, from []bucket) []bucket {
	var j int
	for _, f := range from {
		for j = 0; j < len(to); j++ {
			if to[j].letter == f.letter {
				l.next[to[j].tail] = f.head
				to[j].tail = f.tail
				break
			}
		}
		if j == len(to) {
			to = append(to, f)
		}
	}
	return to
}

// spliceOne adds the single position pos preceded by letter.
func (l *lists) spliceOne(to []bucket, letter byte, pos int) []bucket {
	l.next[pos] = -1
	for j := range to {
		if to[j].letter == letter {
			l.next[to[j].tail] = pos
			to[j].tail = pos
			return to
		}
	}
	return append(to, bucket{letter: letter, head: pos, tail: pos})
}

// distinct reports whether suffixes preceded by a and b can not be extended to the left
// together. A separator never matches, not even another separator.
func distinct(a, b byte) bool {
	return a != b || a == 0
}
