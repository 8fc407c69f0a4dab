package repeats

import "fmt"

// Event is one repeat pair in sequence coordinates. Pos1 <= Pos2 and Pos1 == Pos2 marks a
// palindrome centre.
type Event struct {
	Pos1   int
	Pos2   int
	Length int
}

func (e Event) String() string {
	return fmt.Sprintf("%d\t%d\t%d", e.Pos1, e.Pos2, e.Length)
}

// Gap is the distance from the end of the first copy to the start of the second. It is
// negative for overlapping copies.
func (e Event) Gap() int {
	return e.Pos2 - e.Pos1 - e.Length
}
