package estimate

// lengthStep gives the suggested minimum length for sequences longer than above.
type lengthStep struct {
	above  int
	length int
}

var nucleotideSteps = []lengthStep{
	{500, 4}, {3000, 5}, {30000, 6}, {231000, 7}, {400000, 8}, {1500000, 9}, {5000000, 10}, {10000000, 11},
}

var nucleotideRepeatSteps = []lengthStep{
	{500, 4}, {3000, 5}, {27000, 6}, {231000, 7}, {400000, 8}, {1500000, 9}, {5000000, 10}, {10000000, 11},
}

var longSequenceSteps = []lengthStep{
	{30000, 6}, {231000, 7}, {400000, 8}, {1500000, 9}, {5000000, 10}, {10000000, 11},
}

// SuggestLength returns an empirically tuned minimum fragment length below which nearly all
// repeats of a random sequence of seqLen letters are expected by chance. mathematicalRepeat
// selects the direct repeat table for small alphabets. It returns 0 when it has no advice.
func SuggestLength(seqLen, alphabetSize int, mathematicalRepeat bool) int {
	if alphabetSize >= 4 && alphabetSize <= 6 {
		steps := nucleotideSteps
		if mathematicalRepeat {
			steps = nucleotideRepeatSteps
		}
		return step(seqLen, 3, steps)
	}
	switch {
	case seqLen <= 1000:
		if alphabetSize == 7 || alphabetSize == 8 {
			return 3
		}
		return 2
	case seqLen <= 2000:
		if alphabetSize >= 7 && alphabetSize <= 11 {
			return 3
		}
		return 2
	case seqLen <= 9000:
		return 3
	case seqLen <= 30000:
		if alphabetSize >= 7 && alphabetSize <= 10 {
			return 4
		}
		return 3
	}
	return step(seqLen, 0, longSequenceSteps)
}

func step(seqLen, length int, steps []lengthStep) int {
	for _, s := range steps {
		if seqLen > s.above {
			length = s.length
		}
	}
	return length
}
