package alphabet

// ExcludeRuns overwrites with 0x00 every run of letter that is at least minRun long, so no
// repeat can be found inside or across it. It returns the number of letters overwritten.
// A minRun below 1 disables exclusion.
func ExcludeRuns(seq []byte, letter byte, minRun int) int {
	if minRun < 1 {
		return 0
	}
	var excluded, runStart, i int
	var inRun bool
	for i = 0; i < len(seq); i++ {
		if seq[i] == letter {
			if !inRun {
				runStart = i
				inRun = true
			}
			continue
		}
		if inRun {
			excluded += clearRun(seq, runStart, i, minRun)
			inRun = false
		}
	}
	if inRun {
		excluded += clearRun(seq, runStart, i, minRun)
	}
	return excluded
}

func clearRun(seq []byte, start, end, minRun int) int {
	if end-start < minRun {
		return 0
	}
	for j := start; j < end; j++ {
		seq[j] = 0
	}
	return end - start
}
