package main

import (
	"flag"
	"fmt"

	"github.com/dasnellings/statRepeats/estimate"
	"github.com/dasnellings/statRepeats/search"
	"github.com/vertgenlab/gonomics/exception"
)

func suggestUsage(suggestFlags *flag.FlagSet) {
	fmt.Print(
		"suggest - suggest a minimal fragment length for a sequence size\n" +
			"\tShorter repeats are almost all expected by chance in a random sequence of that size.\n\n" +
			"Usage:\n" +
			"  statrepeats suggest [options] -n 250000 -a 4\n\n" +
			"Options:\n")
	suggestFlags.PrintDefaults()
}

func runSuggest(args []string) {
	var err error
	suggestFlags := flag.NewFlagSet("suggest", flag.ExitOnError)

	seqLen := suggestFlags.Int("n", 0, "Sequence length.")
	alphabetSize := suggestFlags.Int("a", 4, "Alphabet size.")
	mode := suggestFlags.String("t", "dn", "Search type: dn, dc, in or ic.")

	err = suggestFlags.Parse(args)
	exception.PanicOnErr(err)
	suggestFlags.Usage = func() { suggestUsage(suggestFlags) }

	if *seqLen < 1 {
		suggestFlags.Usage()
		errExit("\nERROR: -n must be a positive sequence length")
	}
	m, err := search.ParseMode(*mode)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}

	length := estimate.SuggestLength(*seqLen, *alphabetSize, m == search.MathematicalRepeat)
	if length == 0 {
		errExit(fmt.Sprintf("ERROR: can not suggest a minimal fragment length for an alphabet of %d letters", *alphabetSize))
	}
	fmt.Println(length)
}
