package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/dasnellings/statRepeats/estimate"
	"github.com/dasnellings/statRepeats/factors"
	"github.com/dasnellings/statRepeats/search"
	"github.com/vertgenlab/gonomics/exception"
)

func estimateUsage(estimateFlags *flag.FlagSet) {
	fmt.Print(
		"estimate - expected number of repeated words in a random sequence\n" +
			"\tPrints, for every number of pairs k, how many distinct words of length -l are expected\n" +
			"\tto form exactly k pairs and the smallest significant number of such words.\n\n" +
			"Usage:\n" +
			"  statrepeats estimate [options] -n 10000 -l 6 -k 10\n\n" +
			"Options:\n")
	estimateFlags.PrintDefaults()
}

func runEstimate(args []string) {
	var err error
	estimateFlags := flag.NewFlagSet("estimate", flag.ExitOnError)

	seqLen := estimateFlags.Int("n", 0, "Sequence length.")
	fragLen := estimateFlags.Int("l", 0, "Word length.")
	alphabetSize := estimateFlags.Int("a", 4, "Alphabet size.")
	maxPairs := estimateFlags.Int("k", 10, "Largest number of pairs to print.")
	mode := estimateFlags.String("t", "dn", "Search type: dn, dc, in or ic.")
	pValue := estimateFlags.Float64("p", 0.05, "P value for the confidence bound.")

	err = estimateFlags.Parse(args)
	exception.PanicOnErr(err)
	estimateFlags.Usage = func() { estimateUsage(estimateFlags) }

	if *seqLen < 1 || *fragLen < 1 || *maxPairs < 1 {
		estimateFlags.Usage()
		errExit("\nERROR: -n, -l and -k must be positive")
	}
	m, err := search.ParseMode(*mode)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
	factory, err := estimate.FactoryFor(m)
	exception.PanicOnErr(err)
	est, err := factory(*seqLen, *fragLen, *alphabetSize, factors.New(nil))
	if err != nil {
		errExit("ERROR: " + err.Error())
	}

	var expected float64
	var bound int
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "pairs\texpected\tbound")
	for k := 1; k <= *maxPairs; k++ {
		expected, err = est.Compute(k)
		if err != nil {
			log.Fatalf("ERROR: %d pairs: %s", k, err)
		}
		bound, err = estimate.ConfidenceBound(expected, *pValue)
		if err != nil {
			log.Fatalf("ERROR: %d pairs: %s", k, err)
		}
		fmt.Fprintf(w, "%d\t%g\t%d\n", k, expected, bound)
	}
	err = w.Flush()
	exception.PanicOnErr(err)
}
