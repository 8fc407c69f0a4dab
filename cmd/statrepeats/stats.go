package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/dasnellings/statRepeats/scan"
	"github.com/dasnellings/statRepeats/sink"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

func statsUsage(statsFlags *flag.FlagSet) {
	fmt.Print(
		"stats - count words by length and number of repeat pairs\n" +
			"\tRows are length,pairs,words summed over every sequence, followed by the total number of pairs.\n\n" +
			"Usage:\n" +
			"  statrepeats stats [options] -i input.fasta -l 6 > counts.csv\n\n" +
			"Options:\n")
	statsFlags.PrintDefaults()
}

func runStats(args []string) {
	var err error
	statsFlags := flag.NewFlagSet("stats", flag.ExitOnError)
	search := addSearchFlags(statsFlags)
	output := statsFlags.String("o", "stdout", "Output file.")

	err = statsFlags.Parse(args)
	exception.PanicOnErr(err)
	statsFlags.Usage = func() { statsUsage(statsFlags) }

	if *search.input == "" {
		statsFlags.Usage()
		errExit("\nERROR: must have an input for -i")
	}

	s := search.settings()
	s.PrintInstances = true

	out := fileio.EasyCreate(*output)
	if err = scan.Run(s, sink.NewStatistics(out)); err != nil {
		log.Fatalf("ERROR: %s", err)
	}
	err = out.Close()
	exception.PanicOnErr(err)
}
