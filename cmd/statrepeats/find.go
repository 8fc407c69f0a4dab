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

func findUsage(findFlags *flag.FlagSet) {
	fmt.Print(
		"find - find maximal repeats and palindromes in fasta sequences\n" +
			"\tEvery pair of copies is reported once, in the record where it was found.\n\n" +
			"Usage:\n" +
			"  statrepeats find [options] -i input.fasta -l 8 -t dc > repeats.txt\n\n" +
			"Options:\n")
	findFlags.PrintDefaults()
}

func runFind(args []string) {
	var err error
	findFlags := flag.NewFlagSet("find", flag.ExitOnError)
	search := addSearchFlags(findFlags)

	output := findFlags.String("o", "stdout", "Output file. Anything but stdout is written as comma separated pairs prefixed with the sequence name.")
	split := findFlags.String("split", "", "Write .load, .stat and .id files for every sequence into this directory.")
	load := findFlags.String("load", "", "Write name.load, name.stat and name.id for the whole input.")
	plot := findFlags.String("plot", "", "Also draw a PNG bar chart of repeats per length.")
	noInstances := findFlags.Bool("count", false, "Only report the number of repeats per length, not every pair.")
	noGraph := findFlags.Bool("noGraph", false, "Do not draw the text graph of repeats per length on stdout.")

	err = findFlags.Parse(args)
	exception.PanicOnErr(err)
	findFlags.Usage = func() { findUsage(findFlags) }

	if *search.input == "" {
		findFlags.Usage()
		errExit("\nERROR: must have an input for -i")
	}
	if *split != "" && *load != "" {
		findFlags.Usage()
		errExit("\nERROR: -split and -load can not be used together")
	}

	s := search.settings()
	s.PrintInstances = !*noInstances

	var out sink.Multi
	var console *fileio.EasyWriter
	switch {
	case *split != "":
		out = append(out, sink.NewSplit(*split))
	case *load != "":
		out = append(out, sink.NewLoad(*load))
	case *output != "stdout":
		out = append(out, sink.NewFile(*output))
	default:
		console = fileio.EasyCreate("stdout")
		c := sink.NewConsole(console)
		c.Graph = !*noGraph
		out = append(out, c)
	}
	if *plot != "" {
		out = append(out, sink.NewPlot(*plot))
	}

	if err = scan.Run(s, out); err != nil {
		log.Fatalf("ERROR: %s", err)
	}
	if console != nil {
		err = console.Close()
		exception.PanicOnErr(err)
	}
}
