package main

import (
	"flag"
	"strings"

	"github.com/dasnellings/statRepeats/alphabet"
	"github.com/dasnellings/statRepeats/scan"
	"github.com/dasnellings/statRepeats/search"
)

// searchFlags are the options shared by every subcommand that runs a search.
type searchFlags struct {
	input         *string
	minLength     *int
	mode          *string
	alphabet      *string
	rules         *string
	groups        *string
	maxGap        *int
	motif         *string
	probability   *bool
	pValue        *float64
	exclude       *int
	excludeLetter *string
	combined      *string
	verbose       *int
}

func addSearchFlags(fs *flag.FlagSet) *searchFlags {
	def := scan.DefaultSettings()
	return &searchFlags{
		input:         fs.String("i", "", "Input FASTA file."),
		minLength:     fs.Int("l", 0, "Minimal fragment length. 0 uses the length suggested for each sequence."),
		mode:          fs.String("t", def.Mode.String(), "Search type: dn (direct repeats), dc (complementary repeats), in (mirror palindromes) or ic (reverse complement palindromes)."),
		alphabet:      fs.String("a", def.Alphabet.String(), "Alphabet: dna, rna or protein."),
		rules:         fs.String("complement", "", "File of whitespace separated letter pairs, each mapping a letter to its complement. Replaces the built in complements."),
		groups:        fs.String("groups", "", "Comma separated protein groups collapsed into one symbol each: aliphatic, sulphur, tiny, aromatic, hydrophobic, charged, positive, polar, acidic, small, hydroxylic."),
		maxGap:        fs.Int("maxGap", def.MaxGap, "Maximal distance between the end of one copy and the start of the other. -1 for no limit."),
		motif:         fs.String("motif", "", "Only report repeats containing this mask of letters, '.', [..] and [^..] classes."),
		probability:   fs.Bool("prob", false, "Only report repeats unlikely to occur in a random sequence."),
		pValue:        fs.Float64("p", def.PValue, "P value for -prob."),
		exclude:       fs.Int("exclude", 0, "Remove runs of -excludeLetter at least this long before searching. 0 keeps every letter."),
		excludeLetter: fs.String("excludeLetter", string(def.ExcludeLetter), "Letter removed by -exclude."),
		combined:      fs.String("msr", "", "Search every sequence of the input together under this name."),
		verbose:       fs.Int("v", 0, "Verbose output by setting to >0."),
	}
}

// settings converts the parsed flags, exiting on values that can not be parsed.
func (f *searchFlags) settings() scan.Settings {
	var err error
	s := scan.DefaultSettings()
	s.Input = *f.input
	s.MinLength = *f.minLength
	s.Mode, err = search.ParseMode(*f.mode)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
	s.Alphabet, err = alphabet.ParseKind(*f.alphabet)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
	s.Rules = *f.rules
	if *f.groups != "" {
		s.Groups = strings.Split(*f.groups, ",")
	}
	s.MaxGap = *f.maxGap
	s.Motif = *f.motif
	s.Probability = *f.probability
	s.PValue = *f.pValue
	s.Exclude = *f.exclude
	if len(*f.excludeLetter) != 1 {
		errExit("ERROR: -excludeLetter must be a single letter")
	}
	s.ExcludeLetter = strings.ToUpper(*f.excludeLetter)[0]
	s.Combined = *f.combined
	s.Verbose = *f.verbose

	if err = s.Validate(); err != nil {
		errExit("ERROR: " + err.Error())
	}
	return s
}
