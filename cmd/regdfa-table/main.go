// Command regdfa-table converts a human-authored transition-function
// listing into the canonical .dfa table format, completing any missing
// transitions with a dead sink state.
package main

import (
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/coregx/regdfa/dfafile"
	"github.com/coregx/regdfa/tabledfa"
)

func parseFlags() (alphabetStr, specFile, outputFile string, verbose bool) {
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Converts a user-authored transition-function listing into a canonical .dfa table.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.BoolVarP(&verbose, "verbose", "v", false, "display verbose conversion progress"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s\n", err)
	}

	args := flagSet.CommandLine.Args()
	if len(args) != 3 {
		gologger.Fatal().Msgf("usage: regdfa-table <alphabet_string> <user_spec_file> <output_dfa_file>")
	}
	return args[0], args[1], args[2], verbose
}

func main() {
	alphabetStr, specFile, outputFile, verbose := parseFlags()
	if verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	symbols, index, err := tabledfa.ParseAlphabetString(alphabetStr)
	if err != nil {
		gologger.Fatal().Msgf("alphabet %q: %v", alphabetStr, err)
	}
	gologger.Verbose().Msgf("alphabet: %d symbols", len(symbols))

	in, err := os.Open(specFile)
	if err != nil {
		gologger.Fatal().Msgf("opening %s: %v", specFile, err)
	}
	defer in.Close()

	d, err := tabledfa.ParseUserSpec(in, symbols, index)
	if err != nil {
		gologger.Fatal().Msgf("%s: %v", specFile, err)
	}
	gologger.Verbose().Msgf("converted to %d-state complete DFA", d.NumStates)

	out, err := os.Create(outputFile)
	if err != nil {
		gologger.Fatal().Msgf("creating %s: %v", outputFile, err)
	}
	defer out.Close()

	if err := dfafile.Encode(out, d); err != nil {
		gologger.Fatal().Msgf("writing %s: %v", outputFile, err)
	}

	gologger.Info().Msgf("wrote %d-state DFA to %s", d.NumStates, outputFile)
}
