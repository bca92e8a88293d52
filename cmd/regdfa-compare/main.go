// Command regdfa-compare decides behavioral equivalence between a
// reference DFA and a user-supplied DFA by running both against a
// labeled test corpus, reporting the first string on which they
// diverge.
package main

import (
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/coregx/regdfa/compare"
	"github.com/coregx/regdfa/dfa"
	"github.com/coregx/regdfa/dfafile"
)

func parseFlags() (refFile, userFile, testsFile string, verbose bool) {
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Compares a reference DFA and a user DFA against a labeled test corpus.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.BoolVarP(&verbose, "verbose", "v", false, "display verbose comparison progress"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s\n", err)
	}

	args := flagSet.CommandLine.Args()
	if len(args) != 3 {
		gologger.Fatal().Msgf("usage: regdfa-compare <ref.dfa> <user.dfa> <tests.txt>")
	}
	return args[0], args[1], args[2], verbose
}

func openDFA(path string) *dfa.DFA {
	f, err := os.Open(path)
	if err != nil {
		gologger.Fatal().Msgf("opening %s: %v", path, err)
	}
	defer f.Close()

	d, err := dfafile.Decode(f)
	if err != nil {
		gologger.Fatal().Msgf("%s: %v", path, err)
	}
	return d
}

func main() {
	refFile, userFile, testsFile, verbose := parseFlags()
	if verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	ref := openDFA(refFile)
	user := openDFA(userFile)
	gologger.Verbose().Msgf("loaded reference (%d states) and user (%d states) DFAs", ref.NumStates, user.NumStates)

	tests, err := os.Open(testsFile)
	if err != nil {
		gologger.Fatal().Msgf("opening %s: %v", testsFile, err)
	}
	defer tests.Close()

	res, err := compare.Compare(ref, user, tests)
	if err != nil {
		gologger.Fatal().Msgf("%v", err)
	}

	for _, w := range res.Warnings {
		gologger.Warning().Msgf("test label mismatch at line %d: declared %v, reference DFA says %v (string %q)", w.Line, w.Label, w.RefAccept, w.String)
	}

	if !res.Passed() {
		m := res.Mismatch
		gologger.Error().Msgf("FAIL at test line %d: w = %q, ref_accept = %v, user_accept = %v, label = %v", m.Line, m.String, m.RefAccept, m.UserAccept, m.Label)
		os.Exit(2)
	}

	gologger.Info().Msgf("PASS: %d tests matched (user DFA behavior == reference DFA behavior)", res.Total)
}
