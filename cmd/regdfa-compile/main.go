// Command regdfa-compile reads a pattern and alphabet specification from
// an input file and writes the minimized DFA that recognizes the
// pattern to an output file in the canonical .dfa format.
package main

import (
	"bufio"
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/coregx/regdfa/compile"
	"github.com/coregx/regdfa/dfafile"
)

// gologgerVerbose adapts gologger's Verbose level to compile.Logger.
type gologgerVerbose struct{}

func (gologgerVerbose) Verbosef(format string, args ...interface{}) {
	gologger.Verbose().Msgf(format, args...)
}

func parseFlags() (inputFile, outputFile string, verbose bool) {
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Compiles a regular expression over a fixed alphabet into a minimal DFA.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.BoolVarP(&verbose, "verbose", "v", false, "display verbose compilation progress"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s\n", err)
	}

	args := flagSet.CommandLine.Args()
	if len(args) != 2 {
		gologger.Fatal().Msgf("usage: regdfa-compile <input_file> <output_dfa_file>")
	}
	return args[0], args[1], verbose
}

// readInput reads line 1 (pattern) and line 2 (alphabet specification)
// from the input file, per the input-file grammar.
func readInput(path string) (pattern, alphabetSpec string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		return "", "", sc.Err()
	}
	pattern = sc.Text()
	if !sc.Scan() {
		return "", "", sc.Err()
	}
	alphabetSpec = sc.Text()
	return pattern, alphabetSpec, nil
}

func main() {
	inputFile, outputFile, verbose := parseFlags()
	if verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	pattern, alphabetSpec, err := readInput(inputFile)
	if err != nil {
		gologger.Fatal().Msgf("reading %s: %v", inputFile, err)
	}

	d, err := compile.Compile(pattern, alphabetSpec, compile.WithLogger(gologgerVerbose{}))
	if err != nil {
		gologger.Fatal().Msgf("%v", err)
	}

	out, err := os.Create(outputFile)
	if err != nil {
		gologger.Fatal().Msgf("creating %s: %v", outputFile, err)
	}
	defer out.Close()

	if err := dfafile.Encode(out, d); err != nil {
		gologger.Fatal().Msgf("writing %s: %v", outputFile, err)
	}

	gologger.Info().Msgf("compiled %d-state DFA to %s", d.NumStates, outputFile)
}
