package main

import (
	"flag"
	"fmt"
	"io"
)

type cliOptions struct {
	formula  string
	out      string
	bound    int
	degree   int
	logLevel string
}

// parseFlags reads the documented two-scalar-flag contract of §6 (-f,
// -o) plus the SPEC_FULL extensions -bound and -n. ok is false if
// parsing failed or -f was omitted, in which case a message has already
// been written to stderr.
func parseFlags(args []string, stderr io.Writer) (cliOptions, bool) {
	fs := flag.NewFlagSet("cltlsup", flag.ContinueOnError)
	fs.SetOutput(stderr)

	formulaFlag := fs.String("f", "", "CLTL formula (required)")
	outFlag := fs.String("o", "", "DOT output path for the translated automaton (optional)")
	boundFlag := fs.Int("bound", 0, "SUP bound; non-positive disables the short-circuit")
	degreeFlag := fs.Int("n", -1, "fixed instantiation degree; when >= 0, print the instantiated formula instead of running SUP")
	logLevelFlag := fs.String("loglevel", "info", "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, false
	}
	if *formulaFlag == "" {
		fmt.Fprintln(stderr, "cltlsup: -f is required")
		return cliOptions{}, false
	}

	return cliOptions{
		formula:  *formulaFlag,
		out:      *outFlag,
		bound:    *boundFlag,
		degree:   *degreeFlag,
		logLevel: *logLevelFlag,
	}, true
}
