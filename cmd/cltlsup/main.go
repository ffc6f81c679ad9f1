// Command cltlsup is the thin CLI wrapper named in spec §6: it parses a
// CLTL formula, translates it to a counter automaton, and reports the
// supremum of its accepting runs' values.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/spactiongo/cltlsup/automaton/config"
	"github.com/spactiongo/cltlsup/automaton/dot"
	"github.com/spactiongo/cltlsup/automaton/supremum"
	"github.com/spactiongo/cltlsup/automaton/tableau"
	"github.com/spactiongo/cltlsup/formula"
	internalconfig "github.com/spactiongo/cltlsup/internal/config"
	"github.com/spactiongo/cltlsup/internal/xlog"
	"github.com/spactiongo/cltlsup/instantiate"
	"github.com/spactiongo/cltlsup/parser"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, ok := parseFlags(args, stderr)
	if !ok {
		return 2
	}

	log := xlog.New(xlog.WithLevel(xlog.ParseLevel(opts.logLevel)), xlog.WithOutput(stderr))

	f := formula.NewFactory()
	phi, err := parser.Parse(f, opts.formula)
	if err != nil {
		parser.ReportError(stderr, opts.formula, err)
		return 1
	}

	if opts.degree >= 0 {
		return runInstantiate(f, phi, opts.degree, stdout, stderr)
	}

	cfgOpt := internalconfig.New(internalconfig.WithBound(opts.bound))
	return runSupremum(f, phi, cfgOpt, log, opts.out, stdout, stderr)
}

// runInstantiate implements the -n extension: apply the Instantiator at
// a fixed degree and print the resulting formula instead of running the
// full CA/CFG/SUP pipeline.
func runInstantiate(f *formula.Factory, phi formula.Handle, n int, stdout, stderr io.Writer) int {
	switch {
	case f.IsInfLTL(phi):
		out, err := instantiate.Inf(f, phi, n)
		if err != nil {
			fmt.Fprintln(stderr, "cltlsup:", err)
			return 1
		}
		fmt.Fprintln(stdout, f.String(out))
		return 0
	case f.IsSupLTL(phi):
		out, err := instantiate.Sup(f, phi, n)
		if err != nil {
			fmt.Fprintln(stderr, "cltlsup:", err)
			return 1
		}
		fmt.Fprintln(stdout, f.String(out))
		return 0
	default:
		fmt.Fprintln(stderr, "cltlsup: formula mixes UN and RN; cannot instantiate under a single semantics")
		return 1
	}
}

func runSupremum(f *formula.Factory, phi formula.Handle, cfgOpt *internalconfig.Config, log zerolog.Logger, outPath string, stdout, stderr io.Writer) int {
	ca, _, err := tableau.Translate(f, phi, log)
	if err != nil {
		fmt.Fprintln(stderr, "cltlsup:", err)
		return 1
	}

	if outPath != "" {
		file, err := os.Create(outPath)
		if err != nil {
			fmt.Fprintln(stderr, "cltlsup:", err)
			return 1
		}
		defer file.Close()
		if err := dot.Render(ca, file); err != nil {
			fmt.Fprintln(stderr, "cltlsup:", err)
			return 1
		}
	}

	cfg := config.New(ca)
	res, err := supremum.FindSupremum(cfg, cfgOpt, log)
	if err != nil {
		fmt.Fprintln(stderr, "cltlsup:", err)
		return 1
	}
	fmt.Fprintln(stdout, res)
	return 0
}
