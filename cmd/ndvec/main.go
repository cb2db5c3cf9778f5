// Command ndvec evaluates small fixed-arity vector expressions.
//
// Usage:
//
//	ndvec [flags] [operand ...]
//
// Without flags or operands it runs the built-in demo computation
// (v1 - v2).Sum() * v1.Distance(v3). Operands are bare whitespace-separated
// axis values; when none are given they are read from standard input.
// Flags must come before the operands. An operand starting with a negative
// number ends the flags, as does a "--" argument.
//
// Examples:
//
//	ndvec
//	ndvec -op sub "1 -2 3" "-3 2 -1"
//	ndvec -dim 2 -op left "3 4"
//	ndvec -op signum "-7 0 9"
//	ndvec -op add -- "-1 -2 -3" "4 5 6"
//	ndvec -type float -op dot "0.5 1 2" "2 2 2"
//	echo "1 2 3 4 5 6" | ndvec -op cross
//	ndvec -cpu
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	dim     int
	typ     string
	op      string
	cpu     bool
	list    bool
	verbose bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ndvec", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.IntVar(&opts.dim, "dim", 3, "number of axes (1-4)")
	fs.StringVar(&opts.typ, "type", "int", "element type: int or float")
	fs.StringVar(&opts.op, "op", "", "operation to evaluate (use -list to see available)")
	fs.BoolVar(&opts.cpu, "cpu", false, "print the SIMD level used by batch kernels")
	fs.BoolVar(&opts.list, "list", false, "list available operations")
	fs.BoolVar(&opts.verbose, "v", false, "log debug information to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: ndvec [flags] [operand ...]\n\n")
		fmt.Fprintf(stderr, "Evaluates vector operations on whitespace-separated operands.\n")
		fmt.Fprintf(stderr, "Without -op, runs the built-in demo.\n")
		fmt.Fprintf(stderr, "Flags come first; a negative operand or \"--\" ends them.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  ndvec -op sub \"1 -2 3\" \"-3 2 -1\"\n")
		fmt.Fprintf(stderr, "  ndvec -dim 2 -op left \"3 4\"\n")
		fmt.Fprintf(stderr, "  ndvec -op signum \"-7 0 9\"\n")
		fmt.Fprintf(stderr, "  ndvec -op add -- \"-1 -2 -3\" \"4 5 6\"\n")
		fmt.Fprintf(stderr, "  ndvec -cpu\n")
	}
	if err := fs.Parse(separateOperands(args)); err != nil {
		return 2
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	lg := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	switch {
	case opts.list:
		printList(stdout)
		return 0
	case opts.cpu:
		printCPU(stdout, lg)
		return 0
	case opts.op == "":
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "error: operands given without -op\n")
			return 2
		}
		printDemo(stdout, lg)
		return 0
	}

	lg.Debug("evaluate", "dim", opts.dim, "type", opts.typ, "op", opts.op, "operands", fs.NArg())
	out, err := evaluateFlags(opts, fs.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if _, err := fmt.Fprintln(stdout, out); err != nil {
		fmt.Fprintf(stderr, "error: failed to write output: %v\n", err)
		return 1
	}
	return 0
}

// separateOperands inserts the "--" terminator before the first argument
// that is a negative operand, so flag parsing does not read it as a flag.
func separateOperands(args []string) []string {
	for i, a := range args {
		if a == "--" {
			return args
		}
		if isNegativeOperand(a) {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
	}
	return args
}

// isNegativeOperand reports whether a starts with a negative axis value such
// as -7, -.5 or -inf. No flag name starts with a digit or a dot.
func isNegativeOperand(a string) bool {
	if len(a) < 2 || a[0] != '-' {
		return false
	}
	c := a[1]
	if c >= '0' && c <= '9' || c == '.' {
		return true
	}
	first := strings.Fields(a[1:])
	return len(first) > 0 && strings.EqualFold(first[0], "inf")
}
