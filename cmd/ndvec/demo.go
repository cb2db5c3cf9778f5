package main

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"

	"github.com/cwbudde/algo-ndvec/vec"
	"github.com/cwbudde/algo-ndvec/vec/batch"
)

func demo() (v1, v2, v3 vec.Vec3[int], result int) {
	v1 = vec.New3(1, -2, 3)
	v2 = vec.New3(-3, 2, -1)
	v3 = vec.New3(5, 6, 3)
	return v1, v2, v3, v1.Sub(v2).Sum() * v1.Distance(v3)
}

func printDemo(w io.Writer, lg *slog.Logger) {
	v1, v2, v3, result := demo()
	lg.Debug("demo", "v1", v1, "v2", v2, "v3", v3)
	fmt.Fprintln(w, result)
}

func printCPU(w io.Writer, lg *slog.Logger) {
	f := batch.Features()
	lg.Debug("cpu features", "sse2", f.HasSSE2, "avx2", f.HasAVX2, "neon", f.HasNEON, "forceGeneric", f.ForceGeneric)
	fmt.Fprintf(w, "arch: %s\nsimd: %s\n", f.Architecture, batch.Level())
}

func printList(w io.Writer) {
	for _, n := range slices.Sorted(maps.Keys(operations)) {
		op := operations[n]
		switch {
		case op.dim != 0:
			fmt.Fprintf(w, "%s\t%d operand(s), -dim %d only\n", n, op.operands, op.dim)
		default:
			fmt.Fprintf(w, "%s\t%d operand(s)\n", n, op.operands)
		}
	}
}
