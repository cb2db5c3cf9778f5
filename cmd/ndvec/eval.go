package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-ndvec/vec"
)

type operation struct {
	operands int
	dim      int // required arity, 0 for any
}

var operations = map[string]operation{
	"add":      {operands: 2},
	"sub":      {operands: 2},
	"mul":      {operands: 2},
	"div":      {operands: 2},
	"min":      {operands: 2},
	"max":      {operands: 2},
	"dist":     {operands: 2},
	"dot":      {operands: 2},
	"cmp":      {operands: 2},
	"abs":      {operands: 1},
	"signum":   {operands: 1},
	"neg":      {operands: 1},
	"sum":      {operands: 1},
	"prod":     {operands: 1},
	"minaxis":  {operands: 1},
	"maxaxis":  {operands: 1},
	"hash":     {operands: 1},
	"cross":    {operands: 2, dim: 3},
	"left":     {operands: 1, dim: 2},
	"right":    {operands: 1, dim: 2},
	"adjacent": {operands: 1, dim: 2},
}

var errDivideByZero = errors.New("integer division by zero")

func evaluateFlags(opts options, args []string, stdin io.Reader) (string, error) {
	op, ok := operations[opts.op]
	if !ok {
		return "", fmt.Errorf("unknown operation %q (use -list to see available)", opts.op)
	}
	if opts.dim < 1 || opts.dim > 4 {
		return "", fmt.Errorf("-dim must be in [1,4]: %d", opts.dim)
	}
	if op.dim != 0 && op.dim != opts.dim {
		return "", fmt.Errorf("operation %q requires -dim %d", opts.op, op.dim)
	}
	if len(args) != 0 && len(args) != op.operands {
		return "", fmt.Errorf("operation %q takes %d operand(s), got %d", opts.op, op.operands, len(args))
	}

	src := operandSource(args, stdin)
	switch strings.ToLower(opts.typ) {
	case "int":
		return dispatch[int64](opts.dim, opts.op, op.operands, src)
	case "float":
		return dispatch[float64](opts.dim, opts.op, op.operands, src)
	}
	return "", fmt.Errorf("unknown element type %q (want int or float)", opts.typ)
}

// source decodes operand i into dst.
type source func(i int, dst vecDecoder) error

type vecDecoder interface {
	UnmarshalText([]byte) error
	fmt.Scanner
}

// operandSource decodes command-line operands strictly, or scans operands
// one after another from stdin when none are given.
func operandSource(args []string, stdin io.Reader) source {
	if len(args) > 0 {
		return func(i int, dst vecDecoder) error {
			return dst.UnmarshalText([]byte(args[i]))
		}
	}
	br := bufio.NewReader(stdin)
	return func(_ int, dst vecDecoder) error {
		_, err := fmt.Fscan(br, dst)
		return err
	}
}

func dispatch[T vec.Scalar](dim int, op string, n int, src source) (string, error) {
	switch dim {
	case 1:
		return evaluate[T, vec.Vec1[T]](op, n, src, nil)
	case 2:
		return evaluate[T, vec.Vec2[T]](op, n, src, planar[T])
	case 3:
		return evaluate[T, vec.Vec3[T]](op, n, src, spatial[T])
	}
	return evaluate[T, vec.Vec4[T]](op, n, src, nil)
}

// special evaluates the operations that only exist for one arity.
type special[V any] func(op string, vs []V) (string, bool)

func planar[T vec.Scalar](op string, vs []vec.Vec2[T]) (string, bool) {
	v := vs[0]
	switch op {
	case "left":
		return v.RotateLeft().String(), true
	case "right":
		return v.RotateRight().String(), true
	case "adjacent":
		ns := v.Adjacent()
		parts := make([]string, len(ns))
		for i, n := range ns {
			parts[i] = n.String()
		}
		return strings.Join(parts, "\n"), true
	}
	return "", false
}

func spatial[T vec.Scalar](op string, vs []vec.Vec3[T]) (string, bool) {
	if op == "cross" {
		return vs[0].Cross(vs[1]).String(), true
	}
	return "", false
}

func evaluate[T vec.Scalar, V vec.Arith[T, V], P vec.Text[V]](op string, n int, src source, extra special[V]) (string, error) {
	vs := make([]V, n)
	for i := range vs {
		if err := src(i, P(&vs[i])); err != nil {
			return "", fmt.Errorf("operand %d: %w", i+1, err)
		}
	}
	if extra != nil {
		if out, ok := extra(op, vs); ok {
			return out, nil
		}
	}

	a := vs[0]
	switch op {
	case "abs":
		return a.Abs().String(), nil
	case "signum":
		return a.Signum().String(), nil
	case "neg":
		return a.Neg().String(), nil
	case "sum":
		return formatScalar(a.Sum()), nil
	case "prod":
		return formatScalar(a.Prod()), nil
	case "minaxis":
		return formatScalar(a.MinAxis()), nil
	case "maxaxis":
		return formatScalar(a.MaxAxis()), nil
	case "hash":
		return fmt.Sprintf("%#016x", a.Hash()), nil
	}

	b := vs[1]
	switch op {
	case "add":
		return a.Add(b).String(), nil
	case "sub":
		return a.Sub(b).String(), nil
	case "mul":
		return a.Mul(b).String(), nil
	case "div":
		if hasZeroIntegerAxis[T](b) {
			return "", errDivideByZero
		}
		return a.Div(b).String(), nil
	case "min":
		return a.Min(b).String(), nil
	case "max":
		return a.Max(b).String(), nil
	case "dist":
		return formatScalar(a.Distance(b)), nil
	case "dot":
		return formatScalar(a.Dot(b)), nil
	case "cmp":
		return strconv.Itoa(a.Compare(b)), nil
	}
	return "", fmt.Errorf("operation %q is not defined for this arity", op)
}

// hasZeroIntegerAxis reports whether dividing by v would panic.
func hasZeroIntegerAxis[T vec.Scalar](v vec.Vector[T]) bool {
	var one T = 1
	if one/2 != 0 {
		return false // floating point
	}
	for _, x := range v.Values() {
		if x == 0 {
			return true
		}
	}
	return false
}

// formatScalar prints a reduction result in the notation used for axes.
func formatScalar[T vec.Scalar](x T) string {
	b, _ := vec.New1(x).MarshalText()
	return string(b)
}
