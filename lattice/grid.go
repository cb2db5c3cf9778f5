// Package lattice is a sparse integer grid keyed by 2D vectors, for
// puzzle-style lattice walks.
//
// Cells iterate in vector order (x first, then y). Neighbor expansion follows
// the order of vec.Vec2.Adjacent, so searches are deterministic.
package lattice

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"rsc.io/omap"
	"rsc.io/top"

	"github.com/cwbudde/algo-ndvec/vec"
)

// ErrEmptyGrid is returned by Bounds when the grid has no cells.
var ErrEmptyGrid = errors.New("lattice: grid is empty")

// Point is a grid coordinate.
type Point = vec.Vec2[int]

// Grid maps points to cell values of type E.
// A Grid is not safe for concurrent mutation.
type Grid[E any] struct {
	cells *omap.MapFunc[Point, E]
	n     int
}

// New returns an empty grid.
func New[E any]() *Grid[E] {
	return &Grid[E]{cells: omap.NewMapFunc[Point, E](Point.Compare)}
}

// Parse reads a character grid from r. The character at column x of line y
// becomes the cell (x, y) shifted by the configured origin. decode converts a
// character to a cell value; returning false leaves the point empty.
func Parse[E any](r io.Reader, decode func(rune) (E, bool), opts ...ParseOption) (*Grid[E], error) {
	cfg := ApplyParseOptions(opts...)
	g := New[E]()

	sc := bufio.NewScanner(r)
	for y := 0; sc.Scan(); y++ {
		for x, ch := range []rune(sc.Text()) {
			if strings.ContainsRune(cfg.Skip, ch) {
				continue
			}
			e, ok := decode(ch)
			if !ok {
				continue
			}
			g.Set(cfg.Origin.Add(vec.New2(x, y)), e)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lattice: read grid: %w", err)
	}
	return g, nil
}

// Len returns the number of cells.
func (g *Grid[E]) Len() int { return g.n }

// Get returns the value at p and whether p is a cell.
func (g *Grid[E]) Get(p Point) (E, bool) { return g.cells.Get(p) }

// Has reports whether p is a cell.
func (g *Grid[E]) Has(p Point) bool {
	_, ok := g.cells.Get(p)
	return ok
}

// Set stores e at p.
func (g *Grid[E]) Set(p Point, e E) {
	if !g.Has(p) {
		g.n++
	}
	g.cells.Set(p, e)
}

// Delete removes p from the grid.
func (g *Grid[E]) Delete(p Point) {
	if g.Has(p) {
		g.n--
		g.cells.Delete(p)
	}
}

// All returns an iterator over the cells in vector order.
func (g *Grid[E]) All() iter.Seq2[Point, E] { return g.cells.All() }

// Points returns the cell coordinates in vector order.
func (g *Grid[E]) Points() []Point {
	out := make([]Point, 0, g.n)
	for p := range g.cells.All() {
		out = append(out, p)
	}
	return out
}

// Bounds returns the smallest and largest coordinate on each axis.
func (g *Grid[E]) Bounds() (lo, hi Point, err error) {
	if g.n == 0 {
		return Point{}, Point{}, ErrEmptyGrid
	}
	first := true
	for p := range g.cells.All() {
		if first {
			lo, hi, first = p, p, false
			continue
		}
		lo, hi = lo.Min(p), hi.Max(p)
	}
	return lo, hi, nil
}

// Neighbors returns the adjacent points of p that are cells, in Adjacent order.
func (g *Grid[E]) Neighbors(p Point) []Point {
	var out []Point
	for _, n := range p.Adjacent() {
		if g.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

// Distances returns the number of steps from start to every cell reachable
// through cells accepted by passable. A nil passable accepts every cell.
// start must be a cell; otherwise the result is empty.
func (g *Grid[E]) Distances(start Point, passable func(Point, E) bool) map[Point]int {
	dist := make(map[Point]int)
	if !g.Has(start) {
		return dist
	}
	dist[start] = 0

	queue := []Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, n := range p.Adjacent() {
			if _, seen := dist[n]; seen {
				continue
			}
			e, ok := g.cells.Get(n)
			if !ok || (passable != nil && !passable(n, e)) {
				continue
			}
			dist[n] = dist[p] + 1
			queue = append(queue, n)
		}
	}
	return dist
}

// ShortestPath returns the number of steps from start to goal, or false if
// goal cannot be reached.
func (g *Grid[E]) ShortestPath(start, goal Point, passable func(Point, E) bool) (int, bool) {
	d, ok := g.Distances(start, passable)[goal]
	return d, ok
}

type candidate struct {
	p Point
	d int
}

// rank orders candidates so that nearer points rank higher, breaking ties by
// vector order.
func (c candidate) rank(o candidate) int {
	if c.d != o.d {
		return cmp.Compare(o.d, c.d)
	}
	return o.p.Compare(c.p)
}

// Nearest returns up to k cells closest to p by Manhattan distance, nearest
// first. Ties are broken by vector order.
func (g *Grid[E]) Nearest(p Point, k int) []Point {
	if k <= 0 {
		return nil
	}
	best := top.New(k, candidate.rank)
	for q := range g.cells.All() {
		best.Add(candidate{p: q, d: q.Distance(p)})
	}
	found := best.Take()
	slices.SortFunc(found, func(a, b candidate) int { return b.rank(a) })

	out := make([]Point, len(found))
	for i, c := range found {
		out[i] = c.p
	}
	return out
}

// Render draws the bounding box of the grid, one line per y, using glyph
// for cells and empty for missing points.
func (g *Grid[E]) Render(glyph func(E) rune, empty rune) string {
	lo, hi, err := g.Bounds()
	if err != nil {
		return ""
	}
	var b strings.Builder
	for y := lo.Y(); y <= hi.Y(); y++ {
		for x := lo.X(); x <= hi.X(); x++ {
			if e, ok := g.cells.Get(vec.New2(x, y)); ok {
				b.WriteRune(glyph(e))
			} else {
				b.WriteRune(empty)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
