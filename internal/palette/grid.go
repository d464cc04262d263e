// Package palette implements the bounded, ordered colour store edited by the
// grid editor. Storage is a fixed arena sized cols*rows plus a length counter,
// so inserts and deletes are shifts and never reallocate.
package palette

import (
	"errors"
	"fmt"

	"hexgrid/internal/color"
)

// Default dimensions.
const (
	DefaultCols = 8
	DefaultRows = 8
)

var (
	// ErrOutOfRange is returned for an index outside the current length.
	ErrOutOfRange = errors.New("index out of range")
	// ErrCapacityExceeded is returned when an insert would exceed cols*rows.
	ErrCapacityExceeded = errors.New("palette is full")
	// ErrMinimumSize is returned when a delete would leave the palette empty.
	ErrMinimumSize = errors.New("palette cannot be empty")
)

// Grid holds between 1 and cols*rows colours.
type Grid struct {
	cells []color.Color
	n     int
	cols  int
	rows  int
}

// New returns a grid of the given dimensions holding a single default cell.
// Dimensions below 1 are raised to 1.
func New(cols, rows int) *Grid {
	cols = max(cols, 1)
	rows = max(rows, 1)
	g := &Grid{
		cells: make([]color.Color, cols*rows),
		n:     1,
		cols:  cols,
		rows:  rows,
	}
	g.cells[0] = color.Default
	return g
}

// Len returns the number of stored colours.
func (g *Grid) Len() int { return g.n }

// Cap returns cols*rows.
func (g *Grid) Cap() int { return len(g.cells) }

// Cols returns the row width used for 2-D movement.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Full reports whether another insert would fail.
func (g *Grid) Full() bool { return g.n == len(g.cells) }

// Get returns the colour at i.
func (g *Grid) Get(i int) (color.Color, error) {
	if i < 0 || i >= g.n {
		return color.Color{}, g.rangeErr(i)
	}
	return g.cells[i], nil
}

// Set replaces the colour at i and returns the previous value.
func (g *Grid) Set(i int, c color.Color) (color.Color, error) {
	if i < 0 || i >= g.n {
		return color.Color{}, g.rangeErr(i)
	}
	prev := g.cells[i]
	g.cells[i] = c
	return prev, nil
}

// InsertAt places c at index i, shifting cells at i and beyond to the right.
// i may equal Len to append.
func (g *Grid) InsertAt(i int, c color.Color) error {
	if g.Full() {
		return fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, len(g.cells))
	}
	if i < 0 || i > g.n {
		return g.rangeErr(i)
	}
	copy(g.cells[i+1:g.n+1], g.cells[i:g.n])
	g.cells[i] = c
	g.n++
	return nil
}

// DeleteAt removes and returns the colour at i, shifting later cells left.
func (g *Grid) DeleteAt(i int) (color.Color, error) {
	if g.n == 1 {
		return color.Color{}, ErrMinimumSize
	}
	if i < 0 || i >= g.n {
		return color.Color{}, g.rangeErr(i)
	}
	removed := g.cells[i]
	copy(g.cells[i:g.n-1], g.cells[i+1:g.n])
	g.n--
	g.cells[g.n] = color.Color{}
	return removed, nil
}

// Colors returns a copy of the stored colours in order.
func (g *Grid) Colors() []color.Color {
	out := make([]color.Color, g.n)
	copy(out, g.cells[:g.n])
	return out
}

// Clamp limits an index to [0, Len-1].
func (g *Grid) Clamp(i int) int {
	return min(max(i, 0), g.n-1)
}

func (g *Grid) rangeErr(i int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, g.n)
}
