// Package gridmap wraps a binary matrix as a searchable map, in either of
// two realizations: a planar map with hard edges, or a spherical
// (toroidal) map whose right edge glues to the left and whose bottom edge
// glues to the top. Both share the same interface and differ only in
// frame-extraction semantics at the edges.
package gridmap

import (
	"errors"

	"github.com/nullsector/invaderscan/bitmatrix"
	"github.com/nullsector/invaderscan/coords"
)

// ErrEmptyMap is returned when a map is built from a matrix with zero
// rows or columns.
var ErrEmptyMap = errors.New("gridmap: map must not be empty")

// Map is the capability set a radar needs from either map realization:
// dimensions, and extraction of a rectangular sub-frame.
type Map interface {
	Width() int
	Height() int
	FrameAt(f coords.Frame) bitmatrix.Matrix
	Bits() bitmatrix.Matrix
}

// base holds the state shared by both realizations.
type base struct {
	bits bitmatrix.Matrix
}

func newBase(m bitmatrix.Matrix) (base, error) {
	if m.Width() == 0 || m.Height() == 0 {
		return base{}, ErrEmptyMap
	}
	return base{bits: m}, nil
}

func (b base) Width() int             { return b.bits.Width() }
func (b base) Height() int            { return b.bits.Height() }
func (b base) Bits() bitmatrix.Matrix { return b.bits }

// Planar is a Map with hard edges: no window may extend past any edge.
type Planar struct {
	base
}

// NewPlanar builds a Planar map. It fails with ErrEmptyMap if m has zero
// rows or columns.
func NewPlanar(m bitmatrix.Matrix) (Planar, error) {
	b, err := newBase(m)
	if err != nil {
		return Planar{}, err
	}
	return Planar{base: b}, nil
}

// FrameAt returns the rectangular sub-matrix of bits spanning f, which
// must satisfy 0 <= XLeft <= XRight < Width() and 0 <= YTop <= YBottom <
// Height(). The caller (the planar radar) is responsible for only
// requesting in-bounds, non-wrapping frames.
func (p Planar) FrameAt(f coords.Frame) bitmatrix.Matrix {
	height := f.YBottom - f.YTop + 1
	rows := make([][]int, height)
	for i := 0; i < height; i++ {
		row := p.bits.Row(f.YTop + i)[f.XLeft : f.XRight+1]
		intRow := make([]int, len(row))
		for j, bit := range row {
			intRow[j] = int(bit)
		}
		rows[i] = intRow
	}
	// Construction cannot fail: dimensions and bit values are inherited
	// from an already-validated matrix.
	frame, _ := bitmatrix.New(rows)
	return frame
}

// Spherical is a Map whose edges wrap: a window may extend past the
// right edge (continuing from column 0) or the bottom edge (continuing
// from row 0), or both.
type Spherical struct {
	base
}

// NewSpherical builds a Spherical map. It fails with ErrEmptyMap if m has
// zero rows or columns.
func NewSpherical(m bitmatrix.Matrix) (Spherical, error) {
	b, err := newBase(m)
	if err != nil {
		return Spherical{}, err
	}
	return Spherical{base: b}, nil
}

// FrameAt returns the sub-matrix of bits spanning f. Coordinates remain
// in [0,Width()) x [0,Height()), but f.WrapsX() selects columns
// [XLeft,Width()) ++ [0,XRight] instead of a plain slice, and f.WrapsY()
// selects rows [YTop,Height()) ++ [0,YBottom] likewise; the two wraps
// apply independently.
func (s Spherical) FrameAt(f coords.Frame) bitmatrix.Matrix {
	rowIdxs := rowIndices(f.YTop, f.YBottom, s.Height())
	rows := make([][]int, len(rowIdxs))
	for i, y := range rowIdxs {
		wrapped := s.bits.WrappedRow(y, f.XLeft, f.XRight)
		intRow := make([]int, len(wrapped))
		for j, bit := range wrapped {
			intRow[j] = int(bit)
		}
		rows[i] = intRow
	}
	frame, _ := bitmatrix.New(rows)
	return frame
}

// rowIndices expands a (possibly wrapping) row range into the concrete
// sequence of row indices it covers.
func rowIndices(yTop, yBottom, height int) []int {
	if yTop <= yBottom {
		idxs := make([]int, yBottom-yTop+1)
		for i := range idxs {
			idxs[i] = yTop + i
		}
		return idxs
	}
	idxs := make([]int, 0, (height-yTop)+(yBottom+1))
	for y := yTop; y < height; y++ {
		idxs = append(idxs, y)
	}
	for y := 0; y <= yBottom; y++ {
		idxs = append(idxs, y)
	}
	return idxs
}
