// Package sat implements a summed-area (prefix-sum) table over a binary
// matrix: once built, the number of 1-bits in any axis-aligned,
// non-wrapping rectangle can be answered in O(1), which is what lets a
// radar discard most candidate windows before paying for a full
// bit-by-bit comparison.
package sat

import "github.com/nullsector/invaderscan/coords"

// Table is a summed-area table built over a binary matrix. Table[y][x]
// holds the count of 1-bits in the rectangle [0,x] x [0,y]. It is
// immutable once built.
type Table struct {
	sums   []int // row-major, (width+0) x (height+0); sums[y*width+x]
	width  int
	height int
}

// rowSource is the minimal view of a binary matrix Build needs: a row
// accessor and dimensions. bitmatrix.Matrix satisfies this directly.
type rowSource interface {
	Width() int
	Height() int
	Row(y int) []uint8
}

// Build computes the summed-area table for m in a single O(width*height)
// pass: for each row it accumulates a running row-prefix, then adds the
// previous row's table entry, so no floating point or second pass is
// needed.
func Build(m rowSource) Table {
	width, height := m.Width(), m.Height()
	t := Table{sums: make([]int, width*height), width: width, height: height}

	prevRow := make([]int, width)
	for y := 0; y < height; y++ {
		row := m.Row(y)
		rowPrefix := 0
		cur := make([]int, width)
		for x, bit := range row {
			rowPrefix += int(bit)
			above := 0
			if y > 0 {
				above = prevRow[x]
			}
			cur[x] = above + rowPrefix
		}
		copy(t.sums[y*width:(y+1)*width], cur)
		prevRow = cur
	}
	return t
}

// Sum returns the number of 1-bits within the non-wrapping rectangle r,
// using inclusion-exclusion over four top-left-anchored quadrants. The
// caller is responsible for ensuring r lies fully inside the table (0 <=
// XLeft <= XRight < width, 0 <= YTop <= YBottom < height); wrapping
// rectangles must be decomposed by the caller into pieces that satisfy
// this before calling Sum.
func (t Table) Sum(r coords.Frame) int {
	total := t.at(r.XRight, r.YBottom)
	if r.XLeft > 0 {
		total -= t.at(r.XLeft-1, r.YBottom)
	}
	if r.YTop > 0 {
		total -= t.at(r.XRight, r.YTop-1)
	}
	if r.XLeft > 0 && r.YTop > 0 {
		total += t.at(r.XLeft-1, r.YTop-1)
	}
	return total
}

func (t Table) at(x, y int) int {
	return t.sums[y*t.width+x]
}
