// Package coords defines the coordinate system shared by every component
// that locates a window on a map: an inclusive, axis-aligned rectangle
// identified by its top-left and bottom-right corners.
package coords

import "fmt"

// Frame is an inclusive rectangle: it spans columns XLeft..XRight and rows
// YTop..YBottom, both ends included.
//
// On a planar map, XLeft <= XRight and YTop <= YBottom always hold. On a
// spherical (toroidal) map, XRight < XLeft signals that the rectangle wraps
// around the right edge back to column 0, and YBottom < YTop signals wrap
// around the bottom edge back to row 0; the two can combine into a diagonal
// wrap. In every case all four fields remain within [0, width) x [0, height)
// of the map they were cut from.
type Frame struct {
	XLeft   int
	YTop    int
	XRight  int
	YBottom int
}

// New builds a Frame from its corners.
func New(xLeft, yTop, xRight, yBottom int) Frame {
	return Frame{XLeft: xLeft, YTop: yTop, XRight: xRight, YBottom: yBottom}
}

// TopLeft returns the rectangle's top-left corner.
func (f Frame) TopLeft() (x, y int) {
	return f.XLeft, f.YTop
}

// BottomRight returns the rectangle's bottom-right corner.
func (f Frame) BottomRight() (x, y int) {
	return f.XRight, f.YBottom
}

// WrapsX reports whether this rectangle wraps around a map's right edge.
func (f Frame) WrapsX() bool {
	return f.XRight < f.XLeft
}

// WrapsY reports whether this rectangle wraps around a map's bottom edge.
func (f Frame) WrapsY() bool {
	return f.YBottom < f.YTop
}

// String renders the frame as "((x_left, y_top), (x_right, y_bottom))", the
// form used in logging and test fixtures.
func (f Frame) String() string {
	return fmt.Sprintf("((%d, %d), (%d, %d))", f.XLeft, f.YTop, f.XRight, f.YBottom)
}
