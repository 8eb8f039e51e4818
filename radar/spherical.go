package radar

import (
	"github.com/google/uuid"

	"github.com/nullsector/invaderscan/coords"
	"github.com/nullsector/invaderscan/gridmap"
	"github.com/nullsector/invaderscan/identified"
	"github.com/nullsector/invaderscan/sat"
	"github.com/nullsector/invaderscan/scanner"
)

// Spherical enumerates a window anchored at every cell of a toroidal
// map, wrapping across the right edge, the bottom edge, or both, as
// needed. Every cell is a valid top-left corner, so it always produces
// exactly Width()*Height() windows.
type Spherical struct {
	gridMap gridmap.Spherical
	scan    scanner.Scanner
	table   sat.Table
	scanID  uuid.UUID

	cx, cy int
	done   bool

	hits []identified.Invader
}

// NewSpherical builds a Spherical radar over m, targeting the invader
// bound to sc. It fails with ErrMapTooSmall if the invader is wider or
// taller than the map.
func NewSpherical(m gridmap.Spherical, sc scanner.Scanner) (*Spherical, error) {
	w, h := sc.RequiredFrameSize()
	if w > m.Width() || h > m.Height() {
		return nil, ErrMapTooSmall
	}
	return &Spherical{
		gridMap: m,
		scan:    sc,
		table:   sat.Build(m.Bits()),
		scanID:  uuid.New(),
	}, nil
}

// ScanID returns the identifier this radar instance was tagged with at
// construction.
func (r *Spherical) ScanID() uuid.UUID { return r.scanID }

// next advances the enumeration cursor and returns the next window, or
// false once every cell has been visited as a top-left corner. The
// admission tests (cx < width, cy < height) mirror the planar radar's
// "< map dimension" shape but without the "- w + 1" adjustment, since
// every cell is an admissible top-left corner on a toroidal map.
func (r *Spherical) next() (coords.Frame, bool) {
	w, h := r.scan.RequiredFrameSize()
	width, height := r.gridMap.Width(), r.gridMap.Height()
	for {
		if r.done {
			return coords.Frame{}, false
		}
		if r.cx < width {
			if r.cy < height {
				xRight := r.cx + w - 1
				if xRight >= width {
					xRight -= width
				}
				yBottom := r.cy + h - 1
				if yBottom >= height {
					yBottom -= height
				}
				f := coords.New(r.cx, r.cy, xRight, yBottom)
				r.cx++
				return f, true
			}
			r.done = true
			return coords.Frame{}, false
		}
		r.cx = 0
		r.cy++
	}
}

// countSignalBits answers the number of 1-bits within f. If f does not
// wrap on either axis it is a single summed-area query; otherwise it is
// decomposed into up to four non-wrapping rectangles (D always, plus B
// on a y-wrap, C on an x-wrap, and A when both wrap), each safe for an
// O(1) lookup.
func (r *Spherical) countSignalBits(f coords.Frame) int {
	if !f.WrapsX() && !f.WrapsY() {
		return r.table.Sum(f)
	}

	width, height := r.gridMap.Width(), r.gridMap.Height()

	xRightStar := f.XRight
	if f.WrapsX() {
		xRightStar = width - 1
	}
	yBottomStar := f.YBottom
	if f.WrapsY() {
		yBottomStar = height - 1
	}

	total := 0
	if f.WrapsY() {
		total += r.table.Sum(coords.New(f.XLeft, 0, xRightStar, f.YBottom))
	}
	if f.WrapsX() {
		total += r.table.Sum(coords.New(0, f.YTop, f.XRight, yBottomStar))
	}
	if f.WrapsX() && f.WrapsY() {
		total += r.table.Sum(coords.New(0, 0, f.XRight, f.YBottom))
	}
	total += r.table.Sum(coords.New(f.XLeft, f.YTop, xRightStar, yBottomStar))
	return total
}

// Scan runs the full toroidal search to completion.
func (r *Spherical) Scan() error {
	for {
		c, ok := r.next()
		if !ok {
			return nil
		}
		signalBits := r.countSignalBits(c)
		if !r.scan.IsWorthProcessingFrame(signalBits) {
			continue
		}
		frame := r.gridMap.FrameAt(c)
		similarity, err := r.scan.ProcessFrame(frame)
		if err != nil {
			return err
		}
		if similarity >= r.scan.SimilarityThreshold() {
			r.hits = append(r.hits, identified.New(r.scan.Target(), frame, similarity, c))
		}
	}
}

// IdentifiedInvaders returns every hit found so far, in discovery order.
func (r *Spherical) IdentifiedInvaders() []identified.Invader {
	return r.hits
}
