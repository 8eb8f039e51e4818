// Package invader holds the known binary pattern a radar searches a map
// for, and the per-window similarity computation used to score candidate
// matches.
package invader

import (
	"errors"

	"github.com/nullsector/invaderscan/bitmatrix"
)

// ErrEmptyInvader is returned when an invader is built from an empty
// pattern.
var ErrEmptyInvader = errors.New("invader: pattern must not be empty")

// ErrNoSignal is returned when an invader's pattern contains no 1-bits.
var ErrNoSignal = errors.New("invader: pattern has no signal bits")

// ErrEmptyFrame is returned when MatchAgainstFrame is given a frame with
// zero rows.
var ErrEmptyFrame = errors.New("invader: frame must not be empty")

// ErrNonMatchingFrames is returned when a frame's dimensions differ from
// the invader's pattern dimensions.
var ErrNonMatchingFrames = errors.New("invader: frame dimensions do not match pattern")

// Invader is a known binary pattern to search for within a larger map.
type Invader struct {
	pattern     bitmatrix.Matrix
	signalBits  int
	totalBits   int
	signalRatio float64
}

// New builds an Invader from a binary pattern. It fails with
// ErrEmptyInvader if pattern has zero rows or columns, and with
// ErrNoSignal if the pattern contains no 1-bits.
func New(pattern bitmatrix.Matrix) (Invader, error) {
	if pattern.Width() == 0 || pattern.Height() == 0 {
		return Invader{}, ErrEmptyInvader
	}
	signalBits := pattern.PopCount()
	if signalBits == 0 {
		return Invader{}, ErrNoSignal
	}
	totalBits := pattern.Width() * pattern.Height()
	return Invader{
		pattern:     pattern,
		signalBits:  signalBits,
		totalBits:   totalBits,
		signalRatio: float64(signalBits) / float64(totalBits),
	}, nil
}

// Width returns the pattern's width.
func (inv Invader) Width() int { return inv.pattern.Width() }

// Height returns the pattern's height.
func (inv Invader) Height() int { return inv.pattern.Height() }

// SignalBits returns the number of 1-bits in the pattern.
func (inv Invader) SignalBits() int { return inv.signalBits }

// TotalBits returns the total number of cells in the pattern (width *
// height).
func (inv Invader) TotalBits() int { return inv.totalBits }

// SignalRatio returns SignalBits / TotalBits.
func (inv Invader) SignalRatio() float64 { return inv.signalRatio }

// Pattern returns the underlying binary pattern.
func (inv Invader) Pattern() bitmatrix.Matrix { return inv.pattern }

// MatchAgainstFrame computes the fraction of cells at which frame agrees
// with the invader's pattern, counting both 0<->0 and 1<->1 agreement. It
// fails with ErrEmptyFrame if frame has zero rows, and with
// ErrNonMatchingFrames if frame's dimensions differ from the pattern's.
func (inv Invader) MatchAgainstFrame(frame bitmatrix.Matrix) (float64, error) {
	if frame.Height() == 0 {
		return 0, ErrEmptyFrame
	}
	if frame.Width() != inv.pattern.Width() || frame.Height() != inv.pattern.Height() {
		return 0, ErrNonMatchingFrames
	}

	matched := 0
	for y := 0; y < frame.Height(); y++ {
		frameRow := frame.Row(y)
		patternRow := inv.pattern.Row(y)
		for x, bit := range frameRow {
			if bit == patternRow[x] {
				matched++
			}
		}
	}
	return float64(matched) / float64(inv.totalBits), nil
}
