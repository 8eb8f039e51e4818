// Package identified holds the immutable record a radar produces for
// every window that meets its similarity threshold.
package identified

import (
	"fmt"

	"github.com/nullsector/invaderscan/ascii"
	"github.com/nullsector/invaderscan/bitmatrix"
	"github.com/nullsector/invaderscan/coords"
	"github.com/nullsector/invaderscan/invader"
)

// Invader is an immutable hit: the invader it was matched against, the
// matched sub-frame (a copy, independent of the map it was cut from), the
// similarity ratio, and the frame's coordinates on the map. Radars are
// the only producers; once returned, an Invader is never mutated.
type Invader struct {
	Target     invader.Invader
	Frame      bitmatrix.Matrix
	Similarity float64
	Coords     coords.Frame
}

// New builds an identified Invader record.
func New(target invader.Invader, frame bitmatrix.Matrix, similarity float64, at coords.Frame) Invader {
	return Invader{Target: target, Frame: frame, Similarity: similarity, Coords: at}
}

// PrettyString renders a human-readable report of this hit: similarity
// ratio, coordinates on the map, and an ASCII rendering of the matched
// frame, enough for a caller to reconstruct the match without re-reading
// the map.
func (i Invader) PrettyString() string {
	return fmt.Sprintf(
		"Similarity ratio: %v\nCoords on map: %s\nVisual representation:\n%s",
		i.Similarity, i.Coords, ascii.Render(i.Frame),
	)
}
