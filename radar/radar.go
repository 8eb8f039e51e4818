// Package radar enumerates candidate windows over a map, uses a
// summed-area table to discard windows whose 1-bit count falls below a
// scanner's signal threshold, and runs the full comparison on the rest,
// collecting every hit as an identified.Invader.
//
// Two radars are provided, Planar and Spherical, mirroring the two map
// realizations in package gridmap: Planar enumerates only windows that
// fit entirely inside the map, Spherical enumerates a window anchored at
// every cell, wrapping across either or both edges as needed.
package radar

import (
	"errors"

	"github.com/google/uuid"

	"github.com/nullsector/invaderscan/identified"
)

// ErrMapTooSmall is returned when the target invader is wider or taller
// than the map it would be searched within.
var ErrMapTooSmall = errors.New("radar: invader is larger than the map")

// Radar is the capability set shared by Planar and Spherical: run a
// search to completion, and retrieve the hits it found.
type Radar interface {
	Scan() error
	IdentifiedInvaders() []identified.Invader
	ScanID() uuid.UUID
}
