// SPDX-License-Identifier: Apache-2.0

package copyinplace

import "github.com/digitalocean/go-copyinplace/internal/span"

// placement classifies the position of the destination relative to the
// source. Only placementStationary changes what CopyInPlace does; the
// builtin copy handles the other three alike.
type placement int

const (
	// Nothing moves: the run is empty or the destination is the source.
	placementStationary placement = iota
	// The regions share no index.
	placementDisjoint
	// Destination starts before the source and overlaps it.
	placementForward
	// Destination starts after the source and overlaps it.
	placementBackward
)

func placementOf(src span.Span[int], dest int) placement {
	switch dst := src.Shift(dest); {
	case src.Len() == 0 || dest == src.Start:
		return placementStationary
	case !src.Overlaps(dst):
		return placementDisjoint
	case dest < src.Start:
		return placementForward
	default:
		return placementBackward
	}
}

func (p placement) String() string {
	switch p {
	case placementStationary:
		return "stationary"
	case placementDisjoint:
		return "disjoint"
	case placementForward:
		return "forward"
	case placementBackward:
		return "backward"
	}
	return "unknown"
}
