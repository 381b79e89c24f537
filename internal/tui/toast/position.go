package toast

import (
	"fmt"
	"slices"

	"github.com/colonyops/toaster/internal/core/config"
)

// Position is the screen corner a toast stack anchors to.
type Position string

const (
	TopRight    Position = config.PositionTopRight
	TopLeft     Position = config.PositionTopLeft
	BottomRight Position = config.PositionBottomRight
	BottomLeft  Position = config.PositionBottomLeft
)

// ParsePosition converts a config value into a Position.
func ParsePosition(s string) (Position, error) {
	p := Position(s)
	switch p {
	case TopRight, TopLeft, BottomRight, BottomLeft:
		return p, nil
	default:
		return "", fmt.Errorf("invalid position %q", s)
	}
}

// Top reports whether the stack anchors to the top edge.
func (p Position) Top() bool {
	return p == TopRight || p == TopLeft
}

// Left reports whether the stack anchors to the left edge.
func (p Position) Left() bool {
	return p == TopLeft || p == BottomLeft
}

// edgeOrder orders queue-ordered items by distance from the anchored edge,
// nearest first. Top stacks keep queue order so the oldest card sits against
// the top edge and newer cards push below it. Bottom stacks reverse it so the
// newest card sits against the bottom edge.
func edgeOrder[T any](p Position, queued []T) []T {
	out := slices.Clone(queued)
	if !p.Top() {
		slices.Reverse(out)
	}
	return out
}

// rowOrder converts an edge order into top-to-bottom screen rows.
func rowOrder[T any](p Position, fromEdge []T) []T {
	out := slices.Clone(fromEdge)
	if !p.Top() {
		slices.Reverse(out)
	}
	return out
}
