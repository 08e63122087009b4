// Package tilt computes 3D tilt transforms and matching drop-shadow offsets
// for a rectangular surface, so that it appears to lean toward one of eight
// compass-like corners, either as a fixed pose or as a cycling animation.
//
// All computation here is pure: no shared state, safe for concurrent callers.
// Attaching results to a rendering layer is the job of an Applier.
package tilt

import "fmt"

// Corner identifies one of 8 positions around a rectangle. The numeric
// values are the clockwise ring order, so traversal arithmetic is
// (index ± 1) mod 8 regardless of how the constants are declared.
type Corner int

const (
	TopMedium    Corner = 0
	TopRight     Corner = 1
	MediumRight  Corner = 2
	BottomRight  Corner = 3
	BottomMedium Corner = 4
	BottomLeft   Corner = 5
	MediumLeft   Corner = 6
	TopLeft      Corner = 7

	// NumCorners is the size of the corner ring.
	NumCorners = 8
)

// String returns the corner name used in configs and logs.
func (c Corner) String() string {
	switch c {
	case TopMedium:
		return "top-medium"
	case TopRight:
		return "top-right"
	case MediumRight:
		return "medium-right"
	case BottomRight:
		return "bottom-right"
	case BottomMedium:
		return "bottom-medium"
	case BottomLeft:
		return "bottom-left"
	case MediumLeft:
		return "medium-left"
	case TopLeft:
		return "top-left"
	}
	return fmt.Sprintf("Corner(%d)", int(c))
}

// ParseCorner converts a config string to a Corner.
func ParseCorner(s string) (Corner, error) {
	for c := Corner(0); c < NumCorners; c++ {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown corner %q", s)
}

// Next returns the clockwise neighbor on the ring.
func (c Corner) Next() Corner {
	return (c + 1) % NumCorners
}

// Prev returns the counter-clockwise neighbor on the ring.
func (c Corner) Prev() Corner {
	return (c + NumCorners - 1) % NumCorners
}

// Direction selects the traversal order around the corner ring.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

// String returns the direction name used in configs and logs.
func (d Direction) String() string {
	if d == CounterClockwise {
		return "counter-clockwise"
	}
	return "clockwise"
}

// ParseDirection converts a config string to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "clockwise", "cw":
		return Clockwise, nil
	case "counter-clockwise", "ccw":
		return CounterClockwise, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Sequence returns the 8 corners of the ring starting at from and walking
// in the given direction. The result covers every corner exactly once.
func Sequence(from Corner, dir Direction) []Corner {
	seq := make([]Corner, 0, NumCorners)
	c := from
	for i := 0; i < NumCorners; i++ {
		seq = append(seq, c)
		if dir == CounterClockwise {
			c = c.Prev()
		} else {
			c = c.Next()
		}
	}
	return seq
}

// ClosedSequence returns Sequence with the starting corner appended again,
// closing the loop for a seamless repeating animation (9 entries).
func ClosedSequence(from Corner, dir Direction) []Corner {
	return append(Sequence(from, dir), from)
}
