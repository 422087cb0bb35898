// Package core provides fundamental types and utilities for the robot arena.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

import (
	"fmt"
	"math/rand"
	"strings"
)

// Coord is an immutable integer position on the arena grid.
// X increases to the right, Y increases downward (screen coordinates).
type Coord struct {
	X, Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Move returns the coordinate displaced by v.
func (c Coord) Move(v Vector) Coord {
	return Coord{X: c.X + v.DX, Y: c.Y + v.DY}
}

// MoveBy returns the coordinate displaced distance cells along b.
func (c Coord) MoveBy(distance int, b Bearing) Coord {
	u := b.Unit()
	return Coord{X: c.X + distance*u.DX, Y: c.Y + distance*u.DY}
}

// DistanceTo returns the vector from c to other (other - c).
func (c Coord) DistanceTo(other Coord) Vector {
	return Vector{DX: other.X - c.X, DY: other.Y - c.Y}
}

// Chebyshev returns the king-move distance to other. A point lies inside a
// square footprint of radius r exactly when its Chebyshev distance is <= r.
func (c Coord) Chebyshev(other Coord) int {
	return Max(Abs(other.X-c.X), Abs(other.Y-c.Y))
}

// Vector is an immutable integer displacement.
type Vector struct {
	DX, DY int
}

// Bearing is one of the four cardinal movement directions.
// The values are ordered clockwise so rotation is index arithmetic.
type Bearing uint8

const (
	North Bearing = iota
	East
	South
	West
)

// Bearings lists all bearings in clockwise order starting at North.
var Bearings = [4]Bearing{North, East, South, West}

var bearingUnits = [4]Vector{
	North: {DX: 0, DY: -1},
	East:  {DX: 1, DY: 0},
	South: {DX: 0, DY: 1},
	West:  {DX: -1, DY: 0},
}

// Valid reports whether b is one of the four cardinal bearings.
func (b Bearing) Valid() bool {
	return b <= West
}

// Unit returns the unit displacement for the bearing.
func (b Bearing) Unit() Vector {
	return bearingUnits[b%4]
}

// Clockwise90 returns the bearing a quarter turn to the right.
func (b Bearing) Clockwise90() Bearing {
	return (b + 1) % 4
}

// CounterClockwise90 returns the bearing a quarter turn to the left.
func (b Bearing) CounterClockwise90() Bearing {
	return (b + 3) % 4
}

// Opposite returns the reverse bearing.
func (b Bearing) Opposite() Bearing {
	return (b + 2) % 4
}

// String returns the lowercase name of the bearing.
func (b Bearing) String() string {
	switch b {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// ParseBearing converts a bearing name (or its first letter) to a Bearing.
func ParseBearing(s string) (Bearing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, nil
	case "east", "e":
		return East, nil
	case "south", "s":
		return South, nil
	case "west", "w":
		return West, nil
	}
	return North, fmt.Errorf("core: unknown bearing %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (b Bearing) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("core: invalid bearing %d", b)
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so bearings can be
// written by name in configuration files.
func (b *Bearing) UnmarshalText(text []byte) error {
	parsed, err := ParseBearing(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Rect is an axis-aligned rectangle with inclusive bounds on all four edges.
type Rect struct {
	Top, Bottom, Left, Right int
}

// NewRect creates a rectangle spanning topLeft to bottomRight inclusive.
func NewRect(topLeft, bottomRight Coord) Rect {
	return Rect{
		Top:    topLeft.Y,
		Left:   topLeft.X,
		Bottom: bottomRight.Y,
		Right:  bottomRight.X,
	}
}

// Square returns the footprint of the given radius around center: every cell
// within radius steps in each cardinal direction, (2r+1)x(2r+1) cells.
func Square(center Coord, radius int) Rect {
	return NewRect(
		center.MoveBy(radius, North).MoveBy(radius, West),
		center.MoveBy(radius, South).MoveBy(radius, East),
	)
}

// Width returns the number of columns covered.
func (r Rect) Width() int {
	return r.Right - r.Left + 1
}

// Height returns the number of rows covered.
func (r Rect) Height() int {
	return r.Bottom - r.Top + 1
}

// Cells returns the number of grid cells inside the rectangle.
func (r Rect) Cells() int {
	if r.Width() <= 0 || r.Height() <= 0 {
		return 0
	}
	return r.Width() * r.Height()
}

// Contains returns true if c lies inside the rectangle or on its edges.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.Left &&
		c.X <= r.Right &&
		c.Y >= r.Top &&
		c.Y <= r.Bottom
}

// RandomCoord samples a cell uniformly from the inclusive grid.
func (r Rect) RandomCoord(rng *rand.Rand) Coord {
	return Coord{
		X: r.Left + rng.Intn(r.Width()),
		Y: r.Top + rng.Intn(r.Height()),
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
