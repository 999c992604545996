package core

import (
	"fmt"

	"github.com/mitchelldurbincs/GridTactics/internal/common"
)

// Coordinate represents a tile position on the battle grid
type Coordinate struct {
	X, Y int
}

// NewCoordinate creates a new coordinate with the given x and y values
func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// FromIndex creates a coordinate from a row-major grid index
func FromIndex(idx, width int) Coordinate {
	return Coordinate{
		X: idx % width,
		Y: idx / width,
	}
}

// IsValid checks if the coordinate is within a width x height rectangle anchored at (0,0)
func (c Coordinate) IsValid(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// ToIndex converts the coordinate to a row-major grid index
func (c Coordinate) ToIndex(width int) int {
	return c.Y*width + c.X
}

// DistanceTo calculates the Manhattan distance to another coordinate
func (c Coordinate) DistanceTo(other Coordinate) int {
	return common.Abs(c.X-other.X) + common.Abs(c.Y-other.Y)
}

// IsAdjacentTo checks if this coordinate is orthogonally adjacent to another
func (c Coordinate) IsAdjacentTo(other Coordinate) bool {
	dx := c.X - other.X
	dy := c.Y - other.Y
	return (dx == 0 && (dy == 1 || dy == -1)) || (dy == 0 && (dx == 1 || dx == -1))
}

// Neighbors returns the four orthogonal neighbors of this coordinate in N, E, S, W order
func (c Coordinate) Neighbors() []Coordinate {
	neighbors := make([]Coordinate, 0, len(CardinalDirections))
	for _, dir := range CardinalDirections {
		neighbors = append(neighbors, c.Move(dir))
	}
	return neighbors
}

// Add returns the sum of this coordinate and another
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{X: c.X + other.X, Y: c.Y + other.Y}
}

// Sub returns the difference between this coordinate and another
func (c Coordinate) Sub(other Coordinate) Coordinate {
	return Coordinate{X: c.X - other.X, Y: c.Y - other.Y}
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction represents a cardinal direction
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// CardinalDirections lists the directions in link order
var CardinalDirections = [4]Direction{North, East, South, West}

// directionVectors provides coordinate offsets for each direction, indexed by Direction
var directionVectors = [4]Coordinate{
	North: {X: 0, Y: -1},
	East:  {X: 1, Y: 0},
	South: {X: 0, Y: 1},
	West:  {X: -1, Y: 0},
}

// Offset returns the unit step for the direction, or the zero coordinate for an unknown direction
func (d Direction) Offset() Coordinate {
	if d < North || d > West {
		return Coordinate{}
	}
	return directionVectors[d]
}

func (d Direction) String() string {
	switch d {
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

// Move returns a new coordinate moved one step in the given direction
func (c Coordinate) Move(direction Direction) Coordinate {
	return c.Add(direction.Offset())
}

// DirectionTo returns the direction from this coordinate to an adjacent coordinate.
// Returns -1 if the coordinates are not adjacent
func (c Coordinate) DirectionTo(other Coordinate) Direction {
	if !c.IsAdjacentTo(other) {
		return -1
	}

	dx := other.X - c.X
	dy := other.Y - c.Y

	switch {
	case dy == -1:
		return North
	case dx == 1:
		return East
	case dy == 1:
		return South
	default:
		return West
	}
}
