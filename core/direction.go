package core

import (
	"fmt"
	"strings"
)

// Direction is one of the four axis directions or DirNone
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

var directionNames = [...]string{
	DirNone:  "NONE",
	DirUp:    "UP",
	DirDown:  "DOWN",
	DirLeft:  "LEFT",
	DirRight: "RIGHT",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Opposite returns the reverse direction, DirNone stays DirNone
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

// Horizontal reports whether d is LEFT or RIGHT
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// ParseDirection converts a case-insensitive name to a Direction
func ParseDirection(s string) (Direction, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "" {
		return DirNone, nil
	}
	for i, n := range directionNames {
		if n == name {
			return Direction(i), nil
		}
	}
	return DirNone, fmt.Errorf("unknown direction %q", s)
}

// DirectionSet is a bitset of the four real directions
// Zero value is the empty set
type DirectionSet uint8

// directionOrder is the fixed iteration order of Each
var directionOrder = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

func dirBit(d Direction) DirectionSet {
	if d == DirNone || d > DirRight {
		return 0
	}
	return 1 << (d - 1)
}

// Add inserts d; DirNone is ignored
func (s *DirectionSet) Add(d Direction) {
	*s |= dirBit(d)
}

// Remove deletes d
func (s *DirectionSet) Remove(d Direction) {
	*s &^= dirBit(d)
}

// Has reports membership
func (s DirectionSet) Has(d Direction) bool {
	b := dirBit(d)
	return b != 0 && s&b != 0
}

// Clear empties the set
func (s *DirectionSet) Clear() {
	*s = 0
}

// Empty reports whether no direction is set
func (s DirectionSet) Empty() bool {
	return s == 0
}

// Len returns the number of directions in the set
func (s DirectionSet) Len() int {
	n := 0
	for _, d := range directionOrder {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Each calls fn for every member in UP, DOWN, LEFT, RIGHT order
func (s DirectionSet) Each(fn func(Direction)) {
	for _, d := range directionOrder {
		if s.Has(d) {
			fn(d)
		}
	}
}

func (s DirectionSet) String() string {
	parts := make([]string, 0, 4)
	s.Each(func(d Direction) { parts = append(parts, d.String()) })
	return "{" + strings.Join(parts, ",") + "}"
}
