package dragdrop

import "strings"

// Direction is a bit set of the edges a drag point is autoscrolling towards.
// Bits can be combined when the point sits in a corner of the container.
type Direction uint8

// DirectionNone means no autoscrolling.
const DirectionNone Direction = 0

const (
	DirectionUp Direction = 1 << iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Union returns the directions present in d or in other.
func (d Direction) Union(other Direction) Direction { return d | other }

// Has reports whether every direction of other is set in d.
func (d Direction) Has(other Direction) bool { return d&other == other }

// IsNone reports whether no direction is set.
func (d Direction) IsNone() bool { return d == DirectionNone }

func (d Direction) String() string {
	if d.IsNone() {
		return "None"
	}
	var names []string
	for _, v := range []struct {
		dir  Direction
		name string
	}{
		{DirectionUp, "Up"},
		{DirectionDown, "Down"},
		{DirectionLeft, "Left"},
		{DirectionRight, "Right"},
	} {
		if d&v.dir != 0 {
			names = append(names, v.name)
		}
	}
	return strings.Join(names, "|")
}
