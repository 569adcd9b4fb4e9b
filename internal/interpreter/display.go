package interpreter

import "fmt"

// Outcome is where a robot ended up after its commands ran.
type Outcome struct {
	X, Y    int
	Heading Direction
	Lost    bool
}

// Format renders o as "(x, y, H)", followed by " LOST" when the robot left
// the grid.
func Format(o Outcome) string {
	s := fmt.Sprintf("(%d, %d, %s)", o.X, o.Y, o.Heading)
	if o.Lost {
		s += " LOST"
	}
	return s
}

func (o Outcome) String() string {
	return Format(o)
}
