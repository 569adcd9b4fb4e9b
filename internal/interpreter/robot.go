package interpreter

import "fmt"

// State is a robot's position and heading on the grid.

type State struct {
	X, Y    int
	Heading Direction
}

// Apply returns the state after running c. The receiver is not changed and
// the result is not bounds-checked.
func (s State) Apply(c Command) State {
	switch c {
	case Forward:
		dx, dy := s.Heading.Delta()
		return State{X: s.X + dx, Y: s.Y + dy, Heading: s.Heading}
	case Left:
		return State{X: s.X, Y: s.Y, Heading: s.Heading.Left()}
	case Right:
		return State{X: s.X, Y: s.Y, Heading: s.Heading.Right()}
	}
	panic(fmt.Sprintf("invalid command %d", int(c)))
}

func (s State) Position() (int, int) {
	return s.X, s.Y
}

func (s State) String() string {
	return fmt.Sprintf("(%d, %d, %s)", s.X, s.Y, s.Heading)
}
