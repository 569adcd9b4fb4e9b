package interpreter

import "fmt"

// Direction is a compass heading.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// ParseDirection maps a heading letter to its Direction.
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case 'N':
		return North, nil
	case 'E':
		return East, nil
	case 'S':
		return South, nil
	case 'W':
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHeading, r)
}

// Right turns clockwise one step.
func (d Direction) Right() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	}
	panic(fmt.Sprintf("invalid direction %d", int(d)))
}

// Left turns counter-clockwise one step.
func (d Direction) Left() Direction {
	switch d {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	case East:
		return North
	}
	panic(fmt.Sprintf("invalid direction %d", int(d)))
}

// Delta is the unit move for one Forward step along d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	}
	panic(fmt.Sprintf("invalid direction %d", int(d)))
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Command is a single robot instruction.
type Command int

const (
	Forward Command = iota
	Left
	Right
)

func ParseCommand(r rune) (Command, error) {
	switch r {
	case 'F':
		return Forward, nil
	case 'L':
		return Left, nil
	case 'R':
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, r)
}

// ParseCommands parses a run of command letters with no separators.
func ParseCommands(s string) ([]Command, error) {
	cmds := make([]Command, 0, len(s))
	for _, r := range s {
		c, err := ParseCommand(r)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}

func (c Command) String() string {
	switch c {
	case Forward:
		return "F"
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return fmt.Sprintf("Command(%d)", int(c))
}
