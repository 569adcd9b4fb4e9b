package interpreter

import (
	"fmt"
	"strconv"
	"strings"
)

// Grid is the rectangle robots move on. Both axes are closed intervals
// starting at zero: [0, MaxX] x [0, MaxY].
type Grid struct {
	MaxX, MaxY int
}

// ParseGrid reads a grid line of the form "<max_x> <max_y>".
func ParseGrid(line string) (*Grid, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return nil, newParseError(ErrMalformedGrid, line,
			fmt.Errorf("expected 2 integers, got %d fields", len(parts)))
	}
	maxX, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, newParseError(ErrMalformedGrid, line, err)
	}
	maxY, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, newParseError(ErrMalformedGrid, line, err)
	}
	return &Grid{MaxX: maxX, MaxY: maxY}, nil
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x <= g.MaxX && y >= 0 && y <= g.MaxY
}

func (g *Grid) String() string {
	return fmt.Sprintf("%d %d", g.MaxX, g.MaxY)
}
