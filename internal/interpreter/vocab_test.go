package interpreter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allDirections = []Direction{North, East, South, West}

func TestDirectionTurns(t *testing.T) {
	assert.Equal(t, East, North.Right())
	assert.Equal(t, South, East.Right())
	assert.Equal(t, West, South.Right())
	assert.Equal(t, North, West.Right())

	assert.Equal(t, West, North.Left())
	assert.Equal(t, South, West.Left())
	assert.Equal(t, East, South.Left())
	assert.Equal(t, North, East.Left())
}

func TestDirectionFullCycle(t *testing.T) {
	for _, d := range allDirections {
		assert.Equal(t, d, d.Right().Right().Right().Right(), "right x4 from %s", d)
		assert.Equal(t, d, d.Left().Left().Left().Left(), "left x4 from %s", d)
		assert.Equal(t, d, d.Right().Left(), "right then left from %s", d)
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := map[Direction][2]int{
		North: {0, 1},
		East:  {1, 0},
		South: {0, -1},
		West:  {-1, 0},
	}
	for d, want := range tests {
		dx, dy := d.Delta()
		assert.Equal(t, want, [2]int{dx, dy}, "delta for %s", d)
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range allDirections {
		got, err := ParseDirection([]rune(d.String())[0])
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	_, err := ParseDirection('X')
	assert.True(t, errors.Is(err, ErrUnknownHeading))
	_, err = ParseDirection('n')
	assert.True(t, errors.Is(err, ErrUnknownHeading))
}

func TestInvalidDirectionPanics(t *testing.T) {
	assert.Panics(t, func() { Direction(7).Right() })
	assert.Panics(t, func() { Direction(-1).Delta() })
}

func TestParseCommands(t *testing.T) {
	cmds, err := ParseCommands("LFRFF")
	require.NoError(t, err)
	assert.Equal(t, []Command{Left, Forward, Right, Forward, Forward}, cmds)

	cmds, err = ParseCommands("")
	require.NoError(t, err)
	assert.Empty(t, cmds)

	_, err = ParseCommands("LFB")
	assert.True(t, errors.Is(err, ErrUnknownCommand))
}
