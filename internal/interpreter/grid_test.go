package interpreter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid("4 8")
	require.NoError(t, err)
	assert.Equal(t, &Grid{MaxX: 4, MaxY: 8}, g)

	g, err = ParseGrid("  10\t0  ")
	require.NoError(t, err)
	assert.Equal(t, &Grid{MaxX: 10, MaxY: 0}, g)
}

func TestParseGridMalformed(t *testing.T) {
	tests := []string{
		"",
		"4",
		"4 8 1",
		"four 8",
		"4 eight",
		"4.5 8",
	}
	for _, in := range tests {
		_, err := ParseGrid(in)
		if !errors.Is(err, ErrMalformedGrid) {
			t.Errorf("ParseGrid(%q) error = %v, want ErrMalformedGrid", in, err)
		}
	}
}

func TestGridInBounds(t *testing.T) {
	g := &Grid{MaxX: 4, MaxY: 8}
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{4, 8, true},
		{2, 3, true},
		{-1, 0, false},
		{0, -1, false},
		{5, 0, false},
		{0, 9, false},
	}
	for _, tt := range tests {
		if got := g.InBounds(tt.x, tt.y); got != tt.want {
			t.Errorf("InBounds(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
