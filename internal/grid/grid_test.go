package grid

import (
	"errors"
	"testing"

	"github.com/go-ricrob/gridcover/internal/packed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	blocked := []Coord{{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}, {3, 3}, {4, 3}, {5, 5}, {6, 6}}
	g, err := New(8, 8, blocked)
	require.NoError(t, err)

	assert.Equal(t, 8, g.Rows())
	assert.Equal(t, 8, g.Cols())
	assert.Equal(t, 55, g.NumFree())
	for _, c := range blocked {
		assert.True(t, g.IsBlocked(c.Row, c.Col), "cell %v should be blocked", c)
		assert.False(t, g.IsValid(c.Row, c.Col), "cell %v should be invalid", c)
	}
	assert.True(t, g.IsValid(0, 0))
	assert.True(t, g.IsValid(7, 7))
}

func TestNew_IgnoresOutOfBoundsAndDuplicates(t *testing.T) {
	g, err := New(2, 3, []Coord{{0, 0}, {0, 0}, {-1, 0}, {0, 3}, {2, 0}})
	require.NoError(t, err)
	assert.Equal(t, 5, g.NumFree())
}

func TestNew_InvalidSize(t *testing.T) {
	_, err := New(-1, 3, nil)
	assert.True(t, errors.Is(err, ErrInvalidSize))

	g, err := New(0, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.NumFree())
}

func TestNew_TooLarge(t *testing.T) {
	_, err := New(4000000000, 4000000000, nil)
	assert.ErrorIs(t, err, packed.ErrTooLarge)
}

func TestIsValid_Bounds(t *testing.T) {
	g, err := New(3, 4, nil)
	require.NoError(t, err)

	tests := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{2, 3, true},
		{-1, 0, false},
		{0, -1, false},
		{3, 0, false},
		{0, 4, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, g.IsValid(tt.row, tt.col), "IsValid(%d,%d)", tt.row, tt.col)
	}
}

func TestParseCoord(t *testing.T) {
	c, err := ParseCoord("2,4")
	require.NoError(t, err)
	assert.Equal(t, Coord{2, 4}, c)

	c, err = ParseCoord(" 10 , 0 ")
	require.NoError(t, err)
	assert.Equal(t, Coord{10, 0}, c)

	for _, s := range []string{"", "3", "a,1", "1,b"} {
		_, err := ParseCoord(s)
		assert.ErrorIs(t, err, ErrInvalidCoord, "ParseCoord(%q)", s)
	}
}

func TestCoord(t *testing.T) {
	assert.Equal(t, "(3,5)", Coord{3, 5}.String())
	assert.Equal(t, Coord{4, 5}, Coord{3, 5}.Translate(Dirs[0]))
	assert.Equal(t, Coord{3, 4}, Coord{3, 5}.Translate(Dirs[3]))
}
