package grid_test

import (
	"testing"

	"github.com/katalvlaran/gridbits/grid"
	"github.com/stretchr/testify/require"
)

// TestParseErrors verifies that Parse rejects empty or ragged text.
func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "", grid.ErrEmptyGrid},
		{"OnlyNewline", "\n", grid.ErrEmptyGrid},
		{"EmptyFirstRow", "\nabc", grid.ErrEmptyGrid},
		{"ShortRow", "abc\nab\nabc", grid.ErrNonRectangular},
		{"LongRow", "ab\nabc", grid.ErrNonRectangular},
		{"BlankLine", "ab\n\nab", grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.Parse(tc.text, identity)
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, g)
		})
	}
	requirePanicsIs(t, grid.ErrNonRectangular, func() { grid.FromText("ab\nc", identity) })
}

// TestParseLineEndings accepts CRLF input and one trailing newline.
func TestParseLineEndings(t *testing.T) {
	want := grid.FromText(digits, identity)
	for _, text := range []string{
		digits + "\n",
		"123\r\n456\r\n789\r\n",
	} {
		g, err := grid.Parse(text, identity)
		require.NoError(t, err)
		require.Equal(t, want.String(), g.String())
		require.Equal(t, 3, g.Rows())
	}
}

// TestParseMapping maps runes to a custom cell type.
func TestParseMapping(t *testing.T) {
	g, err := grid.Parse("#.\n.#", func(r rune) bool { return r == '#' })
	require.NoError(t, err)
	require.True(t, g.At(grid.Pt(0, 0)))
	require.False(t, g.At(grid.Pt(0, 1)))
	require.True(t, g.At(grid.Pt(1, 1)))

	heights := grid.FromText("019\n342", func(r rune) int { return int(r - '0') })
	require.Equal(t, 9, heights.At(grid.Pt(0, 2)))
	require.Equal(t, 4, heights.At(grid.Pt(1, 1)))
}

// TestParseMultibyte counts runes, not bytes, for width.
func TestParseMultibyte(t *testing.T) {
	g, err := grid.Runes("█·█\n·█·")
	require.NoError(t, err)
	require.Equal(t, 3, g.Cols())
	require.Equal(t, '·', g.At(grid.Pt(1, 0)))
}

// TestParseCapture records the first marked cell.
func TestParseCapture(t *testing.T) {
	text := "...\n.S.\n..S"
	g, start, ok, err := grid.ParseCapture(text, identity, func(r rune) bool { return r == 'S' })
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, grid.Pt(1, 1), start)
	require.Equal(t, 'S', g.At(start))

	_, _, ok, err = grid.ParseCapture(text, identity, func(r rune) bool { return r == 'E' })
	require.NoError(t, err)
	require.False(t, ok)

	_, _, ok, err = grid.ParseCapture(text, identity, nil)
	require.NoError(t, err)
	require.False(t, ok)
}
