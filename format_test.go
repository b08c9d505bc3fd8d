package treefmt_test

import (
	"testing"

	"github.com/bjaus/treefmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextFormat(t *testing.T) {
	t.Parallel()
	c := treefmt.DefaultContextFormat()
	assert.Equal(t, "    ", c.Context(true))
	assert.Equal(t, "│   ", c.Context(false))

	custom := treefmt.NewContextFormat("T", "C")
	assert.Equal(t, "T", custom.Context(true))
	assert.Equal(t, "C", custom.Context(false))
}

func TestPrefixFormat(t *testing.T) {
	t.Parallel()
	p := treefmt.DefaultPrefixFormat()
	assert.Equal(t, "└── ", p.Prefix(true))
	assert.Equal(t, "├── ", p.Prefix(false))

	custom := treefmt.NewPrefixFormat("B", "L")
	assert.Equal(t, "L", custom.Prefix(true))
	assert.Equal(t, "B", custom.Prefix(false))
}

func TestStyleFormats(t *testing.T) {
	t.Parallel()
	tests := []struct {
		style        treefmt.Style
		continuation string
		branch       string
		leaf         string
	}{
		{treefmt.StyleUnicode, "│   ", "├── ", "└── "},
		{treefmt.StyleASCII, "|   ", "|-- ", "`-- "},
		{treefmt.StyleRounded, "│   ", "├── ", "╰── "},
		{treefmt.StyleHeavy, "┃   ", "┣━━ ", "┗━━ "},
		{treefmt.StyleDouble, "║   ", "╠══ ", "╚══ "},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			t.Parallel()
			c, p := tt.style.Formats()
			assert.Equal(t, tt.continuation, c.Continuation)
			assert.Equal(t, "    ", c.Terminal)
			assert.Equal(t, tt.branch, p.Branch)
			assert.Equal(t, tt.leaf, p.Leaf)
		})
	}
}

func TestStyleUnknownFallsBack(t *testing.T) {
	t.Parallel()
	s := treefmt.Style(99)
	assert.Equal(t, "Style(99)", s.String())
	c, p := s.Formats()
	assert.Equal(t, treefmt.DefaultContextFormat(), c)
	assert.Equal(t, treefmt.DefaultPrefixFormat(), p)
}

func TestParseStyle(t *testing.T) {
	t.Parallel()
	for _, s := range treefmt.Styles() {
		got, err := treefmt.ParseStyle(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := treefmt.ParseStyle("ASCII")
	require.NoError(t, err)
	assert.Equal(t, treefmt.StyleASCII, got)

	_, err = treefmt.ParseStyle("fancy")
	assert.ErrorIs(t, err, treefmt.ErrUnsupportedStyle)
	assert.Contains(t, err.Error(), `"fancy"`)
}

func TestStylesReturnsCopy(t *testing.T) {
	t.Parallel()
	a := treefmt.Styles()
	a[0] = treefmt.StyleDouble
	assert.Equal(t, treefmt.StyleUnicode, treefmt.Styles()[0])
	assert.Len(t, a, 5)
}
