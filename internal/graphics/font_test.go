package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBakeFontAtlas(t *testing.T) {
	atlas, err := BakeFontAtlas(16)
	require.NoError(t, err)

	for r := rune(firstGlyph); r <= lastGlyph; r++ {
		_, ok := atlas.Glyphs[r]
		assert.True(t, ok, "missing glyph %q", r)
	}
	size := atlas.Image.Rect.Size()
	assert.Equal(t, atlasWidth, size.X)
	assert.Zero(t, size.Y&(size.Y-1), "height %d is not a power of two", size.Y)

	for r, g := range atlas.Glyphs {
		assert.LessOrEqual(t, g.AtlasX+g.Width, float32(size.X), "glyph %q", r)
		assert.LessOrEqual(t, g.AtlasY+g.Height, float32(size.Y), "glyph %q", r)
	}
	assert.Zero(t, atlas.Glyphs[' '].Width)
	assert.Positive(t, atlas.Glyphs[' '].Advance)
}

func TestFontQuadsAndMeasure(t *testing.T) {
	atlas, err := BakeFontAtlas(16)
	require.NoError(t, err)

	// space has no quad
	quads := atlas.Quads("a b", 0, 20, 1)
	assert.Len(t, quads, 2*6*4)

	w, h := atlas.Measure("ab", 2)
	want := 2 * (atlas.Glyphs['a'].Advance + atlas.Glyphs['b'].Advance)
	assert.Equal(t, want, w)
	assert.Positive(t, h)

	// unknown runes advance like a space
	w1, _ := atlas.Measure("é", 1)
	assert.Equal(t, atlas.Glyphs[' '].Advance, w1)
}
