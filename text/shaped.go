package text

// ShapedGlyph is a glyph positioned by a Shaper.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the source character index in the original text.
	Cluster int

	// X is the horizontal position relative to the text origin.
	X float64

	// Y is the vertical position relative to the baseline.
	Y float64

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance float64
}

// ShapedAdvance returns the pen position after the last glyph of a shaped run.
func ShapedAdvance(glyphs []ShapedGlyph) float64 {
	if len(glyphs) == 0 {
		return 0
	}
	last := glyphs[len(glyphs)-1]
	return last.X + last.XAdvance
}
