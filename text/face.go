package text

import (
	"golang.org/x/image/font"
)

// Face represents a font face at a specific size.
// This is a lightweight object created from a FontSource.
//
// Face is not safe for concurrent use: the rasterizer behind it keeps
// scratch buffers.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// Advance returns the total advance width of the text in pixels,
	// including kerning between adjacent glyphs.
	Advance(text string) float64

	// Bounds returns the ink bounds of text drawn with its origin on the
	// baseline at (0, 0), y pointing down, together with its advance.
	Bounds(text string) (Rect, float64)

	// HasGlyph reports whether the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// Hinting returns the hinting mode of the face.
	Hinting() Hinting

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// Size returns the size of this face in points.
	Size() float64

	// Close releases the rasterizer held by the face.
	Close() error

	// private prevents external implementation
	private()
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source *FontSource
	size   float64
	config faceConfig
	face   font.Face
}

// Metrics implements Face.Metrics.
func (f *sourceFace) Metrics() Metrics {
	m := f.face.Metrics()

	ascent := fixedToFloat64(m.Ascent)
	descent := fixedToFloat64(m.Descent)
	if descent < 0 {
		descent = -descent
	}

	lineGap := fixedToFloat64(m.Height) - ascent - descent
	if lineGap < 0 {
		lineGap = 0
	}

	return Metrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   lineGap,
		XHeight:   fixedToFloat64(m.XHeight),
		CapHeight: fixedToFloat64(m.CapHeight),
	}
}

// Advance implements Face.Advance.
func (f *sourceFace) Advance(text string) float64 {
	return fixedToFloat64(font.MeasureString(f.face, text))
}

// Bounds implements Face.Bounds.
func (f *sourceFace) Bounds(text string) (Rect, float64) {
	b, advance := font.BoundString(f.face, text)
	return Rect{
		MinX: fixedToFloat64(b.Min.X),
		MinY: fixedToFloat64(b.Min.Y),
		MaxX: fixedToFloat64(b.Max.X),
		MaxY: fixedToFloat64(b.Max.Y),
	}, fixedToFloat64(advance)
}

// HasGlyph implements Face.HasGlyph.
func (f *sourceFace) HasGlyph(r rune) bool {
	parsed := f.source.Parsed()
	if parsed == nil {
		return false
	}
	return parsed.GlyphIndex(r) != 0
}

// Hinting implements Face.Hinting.
func (f *sourceFace) Hinting() Hinting {
	return f.config.hinting
}

// Source implements Face.Source.
func (f *sourceFace) Source() *FontSource {
	return f.source
}

// Size implements Face.Size.
func (f *sourceFace) Size() float64 {
	return f.size
}

// Close implements Face.Close.
func (f *sourceFace) Close() error {
	return f.face.Close()
}

// private implements the Face interface.
func (f *sourceFace) private() {}
