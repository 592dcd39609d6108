package text

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// freetypeParser implements FontParser using the Freetype port in
// github.com/golang/freetype. It only reads TrueType outlines.
type freetypeParser struct{}

// Parse implements FontParser.Parse.
func (p *freetypeParser) Parse(data []byte) (ParsedFont, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &freetypeParsedFont{font: f}, nil
}

type freetypeParsedFont struct {
	font *truetype.Font
}

func (f *freetypeParsedFont) Name() string {
	return f.font.Name(truetype.NameIDFontFamily)
}

func (f *freetypeParsedFont) FullName() string {
	return f.font.Name(truetype.NameIDFontFullName)
}

func (f *freetypeParsedFont) GlyphIndex(r rune) GlyphID {
	return GlyphID(f.font.Index(r))
}

// NewFace implements ParsedFont.NewFace.
// truetype.NewFace cannot fail; the error is always nil.
func (f *freetypeParsedFont) NewFace(size float64, hinting Hinting) (font.Face, error) {
	return truetype.NewFace(f.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: mapHinting(hinting),
	}), nil
}
