package text

import "golang.org/x/image/font"

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing and rasterization
// library without touching the rendering code.
//
// Two backends are registered by default:
//   - "ximage": golang.org/x/image/font/opentype (default)
//   - "freetype": github.com/golang/freetype/truetype
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// FullName returns the full font name.
	// Returns empty string if not available.
	FullName() string

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 if the glyph is not found.
	GlyphIndex(r rune) GlyphID

	// NewFace returns a rasterizing face at the given size in points (72 DPI,
	// so points equal pixels per em). The caller closes the face.
	NewFace(size float64, hinting Hinting) (font.Face, error)
}

// Parser names registered by default.
const (
	ParserXImage   = "ximage"
	ParserFreetype = "freetype"
)

// parserRegistry holds registered font parsers.
var parserRegistry = map[string]FontParser{}

func init() {
	RegisterParser(ParserXImage, &ximageParser{})
	RegisterParser(ParserFreetype, &freetypeParser{})
}

// defaultParserName is the name of the default parser.
const defaultParserName = ParserXImage

// RegisterParser makes parser selectable by name through WithParser,
// replacing any parser already registered under name.
// RegisterParser is not safe for concurrent use; call it during init.
func RegisterParser(name string, parser FontParser) {
	parserRegistry[name] = parser
}

// lookupParser returns the parser registered under name.
// An empty name selects the default parser.
func lookupParser(name string) (FontParser, bool) {
	if name == "" {
		name = defaultParserName
	}
	p, ok := parserRegistry[name]
	return p, ok
}

// mapHinting converts text.Hinting to font.Hinting.
func mapHinting(h Hinting) font.Hinting {
	switch h {
	case HintingNone:
		return font.HintingNone
	case HintingVertical:
		return font.HintingVertical
	case HintingFull:
		return font.HintingFull
	default:
		return font.HintingFull
	}
}
