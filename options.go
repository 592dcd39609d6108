package glyphatlas

import (
	"image/color"

	aimage "github.com/gogpu/glyphatlas/internal/image"
	"github.com/gogpu/glyphatlas/text"
)

// DefaultPointSize is the default font size, in points at 72 DPI.
const DefaultPointSize = 160

// Interpolation selects how rendered surfaces are scaled to the cell size.
type Interpolation = aimage.InterpolationMode

// Interpolation modes.
const (
	InterpNearest        = aimage.InterpNearest
	InterpApproxBilinear = aimage.InterpApproxBilinear
	InterpBilinear       = aimage.InterpBilinear
	InterpBicubic        = aimage.InterpBicubic
)

// ParseInterpolation parses an interpolation name such as "nearest" or "bilinear".
func ParseInterpolation(name string) (Interpolation, error) {
	return aimage.ParseInterpolation(name)
}

// Option configures a Builder.
//
// Example:
//
//	b, err := glyphatlas.NewBuilderFromFile("fonts/notosans.ttf",
//	    glyphatlas.WithPointSize(160),
//	    glyphatlas.WithCellSize(80, 160),
//	)
type Option func(*config)

// config holds Builder configuration.
type config struct {
	pointSize float64
	layout    Layout
	color     color.Color
	interp    Interpolation
	codePage  CodePage
	shaper    text.Shaper
	hinting   text.Hinting
	parser    string
}

// defaultConfig returns the default builder configuration.
func defaultConfig() config {
	return config{
		pointSize: DefaultPointSize,
		layout:    DefaultLayout(),
		color:     color.White,
		interp:    InterpNearest,
		codePage:  Latin1,
		shaper:    &text.BuiltinShaper{},
		hinting:   text.HintingFull,
		parser:    text.ParserXImage,
	}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithPointSize sets the font size in points (72 DPI, so points equal pixels per em).
func WithPointSize(size float64) Option {
	return func(c *config) {
		c.pointSize = size
	}
}

// WithLayout replaces the whole atlas layout.
func WithLayout(l Layout) Option {
	return func(c *config) {
		c.layout = l
	}
}

// WithCellSize sets the size every glyph is stretched to.
func WithCellSize(width, height int) Option {
	return func(c *config) {
		c.layout.CellWidth = width
		c.layout.CellHeight = height
	}
}

// WithRange sets the inclusive range of byte values to render.
func WithRange(first, last int) Option {
	return func(c *config) {
		c.layout.First = first
		c.layout.Last = last
	}
}

// WithColor sets the text color. The default is opaque white.
func WithColor(col color.Color) Option {
	return func(c *config) {
		if col != nil {
			c.color = col
		}
	}
}

// WithInterpolation sets how surfaces are scaled. The default is InterpNearest.
func WithInterpolation(m Interpolation) Option {
	return func(c *config) {
		c.interp = m
	}
}

// WithCodePage sets the byte to rune mapping. The default is Latin1.
func WithCodePage(p CodePage) Option {
	return func(c *config) {
		c.codePage = p
	}
}

// WithShaper sets the shaper used to measure each glyph's advance.
// A nil shaper selects the text package's global shaper.
func WithShaper(s text.Shaper) Option {
	return func(c *config) {
		c.shaper = s
	}
}

// WithHinting sets the font hinting mode. The default is text.HintingFull.
func WithHinting(h text.Hinting) Option {
	return func(c *config) {
		c.hinting = h
	}
}

// WithParser selects the font parser backend by name when the builder
// loads the font itself (NewBuilderFromFile, NewBuilderFromData).
func WithParser(name string) Option {
	return func(c *config) {
		c.parser = name
	}
}
