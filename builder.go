package glyphatlas

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"

	aimage "github.com/gogpu/glyphatlas/internal/image"
	"github.com/gogpu/glyphatlas/text"
)

// Builder renders byte values into an atlas blob.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	source     *text.FontSource
	face       text.Face
	cfg        config
	ownsSource bool
}

// NewBuilder returns a Builder drawing glyphs from src.
// The caller keeps ownership of src; Close only releases the face.
func NewBuilder(src *text.FontSource, opts ...Option) (*Builder, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	cfg := newConfig(opts)
	if err := cfg.layout.Validate(); err != nil {
		return nil, err
	}
	if cfg.pointSize <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPointSize, cfg.pointSize)
	}

	face, err := src.Face(cfg.pointSize, text.WithHinting(cfg.hinting))
	if err != nil {
		return nil, fmt.Errorf("glyphatlas: open face: %w", err)
	}

	return &Builder{
		source: src,
		face:   face,
		cfg:    cfg,
	}, nil
}

// NewBuilderFromData parses font data and returns a Builder that owns it.
func NewBuilderFromData(data []byte, opts ...Option) (*Builder, error) {
	cfg := newConfig(opts)
	src, err := text.NewFontSource(data, text.WithParser(cfg.parser))
	if err != nil {
		return nil, fmt.Errorf("glyphatlas: load font: %w", err)
	}
	return newOwningBuilder(src, opts)
}

// NewBuilderFromFile loads the font at path and returns a Builder that owns it.
func NewBuilderFromFile(path string, opts ...Option) (*Builder, error) {
	cfg := newConfig(opts)
	src, err := text.NewFontSourceFromFile(path, text.WithParser(cfg.parser))
	if err != nil {
		return nil, fmt.Errorf("glyphatlas: load font %s: %w", path, err)
	}
	return newOwningBuilder(src, opts)
}

func newOwningBuilder(src *text.FontSource, opts []Option) (*Builder, error) {
	b, err := NewBuilder(src, opts...)
	if err != nil {
		_ = src.Close()
		return nil, err
	}
	b.ownsSource = true
	return b, nil
}

// Layout returns the atlas layout the builder produces.
func (b *Builder) Layout() Layout {
	return b.cfg.layout
}

// FontName returns the family name of the builder's font.
func (b *Builder) FontName() string {
	return b.source.Name()
}

// RenderGlyph renders byte value c and stretches it to the cell size.
// c does not need to be inside the layout range.
func (b *Builder) RenderGlyph(c byte) (*image.NRGBA, error) {
	s := b.cfg.codePage.String(c)

	surface, err := text.RenderString(b.face, s, b.cfg.color, b.cfg.shaper)
	if err != nil {
		return nil, &GlyphError{Code: c, Err: err}
	}

	Logger().Debug("glyphatlas: rendered glyph",
		"code", c,
		"rune", []rune(s)[0],
		"w", surface.Bounds().Dx(),
		"h", surface.Bounds().Dy())

	l := b.cfg.layout
	return aimage.Scale(surface, l.CellWidth, l.CellHeight, b.cfg.interp), nil
}

// Build renders every byte value of the layout in ascending order and
// writes the blocks to w. It returns the number of bytes written.
// On error the output is left as written so far.
func (b *Builder) Build(w io.Writer) (int64, error) {
	l := b.cfg.layout
	log := Logger()

	log.Info("glyphatlas: building atlas",
		"font", b.source.Name(),
		"parser", b.source.ParserName(),
		"size", b.cfg.pointSize,
		"layout", l.String(),
		"codepage", b.cfg.codePage.Name(),
		"interp", b.cfg.interp.String())

	var total int64
	for c := l.First; c <= l.Last; c++ {
		img, err := b.RenderGlyph(byte(c))
		if err != nil {
			return total, err
		}

		n, err := EncodeRecords(w, img)
		total += n
		if err != nil {
			return total, fmt.Errorf("glyphatlas: write glyph %d: %w", c, err)
		}
	}

	if total != l.Size() {
		return total, fmt.Errorf("%w: wrote %d of %d bytes", ErrIncompleteAtlas, total, l.Size())
	}

	log.Info("glyphatlas: atlas complete", "glyphs", l.Len(), "bytes", total)
	return total, nil
}

// BuildFile builds the atlas into the file at path, creating or truncating
// it. A failed build leaves whatever was written in place.
func (b *Builder) BuildFile(path string) (n int64, err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return 0, fmt.Errorf("glyphatlas: create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("glyphatlas: close output: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	n, err = b.Build(bw)
	if err != nil {
		_ = bw.Flush()
		return n, err
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("glyphatlas: write output: %w", err)
	}

	Logger().Info("glyphatlas: wrote atlas", "path", path, "bytes", n)
	return n, nil
}

// Close releases the face, and the font if the builder loaded it. A font
// the builder loaded is also dropped from a GoTextShaper's cache.
func (b *Builder) Close() error {
	err := b.face.Close()
	if b.ownsSource {
		if gs, ok := b.cfg.shaper.(*text.GoTextShaper); ok {
			gs.RemoveSource(b.source)
		}
		if cerr := b.source.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
