package glyphatlas

import (
	"fmt"
	"image"
	"os"

	aimage "github.com/gogpu/glyphatlas/internal/image"
)

// Atlas is a read-only view of an atlas blob, for consumers and for
// checking a build.
type Atlas struct {
	data   []byte
	layout Layout
}

// NewAtlas wraps data described by l. The data is not copied.
func NewAtlas(data []byte, l Layout) (*Atlas, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if int64(len(data)) != l.Size() {
		return nil, fmt.Errorf("%w: have %d bytes, layout %s needs %d", ErrSizeMismatch, len(data), l, l.Size())
	}
	return &Atlas{data: data, layout: l}, nil
}

// OpenAtlas reads the atlas file at path.
func OpenAtlas(path string, l Layout) (*Atlas, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("glyphatlas: read atlas: %w", err)
	}
	return NewAtlas(data, l)
}

// Layout returns the atlas layout.
func (a *Atlas) Layout() Layout {
	return a.layout
}

// Block returns the raw RGBA records of byte value c. The slice aliases the
// atlas data.
func (a *Atlas) Block(c int) ([]byte, error) {
	off, err := a.layout.Offset(c)
	if err != nil {
		return nil, err
	}
	return a.data[off : off+int64(a.layout.BlockSize())], nil
}

// Glyph returns the cell of byte value c as an image. The pixels are copied.
func (a *Atlas) Glyph(c int) (*image.NRGBA, error) {
	block, err := a.Block(c)
	if err != nil {
		return nil, err
	}
	img := image.NewNRGBA(image.Rect(0, 0, a.layout.CellWidth, a.layout.CellHeight))
	copy(img.Pix, block)
	return img, nil
}

// Contact lays out every cell in a grid with the given number of columns,
// in byte value order, left to right and top to bottom. Records are copied
// verbatim, so transparent pixels keep their color.
func (a *Atlas) Contact(columns int) *image.NRGBA {
	l := a.layout
	columns = max(1, min(columns, l.Len()))
	rows := (l.Len() + columns - 1) / columns

	sheet := image.NewNRGBA(image.Rect(0, 0, columns*l.CellWidth, rows*l.CellHeight))
	for i := 0; i < l.Len(); i++ {
		// Every code in the layout has a block, so Block cannot fail here.
		block, _ := a.Block(l.First + i)
		x0 := (i % columns) * l.CellWidth
		y0 := (i / columns) * l.CellHeight
		rowLen := l.CellWidth * BytesPerPixel
		for y := 0; y < l.CellHeight; y++ {
			dst := sheet.PixOffset(x0, y0+y)
			copy(sheet.Pix[dst:dst+rowLen], block[y*rowLen:(y+1)*rowLen])
		}
	}
	return sheet
}

// SavePreview writes img as a PNG file, for eyeballing an atlas.
func SavePreview(path string, img image.Image) error {
	return aimage.SavePNG(path, img)
}
