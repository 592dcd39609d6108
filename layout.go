package glyphatlas

import "fmt"

// BytesPerPixel is the size of one RGBA record.
const BytesPerPixel = 4

// Default layout values.
const (
	DefaultCellWidth  = 80
	DefaultCellHeight = 160
	DefaultFirst      = 1
	DefaultLast       = 254
)

// Layout describes where each glyph lives in an atlas blob.
//
// The blob holds one block per byte value in [First, Last], in ascending
// order, with no header and no padding. A block is CellWidth x CellHeight
// RGBA records, row-major. Byte values outside the range have no block and
// no reserved slot: the block of byte value c starts at (c-First)*BlockSize.
type Layout struct {
	CellWidth  int
	CellHeight int
	First      int
	Last       int
}

// DefaultLayout returns the 80x160 layout covering byte values 1 to 254.
func DefaultLayout() Layout {
	return Layout{
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
		First:      DefaultFirst,
		Last:       DefaultLast,
	}
}

// Validate reports whether the layout can describe an atlas.
func (l Layout) Validate() error {
	switch {
	case l.CellWidth <= 0 || l.CellHeight <= 0:
		return fmt.Errorf("%w: cell %dx%d", ErrInvalidLayout, l.CellWidth, l.CellHeight)
	case l.First < 0 || l.Last > 255 || l.First > l.Last:
		return fmt.Errorf("%w: range %d..%d", ErrInvalidLayout, l.First, l.Last)
	}
	return nil
}

// BlockSize returns the number of bytes of one glyph block.
func (l Layout) BlockSize() int {
	return l.CellWidth * l.CellHeight * BytesPerPixel
}

// Len returns the number of glyph blocks.
func (l Layout) Len() int {
	return l.Last - l.First + 1
}

// Size returns the total atlas size in bytes.
func (l Layout) Size() int64 {
	return int64(l.Len()) * int64(l.BlockSize())
}

// Contains reports whether byte value c has a block.
func (l Layout) Contains(c int) bool {
	return c >= l.First && c <= l.Last
}

// Offset returns the byte offset of the block of byte value c.
func (l Layout) Offset(c int) (int64, error) {
	if !l.Contains(c) {
		return 0, fmt.Errorf("%w: %d not in %d..%d", ErrCodeOutOfRange, c, l.First, l.Last)
	}
	return int64(c-l.First) * int64(l.BlockSize()), nil
}

// PixelOffset returns the byte offset of pixel (x, y) of the block of byte
// value c. x and y are not range checked beyond the code.
func (l Layout) PixelOffset(c, x, y int) (int64, error) {
	off, err := l.Offset(c)
	if err != nil {
		return 0, err
	}
	return off + int64((y*l.CellWidth+x)*BytesPerPixel), nil
}

// String returns a compact description, e.g. "80x160 [1..254]".
func (l Layout) String() string {
	return fmt.Sprintf("%dx%d [%d..%d]", l.CellWidth, l.CellHeight, l.First, l.Last)
}
