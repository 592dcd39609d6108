package glyphatlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for the glyphatlas package.
var (
	// ErrInvalidLayout is returned when a Layout has non-positive cells or
	// a code range outside 0..255.
	ErrInvalidLayout = errors.New("glyphatlas: invalid layout")

	// ErrCodeOutOfRange is returned when a byte value has no block in the layout.
	ErrCodeOutOfRange = errors.New("glyphatlas: code out of range")

	// ErrSizeMismatch is returned when atlas data does not match its layout.
	ErrSizeMismatch = errors.New("glyphatlas: atlas size does not match layout")

	// ErrIncompleteAtlas is returned when a build wrote fewer bytes than the
	// layout requires.
	ErrIncompleteAtlas = errors.New("glyphatlas: incomplete atlas")

	// ErrInvalidPointSize is returned when the point size is not positive.
	ErrInvalidPointSize = errors.New("glyphatlas: point size must be positive")

	// ErrNilSource is returned when a Builder is created without a font.
	ErrNilSource = errors.New("glyphatlas: nil font source")

	// ErrUnknownCodePage is returned by LookupCodePage for unknown names.
	ErrUnknownCodePage = errors.New("glyphatlas: unknown code page")

	// ErrInvalidColor is returned by ParseHex for malformed colors.
	ErrInvalidColor = errors.New("glyphatlas: invalid hex color")
)

// GlyphError reports a failure to render the glyph of one byte value.
type GlyphError struct {
	Code byte
	Err  error
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("glyphatlas: glyph %d: %v", e.Code, e.Err)
}

func (e *GlyphError) Unwrap() error {
	return e.Err
}
