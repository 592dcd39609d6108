package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownParser is returned when a parser name is not registered.
	ErrUnknownParser = errors.New("text: unknown font parser")

	// ErrInvalidSize is returned when a face is requested at a non-positive size.
	ErrInvalidSize = errors.New("text: face size must be positive")

	// ErrSourceClosed is returned when a closed FontSource is used.
	ErrSourceClosed = errors.New("text: font source is closed")

	// ErrUnsupportedFace is returned when a Face was not created by this package.
	ErrUnsupportedFace = errors.New("text: unsupported face implementation")
)
