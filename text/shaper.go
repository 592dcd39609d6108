package text

import (
	"fmt"
	"strings"
	"sync"
)

// Shaper converts text to positioned glyphs.
// Implementations provide different levels of text shaping support:
//   - BuiltinShaper: per-rune advances and kerning from the face's rasterizer
//   - GoTextShaper: HarfBuzz shaping via go-text/typesetting
type Shaper interface {
	// Shape converts text into positioned glyphs using the given face.
	// The font size is obtained from face.Size().
	Shape(text string, face Face) []ShapedGlyph
}

// Shaper names accepted by NewShaper.
const (
	ShaperBuiltin = "builtin"
	ShaperGoText  = "gotext"
)

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = &BuiltinShaper{}
)

// SetShaper sets the global shaper used by Shape and by RenderString when
// no shaper is given. Pass nil to reset to the default BuiltinShaper.
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = &BuiltinShaper{}
	}
	globalShaper = s
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// NewShaper returns a new shaper by name ("builtin" or "gotext").
func NewShaper(name string) (Shaper, error) {
	switch strings.ToLower(name) {
	case "", ShaperBuiltin:
		return &BuiltinShaper{}, nil
	case ShaperGoText:
		return NewGoTextShaper(), nil
	default:
		return nil, fmt.Errorf("text: unknown shaper %q", name)
	}
}
