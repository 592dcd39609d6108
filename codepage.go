package glyphatlas

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// CodePage maps byte values to the runes that are rendered for them.
type CodePage struct {
	name string
	cm   *charmap.Charmap
}

// Latin1 is ISO-8859-1: every byte value maps to the rune of the same value.
// This is the default code page.
var Latin1 = CodePage{name: "latin1", cm: charmap.ISO8859_1}

var codePages = map[string]*charmap.Charmap{
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"cp437":        charmap.CodePage437,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"macroman":     charmap.Macintosh,
}

// LookupCodePage returns the code page registered under name,
// case-insensitively.
func LookupCodePage(name string) (CodePage, error) {
	key := strings.ToLower(name)
	cm, ok := codePages[key]
	if !ok {
		return CodePage{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownCodePage, name, strings.Join(CodePageNames(), ", "))
	}
	return CodePage{name: key, cm: cm}, nil
}

// CodePageNames returns the sorted names accepted by LookupCodePage.
func CodePageNames() []string {
	names := make([]string, 0, len(codePages))
	for name := range codePages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the name the code page was looked up by.
func (p CodePage) Name() string {
	if p.cm == nil {
		return Latin1.name
	}
	return p.name
}

// Rune returns the rune for byte value b. The zero CodePage behaves as Latin1.
func (p CodePage) Rune(b byte) rune {
	if p.cm == nil {
		return rune(b)
	}
	return p.cm.DecodeByte(b)
}

// String returns the one-character string rendered for byte value b.
func (p CodePage) String(b byte) string {
	return string(p.Rune(b))
}
