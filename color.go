package glyphatlas

import (
	"fmt"
	"image/color"
	"strconv"
)

// ParseHex parses a hex color string: "RGB", "RGBA", "RRGGBB" or
// "RRGGBBAA", with an optional leading '#'. Missing alpha is opaque.
func ParseHex(hex string) (color.NRGBA, error) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255
	var err error

	switch len(hex) {
	case 3: // RGB
		r, g, b, err = parseNibbles(hex)
	case 4: // RGBA
		r, g, b, err = parseNibbles(hex[:3])
		if err == nil {
			a, err = parseHexByte(hex[3:4] + hex[3:4])
		}
	case 6: // RRGGBB
		r, g, b, err = parseBytes(hex)
	case 8: // RRGGBBAA
		r, g, b, err = parseBytes(hex[:6])
		if err == nil {
			a, err = parseHexByte(hex[6:8])
		}
	default:
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// parseNibbles parses "RGB" where each digit is doubled ("f" -> "ff").
func parseNibbles(s string) (r, g, b uint8, err error) {
	if r, err = parseHexByte(s[0:1] + s[0:1]); err != nil {
		return
	}
	if g, err = parseHexByte(s[1:2] + s[1:2]); err != nil {
		return
	}
	b, err = parseHexByte(s[2:3] + s[2:3])
	return
}

func parseBytes(s string) (r, g, b uint8, err error) {
	if r, err = parseHexByte(s[0:2]); err != nil {
		return
	}
	if g, err = parseHexByte(s[2:4]); err != nil {
		return
	}
	b, err = parseHexByte(s[4:6])
	return
}

func parseHexByte(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	return uint8(v), err
}
