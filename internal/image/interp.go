// Package image scales glyph surfaces and writes preview images.
package image

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"
)

// InterpolationMode defines how pixels are sampled when scaling.
type InterpolationMode uint8

const (
	// InterpNearest selects the closest pixel (no interpolation).
	// Fast and blocky; it keeps every output pixel equal to some input pixel.
	InterpNearest InterpolationMode = iota

	// InterpApproxBilinear is a fast approximation of bilinear filtering.
	InterpApproxBilinear

	// InterpBilinear performs linear interpolation between neighboring pixels.
	InterpBilinear

	// InterpBicubic performs Catmull-Rom cubic interpolation.
	// Highest quality but slowest.
	InterpBicubic
)

// String returns a string representation of the interpolation mode.
func (m InterpolationMode) String() string {
	switch m {
	case InterpNearest:
		return "Nearest"
	case InterpApproxBilinear:
		return "ApproxBilinear"
	case InterpBilinear:
		return "Bilinear"
	case InterpBicubic:
		return "Bicubic"
	default:
		return "Unknown"
	}
}

// ParseInterpolation parses an interpolation name, case-insensitively.
// Accepted names are "nearest", "approxbilinear", "bilinear", "bicubic"
// and "catmullrom".
func ParseInterpolation(s string) (InterpolationMode, error) {
	switch strings.ToLower(s) {
	case "nearest":
		return InterpNearest, nil
	case "approxbilinear":
		return InterpApproxBilinear, nil
	case "bilinear":
		return InterpBilinear, nil
	case "bicubic", "catmullrom":
		return InterpBicubic, nil
	default:
		return InterpNearest, fmt.Errorf("image: unknown interpolation %q", s)
	}
}

// scaler returns the x/image/draw interpolator for the mode.
func (m InterpolationMode) scaler() draw.Interpolator {
	switch m {
	case InterpApproxBilinear:
		return draw.ApproxBiLinear
	case InterpBilinear:
		return draw.BiLinear
	case InterpBicubic:
		return draw.CatmullRom
	default:
		return draw.NearestNeighbor
	}
}

// Scale resizes src to exactly w x h pixels. The whole source is stretched
// over the whole destination, so the aspect ratio is not preserved.
// The result is a new non-premultiplied image with its origin at (0, 0).
func Scale(src image.Image, w, h int, mode InterpolationMode) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 || src.Bounds().Empty() {
		return dst
	}

	if mode == InterpNearest {
		scaleNearest(dst, src)
		return dst
	}

	mode.scaler().Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// scaleNearest copies non-premultiplied pixels verbatim. draw.NearestNeighbor
// goes through premultiplied color, which loses the color of fully
// transparent pixels; glyph surfaces carry their text color there.
func scaleNearest(dst *image.NRGBA, src image.Image) {
	sb := src.Bounds()
	db := dst.Bounds()
	sw, sh := sb.Dx(), sb.Dy()
	dw, dh := db.Dx(), db.Dy()

	nsrc, ok := src.(*image.NRGBA)
	if !ok {
		nsrc = image.NewNRGBA(sb)
		draw.Draw(nsrc, sb, src, sb.Min, draw.Src)
	}

	for y := 0; y < dh; y++ {
		// Destination pixel i takes source pixel floor(i*src/dst), the
		// accumulator walk of a classic stretch blit.
		sy := sb.Min.Y + y*sh/dh
		for x := 0; x < dw; x++ {
			sx := sb.Min.X + x*sw/dw
			si := nsrc.PixOffset(sx, sy)
			di := dst.PixOffset(db.Min.X+x, db.Min.Y+y)
			copy(dst.Pix[di:di+4], nsrc.Pix[si:si+4])
		}
	}
}
