package text

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// RenderString renders s onto a new surface sized to fit it, the way a
// "render text to surface" call of a game toolkit does:
//
//   - the surface height is the face's line box, ceil(ascent)+ceil(descent),
//     with the baseline at y = ceil(ascent);
//   - the surface width covers both the shaped advance and the ink, and
//     is at least one pixel so that glyphs without ink still yield a surface;
//   - every pixel carries the RGB of col, and its alpha is the glyph
//     coverage scaled by the alpha of col. The background is therefore
//     transparent, not black.
//
// The returned image is non-premultiplied. A nil shaper selects the global
// shaper (see SetShaper).
func RenderString(face Face, s string, col color.Color, shaper Shaper) (*image.NRGBA, error) {
	sf, ok := face.(*sourceFace)
	if !ok {
		return nil, ErrUnsupportedFace
	}
	if shaper == nil {
		shaper = GetShaper()
	}

	m := sf.face.Metrics()
	ascent := m.Ascent.Ceil()
	height := max(ascent+m.Descent.Ceil(), 1)

	ink, _ := font.BoundString(sf.face, s)
	advance := ShapedAdvance(shaper.Shape(s, face))

	minX := min(0, ink.Min.X.Floor())
	maxX := max(int(math.Ceil(advance)), ink.Max.X.Ceil())
	width := max(maxX-minX, 1)

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: sf.face,
		Dot:  fixed.Point26_6{X: fixed.I(-minX), Y: fixed.I(ascent)},
	}
	d.DrawString(s)

	return colorize(mask, col), nil
}

// colorize paints col through the coverage mask.
func colorize(mask *image.Alpha, col color.Color) *image.NRGBA {
	c := color.NRGBAModel.Convert(col).(color.NRGBA)
	b := mask.Bounds()
	dst := image.NewNRGBA(b)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := uint32(mask.AlphaAt(x, y).A)
			i := dst.PixOffset(x, y)
			dst.Pix[i+0] = c.R
			dst.Pix[i+1] = c.G
			dst.Pix[i+2] = c.B
			dst.Pix[i+3] = uint8((a*uint32(c.A) + 127) / 255)
		}
	}

	return dst
}
