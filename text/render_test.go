package text

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"testing"
)

func maxAlpha(img *image.NRGBA) uint8 {
	var a uint8
	for i := 3; i < len(img.Pix); i += 4 {
		a = max(a, img.Pix[i])
	}
	return a
}

func TestRenderString(t *testing.T) {
	for _, parser := range []string{ParserXImage, ParserFreetype} {
		t.Run(parser, func(t *testing.T) {
			face := loadTestFace(t, 160, WithParser(parser))

			img, err := RenderString(face, "A", color.White, nil)
			if err != nil {
				t.Fatalf("RenderString failed: %v", err)
			}

			m := face.Metrics()
			wantH := int(math.Ceil(m.Ascent) + math.Ceil(m.Descent))
			if got := img.Bounds().Dy(); got != wantH {
				t.Errorf("height = %d, want %d", got, wantH)
			}
			if got := img.Bounds().Dx(); got < int(face.Advance("A")) {
				t.Errorf("width = %d, narrower than advance %f", got, face.Advance("A"))
			}
			if maxAlpha(img) != 255 {
				t.Errorf("max alpha = %d, want 255 for a solid glyph at 160px", maxAlpha(img))
			}

			for i := 0; i < len(img.Pix); i += 4 {
				if img.Pix[i] != 255 || img.Pix[i+1] != 255 || img.Pix[i+2] != 255 {
					t.Fatalf("pixel %d has RGB %v, want white everywhere", i/4, img.Pix[i:i+3])
				}
			}
		})
	}
}

func TestRenderStringBlankGlyph(t *testing.T) {
	face := loadTestFace(t, 48)

	img, err := RenderString(face, " ", color.White, nil)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() < 1 {
		t.Errorf("width = %d, want at least 1", img.Bounds().Dx())
	}
	if a := maxAlpha(img); a != 0 {
		t.Errorf("space has max alpha %d, want 0", a)
	}
}

func TestRenderStringControlCode(t *testing.T) {
	face := loadTestFace(t, 48)

	img, err := RenderString(face, "\x01", color.White, nil)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() < 1 || img.Bounds().Dy() < 1 {
		t.Errorf("surface %v must not be empty", img.Bounds())
	}
}

func TestRenderStringColor(t *testing.T) {
	face := loadTestFace(t, 48)
	col := color.NRGBA{R: 10, G: 20, B: 30, A: 128}

	img, err := RenderString(face, "W", col, NewGoTextShaper())
	if err != nil {
		t.Fatal(err)
	}
	if a := maxAlpha(img); a != 128 {
		t.Errorf("max alpha = %d, want 128", a)
	}
	if got := img.NRGBAAt(0, 0); got.R != 10 || got.G != 20 || got.B != 30 {
		t.Errorf("background RGB = %v, want the text color", got)
	}
}

func TestRenderStringDeterministic(t *testing.T) {
	face := loadTestFace(t, 64)

	a, err := RenderString(face, "g", color.White, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := RenderString(face, "g", color.White, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Pix, b.Pix) || a.Bounds() != b.Bounds() {
		t.Error("two renders of the same glyph differ")
	}
}

type fakeFace struct{ Face }

func TestRenderStringUnsupportedFace(t *testing.T) {
	if _, err := RenderString(fakeFace{}, "A", color.White, nil); err != ErrUnsupportedFace {
		t.Errorf("error = %v, want ErrUnsupportedFace", err)
	}
}

func TestColorize(t *testing.T) {
	mask := image.NewAlpha(image.Rect(0, 0, 2, 1))
	mask.SetAlpha(1, 0, color.Alpha{A: 255})

	img := colorize(mask, color.White)
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{255, 255, 255, 0}) {
		t.Errorf("uncovered pixel = %v, want transparent white", got)
	}
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("covered pixel = %v, want opaque white", got)
	}
}
