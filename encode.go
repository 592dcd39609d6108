package glyphatlas

import (
	"image"
	"io"
)

// EncodeRecords writes img as RGBA records, row-major from the top-left
// pixel, four bytes per pixel in R, G, B, A order. Values are written
// non-premultiplied, exactly as stored in img.
func EncodeRecords(w io.Writer, img *image.NRGBA) (int64, error) {
	b := img.Bounds()
	rowLen := b.Dx() * BytesPerPixel

	var total int64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		start := img.PixOffset(b.Min.X, y)
		n, err := w.Write(img.Pix[start : start+rowLen])
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
