// Package glyphatlas builds glyph atlases: fixed-size binary blobs of raw
// RGBA pixels holding one rendered glyph per byte value.
//
// # Overview
//
// A Builder opens a font at a point size and, for every byte value in its
// Layout range (1 to 254 by default), renders the byte as a one-character
// string, stretches the rendered surface to the cell size (80x160 by
// default) and appends the cell's pixels to the output.
//
// # Quick Start
//
//	b, err := glyphatlas.NewBuilderFromFile("fonts/notosans.ttf",
//	    glyphatlas.WithPointSize(160))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	if _, err := b.BuildFile("bin/glyphs.bin"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Output Format
//
// The blob has no header, no length prefixes and no per-glyph metadata.
// Blocks follow each other in ascending byte value order; inside a block,
// pixels are row-major from the top-left, each as four bytes R, G, B, A
// (non-premultiplied). With the default layout:
//
//   - the blob is 254 * 80 * 160 * 4 = 13,004,800 bytes;
//   - byte value c occupies [(c-1)*51200, c*51200);
//   - pixel (x, y) of a block is at (y*80+x)*4 inside it.
//
// Byte value 0 is not rendered and has no reserved block, so offsets are
// computed from the layout, not from the literal byte value. Use
// WithRange(0, 254) when a consumer expects a slot for 0.
//
// # Rendering
//
// Glyphs are drawn in opaque white by default. Every pixel of a cell carries
// the text color; alpha holds coverage, so the background is transparent
// white. Stretching ignores the aspect ratio: narrow and wide glyphs are
// distorted to fill the cell.
package glyphatlas
