package text

// BuiltinShaper positions glyphs with the advances and kerning pairs reported
// by the face's rasterizer. There is no ligature substitution, contextual
// alternates or right-to-left reordering.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (s *BuiltinShaper) Shape(text string, face Face) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}

	sf, ok := face.(*sourceFace)
	if !ok {
		return nil
	}

	parsed := sf.source.Parsed()
	runes := []rune(text)
	result := make([]ShapedGlyph, 0, len(runes))

	var x float64
	prev := rune(-1)

	for cluster, r := range runes {
		if prev >= 0 {
			x += fixedToFloat64(sf.face.Kern(prev, r))
		}

		advance, _ := sf.face.GlyphAdvance(r)

		var gid GlyphID
		if parsed != nil {
			gid = parsed.GlyphIndex(r)
		}

		result = append(result, ShapedGlyph{
			GID:      gid,
			Cluster:  cluster,
			X:        x,
			XAdvance: fixedToFloat64(advance),
		})

		x += fixedToFloat64(advance)
		prev = r
	}

	return result
}
