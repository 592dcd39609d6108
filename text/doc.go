// Package text loads fonts and renders strings to pixel surfaces.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF files)
//   - Face: font instance at a specific size, backed by a rasterizer
//   - FontParser: pluggable parsing and rasterizing backend
//   - Shaper: measures and positions the glyphs of a string
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("NotoSans-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	face, err := source.Face(160)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer face.Close()
//
//	surface, err := text.RenderString(face, "A", color.White, nil)
//
// # Pluggable Parser Backend
//
// By default golang.org/x/image/font/opentype parses and rasterizes fonts.
// The "freetype" backend uses github.com/golang/freetype/truetype instead:
//
//	source, err := text.NewFontSource(data, text.WithParser(text.ParserFreetype))
//
// Custom parsers can be registered with RegisterParser.
package text
