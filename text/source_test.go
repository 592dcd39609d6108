package text

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// loadTestFont loads the embedded Go font.
func loadTestFont(t *testing.T, opts ...SourceOption) *FontSource {
	t.Helper()

	source, err := NewFontSource(goregular.TTF, opts...)
	if err != nil {
		t.Fatalf("failed to load test font: %v", err)
	}
	t.Cleanup(func() {
		_ = source.Close()
	})

	return source
}

// loadTestFace opens a face of the embedded Go font at size.
func loadTestFace(t *testing.T, size float64, opts ...SourceOption) Face {
	t.Helper()

	face, err := loadTestFont(t, opts...).Face(size)
	if err != nil {
		t.Fatalf("Face(%v) failed: %v", size, err)
	}
	t.Cleanup(func() {
		_ = face.Close()
	})

	return face
}

func TestNewFontSource(t *testing.T) {
	for _, parser := range []string{ParserXImage, ParserFreetype} {
		t.Run(parser, func(t *testing.T) {
			source := loadTestFont(t, WithParser(parser))

			if got := source.Name(); got != "Go" {
				t.Errorf("Name() = %q, want %q", got, "Go")
			}
			if got := source.ParserName(); got != parser {
				t.Errorf("ParserName() = %q, want %q", got, parser)
			}
			if gid := source.Parsed().GlyphIndex('A'); gid == 0 {
				t.Error("GlyphIndex('A') = 0, want a mapped glyph")
			}
		})
	}
}

func TestNewFontSourceErrors(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}

	if _, err := NewFontSource(goregular.TTF, WithParser("nope")); !errors.Is(err, ErrUnknownParser) {
		t.Errorf("unknown parser error = %v, want ErrUnknownParser", err)
	}

	if _, err := NewFontSource([]byte("not a font")); err == nil {
		t.Error("expected parse error for garbage data")
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	source, err := NewFontSourceFromFile(path)
	if err != nil {
		t.Fatalf("NewFontSourceFromFile failed: %v", err)
	}
	defer func() {
		_ = source.Close()
	}()

	if source.Name() == "" {
		t.Error("expected non-empty font name")
	}

	if _, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
}

func TestNewFontSourceCopiesData(t *testing.T) {
	data := append([]byte(nil), goregular.TTF...)
	source, err := NewFontSource(data)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = source.Close()
	}()

	for i := range data {
		data[i] = 0
	}

	face, err := source.Face(24)
	if err != nil {
		t.Fatalf("Face after mutating input failed: %v", err)
	}
	defer func() {
		_ = face.Close()
	}()
	if face.Advance("A") <= 0 {
		t.Error("expected positive advance after mutating input")
	}
}

func TestFontSourceFace(t *testing.T) {
	source := loadTestFont(t)

	for _, size := range []float64{12, 16, 24, 48, 160} {
		face, err := source.Face(size)
		if err != nil {
			t.Errorf("Face(%v) failed: %v", size, err)
			continue
		}
		if face.Size() != size {
			t.Errorf("Size() = %v, want %v", face.Size(), size)
		}
		if face.Source() != source {
			t.Error("Source() does not return the creating source")
		}
		_ = face.Close()
	}

	for _, size := range []float64{0, -12} {
		if _, err := source.Face(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Face(%v) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestFontSourceClose(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}

	if err := source.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if source.Parsed() != nil {
		t.Error("Parsed() should be nil after Close")
	}
	if _, err := source.Face(12); !errors.Is(err, ErrSourceClosed) {
		t.Errorf("Face after Close error = %v, want ErrSourceClosed", err)
	}
}

func TestParseHinting(t *testing.T) {
	tests := []struct {
		in      string
		want    Hinting
		wantErr bool
	}{
		{"none", HintingNone, false},
		{"Vertical", HintingVertical, false},
		{"FULL", HintingFull, false},
		{"subpixel", HintingFull, true},
	}

	for _, tt := range tests {
		got, err := ParseHinting(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHinting(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHinting(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// countingParser delegates to the default backend and counts Parse calls.
type countingParser struct {
	calls int
}

func (p *countingParser) Parse(data []byte) (ParsedFont, error) {
	p.calls++
	return (&ximageParser{}).Parse(data)
}

func TestRegisterParser(t *testing.T) {
	const name = "counting"
	custom := &countingParser{}
	RegisterParser(name, custom)
	t.Cleanup(func() { delete(parserRegistry, name) })

	source := loadTestFont(t, WithParser(name))
	if custom.calls != 1 {
		t.Errorf("custom parser called %d times, want 1", custom.calls)
	}
	if got := source.ParserName(); got != name {
		t.Errorf("ParserName() = %q, want %q", got, name)
	}

	face, err := source.Face(24)
	if err != nil {
		t.Fatalf("Face() with custom parser failed: %v", err)
	}
	defer func() {
		_ = face.Close()
	}()
	if !face.HasGlyph('A') {
		t.Error("face from custom parser has no 'A'")
	}
}
