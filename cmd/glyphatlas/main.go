// Command glyphatlas renders the glyphs of a font into a raw RGBA atlas.
//
// Every byte value from -first to -last (1 to 254 by default) is drawn as a
// one-character string, stretched to a -width x -height cell (80x160) and
// appended to the output as row-major R, G, B, A bytes. The output has no
// header; see package glyphatlas for the layout.
//
// Usage:
//
//	glyphatlas -font fonts/notosans.ttf -size 160 -o bin/glyphs.bin
//
// Flag defaults can be set in a .env or .env.local file in the working
// directory (GLYPHATLAS_FONT, GLYPHATLAS_SIZE, GLYPHATLAS_OUTPUT,
// GLYPHATLAS_CODEPAGE, GLYPHATLAS_INTERP).
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/glyphatlas"
)

func main() {
	if err := loadEnv("."); err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("Failed to build atlas: %v", err)
	}
}

// run parses args, builds the atlas and writes the optional preview.
func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("glyphatlas", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var cfg cliConfig
	if err := cfg.register(fs); err != nil {
		return err
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	glyphatlas.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer glyphatlas.SetLogger(nil)

	opts, err := cfg.builderOptions()
	if err != nil {
		return err
	}

	b, err := glyphatlas.NewBuilderFromFile(cfg.font, opts...)
	if err != nil {
		return err
	}
	defer func() {
		_ = b.Close()
	}()

	if _, err := b.BuildFile(cfg.output); err != nil {
		return err
	}

	if cfg.preview != "" {
		atlas, err := glyphatlas.OpenAtlas(cfg.output, b.Layout())
		if err != nil {
			return err
		}
		if err := glyphatlas.SavePreview(cfg.preview, atlas.Contact(cfg.columns)); err != nil {
			return err
		}
		glyphatlas.Logger().Info("glyphatlas: wrote preview", "path", cfg.preview)
	}

	return nil
}
