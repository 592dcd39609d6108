package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/gogpu/glyphatlas"
	"github.com/gogpu/glyphatlas/text"
)

// Environment keys read as flag defaults.
const (
	envFont     = "GLYPHATLAS_FONT"
	envSize     = "GLYPHATLAS_SIZE"
	envOutput   = "GLYPHATLAS_OUTPUT"
	envCodePage = "GLYPHATLAS_CODEPAGE"
	envInterp   = "GLYPHATLAS_INTERP"
)

// Defaults when neither a flag nor the environment sets a value.
const (
	defaultFont   = "fonts/notosans.ttf"
	defaultOutput = "bin/glyphs.bin"
)

// loadEnv loads .env.local and then .env from dir, if present. Variables
// already set in the process environment win, and .env.local wins over .env.
func loadEnv(dir string) error {
	for _, name := range []string{".env.local", ".env"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return err
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

// cliConfig holds the command line configuration.
type cliConfig struct {
	font     string
	size     float64
	output   string
	width    int
	height   int
	first    int
	last     int
	codePage string
	interp   string
	parser   string
	shaper   string
	hinting  string
	color    string
	preview  string
	columns  int
	verbose  bool
}

// register binds the flags to c, with defaults taken from the environment.
func (c *cliConfig) register(fs *flag.FlagSet) error {
	size, err := envFloat(envSize, glyphatlas.DefaultPointSize)
	if err != nil {
		return err
	}

	fs.StringVar(&c.font, "font", envString(envFont, defaultFont), "TTF/OTF font file ($"+envFont+")")
	fs.Float64Var(&c.size, "size", size, "font size in points ($"+envSize+")")
	fs.StringVar(&c.output, "o", envString(envOutput, defaultOutput), "output atlas file ($"+envOutput+")")
	fs.IntVar(&c.width, "width", glyphatlas.DefaultCellWidth, "cell width in pixels")
	fs.IntVar(&c.height, "height", glyphatlas.DefaultCellHeight, "cell height in pixels")
	fs.IntVar(&c.first, "first", glyphatlas.DefaultFirst, "first byte value to render")
	fs.IntVar(&c.last, "last", glyphatlas.DefaultLast, "last byte value to render")
	fs.StringVar(&c.codePage, "codepage", envString(envCodePage, "latin1"), "byte to character mapping ($"+envCodePage+")")
	fs.StringVar(&c.interp, "interp", envString(envInterp, "nearest"), "scaling: nearest, approxbilinear, bilinear, bicubic ($"+envInterp+")")
	fs.StringVar(&c.parser, "parser", text.ParserXImage, "font backend: ximage or freetype")
	fs.StringVar(&c.shaper, "shaper", text.ShaperBuiltin, "advance measurement: builtin or gotext")
	fs.StringVar(&c.hinting, "hinting", "full", "hinting: none, vertical, full")
	fs.StringVar(&c.color, "color", "ffffff", "text color as hex RGB, RGBA, RRGGBB or RRGGBBAA, optional leading #")
	fs.StringVar(&c.preview, "preview", "", "also write a PNG contact sheet to this path")
	fs.IntVar(&c.columns, "columns", 16, "cells per row in the preview")
	fs.BoolVar(&c.verbose, "v", false, "log every glyph")
	return nil
}

// builderOptions converts the configuration to glyphatlas options.
func (c *cliConfig) builderOptions() ([]glyphatlas.Option, error) {
	codePage, err := glyphatlas.LookupCodePage(c.codePage)
	if err != nil {
		return nil, err
	}
	interp, err := glyphatlas.ParseInterpolation(c.interp)
	if err != nil {
		return nil, err
	}
	shaper, err := text.NewShaper(c.shaper)
	if err != nil {
		return nil, err
	}
	hinting, err := text.ParseHinting(c.hinting)
	if err != nil {
		return nil, err
	}
	col, err := glyphatlas.ParseHex(c.color)
	if err != nil {
		return nil, err
	}

	return []glyphatlas.Option{
		glyphatlas.WithPointSize(c.size),
		glyphatlas.WithLayout(glyphatlas.Layout{
			CellWidth:  c.width,
			CellHeight: c.height,
			First:      c.first,
			Last:       c.last,
		}),
		glyphatlas.WithCodePage(codePage),
		glyphatlas.WithInterpolation(interp),
		glyphatlas.WithParser(c.parser),
		glyphatlas.WithShaper(shaper),
		glyphatlas.WithHinting(hinting),
		glyphatlas.WithColor(col),
	}, nil
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envFloat(key string, def float64) (float64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}
