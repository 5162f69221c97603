package report

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Format selects a renderer.
type Format string

const (
	// FormatText is the default human-readable layout.
	FormatText Format = "text"
	// FormatTable renders one row per zone.
	FormatTable Format = "table"
	// FormatJSON is machine-readable and validates against Schema.
	FormatJSON Format = "json"
	// FormatYAML mirrors the JSON document.
	FormatYAML Format = "yaml"
	// FormatHTML is a standalone page with one bar per zone.
	FormatHTML Format = "html"
)

// ParseFormat parses a format name. The empty string selects FormatText.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatTable, FormatJSON, FormatYAML, FormatHTML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown report format %q (want text, table, json, yaml or html)", s)
	}
}

// ColorMode controls ANSI colours in the text and table renderers.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode parses a colour mode. The empty string selects ColorAuto.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
	}
}

// Options configures Write.
type Options struct {
	Format Format
	Color  ColorMode

	// Writer is the output sink (default os.Stdout).
	Writer io.Writer
}

// SinkFunc adapts a text emission function to an io.Writer.
type SinkFunc func(text string)

func (f SinkFunc) Write(p []byte) (int, error) {
	f(string(p))
	return len(p), nil
}

// Write renders r according to opts.
func Write(r *Report, opts Options) error {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}

	switch opts.Format {
	case FormatText, "":
		return writeText(w, r, newColorScheme(useColors(opts.Color, w)))
	case FormatTable:
		return writeTable(w, r)
	case FormatJSON:
		return writeJSON(w, r)
	case FormatYAML:
		return writeYAML(w, r)
	case FormatHTML:
		return writeHTML(w, r)
	default:
		return fmt.Errorf("unknown report format %q", opts.Format)
	}
}
