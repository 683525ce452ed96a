package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/taigrr/colorhash"
	"gopkg.in/yaml.v3"

	"github.com/mscheltienne/it-documentary-system-validator/validator"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for a format other than text, json or yaml.
var ErrUnknownFormat = errors.New("unknown report format")

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("%w %q (use 'text', 'json' or 'yaml')", ErrUnknownFormat, s)
}

// Render writes r to w. Color only applies to the text format.
func (r Report) Render(w io.Writer, format Format, useColor bool) error {
	switch format {
	case FormatText:
		return r.renderText(w, useColor)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, format)
}

// pathPalette colors each top-level subtree consistently across runs.
var pathPalette = []color.Attribute{
	color.FgCyan, color.FgGreen, color.FgBlue, color.FgMagenta,
	color.FgHiCyan, color.FgHiGreen, color.FgHiBlue, color.FgHiMagenta,
}

type textStyle struct {
	header    *color.Color
	primary   *color.Color
	secondary *color.Color
	enabled   bool
}

func newTextStyle(enabled bool) textStyle {
	return textStyle{
		header:    paint(enabled, color.Bold),
		primary:   paint(enabled, color.FgRed),
		secondary: paint(enabled, color.FgYellow),
		enabled:   enabled,
	}
}

func paint(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func (s textStyle) path(p string) string {
	top, _, _ := strings.Cut(p, "/")
	idx := colorhash.HashString(top) % len(pathPalette)
	if idx < 0 {
		idx = -idx
	}
	return paint(s.enabled, pathPalette[idx]).Sprint(p)
}

func (r Report) renderText(w io.Writer, useColor bool) error {
	s := newTextStyle(useColor)
	var b strings.Builder
	fmt.Fprintf(&b, "Root: %s\n", r.Root)
	writeSection(&b, s, "Primary violations:", r.Primary, s.primary)
	writeSection(&b, s, "Secondary violations:", r.Secondary, s.secondary)
	fmt.Fprintf(&b, "Summary: %d primary, %d secondary\n", len(r.Primary), len(r.Secondary))
	_, err := io.WriteString(w, b.String())
	return err
}

func writeSection(b *strings.Builder, s textStyle, title string, v validator.Violations, codeColor *color.Color) {
	b.WriteString(s.header.Sprint(title))
	b.WriteString("\n")
	if len(v) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, path := range v.Sorted() {
		fmt.Fprintf(b, "  %s\n", s.path(path))
		for _, c := range v[path] {
			fmt.Fprintf(b, "    %s: %s\n", codeColor.Sprint(c), c.Description())
		}
	}
}
