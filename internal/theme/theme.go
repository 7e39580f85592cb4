// Package theme holds the color palette the chart layers draw with.
package theme

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// Palette is the fixed set of color roles used by the composers and drawing
// primitives. Immutable per frame.
type Palette struct {
	Background  color.NRGBA
	Line        color.NRGBA // resting series stroke
	Accent      color.NRGBA // user-chosen highlight, morph target
	Neutral     color.NRGBA // loading / placeholder grey
	Fill        color.NRGBA // area fill under the line
	Up          color.NRGBA // rising candle body
	Down        color.NRGBA // falling candle body
	Grid        color.NRGBA
	GridLabel   color.NRGBA
	DashLine    color.NRGBA // reference / close-price dashes
	Crosshair   color.NRGBA
	TooltipBG   color.NRGBA
	TooltipText color.NRGBA
	Depth       color.NRGBA // order-book bands
	Bar         color.NRGBA // time-bucketed volume bars
	Particle    color.NRGBA
}

// Dark is the default palette.
func Dark() *Palette {
	return &Palette{
		Background:  color.NRGBA{R: 0x0d, G: 0x11, B: 0x17, A: 0xff},
		Line:        color.NRGBA{R: 0x4d, G: 0xa6, B: 0xff, A: 0xff},
		Accent:      color.NRGBA{R: 0x21, G: 0xce, B: 0x99, A: 0xff},
		Neutral:     color.NRGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff},
		Fill:        color.NRGBA{R: 0x4d, G: 0xa6, B: 0xff, A: 0x2e},
		Up:          color.NRGBA{R: 0x16, G: 0xc7, B: 0x84, A: 0xff},
		Down:        color.NRGBA{R: 0xea, G: 0x39, B: 0x43, A: 0xff},
		Grid:        color.NRGBA{R: 0x2a, G: 0x2e, B: 0x39, A: 0xff},
		GridLabel:   color.NRGBA{R: 0x78, G: 0x7b, B: 0x86, A: 0xff},
		DashLine:    color.NRGBA{R: 0x9b, G: 0xa1, B: 0xb0, A: 0xff},
		Crosshair:   color.NRGBA{R: 0xc9, G: 0xcd, B: 0xd6, A: 0xff},
		TooltipBG:   color.NRGBA{R: 0x1c, G: 0x21, B: 0x2b, A: 0xf2},
		TooltipText: color.NRGBA{R: 0xe6, G: 0xe8, B: 0xec, A: 0xff},
		Depth:       color.NRGBA{R: 0x35, G: 0x4a, B: 0x63, A: 0x66},
		Bar:         color.NRGBA{R: 0x3f, G: 0x51, B: 0x68, A: 0xd9},
		Particle:    color.NRGBA{R: 0xff, G: 0xd1, B: 0x66, A: 0xff},
	}
}

// Light is the bundled light palette.
func Light() *Palette {
	return &Palette{
		Background:  color.NRGBA{R: 0xfc, G: 0xfc, B: 0xfd, A: 0xff},
		Line:        color.NRGBA{R: 0x1f, G: 0x6f, B: 0xeb, A: 0xff},
		Accent:      color.NRGBA{R: 0x0f, G: 0x9d, B: 0x76, A: 0xff},
		Neutral:     color.NRGBA{R: 0x9a, G: 0xa0, B: 0xa8, A: 0xff},
		Fill:        color.NRGBA{R: 0x1f, G: 0x6f, B: 0xeb, A: 0x24},
		Up:          color.NRGBA{R: 0x0f, G: 0x9d, B: 0x76, A: 0xff},
		Down:        color.NRGBA{R: 0xd6, G: 0x2c, B: 0x3a, A: 0xff},
		Grid:        color.NRGBA{R: 0xe4, G: 0xe7, B: 0xec, A: 0xff},
		GridLabel:   color.NRGBA{R: 0x8a, G: 0x90, B: 0x99, A: 0xff},
		DashLine:    color.NRGBA{R: 0x6e, G: 0x75, B: 0x80, A: 0xff},
		Crosshair:   color.NRGBA{R: 0x3c, G: 0x41, B: 0x49, A: 0xff},
		TooltipBG:   color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xf5},
		TooltipText: color.NRGBA{R: 0x1a, G: 0x1d, B: 0x21, A: 0xff},
		Depth:       color.NRGBA{R: 0xb9, G: 0xc8, B: 0xda, A: 0x59},
		Bar:         color.NRGBA{R: 0xc3, G: 0xcd, B: 0xd9, A: 0xd9},
		Particle:    color.NRGBA{R: 0xe8, G: 0xa5, B: 0x1c, A: 0xff},
	}
}

// ByName resolves a bundled palette name, defaulting to dark.
func ByName(name string) *Palette {
	if name == "light" {
		return Light()
	}
	return Dark()
}

type paletteFile struct {
	Background  string `yaml:"background"`
	Line        string `yaml:"line"`
	Accent      string `yaml:"accent"`
	Neutral     string `yaml:"neutral"`
	Fill        string `yaml:"fill"`
	Up          string `yaml:"up"`
	Down        string `yaml:"down"`
	Grid        string `yaml:"grid"`
	GridLabel   string `yaml:"grid_label"`
	DashLine    string `yaml:"dash_line"`
	Crosshair   string `yaml:"crosshair"`
	TooltipBG   string `yaml:"tooltip_bg"`
	TooltipText string `yaml:"tooltip_text"`
	Depth       string `yaml:"depth"`
	Bar         string `yaml:"bar"`
	Particle    string `yaml:"particle"`
}

// Load reads a palette from a YAML file. Missing roles keep the dark-palette
// default, so a file only needs to override what it cares about.
func Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette: %w", err)
	}
	var pf paletteFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse palette: %w", err)
	}

	p := Dark()
	fields := []struct {
		hex string
		dst *color.NRGBA
	}{
		{pf.Background, &p.Background},
		{pf.Line, &p.Line},
		{pf.Accent, &p.Accent},
		{pf.Neutral, &p.Neutral},
		{pf.Fill, &p.Fill},
		{pf.Up, &p.Up},
		{pf.Down, &p.Down},
		{pf.Grid, &p.Grid},
		{pf.GridLabel, &p.GridLabel},
		{pf.DashLine, &p.DashLine},
		{pf.Crosshair, &p.Crosshair},
		{pf.TooltipBG, &p.TooltipBG},
		{pf.TooltipText, &p.TooltipText},
		{pf.Depth, &p.Depth},
		{pf.Bar, &p.Bar},
		{pf.Particle, &p.Particle},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := ParseHex(f.hex)
		if err != nil {
			return nil, err
		}
		*f.dst = c
	}
	return p, nil
}

// ParseHex parses "#rrggbb" or "#rrggbbaa".
func ParseHex(s string) (color.NRGBA, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("palette color %q: want #rrggbb or #rrggbbaa", s)
	}
	var v uint64
	if _, err := fmt.Sscanf(s, "%x", &v); err != nil {
		return color.NRGBA{}, fmt.Errorf("palette color %q: %w", s, err)
	}
	c := color.NRGBA{A: 0xff}
	if len(s) == 8 {
		c.A = uint8(v)
		v >>= 8
	}
	c.B = uint8(v)
	c.G = uint8(v >> 8)
	c.R = uint8(v >> 16)
	return c, nil
}
