package compose

import (
	"fmt"

	"ChartPulse/internal/render"
	"ChartPulse/internal/theme"
)

const (
	barGap       = 2   // pixels between neighboring bars
	barCorner    = 1.5 // rounded-top radius
	barLabelSize = 9.0
)

// renderBarLayer clips and renders the time-bucketed bar layer. Bars grow
// from zero height linearly in reveal with their bottom edge anchored; bars
// right of the scrub x dim as a hard split, not a gradient.
func renderBarLayer(s render.Surface, ly render.Layout, pal *theme.Palette, cfg *BarConfig, layerAlpha, reveal, scrub float64, scrubX *float64) {
	if cfg == nil || len(cfg.Bars) == 0 || cfg.BucketMs <= 0 || layerAlpha <= 0.01 || reveal <= 0 {
		return
	}
	maxValue := 0.0
	for _, b := range cfg.Bars {
		if b.Value > maxValue {
			maxValue = b.Value
		}
	}
	if maxValue <= 0 {
		return
	}

	maxHeight := ly.Plot.H * cfg.stripFrac()
	if cfg.Placement == BarPlacementBottom {
		clip := render.Rect{X: ly.Plot.X, Y: ly.Plot.Bottom() - maxHeight, W: ly.Plot.W, H: maxHeight}
		defer s.Push(render.LayerOpts{Clip: &clip}).Pop()
	}

	base := cfg.baseAlpha() * layerAlpha
	labelCol := theme.WithAlpha(pal.GridLabel, layerAlpha)
	for _, b := range cfg.Bars {
		if b.Value <= 0 {
			continue
		}
		centerX := ly.ToX(b.Time + cfg.BucketMs/2)
		w := ly.ToX(b.Time+cfg.BucketMs) - ly.ToX(b.Time) - barGap
		if w < 1 {
			w = 1
		}
		if centerX+w/2 < ly.Plot.X || centerX-w/2 > ly.Plot.Right() {
			continue
		}

		h := b.Value / maxValue * maxHeight * reveal
		if h <= 0 {
			continue
		}
		a := base
		if scrubX != nil && centerX > *scrubX {
			a *= 1 - scrub*0.6
		}

		r := render.Rect{X: centerX - w/2, Y: ly.Plot.Bottom() - h, W: w, H: h}
		col := theme.WithAlpha(pal.Bar, a)
		if w > 6 && h > 2*barCorner {
			s.FillRoundedRect(r, barCorner, col)
		} else {
			s.FillRect(r, col)
		}

		if cfg.ShowLabels && reveal > 0.5 && h > barLabelSize+4 {
			s.FillText(formatBarValue(b.Value),
				render.Point{X: centerX, Y: r.Y + barLabelSize + 2},
				barLabelSize, render.AlignCenter, labelCol)
		}
	}
}

// formatBarValue renders a bar value with fixed unit suffixes.
func formatBarValue(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.1fK", v/1e3)
	case v >= 10:
		return fmt.Sprintf("%.0f", v)
	case v >= 1:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
