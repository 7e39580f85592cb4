package draw

import (
	"image/color"

	"ChartPulse/internal/anim"
	"ChartPulse/internal/model"
	"ChartPulse/internal/render"
	"ChartPulse/internal/theme"
)

// LineOptions configures one price-line draw.
type LineOptions struct {
	Alpha  float64     // stroke opacity, 0 draws nothing
	Reveal float64     // 0..1, fraction of the line length drawn
	Width  float64     // stroke width, default 2
	Color  color.NRGBA // zero value means palette.Line
	Dashed bool        // render the stroke as dashes (line-identity resting mode)
	Fill   bool        // area fill down to the plot bottom
	ScrubX *float64    // when set, the stroke right of this x dims

	// CloseDash draws a horizontal dashed line at the last value in the
	// stroke color. The line identity renders its own close reference this
	// way instead of relying on the candle layer's.
	CloseDash bool
}

// scrubDim is how much of the stroke alpha survives right of the scrub x.
const scrubDim = 0.4

// PriceLine strokes the visible series and returns the realized pixel
// points, which later layers use as the live-point anchor. An empty or
// single-point series returns only the mapped points without stroking.
func (Renderer) PriceLine(s render.Surface, ly render.Layout, pal *theme.Palette, pts []model.Point, opts LineOptions) []render.Point {
	if len(pts) == 0 {
		return nil
	}
	px := make([]render.Point, len(pts))
	for i, p := range pts {
		px[i] = render.Point{X: ly.ToX(p.Time), Y: ly.ToY(p.Value)}
	}
	if len(px) < 2 || opts.Alpha <= 0.01 {
		return px
	}

	width := opts.Width
	if width <= 0 {
		width = 2
	}
	col := opts.Color
	if col == (color.NRGBA{}) {
		col = pal.Line
	}
	col = theme.WithAlpha(col, opts.Alpha)

	// Partial-length reveal: stroke only the leading fraction of the path,
	// interpolating the cut point so the tip does not pop between frames.
	drawn := px
	if opts.Reveal > 0 && opts.Reveal < 1 {
		drawn = truncatePath(px, opts.Reveal)
		if len(drawn) < 2 {
			return px
		}
	}

	if opts.Fill {
		poly := make([]render.Point, 0, len(drawn)+2)
		poly = append(poly, drawn...)
		poly = append(poly,
			render.Point{X: drawn[len(drawn)-1].X, Y: ly.Plot.Bottom()},
			render.Point{X: drawn[0].X, Y: ly.Plot.Bottom()},
		)
		s.FillPath(poly, theme.WithAlpha(pal.Fill, opts.Alpha))
	}

	if opts.ScrubX != nil {
		left, right := splitPath(drawn, *opts.ScrubX)
		strokePath(s, left, width, col, opts.Dashed)
		strokePath(s, right, width, theme.WithAlpha(col, scrubDim), opts.Dashed)
	} else {
		strokePath(s, drawn, width, col, opts.Dashed)
	}

	if opts.CloseDash {
		y := drawn[len(drawn)-1].Y
		s.StrokeDashed(
			render.Point{X: ly.Plot.X, Y: y},
			render.Point{X: ly.Plot.Right(), Y: y},
			1, []float64{4, 4}, theme.WithAlpha(col, 0.7),
		)
	}
	return px
}

func strokePath(s render.Surface, pts []render.Point, width float64, c color.NRGBA, dashed bool) {
	if len(pts) < 2 {
		return
	}
	if !dashed {
		s.StrokePath(pts, width, c)
		return
	}
	dash := []float64{6, 4}
	for i := 1; i < len(pts); i++ {
		s.StrokeDashed(pts[i-1], pts[i], width, dash, c)
	}
}

// truncatePath keeps the leading fraction t of the polyline, measured in
// point count with the final segment interpolated.
func truncatePath(px []render.Point, t float64) []render.Point {
	pos := t * float64(len(px)-1)
	i := int(pos)
	if i >= len(px)-1 {
		return px
	}
	frac := pos - float64(i)
	out := append([]render.Point{}, px[:i+1]...)
	if frac > 0 {
		out = append(out, render.Point{
			X: anim.Lerp(px[i].X, px[i+1].X, frac),
			Y: anim.Lerp(px[i].Y, px[i+1].Y, frac),
		})
	}
	return out
}

// splitPath divides the polyline at pixel x, duplicating the crossing point
// so both halves stroke continuously.
func splitPath(px []render.Point, x float64) (left, right []render.Point) {
	for i, p := range px {
		if p.X <= x {
			left = append(left, p)
			continue
		}
		if i > 0 && len(right) == 0 {
			prev := px[i-1]
			if p.X != prev.X {
				frac := (x - prev.X) / (p.X - prev.X)
				cross := render.Point{X: x, Y: anim.Lerp(prev.Y, p.Y, frac)}
				left = append(left, cross)
				right = append(right, cross)
			}
		}
		right = append(right, p)
	}
	return left, right
}
