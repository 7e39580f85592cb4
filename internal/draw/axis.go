package draw

import (
	"time"

	"ChartPulse/internal/anim"
	"ChartPulse/internal/render"
	"ChartPulse/internal/theme"
)

const axisFontSize = 11

// TimeAxis draws time labels along the bottom padding. The label step is
// chosen from the visible span and kept in the state so a slowly scrolling
// window does not reshuffle labels every frame.
func (r Renderer) TimeAxis(s render.Surface, ly render.Layout, pal *theme.Palette, st *TimeAxisState, alpha, dt float64) {
	from, to := ly.TimeFrom, ly.TimeTo
	if alpha <= 0.01 || to <= from {
		return
	}
	st.Phase = anim.Clamp01(st.Phase + dt/600)
	alpha *= st.Phase

	span := to - from
	step := pickTimeStep(span)
	if st.StepMs == 0 || st.StepMs*2 < step || step*2 < st.StepMs {
		st.StepMs = step
	}

	y := ly.Plot.Bottom() + ly.PadBottom*0.6
	col := theme.WithAlpha(pal.GridLabel, alpha)
	first := from - from%st.StepMs + st.StepMs
	for t := first; t <= to; t += st.StepMs {
		x := ly.ToX(t)
		if x < ly.Plot.X || x > ly.Plot.Right() {
			continue
		}
		s.FillText(formatAxisTime(t, span), render.Point{X: x, Y: y}, axisFontSize, render.AlignCenter, col)
	}
}

func pickTimeStep(spanMs int64) int64 {
	steps := []int64{
		1000, 5 * 1000, 15 * 1000, 30 * 1000,
		60 * 1000, 5 * 60 * 1000, 15 * 60 * 1000, 30 * 60 * 1000,
		3600 * 1000, 6 * 3600 * 1000, 24 * 3600 * 1000,
	}
	for _, st := range steps {
		if spanMs/st <= 8 {
			return st
		}
	}
	return steps[len(steps)-1]
}

func formatAxisTime(ms, spanMs int64) string {
	t := time.UnixMilli(ms)
	switch {
	case spanMs <= 2*60*1000:
		return t.Format("15:04:05")
	case spanMs <= 24*3600*1000:
		return t.Format("15:04")
	default:
		return t.Format("Jan 2")
	}
}
