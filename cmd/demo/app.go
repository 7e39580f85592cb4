package main

import (
	"image"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/widget/material"
	"github.com/sirupsen/logrus"

	"ChartPulse/internal/anim"
	"ChartPulse/internal/compose"
	"ChartPulse/internal/config"
	"ChartPulse/internal/draw"
	"ChartPulse/internal/feed"
	"ChartPulse/internal/indicator"
	"ChartPulse/internal/model"
	"ChartPulse/internal/recorder"
	"ChartPulse/internal/render"
	"ChartPulse/internal/render/giosurface"
	"ChartPulse/internal/report"
	"ChartPulse/internal/theme"
)

const (
	revealDurMs = 1200 // fade-in time for a fresh series
	blendDurMs  = 250  // smoothing for pause and scrub transitions
	maxFrameMs  = 100  // dt cap across stalls so animations stay stable
)

// chartApp owns everything that lives across frames: the visible series, the
// composer state, and the smoothed progress scalars.
type chartApp struct {
	cfg  *config.Config
	pal  *theme.Palette
	mat  *material.Theme
	prim draw.Renderer
	rep  *report.Reporter
	log  *logrus.Entry

	ticks <-chan feed.Tick

	points []model.Point
	state  compose.State

	reveal float64
	pause  float64
	scrub  float64
	paused bool

	hovering bool
	hoverPos render.Point

	lastFrame time.Time
}

func newChartApp(cfg *config.Config, pal *theme.Palette, ticks <-chan feed.Tick, rep *report.Reporter, log *logrus.Entry) *chartApp {
	mat := material.NewTheme()
	mat.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	return &chartApp{
		cfg:   cfg,
		pal:   pal,
		mat:   mat,
		prim:  draw.New(),
		rep:   rep,
		log:   log,
		ticks: ticks,
	}
}

func (a *chartApp) loop(w *app.Window) error {
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			a.frame(gtx, e.Now)
			e.Frame(gtx.Ops)
		}
	}
}

func (a *chartApp) frame(gtx layout.Context, now time.Time) {
	dt := 16.0
	if !a.lastFrame.IsZero() {
		dt = float64(now.Sub(a.lastFrame).Milliseconds())
		if dt > maxFrameMs {
			dt = maxFrameMs
		}
		if dt < 1 {
			dt = 1
		}
	}
	a.lastFrame = now

	a.drainTicks(now)
	a.handleInput(gtx)
	a.advance(dt)

	paint.Fill(gtx.Ops, a.pal.Background)
	area := clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops)
	event.Op(gtx.Ops, a)

	ly := a.layoutFor(gtx, now)
	lf := a.lineFrame(ly, dt)

	surface := giosurface.New(gtx, a.mat, a.pal.Background)
	compose.RenderLine(surface, a.prim, ly, a.pal, lf, &a.state)
	area.Pop()

	ops, depth := surface.Stats()
	a.rep.Observe(&recorder.FrameSample{
		Composer: "line",
		DTMillis: dt,
		Ops:      ops,
		MaxDepth: depth,
		Reveal:   a.reveal,
		Points:   len(a.points),
	})

	gtx.Execute(op.InvalidateCmd{})
}

func (a *chartApp) drainTicks(now time.Time) {
	if a.paused {
		// Drop ticks on the floor while paused; the window stays frozen.
		for {
			select {
			case <-a.ticks:
			default:
				return
			}
		}
	}
	for {
		select {
		case tk, ok := <-a.ticks:
			if !ok {
				return
			}
			a.points = append(a.points, model.Point{Time: tk.Time, Value: tk.Price})
		default:
			a.points = model.WindowPoints(a.points, now.UnixMilli()-a.cfg.Chart.WindowMs, now.UnixMilli())
			return
		}
	}
}

func (a *chartApp) handleInput(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: a,
			Kinds:  pointer.Enter | pointer.Leave | pointer.Move | pointer.Press,
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch pe.Kind {
		case pointer.Enter, pointer.Move:
			a.hovering = true
			a.hoverPos = render.Point{X: float64(pe.Position.X), Y: float64(pe.Position.Y)}
		case pointer.Leave, pointer.Cancel:
			a.hovering = false
		case pointer.Press:
			a.paused = !a.paused
		}
	}
}

// advance moves the smoothed progress scalars toward their targets.
func (a *chartApp) advance(dt float64) {
	if len(a.points) >= 2 {
		a.reveal = anim.Clamp01(a.reveal + dt/revealDurMs)
	}

	blend := dt / blendDurMs
	if blend > 1 {
		blend = 1
	}
	pauseTarget := 0.0
	if a.paused {
		pauseTarget = 1
	}
	a.pause += (pauseTarget - a.pause) * blend

	scrubTarget := 0.0
	if a.hovering {
		scrubTarget = 1
	}
	a.scrub += (scrubTarget - a.scrub) * blend
}

func (a *chartApp) layoutFor(gtx layout.Context, now time.Time) render.Layout {
	w := float64(gtx.Constraints.Max.X)
	h := float64(gtx.Constraints.Max.Y)
	ly := render.Layout{
		PadLeft:   16,
		PadRight:  72,
		PadTop:    24,
		PadBottom: 36,
	}
	ly.Plot = render.Rect{
		X: ly.PadLeft,
		Y: ly.PadTop,
		W: w - ly.PadLeft - ly.PadRight,
		H: h - ly.PadTop - ly.PadBottom,
	}

	nowMs := now.UnixMilli()
	ly.TimeFrom = nowMs - a.cfg.Chart.WindowMs
	ly.TimeTo = nowMs

	lo, hi, ok := model.MinMax(a.points)
	if !ok || hi == lo {
		lo, hi = 0, 1
	}
	margin := (hi - lo) * 0.08
	lo -= margin
	hi += margin

	plot := ly.Plot
	span := float64(ly.TimeTo - ly.TimeFrom)
	ly.ToX = func(t int64) float64 {
		return plot.X + float64(t-ly.TimeFrom)/span*plot.W
	}
	ly.ToY = func(v float64) float64 {
		return plot.Y + (hi-v)/(hi-lo)*plot.H
	}
	return ly
}

func (a *chartApp) lineFrame(ly render.Layout, dt float64) *compose.LineFrame {
	lf := &compose.LineFrame{
		Frame: compose.Frame{
			Reveal: a.reveal,
			Pause:  a.pause,
			Scrub:  a.scrub,
			DT:     dt,
			Hover:  a.hoverFor(ly),
		},
		Points:    a.points,
		Fill:      true,
		ShowGrid:  a.cfg.Chart.Grid,
		ShowPulse: a.cfg.Chart.Pulse,
		Momentum:  a.momentum(),
	}
	if ma, err := indicator.SMA(a.points, 20); err == nil {
		lf.Reference = &ma
	}
	if a.cfg.Chart.Volume {
		lf.Bars = &compose.BarConfig{
			Bars:     model.BucketBars(a.points, a.cfg.Chart.BucketMs),
			BucketMs: a.cfg.Chart.BucketMs,
		}
	}
	if a.cfg.Chart.Depth {
		lf.Depth = a.syntheticDepth()
	}
	return lf
}

func (a *chartApp) hoverFor(ly render.Layout) *model.Hover {
	if !a.hovering || !ly.Plot.Contains(a.hoverPos.X, a.hoverPos.Y) {
		return nil
	}
	lo, hi, ok := model.MinMax(a.points)
	if !ok {
		return nil
	}
	frac := (a.hoverPos.X - ly.Plot.X) / ly.Width()
	t := ly.TimeFrom + int64(frac*float64(ly.TimeTo-ly.TimeFrom))
	yFrac := (a.hoverPos.Y - ly.Plot.Y) / ly.Height()
	return &model.Hover{
		X:     a.hoverPos.X,
		Value: hi - yFrac*(hi-lo),
		Time:  t,
	}
}

// momentum derives the swing signal from the last few samples.
func (a *chartApp) momentum() *compose.Momentum {
	n := len(a.points)
	if n < 3 {
		return nil
	}
	lo, hi, _ := model.MinMax(a.points)
	span := hi - lo
	if span <= 0 {
		return nil
	}
	delta := a.points[n-1].Value - a.points[n-3].Value
	m := &compose.Momentum{Swing: anim.Clamp01((delta / span) / 0.04)}
	switch {
	case delta > 0:
		m.Direction = 1
	case delta < 0:
		m.Direction = -1
		m.Swing = anim.Clamp01((-delta / span) / 0.04)
	}
	return m
}

// syntheticDepth fabricates a plausible order book around the last price so
// the depth layer has something to show on feeds without book data.
func (a *chartApp) syntheticDepth() *model.Depth {
	n := len(a.points)
	if n == 0 {
		return nil
	}
	p := a.points[n-1].Value
	d := &model.Depth{}
	for i := 1; i <= 5; i++ {
		step := p * 0.0004 * float64(i)
		size := 1.0 / float64(i)
		d.Bids = append(d.Bids, model.DepthLevel{Price: p - step, Size: size})
		d.Asks = append(d.Asks, model.DepthLevel{Price: p + step, Size: size})
	}
	return d
}
