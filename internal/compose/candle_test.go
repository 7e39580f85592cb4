package compose

import (
	"math"
	"testing"

	"ChartPulse/internal/model"
	"ChartPulse/internal/render"
	"ChartPulse/internal/theme"
)

func testCandles() []model.Candle {
	return []model.Candle{
		{Time: 0, Open: 40, High: 55, Low: 35, Close: 50},
		{Time: 2000, Open: 50, High: 60, Low: 45, Close: 46},
		{Time: 4000, Open: 46, High: 52, Low: 42, Close: 51},
	}
}

func candleFrame() *CandleFrame {
	return &CandleFrame{
		Frame:    Frame{Reveal: 1, DT: 16},
		Points:   testPoints(),
		Candles:  testCandles(),
		BucketMs: 2000,
		MorphT:   -1,
	}
}

func TestRenderCandles_FullLineMode(t *testing.T) {
	// lineModeProg=1 forces lp to 1 regardless of reveal: no candle bodies,
	// accent-colored line, line-mode crosshair once reveal > 0.7.
	pal := theme.Dark()
	prims := &fakePrims{}
	fr := candleFrame()
	fr.LineMode = 1
	fr.Reveal = 0.8
	fr.Scrub = 1
	fr.Hover = &model.Hover{X: 150, Value: 50, Time: 2000}
	RenderCandles(render.NewTrace(600, 350), prims, testLayout(), pal, fr, &State{})

	if prims.called("candles") {
		t.Error("full line mode must not draw candle bodies")
	}
	if prims.called("dashline") {
		t.Error("close dash cross-fade must skip once fully in line mode")
	}
	if len(prims.lineOpts) != 1 {
		t.Fatalf("%d line draws, want 1", len(prims.lineOpts))
	}
	if prims.lineOpts[0].Color != pal.Accent {
		t.Errorf("line color = %+v, want accent (colorBlend 1)", prims.lineOpts[0].Color)
	}
	if !prims.lineOpts[0].CloseDash {
		t.Error("line layer must own the close dash in full line mode")
	}
	if len(prims.crossh) != 1 || prims.crossh[0].candleMode {
		t.Errorf("expected line-mode crosshair, got %+v", prims.crossh)
	}
}

func TestRenderCandles_PureCandleIdentity(t *testing.T) {
	prims := &fakePrims{}
	fr := candleFrame()
	RenderCandles(render.NewTrace(600, 350), prims, testLayout(), theme.Dark(), fr, &State{})

	// reveal=1, lineMode=0: lp = 0, candles at full alpha, true OHLC
	// shape, no morph line.
	if len(prims.candles) != 1 {
		t.Fatalf("%d candle draws, want 1", len(prims.candles))
	}
	if math.Abs(prims.candles[0].alpha-1) > 1e-9 {
		t.Errorf("candle alpha = %v, want 1", prims.candles[0].alpha)
	}
	if math.Abs(prims.candles[0].ohlcScale-1) > 1e-9 {
		t.Errorf("ohlcScale = %v, want 1", prims.candles[0].ohlcScale)
	}
	if prims.called("line") {
		t.Error("morph line must not draw at lp = 0")
	}
	// Close dash draws both variants; the accent one at alpha lp = 0 is the
	// primitive's skip.
	if !prims.called("dashline") {
		t.Error("expected close-price dash in candle identity")
	}
}

func TestRenderCandles_RevealCollapsesOHLC(t *testing.T) {
	prims := &fakePrims{}
	fr := candleFrame()
	fr.Reveal = 0.5
	RenderCandles(render.NewTrace(600, 350), prims, testLayout(), theme.Dark(), fr, &State{})

	if len(prims.candles) != 1 {
		t.Fatalf("%d candle draws, want 1", len(prims.candles))
	}
	// ohlcScale = smoothstep(0.5) = 0.5; alpha = reveal*(1-lp) with
	// lp = (1-0.5)^3 = 0.125.
	if math.Abs(prims.candles[0].ohlcScale-0.5) > 1e-9 {
		t.Errorf("ohlcScale = %v, want 0.5", prims.candles[0].ohlcScale)
	}
	wantAlpha := 0.5 * (1 - 0.125)
	if math.Abs(prims.candles[0].alpha-wantAlpha) > 1e-9 {
		t.Errorf("candle alpha = %v, want %v", prims.candles[0].alpha, wantAlpha)
	}
	// The loading line is still faintly present at lp = 0.125.
	if !prims.called("line") {
		t.Error("expected the reveal-driven morph line at partial reveal")
	}
}

func TestRenderCandles_WidthMorphCrossDissolve(t *testing.T) {
	prims := &fakePrims{}
	fr := candleFrame()
	fr.OldCandles = testCandles()
	fr.OldBucketMs = 1000
	fr.MorphT = 0.25
	RenderCandles(render.NewTrace(600, 350), prims, testLayout(), theme.Dark(), fr, &State{})

	if len(prims.candles) != 2 {
		t.Fatalf("%d candle draws, want old+new", len(prims.candles))
	}
	oldCall, newCall := prims.candles[0], prims.candles[1]
	if oldCall.widthMs != 1000 || newCall.widthMs != 2000 {
		t.Errorf("bucket widths = %d, %d; want 1000, 2000", oldCall.widthMs, newCall.widthMs)
	}
	if math.Abs(oldCall.alpha-0.75) > 1e-9 || math.Abs(newCall.alpha-0.25) > 1e-9 {
		t.Errorf("cross-dissolve alphas = %v, %v; want 0.75, 0.25", oldCall.alpha, newCall.alpha)
	}
}

func TestRenderCandles_LiveDotNeedsLineDominance(t *testing.T) {
	// lp below 0.5: no dot even at full reveal.
	prims := &fakePrims{}
	fr := candleFrame()
	fr.LineMode = 0.4
	RenderCandles(render.NewTrace(600, 350), prims, testLayout(), theme.Dark(), fr, &State{})
	if prims.called("dot") {
		t.Error("dot must wait for lp > 0.5")
	}

	prims = &fakePrims{}
	fr.LineMode = 0.8
	RenderCandles(render.NewTrace(600, 350), prims, testLayout(), theme.Dark(), fr, &State{})
	if !prims.called("dot") {
		t.Error("expected live dot once the line dominates")
	}
}

func TestRenderCandles_EmptyOverlayOnlyOnReverseMorph(t *testing.T) {
	prims := &fakePrims{}
	fr := candleFrame()
	fr.Reveal = 0.2
	RenderCandles(render.NewTrace(600, 350), prims, testLayout(), theme.Dark(), fr, &State{})
	if prims.called("empty") {
		t.Error("empty overlay must not show during forward reveal")
	}

	prims = &fakePrims{}
	fr.ToEmpty = true
	fr.LoadingAlpha = 0.25
	RenderCandles(render.NewTrace(600, 350), prims, testLayout(), theme.Dark(), fr, &State{})
	if !prims.called("empty") {
		t.Error("expected empty overlay on reverse morph to empty")
	}
}

func TestRenderCandles_CrosshairGates(t *testing.T) {
	prims := &fakePrims{}
	fr := candleFrame()
	fr.Reveal = 0.6 // below the crosshair gate
	fr.Scrub = 1
	fr.Hover = &model.Hover{X: 150, Value: 50, Time: 2000}
	RenderCandles(render.NewTrace(600, 350), prims, testLayout(), theme.Dark(), fr, &State{})
	if prims.called("crosshair") {
		t.Error("crosshair must wait for reveal > 0.7")
	}

	prims = &fakePrims{}
	fr.Reveal = 1
	RenderCandles(render.NewTrace(600, 350), prims, testLayout(), theme.Dark(), fr, &State{})
	if len(prims.crossh) != 1 {
		t.Fatal("expected crosshair at full reveal with scrub")
	}
	if !prims.crossh[0].candleMode {
		t.Error("candle-mode crosshair variant expected at lineMode 0")
	}
}
