package compose

import (
	"math"
	"testing"

	"ChartPulse/internal/model"
	"ChartPulse/internal/render"
	"ChartPulse/internal/theme"
)

func multiSeries() []SeriesFrame {
	return []SeriesFrame{
		{Points: testPoints(), Alpha: 1},
		{Points: []model.Point{{Time: 500, Value: 20}, {Time: 8000, Value: 30}}, Alpha: 1},
		{Points: []model.Point{{Time: 500, Value: 70}, {Time: 7000, Value: 80}}, Alpha: 0.4},
	}
}

func TestRenderMulti_SecondarySeriesFade(t *testing.T) {
	tests := []struct {
		reveal         float64
		wantSecondMult float64
	}{
		{0.5, 1.0}, // min(1, 0.5*2) = 1
		{0.1, 0.2}, // min(1, 0.1*2) = 0.2
		{1.0, 1.0}, // no fade at full reveal
	}
	for _, tt := range tests {
		prims := &fakePrims{}
		fr := &MultiFrame{
			Frame:  Frame{Reveal: tt.reveal, DT: 16},
			Series: multiSeries(),
		}
		RenderMulti(render.NewTrace(600, 350), prims, testLayout(), theme.Dark(), fr, &State{})

		if len(prims.lineOpts) != 3 {
			t.Fatalf("reveal=%v: %d series drawn, want 3", tt.reveal, len(prims.lineOpts))
		}
		// First series never takes the secondary fade.
		if prims.lineOpts[0].Alpha != 1 {
			t.Errorf("reveal=%v: first series alpha = %v, want 1", tt.reveal, prims.lineOpts[0].Alpha)
		}
		if got := prims.lineOpts[1].Alpha; math.Abs(got-tt.wantSecondMult) > 1e-9 {
			t.Errorf("reveal=%v: second series alpha = %v, want %v", tt.reveal, got, tt.wantSecondMult)
		}
		// Third series combines its own visibility with the fade.
		want3 := 0.4 * tt.wantSecondMult
		if got := prims.lineOpts[2].Alpha; math.Abs(got-want3) > 1e-9 {
			t.Errorf("reveal=%v: third series alpha = %v, want %v", tt.reveal, got, want3)
		}
	}
}

func TestRenderMulti_HiddenSeriesSkipped(t *testing.T) {
	prims := &fakePrims{}
	series := multiSeries()
	series[1].Alpha = 0
	fr := &MultiFrame{
		Frame:  Frame{Reveal: 1, DT: 16},
		Series: series,
	}
	RenderMulti(render.NewTrace(600, 350), prims, testLayout(), theme.Dark(), fr, &State{})
	if got := prims.count("line"); got != 2 {
		t.Errorf("hidden series drawn: %d line calls, want 2", got)
	}
}

func TestRenderMulti_EndpointDotsPulseByVisibility(t *testing.T) {
	prims := &fakePrims{}
	fr := &MultiFrame{
		Frame:  Frame{Reveal: 1, DT: 16},
		Series: multiSeries(),
	}
	RenderMulti(render.NewTrace(600, 350), prims, testLayout(), theme.Dark(), fr, &State{})

	// Series 0 and 1 (alpha 1) pulse; series 2 (alpha 0.4) gets the simple
	// dot.
	if got := prims.count("pulsingdot"); got != 2 {
		t.Errorf("%d pulsing dots, want 2", got)
	}
	if got := prims.count("simpledot"); got != 1 {
		t.Errorf("%d simple dots, want 1", got)
	}
}

func TestRenderMulti_CrosshairAnchorsRightmostSeries(t *testing.T) {
	ly := testLayout()
	// Hover 2px left of series 1's endpoint (t=8000); the anchor is series
	// 0's endpoint at t=9000, 50px further right, so the crosshair is well
	// outside the dead zone and must draw.
	hoverX := ly.ToX(8000) - 2
	prims := &fakePrims{}
	fr := &MultiFrame{
		Frame:  Frame{Reveal: 1, Scrub: 1, DT: 16, Hover: &model.Hover{X: hoverX, Value: 30, Time: 8000}},
		Series: multiSeries(),
	}
	RenderMulti(render.NewTrace(600, 350), prims, ly, theme.Dark(), fr, &State{})
	if !prims.called("crosshair") {
		t.Fatal("expected crosshair anchored at the rightmost live point")
	}

	// Hover within the dead zone of the rightmost endpoint: suppressed.
	prims = &fakePrims{}
	fr.Hover = &model.Hover{X: ly.ToX(9000) - 1, Value: 60, Time: 9000}
	RenderMulti(render.NewTrace(600, 350), prims, ly, theme.Dark(), fr, &State{})
	if prims.called("crosshair") {
		t.Error("crosshair must hide near the rightmost live point")
	}
}

func TestRenderMulti_Labels(t *testing.T) {
	tr := render.NewTrace(600, 350)
	series := multiSeries()
	series[0].Label = "BTC"
	series[2].Label = "ETH"
	fr := &MultiFrame{
		Frame:      Frame{Reveal: 1, DT: 16},
		Series:     series,
		ShowLabels: true,
	}
	RenderMulti(tr, &fakePrims{}, testLayout(), theme.Dark(), fr, &State{})
	if got := tr.Count("text"); got != 2 {
		t.Errorf("%d endpoint labels, want 2", got)
	}
}
