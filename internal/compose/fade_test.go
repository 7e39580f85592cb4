package compose

import (
	"math"
	"testing"
)

func TestProximityFade_Branches(t *testing.T) {
	const w = 600.0 // fadeStart = min(80, 180) = 80
	tests := []struct {
		name  string
		dist  float64
		scrub float64
		want  float64
	}{
		{"inside dead zone", 3, 1, 0},
		{"at dead zone edge", 5, 1, 0},
		{"past fade start", 120, 0.8, 0.8},
		{"mid ramp", 42.5, 1, 0.5},
		{"negative dist (hover right of live)", -30, 1, 0},
		{"zero scrub", 40, 0, 0},
	}
	for _, tt := range tests {
		got := proximityFade(200, 200-tt.dist, tt.scrub, w)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: proximityFade dist=%v scrub=%v = %v, want %v",
				tt.name, tt.dist, tt.scrub, got, tt.want)
		}
	}
}

func TestProximityFade_ContinuousAtBranchPoints(t *testing.T) {
	const w = 600.0
	const eps = 1e-7

	// At dist = 5 the value approaches 0 from both sides.
	below := proximityFade(200, 195+eps, 1, w) // dist just under 5
	above := proximityFade(200, 195-eps, 1, w) // dist just over 5
	if below != 0 || above > 1e-5 {
		t.Errorf("jump at dead-zone edge: below=%v above=%v", below, above)
	}

	// At dist = fadeStart (80) the value approaches scrub from both sides.
	in := proximityFade(200, 120+eps, 0.7, w)  // dist just under 80
	out := proximityFade(200, 120-eps, 0.7, w) // dist just over 80
	if math.Abs(in-0.7) > 1e-5 || math.Abs(out-0.7) > 1e-9 {
		t.Errorf("jump at fade start: in=%v out=%v", in, out)
	}
}

func TestProximityFade_NarrowChart(t *testing.T) {
	// chartWidth*0.3 below the dead zone: the ramp degenerates, fade jumps
	// straight to the scrub blend outside the dead zone.
	if got := proximityFade(20, 10, 0.9, 10); got != 0.9 {
		t.Errorf("narrow chart fade = %v, want 0.9", got)
	}
	if got := proximityFade(20, 17, 0.9, 10); got != 0 {
		t.Errorf("narrow chart dead zone = %v, want 0", got)
	}
}
