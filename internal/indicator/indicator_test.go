package indicator

import (
	"math"
	"testing"

	"ChartPulse/internal/model"
)

func pts(vals ...float64) []model.Point {
	out := make([]model.Point, len(vals))
	for i, v := range vals {
		out[i] = model.Point{Time: int64(i) * 1000, Value: v}
	}
	return out
}

func TestSMA(t *testing.T) {
	got, err := SMA(pts(1, 2, 3, 4, 5), 3)
	if err != nil {
		t.Fatalf("sma: %v", err)
	}
	if got != 4 {
		t.Errorf("sma of last 3 = %v, want 4", got)
	}

	if _, err := SMA(pts(1, 2), 3); err == nil {
		t.Error("expected error with too few samples")
	}
	if _, err := SMA(pts(1, 2, 3), 0); err == nil {
		t.Error("expected error with zero period")
	}
}

func TestRSIMonotoneSeries(t *testing.T) {
	up, err := RSI(pts(1, 2, 3, 4, 5, 6, 7, 8), 4)
	if err != nil {
		t.Fatalf("rsi: %v", err)
	}
	if up != 100 {
		t.Errorf("all-gains rsi = %v, want 100", up)
	}

	down, err := RSI(pts(8, 7, 6, 5, 4, 3, 2, 1), 4)
	if err != nil {
		t.Fatalf("rsi: %v", err)
	}
	if down != 0 {
		t.Errorf("all-losses rsi = %v, want 0", down)
	}
}

func TestRSIInsufficientData(t *testing.T) {
	got, err := RSI(pts(1, 2), 14)
	if err != nil {
		t.Fatalf("rsi: %v", err)
	}
	if math.Abs(got-50) > 1e-9 {
		t.Errorf("rsi with short series = %v, want 50", got)
	}
}
