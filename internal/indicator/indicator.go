// Package indicator computes the small set of series statistics the demo
// overlays on the chart.
package indicator

import (
	"errors"

	"ChartPulse/internal/model"
)

// SMA computes the simple moving average of the last period samples.
func SMA(pts []model.Point, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(pts) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(pts) - period; i < len(pts); i++ {
		sum += pts[i].Value
	}
	return sum / float64(period), nil
}

// RSI computes the Wilder-smoothed RSI over the given period.
// Requires at least period+1 samples. Returns 50.0 if data is insufficient.
func RSI(pts []model.Point, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(pts) < period+1 {
		return 50.0, nil // default when data insufficient
	}

	// Initial average gain/loss over the first `period` changes
	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := pts[i].Value - pts[i-1].Value
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change // make positive
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	// Wilder smoothing for remaining samples
	for i := period + 1; i < len(pts); i++ {
		change := pts[i].Value - pts[i-1].Value
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
	}

	if avgLoss == 0 {
		return 100.0, nil
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs), nil
}
