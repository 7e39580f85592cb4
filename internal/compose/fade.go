package compose

import "math"

const (
	// fadeDead is the band around the live point where the crosshair is
	// fully hidden to avoid colliding with the live dot.
	fadeDead = 5.0
	// fadeCap bounds how far left of the live point the fade ramp reaches.
	fadeCap = 80.0
)

// proximityFade computes the crosshair opacity as the hover approaches the
// live data point: 0 within fadeDead pixels, the full scrub blend beyond the
// fade band, and a linear ramp between. The same formula dims the live dot
// and anchors both the single- and multi-series crosshair.
func proximityFade(liveX, hoverX, scrub, chartWidth float64) float64 {
	dist := liveX - hoverX
	if dist < fadeDead {
		return 0
	}
	fadeStart := math.Min(fadeCap, chartWidth*0.3)
	if fadeStart <= fadeDead || dist >= fadeStart {
		return scrub
	}
	return scrub * (dist - fadeDead) / (fadeStart - fadeDead)
}
