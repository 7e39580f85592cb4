package anim

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

// Smoothstep applies the cubic easing t²(3-2t) to t clamped to [0,1].
func Smoothstep(t float64) float64 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}

// RampSmoothstep maps progress through the window [start, end] onto a
// smoothstepped 0..1 ramp: 0 at or before start, 1 at or after end.
// Staggering several layers over disjoint windows of one driver makes them
// arrive in sequence, each smoothly.
func RampSmoothstep(progress, start, end float64) float64 {
	if end <= start {
		if progress >= end {
			return 1
		}
		return 0
	}
	return Smoothstep((progress - start) / (end - start))
}
