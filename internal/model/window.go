package model

// WindowPoints returns the sub-slice of pts with Time in [from, to].
// pts must be sorted by Time ascending.
func WindowPoints(pts []Point, from, to int64) []Point {
	lo := 0
	for lo < len(pts) && pts[lo].Time < from {
		lo++
	}
	hi := len(pts)
	for hi > lo && pts[hi-1].Time > to {
		hi--
	}
	return pts[lo:hi]
}

// BucketBars aggregates points into fixed-width buckets by summing values.
// bucketMs must be positive; points with non-positive value still advance
// buckets but contribute nothing.
func BucketBars(pts []Point, bucketMs int64) []Bar {
	if bucketMs <= 0 || len(pts) == 0 {
		return nil
	}
	var bars []Bar
	cur := pts[0].Time - pts[0].Time%bucketMs
	sum := 0.0
	for _, p := range pts {
		b := p.Time - p.Time%bucketMs
		if b != cur {
			bars = append(bars, Bar{Time: cur, Value: sum})
			cur = b
			sum = 0
		}
		if p.Value > 0 {
			sum += p.Value
		}
	}
	bars = append(bars, Bar{Time: cur, Value: sum})
	return bars
}

// BucketCandles folds points into fixed-width OHLC buckets.
func BucketCandles(pts []Point, bucketMs int64) []Candle {
	if bucketMs <= 0 || len(pts) == 0 {
		return nil
	}
	var cs []Candle
	var c Candle
	open := false
	for _, p := range pts {
		b := p.Time - p.Time%bucketMs
		if !open {
			c = Candle{Time: b, Open: p.Value, High: p.Value, Low: p.Value, Close: p.Value}
			open = true
			continue
		}
		if b != c.Time {
			cs = append(cs, c)
			c = Candle{Time: b, Open: p.Value, High: p.Value, Low: p.Value, Close: p.Value}
			continue
		}
		if p.Value > c.High {
			c.High = p.Value
		}
		if p.Value < c.Low {
			c.Low = p.Value
		}
		c.Close = p.Value
	}
	if open {
		cs = append(cs, c)
	}
	return cs
}

// MinMax returns the value range of pts. ok is false for an empty slice.
func MinMax(pts []Point) (lo, hi float64, ok bool) {
	if len(pts) == 0 {
		return 0, 0, false
	}
	lo, hi = pts[0].Value, pts[0].Value
	for _, p := range pts[1:] {
		if p.Value < lo {
			lo = p.Value
		}
		if p.Value > hi {
			hi = p.Value
		}
	}
	return lo, hi, true
}
