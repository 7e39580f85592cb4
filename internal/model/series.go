package model

import "time"

// Point is a single (time, value) sample of the visible series.
// Time is Unix milliseconds.
type Point struct {
	Time  int64
	Value float64
}

// Candle is one OHLC bucket. Low <= min(Open,Close) <= max(Open,Close) <= High
// is assumed from the aggregation step, not re-checked here.
type Candle struct {
	Time  int64
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// Bar is one time-bucketed non-negative value (typically volume).
type Bar struct {
	Time  int64
	Value float64
}

// Hover carries the pointer position mapped into data space. A nil *Hover
// means the user is not hovering; the three fields are only meaningful
// together.
type Hover struct {
	X     float64 // pixel x inside the plot rect
	Value float64
	Time  int64
}

// DepthLevel is one side level of an order book snapshot.
type DepthLevel struct {
	Price float64
	Size  float64
}

// Depth is a bid/ask snapshot handed to the order-book layer.
type Depth struct {
	Bids []DepthLevel // sorted best-first
	Asks []DepthLevel
}

// Millis converts a wall-clock time to the series timebase.
func Millis(t time.Time) int64 { return t.UnixMilli() }
