package compose

import (
	"image/color"

	"ChartPulse/internal/model"
)

// Frame carries the progress scalars shared by all composers for one tick.
// The caller computes them; the composer only consumes them.
type Frame struct {
	Reveal float64 // 0 = not yet shown, 1 = fully shown
	Pause  float64 // 0 = live, 1 = fully paused
	Scrub  float64 // 0 = not hovering, 1 = fully in scrub mode
	DT     float64 // milliseconds elapsed since the previous tick

	Hover *model.Hover // nil when the pointer left the plot
}

// scrubX returns the hover x to dim against, or nil while the scrub blend is
// still below its activation floor.
func (f *Frame) scrubX() *float64 {
	if f.Hover == nil || f.Scrub <= 0.05 {
		return nil
	}
	return &f.Hover.X
}

// Momentum is the swing-detection signal driving arrows, particles and the
// impact shake.
type Momentum struct {
	Direction int     // +1 up, -1 down, 0 flat
	Swing     float64 // 0..1 magnitude of the detected swing
}

// BarPlacement selects where the bar layer renders.
type BarPlacement int

const (
	// BarPlacementBottom clips the bars into a strip along the plot bottom.
	BarPlacementBottom BarPlacement = iota
	// BarPlacementOverlay draws the bars unclipped, behind the price line.
	BarPlacementOverlay
)

// BarConfig configures the time-bucketed bar layer.
type BarConfig struct {
	Bars       []model.Bar
	BucketMs   int64        // bucket width in series time; must be positive
	Placement  BarPlacement // default BarPlacementBottom
	ShowLabels bool         // default false
	StripFrac  float64      // strip height as fraction of plot height; default 0.25
	Alpha      float64      // base bar opacity; default 0.5
}

func (c *BarConfig) stripFrac() float64 {
	if c.StripFrac <= 0 {
		return 0.25
	}
	return c.StripFrac
}

func (c *BarConfig) baseAlpha() float64 {
	if c.Alpha <= 0 {
		return 0.5
	}
	return c.Alpha
}

// LineFrame is the per-tick input of the single-series composer.
type LineFrame struct {
	Frame

	Points    []model.Point
	Fill      bool
	Reference *float64 // optional horizontal reference value
	ShowGrid  bool
	ShowPulse bool
	Momentum  *Momentum    // nil disables arrows, particles and shake bursts
	Bars      *BarConfig   // nil disables the bar layer
	Depth     *model.Depth // nil disables the order book
}

// SeriesFrame is one series of the multi-series composer.
type SeriesFrame struct {
	Points []model.Point
	Alpha  float64     // visibility: 0 hidden, 1 shown
	Color  color.NRGBA // zero value uses the palette line color
	Label  string      // optional endpoint label
}

// MultiFrame is the per-tick input of the multi-series composer.
type MultiFrame struct {
	Frame

	Series     []SeriesFrame
	ShowGrid   bool
	ShowLabels bool
}

// CandleFrame is the per-tick input of the candlestick/line morph composer.
type CandleFrame struct {
	Frame

	Points   []model.Point  // close series backing the morph line
	Candles  []model.Candle // current-width candles
	BucketMs int64

	// Old-width candles, cross-dissolved against the current ones while
	// MorphT is in [0,1]. MorphT = -1 means no width transition.
	OldCandles  []model.Candle
	OldBucketMs int64
	MorphT      float64

	LineMode     float64 // 0 = candlestick identity, 1 = line identity
	LineIdentity bool    // resting identity is the line chart
	ShowGrid     bool

	// ToEmpty marks a reverse morph into the placeholder; the empty-state
	// overlay is only shown then, never during forward morph or load.
	ToEmpty      bool
	LoadingAlpha float64
}
