// Package render defines the drawing surface the chart composers target.
// A Surface is a thin, backend-agnostic op sink with scoped layer state:
// entering a layer pushes an alpha multiplier, an optional clip rect and an
// optional pixel offset, and popping the scope is guaranteed to restore the
// prior state. Backends apply the effective alpha at draw time.
package render

import "image/color"

// Point is a pixel position on the surface.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Layout is the per-frame pixel geometry of the plot: the plot rectangle,
// the paddings that separate it from the surface edges, and the data-to-pixel
// mapping functions. Immutable for the duration of one composer call.
type Layout struct {
	Plot Rect

	PadLeft   float64
	PadRight  float64
	PadTop    float64
	PadBottom float64

	// TimeFrom and TimeTo bound the visible window in series time (Unix ms).
	TimeFrom int64
	TimeTo   int64

	// ToX maps a series timestamp (Unix ms) to a pixel x, ToY maps a value
	// to a pixel y. Both are monotonic and invertible over the visible
	// window.
	ToX func(t int64) float64
	ToY func(v float64) float64
}

// Width returns the plot width in pixels.
func (l Layout) Width() float64 { return l.Plot.W }

// Height returns the plot height in pixels.
func (l Layout) Height() float64 { return l.Plot.H }

// Align selects text anchoring relative to the given position.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// LayerOpts configures one scoped layer.
type LayerOpts struct {
	Alpha   float64 // multiplier in [0,1]; 0 is treated as 1 (unset)
	Clip    *Rect   // optional clip rectangle
	OffsetX float64 // whole-layer pixel translation
	OffsetY float64
}

// Scope restores the surface state that was active before the matching Push.
type Scope interface {
	Pop()
}

// Surface is the set of drawing ops the chart layers use. Implementations
// multiply the current layer-stack alpha into every color they fill.
type Surface interface {
	// Size returns the full drawable width and height in pixels.
	Size() (w, h float64)

	// Push enters a scoped layer. Scopes must be popped in LIFO order.
	Push(opts LayerOpts) Scope

	FillRect(r Rect, c color.NRGBA)
	FillRoundedRect(r Rect, radius float64, c color.NRGBA)

	// StrokePath strokes the open polyline through pts.
	StrokePath(pts []Point, width float64, c color.NRGBA)
	// FillPath fills the closed polygon through pts.
	FillPath(pts []Point, c color.NRGBA)
	// StrokeDashed strokes a dashed segment from a to b. dash alternates
	// on/off lengths in pixels.
	StrokeDashed(a, b Point, width float64, dash []float64, c color.NRGBA)

	FillCircle(center Point, radius float64, c color.NRGBA)
	StrokeCircle(center Point, radius, width float64, c color.NRGBA)

	// FillText draws text at the given anchor position with the given font
	// size in pixels.
	FillText(text string, at Point, size float64, align Align, c color.NRGBA)
	// TextWidth measures text at the given font size.
	TextWidth(text string, size float64) float64

	// EraseHorizontal fades already-drawn content inside band toward the
	// background, full strength at the band's left edge and none at its
	// right edge (destination-out composite).
	EraseHorizontal(band Rect)
}
