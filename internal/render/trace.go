package render

import "image/color"

// TraceOp is one recorded drawing op.
type TraceOp struct {
	Kind  string  // "rect", "rrect", "path", "fillpath", "dash", "circle", "ringcircle", "text", "erase"
	Alpha float64 // effective alpha: layer stack times color alpha
	Depth int     // layer-stack depth when the op was emitted
	At    Point   // representative position (first point, center, or rect origin)
	Text  string  // for "text" ops
}

// Trace is a Surface that records every op instead of rasterizing. It backs
// the composer scenario tests and feeds per-frame op statistics to the
// recorder.
type Trace struct {
	W, H float64
	Ops  []TraceOp

	stack []traceLayer
}

type traceLayer struct {
	alpha float64
	clip  *Rect
	dx    float64
	dy    float64
}

// NewTrace returns a recording surface of the given size.
func NewTrace(w, h float64) *Trace {
	return &Trace{W: w, H: h}
}

func (t *Trace) Size() (float64, float64) { return t.W, t.H }

func (t *Trace) Push(opts LayerOpts) Scope {
	a := opts.Alpha
	if a == 0 {
		a = 1
	}
	parent := traceLayer{alpha: 1}
	if n := len(t.stack); n > 0 {
		parent = t.stack[n-1]
	}
	t.stack = append(t.stack, traceLayer{
		alpha: parent.alpha * a,
		clip:  opts.Clip,
		dx:    parent.dx + opts.OffsetX,
		dy:    parent.dy + opts.OffsetY,
	})
	return traceScope{t}
}

type traceScope struct{ t *Trace }

func (s traceScope) Pop() {
	if n := len(s.t.stack); n > 0 {
		s.t.stack = s.t.stack[:n-1]
	}
}

func (t *Trace) effAlpha(c color.NRGBA) float64 {
	a := float64(c.A) / 255
	if n := len(t.stack); n > 0 {
		a *= t.stack[n-1].alpha
	}
	return a
}

func (t *Trace) record(kind string, at Point, c color.NRGBA, text string) {
	t.Ops = append(t.Ops, TraceOp{
		Kind:  kind,
		Alpha: t.effAlpha(c),
		Depth: len(t.stack),
		At:    at,
		Text:  text,
	})
}

func (t *Trace) FillRect(r Rect, c color.NRGBA) {
	t.record("rect", Point{r.X, r.Y}, c, "")
}

func (t *Trace) FillRoundedRect(r Rect, _ float64, c color.NRGBA) {
	t.record("rrect", Point{r.X, r.Y}, c, "")
}

func (t *Trace) StrokePath(pts []Point, _ float64, c color.NRGBA) {
	var at Point
	if len(pts) > 0 {
		at = pts[0]
	}
	t.record("path", at, c, "")
}

func (t *Trace) FillPath(pts []Point, c color.NRGBA) {
	var at Point
	if len(pts) > 0 {
		at = pts[0]
	}
	t.record("fillpath", at, c, "")
}

func (t *Trace) StrokeDashed(a, _ Point, _ float64, _ []float64, c color.NRGBA) {
	t.record("dash", a, c, "")
}

func (t *Trace) FillCircle(center Point, _ float64, c color.NRGBA) {
	t.record("circle", center, c, "")
}

func (t *Trace) StrokeCircle(center Point, _, _ float64, c color.NRGBA) {
	t.record("ringcircle", center, c, "")
}

func (t *Trace) FillText(text string, at Point, _ float64, _ Align, c color.NRGBA) {
	t.record("text", at, c, text)
}

func (t *Trace) TextWidth(text string, size float64) float64 {
	// Rough monospace estimate; good enough for layout decisions in tests.
	return float64(len(text)) * size * 0.6
}

func (t *Trace) EraseHorizontal(band Rect) {
	t.record("erase", Point{band.X, band.Y}, color.NRGBA{A: 255}, "")
}

// Count returns how many recorded ops have the given kind.
func (t *Trace) Count(kind string) int {
	n := 0
	for _, op := range t.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Has reports whether at least one op of the given kind was recorded.
func (t *Trace) Has(kind string) bool { return t.Count(kind) > 0 }

// MaxDepth returns the deepest layer stack observed.
func (t *Trace) MaxDepth() int {
	d := 0
	for _, op := range t.Ops {
		if op.Depth > d {
			d = op.Depth
		}
	}
	return d
}

// Reset clears recorded ops, keeping the surface size.
func (t *Trace) Reset() { t.Ops = t.Ops[:0] }
