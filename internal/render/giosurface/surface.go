// Package giosurface implements render.Surface on a gio layout context.
package giosurface

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	// The builtin gio stroke draws horizontal and vertical hairlines at
	// visibly different thickness; the x/stroke extension does not.
	"gioui.org/x/stroke"

	"ChartPulse/internal/render"
)

// Surface adapts one frame's gio ops to the render.Surface contract. Create
// a fresh one per frame from the frame's layout context.
type Surface struct {
	gtx   layout.Context
	th    *material.Theme
	bg    color.NRGBA
	alpha float64

	ops      int
	depth    int
	maxDepth int
}

// New wraps the frame context. bg is the color the left-edge erase fades
// toward; it must match whatever the frame painted underneath the chart.
func New(gtx layout.Context, th *material.Theme, bg color.NRGBA) *Surface {
	return &Surface{gtx: gtx, th: th, bg: bg, alpha: 1}
}

func (s *Surface) Size() (float64, float64) {
	return float64(s.gtx.Constraints.Max.X), float64(s.gtx.Constraints.Max.Y)
}

type scope struct {
	s         *Surface
	prevAlpha float64
	clip      *clip.Stack
	offset    *op.TransformStack
}

func (sc scope) Pop() {
	if sc.clip != nil {
		sc.clip.Pop()
	}
	if sc.offset != nil {
		sc.offset.Pop()
	}
	sc.s.alpha = sc.prevAlpha
	sc.s.depth--
}

// Stats reports the op count and deepest layer nesting seen this frame.
func (s *Surface) Stats() (ops, maxDepth int) {
	return s.ops, s.maxDepth
}

func (s *Surface) Push(opts render.LayerOpts) render.Scope {
	sc := scope{s: s, prevAlpha: s.alpha}
	s.depth++
	if s.depth > s.maxDepth {
		s.maxDepth = s.depth
	}
	if opts.Alpha > 0 {
		s.alpha *= opts.Alpha
	}
	if opts.OffsetX != 0 || opts.OffsetY != 0 {
		st := op.Affine(f32.Affine2D{}.Offset(f32.Pt(float32(opts.OffsetX), float32(opts.OffsetY)))).Push(s.gtx.Ops)
		sc.offset = &st
	}
	if opts.Clip != nil {
		st := clip.Rect(toImageRect(*opts.Clip)).Push(s.gtx.Ops)
		sc.clip = &st
	}
	return sc
}

func (s *Surface) col(c color.NRGBA) color.NRGBA {
	if s.alpha >= 1 {
		return c
	}
	c.A = uint8(float64(c.A)*s.alpha + 0.5)
	return c
}

func (s *Surface) FillRect(r render.Rect, c color.NRGBA) {
	s.ops++
	defer clip.Rect(toImageRect(r)).Push(s.gtx.Ops).Pop()
	paint.Fill(s.gtx.Ops, s.col(c))
}

func (s *Surface) FillRoundedRect(r render.Rect, radius float64, c color.NRGBA) {
	s.ops++
	rr := clip.UniformRRect(toImageRect(r), int(radius+0.5))
	paint.FillShape(s.gtx.Ops, s.col(c), rr.Op(s.gtx.Ops))
}

func (s *Surface) StrokePath(pts []render.Point, width float64, c color.NRGBA) {
	s.ops++
	if len(pts) < 2 {
		return
	}
	segs := make([]stroke.Segment, 0, len(pts))
	segs = append(segs, stroke.MoveTo(toF32(pts[0])))
	for _, p := range pts[1:] {
		segs = append(segs, stroke.LineTo(toF32(p)))
	}
	area := stroke.Stroke{
		Path:  stroke.Path{Segments: segs},
		Width: float32(width),
		Cap:   stroke.RoundCap,
	}.Op(s.gtx.Ops)
	paint.FillShape(s.gtx.Ops, s.col(c), area)
}

func (s *Surface) FillPath(pts []render.Point, c color.NRGBA) {
	s.ops++
	if len(pts) < 3 {
		return
	}
	var p clip.Path
	p.Begin(s.gtx.Ops)
	p.MoveTo(toF32(pts[0]))
	for _, pt := range pts[1:] {
		p.LineTo(toF32(pt))
	}
	p.Close()
	paint.FillShape(s.gtx.Ops, s.col(c), clip.Outline{Path: p.End()}.Op())
}

func (s *Surface) StrokeDashed(a, b render.Point, width float64, dash []float64, c color.NRGBA) {
	s.ops++
	if len(dash) == 0 {
		s.StrokePath([]render.Point{a, b}, width, c)
		return
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	length := hyp(dx, dy)
	if length <= 0 {
		return
	}
	ux, uy := dx/length, dy/length

	var segs []stroke.Segment
	pos, i := 0.0, 0
	for pos < length {
		d := dash[i%len(dash)]
		end := pos + d
		if end > length {
			end = length
		}
		if i%2 == 0 { // on-segments at even indices
			segs = append(segs,
				stroke.MoveTo(f32.Pt(float32(a.X+ux*pos), float32(a.Y+uy*pos))),
				stroke.LineTo(f32.Pt(float32(a.X+ux*end), float32(a.Y+uy*end))),
			)
		}
		pos = end
		i++
	}
	if len(segs) == 0 {
		return
	}
	area := stroke.Stroke{
		Path:  stroke.Path{Segments: segs},
		Width: float32(width),
		Cap:   stroke.FlatCap,
	}.Op(s.gtx.Ops)
	paint.FillShape(s.gtx.Ops, s.col(c), area)
}

func (s *Surface) FillCircle(center render.Point, radius float64, c color.NRGBA) {
	s.ops++
	r := circleRect(center, radius)
	paint.FillShape(s.gtx.Ops, s.col(c), clip.Ellipse(r).Op(s.gtx.Ops))
}

func (s *Surface) StrokeCircle(center render.Point, radius, width float64, c color.NRGBA) {
	s.ops++
	r := circleRect(center, radius)
	paint.FillShape(s.gtx.Ops, s.col(c), clip.Stroke{
		Path:  clip.Ellipse(r).Path(s.gtx.Ops),
		Width: float32(width),
	}.Op())
}

func (s *Surface) FillText(text string, at render.Point, size float64, align render.Align, c color.NRGBA) {
	s.ops++
	call, dims := s.recordLabel(text, size, c)
	x := at.X
	switch align {
	case render.AlignCenter:
		x -= float64(dims.Size.X) / 2
	case render.AlignRight:
		x -= float64(dims.Size.X)
	}
	// at.Y is the text baseline; the label is offset by its ascent.
	y := at.Y - float64(dims.Size.Y)*0.8
	st := op.Offset(image.Pt(int(x+0.5), int(y+0.5))).Push(s.gtx.Ops)
	call.Add(s.gtx.Ops)
	st.Pop()
}

func (s *Surface) TextWidth(text string, size float64) float64 {
	_, dims := s.recordLabel(text, size, color.NRGBA{A: 0xff})
	return float64(dims.Size.X)
}

// recordLabel lays the label out into a macro so it can be measured before
// (or instead of) being placed.
func (s *Surface) recordLabel(text string, sizePx float64, c color.NRGBA) (op.CallOp, layout.Dimensions) {
	gtx := s.gtx
	gtx.Constraints.Min = image.Point{}
	macro := op.Record(gtx.Ops)
	lbl := material.Label(s.th, unit.Sp(float32(sizePx)/gtx.Metric.PxPerSp), text)
	lbl.Color = s.col(c)
	lbl.MaxLines = 1
	dims := lbl.Layout(gtx)
	return macro.Stop(), dims
}

func (s *Surface) EraseHorizontal(band render.Rect) {
	s.ops++
	defer clip.Rect(toImageRect(band)).Push(s.gtx.Ops).Pop()
	from := s.bg
	to := s.bg
	to.A = 0
	paint.LinearGradientOp{
		Stop1:  f32.Pt(float32(band.X), 0),
		Color1: from,
		Stop2:  f32.Pt(float32(band.Right()), 0),
		Color2: to,
	}.Add(s.gtx.Ops)
	paint.PaintOp{}.Add(s.gtx.Ops)
}

func toImageRect(r render.Rect) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.W+0.5), int(r.Y+r.H+0.5))
}

func toF32(p render.Point) f32.Point {
	return f32.Pt(float32(p.X), float32(p.Y))
}

func circleRect(center render.Point, radius float64) image.Rectangle {
	return image.Rect(
		int(center.X-radius), int(center.Y-radius),
		int(center.X+radius+0.5), int(center.Y+radius+0.5),
	)
}

func hyp(dx, dy float64) float64 {
	return math.Hypot(dx, dy)
}
