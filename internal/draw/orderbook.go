package draw

import (
	"github.com/dustin/go-humanize"

	"ChartPulse/internal/model"
	"ChartPulse/internal/render"
	"ChartPulse/internal/theme"
)

const bookSmoothing = 0.2 // per-frame pull toward the target width

// OrderBook draws bid/ask depth bands hugging the right edge of the plot,
// behind the price line. Band widths are exponentially smoothed in st so a
// bursty book does not flicker. Totals are labeled once the bands are wide
// enough to carry text.
func (Renderer) OrderBook(s render.Surface, ly render.Layout, pal *theme.Palette, depth *model.Depth, st *OrderBookState, alpha float64) {
	if alpha <= 0.01 || depth == nil {
		return
	}
	bidTotal := sumDepth(depth.Bids)
	askTotal := sumDepth(depth.Asks)
	total := bidTotal + askTotal
	if total <= 0 {
		return
	}

	maxW := ly.Plot.W * 0.2
	st.BidWidth += (maxW*(bidTotal/total) - st.BidWidth) * bookSmoothing
	st.AskWidth += (maxW*(askTotal/total) - st.AskWidth) * bookSmoothing

	half := ly.Plot.H / 2
	col := theme.WithAlpha(pal.Depth, alpha)
	bidBand := render.Rect{X: ly.Plot.Right() - st.BidWidth, Y: ly.Plot.Y + half, W: st.BidWidth, H: half}
	askBand := render.Rect{X: ly.Plot.Right() - st.AskWidth, Y: ly.Plot.Y, W: st.AskWidth, H: half}
	s.FillRect(bidBand, col)
	s.FillRect(askBand, col)

	labelCol := theme.WithAlpha(pal.GridLabel, alpha)
	if st.BidWidth > 46 {
		s.FillText(humanize.SIWithDigits(bidTotal, 1, ""),
			render.Point{X: bidBand.X + 4, Y: bidBand.Y + bidBand.H - 6}, 10, render.AlignLeft, labelCol)
	}
	if st.AskWidth > 46 {
		s.FillText(humanize.SIWithDigits(askTotal, 1, ""),
			render.Point{X: askBand.X + 4, Y: askBand.Y + 12}, 10, render.AlignLeft, labelCol)
	}
}

func sumDepth(levels []model.DepthLevel) float64 {
	t := 0.0
	for _, l := range levels {
		if l.Size > 0 {
			t += l.Size
		}
	}
	return t
}
