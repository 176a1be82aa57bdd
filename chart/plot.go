package chart

import "image"

// infoHeight is the band at the top of a line chart kept for the readout.
const infoHeight = 16

// plot maps window-relative record indexes and values into a rect.
type plot struct {
	rect   image.Rectangle
	per    float32
	unit   float32
	lo, hi float64
}

func newPlot(rect image.Rectangle, link *LinkState, lo, hi float64) plot {
	return plot{
		rect: rect,
		per:  float32(link.PerUnit()),
		unit: float32(link.UnitX),
		lo:   lo,
		hi:   hi,
	}
}

func (p plot) x(i int) float32 {
	return float32(p.rect.Min.X) + float32(i)*p.per + p.unit/2
}

func (p plot) y(v float64) float32 {
	top := float32(p.rect.Min.Y + infoHeight)
	height := float32(p.rect.Max.Y) - top
	if p.hi <= p.lo {
		return top + height/2
	}
	return float32(p.rect.Max.Y) - float32((v-p.lo)/(p.hi-p.lo))*height
}

// index is the window-relative record under screen column x.
func (p plot) index(x int) int {
	if p.per <= 0 {
		return 0
	}
	return int(float32(x-p.rect.Min.X) / p.per)
}
