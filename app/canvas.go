package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas draws chart widgets onto the ebiten image of the current frame.
// Outside Draw there is no target and drawing is a no-op.
type Canvas struct {
	dst  *ebiten.Image
	font text.Face
}

func NewCanvas(font text.Face) *Canvas {
	return &Canvas{font: font}
}

func (c *Canvas) SetTarget(dst *ebiten.Image) { c.dst = dst }

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	if c.dst == nil {
		return
	}
	vector.StrokeLine(c.dst, x0, y0, x1, y1, width*Scale, clr, true)
}

func (c *Canvas) FillRect(x, y, w, h float32, clr color.Color) {
	if c.dst == nil {
		return
	}
	vector.DrawFilledRect(c.dst, x, y, w, h, clr, false)
}

func (c *Canvas) DrawText(s string, x, y float64, clr color.Color) {
	if c.dst == nil || c.font == nil {
		return
	}
	DrawText(c.dst, s, c.font, x, y, clr)
}
