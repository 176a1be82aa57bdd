package app

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

func DrawText(screen *ebiten.Image, str string, font text.Face, x, y float64, color color.Color) {
	ops := text.DrawOptions{}
	ops.GeoM.Translate(x, y)
	ops.ColorScale.ScaleWithColor(color)
	text.Draw(screen, str, font, &ops)
}

func SplitRect(rect image.Rectangle, orientation string, ratio float64, spacing int) (pane1, pane2 image.Rectangle) {
	switch orientation {
	case "horizontal":
		paneW := int(ratio * float64(rect.Dx()))
		pane1 = image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+paneW, rect.Max.Y)
		pane2 = image.Rect(rect.Min.X+paneW+spacing, rect.Min.Y, rect.Max.X, rect.Max.Y)
	case "vertical":
		paneH := int(ratio * float64(rect.Dy()))
		pane1 = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+paneH)
		pane2 = image.Rect(rect.Min.X, rect.Min.Y+paneH+spacing, rect.Max.X, rect.Max.Y)
	default:
		pane1 = rect
		pane2 = image.Rectangle{}
	}
	return
}

// cutBottom splits h pixels off the bottom of rect.
func cutBottom(rect image.Rectangle, h int) (top, bottom image.Rectangle) {
	if h > rect.Dy() {
		h = rect.Dy()
	}
	top = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y-h)
	bottom = image.Rect(rect.Min.X, rect.Max.Y-h, rect.Max.X, rect.Max.Y)
	return
}
