package chart

import (
	"image"
	"image/color"

	"chartlink/event"
)

// DataLayer stores raw series, applies price adjustment and materializes
// formula lines. Calls are synchronous.
type DataLayer interface {
	GetData(key string, mode AdjustMode) *Series
	SetData(key string, fields []string, rows Records) error
	MakeLineData(ctx LineContext, key, command string) (*Series, error)
}

// EventLayer captures input and routes it to the one node bound to it.
type EventLayer interface {
	BindChart(n *Node)
}

type MoveFunc func(index int, values []PointValue)

// Config is the user configuration handed to a widget on creation.
type Config struct {
	Rect  image.Rectangle
	Lines []LineSpec

	// Text and Action configure button widgets.
	Text    string
	Action  string
	OnClick func()
}

type Widget interface {
	Init(cfg Config, onMove MoveFunc)
	OnPaint()
}

// InputHandler is implemented by widgets that react to pointer input inside
// their rect. It reports whether the input was consumed.
type InputHandler interface {
	HandleInput(in event.Input) bool
}

type Canvas interface {
	StrokeLine(x0, y0, x1, y1, width float32, clr color.Color)
	FillRect(x, y, w, h float32, clr color.Color)
	DrawText(s string, x, y float64, clr color.Color)
}

type decimaler interface {
	Decimal() int
}
