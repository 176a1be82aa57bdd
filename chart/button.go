package chart

import "chartlink/event"

// Button actions understood without an OnClick handler.
const (
	ActionZoomIn   = "zoom-in"
	ActionZoomOut  = "zoom-out"
	ActionLeft     = "left"
	ActionRight    = "right"
	ActionLast     = "last"
	ActionHideInfo = "hide-info"
)

type ButtonWidget struct {
	node    *Node
	cfg     Config
	pressed bool
}

func (w *ButtonWidget) Init(cfg Config, _ MoveFunc) {
	w.cfg = cfg
}

func (w *ButtonWidget) OnPaint() {
	n := w.node
	canvas := n.Canvas()
	if canvas == nil {
		return
	}
	rect := n.Rect()
	pal := n.Palette()
	canvas.FillRect(float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), pal.Button)
	if w.cfg.Text != "" {
		canvas.DrawText(w.cfg.Text, float64(rect.Min.X+4), float64(rect.Min.Y+2), pal.ButtonText)
	}
}

func (w *ButtonWidget) HandleInput(in event.Input) bool {
	switch in.Kind {
	case event.MouseDown:
		w.pressed = in.Point.In(w.node.Rect())
		return w.pressed
	case event.MouseUp:
		pressed := w.pressed
		w.pressed = false
		if !pressed || !in.Point.In(w.node.Rect()) {
			return pressed
		}
		w.click()
		return true
	}
	return false
}

func (w *ButtonWidget) click() {
	if w.cfg.OnClick != nil {
		w.cfg.OnClick()
		return
	}
	n := w.node
	switch w.cfg.Action {
	case ActionZoomIn:
		n.Zoom(1)
	case ActionZoomOut:
		n.Zoom(-1)
	case ActionLeft:
		n.ScrollBy(-1)
	case ActionRight:
		n.ScrollBy(1)
	case ActionLast:
		n.ScrollToLast()
	case ActionHideInfo:
		n.SetHideInfo(!n.Link().HideInfo)
	default:
		log.WithField("action", w.cfg.Action).Debug("button without action")
	}
}
