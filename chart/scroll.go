package chart

import "chartlink/event"

// ScrollWidget draws the position of the shared window within the primary
// series and scrolls it when the thumb is dragged.
type ScrollWidget struct {
	node *Node
	cfg  Config

	dragging bool
	lastX    int
}

func (w *ScrollWidget) Init(cfg Config, _ MoveFunc) {
	w.cfg = cfg
}

// thumb returns the horizontal extent of the window inside the track.
func (w *ScrollWidget) thumb(total int) (x, width float32, ok bool) {
	link := w.node.Link()
	if total <= 0 || link.MinIndex < 0 {
		return 0, 0, false
	}
	rect := w.node.Rect()
	scale := float32(rect.Dx()) / float32(total)
	x = float32(rect.Min.X) + float32(link.MinIndex)*scale
	width = max(float32(link.MaxIndex-link.MinIndex+1)*scale, 4)
	return x, width, true
}

func (w *ScrollWidget) OnPaint() {
	n := w.node
	canvas := n.Canvas()
	if canvas == nil {
		return
	}
	rect := n.Rect()
	pal := n.Palette()
	canvas.FillRect(float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), pal.Grid)

	x, width, ok := w.thumb(n.primaryTotal())
	if !ok {
		return
	}
	canvas.FillRect(x, float32(rect.Min.Y), width, float32(rect.Dy()), pal.Button)
}

func (w *ScrollWidget) HandleInput(in event.Input) bool {
	n := w.node
	switch in.Kind {
	case event.MouseDown:
		if !in.Point.In(n.Rect()) {
			return false
		}
		w.dragging = true
		w.lastX = in.Point.X
		return true
	case event.MouseUp:
		consumed := w.dragging
		w.dragging = false
		return consumed
	case event.MouseMove:
		if !w.dragging {
			return false
		}
		total := n.primaryTotal()
		width := n.Rect().Dx()
		if total <= 0 || width <= 0 {
			return true
		}
		delta := (in.Point.X - w.lastX) * total / width
		if delta == 0 {
			return true
		}
		n.ScrollBy(delta)
		w.lastX += delta * width / total
		return true
	}
	return false
}
