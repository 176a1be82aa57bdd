package chart

import (
	"image"

	"chartlink/event"
)

// Dispatch routes one captured input through the tree. Keys and the wheel
// drive the shared view; pointer input goes to the topmost widget under the
// pointer, or to the widget that took the last mouse-down until mouse-up.
func (n *Node) Dispatch(in event.Input) {
	switch in.Kind {
	case event.KeyPress:
		n.dispatchKey(in.Key)
	case event.Wheel:
		switch {
		case in.Delta > 0:
			n.Zoom(1)
		case in.Delta < 0:
			n.Zoom(-1)
		}
	case event.MouseLeave:
		n.tree.capture = nil
		link := n.tree.link
		if link.MoveIndex != -1 {
			link.MoveIndex = -1
			n.Root().OnPaint(nil)
		}
	default:
		target := n.tree.capture
		if target == nil {
			target = n.hit(in.Point)
		}
		if target == nil {
			return
		}
		h := target.widget.(InputHandler)
		consumed := h.HandleInput(in)
		switch {
		case in.Kind == event.MouseDown && consumed:
			n.tree.capture = target
		case in.Kind == event.MouseUp:
			n.tree.capture = nil
		}
	}
}

func (n *Node) dispatchKey(key string) {
	switch key {
	case event.KeyLeft:
		n.ScrollBy(-1)
	case event.KeyRight:
		n.ScrollBy(1)
	case event.KeyUp:
		n.Zoom(1)
	case event.KeyDown:
		n.Zoom(-1)
	case event.KeyHome:
		n.ScrollBy(-n.primaryTotal())
	case event.KeyEnd:
		n.ScrollToLast()
	default:
		log.WithField("key", key).Debug("unhandled key")
	}
}

// hit finds the deepest input-handling node whose rect contains p. Later
// children are drawn over earlier ones and win.
func (n *Node) hit(p image.Point) *Node {
	children := n.Children()
	for i := len(children) - 1; i >= 0; i-- {
		c := children[i]
		if deep := c.hit(p); deep != nil {
			return deep
		}
		if _, ok := c.widget.(InputHandler); ok && p.In(c.rect) {
			return c
		}
	}
	return nil
}
