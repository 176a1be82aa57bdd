package chart

// Order marker fields. index is the absolute record index of the parent's
// hot series the order belongs to; side is positive for buys.
const (
	orderIndex = "index"
	orderPrice = "price"
	orderSide  = "side"
)

// OrderWidget marks order fills on top of its parent line chart.
type OrderWidget struct {
	node *Node
	cfg  Config
}

func (w *OrderWidget) Init(cfg Config, _ MoveFunc) {
	w.cfg = cfg
}

func (w *OrderWidget) OnPaint() {
	n := w.node
	parent := n.Parent()
	canvas := n.Canvas()
	if parent == nil || canvas == nil {
		return
	}
	orders := n.HotSeries()
	if orders.Len() == 0 {
		return
	}
	visible := parent.VisibleSeries()
	lo, hi, ok := visible.Range("high", "low", "close")
	if !ok {
		return
	}
	link := n.Link()
	rect := parent.Rect()
	p := newPlot(rect, link, lo, hi)
	pal := n.Palette()
	size := float32(max(link.UnitX, 3))

	for i := 0; i < orders.Len(); i++ {
		idx, ok := orders.Value(orderIndex, i)
		if !ok {
			continue
		}
		index := int(idx)
		if index < link.MinIndex || index > link.MaxIndex {
			continue
		}
		price, ok := orders.Value(orderPrice, i)
		if !ok {
			continue
		}
		side, _ := orders.Value(orderSide, i)
		clr := pal.Rise
		if side < 0 {
			clr = pal.Fall
		}
		x, y := p.x(index-link.MinIndex), p.y(price)
		canvas.FillRect(x-size/2, y-size/2, size, size, clr)
	}
}
