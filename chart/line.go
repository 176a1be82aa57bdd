package chart

import (
	"fmt"
	"math"

	"chartlink/event"
)

// LineWidget strokes one or more fields of its hot series and of derived
// series over the shared window.
type LineWidget struct {
	node   *Node
	cfg    Config
	onMove MoveFunc
}

func (w *LineWidget) Init(cfg Config, onMove MoveFunc) {
	w.cfg = cfg
	w.onMove = onMove
	if len(w.cfg.Lines) == 0 {
		w.cfg.Lines = []LineSpec{{
			Source: DataSource{Mode: SourceMain},
			Field:  "close",
			Info:   &InfoSpec{Field: "close", Label: "close"},
		}}
	}
}

func (w *LineWidget) Lines() []LineSpec { return w.cfg.Lines }

func (w *LineWidget) OnPaint() {
	n := w.node
	raw := n.HotSeries()
	if raw.Len() == 0 {
		return
	}
	link := n.Link()
	rect := n.Rect()
	link.Fit(raw.Len(), rect.Dx())
	n.PrepareDerived(raw, w.cfg.Lines)

	canvas := n.Canvas()
	if canvas == nil {
		return
	}
	pal := n.Palette()
	canvas.FillRect(float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), pal.Background)

	sources := w.sources()
	lo, hi, ok := w.valueRange(sources)
	if !ok {
		return
	}
	p := newPlot(rect, link, lo, hi)

	for i := 1; i < 4; i++ {
		y := float32(rect.Min.Y+infoHeight) + float32(rect.Dy()-infoHeight)*float32(i)/4
		canvas.StrokeLine(float32(rect.Min.X), y, float32(rect.Max.X), y, 1, pal.Grid)
	}

	for k, line := range w.cfg.Lines {
		src := sources[k]
		var prevX, prevY float32
		drawn := false
		for i := 0; i < src.Len(); i++ {
			v, ok := src.Value(line.Field, i)
			if !ok || math.IsNaN(v) {
				drawn = false
				continue
			}
			x, y := p.x(i), p.y(v)
			if drawn {
				canvas.StrokeLine(prevX, prevY, x, y, 1, pal.Line(k))
			}
			prevX, prevY, drawn = x, y, true
		}
	}

	if link.MoveIndex >= link.MinIndex && link.MoveIndex <= link.MaxIndex {
		x := p.x(link.MoveIndex - link.MinIndex)
		canvas.StrokeLine(x, float32(rect.Min.Y+infoHeight), x, float32(rect.Max.Y), 1, pal.Cursor)
	}

	if !link.HideInfo {
		w.paintInfo(canvas, pal)
	}
}

func (w *LineWidget) paintInfo(canvas Canvas, pal *Palette) {
	n := w.node
	link := n.Link()
	index := link.MoveIndex
	if index < 0 {
		index = link.MaxIndex
	}
	x := float64(n.Rect().Min.X + 4)
	y := float64(n.Rect().Min.Y + 2)
	for _, pv := range n.PointValues(w.cfg.Lines, index) {
		label := pv.Label
		if pv.Value != "" {
			label = fmt.Sprintf("%s:%s", pv.Label, pv.Value)
		}
		canvas.DrawText(label, x, y, pal.Line(pv.Slot))
		x += float64(len(label)+2) * 7
	}
}

// sources resolves every line to the series it reads inside the window.
func (w *LineWidget) sources() []*Series {
	n := w.node
	out := make([]*Series, len(w.cfg.Lines))
	var main *Series
	for k, line := range w.cfg.Lines {
		if line.Source.Mode == SourceMain {
			if main == nil {
				main = n.VisibleSeries()
			}
			out[k] = main
			continue
		}
		out[k] = n.lineSeries(line)
	}
	return out
}

func (w *LineWidget) valueRange(sources []*Series) (lo, hi float64, ok bool) {
	for k, line := range w.cfg.Lines {
		l, h, found := sources[k].Range(line.Field)
		if !found {
			continue
		}
		if !ok {
			lo, hi, ok = l, h, true
			continue
		}
		lo, hi = min(lo, l), max(hi, h)
	}
	return
}

// HandleInput tracks the pointer over the chart and reports the record
// under it through the move callback.
func (w *LineWidget) HandleInput(in event.Input) bool {
	if in.Kind != event.MouseMove {
		return false
	}
	n := w.node
	link := n.Link()
	if link.MinIndex < 0 {
		return false
	}
	p := newPlot(n.Rect(), link, 0, 0)
	index := min(link.MinIndex+p.index(in.Point.X), link.MaxIndex)
	if index == link.MoveIndex {
		return true
	}
	link.MoveIndex = index
	if w.onMove != nil {
		w.onMove(index, n.PointValues(w.cfg.Lines, index))
	}
	n.Root().OnPaint(nil)
	return true
}
