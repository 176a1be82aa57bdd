package chart

import (
	"image"
	"image/color"
)

type setCall struct {
	key    string
	fields []string
	rows   Records
}

type fakeData struct {
	series  map[string]*Series
	gets    map[string]int
	sets    []setCall
	derived int
	setErr  error
}

func newFakeData() *fakeData {
	return &fakeData{
		series: make(map[string]*Series),
		gets:   make(map[string]int),
	}
}

func (d *fakeData) GetData(key string, _ AdjustMode) *Series {
	d.gets[key]++
	return d.series[key]
}

func (d *fakeData) SetData(key string, fields []string, rows Records) error {
	d.sets = append(d.sets, setCall{key: key, fields: fields, rows: rows})
	if d.setErr != nil {
		return d.setErr
	}
	d.series[key] = &Series{Key: key, Fields: fields, Rows: rows}
	return nil
}

func (d *fakeData) MakeLineData(ctx LineContext, key, command string) (*Series, error) {
	d.derived++
	window := ctx.Data.Slice(ctx.MinIndex, ctx.MaxIndex)
	out := &Series{Key: key, Fields: []string{"value"}}
	for _, row := range window.Rows {
		out.Rows = append(out.Rows, []float64{row[0] * 2})
	}
	return out, nil
}

func (d *fakeData) put(key string, fields []string, rows Records) {
	d.series[key] = &Series{Key: key, Fields: fields, Rows: rows}
}

type fakeEvents struct {
	bound *Node
}

func (e *fakeEvents) BindChart(n *Node) { e.bound = n }

type filled struct {
	x, y, w, h float32
	clr        color.Color
}

type recordCanvas struct {
	lines int
	rects []filled
	texts []string
}

func (c *recordCanvas) StrokeLine(_, _, _, _, _ float32, _ color.Color) { c.lines++ }

func (c *recordCanvas) FillRect(x, y, w, h float32, clr color.Color) {
	c.rects = append(c.rects, filled{x, y, w, h, clr})
}

func (c *recordCanvas) DrawText(s string, _, _ float64, _ color.Color) {
	c.texts = append(c.texts, s)
}

func (c *recordCanvas) rectsOf(clr color.Color) int {
	var n int
	for _, r := range c.rects {
		if r.clr == clr {
			n++
		}
	}
	return n
}

type countWidget struct {
	cfg    Config
	paints int
	onMove MoveFunc
}

func (w *countWidget) Init(cfg Config, onMove MoveFunc) {
	w.cfg = cfg
	w.onMove = onMove
}

func (w *countWidget) OnPaint() { w.paints++ }

type panicWidget struct{}

func (panicWidget) Init(Config, MoveFunc) {}
func (panicWidget) OnPaint()              { panic("boom") }

// counted replaces the widget of n with a counting one.
func counted(n *Node) *countWidget {
	w := &countWidget{}
	n.widget = w
	return w
}

func closes(n int) Records {
	rows := make(Records, n)
	for i := range rows {
		rows[i] = []float64{float64(i + 1)}
	}
	return rows
}

func box(x0, y0, x1, y1 int) image.Rectangle {
	return image.Rect(x0, y0, x1, y1)
}
