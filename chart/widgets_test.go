package chart

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartlink/event"
)

func TestLineWidget_Paint(t *testing.T) {
	data := newFakeData()
	data.put("close", []string{"close"}, closes(3))
	canvas := &recordCanvas{}
	root := New(data, nil, WithUnitX(5), WithCanvas(canvas))
	main := root.CreateChild("main", KindLine, Config{Rect: box(0, 0, 100, 50)}, nil)
	root.BindHotKey(main, "close")

	root.OnPaint(nil)

	assert.Equal(t, 0, root.Link().MinIndex)
	assert.Equal(t, 2, root.Link().MaxIndex)
	assert.Equal(t, 3+2, canvas.lines, "grid plus two segments")
	assert.Equal(t, 1, canvas.rectsOf(root.Palette().Background))
	assert.Equal(t, []string{"close:3.00"}, canvas.texts)
	assert.Equal(t, 1, data.gets["close"], "one query per pass")
}

func TestLineWidget_HideInfo(t *testing.T) {
	data := newFakeData()
	data.put("close", []string{"close"}, closes(3))
	canvas := &recordCanvas{}
	root := New(data, nil, WithCanvas(canvas))
	main := root.CreateChild("main", KindLine, Config{Rect: box(0, 0, 100, 50)}, nil)
	root.BindHotKey(main, "close")

	root.SetHideInfo(true)
	assert.Empty(t, canvas.texts)
	painted := canvas.lines

	root.SetHideInfo(true)
	assert.Equal(t, painted, canvas.lines, "unchanged value does not repaint")
}

func TestLineWidget_SharedDerived(t *testing.T) {
	data := newFakeData()
	data.put("close", []string{"close"}, closes(20))
	root := New(data, nil, WithCanvas(&recordCanvas{}))
	lines := []LineSpec{
		{Source: DataSource{Mode: SourceMain}, Field: "close"},
		{
			Source:  DataSource{Mode: SourceFormula, Key: "double"},
			Formula: Formula{Key: "double", Command: "x2"},
			Field:   "value",
			Info:    &InfoSpec{Field: "value", Label: "x2"},
		},
	}
	for _, name := range []string{"a", "b", "c"} {
		n := root.CreateChild(name, KindLine, Config{Rect: box(0, 0, 60, 40), Lines: lines}, nil)
		root.BindHotKey(n, "close")
	}

	root.OnPaint(nil)

	assert.Equal(t, 1, data.gets["close"])
	assert.Equal(t, 1, data.derived)
}

func TestLineWidget_SeriesLineWindowed(t *testing.T) {
	data := newFakeData()
	data.put("close", []string{"close"}, closes(30))
	data.put("ref", []string{"close"}, closes(30))
	root := New(data, nil, WithUnitX(5), WithCanvas(&recordCanvas{}))
	lines := []LineSpec{
		{Source: DataSource{Mode: SourceMain}, Field: "close"},
		{Source: DataSource{Mode: SourceSeries, Key: "ref"}, Field: "close"},
	}
	main := root.CreateChild("main", KindLine, Config{Rect: box(0, 0, 60, 40), Lines: lines}, nil)
	root.BindHotKey(main, "close")
	root.OnPaint(nil)
	require.Equal(t, 20, root.Link().MinIndex)

	sources := main.widget.(*LineWidget).sources()
	require.Len(t, sources, 2)
	assert.Equal(t, sources[0].Column("close"), sources[1].Column("close"))
	assert.Equal(t, 10, sources[1].Len())
}

func TestLineWidget_NoData(t *testing.T) {
	canvas := &recordCanvas{}
	root := New(newFakeData(), nil, WithCanvas(canvas))
	main := root.CreateChild("main", KindLine, Config{Rect: box(0, 0, 100, 50)}, nil)
	root.BindHotKey(main, "missing")

	assert.NotPanics(t, func() { root.OnPaint(nil) })
	assert.Zero(t, canvas.lines)
}

func TestOrderWidget_Markers(t *testing.T) {
	data := newFakeData()
	data.put("close", []string{"close"}, closes(30))
	data.put("orders", []string{"index", "price", "side"}, Records{
		{25, 26, 1},
		{27, 27, -1},
		{5, 6, 1},
	})
	canvas := &recordCanvas{}
	root := New(data, nil, WithCanvas(canvas))
	main := root.CreateChild("main", KindLine, Config{Rect: box(0, 0, 60, 40)}, nil)
	orders := main.CreateChild("orders", KindOrder, Config{}, nil)
	root.BindHotKey(main, "close")
	root.BindHotKey(orders, "orders")

	root.OnPaint(nil)

	pal := root.Palette()
	assert.Equal(t, 1, canvas.rectsOf(pal.Rise), "order outside the window is skipped")
	assert.Equal(t, 1, canvas.rectsOf(pal.Fall))
}

func TestScrollWidget_Thumb(t *testing.T) {
	data := newFakeData()
	data.put("close", []string{"close"}, closes(30))
	canvas := &recordCanvas{}
	root := New(data, nil, WithCanvas(canvas))
	main := root.CreateChild("main", KindLine, Config{Rect: box(0, 0, 60, 40)}, nil)
	root.CreateChild("scroll", KindScroll, Config{Rect: box(0, 40, 60, 50)}, nil)
	root.BindHotKey(main, "close")

	root.OnPaint(nil)

	var thumb *filled
	for i, r := range canvas.rects {
		if r.clr == root.Palette().Button {
			thumb = &canvas.rects[i]
		}
	}
	require.NotNil(t, thumb)
	assert.Equal(t, float32(40), thumb.x)
	assert.Equal(t, float32(20), thumb.w)
}

func TestButtonWidget_Actions(t *testing.T) {
	root, _, _ := newPainted(t, 30, nil)
	clicked := 0
	root.CreateChild("in", KindButton, Config{Rect: box(0, 50, 10, 60), Action: ActionZoomIn}, nil)
	root.CreateChild("info", KindButton, Config{Rect: box(10, 50, 20, 60), Action: ActionHideInfo}, nil)
	root.CreateChild("custom", KindButton, Config{Rect: box(20, 50, 30, 60), OnClick: func() { clicked++ }}, nil)

	click := func(x, y int) {
		root.Dispatch(event.Input{Kind: event.MouseDown, Point: image.Pt(x, y)})
		root.Dispatch(event.Input{Kind: event.MouseUp, Point: image.Pt(x, y)})
	}

	click(5, 55)
	assert.Equal(t, 6, root.Link().UnitX)

	click(15, 55)
	assert.True(t, root.Link().HideInfo)
	click(15, 55)
	assert.False(t, root.Link().HideInfo)

	click(25, 55)
	assert.Equal(t, 1, clicked)

	// Released outside the button.
	root.Dispatch(event.Input{Kind: event.MouseDown, Point: image.Pt(25, 55)})
	root.Dispatch(event.Input{Kind: event.MouseUp, Point: image.Pt(45, 55)})
	assert.Equal(t, 1, clicked)
}

func TestSetAdjustMode(t *testing.T) {
	root, _, _ := newPainted(t, 30, nil)
	data := root.DataLayer().(*fakeData)
	before := data.gets["close"]

	root.SetAdjustMode(AdjustForward)
	assert.Equal(t, AdjustForward, root.Link().Adjust)
	assert.Equal(t, before+1, data.gets["close"])

	root.SetAdjustMode(AdjustForward)
	assert.Equal(t, before+1, data.gets["close"])
}

func TestInvalidate(t *testing.T) {
	data := newFakeData()
	data.put("close", nil, closes(3))
	root := New(data, nil)

	end := root.BeginFastDraw()
	defer end()
	root.GetSeries("close")
	root.Invalidate()
	assert.False(t, root.tree.cache.Active())

	root.GetSeries("close")
	assert.Equal(t, 2, data.gets["close"], "the next read goes to the data layer")
}

func TestLockIndex(t *testing.T) {
	root, _, _ := newPainted(t, 30, nil)
	root.LockIndex(10)
	assert.Equal(t, ShowLocked, root.Link().ShowMode)
	assert.Equal(t, 6, root.Link().MinIndex)
	assert.Equal(t, 15, root.Link().MaxIndex)
}
