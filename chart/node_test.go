package chart

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	events := &fakeEvents{}
	root := New(newFakeData(), events, WithUnitX(5))

	assert.True(t, root.IsRoot())
	assert.Equal(t, KindRoot, root.Kind())
	assert.Same(t, root, events.bound)
	assert.Equal(t, 5, root.Link().UnitX)
	assert.Equal(t, ShowLast, root.Link().ShowMode)
	assert.Equal(t, -1, root.Link().MinIndex)
	assert.Equal(t, DefaultScheme, root.Palette().Scheme)
	assert.Empty(t, root.Children())
}

func TestNew_Limits(t *testing.T) {
	root := New(newFakeData(), nil, WithLimits(Limits{SpaceXFloor: 1, UnitXMin: 3, UnitXMax: 8}), WithUnitX(20))
	link := root.Link()
	assert.Equal(t, 8, link.UnitX, "initial unit clamped to the configured ceiling")

	link.SetUnitX(1)
	assert.Equal(t, 3, link.UnitX)
	assert.Equal(t, 8, link.Limits().UnitXMax)
}

func TestNew_NilLayers(t *testing.T) {
	root := New(nil, nil)
	assert.Nil(t, root.DataLayer())
	assert.Nil(t, root.EventLayer())
	assert.Nil(t, root.GetSeries("close"))
}

func TestReset(t *testing.T) {
	data := newFakeData()
	root := New(data, nil)
	root.CreateChild("main", KindLine, Config{}, nil)
	root.SetHideInfo(true)
	link := root.Link()

	root.Reset(nil, nil)

	assert.Empty(t, root.Children())
	assert.NotSame(t, link, root.Link())
	assert.False(t, root.Link().HideInfo)
	assert.Same(t, data, root.DataLayer(), "nil layers keep the current binding")
}

func TestCreateChild_SharesLinkState(t *testing.T) {
	root := New(newFakeData(), nil)
	main := root.CreateChild("main", KindLine, Config{}, nil)
	require.NotNil(t, main)
	orders := main.CreateChild("orders", KindOrder, Config{}, nil)
	require.NotNil(t, orders)

	assert.Same(t, root.Link(), main.Link())
	assert.Same(t, root.Link(), orders.Link())
	assert.Same(t, main, orders.Parent())
	assert.Same(t, root, orders.Root())

	got, ok := main.Child("orders")
	assert.True(t, ok)
	assert.Same(t, orders, got)
}

func TestCreateChild_UnsupportedKind(t *testing.T) {
	root := New(newFakeData(), nil)
	root.CreateChild("main", KindLine, Config{}, nil)

	assert.Nil(t, root.CreateChild("x", Kind(42), Config{}, nil))
	assert.Nil(t, root.CreateChild("y", KindRoot, Config{}, nil))
	assert.Len(t, root.Children(), 1)
	_, ok := root.Child("x")
	assert.False(t, ok)
}

func TestCreateChild_ReplaceKeepsPosition(t *testing.T) {
	root := New(newFakeData(), nil)
	root.CreateChild("a", KindLine, Config{}, nil)
	root.CreateChild("b", KindScroll, Config{}, nil)
	replaced := root.CreateChild("a", KindButton, Config{Text: "+"}, nil)

	children := root.Children()
	require.Len(t, children, 2)
	assert.Same(t, replaced, children[0])
	assert.Equal(t, KindButton, children[0].Kind())
	assert.Equal(t, "b", children[1].Name())
}

func TestCreateChild_RunsInit(t *testing.T) {
	root := New(newFakeData(), nil)
	btn := root.CreateChild("zoom", KindButton, Config{Text: "+", Action: ActionZoomIn}, nil)
	require.NotNil(t, btn)
	w := btn.Widget().(*ButtonWidget)
	assert.Equal(t, ActionZoomIn, w.cfg.Action)

	line := root.CreateChild("main", KindLine, Config{}, nil)
	assert.Len(t, line.Widget().(*LineWidget).Lines(), 1, "line charts default to the close field")
}

func TestChild_Missing(t *testing.T) {
	root := New(nil, nil)
	n, ok := root.Child("nope")
	assert.Nil(t, n)
	assert.False(t, ok)
}

func TestBindHotKey_ResetsWindow(t *testing.T) {
	root := New(newFakeData(), nil)
	main := root.CreateChild("main", KindLine, Config{}, nil)

	for _, key := range []string{"a", "b", "a", "c"} {
		link := root.Link()
		link.ShowMode = ShowFixed
		link.MinIndex = 7

		root.BindHotKey(main, key)

		assert.Equal(t, ShowLast, link.ShowMode, key)
		assert.Equal(t, -1, link.MinIndex, key)
		assert.Equal(t, key, main.HotKey())
	}
}

func TestBindHotKey_SameKeyKeepsWindow(t *testing.T) {
	root := New(newFakeData(), nil)
	main := root.CreateChild("main", KindLine, Config{}, nil)
	root.BindHotKey(main, "close")

	root.Link().ShowMode = ShowFixed
	root.Link().MinIndex = 3
	root.BindHotKey(main, "close")

	assert.Equal(t, ShowFixed, root.Link().ShowMode)
	assert.Equal(t, 3, root.Link().MinIndex)
}

func TestBindHotKey_EndsFastDraw(t *testing.T) {
	root := New(newFakeData(), nil)
	main := root.CreateChild("main", KindLine, Config{}, nil)

	end := root.BeginFastDraw()
	defer end()
	root.BindHotKey(main, "close")
	assert.False(t, root.tree.cache.Active())
}

func TestBeginFastDraw_Nested(t *testing.T) {
	root := New(newFakeData(), nil)

	outer := root.BeginFastDraw()
	inner := root.BeginFastDraw()
	inner()
	assert.True(t, root.tree.cache.Active(), "inner release keeps the outer pass open")
	outer()
	assert.False(t, root.tree.cache.Active())
}

func TestOnPaint_Target(t *testing.T) {
	root := New(newFakeData(), nil)
	a := counted(root.CreateChild("a", KindLine, Config{}, nil))
	bNode := root.CreateChild("b", KindLine, Config{}, nil)
	b := counted(bNode)

	root.OnPaint(bNode)
	assert.Equal(t, 0, a.paints)
	assert.Equal(t, 1, b.paints)

	root.OnPaint(nil)
	assert.Equal(t, 1, a.paints)
	assert.Equal(t, 2, b.paints)
	assert.False(t, root.tree.cache.Active())
}

func TestOnPaint_SubtreeSharesPass(t *testing.T) {
	root := New(newFakeData(), nil)
	main := root.CreateChild("main", KindLine, Config{}, nil)
	counted(main)
	inner := counted(main.CreateChild("orders", KindOrder, Config{}, nil))

	before := testutil.ToFloat64(paintPasses)
	root.OnPaint(nil)

	assert.Equal(t, 1, inner.paints)
	assert.Equal(t, 1.0, testutil.ToFloat64(paintPasses)-before)
}

func TestOnPaint_RecoversWidgetPanic(t *testing.T) {
	root := New(newFakeData(), nil)
	bad := root.CreateChild("bad", KindLine, Config{}, nil)
	bad.widget = panicWidget{}
	good := counted(root.CreateChild("good", KindLine, Config{}, nil))

	assert.NotPanics(t, func() { root.OnPaint(nil) })
	assert.Equal(t, 1, good.paints)
	assert.False(t, root.tree.cache.Active())
}

func TestScenario_SetSeriesThenPaint(t *testing.T) {
	data := newFakeData()
	root := New(data, nil, WithUnitX(5))
	main := root.CreateChild("main", KindLine, Config{Rect: box(0, 0, 100, 50)}, nil)
	require.NotNil(t, main)
	w := counted(main)

	fields := []string{"close"}
	require.NoError(t, root.SetSeries("close", fields, "[1,2,3]"))

	require.Len(t, data.sets, 1)
	assert.Equal(t, "close", data.sets[0].key)
	assert.Equal(t, fields, data.sets[0].fields)
	assert.Equal(t, Records{{1}, {2}, {3}}, data.sets[0].rows)
	assert.Equal(t, -1, root.Link().MinIndex)

	root.OnPaint(nil)
	assert.Equal(t, 1, w.paints)
}
