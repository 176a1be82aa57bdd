package app

import (
	img "image"

	"github.com/anthdm/hollywood/actor"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"

	"chartlink/actor/session"
	"chartlink/chart"
	evt "chartlink/event"
	"chartlink/input"
)

type chartButton struct {
	text   string
	action string
}

var chartButtons = []chartButton{
	{"+", chart.ActionZoomIn},
	{"-", chart.ActionZoomOut},
	{"<", chart.ActionLeft},
	{">", chart.ActionRight},
	{">|", chart.ActionLast},
	{"i", chart.ActionHideInfo},
}

// ChartWidget hosts a chart tree for one pair: a price line with order
// markers, a scrollbar and a row of view buttons. Pointer input is handed
// to the input layer, which applies it on the next Update.
type ChartWidget struct {
	*widget.Container

	engine *actor.Engine
	layer  *input.Layer
	root   *chart.Node
	canvas *Canvas
	screen *widget.Container

	pair       evt.Pair
	interval   int64
	sessionPID *actor.PID

	// rect is the screen rect the tree was last laid out for.
	rect img.Rectangle
}

func NewChartWidget(engine *actor.Engine, layer *input.Layer, data chart.DataLayer, pair evt.Pair, interval int64, opts ...chart.Option) *ChartWidget {
	cw := &ChartWidget{
		engine:   engine,
		layer:    layer,
		canvas:   NewCanvas(FontSM),
		pair:     pair,
		interval: interval,
	}
	cw.root = chart.New(data, layer, append(opts, chart.WithCanvas(cw.canvas))...)
	cw.buildTree()

	cw.screen = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(PanelBackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.CursorMoveHandler(cw.onMouseMove),
			widget.WidgetOpts.MouseButtonPressedHandler(cw.onMousePressed),
			widget.WidgetOpts.MouseButtonReleasedHandler(cw.onMouseReleased),
			widget.WidgetOpts.ScrolledHandler(cw.onScroll),
			widget.WidgetOpts.CursorExitHandler(cw.onContainerLeave),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				StretchHorizontal: true,
				StretchVertical:   true,
			}),
		),
	)
	cw.Container = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(BackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				StretchHorizontal: true,
				StretchVertical:   true,
			}),
		),
	)
	cw.Container.AddChild(cw.screen)

	cw.subscribe()
	return cw
}

func (cw *ChartWidget) buildTree() {
	main := cw.root.CreateChild("main", chart.KindLine, chart.Config{Lines: priceLines()}, nil)
	orders := main.CreateChild("orders", chart.KindOrder, chart.Config{}, nil)
	scroll := cw.root.CreateChild("scroll", chart.KindScroll, chart.Config{}, nil)
	for _, b := range chartButtons {
		cw.root.CreateChild(b.action, chart.KindButton, chart.Config{Text: b.text, Action: b.action}, nil)
	}

	key := evt.SeriesKey(cw.pair, cw.interval)
	cw.root.BindHotKey(main, key)
	cw.root.BindHotKey(orders, evt.MarkerKey(cw.pair, cw.interval))
	cw.root.BindHotKey(scroll, key)
}

func priceLines() []chart.LineSpec {
	return []chart.LineSpec{
		{
			Source: chart.DataSource{Mode: chart.SourceMain},
			Field:  "close",
			Info:   &chart.InfoSpec{Field: "close", Label: "close"},
		},
		{
			Source:  chart.DataSource{Mode: chart.SourceFormula, Key: "ma20"},
			Formula: chart.Formula{Key: "ma20", Command: "MA(close,20)"},
			Field:   "value",
			Info:    &chart.InfoSpec{Field: "value", Label: "ma20"},
		},
	}
}

// subscribe replaces the feed session with one for the current pair and
// interval and points the tree at the matching series.
func (cw *ChartWidget) subscribe() {
	if cw.sessionPID != nil {
		cw.engine.Poison(cw.sessionPID)
	}
	cw.sessionPID = cw.engine.Spawn(
		session.New(cw.layer.PID(), cw.pair, session.ChartStreams(cw.interval)),
		"session",
	)

	key := evt.SeriesKey(cw.pair, cw.interval)
	cw.layer.Send(evt.HotKey{Child: "main", Key: key})
	cw.layer.Send(evt.HotKey{Child: "orders", Key: evt.MarkerKey(cw.pair, cw.interval)})
	cw.layer.Send(evt.HotKey{Child: "scroll", Key: key})
	log.WithField("pair", cw.pair).Infof("charting %s", TickInterval(cw.interval))
}

func (cw *ChartWidget) Pair() evt.Pair { return cw.pair }

func (cw *ChartWidget) SetPair(pair evt.Pair) {
	if cw.pair == pair {
		return
	}
	cw.pair = pair
	cw.subscribe()
}

func (cw *ChartWidget) onIntervalChange(interval int64) {
	if cw.interval == interval {
		return
	}
	cw.interval = interval
	cw.subscribe()
}

func (cw *ChartWidget) GetWidget() *widget.Widget {
	return cw.screen.GetWidget()
}

// layout fits the tree into the screen rect.
func (cw *ChartWidget) layout(rect img.Rectangle) {
	cw.rect = rect
	body, buttons := cutBottom(rect, int(ChartButtonHeight))
	plot, scroll := cutBottom(body, int(ChartScrollHeight))

	if main, ok := cw.root.Child("main"); ok {
		main.SetRect(plot)
		if orders, ok := main.Child("orders"); ok {
			orders.SetRect(plot)
		}
	}
	if s, ok := cw.root.Child("scroll"); ok {
		s.SetRect(scroll)
	}
	w := int(ChartButtonWidth)
	for i, b := range chartButtons {
		if n, ok := cw.root.Child(b.action); ok {
			x := buttons.Min.X + i*w
			n.SetRect(img.Rect(x, buttons.Min.Y, x+w-1, buttons.Max.Y))
		}
	}
}

func (cw *ChartWidget) Render(screen *ebiten.Image) {
	cw.Container.Render(screen)

	if rect := cw.GetWidget().Rect; rect != cw.rect {
		cw.layout(rect)
	}
	cw.canvas.SetTarget(screen)
	cw.root.OnPaint(nil)
	cw.canvas.SetTarget(nil)
}

func (cw *ChartWidget) onMouseMove(_ *widget.WidgetCursorMoveEventArgs) {
	cw.layer.Send(evt.Input{Kind: evt.MouseMove, Point: cursor()})
}

func (cw *ChartWidget) onMousePressed(args *widget.WidgetMouseButtonPressedEventArgs) {
	if args.Button == ebiten.MouseButtonLeft {
		cw.layer.Send(evt.Input{Kind: evt.MouseDown, Point: cursor()})
	}
}

func (cw *ChartWidget) onMouseReleased(args *widget.WidgetMouseButtonReleasedEventArgs) {
	if args.Button == ebiten.MouseButtonLeft {
		cw.layer.Send(evt.Input{Kind: evt.MouseUp, Point: cursor()})
	}
}

func (cw *ChartWidget) onScroll(args *widget.WidgetScrolledEventArgs) {
	cw.layer.Send(evt.Input{Kind: evt.Wheel, Point: cursor(), Delta: args.Y})
}

func (cw *ChartWidget) onContainerLeave(_ *widget.WidgetCursorExitEventArgs) {
	cw.layer.Send(evt.Input{Kind: evt.MouseLeave})
}

func (cw *ChartWidget) Close(_ *widget.WindowClosedEventArgs) {
	if cw.sessionPID != nil {
		cw.engine.Poison(cw.sessionPID)
		cw.sessionPID = nil
	}
}

func (cw *ChartWidget) Toolbar() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(PanelBackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewRowLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)
	container.AddChild(intervalDropdown(cw.interval, cw.onIntervalChange))
	return container
}

func cursor() img.Point {
	x, y := ebiten.CursorPosition()
	return img.Pt(x, y)
}
