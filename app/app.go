package app

import (
	"math"

	"github.com/anthdm/hollywood/actor"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"chartlink/chart"
	"chartlink/event"
	"chartlink/input"
	"chartlink/settings"
)

var log = logrus.WithField("component", "app")

var app *App

var keyBindings = map[ebiten.Key]string{
	ebiten.KeyArrowLeft:  event.KeyLeft,
	ebiten.KeyArrowRight: event.KeyRight,
	ebiten.KeyArrowUp:    event.KeyUp,
	ebiten.KeyArrowDown:  event.KeyDown,
	ebiten.KeyHome:       event.KeyHome,
	ebiten.KeyEnd:        event.KeyEnd,
}

// App is the ebiten game hosting one chart window. Every Update drains the
// input layer, so all chart tree mutations happen on the game thread.
type App struct {
	ui *ebitenui.UI

	contentContainer *widget.Container
	engine           *actor.Engine
	layer            *input.Layer
	data             chart.DataLayer
	cfg              settings.Config
	opts             []chart.Option

	chart *ChartWidget
}

func New(engine *actor.Engine, layer *input.Layer, data chart.DataLayer, cfg settings.Config, opts ...chart.Option) *App {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(BackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Spacing(0, 0),
			widget.GridLayoutOpts.Columns(1),
			widget.GridLayoutOpts.Stretch(
				[]bool{true, true, true},
				[]bool{false, true, false}),
		)),
	)
	content := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(BackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	app = &App{
		ui: &ebitenui.UI{
			Container: root,
		},
		contentContainer: content,
		engine:           engine,
		layer:            layer,
		data:             data,
		cfg:              cfg,
		opts:             opts,
	}

	root.AddChild(
		NewMenuBarWidget(cfg.Exchange, cfg.Symbols),
		content,
		NewStatusBarWidget(layer.Snapshot),
	)
	return app
}

func (app *App) Draw(screen *ebiten.Image) {
	app.ui.Draw(screen)
}

func (app *App) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	app.ui.Update()
	for key, name := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			app.layer.Send(event.Input{Kind: event.KeyPress, Key: name})
		}
	}

	if app.chart == nil {
		app.loadInitialLayout()
	}
	app.layer.Drain()
	return nil
}

// loadInitialLayout opens the chart window once the content area has been
// laid out.
func (app *App) loadInitialLayout() {
	rect := app.contentContainer.GetWidget().Rect
	if rect.Empty() {
		return
	}
	pair := event.NewPair(app.cfg.Exchange, app.cfg.Symbols[0])
	app.chart = NewChartWidget(app.engine, app.layer, app.data, pair, app.cfg.Timeframe, app.opts...)
	app.ui.AddWindow(NewWindow(app.chart, pair.String(), rect))
}

func (app *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	panic("chartlink requires an ebiten version with LayoutF")
}

func (app *App) LayoutF(logicWidth, logicHeight float64) (float64, float64) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	return math.Ceil(logicWidth * scale), math.Ceil(logicHeight * scale)
}
