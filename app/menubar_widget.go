package app

import (
	img "image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"golang.org/x/image/colornames"

	"chartlink/chart"
	"chartlink/event"
)

var schemeNames = []string{"black", "white", "blue"}

type MenuBarWidget struct {
	*widget.Container
}

// NewMenuBarWidget offers the symbols of exchange and the colour schemes.
// Picks are sent to the chart through the input layer.
func NewMenuBarWidget(exchange string, symbols []string) *MenuBarWidget {
	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(PanelBackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.Insets{Left: int(PanelPadding)}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, int(AppHeaderHeight)),
		),
	)

	inner := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(PanelBackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				StretchHorizontal:  true,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	inner.AddChild(
		makeSymbolMenu(exchange, symbols),
		makeSchemeMenu(),
		makeInfoToggle(),
	)
	container.AddChild(inner)

	return &MenuBarWidget{
		Container: container,
	}
}

func (w *MenuBarWidget) PreferredSize() (int, int) {
	return 0, int(AppHeaderHeight)
}

func makeSymbolMenu(exchange string, symbols []string) *widget.Button {
	button := newToolbarButton("Symbol")
	entries := make([]*widget.Button, 0, len(symbols))
	for _, sym := range symbols {
		pair := event.NewPair(exchange, sym)
		entry := newToolbarMenuEntry(sym)
		entry.ClickedEvent.AddHandler(func(args any) {
			if app.chart != nil {
				app.chart.SetPair(pair)
			}
		})
		entries = append(entries, entry)
	}
	button.ClickedEvent.AddHandler(func(args any) {
		openToolbarMenu(button.GetWidget(), app.ui, entries...)
	})
	return button
}

func makeSchemeMenu() *widget.Button {
	button := newToolbarButton("Scheme")
	entries := make([]*widget.Button, 0, len(schemeNames))
	for _, name := range schemeNames {
		entry := newToolbarMenuEntry(name)
		entry.ClickedEvent.AddHandler(func(args any) {
			app.layer.Send(event.ColorScheme{Scheme: name})
		})
		entries = append(entries, entry)
	}
	button.ClickedEvent.AddHandler(func(args any) {
		openToolbarMenu(button.GetWidget(), app.ui, entries...)
	})
	return button
}

func makeInfoToggle() *widget.Button {
	button := newToolbarButton("Info")
	button.ClickedEvent.AddHandler(func(args any) {
		var s chart.LinkState
		if snap, ok := app.layer.Snapshot(); ok {
			s = snap
		}
		app.layer.Send(event.HideInfo{Hide: !s.HideInfo})
	})
	return button
}

func newToolbarButton(label string) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.Transparent),
			Hover:   image.NewNineSliceColor(MenuButtonHoverBg),
			Pressed: image.NewNineSliceColor(MenuButtonClickBg),
		}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Text(label, FontSM, &widget.ButtonTextColor{
			Idle:     color.White,
			Disabled: colornames.Gray,
			Hover:    color.Black,
			Pressed:  color.Black,
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Top:    4,
			Left:   12,
			Right:  12,
			Bottom: 4,
		}),
	)
}

func newToolbarMenuEntry(label string) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.Transparent),
			Hover:   image.NewNineSliceColor(MenuButtonHoverBg),
			Pressed: image.NewNineSliceColor(colornames.White),
		}),
		widget.ButtonOpts.Text(label, FontSM, &widget.ButtonTextColor{
			Idle:     color.White,
			Disabled: colornames.Gray,
			Hover:    color.Black,
			Pressed:  color.Black,
		}),
		widget.ButtonOpts.TextPosition(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Stretch: true,
			}),
		),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Top:    4,
			Left:   12,
			Right:  12,
			Bottom: 4,
		}),
	)
}

// openToolbarMenu shows entries in a modal below opener that closes on the
// next click.
func openToolbarMenu(opener *widget.Widget, ui *ebitenui.UI, entries ...*widget.Button) {
	c := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(BackgroundColor)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(4),
				widget.RowLayoutOpts.Padding(widget.Insets{Top: 1, Bottom: 1}),
			),
		),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(64, 0)),
	)
	for _, entry := range entries {
		c.AddChild(entry)
	}

	w, h := c.PreferredSize()
	r := opener.Rect
	window := widget.NewWindow(
		widget.WindowOpts.Modal(),
		widget.WindowOpts.Contents(c),
		widget.WindowOpts.CloseMode(widget.CLICK),
		widget.WindowOpts.Location(img.Rect(r.Min.X, r.Max.Y, r.Min.X+w, r.Max.Y+h)),
	)
	ui.AddWindow(window)
}
