package app

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"

	"chartlink/chart"
)

// StatusBarWidget shows the frame rate and the shared view window.
type StatusBarWidget struct {
	*widget.Container

	label    *widget.Text
	snapshot func() (chart.LinkState, bool)
}

func NewStatusBarWidget(snapshot func() (chart.LinkState, bool)) *StatusBarWidget {
	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(PanelBackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.Insets{Left: int(PanelPadding)}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, int(AppFooterHeight)),
		),
	)
	label := widget.NewText(
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				HorizontalPosition: widget.AnchorLayoutPositionStart,
			}),
		),
		widget.TextOpts.Text("", FontSM, color.White),
	)
	container.AddChild(label)

	return &StatusBarWidget{
		Container: container,
		label:     label,
		snapshot:  snapshot,
	}
}

func (w *StatusBarWidget) Render(screen *ebiten.Image) {
	w.Container.Render(screen)

	status := fmt.Sprintf("FPS %d", int(ebiten.ActualFPS()))
	if s, ok := w.snapshot(); ok && s.MinIndex >= 0 {
		status += fmt.Sprintf("   bars %d-%d   unit %d   %s   adjust %s", s.MinIndex, s.MaxIndex, s.UnitX, s.ShowMode, s.Adjust)
	}
	w.label.Label = status
}

func (w *StatusBarWidget) PreferredSize() (int, int) {
	return 0, int(AppFooterHeight)
}
