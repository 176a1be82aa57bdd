package app

import (
	"image/color"

	img "image"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"golang.org/x/exp/shiny/materialdesign/colornames"
)

// NewWindow wraps widg in a draggable, resizable window with a title bar.
// Widgets implementing Toolbar get their toolbar placed in the title bar.
func NewWindow(widg widgetCloser, title string, rect img.Rectangle) *widget.Window {
	content := CreateContainer(rect.Dx(), rect.Dy())
	content.AddChild(widg)

	titleBar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(BackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(int(2*Scale))),
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
			widget.RowLayoutOpts.Spacing(int(12*Scale)),
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.Insets{Left: int(PanelPadding)}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				StretchHorizontal:  true,
				StretchVertical:    true,
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	inner.AddChild(widget.NewText(
		widget.TextOpts.Text(title, FontSM, color.NRGBA{254, 255, 255, 255}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))
	if tb, ok := widg.(Toolbar); ok {
		inner.AddChild(tb.Toolbar())
	}
	titleBar.AddChild(inner)

	window := widget.NewWindow(
		widget.WindowOpts.Contents(content),
		widget.WindowOpts.TitleBar(titleBar, int(PanelHeaderHeight)),
		widget.WindowOpts.ClosedHandler(widg.Close),
		widget.WindowOpts.Draggable(),
		widget.WindowOpts.Resizeable(),
		widget.WindowOpts.MinSize(content.GetWidget().MinWidth, content.GetWidget().MinHeight),
		widget.WindowOpts.ResizeHandler(func(args *widget.WindowChangedEventArgs) {
			log.WithField("window", title).Debug("resized")
		}),
	)

	titleBar.AddChild(windowCloseButton(window.Close))
	window.SetLocation(rect)

	return window
}

func windowCloseButton(onClose func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				Padding:            widget.Insets{Right: int(8 * Scale)},
			}),
		),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(ButtonIdleColor),
			Hover:   image.NewNineSliceColor(ButtonHoverColor),
			Pressed: image.NewNineSliceColor(ButtonPressedColor),
		}),
		widget.ButtonOpts.Text("x", FontSM, &widget.ButtonTextColor{
			Idle:    colornames.White,
			Hover:   colornames.White,
			Pressed: colornames.White,
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:  int(4 * Scale),
			Right: int(4 * Scale),
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClose()
		}),
	)
}

func CreateContainer(w, h int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(BackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.Insets{
				Right:  int(2 * Scale),
				Left:   int(2 * Scale),
				Bottom: int(2 * Scale),
			}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(w, h),
		),
	)
}
