package app

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"

	"chartlink/settings"
)

// intervalDropdown lists the enabled tick intervals with selected chosen.
func intervalDropdown(selected int64, selectFn func(int64)) *widget.ListComboButton {
	entries := []any{}
	for _, interval := range settings.Intervals() {
		entries = append(entries, interval)
	}
	comboBox := widget.NewListComboButton(
		widget.ListComboButtonOpts.SelectComboButtonOpts(
			widget.SelectComboButtonOpts.ComboButtonOpts(
				widget.ComboButtonOpts.MaxContentHeight(300),
				widget.ComboButtonOpts.ButtonOpts(
					widget.ButtonOpts.Image(&widget.ButtonImage{
						Idle:     image.NewNineSliceColor(color.Transparent),
						Hover:    image.NewNineSliceColor(ColorPrimary),
						Pressed:  image.NewNineSliceColor(ColorPrimaryDarker),
						Disabled: image.NewNineSliceColor(color.NRGBA{100, 100, 100, 255}),
					}),
					widget.ButtonOpts.Text("", FontSM, &widget.ButtonTextColor{
						Idle:     color.White,
						Hover:    color.Black,
						Disabled: color.White,
					}),
					widget.ButtonOpts.TextPadding(widget.Insets{
						Top:    4,
						Left:   12,
						Right:  12,
						Bottom: 4,
					}),
					widget.ButtonOpts.WidgetOpts(
						widget.WidgetOpts.MinSize(0, 0),
						widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
							HorizontalPosition: widget.AnchorLayoutPositionCenter,
							VerticalPosition:   widget.AnchorLayoutPositionCenter,
						})),
				),
			),
		),
		widget.ListComboButtonOpts.ListOpts(
			widget.ListOpts.ContainerOpts(widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(0, 0))),
			widget.ListOpts.Entries(entries),
			widget.ListOpts.ScrollContainerOpts(
				widget.ScrollContainerOpts.Image(&widget.ScrollContainerImage{
					Idle: image.NewNineSliceColor(BackgroundColor),
					Mask: image.NewNineSliceColor(Black),
				}),
				widget.ScrollContainerOpts.Padding(widget.NewInsetsSimple(12)),
			),
			widget.ListOpts.SliderOpts(
				widget.SliderOpts.Images(&widget.SliderTrackImage{
					Idle:  image.NewNineSliceColor(Green),
					Hover: image.NewNineSliceColor(color.NRGBA{100, 100, 100, 255}),
				}, &widget.ButtonImage{
					Idle:     image.NewNineSliceColor(Green),
					Hover:    image.NewNineSliceColor(color.NRGBA{100, 100, 100, 255}),
					Pressed:  image.NewNineSliceColor(color.NRGBA{100, 100, 100, 255}),
					Disabled: image.NewNineSliceColor(color.NRGBA{100, 100, 100, 255}),
				}),
				widget.SliderOpts.MinHandleSize(0),
				widget.SliderOpts.TrackPadding(widget.NewInsetsSimple(0))),
			widget.ListOpts.EntryFontFace(FontSM),
			widget.ListOpts.EntryColor(&widget.ListEntryColor{
				Selected:                   Black,
				Unselected:                 color.White,
				SelectingBackground:        ColorPrimaryDarker,
				SelectingFocusedBackground: Black,
				SelectedBackground:         ColorPrimaryLighter,
				SelectedFocusedBackground:  ColorPrimary,
				FocusedBackground:          ColorPrimary,
				DisabledUnselected:         color.NRGBA{100, 100, 100, 255},
				DisabledSelected:           color.NRGBA{100, 100, 100, 255},
				DisabledSelectedBackground: color.NRGBA{100, 100, 100, 255},
			}),
			widget.ListOpts.EntryTextPadding(widget.NewInsetsSimple(5)),
		),
		widget.ListComboButtonOpts.EntryLabelFunc(
			func(e any) string {
				return TickInterval(e.(int64)).String()
			},
			func(e any) string {
				return TickInterval(e.(int64)).String()
			}),
		widget.ListComboButtonOpts.EntrySelectedHandler(func(args *widget.ListComboButtonEntrySelectedEventArgs) {
			selectFn(args.Entry.(int64))
		}),
	)
	comboBox.SetSelectedEntry(selected)

	return comboBox
}
