package app

import (
	"github.com/ebitenui/ebitenui/widget"
)

type widgetCloser interface {
	widget.PreferredSizeLocateableWidget
	Close(*widget.WindowClosedEventArgs)
}

type Toolbar interface {
	Toolbar() *widget.Container
}
