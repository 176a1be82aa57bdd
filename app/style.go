package app

import (
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/exp/shiny/materialdesign/colornames"
	"golang.org/x/image/font/basicfont"
)

var (
	Scale = float32(ebiten.Monitor().DeviceScaleFactor())

	Black = color.RGBA{12, 14, 17, 255}
	Green = color.RGBA{45, 189, 133, 255}

	BackgroundColor      = Black
	PanelBackgroundColor = color.RGBA{23, 26, 32, 255}

	AppHeaderHeight = 40 * Scale
	AppFooterHeight = 24 * Scale

	PanelHeaderHeight = 40 * Scale
	PanelPadding      = 12 * Scale

	ButtonIdleColor    = color.RGBA{42, 49, 57, 1}
	ButtonHoverColor   = color.RGBA{42, 49, 57, 100}
	ButtonPressedColor = color.RGBA{42, 49, 57, 200}

	// Chart layout inside a chart window.
	ChartScrollHeight = 10 * Scale
	ChartButtonHeight = 20 * Scale
	ChartButtonWidth  = 28 * Scale
	ChartStrokeWidth  = 1.5 * Scale

	MenuButtonHoverBg         = colornames.Orange300
	MenuButtonClickBg         = colornames.Orange600
	MenuButtonTextColorIdle   = colornames.White
	MenuButtonTextColorActive = colornames.Orange600

	ColorPrimary        = colornames.Orange300
	ColorPrimaryLighter = colornames.Orange100
	ColorPrimaryDarker  = colornames.Orange600

	FontSM   text.Face
	FontBase text.Face
)

// FontFile is loaded at startup; the built-in bitmap face is used when it
// is missing.
var FontFile = "assets/jetbrains.ttf"

func init() {
	FontSM = loadFont(12)
	FontBase = loadFont(13)
}

func loadFont(size float64) text.Face {
	face, err := LoadFont(FontFile, size)
	if err != nil {
		log.WithError(err).Debug("using the built-in font")
		return text.NewGoXFace(basicfont.Face7x13)
	}
	return face
}

func LoadFont(path string, size float64) (text.Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := text.NewGoTextFaceSource(f)
	if err != nil {
		return nil, err
	}
	return &text.GoTextFace{
		Source: s,
		Size:   size * ebiten.Monitor().DeviceScaleFactor(),
	}, nil
}
