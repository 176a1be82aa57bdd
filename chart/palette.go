package chart

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Standard is the display convention for price direction colours.
type Standard int

const (
	// StandardChina draws rising prices red and falling prices green.
	StandardChina Standard = iota
	// StandardInternational draws rising prices green and falling prices red.
	StandardInternational
)

func (s Standard) String() string {
	switch s {
	case StandardChina:
		return "china"
	case StandardInternational:
		return "international"
	default:
		return "unknown"
	}
}

func ParseStandard(s string) (Standard, bool) {
	switch s {
	case "china", "cn":
		return StandardChina, true
	case "international", "intl", "us":
		return StandardInternational, true
	}
	return StandardChina, false
}

const DefaultScheme = "black"

type Palette struct {
	Scheme string

	Background color.RGBA
	Grid       color.RGBA
	Axis       color.RGBA
	Text       color.RGBA
	Cursor     color.RGBA
	Button     color.RGBA
	ButtonText color.RGBA

	Rise color.RGBA
	Fall color.RGBA

	Lines []color.RGBA
}

// Line returns the colour of line slot i.
func (p *Palette) Line(i int) color.RGBA {
	if len(p.Lines) == 0 {
		return p.Text
	}
	return p.Lines[i%len(p.Lines)]
}

type schemeBase struct {
	background color.RGBA
	text       color.RGBA
	lines      []color.RGBA
}

var schemes = map[string]schemeBase{
	"black": {
		background: colornames.Black,
		text:       colornames.Whitesmoke,
		lines:      []color.RGBA{colornames.White, colornames.Gold, colornames.Magenta, colornames.Deepskyblue, colornames.Orange},
	},
	"white": {
		background: colornames.White,
		text:       colornames.Black,
		lines:      []color.RGBA{colornames.Black, colornames.Darkorange, colornames.Purple, colornames.Royalblue, colornames.Teal},
	},
	"blue": {
		background: colornames.Midnightblue,
		text:       colornames.Lightsteelblue,
		lines:      []color.RGBA{colornames.White, colornames.Yellow, colornames.Hotpink, colornames.Cyan, colornames.Orange},
	},
}

// ResolvePalette computes the colours of scheme under the display standard.
// Unknown schemes resolve to DefaultScheme.
func ResolvePalette(scheme string, standard Standard) *Palette {
	base, ok := schemes[scheme]
	if !ok {
		log.WithField("scheme", scheme).Warn("unknown colour scheme, using default")
		scheme = DefaultScheme
		base = schemes[scheme]
	}
	p := &Palette{
		Scheme:     scheme,
		Background: base.background,
		Text:       base.text,
		Grid:       blend(base.background, base.text, 0.15),
		Axis:       blend(base.background, base.text, 0.45),
		Cursor:     blend(base.background, base.text, 0.7),
		Button:     blend(base.background, base.text, 0.2),
		ButtonText: base.text,
		Lines:      base.lines,
	}
	up, down := colornames.Crimson, colornames.Limegreen
	if standard == StandardInternational {
		up, down = down, up
	}
	p.Rise, p.Fall = up, down
	return p
}

func blend(a, b color.RGBA, t float64) color.RGBA {
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}

// ApplyColorScheme resolves scheme and assigns the palette to n and to every
// node of subtree (n when nil), then repaints once.
func (n *Node) ApplyColorScheme(scheme string, subtree *Node) {
	n.palette = ResolvePalette(scheme, n.tree.opts.standard)
	if subtree == nil {
		subtree = n
	}
	subtree.palette = n.palette
	subtree.walk(func(c *Node) {
		c.palette = n.palette
	})
	n.OnPaint(nil)
}

func (n *Node) walk(fn func(*Node)) {
	for _, c := range n.Children() {
		fn(c)
		c.walk(fn)
	}
}
