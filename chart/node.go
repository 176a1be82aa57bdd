package chart

import (
	"image"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "chart")

// tree holds the state every node of one chart tree shares. The root
// creates it; children receive the same pointer when they are attached.
type tree struct {
	link   *LinkState
	cache  FastDrawCache
	data   DataLayer
	events EventLayer
	canvas Canvas
	opts   options

	// capture receives pointer input between mouse-down and mouse-up.
	capture *Node
}

type options struct {
	limits   Limits
	unitX    int
	standard Standard
	scheme   string
	canvas   Canvas
}

type Option func(*options)

// WithLimits bounds the zoom of the tree's link state.
func WithLimits(l Limits) Option {
	return func(o *options) { o.limits = l }
}

func WithUnitX(v int) Option {
	return func(o *options) { o.unitX = v }
}

// WithStandard sets the display standard used to resolve palettes.
func WithStandard(s Standard) Option {
	return func(o *options) { o.standard = s }
}

func WithScheme(scheme string) Option {
	return func(o *options) { o.scheme = scheme }
}

func WithCanvas(c Canvas) Option {
	return func(o *options) { o.canvas = c }
}

// Node is one chart in a composition tree. The root carries no widget; it
// schedules painting of its children and holds the state they share.
type Node struct {
	name   string
	kind   Kind
	hotKey string

	parent *Node
	tree   *tree
	widget Widget

	rect    image.Rectangle
	palette *Palette

	children map[string]*Node
	order    []string
}

// New creates the root of a chart tree bound to the given layers. Either
// layer may be nil and bound later.
func New(data DataLayer, events EventLayer, opts ...Option) *Node {
	o := options{
		limits:   DefaultLimits,
		unitX:    5,
		standard: StandardChina,
		scheme:   DefaultScheme,
	}
	for _, opt := range opts {
		opt(&o)
	}
	n := &Node{
		kind: KindRoot,
		tree: &tree{
			opts:   o,
			canvas: o.canvas,
		},
		palette: ResolvePalette(o.scheme, o.standard),
	}
	n.Reset(data, events)
	return n
}

// Reset drops every child, restores the default link state and rebinds the
// layers. Nil layers leave the current binding in place.
func (n *Node) Reset(data DataLayer, events EventLayer) {
	n.tree.link = NewLinkState(n.tree.opts.limits, n.tree.opts.unitX)
	n.tree.cache.End()
	n.tree.capture = nil
	n.children = make(map[string]*Node)
	n.order = nil
	n.BindDataLayer(data)
	n.BindEventLayer(events)
}

func (n *Node) BindDataLayer(layer DataLayer) {
	if layer == nil {
		return
	}
	n.tree.data = layer
}

// BindEventLayer makes n the dispatch target of layer.
func (n *Node) BindEventLayer(layer EventLayer) {
	if layer == nil {
		return
	}
	n.tree.events = layer
	layer.BindChart(n)
}

func (n *Node) DataLayer() DataLayer   { return n.tree.data }
func (n *Node) EventLayer() EventLayer { return n.tree.events }
func (n *Node) Link() *LinkState       { return n.tree.link }
func (n *Node) Name() string           { return n.name }
func (n *Node) Kind() Kind             { return n.kind }
func (n *Node) HotKey() string         { return n.hotKey }
func (n *Node) Parent() *Node          { return n.parent }
func (n *Node) IsRoot() bool           { return n.parent == nil }
func (n *Node) Rect() image.Rectangle  { return n.rect }
func (n *Node) Palette() *Palette      { return n.palette }
func (n *Node) Widget() Widget         { return n.widget }
func (n *Node) Canvas() Canvas         { return n.tree.canvas }
func (n *Node) Standard() Standard     { return n.tree.opts.standard }

func (n *Node) SetCanvas(c Canvas) { n.tree.canvas = c }

func (n *Node) SetRect(r image.Rectangle) { n.rect = r }

func (n *Node) Root() *Node {
	root := n
	for root.parent != nil {
		root = root.parent
	}
	return root
}

func (n *Node) Child(name string) (*Node, bool) {
	child, ok := n.children[name]
	return child, ok
}

// Children returns the children in creation order.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.order))
	for _, name := range n.order {
		out = append(out, n.children[name])
	}
	return out
}

// CreateChild builds a widget of kind under name, replacing any child with
// the same name. It returns nil for kinds outside the supported set.
func (n *Node) CreateChild(name string, kind Kind, cfg Config, onMove MoveFunc) *Node {
	child := &Node{
		name:     name,
		kind:     kind,
		parent:   n,
		tree:     n.tree,
		rect:     cfg.Rect,
		palette:  n.palette,
		children: make(map[string]*Node),
	}
	w, ok := newWidget(kind, child)
	if !ok {
		log.WithField("kind", kind).Debugf("rejected chart %q", name)
		return nil
	}
	child.widget = w

	if _, exists := n.children[name]; !exists {
		n.order = append(n.order, name)
	}
	n.children[name] = child

	w.Init(cfg, onMove)
	return child
}

// BindHotKey points child at another series. A changed key resets the
// shared window and ends the current fast-draw pass.
func (n *Node) BindHotKey(child *Node, key string) {
	if child == nil || child.hotKey == key {
		return
	}
	n.tree.link.resetWindow()
	child.hotKey = key
	n.tree.cache.End()
}

// BeginFastDraw opens a fast-draw pass and returns the func that ends it.
// When a pass is already open the returned func does nothing, so nested
// paints reuse the outer pass.
func (n *Node) BeginFastDraw() (end func()) {
	if !n.tree.cache.Begin() {
		return func() {}
	}
	paintPasses.Inc()
	return n.tree.cache.End
}

// OnPaint repaints target when it is a child of n, or every child when
// target is nil.
func (n *Node) OnPaint(target *Node) {
	end := n.BeginFastDraw()
	defer end()

	for _, name := range n.order {
		child := n.children[name]
		if target != nil && child != target {
			continue
		}
		child.repaint()
	}
}

func (n *Node) repaint() {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("chart", n.name).Errorf("paint failed: %v", r)
		}
	}()
	widgetPaints.WithLabelValues(n.kind.String()).Inc()
	n.widget.OnPaint()
	n.OnPaint(nil)
}
