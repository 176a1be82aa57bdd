package chart

type Kind int

// KindRoot marks the root of a tree; it cannot be created as a child.
const KindRoot Kind = -1

const (
	KindLine Kind = iota
	KindOrder
	KindScroll
	KindButton
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindLine:
		return "line"
	case KindOrder:
		return "order"
	case KindScroll:
		return "scroll"
	case KindButton:
		return "button"
	default:
		return "unknown"
	}
}

// widgetKinds is the closed set of kinds CreateChild accepts.
var widgetKinds = map[Kind]func(*Node) Widget{
	KindLine:   func(n *Node) Widget { return &LineWidget{node: n} },
	KindOrder:  func(n *Node) Widget { return &OrderWidget{node: n} },
	KindScroll: func(n *Node) Widget { return &ScrollWidget{node: n} },
	KindButton: func(n *Node) Widget { return &ButtonWidget{node: n} },
}

func newWidget(kind Kind, n *Node) (Widget, bool) {
	fn, ok := widgetKinds[kind]
	if !ok {
		return nil, false
	}
	return fn(n), true
}
