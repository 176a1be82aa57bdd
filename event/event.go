package event

import (
	"fmt"
	"image"
)

type Trade struct {
	Pair  Pair
	Price float64
	Qty   float64
	IsBuy bool
	Unix  int64
}

func (t Trade) GetTimeframe() int64 { return 0 }

type Pair struct {
	Exchange string
	Symbol   string
}

func (p Pair) String() string {
	return fmt.Sprintf("%s %s", p.Exchange, p.Symbol)
}

func NewPair(exchange, symbol string) Pair {
	return Pair{
		Exchange: exchange,
		Symbol:   symbol,
	}
}

// SeriesKey is the data layer key a pair's candles are stored under.
func SeriesKey(pair Pair, timeframe int64) string {
	return fmt.Sprintf("%s:%s:%d", pair.Exchange, pair.Symbol, timeframe)
}

type Candle struct {
	Pair      Pair
	Timeframe int64
	Unix      int64
	Open      float64
	Close     float64
	High      float64
	Low       float64
	Vbuy      float64
	Vsell     float64
	Tbuy      float64
	Tsell     float64
}

func (c Candle) GetTimeframe() int64 { return c.Timeframe }

// CandleFields names the columns of a row built by Candle.Row.
var CandleFields = []string{"time", "open", "high", "low", "close", "volume"}

func (c Candle) Row() []float64 {
	return []float64{float64(c.Unix), c.Open, c.High, c.Low, c.Close, c.Vbuy + c.Vsell}
}

// Marker is a notable fill drawn on top of a candle chart. Unix is in
// seconds; Side is 1 for buys and -1 for sells.
type Marker struct {
	Pair  Pair
	Unix  int64
	Price float64
	Qty   float64
	Side  float64
}

func (m Marker) GetTimeframe() int64 { return 0 }

// MarkerKey is the data layer key of the markers drawn over SeriesKey.
func MarkerKey(pair Pair, timeframe int64) string {
	return SeriesKey(pair, timeframe) + ":markers"
}

// MarkerFields names the columns of a marker series: the record index of
// the candle series, the fill price and the side.
var MarkerFields = []string{"index", "price", "side"}

type Stream int64

const (
	StreamTrades Stream = iota
	StreamCandles
	StreamMarkers
)

type PubSub struct {
	Streams []uint32
}

type PubUnsub struct {
	Streams []uint32
}

type TimeFramer interface {
	GetTimeframe() int64
}

type InputKind int

const (
	MouseMove InputKind = iota
	MouseDown
	MouseUp
	MouseLeave
	Wheel
	KeyPress
)

func (k InputKind) String() string {
	switch k {
	case MouseMove:
		return "mousemove"
	case MouseDown:
		return "mousedown"
	case MouseUp:
		return "mouseup"
	case MouseLeave:
		return "mouseleave"
	case Wheel:
		return "wheel"
	case KeyPress:
		return "keypress"
	default:
		return "unknown"
	}
}

// Key names carried by KeyPress inputs.
const (
	KeyLeft  = "left"
	KeyRight = "right"
	KeyUp    = "up"
	KeyDown  = "down"
	KeyHome  = "home"
	KeyEnd   = "end"
)

// Input is one captured pointer or keyboard event, in screen coordinates.
type Input struct {
	Kind  InputKind
	Point image.Point
	Delta float64
	Key   string
}

// SeriesUpdate replaces a series in the data layer. Value is either
// structured rows or a JSON encoding of them.
type SeriesUpdate struct {
	Key    string
	Fields []string
	Value  any
}

// HotKey rebinds the named child of the bound chart to another series.
type HotKey struct {
	Child string
	Key   string
}

// ColorScheme switches the palette of the whole chart tree.
type ColorScheme struct {
	Scheme string
}

// Adjust selects the price adjustment mode by name: no, forward or backward.
type Adjust struct {
	Mode string
}

type HideInfo struct {
	Hide bool
}

// Refresh asks the chart to reread Key after the data layer changed it
// directly, e.g. when corporate actions were recorded.
type Refresh struct {
	Key string
}
