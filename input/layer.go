package input

import (
	"sync/atomic"

	"github.com/anthdm/hollywood/actor"
	"github.com/sirupsen/logrus"

	"chartlink/chart"
	"chartlink/event"
	"chartlink/pkg/ring"
)

var log = logrus.WithField("component", "input")

// DefaultHistory is the number of candles and markers kept per series.
const DefaultHistory = 2000

// Layer is the event layer of a chart tree. Any goroutine may send it
// messages through the actor engine; they queue up until the host thread
// calls Drain, which applies them to the bound chart.
type Layer struct {
	engine *actor.Engine
	pid    *actor.PID
	queue  chan any

	node   *chart.Node
	keep   int
	series map[string]*history

	snapshot atomic.Pointer[chart.LinkState]
}

type Option func(*Layer)

// WithHistory sets how many candles and markers per series are kept.
func WithHistory(n int) Option {
	return func(l *Layer) { l.keep = n }
}

// New spawns the layer actor on engine. size bounds the queue; the actor
// blocks while the host thread falls behind.
func New(engine *actor.Engine, size int, opts ...Option) *Layer {
	l := &Layer{
		engine: engine,
		queue:  make(chan any, size),
		keep:   DefaultHistory,
		series: make(map[string]*history),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.pid = engine.Spawn(newReceiver(l.queue), "input")
	return l
}

// PID is the address market feed sessions deliver candles to.
func (l *Layer) PID() *actor.PID { return l.pid }

func (l *Layer) BindChart(n *chart.Node) {
	l.node = n
	l.publish()
}

func (l *Layer) Send(msg any) {
	l.engine.Send(l.pid, msg)
}

// Pending reports the number of queued messages.
func (l *Layer) Pending() int {
	return len(l.queue)
}

// Snapshot returns the link state published by the last Drain. It is safe
// to call from any goroutine.
func (l *Layer) Snapshot() (chart.LinkState, bool) {
	s := l.snapshot.Load()
	if s == nil {
		return chart.LinkState{}, false
	}
	return *s, true
}

// Drain applies every queued message to the bound chart and repaints at
// most once for data changes. It must be called on the host thread and
// returns the number of messages applied.
func (l *Layer) Drain() int {
	var (
		applied int
		dirty   bool
	)
	for {
		select {
		case msg := <-l.queue:
			applied++
			if l.node == nil {
				continue
			}
			if l.apply(msg) {
				dirty = true
			}
		default:
			if dirty {
				l.node.OnPaint(nil)
			}
			if applied > 0 {
				l.publish()
			}
			return applied
		}
	}
}

// apply handles one message and reports whether the chart needs a repaint.
func (l *Layer) apply(msg any) bool {
	n := l.node
	switch msg := msg.(type) {
	case event.Input:
		n.Dispatch(msg)
	case event.SeriesUpdate:
		if err := n.SetSeries(msg.Key, msg.Fields, msg.Value); err != nil {
			log.WithError(err).WithField("key", msg.Key).Error("series update rejected")
			return false
		}
		return true
	case event.Candle:
		return l.applyCandle(msg)
	case event.Marker:
		return l.applyMarker(msg)
	case event.HotKey:
		child := l.find(msg.Child)
		if child == nil {
			log.WithField("chart", msg.Child).Warn("hot key for unknown chart")
			return false
		}
		n.BindHotKey(child, msg.Key)
		return true
	case event.ColorScheme:
		n.ApplyColorScheme(msg.Scheme, nil)
	case event.Adjust:
		mode, ok := chart.ParseAdjustMode(msg.Mode)
		if !ok {
			log.WithField("mode", msg.Mode).Warn("unknown adjust mode")
			return false
		}
		n.SetAdjustMode(mode)
	case event.HideInfo:
		n.SetHideInfo(msg.Hide)
	case event.Refresh:
		log.WithField("key", msg.Key).Debug("series changed in the data layer")
		n.Invalidate()
		return true
	default:
		log.Warnf("unhandled message %T", msg)
	}
	return false
}

// history is the recent candles of one series and the markers drawn over
// them.
type history struct {
	pair      event.Pair
	timeframe int64
	candles   *ring.Buffer[event.Candle]
	markers   *ring.Buffer[event.Marker]
}

func (l *Layer) historyOf(pair event.Pair, timeframe int64) *history {
	key := event.SeriesKey(pair, timeframe)
	h, ok := l.series[key]
	if !ok {
		h = &history{
			pair:      pair,
			timeframe: timeframe,
			candles:   ring.NewBuffer[event.Candle](l.keep),
			markers:   ring.NewBuffer[event.Marker](l.keep),
		}
		l.series[key] = h
	}
	return h
}

func (l *Layer) applyCandle(c event.Candle) bool {
	h := l.historyOf(c.Pair, c.Timeframe)
	if last, ok := h.candles.Last(); ok && last.Unix == c.Unix {
		h.candles.SetLast(c)
	} else {
		h.candles.Push(c)
	}

	items := h.candles.Items()
	rows := make(chart.Records, len(items))
	for i, item := range items {
		rows[i] = item.Row()
	}
	key := event.SeriesKey(c.Pair, c.Timeframe)
	if err := l.node.SetSeries(key, event.CandleFields, rows); err != nil {
		log.WithError(err).WithField("key", key).Error("candle update rejected")
		return false
	}
	if h.markers.Len() > 0 {
		l.setMarkers(h)
	}
	return true
}

// applyMarker adds m to every candle series of its pair.
func (l *Layer) applyMarker(m event.Marker) bool {
	changed := false
	for _, h := range l.series {
		if h.pair != m.Pair {
			continue
		}
		h.markers.Push(m)
		if l.setMarkers(h) {
			changed = true
		}
	}
	return changed
}

// setMarkers rewrites the marker series of h, placing each marker on the
// candle it falls into. Markers outside the kept candles are left out.
func (l *Layer) setMarkers(h *history) bool {
	first, ok := h.candles.First()
	if !ok || h.timeframe <= 0 {
		return false
	}
	total := h.candles.Len()
	rows := chart.Records{}
	for _, m := range h.markers.Items() {
		index := (m.Unix - first.Unix) / h.timeframe
		if m.Unix < first.Unix || index >= int64(total) {
			continue
		}
		rows = append(rows, []float64{float64(index), m.Price, m.Side})
	}
	key := event.MarkerKey(h.pair, h.timeframe)
	if err := l.node.SetSeries(key, event.MarkerFields, rows); err != nil {
		log.WithError(err).WithField("key", key).Error("marker update rejected")
		return false
	}
	return true
}

// find looks a chart up by name anywhere below the bound node.
func (l *Layer) find(name string) *chart.Node {
	var walk func(*chart.Node) *chart.Node
	walk = func(n *chart.Node) *chart.Node {
		for _, c := range n.Children() {
			if c.Name() == name {
				return c
			}
			if found := walk(c); found != nil {
				return found
			}
		}
		return nil
	}
	return walk(l.node)
}

func (l *Layer) publish() {
	if l.node == nil {
		return
	}
	s := l.node.Link().Snapshot()
	l.snapshot.Store(&s)
}

// Close stops the layer actor.
func (l *Layer) Close() {
	l.engine.Poison(l.pid)
}
