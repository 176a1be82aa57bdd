package symbol

import (
	"github.com/anthdm/hollywood/actor"

	"chartlink/actor/marker"
	"chartlink/actor/publish"
	"chartlink/actor/trade"
	"chartlink/event"
)

// Config tunes the children a symbol actor spawns.
type Config struct {
	Intervals []int64
	MinQty    float64
}

type Symbol struct {
	pair       event.Pair
	config     Config
	markerPID  *actor.PID
	publishPID *actor.PID
	tradePID   *actor.PID
}

func New(pair event.Pair, config Config) actor.Producer {
	return func() actor.Receiver {
		return &Symbol{
			pair:   pair,
			config: config,
		}
	}
}

func (s *Symbol) Receive(c *actor.Context) {
	switch c.Message().(type) {
	case actor.Started:
		s.start(c)
	case event.Trade:
		c.Forward(s.tradePID)
		c.Forward(s.markerPID)
	}
}

func (s *Symbol) start(c *actor.Context) {
	s.publishPID = c.SpawnChild(publish.New(s.pair), "publish", actor.WithID(s.pair.Symbol))
	s.tradePID = c.SpawnChild(trade.New(s.pair, s.config.Intervals), "trade", actor.WithID(s.pair.Symbol))
	s.markerPID = c.SpawnChild(marker.New(s.pair, s.config.MinQty), "marker", actor.WithID(s.pair.Symbol))
}
