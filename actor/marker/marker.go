package marker

import (
	"github.com/anthdm/hollywood/actor"
	"github.com/sirupsen/logrus"

	"chartlink/event"
)

var log = logrus.WithField("component", "marker")

// Marker turns large trades of one pair into chart markers.
type Marker struct {
	pair       event.Pair
	minQty     float64
	publishPID *actor.PID
}

func New(pair event.Pair, minQty float64) actor.Producer {
	return func() actor.Receiver {
		return &Marker{
			pair:   pair,
			minQty: minQty,
		}
	}
}

func (m *Marker) Receive(c *actor.Context) {
	switch msg := c.Message().(type) {
	case actor.Started:
		m.publishPID = c.Parent().Child("publish/" + m.pair.Symbol)
		log.WithField("pair", m.pair).Debugf("marking trades from %v", m.minQty)
	case event.Trade:
		if mk, ok := FromTrade(msg, m.minQty); ok {
			c.Send(m.publishPID, mk)
		}
	}
}

// FromTrade builds the marker of t when its quantity reaches minQty.
// A minQty of zero or less disables markers.
func FromTrade(t event.Trade, minQty float64) (event.Marker, bool) {
	if minQty <= 0 || t.Qty < minQty {
		return event.Marker{}, false
	}
	side := -1.0
	if t.IsBuy {
		side = 1
	}
	return event.Marker{
		Pair:  t.Pair,
		Unix:  t.Unix / 1000,
		Price: t.Price,
		Qty:   t.Qty,
		Side:  side,
	}, true
}
