package publish

import (
	"github.com/anthdm/hollywood/actor"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/murmur3"

	"chartlink/event"
)

var log = logrus.WithField("component", "publish")

// Publish fans the candles and markers of one pair out to the sessions
// subscribed to them.
type Publish struct {
	pair event.Pair

	subs map[uint32]map[*actor.PID]bool
	ctx  *actor.Context
}

func New(pair event.Pair) actor.Producer {
	return func() actor.Receiver {
		return &Publish{
			pair: pair,
			subs: make(map[uint32]map[*actor.PID]bool),
		}
	}
}

func (p *Publish) Receive(c *actor.Context) {
	switch msg := c.Message().(type) {
	case actor.Started:
		p.ctx = c
	case event.PubSub:
		for _, stream := range msg.Streams {
			sub, ok := p.subs[stream]
			if !ok {
				sub = make(map[*actor.PID]bool)
				p.subs[stream] = sub
			}
			sub[c.Sender()] = true
			log.WithField("stream", stream).Debugf("new subscription %s", c.Sender())
		}
	case event.PubUnsub:
		for _, stream := range msg.Streams {
			if subs, ok := p.subs[stream]; ok {
				delete(subs, c.Sender())
				log.WithField("stream", stream).Debugf("removed subscription %s", c.Sender())
			}
		}
	case event.Trade:
		p.broadcast(event.StreamTrades, msg)
	case event.Candle:
		p.broadcast(event.StreamCandles, msg)
	case event.Marker:
		p.broadcast(event.StreamMarkers, msg)
	}
}

// Subscribers reports the number of subscribers of a route key.
func (p *Publish) Subscribers(key uint32) int {
	return len(p.subs[key])
}

func (p *Publish) broadcast(stream event.Stream, msg event.TimeFramer) {
	key := CreateRouteKey(p.pair, stream, msg.GetTimeframe())
	for pid := range p.subs[key] {
		p.ctx.Send(pid, msg)
	}
}

// CreateRouteKey hashes a pair, stream and timeframe into the key
// subscriptions are stored under.
func CreateRouteKey(pair event.Pair, stream event.Stream, timeframe int64) uint32 {
	key := []byte(pair.Exchange)
	key = append(key, pair.Symbol...)
	key = append(key, byte(0xff&timeframe), byte(0xff&(timeframe>>8)), byte(0xff&(timeframe>>16)), byte(0xff&(timeframe>>24)))
	key = append(key, byte(0xff&stream), byte(0xff&(stream>>8)), byte(0xff&(stream>>16)), byte(0xff&(stream>>24)))
	return murmur3.Sum32Bytes(key)
}
