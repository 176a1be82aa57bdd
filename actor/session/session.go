package session

import (
	"github.com/anthdm/hollywood/actor"
	"github.com/sirupsen/logrus"

	act "chartlink/actor"
	"chartlink/actor/publish"
	"chartlink/event"
)

var log = logrus.WithField("component", "session")

type Stream struct {
	Stream    event.Stream
	Timeframe int64
}

// Session subscribes to the streams of one pair and forwards everything
// it receives to target, usually the chart's input layer.
type Session struct {
	pair       event.Pair
	target     *actor.PID
	streams    []Stream
	publishPID *actor.PID
}

func New(target *actor.PID, pair event.Pair, streams []Stream) actor.Producer {
	return func() actor.Receiver {
		return &Session{
			pair:       pair,
			target:     target,
			streams:    streams,
			publishPID: act.GetPublishPID(pair),
		}
	}
}

// ChartStreams are the streams a candle chart of timeframe needs.
func ChartStreams(timeframe int64) []Stream {
	return []Stream{
		{Stream: event.StreamCandles, Timeframe: timeframe},
		{Stream: event.StreamMarkers},
	}
}

func (s *Session) Receive(c *actor.Context) {
	switch c.Message().(type) {
	case actor.Started:
		c.Send(s.publishPID, event.PubSub{Streams: s.routeKeys()})
		log.WithField("pair", s.pair).Infof("subscribed to %d streams", len(s.streams))
	case actor.Stopped:
		c.Send(s.publishPID, event.PubUnsub{Streams: s.routeKeys()})
	case event.Trade, event.Candle, event.Marker:
		c.Forward(s.target)
	}
}

func (s *Session) routeKeys() []uint32 {
	keys := make([]uint32, len(s.streams))
	for i, stream := range s.streams {
		keys[i] = publish.CreateRouteKey(s.pair, stream.Stream, stream.Timeframe)
	}
	return keys
}
