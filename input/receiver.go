package input

import (
	"github.com/anthdm/hollywood/actor"

	"chartlink/event"
)

// receiver moves messages from the actor engine into the host queue.
type receiver struct {
	queue chan<- any
}

func newReceiver(queue chan<- any) actor.Producer {
	return func() actor.Receiver {
		return &receiver{queue: queue}
	}
}

func (r *receiver) Receive(c *actor.Context) {
	switch msg := c.Message().(type) {
	case actor.Started:
		log.WithField("pid", c.PID()).Debug("input layer started")
	case actor.Stopped:
		log.WithField("pid", c.PID()).Debug("input layer stopped")
	case event.Input, event.SeriesUpdate, event.Candle, event.Marker, event.HotKey,
		event.ColorScheme, event.Adjust, event.HideInfo:
		r.queue <- msg
	}
}
