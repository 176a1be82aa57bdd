package trade

import (
	"math"

	"github.com/anthdm/hollywood/actor"
	"github.com/sirupsen/logrus"

	"chartlink/event"
)

var log = logrus.WithField("component", "trade")

// Trade samples the trades of one pair into candles of every configured
// interval and hands them to the pair's publish actor.
type Trade struct {
	pair       event.Pair
	intervals  []int64
	publishPID *actor.PID
	samplers   []*CandleSampler
}

func New(pair event.Pair, intervals []int64) actor.Producer {
	return func() actor.Receiver {
		return &Trade{
			pair:      pair,
			intervals: intervals,
		}
	}
}

func (t *Trade) Receive(c *actor.Context) {
	switch msg := c.Message().(type) {
	case actor.Started:
		for _, interval := range t.intervals {
			if interval > 0 {
				t.samplers = append(t.samplers, NewCandleSampler(t.pair, interval))
			}
		}
		t.publishPID = c.Parent().Child("publish/" + t.pair.Symbol)
		log.WithField("pair", t.pair).Debugf("sampling %d intervals", len(t.samplers))
	case event.Trade:
		c.Forward(t.publishPID)
		for _, sampler := range t.samplers {
			c.Send(t.publishPID, sampler.Add(msg))
		}
	}
}

// CandleSampler folds trades into the current candle of one timeframe.
// Trade times are in milliseconds, candle times in seconds.
type CandleSampler struct {
	pair      event.Pair
	timeframe int64
	candle    event.Candle
}

func NewCandleSampler(pair event.Pair, timeframe int64) *CandleSampler {
	return &CandleSampler{
		pair:      pair,
		timeframe: timeframe,
	}
}

// Add folds trade into the current candle, starting a new one when the
// trade falls into a later period, and returns the updated candle.
// Trades older than the current period are folded into it.
func (s *CandleSampler) Add(trade event.Trade) event.Candle {
	unix := trade.Unix / 1000 / s.timeframe * s.timeframe
	if s.candle.Unix == 0 || unix > s.candle.Unix {
		s.candle = event.Candle{
			Pair:      s.pair,
			Timeframe: s.timeframe,
			Unix:      unix,
			Open:      trade.Price,
			High:      trade.Price,
			Low:       trade.Price,
		}
	}

	c := &s.candle
	c.Close = trade.Price
	c.High = math.Max(c.High, trade.Price)
	c.Low = math.Min(c.Low, trade.Price)
	if trade.IsBuy {
		c.Vbuy += trade.Qty
		c.Tbuy++
	} else {
		c.Vsell += trade.Qty
		c.Tsell++
	}
	return s.candle
}

// Current returns the candle being sampled and false before the first trade.
func (s *CandleSampler) Current() (event.Candle, bool) {
	return s.candle, s.candle.Unix != 0
}
