package binance

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/anthdm/hollywood/actor"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"

	"chartlink/actor/symbol"
	"chartlink/event"
)

// Exchange is both the pair exchange name and the kind the consumer must
// be spawned under.
const Exchange = "binancef"

const wsEndpoint = "wss://dstream.binance.com/stream?streams="

const (
	minBackoff = time.Second
	maxBackoff = time.Minute
)

var log = logrus.WithField("component", "binance")

type Binance struct {
	endpoint string
	config   symbol.Config
	symbols  map[string]*actor.PID
	c        *actor.Context
	quit     chan struct{}
}

// New consumes the aggregated trades of symbols and feeds one symbol actor
// per pair.
func New(symbols []string, config symbol.Config) actor.Producer {
	return func() actor.Receiver {
		b := &Binance{
			config:  config,
			symbols: make(map[string]*actor.PID),
			quit:    make(chan struct{}),
		}
		for _, sym := range symbols {
			b.symbols[strings.ToLower(sym)] = nil
		}
		b.endpoint = createWsEndpoint(symbols)
		return b
	}
}

func (b *Binance) Receive(c *actor.Context) {
	switch c.Message().(type) {
	case actor.Started:
		b.c = c
		b.start(c)
	case actor.Stopped:
		close(b.quit)
	}
}

func (b *Binance) start(c *actor.Context) {
	for sym := range b.symbols {
		pair := event.NewPair(Exchange, sym)
		b.symbols[sym] = c.SpawnChild(symbol.New(pair, b.config), "symbol", actor.WithID(pair.Symbol))
	}
	go b.wsLoop()
}

func (b *Binance) wsLoop() {
	backoff := minBackoff
	for {
		ws, _, err := websocket.DefaultDialer.Dial(b.endpoint, nil)
		if err != nil {
			log.WithError(err).Warnf("dial failed, retrying in %s", backoff)
			select {
			case <-b.quit:
				return
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, maxBackoff)
			continue
		}
		backoff = minBackoff
		log.Infof("connected to %s", b.endpoint)

		done := make(chan struct{})
		go func() {
			select {
			case <-b.quit:
				ws.Close()
			case <-done:
			}
		}()
		err = b.readLoop(ws)
		close(done)
		ws.Close()
		select {
		case <-b.quit:
			return
		default:
		}
		log.WithError(err).Warn("connection lost, reconnecting")
	}
}

func (b *Binance) readLoop(ws *websocket.Conn) error {
	var parser fastjson.Parser
	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			return errors.Wrap(err, "read")
		}
		v, err := parser.ParseBytes(msg)
		if err != nil {
			log.WithError(err).Warn("failed to parse message")
			continue
		}
		trade, ok := parseAggTrade(v)
		if !ok {
			continue
		}
		if pid := b.symbols[trade.Pair.Symbol]; pid != nil {
			b.c.Send(pid, trade)
		}
	}
}

// parseAggTrade reads a combined stream aggTrade message. The buyer being
// the maker makes the aggressor a seller.
func parseAggTrade(v *fastjson.Value) (event.Trade, bool) {
	stream := string(v.GetStringBytes("stream"))
	sym, kind, ok := strings.Cut(stream, "@")
	if !ok || kind != "aggTrade" {
		return event.Trade{}, false
	}
	data := v.Get("data")
	if data == nil {
		return event.Trade{}, false
	}
	price, err := strconv.ParseFloat(string(data.GetStringBytes("p")), 64)
	if err != nil {
		return event.Trade{}, false
	}
	qty, _ := strconv.ParseFloat(string(data.GetStringBytes("q")), 64)
	return event.Trade{
		Pair:  event.NewPair(Exchange, sym),
		Price: price,
		Qty:   qty,
		IsBuy: !data.GetBool("m"),
		Unix:  data.GetInt64("T"),
	}, true
}

func createWsEndpoint(symbols []string) string {
	streams := make([]string, 0, len(symbols))
	for _, sym := range symbols {
		streams = append(streams, fmt.Sprintf("%s@aggTrade", strings.ToLower(sym)))
	}
	return wsEndpoint + strings.Join(streams, "/")
}
