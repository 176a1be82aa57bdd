package marker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chartlink/event"
)

func TestFromTrade(t *testing.T) {
	pair := event.NewPair("binancef", "btcusdt")

	m, ok := FromTrade(event.Trade{Pair: pair, Price: 100, Qty: 5, IsBuy: true, Unix: 61_250}, 5)
	assert.True(t, ok)
	assert.Equal(t, event.Marker{Pair: pair, Unix: 61, Price: 100, Qty: 5, Side: 1}, m)

	m, ok = FromTrade(event.Trade{Pair: pair, Price: 99, Qty: 8, Unix: 1000}, 5)
	assert.True(t, ok)
	assert.Equal(t, -1.0, m.Side)

	_, ok = FromTrade(event.Trade{Pair: pair, Qty: 4.9}, 5)
	assert.False(t, ok)

	_, ok = FromTrade(event.Trade{Pair: pair, Qty: 100}, 0)
	assert.False(t, ok, "zero disables markers")
}
