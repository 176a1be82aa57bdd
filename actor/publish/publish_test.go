package publish

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chartlink/event"
)

func TestCreateRouteKey(t *testing.T) {
	btc := event.NewPair("binancef", "btcusdt")
	eth := event.NewPair("binancef", "ethusdt")

	key := CreateRouteKey(btc, event.StreamCandles, 60)
	assert.Equal(t, key, CreateRouteKey(btc, event.StreamCandles, 60))
	assert.NotEqual(t, key, CreateRouteKey(eth, event.StreamCandles, 60))
	assert.NotEqual(t, key, CreateRouteKey(btc, event.StreamCandles, 300))
	assert.NotEqual(t, key, CreateRouteKey(btc, event.StreamMarkers, 60))
}
