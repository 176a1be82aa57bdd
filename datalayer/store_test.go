package datalayer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartlink/chart"
)

var candleFields = []string{"time", "open", "high", "low", "close", "volume"}

func TestStore_SetGet(t *testing.T) {
	s := New()
	rows := chart.Records{{1, 10, 11, 9, 10.5, 100}}
	require.NoError(t, s.SetData("btc", candleFields, rows))

	got := s.GetData("btc", chart.AdjustNone)
	require.NotNil(t, got)
	assert.Equal(t, "btc", got.Key)
	assert.Equal(t, candleFields, got.Fields)
	assert.Equal(t, [][]float64{{1, 10, 11, 9, 10.5, 100}}, got.Rows)

	got.Rows[0][4] = 0
	assert.Equal(t, 10.5, s.GetData("btc", chart.AdjustNone).Rows[0][4], "readers get a copy")

	assert.Nil(t, s.GetData("eth", chart.AdjustNone))
}

func TestStore_FieldMismatch(t *testing.T) {
	s := New()
	err := s.SetData("btc", []string{"time", "close"}, chart.Records{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrFieldMismatch)
	assert.Nil(t, s.GetData("btc", chart.AdjustNone))

	require.NoError(t, s.SetData("raw", nil, chart.Records{{1}, {2, 3}}))
}

func TestStore_Keys(t *testing.T) {
	s := New()
	for _, k := range []string{"b", "a", "c"} {
		require.NoError(t, s.SetData(k, nil, chart.Records{{1}}))
	}
	assert.Equal(t, []string{"a", "b", "c"}, s.Keys())
}

func TestStore_Adjust(t *testing.T) {
	s := New()
	fields := []string{"time", "close", "volume"}
	require.NoError(t, s.SetData("k", fields, chart.Records{
		{1, 100, 5},
		{2, 100, 5},
		{3, 50, 10},
		{4, 52, 10},
	}))
	require.NoError(t, s.SetActions("k", []Action{{Index: 2, Factor: 0.5}}))

	forward := s.GetData("k", chart.AdjustForward)
	assert.Equal(t, []float64{50, 50, 50, 52}, forward.Column("close"))
	assert.Equal(t, []float64{5, 5, 10, 10}, forward.Column("volume"))
	assert.Equal(t, []float64{1, 2, 3, 4}, forward.Column("time"))

	backward := s.GetData("k", chart.AdjustBackward)
	assert.Equal(t, []float64{100, 100, 100, 104}, backward.Column("close"))

	none := s.GetData("k", chart.AdjustNone)
	assert.Equal(t, []float64{100, 100, 50, 52}, none.Column("close"))

	assert.ErrorIs(t, s.SetActions("missing", nil), ErrUnknownSeries)
}

func TestStore_PriceFields(t *testing.T) {
	s := New(WithPriceFields("close"))
	fields := []string{"time", "open", "close"}
	require.NoError(t, s.SetData("k", fields, chart.Records{{1, 100, 100}, {2, 50, 50}}))
	require.NoError(t, s.SetActions("k", []Action{{Index: 1, Factor: 0.5}}))

	forward := s.GetData("k", chart.AdjustForward)
	assert.Equal(t, []float64{50, 50}, forward.Column("close"))
	assert.Equal(t, []float64{100, 50}, forward.Column("open"), "open is not a price field here")

	assert.Equal(t, DefaultPriceFields, New(WithPriceFields()).priceFields)
}

func TestStore_Decimal(t *testing.T) {
	assert.Equal(t, 2, New().Decimal())
	assert.Equal(t, 4, New(WithDecimal(4)).Decimal())
}
