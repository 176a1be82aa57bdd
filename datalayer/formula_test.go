package datalayer

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartlink/chart"
	"chartlink/event"
)

func TestParseCommand(t *testing.T) {
	cmd, err := ParseCommand(" ma( close , 5 )")
	require.NoError(t, err)
	assert.Equal(t, Command{Name: "MA", Field: "close", Period: 5}, cmd)

	for _, bad := range []string{"MA", "MA(close)", "MA(close,x)", "MA(close,0)", "(close,3)", "MA(,3)"} {
		_, err := ParseCommand(bad)
		assert.ErrorIs(t, err, ErrBadCommand, bad)
	}

	_, err = ParseCommand("BOLL(close,20)")
	assert.ErrorIs(t, err, ErrUnknownFormula)
}

func TestFormulas(t *testing.T) {
	col := []float64{1, 2, 3, 4, 5}
	nan := math.NaN()

	assertFloats(t, []float64{nan, nan, 2, 3, 4}, movingAverage(col, 3))
	assertFloats(t, []float64{nan, 3, 5, 7, 9}, movingSum(col, 2))
	assertFloats(t, []float64{nan, nan, 1, 2, 3}, reference(col, 2))
	assertFloats(t, []float64{nan, nan, 3, 4, 5}, highest(col, 3))
	assertFloats(t, []float64{nan, nan, 1, 2, 3}, lowest(col, 3))
	assertFloats(t, []float64{1, 1.5, 2.25, 3.125, 4.0625}, exponentialAverage(col, 3))
	assert.Empty(t, exponentialAverage(nil, 3))
}

func TestMakeLineData_Window(t *testing.T) {
	s := New()
	data := &chart.Series{Key: "k", Fields: []string{"time", "close"}}
	for i := 0; i < 10; i++ {
		data.Rows = append(data.Rows, []float64{float64(i), float64(i + 1)})
	}

	got, err := s.MakeLineData(chart.LineContext{Data: data, MinIndex: 6, MaxIndex: 9}, "ma3", "MA(close,3)")
	require.NoError(t, err)
	assert.Equal(t, "ma3", got.Key)
	assert.Equal(t, []float64{6, 7, 8, 9}, got.Column("value"), "history before the window feeds the average")

	all, err := s.MakeLineData(chart.LineContext{Data: data, MinIndex: -1, MaxIndex: -1}, "ma3", "MA(close,3)")
	require.NoError(t, err)
	assert.Equal(t, 10, all.Len())
}

func TestMakeLineData_Errors(t *testing.T) {
	s := New()
	data := &chart.Series{Key: "k", Fields: []string{"close"}, Rows: [][]float64{{1}}}

	_, err := s.MakeLineData(chart.LineContext{Data: data}, "x", "MA(open,3)")
	assert.ErrorIs(t, err, ErrFieldMismatch)

	_, err = s.MakeLineData(chart.LineContext{Data: data}, "x", "nonsense")
	assert.ErrorIs(t, err, ErrBadCommand)

	_, err = s.MakeLineData(chart.LineContext{}, "x", "MA(close,3)")
	assert.ErrorIs(t, err, ErrUnknownSeries)
}

func assertFloats(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if math.IsNaN(want[i]) {
			assert.True(t, math.IsNaN(got[i]), "index %d", i)
			continue
		}
		assert.InDelta(t, want[i], got[i], 1e-9, "index %d", i)
	}
}

func TestMakeLineData_HoverReadout(t *testing.T) {
	s := New()
	rows := make(chart.Records, 30)
	for i := range rows {
		rows[i] = []float64{float64(i + 1)}
	}
	require.NoError(t, s.SetData("close", []string{"close"}, rows))

	lines := []chart.LineSpec{
		{Source: chart.DataSource{Mode: chart.SourceMain}, Field: "close", Info: &chart.InfoSpec{Field: "close", Label: "close"}},
		{
			Source:  chart.DataSource{Mode: chart.SourceFormula, Key: "ma5"},
			Formula: chart.Formula{Key: "ma5", Command: "MA(close,5)"},
			Field:   "value",
			Info:    &chart.InfoSpec{Field: "value", Label: "ma5"},
		},
	}
	var readout []chart.PointValue
	root := chart.New(s, nil, chart.WithUnitX(5))
	main := root.CreateChild("main", chart.KindLine, chart.Config{Rect: image.Rect(0, 0, 60, 40), Lines: lines}, func(_ int, values []chart.PointValue) {
		readout = values
	})
	root.BindHotKey(main, "close")
	root.OnPaint(nil)

	root.Dispatch(event.Input{Kind: event.MouseMove, Point: image.Pt(13, 20)})
	require.Len(t, readout, 2)
	assert.Equal(t, "23.00", readout[0].Value)
	assert.Equal(t, "21.00", readout[1].Value)
	assert.True(t, readout[1].HasValue)
	assert.Equal(t, []string{"close"}, s.Keys(), "derived lines are not stored")
}
