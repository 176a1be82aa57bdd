package datalayer

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"chartlink/chart"
)

// formulaFunc computes a derived column over the full history. Positions
// without enough history are NaN.
type formulaFunc func(col []float64, period int) []float64

var formulas = map[string]formulaFunc{
	"MA":  movingAverage,
	"EMA": exponentialAverage,
	"SUM": movingSum,
	"REF": reference,
	"HHV": highest,
	"LLV": lowest,
}

// Command is a parsed formula command such as MA(close,5).
type Command struct {
	Name   string
	Field  string
	Period int
}

func ParseCommand(s string) (Command, error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return Command{}, errors.Wrap(ErrBadCommand, s)
	}
	args := strings.Split(s[open+1:len(s)-1], ",")
	if len(args) != 2 {
		return Command{}, errors.Wrapf(ErrBadCommand, "%s: want 2 arguments, got %d", s, len(args))
	}
	period, err := strconv.Atoi(strings.TrimSpace(args[1]))
	if err != nil || period <= 0 {
		return Command{}, errors.Wrapf(ErrBadCommand, "%s: bad period", s)
	}
	cmd := Command{
		Name:   strings.ToUpper(strings.TrimSpace(s[:open])),
		Field:  strings.TrimSpace(args[0]),
		Period: period,
	}
	if cmd.Field == "" {
		return Command{}, errors.Wrapf(ErrBadCommand, "%s: empty field", s)
	}
	if _, ok := formulas[cmd.Name]; !ok {
		return Command{}, errors.Wrap(ErrUnknownFormula, cmd.Name)
	}
	return cmd, nil
}

// MakeLineData evaluates command over the whole of ctx.Data and returns the
// part inside ctx's window as a one-column series named key. Nothing is
// stored; the chart keeps the result for the current fast-draw pass.
func (s *Store) MakeLineData(ctx chart.LineContext, key, command string) (*chart.Series, error) {
	cmd, err := ParseCommand(command)
	if err != nil {
		return nil, err
	}
	if ctx.Data == nil {
		return nil, errors.Wrapf(ErrUnknownSeries, "no source for %s", key)
	}
	if ctx.Data.Field(cmd.Field) < 0 {
		return nil, errors.Wrapf(ErrFieldMismatch, "%s has no field %s", ctx.Data.Key, cmd.Field)
	}

	col := make([]float64, ctx.Data.Len())
	for i := range col {
		v, ok := ctx.Data.Value(cmd.Field, i)
		if !ok {
			v = math.NaN()
		}
		col[i] = v
	}
	values := formulas[cmd.Name](col, cmd.Period)

	full := &chart.Series{Key: key, Rows: make([][]float64, len(values))}
	for i, v := range values {
		full.Rows[i] = []float64{v}
	}
	return full.Slice(ctx.MinIndex, ctx.MaxIndex), nil
}

func nans(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

func window(col []float64, period int, fn func([]float64) float64) []float64 {
	out := nans(len(col))
	for i := period - 1; i < len(col); i++ {
		out[i] = fn(col[i-period+1 : i+1])
	}
	return out
}

func movingSum(col []float64, period int) []float64 {
	return window(col, period, floats.Sum)
}

func movingAverage(col []float64, period int) []float64 {
	out := movingSum(col, period)
	floats.Scale(1/float64(period), out)
	return out
}

func highest(col []float64, period int) []float64 {
	return window(col, period, floats.Max)
}

func lowest(col []float64, period int) []float64 {
	return window(col, period, floats.Min)
}

func exponentialAverage(col []float64, period int) []float64 {
	out := nans(len(col))
	if len(col) == 0 {
		return out
	}
	k := 2 / float64(period+1)
	out[0] = col[0]
	for i := 1; i < len(col); i++ {
		out[i] = col[i]*k + out[i-1]*(1-k)
	}
	return out
}

func reference(col []float64, period int) []float64 {
	out := nans(len(col))
	for i := period; i < len(col); i++ {
		out[i] = col[i-period]
	}
	return out
}
