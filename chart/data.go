package chart

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
)

var (
	ErrMalformedInput = errors.New("malformed series input")
	ErrNoDataLayer    = errors.New("no data layer bound")
)

// SetSeries writes value under key through the data layer. value may be
// structured rows or their JSON encoding. The current fast-draw pass ends
// whether or not the write succeeds.
func (n *Node) SetSeries(key string, fields []string, value any) error {
	defer n.tree.cache.End()

	rows, err := toRecords(value)
	if err != nil {
		return errors.Wrapf(err, "set series %s", key)
	}
	if n.tree.data == nil {
		return errors.Wrapf(ErrNoDataLayer, "set series %s", key)
	}
	return errors.Wrapf(n.tree.data.SetData(key, fields, rows), "set series %s", key)
}

// GetSeries returns the series stored under key with the current
// adjustment mode applied. Inside a fast-draw pass the first result for a
// key is reused.
func (n *Node) GetSeries(key string) *Series {
	if s, ok := n.tree.cache.Lookup(key); ok {
		seriesLookups.WithLabelValues("hit").Inc()
		return s
	}
	if n.tree.data == nil {
		return nil
	}
	seriesLookups.WithLabelValues("miss").Inc()
	s := n.tree.data.GetData(key, n.tree.link.Adjust)
	n.tree.cache.Store(key, s)
	return s
}

// HotSeries is the full series the node is bound to.
func (n *Node) HotSeries() *Series {
	if n.hotKey == "" {
		return nil
	}
	return n.GetSeries(n.hotKey)
}

// VisibleSeries is the part of the hot series inside the shared window.
func (n *Node) VisibleSeries() *Series {
	return n.windowed(n.HotSeries())
}

// lineSeries resolves the series line reads, cut to the shared window.
// Derived series are already windowed when materialized.
func (n *Node) lineSeries(line LineSpec) *Series {
	switch line.Source.Mode {
	case SourceMain:
		return n.VisibleSeries()
	case SourceSeries:
		return n.windowed(n.GetSeries(line.Source.Key))
	}
	return n.GetSeries(line.Source.Key)
}

func (n *Node) windowed(s *Series) *Series {
	link := n.tree.link
	return s.Slice(link.MinIndex, link.MaxIndex)
}

// PrepareDerived materializes the formula lines of lines over the current
// window so that widgets sharing them do not compute them again.
func (n *Node) PrepareDerived(raw *Series, lines []LineSpec) {
	link := n.tree.link
	for _, line := range lines {
		if line.Source.Mode != SourceFormula {
			continue
		}
		if _, ok := n.tree.cache.Lookup(line.Source.Key); ok {
			continue
		}
		if n.tree.data == nil {
			return
		}
		ctx := LineContext{
			Data:     raw,
			MinIndex: link.MinIndex,
			MaxIndex: link.MaxIndex,
		}
		s, err := n.tree.data.MakeLineData(ctx, line.Formula.Key, line.Formula.Command)
		if err != nil {
			log.WithError(err).WithField("formula", line.Formula.Command).Warn("derived line failed")
			continue
		}
		derivedLines.Inc()
		n.tree.cache.Store(line.Source.Key, s)
	}
}

// PointValues builds the hover readout of lines for the absolute record
// index. Values are read relative to the window start. Formula lines not
// yet materialized in the current pass are derived first, so the readout
// holds outside a paint too.
func (n *Node) PointValues(lines []LineSpec, index int) []PointValue {
	out := []PointValue{}
	if len(lines) == 0 {
		return out
	}
	if n.tree.cache.Begin() {
		defer n.tree.cache.End()
	}
	if raw := n.HotSeries(); raw.Len() > 0 {
		n.PrepareDerived(raw, lines)
	}

	index -= max(n.tree.link.MinIndex, 0)
	decimal := n.decimal()

	var main *Series
	for k, line := range lines {
		if line.Info == nil {
			continue
		}
		pv := PointValue{Slot: k, Label: line.Info.Label}
		if line.Info.Field != "" {
			var src *Series
			if line.Source.Mode == SourceMain {
				if main == nil {
					main = n.VisibleSeries()
				}
				src = main
			} else {
				src = n.lineSeries(line)
			}
			v, ok := src.Value(line.Info.Field, index)
			pv.Value = formatValue(v, ok, line.Info.Format, decimal)
			pv.HasValue = ok && !math.IsNaN(v)
		}
		out = append(out, pv)
	}
	return out
}

func (n *Node) decimal() int {
	if d, ok := n.tree.data.(decimaler); ok {
		return d.Decimal()
	}
	return 2
}

func toRecords(value any) (Records, error) {
	switch v := value.(type) {
	case Records:
		return v, nil
	case [][]float64:
		return Records(v), nil
	case []float64:
		rows := make(Records, len(v))
		for i, f := range v {
			rows[i] = []float64{f}
		}
		return rows, nil
	case string:
		return ParseRecords([]byte(v))
	case []byte:
		return ParseRecords(v)
	case nil:
		return nil, errors.Wrap(ErrMalformedInput, "nil value")
	}
	return nil, errors.Wrapf(ErrMalformedInput, "unsupported value %T", value)
}

// ParseRecords decodes a JSON array of records. Each element is either a
// number (a one-field record) or an array of numbers; numeric strings are
// accepted as exchanges send them.
func ParseRecords(b []byte) (Records, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(b)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}
	items, err := v.Array()
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedInput, "expected array, got %s", v.Type())
	}

	rows := make(Records, 0, len(items))
	for i, item := range items {
		if item.Type() != fastjson.TypeArray {
			f, err := number(item)
			if err != nil {
				return nil, errors.Wrapf(ErrMalformedInput, "record %d: %s", i, err)
			}
			rows = append(rows, []float64{f})
			continue
		}
		cells := item.GetArray()
		row := make([]float64, len(cells))
		for j, cell := range cells {
			f, err := number(cell)
			if err != nil {
				return nil, errors.Wrapf(ErrMalformedInput, "record %d field %d: %s", i, j, err)
			}
			row[j] = f
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func number(v *fastjson.Value) (float64, error) {
	switch v.Type() {
	case fastjson.TypeNumber:
		return v.Float64()
	case fastjson.TypeString:
		return strconv.ParseFloat(string(v.GetStringBytes()), 64)
	}
	return 0, errors.Errorf("unexpected %s", v.Type())
}
