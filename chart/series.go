package chart

import "math"

// Records is the structured form of a series value: one row per record,
// one column per field.
type Records [][]float64

// Series is a keyed table of records as returned by the data layer.
type Series struct {
	Key    string
	Fields []string
	Rows   [][]float64
}

func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Rows)
}

// Field returns the column of name, or -1. A series without declared fields
// exposes its first column under any name.
func (s *Series) Field(name string) int {
	if s == nil {
		return -1
	}
	if len(s.Fields) == 0 {
		return 0
	}
	for i, f := range s.Fields {
		if f == name {
			return i
		}
	}
	return -1
}

func (s *Series) Value(field string, index int) (float64, bool) {
	if s == nil || index < 0 || index >= len(s.Rows) {
		return 0, false
	}
	col := s.Field(field)
	row := s.Rows[index]
	if col < 0 || col >= len(row) {
		return 0, false
	}
	return row[col], true
}

// Column copies one field out of every row. Missing cells are skipped.
func (s *Series) Column(field string) []float64 {
	col := s.Field(field)
	if col < 0 {
		return nil
	}
	out := make([]float64, 0, len(s.Rows))
	for _, row := range s.Rows {
		if col < len(row) {
			out = append(out, row[col])
		}
	}
	return out
}

// Slice returns the records min..max inclusive, sharing rows with s.
// Bounds are clamped; a negative min starts at the first record and a
// negative max ends at the last.
func (s *Series) Slice(min, max int) *Series {
	if s == nil {
		return nil
	}
	if min < 0 {
		min = 0
	}
	if max < 0 || max >= len(s.Rows) {
		max = len(s.Rows) - 1
	}
	out := &Series{Key: s.Key, Fields: s.Fields}
	if min <= max {
		out.Rows = s.Rows[min : max+1]
	}
	return out
}

// Range returns the lowest and highest value of the given fields over all
// rows, ignoring NaN gaps. ok is false when no value was found.
func (s *Series) Range(fields ...string) (lo, hi float64, ok bool) {
	for _, f := range fields {
		for i := 0; i < s.Len(); i++ {
			v, found := s.Value(f, i)
			if !found || math.IsNaN(v) {
				continue
			}
			if !ok {
				lo, hi, ok = v, v, true
				continue
			}
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	return
}

type SourceMode int

const (
	SourceMain SourceMode = iota
	SourceSeries
	SourceFormula
)

func (m SourceMode) String() string {
	switch m {
	case SourceMain:
		return "main"
	case SourceSeries:
		return "series"
	case SourceFormula:
		return "formula"
	default:
		return "unknown"
	}
}

// DataSource tells a line where its values come from. Main lines read the
// node's own hot series; the others read Key through GetSeries.
type DataSource struct {
	Mode SourceMode
	Key  string
}

type Formula struct {
	Key     string
	Command string
}

type ValueFormat int

const (
	FormatPrice ValueFormat = iota
	FormatVolume
	FormatPercent
	FormatInteger
)

// InfoSpec describes the hover readout of a line. Lines with an empty Field
// show only their label.
type InfoSpec struct {
	Field  string
	Label  string
	Format ValueFormat
}

type LineSpec struct {
	Source  DataSource
	Formula Formula
	Info    *InfoSpec

	// Field is the column stroked by the line widget.
	Field string
}

// PointValue is one slot of a hover readout. HasValue is false when Value
// is the "-" placeholder.
type PointValue struct {
	Slot     int
	Label    string
	Value    string
	HasValue bool
}

// LineContext is handed to the data layer when a derived series has to be
// materialized for the current window.
type LineContext struct {
	Data     *Series
	MinIndex int
	MaxIndex int
}
