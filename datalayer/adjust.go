package datalayer

import (
	"sort"

	"chartlink/chart"
)

// Action is a corporate action taking effect at record Index. Factor is the
// ratio between the first adjusted price and the last unadjusted one, e.g.
// 0.5 for a two-for-one split.
type Action struct {
	Index  int     `json:"index"`
	Factor float64 `json:"factor"`
}

// adjust rescales the price fields of s in place. Forward adjustment keeps
// the newest prices and scales history; backward keeps the oldest prices
// and scales everything after each action.
func adjust(s *chart.Series, actions []Action, mode chart.AdjustMode, priceFields []string) {
	cols := priceColumns(s, priceFields)
	if len(cols) == 0 {
		return
	}
	sorted := append([]Action(nil), actions...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	for _, a := range sorted {
		if a.Factor <= 0 || a.Index <= 0 || a.Index >= len(s.Rows) {
			log.WithField("key", s.Key).Warnf("skipping action at %d factor %v", a.Index, a.Factor)
			continue
		}
		switch mode {
		case chart.AdjustForward:
			scale(s.Rows[:a.Index], cols, a.Factor)
		case chart.AdjustBackward:
			scale(s.Rows[a.Index:], cols, 1/a.Factor)
		}
	}
}

func priceColumns(s *chart.Series, priceFields []string) []int {
	var cols []int
	for _, f := range priceFields {
		for i, name := range s.Fields {
			if name == f {
				cols = append(cols, i)
			}
		}
	}
	return cols
}

func scale(rows [][]float64, cols []int, factor float64) {
	for _, row := range rows {
		for _, c := range cols {
			if c < len(row) {
				row[c] *= factor
			}
		}
	}
}
