package chart

import (
	"math"

	"github.com/leekchan/accounting"
)

func formatValue(v float64, ok bool, format ValueFormat, decimal int) string {
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	var ac *accounting.Accounting
	switch format {
	case FormatVolume:
		ac = accounting.DefaultAccounting("", 0)
	case FormatPercent:
		ac = accounting.NewAccounting("%", 2, ",", ".", "%v%s", "-%v%s", "%v%s")
	case FormatInteger:
		ac = accounting.DefaultAccounting("", 0)
		ac.Thousand = ""
	default:
		ac = accounting.DefaultAccounting("", decimal)
	}
	return ac.FormatMoney(v)
}
