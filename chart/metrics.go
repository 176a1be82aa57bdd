package chart

import "github.com/prometheus/client_golang/prometheus"

var paintPasses = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "chartlink_paint_passes_total",
		Help: "top-level redraw passes, each with its own fast-draw cache",
	})

var widgetPaints = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "chartlink_widget_paints_total",
		Help: "widget repaints by chart kind",
	}, []string{"kind"})

var seriesLookups = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "chartlink_series_lookups_total",
		Help: "series lookups by fast-draw cache result",
	}, []string{"result"})

var derivedLines = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "chartlink_derived_lines_total",
		Help: "formula lines materialized by the data layer",
	})

func init() {
	prometheus.MustRegister(paintPasses, widgetPaints, seriesLookups, derivedLines)
}
