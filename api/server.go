package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"chartlink/chart"
	"chartlink/datalayer"
	"chartlink/event"
)

var log = logrus.WithField("component", "api")

const maxBody = 8 << 20

// Layer is the event layer the handlers feed. Messages are applied on the
// host thread, so handlers only see their effect in later snapshots.
type Layer interface {
	Send(msg any)
	Snapshot() (chart.LinkState, bool)
}

// Series is the data layer as seen by the API: it lists keys and records
// corporate actions.
type Series interface {
	Keys() []string
	Len(key string) int
	SetActions(key string, actions []datalayer.Action) error
}

type seriesInfo struct {
	Key  string `json:"key"`
	Rows int    `json:"rows"`
}

func NewServer(layer Layer, series Series) http.Handler {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(requestLogger)
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	router.Handle("/metrics", promhttp.Handler())

	router.Get("/link", func(w http.ResponseWriter, r *http.Request) {
		snap, ok := layer.Snapshot()
		if !ok {
			writeError(w, http.StatusServiceUnavailable, "no chart bound")
			return
		}
		writeJSON(w, http.StatusOK, snap)
	})

	router.Route("/series", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			keys := series.Keys()
			out := make([]seriesInfo, len(keys))
			for i, key := range keys {
				out[i] = seriesInfo{Key: key, Rows: series.Len(key)}
			}
			writeJSON(w, http.StatusOK, out)
		})
		r.Post("/{key}", func(w http.ResponseWriter, r *http.Request) {
			postSeries(layer, w, r)
		})
		r.Post("/{key}/actions", func(w http.ResponseWriter, r *http.Request) {
			postActions(layer, series, w, r)
		})
	})

	router.Route("/view", func(r chi.Router) {
		r.Post("/scheme/{scheme}", func(w http.ResponseWriter, r *http.Request) {
			layer.Send(event.ColorScheme{Scheme: chi.URLParam(r, "scheme")})
			w.WriteHeader(http.StatusAccepted)
		})
		r.Post("/adjust/{mode}", func(w http.ResponseWriter, r *http.Request) {
			mode := chi.URLParam(r, "mode")
			if _, ok := chart.ParseAdjustMode(mode); !ok {
				writeError(w, http.StatusBadRequest, "unknown adjust mode "+mode)
				return
			}
			layer.Send(event.Adjust{Mode: mode})
			w.WriteHeader(http.StatusAccepted)
		})
		r.Post("/info", func(w http.ResponseWriter, r *http.Request) {
			hide, err := strconv.ParseBool(r.URL.Query().Get("hide"))
			if err != nil {
				writeError(w, http.StatusBadRequest, "hide must be a boolean")
				return
			}
			layer.Send(event.HideInfo{Hide: hide})
			w.WriteHeader(http.StatusAccepted)
		})
		r.Post("/hotkey/{child}", func(w http.ResponseWriter, r *http.Request) {
			key := r.URL.Query().Get("key")
			if key == "" {
				writeError(w, http.StatusBadRequest, "missing key")
				return
			}
			layer.Send(event.HotKey{Child: chi.URLParam(r, "child"), Key: key})
			w.WriteHeader(http.StatusAccepted)
		})
	})

	return router
}

// postSeries validates a JSON record body and queues it as a series update.
func postSeries(layer Layer, w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rows, err := chart.ParseRecords(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var fields []string
	if q := r.URL.Query().Get("fields"); q != "" {
		fields = strings.Split(q, ",")
		for _, row := range rows {
			if len(row) != len(fields) {
				writeError(w, http.StatusBadRequest, "row width does not match fields")
				return
			}
		}
	}
	key := chi.URLParam(r, "key")
	layer.Send(event.SeriesUpdate{Key: key, Fields: fields, Value: rows})
	writeJSON(w, http.StatusAccepted, seriesInfo{Key: key, Rows: len(rows)})
}

// postActions records the corporate actions of a stored series and has the
// chart reread it. The body is a JSON list of {"index":i,"factor":f}.
func postActions(layer Layer, series Series, w http.ResponseWriter, r *http.Request) {
	var actions []datalayer.Action
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&actions); err != nil {
		writeError(w, http.StatusBadRequest, "malformed actions: "+err.Error())
		return
	}
	for _, a := range actions {
		if a.Index <= 0 || a.Factor <= 0 {
			writeError(w, http.StatusBadRequest, "actions need a positive index and factor")
			return
		}
	}

	key := chi.URLParam(r, "key")
	if err := series.SetActions(key, actions); err != nil {
		if errors.Is(err, datalayer.ErrUnknownSeries) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		log.WithError(err).WithField("key", key).Error("set actions failed")
		writeError(w, http.StatusInternalServerError, "set actions failed")
		return
	}
	layer.Send(event.Refresh{Key: key})
	writeJSON(w, http.StatusAccepted, map[string]any{"key": key, "actions": len(actions)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Debug("response write failed")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
