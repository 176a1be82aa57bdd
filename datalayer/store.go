package datalayer

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/btree"

	"chartlink/chart"
)

var log = logrus.WithField("component", "datalayer")

var (
	ErrFieldMismatch  = errors.New("record width does not match fields")
	ErrUnknownFormula = errors.New("unknown formula")
	ErrBadCommand     = errors.New("malformed formula command")
	ErrUnknownSeries  = errors.New("unknown series")
)

// DefaultPriceFields are the columns rescaled by price adjustment.
var DefaultPriceFields = []string{"open", "high", "low", "close", "price"}

type entry struct {
	fields  []string
	rows    chart.Records
	actions []Action
}

// Store keeps raw series keyed by name and serves them to a chart tree.
// The chart reads it on the host thread while the inspection API lists it
// from its own goroutine.
type Store struct {
	mu          sync.RWMutex
	series      *btree.Map[string, *entry]
	decimal     int
	priceFields []string
}

type Option func(*Store)

// WithDecimal sets the number of decimals used for price readouts.
func WithDecimal(d int) Option {
	return func(s *Store) { s.decimal = d }
}

// WithPriceFields names the columns rescaled by price adjustment. No fields
// keeps DefaultPriceFields.
func WithPriceFields(fields ...string) Option {
	return func(s *Store) {
		if len(fields) > 0 {
			s.priceFields = append([]string(nil), fields...)
		}
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		series:      btree.NewMap[string, *entry](0),
		decimal:     2,
		priceFields: DefaultPriceFields,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Decimal() int { return s.decimal }

// SetData replaces the records stored under key. When fields are given every
// record must have exactly one value per field.
func (s *Store) SetData(key string, fields []string, rows chart.Records) error {
	if len(fields) > 0 {
		for i, row := range rows {
			if len(row) != len(fields) {
				return errors.Wrapf(ErrFieldMismatch, "record %d has %d values for %d fields", i, len(row), len(fields))
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.series.Get(key)
	if !ok {
		e = &entry{}
		s.series.Set(key, e)
	}
	e.fields = append([]string(nil), fields...)
	e.rows = rows
	log.WithField("key", key).Debugf("stored %d records", len(rows))
	return nil
}

// GetData returns a copy of the series under key with mode applied to its
// price fields, or nil when key is unknown.
func (s *Store) GetData(key string, mode chart.AdjustMode) *chart.Series {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.series.Get(key)
	if !ok {
		return nil
	}
	out := &chart.Series{
		Key:    key,
		Fields: e.fields,
		Rows:   make([][]float64, len(e.rows)),
	}
	for i, row := range e.rows {
		out.Rows[i] = append([]float64(nil), row...)
	}
	if mode != chart.AdjustNone && len(e.actions) > 0 {
		adjust(out, e.actions, mode, s.priceFields)
	}
	return out
}

// SetActions records the corporate actions of the series under key.
func (s *Store) SetActions(key string, actions []Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.series.Get(key)
	if !ok {
		return errors.Wrap(ErrUnknownSeries, key)
	}
	e.actions = append([]Action(nil), actions...)
	return nil
}

// Keys lists the stored series in key order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.series.Keys()
}

// Len reports the number of records under key.
func (s *Store) Len(key string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.series.Get(key)
	if !ok {
		return 0
	}
	return len(e.rows)
}
