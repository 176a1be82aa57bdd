package settings

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CHARTLINK_LISTEN.
const EnvPrefix = "CHARTLINK"

var TickIntervals = []IntervalConfig{
	{Interval: 1},
	{Interval: 5},
	{Interval: 60},
	{Interval: 300},
	{Interval: 900},
	{Interval: 3600},
	{Interval: 86400},
	{Interval: 604800, Disabled: true},
	{Interval: 2629800, Disabled: true},
}

type IntervalConfig struct {
	Interval int64
	Disabled bool
}

// Intervals returns the enabled tick intervals in seconds.
func Intervals() []int64 {
	out := make([]int64, 0, len(TickIntervals))
	for _, tf := range TickIntervals {
		if !tf.Disabled {
			out = append(out, tf.Interval)
		}
	}
	return out
}

type Config struct {
	Listen   string
	LogLevel string
	LogFile  string

	Scheme      string
	Standard    string
	UnitX       int
	UnitXMin    int
	UnitXMax    int
	History     int
	PriceFields []string

	Exchange  string
	Symbols   []string
	Timeframe int64
	MarkerQty float64
}

// Defaults registers the default of every key on v.
func Defaults(v *viper.Viper) {
	v.SetDefault("listen", "127.0.0.1:7070")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("chart.scheme", "black")
	v.SetDefault("chart.standard", "international")
	v.SetDefault("chart.unitx", 5)
	v.SetDefault("chart.unitxmin", 1)
	v.SetDefault("chart.unitxmax", 50)
	v.SetDefault("chart.history", 2000)
	v.SetDefault("chart.pricefields", []string{"open", "high", "low", "close", "price"})
	v.SetDefault("feed.exchange", Binancef)
	v.SetDefault("feed.symbols", []string{"btcusd_perp"})
	v.SetDefault("feed.timeframe", 60)
	v.SetDefault("feed.markerqty", 50.0)
}

// Load reads the configuration from defaults, an optional config file and
// CHARTLINK_* environment variables, in increasing priority. An empty file
// skips the file.
func Load(v *viper.Viper, file string) (Config, error) {
	Defaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", file)
		}
	}

	cfg := Config{
		Listen:      v.GetString("listen"),
		LogLevel:    v.GetString("log.level"),
		LogFile:     v.GetString("log.file"),
		Scheme:      v.GetString("chart.scheme"),
		Standard:    v.GetString("chart.standard"),
		UnitX:       v.GetInt("chart.unitx"),
		UnitXMin:    v.GetInt("chart.unitxmin"),
		UnitXMax:    v.GetInt("chart.unitxmax"),
		History:     v.GetInt("chart.history"),
		PriceFields: v.GetStringSlice("chart.pricefields"),
		Exchange:    v.GetString("feed.exchange"),
		Symbols:     v.GetStringSlice("feed.symbols"),
		Timeframe:   v.GetInt64("feed.timeframe"),
		MarkerQty:   v.GetFloat64("feed.markerqty"),
	}
	symbols := make([]string, 0, len(cfg.Symbols))
	for _, sym := range cfg.Symbols {
		symbols = append(symbols, strings.ToLower(strings.TrimSpace(sym)))
	}
	cfg.Symbols = symbols
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.UnitXMin < 1 || c.UnitXMax < c.UnitXMin {
		return errors.Errorf("chart.unitxmin %d and chart.unitxmax %d do not form a range", c.UnitXMin, c.UnitXMax)
	}
	if c.UnitX < c.UnitXMin || c.UnitX > c.UnitXMax {
		return errors.Errorf("chart.unitx %d is outside %d..%d", c.UnitX, c.UnitXMin, c.UnitXMax)
	}
	if c.History < 1 {
		return errors.Errorf("chart.history must be positive, got %d", c.History)
	}
	if len(c.Symbols) == 0 {
		return errors.New("feed.symbols is empty")
	}
	if _, ok := Markets[c.Exchange]; !ok {
		return errors.Errorf("unknown exchange %q", c.Exchange)
	}
	for _, tf := range Intervals() {
		if tf == c.Timeframe {
			return nil
		}
	}
	return errors.Errorf("feed.timeframe %d is not an enabled tick interval", c.Timeframe)
}
