package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/anthdm/hollywood/actor"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"chartlink/actor/consumer/binance"
	"chartlink/actor/symbol"
	"chartlink/api"
	"chartlink/app"
	"chartlink/chart"
	"chartlink/datalayer"
	"chartlink/input"
	"chartlink/settings"
)

const queueSize = 4096

var RootCmd = &cobra.Command{
	Use:   "chartlink",
	Short: "linked chart terminal",

	SilenceUsage: true,

	RunE: run,
}

func init() {
	RootCmd.PersistentFlags().String("config", "", "config file")
	RootCmd.PersistentFlags().Bool("debug", false, "debug logging")
	RootCmd.Flags().String("listen", "", "inspection api address")
	RootCmd.Flags().StringSlice("symbols", nil, "symbols to stream")
	RootCmd.Flags().String("log-file", "", "rotating log file")
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("failed to load .env")
	}
	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatal("cannot execute command")
	}
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	flags := map[string]string{
		"listen":       "listen",
		"feed.symbols": "symbols",
		"log.file":     "log-file",
	}
	for key, name := range flags {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return errors.Wrapf(err, "bind flag %s", name)
		}
	}
	return nil
}

func setupLogging(cfg settings.Config, debug bool) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	if debug {
		level = log.DebugLevel
	}
	log.SetLevel(level)
	if cfg.LogFile != "" {
		log.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     14,
		}))
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	v := viper.New()
	if err := bindFlags(v, cmd); err != nil {
		return err
	}
	file, _ := cmd.Flags().GetString("config")
	cfg, err := settings.Load(v, file)
	if err != nil {
		return err
	}
	debug, _ := cmd.Flags().GetBool("debug")
	if err := setupLogging(cfg, debug); err != nil {
		return err
	}
	if cfg.Exchange != binance.Exchange {
		return errors.Errorf("no consumer for exchange %q", cfg.Exchange)
	}
	standard, ok := chart.ParseStandard(cfg.Standard)
	if !ok {
		return errors.Errorf("unknown display standard %q", cfg.Standard)
	}

	engine, err := actor.NewEngine(actor.NewEngineConfig())
	if err != nil {
		return errors.Wrap(err, "actor engine")
	}

	storeOpts := []datalayer.Option{datalayer.WithPriceFields(cfg.PriceFields...)}
	if sym, ok := settings.Lookup(cfg.Exchange, cfg.Symbols[0]); ok {
		storeOpts = append(storeOpts, datalayer.WithDecimal(sym.Decimal()))
	}
	store := datalayer.New(storeOpts...)
	layer := input.New(engine, queueSize, input.WithHistory(cfg.History))
	defer layer.Close()

	engine.Spawn(binance.New(cfg.Symbols, symbol.Config{
		Intervals: settings.Intervals(),
		MinQty:    cfg.MarkerQty,
	}), binance.Exchange, actor.WithID("1"))

	server := &http.Server{
		Addr:              cfg.Listen,
		Handler:           api.NewServer(layer, store),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Infof("inspection api listening on %s", cfg.Listen)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("inspection api stopped")
		}
	}()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	}()

	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("chartlink")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := app.New(engine, layer, store, cfg,
		chart.WithLimits(chart.Limits{
			SpaceXFloor: chart.DefaultLimits.SpaceXFloor,
			UnitXMin:    cfg.UnitXMin,
			UnitXMax:    cfg.UnitXMax,
		}),
		chart.WithUnitX(cfg.UnitX),
		chart.WithScheme(cfg.Scheme),
		chart.WithStandard(standard),
	)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run game")
	}
	return nil
}
