package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"

	"stok/internal/config"
	"stok/internal/market"
	"stok/internal/server"
)

func main() {
	configPath := flag.String("config", "", "Path to the YAML configuration file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to load configuration")
	}

	// Validate already vetted the level string.
	level, _ := zerolog.ParseLevel(cfg.Log.Level)
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer stop()

	// Setup the market, the matching engine and the gRPC server.
	mkt := market.New()
	eng := market.NewEngine(mkt, cfg.Market.TickInterval.Std())
	srv := server.New(cfg.Server.Bind, cfg.Server.Port, mkt)

	t, _ := tomb.WithContext(ctx)
	t.Go(func() error {
		return eng.Run(t)
	})
	t.Go(func() error {
		return srv.Run(t)
	})

	// A context cancellation is the normal signal-driven shutdown path.
	if err := t.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}
