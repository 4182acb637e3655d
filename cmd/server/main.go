package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mohammed-shakir/geojson-validator/internal/config"
	"github.com/mohammed-shakir/geojson-validator/internal/events"
	"github.com/mohammed-shakir/geojson-validator/internal/logger"
	"github.com/mohammed-shakir/geojson-validator/internal/observability"
	"github.com/mohammed-shakir/geojson-validator/internal/server"
	"github.com/mohammed-shakir/geojson-validator/internal/store"
)

var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.FromEnv()

	zl := logger.Build(logger.Config{
		Level:     cfg.LogLevel,
		Console:   cfg.LogConsole,
		Component: "geojson-server",
	}, os.Stdout)
	appLog := logger.NewSlog(&zl)

	observability.ExposeBuildInfo(Version)
	appLog.Info("starting server",
		"addr", cfg.Addr,
		"version", Version,
		"redis", cfg.RedisAddr,
		"events_enabled", cfg.Events.Enabled)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	st, err := store.New(connectCtx, cfg.RedisAddr, cfg.StoreTTL, cfg.StoreLRUSize)
	cancel()
	if err != nil {
		appLog.Error("redis connect failed", "err", err)
		return 1
	}
	defer func() { _ = st.Close() }()

	var pub events.Publisher = events.Nop{}
	if cfg.Events.Enabled {
		pub, err = events.NewKafka(strings.Split(cfg.Events.Brokers, ","), cfg.Events.Topic)
		if err != nil {
			appLog.Error("kafka connect failed", "err", err)
			return 1
		}
		defer func() { _ = pub.Close() }()
	}

	h := server.NewHandlers(appLog, st, pub)
	if err := server.Run(ctx, cfg, appLog, h); err != nil {
		appLog.Error("server failed", "err", err)
		return 1
	}
	return 0
}
