package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/neoinsight7000-backend/internal/explorer"
	"github.com/goodnatureofminers/neoinsight7000-backend/internal/metrics"
	"github.com/goodnatureofminers/neoinsight7000-backend/internal/monitor"
	clickhouseRepo "github.com/goodnatureofminers/neoinsight7000-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/neoinsight7000-backend/internal/transport"
)

var config struct {
	Addr          string        `long:"addr" env:"EXPLORER_API_ADDR" description:"http listen addr" default:":8000"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"EXPLORER_API_CLICKHOUSE_DSN" description:"ClickHouse DSN" default:"clickhouse://localhost:9000/default"`
	Seeds         []string      `long:"seed" env:"EXPLORER_API_SEEDS" env-delim:"," description:"peer node rpc urls"`
	RefreshEvery  time.Duration `long:"refresh-every" env:"EXPLORER_API_REFRESH_EVERY" description:"node poll interval" default:"5m"`
	PollWorkers   int           `long:"poll-workers" env:"EXPLORER_API_POLL_WORKERS" description:"concurrent node polls" default:"4"`
	PollRPS       int           `long:"poll-rps" env:"EXPLORER_API_POLL_RPS" description:"node polls per second" default:"10"`

	BlockIndexFloor uint64        `long:"block-index-floor" env:"EXPLORER_API_BLOCK_INDEX_FLOOR" description:"minimum height for last-blocks listings" default:"1200000"`
	RecencyWindow   time.Duration `long:"recency-window" env:"EXPLORER_API_RECENCY_WINDOW" description:"last-transactions lookback" default:"1h"`
	ListingLimit    uint64        `long:"listing-limit" env:"EXPLORER_API_LISTING_LIMIT" description:"max rows per listing" default:"20"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	repo, err := clickhouseRepo.NewRepository(config.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		logger.Fatal("Connect to ClickHouse", zap.Error(err))
	}

	nodeMonitor := monitor.New(
		monitor.NewRPCClient(nil, metrics.NewNodeRPCClient()),
		monitor.Config{
			Seeds:             config.Seeds,
			RefreshInterval:   config.RefreshEvery,
			Workers:           config.PollWorkers,
			RequestsPerSecond: config.PollRPS,
		},
		logger.Named("monitor"),
	)
	go func() {
		if err := nodeMonitor.Start(ctx); !errors.Is(err, context.Canceled) {
			logger.Error("Node monitor stopped", zap.Error(err))
		}
	}()

	service := explorer.New(repo, nodeMonitor, explorer.Config{
		BlockIndexFloor: config.BlockIndexFloor,
		RecencyWindow:   config.RecencyWindow,
		ListingLimit:    config.ListingLimit,
	})

	router := mux.NewRouter()
	transport.NewExplorerHandler(service, logger.Named("transport")).Register(router)
	router.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(router),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
