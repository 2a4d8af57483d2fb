// Package main provides the analytics pipeline entry point.
// Executes: warehouse fetch → normalization → FIFO matching →
// classification → charts → persistence.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"xrpl-money-flow/internal/classify"
	"xrpl-money-flow/internal/config"
	"xrpl-money-flow/internal/fixtures"
	"xrpl-money-flow/internal/logging"
	"xrpl-money-flow/internal/observability"
	"xrpl-money-flow/internal/orchestrator"
	"xrpl-money-flow/internal/reporting"
	"xrpl-money-flow/internal/storage"
	chstore "xrpl-money-flow/internal/storage/clickhouse"
	"xrpl-money-flow/internal/storage/memory"
	"xrpl-money-flow/internal/storage/migrations"
	pgstore "xrpl-money-flow/internal/storage/postgres"
	redisstore "xrpl-money-flow/internal/storage/redis"
)

func main() {
	configDir := flag.String("config-dir", ".", "Directory containing config.yaml")
	useMemory := flag.Bool("use-memory", false, "Use in-memory storage with fixture data")
	outputFile := flag.String("output", "", "Write the Markdown report to this file (default stdout)")
	verbose := flag.Bool("verbose", false, "Verbose orchestrator output")
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Log.File, cfg.Log.Level)

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.WithField("signal", sig.String()).Info("shutting down")
		cancel()
	}()

	// Metrics endpoint
	if cfg.Metrics.ListenAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", observability.Handler())
			mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("ok"))
			})
			if err := http.ListenAndServe(cfg.Metrics.ListenAddr, mux); err != nil {
				logger.WithError(err).Error("metrics server stopped")
			}
		}()
	}

	stores, cleanup, err := createStores(ctx, cfg, *useMemory, logger)
	if err != nil {
		logger.WithError(err).Fatal("create stores")
	}
	defer cleanup()

	classifierCfg := classify.DefaultConfig
	if cfg.Engine.WhaleCostThreshold > 0 {
		classifierCfg.WhaleCostThreshold = cfg.Engine.WhaleCostThreshold
	}

	orch := orchestrator.New(orchestrator.Options{
		MoneyFlowStore:   stores.moneyFlow,
		SaleRecordStore:  stores.sales,
		SummaryStore:     stores.summaries,
		SeriesCache:      stores.seriesCache,
		ChartCache:       stores.chartCache,
		TargetAsset:      cfg.Engine.TargetAsset,
		Addresses:        cfg.Engine.Addresses,
		Tokens:           cfg.Engine.Tokens,
		CacheTTL:         cfg.Engine.CacheTTL,
		ClassifierConfig: classifierCfg,
		Verbose:          *verbose,
	})

	started := time.Now()
	result, err := orch.Run(ctx)
	if err != nil {
		logger.WithError(err).Fatal("pipeline run")
	}

	logger.WithFields(logrus.Fields{
		"addresses": result.AddressesProcessed,
		"sales":     result.SalesCreated,
		"charts":    result.ChartsBuilt,
		"errors":    len(result.Errors),
		"elapsed":   time.Since(started).String(),
	}).Info("pipeline completed")

	report := reporting.Build(cfg.Engine.TargetAsset, result, time.Now())
	markdown := reporting.RenderMarkdown(report)

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(markdown), 0o644); err != nil {
			logger.WithError(err).Fatal("write report")
		}
		logger.WithField("file", *outputFile).Info("report written")
	} else {
		fmt.Print(markdown)
	}
}

type pipelineStores struct {
	moneyFlow   storage.MoneyFlowStore
	sales       storage.SaleRecordStore
	summaries   storage.SummaryStore
	seriesCache storage.SeriesCache
	chartCache  storage.ChartCache
}

// createStores wires either the in-memory demo stores or the real backends:
// ClickHouse for the warehouse, Postgres for durable results, Redis for the
// TTL caches.
func createStores(ctx context.Context, cfg *config.Config, useMemory bool, logger *logrus.Logger) (*pipelineStores, func(), error) {
	if useMemory {
		moneyFlow := memory.NewMoneyFlowStore()
		if err := fixtures.LoadMoneyFlow(ctx, moneyFlow); err != nil {
			return nil, nil, fmt.Errorf("load fixtures: %w", err)
		}
		return &pipelineStores{
			moneyFlow: moneyFlow,
			sales:     memory.NewSaleRecordStore(),
			summaries: memory.NewSummaryStore(),
		}, func() {}, nil
	}

	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	chConn, err := migrations.RunClickhouseMigrations(ctx, cfg.ClickHouse.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("clickhouse migrations: %w", err)
	}
	cleanups = append(cleanups, func() { chConn.Close() })

	pool, err := pgstore.NewPool(ctx, cfg.Postgres.DSN)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}
	cleanups = append(cleanups, pool.Close)

	if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("postgres migrations: %w", err)
	}

	stores := &pipelineStores{
		moneyFlow: newInstrumentedMoneyFlowStore(chstore.NewMoneyFlowStore(chConn)),
		sales:     pgstore.NewSaleRecordStore(pool),
		summaries: pgstore.NewSummaryStore(pool),
	}

	if cfg.Redis.Addr != "" {
		client, err := redisstore.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.WithError(err).Warn("redis unavailable, caching disabled")
		} else {
			cleanups = append(cleanups, func() { client.Close() })
			stores.seriesCache = redisstore.NewSeriesCache(client)
			stores.chartCache = redisstore.NewChartCache(client)
		}
	}

	return stores, cleanup, nil
}
