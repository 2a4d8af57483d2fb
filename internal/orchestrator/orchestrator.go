// Package orchestrator provides E2E pipeline orchestration.
// It coordinates: warehouse fetch → normalization → FIFO matching →
// series/classification → charts → persistence.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"xrpl-money-flow/internal/charts"
	"xrpl-money-flow/internal/classify"
	"xrpl-money-flow/internal/domain"
	"xrpl-money-flow/internal/ledger"
	"xrpl-money-flow/internal/normalization"
	"xrpl-money-flow/internal/observability"
	"xrpl-money-flow/internal/series"
	"xrpl-money-flow/internal/storage"
)

// Orchestrator coordinates the analytics pipeline execution.
type Orchestrator struct {
	// Stores
	moneyFlowStore  storage.MoneyFlowStore
	saleRecordStore storage.SaleRecordStore
	summaryStore    storage.SummaryStore
	seriesCache     storage.SeriesCache
	chartCache      storage.ChartCache

	// Run parameters
	targetAsset   string
	addresses     []string
	tokens        []string
	cacheTTL      time.Duration
	classifierCfg classify.Config
	now           time.Time

	verbose bool
}

// Options for creating Orchestrator.
type Options struct {
	// Required stores
	MoneyFlowStore  storage.MoneyFlowStore
	SaleRecordStore storage.SaleRecordStore
	SummaryStore    storage.SummaryStore

	// Optional caches; nil skips caching
	SeriesCache storage.SeriesCache
	ChartCache  storage.ChartCache

	// TargetAsset is the asset FIFO matching is computed for.
	TargetAsset string

	// Addresses to analyze. Empty derives the set from the token rows.
	Addresses []string

	// Tokens to build chart bundles for.
	Tokens []string

	CacheTTL         time.Duration
	ClassifierConfig classify.Config

	// Now anchors the chart windows; zero means time.Now at Run.
	Now time.Time

	Verbose bool
}

// New creates a new Orchestrator.
func New(opts Options) *Orchestrator {
	cfg := opts.ClassifierConfig
	if cfg == (classify.Config{}) {
		cfg = classify.DefaultConfig
	}
	return &Orchestrator{
		moneyFlowStore:  opts.MoneyFlowStore,
		saleRecordStore: opts.SaleRecordStore,
		summaryStore:    opts.SummaryStore,
		seriesCache:     opts.SeriesCache,
		chartCache:      opts.ChartCache,
		targetAsset:     opts.TargetAsset,
		addresses:       opts.Addresses,
		tokens:          opts.Tokens,
		cacheTTL:        opts.CacheTTL,
		classifierCfg:   cfg,
		now:             opts.Now,
		verbose:         opts.Verbose,
	}
}

// RunResult contains results from orchestrator execution.
type RunResult struct {
	AddressesProcessed int
	SalesCreated       int
	SummariesStored    int
	ChartsBuilt        int
	DroppedSamples     int
	Summaries          []*domain.SmartMoneySummary
	Errors             []string
}

// Run executes the full pipeline.
// Phases:
//  1. Resolve the address set
//  2. Per address: normalize, FIFO-match, accumulate series, classify, persist
//  3. Per token: build and cache chart bundles
func (o *Orchestrator) Run(ctx context.Context) (*RunResult, error) {
	started := time.Now()
	result := &RunResult{}

	now := o.now
	if now.IsZero() {
		now = time.Now()
	}

	o.log("Phase 1: Resolving addresses...")
	addresses, err := o.resolveAddresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("phase 1 (resolve addresses) failed: %w", err)
	}
	o.log("  Found %d addresses", len(addresses))

	o.log("Phase 2: Analyzing addresses...")
	for _, address := range addresses {
		if err := o.analyzeAddress(ctx, address, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("analyze %s: %v", address, err))
			continue
		}
		result.AddressesProcessed++
	}
	o.log("  Analyzed %d addresses (%d errors)", result.AddressesProcessed, len(result.Errors))

	o.log("Phase 3: Building charts...")
	builder := charts.NewBuilder(now)
	for _, token := range o.tokens {
		if err := o.buildCharts(ctx, builder, token); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("charts %s: %v", token, err))
			continue
		}
		result.ChartsBuilt++
	}
	o.log("  Built %d chart bundles", result.ChartsBuilt)

	o.log("Pipeline completed: %d addresses, %d sales, %d charts",
		result.AddressesProcessed, result.SalesCreated, result.ChartsBuilt)

	status := "ok"
	if len(result.Errors) > 0 {
		status = "partial"
	}
	observability.RecordPipelineRun("run", status, time.Since(started).Seconds())
	observability.DefaultMetrics.LastSuccessfulPipeline.SetToCurrentTime()

	return result, nil
}

// resolveAddresses returns the configured addresses, or every distinct
// address seen in the configured tokens' rows when none are configured.
func (o *Orchestrator) resolveAddresses(ctx context.Context) ([]string, error) {
	if len(o.addresses) > 0 {
		return o.addresses, nil
	}

	seen := make(map[string]struct{})
	var addresses []string
	for _, token := range o.tokens {
		rows, err := o.moneyFlowStore.GetByAsset(ctx, token)
		if err != nil {
			return nil, fmt.Errorf("load rows for %s: %w", token, err)
		}
		for _, r := range rows {
			for _, addr := range []string{r.FromAddress, r.ToAddress} {
				if addr == "" {
					continue
				}
				if _, ok := seen[addr]; !ok {
					seen[addr] = struct{}{}
					addresses = append(addresses, addr)
				}
			}
		}
	}
	return addresses, nil
}

// analyzeAddress runs FIFO matching, series accumulation, and
// classification for one address, persisting every output.
func (o *Orchestrator) analyzeAddress(ctx context.Context, address string, result *RunResult) error {
	rows, err := o.moneyFlowStore.GetByAddress(ctx, address)
	if err != nil {
		return fmt.Errorf("load rows: %w", err)
	}

	events := normalization.NormalizeRows(rows)
	normalization.SortEvents(events)

	ldg := ledger.New(o.targetAsset)
	sales := ldg.ProcessAll(address, events)

	if len(sales) > 0 {
		if err := o.saleRecordStore.InsertBulk(ctx, sales); err != nil {
			// Already computed on a previous run
			if !errors.Is(err, storage.ErrDuplicateKey) {
				return fmt.Errorf("store sales: %w", err)
			}
		} else {
			result.SalesCreated += len(sales)
			for range sales {
				observability.RecordSale()
			}
		}
	}

	res := series.Accumulate(address, events)
	result.DroppedSamples += res.DroppedSamples
	if o.seriesCache != nil {
		if err := o.seriesCache.Put(ctx, res.Series, o.cacheTTL); err != nil {
			return fmt.Errorf("cache series: %w", err)
		}
	}

	summary := classify.BuildSummary(address, sales, res.Series)
	summary.Tags = classify.Classify(summary, o.classifierCfg)
	observability.RecordTags(summary.Tags)

	if err := o.summaryStore.Upsert(ctx, summary); err != nil {
		return fmt.Errorf("store summary: %w", err)
	}
	result.SummariesStored++
	result.Summaries = append(result.Summaries, summary)

	return nil
}

// buildCharts builds and caches the chart bundle for one token.
func (o *Orchestrator) buildCharts(ctx context.Context, builder *charts.Builder, token string) error {
	rows, err := o.moneyFlowStore.GetByAsset(ctx, token)
	if err != nil {
		return fmt.Errorf("load rows: %w", err)
	}

	events := normalization.NormalizeRows(rows)
	normalization.SortEvents(events)

	bundle := builder.Build(token, events, tokenBalances(token, events))
	observability.DefaultMetrics.ChartBundlesBuilt.Inc()

	if o.chartCache != nil {
		if err := o.chartCache.Put(ctx, bundle, o.cacheTTL); err != nil {
			return fmt.Errorf("cache charts: %w", err)
		}
	}
	return nil
}

// tokenBalances accumulates, per address touching the token, that address's
// balance samples for the token. The holder scan consumes these.
func tokenBalances(token string, events []*domain.MoneyFlowEvent) map[string][]domain.SeriesPoint {
	seen := make(map[string]struct{})
	var addresses []string
	for _, e := range events {
		for _, addr := range []string{e.FromAddress, e.ToAddress} {
			if addr == "" {
				continue
			}
			if _, ok := seen[addr]; !ok {
				seen[addr] = struct{}{}
				addresses = append(addresses, addr)
			}
		}
	}

	balances := make(map[string][]domain.SeriesPoint, len(addresses))
	for _, addr := range addresses {
		res := series.Accumulate(addr, events)
		if samples := res.Series.Balances[token]; len(samples) > 0 {
			balances[addr] = samples
		}
	}
	return balances
}

func (o *Orchestrator) log(format string, args ...interface{}) {
	if o.verbose {
		log.Printf("[orchestrator] "+format, args...)
	}
}
