// Package main provides a one-shot analyzer for a single address or token,
// using in-memory stores. Useful for inspecting FIFO matching and
// classification on demo or ad-hoc data.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"xrpl-money-flow/internal/domain"
	"xrpl-money-flow/internal/fixtures"
	"xrpl-money-flow/internal/orchestrator"
	"xrpl-money-flow/internal/reporting"
	"xrpl-money-flow/internal/storage/memory"
)

func main() {
	address := flag.String("address", fixtures.TraderOne, "Address to analyze")
	token := flag.String("token", fixtures.DemoToken, "Token to build charts for")
	targetAsset := flag.String("target-asset", domain.BaseAsset, "Asset FIFO matching is computed for")
	outputJSON := flag.Bool("json", false, "Output as JSON")
	verbose := flag.Bool("verbose", false, "Verbose orchestrator output")
	flag.Parse()

	logger := log.New(os.Stderr, "[analyze] ", log.LstdFlags)

	if err := domain.ValidateAddress(*address); err != nil {
		logger.Fatalf("invalid address: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Printf("Received signal %v, shutting down...", sig)
		cancel()
	}()

	moneyFlow := memory.NewMoneyFlowStore()
	if err := fixtures.LoadMoneyFlow(ctx, moneyFlow); err != nil {
		logger.Fatalf("load fixtures: %v", err)
	}

	summaryStore := memory.NewSummaryStore()

	orch := orchestrator.New(orchestrator.Options{
		MoneyFlowStore:  moneyFlow,
		SaleRecordStore: memory.NewSaleRecordStore(),
		SummaryStore:    summaryStore,
		TargetAsset:     *targetAsset,
		Addresses:       []string{*address},
		Tokens:          []string{*token},
		Verbose:         *verbose,
	})

	result, err := orch.Run(ctx)
	if err != nil {
		logger.Fatalf("run: %v", err)
	}

	if *outputJSON {
		summary, err := summaryStore.GetByAddress(ctx, *address)
		if err != nil {
			logger.Fatalf("load summary: %v", err)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			logger.Fatalf("encode summary: %v", err)
		}
		return
	}

	report := reporting.Build(*targetAsset, result, time.Now())
	fmt.Print(reporting.RenderMarkdown(report))
}
