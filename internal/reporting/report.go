// Package reporting renders a pipeline run into human-readable output.
package reporting

import (
	"time"

	"xrpl-money-flow/internal/domain"
	"xrpl-money-flow/internal/orchestrator"
)

// Report represents one analytics run.
type Report struct {
	// Metadata
	GeneratedAt time.Time
	TargetAsset string

	// Run summary
	AddressesProcessed int
	SalesCreated       int
	ChartsBuilt        int
	DroppedSamples     int

	// Per-address results (sorted by address)
	Summaries []*domain.SmartMoneySummary

	Errors []string
}

// Build assembles a report from an orchestrator run.
func Build(targetAsset string, result *orchestrator.RunResult, generatedAt time.Time) *Report {
	return &Report{
		GeneratedAt:        generatedAt,
		TargetAsset:        targetAsset,
		AddressesProcessed: result.AddressesProcessed,
		SalesCreated:       result.SalesCreated,
		ChartsBuilt:        result.ChartsBuilt,
		DroppedSamples:     result.DroppedSamples,
		Summaries:          result.Summaries,
		Errors:             result.Errors,
	}
}
