package lookup

import (
	"errors"
	"time"

	"xrpl-money-flow/internal/domain"
)

// ErrNoSamples is returned when a lookup runs against an empty series.
var ErrNoSamples = errors.New("no balance samples available")

// BalanceAt returns the balance at or before the target time.
// If no sample exists before the target, the first available sample is
// used. Returns ErrNoSamples if the slice is empty. Samples must be sorted
// by (timestamp, inLedgerIndex) ascending.
func BalanceAt(target time.Time, samples []domain.SeriesPoint) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrNoSamples
	}

	for i := len(samples) - 1; i >= 0; i-- {
		if !samples[i].Timestamp.After(target) {
			return samples[i].Value, nil
		}
	}

	// No sample before target, use first available
	return samples[0].Value, nil
}

// LastAtOrBefore returns the latest sample with timestamp <= target, or nil
// if none exists.
func LastAtOrBefore(samples []domain.SeriesPoint, target time.Time) *domain.SeriesPoint {
	for i := len(samples) - 1; i >= 0; i-- {
		if !samples[i].Timestamp.After(target) {
			return &samples[i]
		}
	}
	return nil
}

// FirstAfter returns the earliest sample with timestamp > target, or nil if
// none exists.
func FirstAfter(samples []domain.SeriesPoint, target time.Time) *domain.SeriesPoint {
	for i := range samples {
		if samples[i].Timestamp.After(target) {
			return &samples[i]
		}
	}
	return nil
}

// Between returns the samples with from <= timestamp <= to, in order. Both
// bounds are inclusive.
func Between(samples []domain.SeriesPoint, from, to time.Time) []domain.SeriesPoint {
	var out []domain.SeriesPoint
	for i := range samples {
		ts := samples[i].Timestamp
		if ts.Before(from) {
			continue
		}
		if ts.After(to) {
			break
		}
		out = append(out, samples[i])
	}
	return out
}
