package charts

import (
	"sort"
	"time"

	"xrpl-money-flow/internal/domain"
	"xrpl-money-flow/internal/lookup"
)

// boundaryGrace excludes short-lived balances that drop to zero right after
// a bucket boundary: if an address's first sample past the bucket end is
// zero and lands within this grace, the address is not a holder for that
// bucket.
const boundaryGrace = 300 * time.Second

// holdersSeries counts, per bucket, the addresses holding a positive token
// balance. Input is each address's balance samples for the token; they are
// sorted by (timestamp, inLedgerIndex) before the scan.
func holdersSeries(now time.Time, w domain.ChartWindow, balances map[string][]domain.SeriesPoint) []domain.ChartPoint {
	sorted := make(map[string][]domain.SeriesPoint, len(balances))
	for address, samples := range balances {
		sorted[address] = sortSamples(samples)
	}

	points := emptySeries(now, w)
	for i := range points {
		start := bucketStart(now, w, i)
		end := start.Add(w.Interval())
		for _, samples := range sorted {
			if countsAsHolder(start, end, samples) {
				points[i].Value++
			}
		}
	}
	return points
}

// countsAsHolder applies the holder-continuity rule for one bucket:
//
//  1. If the first sample after the bucket end is zero and falls within the
//     boundary grace of the end, the address is excluded outright.
//  2. Otherwise the address counts if it had a positive balance at or
//     before start, or any positive sample within [start, end].
//  3. Ending the bucket at exactly zero does not disqualify the address as
//     long as some positive balance existed in the lookback or the range.
func countsAsHolder(start, end time.Time, samples []domain.SeriesPoint) bool {
	firstAfter := lookup.FirstAfter(samples, end)
	if firstAfter != nil && firstAfter.Value == 0 && firstAfter.Timestamp.Sub(end) <= boundaryGrace {
		return false
	}

	lastBefore := lookup.LastAtOrBefore(samples, start)
	inRange := lookup.Between(samples, start, end)

	positiveBefore := lastBefore != nil && lastBefore.Value > 0
	positiveInRange := false
	for i := range inRange {
		if inRange[i].Value > 0 {
			positiveInRange = true
			break
		}
	}
	if !positiveBefore && !positiveInRange {
		return false
	}

	ending := lastBefore
	if len(inRange) > 0 {
		ending = &inRange[len(inRange)-1]
	}
	if ending != nil && ending.Value == 0 {
		return positiveBefore || positiveInRange
	}
	return true
}

func sortSamples(samples []domain.SeriesPoint) []domain.SeriesPoint {
	out := make([]domain.SeriesPoint, len(samples))
	copy(out, samples)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.Before(out[j].Timestamp)
		}
		return out[i].InLedgerIndex < out[j].InLedgerIndex
	})
	return out
}
