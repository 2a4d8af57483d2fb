package charts

import (
	"math"
	"time"

	"xrpl-money-flow/internal/domain"
)

// volumeSeries sums abs(amount) per bucket for every event side that touches
// the token, from and to counted independently.
func volumeSeries(now time.Time, w domain.ChartWindow, tokenID string, events []*domain.MoneyFlowEvent) []domain.ChartPoint {
	points := emptySeries(now, w)
	for _, e := range events {
		idx, ok := bucketIndex(now, e.Timestamp, w)
		if !ok {
			continue
		}
		if e.FromAsset == tokenID {
			points[idx].Value += math.Abs(e.FromAmount)
		}
		if e.ToAsset == tokenID {
			points[idx].Value += math.Abs(e.ToAmount)
		}
	}
	return points
}

// tradersSeries counts distinct addresses per bucket. An event contributes
// its fromAddress or toAddress for whichever side touches the token.
func tradersSeries(now time.Time, w domain.ChartWindow, tokenID string, events []*domain.MoneyFlowEvent) []domain.ChartPoint {
	buckets := make([]map[string]struct{}, domain.ChartBucketCount)
	for i := range buckets {
		buckets[i] = make(map[string]struct{})
	}

	for _, e := range events {
		idx, ok := bucketIndex(now, e.Timestamp, w)
		if !ok {
			continue
		}
		if e.FromAsset == tokenID && e.FromAddress != "" {
			buckets[idx][e.FromAddress] = struct{}{}
		}
		if e.ToAsset == tokenID && e.ToAddress != "" {
			buckets[idx][e.ToAddress] = struct{}{}
		}
	}

	points := emptySeries(now, w)
	for i := range points {
		points[i].Value = float64(len(buckets[i]))
	}
	return points
}
