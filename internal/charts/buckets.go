// Package charts builds fixed-resolution trailing time-window series
// (volume, distinct traders, holders) for a token.
package charts

import (
	"time"

	"xrpl-money-flow/internal/domain"
)

// bucketIndex maps an event time into the 60-bucket array of a window
// anchored at now. Index 0 is the oldest bucket, 59 the newest; an event at
// exactly now lands in bucket 59. Events outside [now-W, now] are excluded
// from that window (ok=false). An event at exactly now-W floors past the
// array and is clamped to bucket 0.
func bucketIndex(now, eventTime time.Time, w domain.ChartWindow) (int, bool) {
	timeDiff := now.Sub(eventTime)
	if timeDiff < 0 || timeDiff > w.Duration {
		return 0, false
	}
	idx := domain.ChartBucketCount - 1 - int(timeDiff/w.Interval())
	if idx < 0 {
		idx = 0
	}
	if idx > domain.ChartBucketCount-1 {
		idx = domain.ChartBucketCount - 1
	}
	return idx, true
}

// bucketStart returns the start time of bucket idx in a window anchored at now.
func bucketStart(now time.Time, w domain.ChartWindow, idx int) time.Time {
	return now.Add(-w.Duration + time.Duration(idx)*w.Interval())
}

// emptySeries returns 60 zero-valued points stamped with each bucket's start.
func emptySeries(now time.Time, w domain.ChartWindow) []domain.ChartPoint {
	points := make([]domain.ChartPoint, domain.ChartBucketCount)
	for i := range points {
		points[i] = domain.ChartPoint{Timestamp: bucketStart(now, w, i)}
	}
	return points
}
