package domain

import "time"

// ChartBucketCount is the fixed number of buckets per trailing window.
const ChartBucketCount = 60

// Chart window identifiers.
const (
	WindowHour  = "hour"
	WindowDay   = "day"
	WindowWeek  = "week"
	WindowMonth = "month"
)

// ChartWindow is one trailing time window divided into equal buckets.
type ChartWindow struct {
	ID       string
	Duration time.Duration
}

// ChartWindows lists the four supported trailing windows.
var ChartWindows = []ChartWindow{
	{ID: WindowHour, Duration: time.Hour},
	{ID: WindowDay, Duration: 24 * time.Hour},
	{ID: WindowWeek, Duration: 7 * 24 * time.Hour},
	{ID: WindowMonth, Duration: 30 * 24 * time.Hour},
}

// Interval returns the bucket width for this window.
func (w ChartWindow) Interval() time.Duration {
	return w.Duration / ChartBucketCount
}

// ChartPoint is one bucket of a chart series. Timestamp is the bucket start.
type ChartPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// ChartSeries maps window id ("hour", "day", "week", "month") to its
// 60-bucket series, oldest bucket first.
type ChartSeries map[string][]ChartPoint

// ChartBundle groups the three chart kinds computed for one token.
type ChartBundle struct {
	TokenID string      `json:"tokenId"`
	Volume  ChartSeries `json:"volume"`
	Traders ChartSeries `json:"traders"`
	Holders ChartSeries `json:"holders"`
}
