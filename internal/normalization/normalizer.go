package normalization

import (
	"strconv"
	"time"

	"xrpl-money-flow/internal/domain"
)

// timestampFormats is the fallback chain for warehouse timestamps, tried in
// order. The first format yielding a valid instant wins.
var timestampFormats = []string{
	"2006-01-02 15:04:05.000", // exact warehouse format with millis
	"2006-01-02 15:04:05",     // warehouse format without millis
	"2006-01-02T15:04:05",     // generic SQL datetime
	time.RFC3339Nano,          // ISO-8601
	time.RFC3339,
}

// ParseTimestamp resolves a raw timestamp string to a UTC instant.
// It never returns an error: if every format fails, the zero instant is
// returned and callers must check validity before use.
func ParseTimestamp(raw string) time.Time {
	for _, layout := range timestampFormats {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// parseAmount parses a textual amount, defaulting to 0 on empty or
// malformed input. Parse failures are not errors.
func parseAmount(raw string) float64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

// NormalizeRow converts a raw warehouse row into a typed MoneyFlowEvent.
// FromAmount is negated so an outflow is represented as negative cost.
func NormalizeRow(raw *domain.RawMoneyFlowRow) *domain.MoneyFlowEvent {
	return &domain.MoneyFlowEvent{
		FromAddress:    raw.FromAddress,
		ToAddress:      raw.ToAddress,
		FromAsset:      raw.FromAsset,
		ToAsset:        raw.ToAsset,
		FromAmount:     -parseAmount(raw.FromAmount),
		ToAmount:       parseAmount(raw.ToAmount),
		InitFromAmount: parseAmount(raw.InitFromAmount),
		InitToAmount:   parseAmount(raw.InitToAmount),
		Kind:           raw.Kind,
		XRPPrice:       parseAmount(raw.XRPPrice),
		Timestamp:      ParseTimestamp(raw.Timestamp),
		LedgerIndex:    raw.LedgerIndex,
		InLedgerIndex:  raw.InLedgerIndex,
		TxHash:         raw.TxHash,
	}
}

// NormalizeRows converts a batch of raw rows, preserving input order.
func NormalizeRows(rows []*domain.RawMoneyFlowRow) []*domain.MoneyFlowEvent {
	events := make([]*domain.MoneyFlowEvent, len(rows))
	for i, r := range rows {
		events[i] = NormalizeRow(r)
	}
	return events
}
