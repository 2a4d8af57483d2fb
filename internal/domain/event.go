package domain

import "time"

// BaseAsset is the ledger's native asset identifier.
const BaseAsset = "XRP"

// Event kinds as delivered by the warehouse.
const (
	KindTransfer = "transfer"
	KindSwap     = "swap"
	KindDexOffer = "dexOffer"
	KindPayment  = "payment"
	KindFee      = "fee"
)

// RawMoneyFlowRow is a money-flow row exactly as the warehouse returns it:
// amounts and the timestamp are text, everything numeric still unparsed.
type RawMoneyFlowRow struct {
	FromAddress    string
	ToAddress      string
	FromAsset      string
	ToAsset        string
	FromAmount     string
	ToAmount       string
	InitFromAmount string
	InitToAmount   string
	Kind           string
	XRPPrice       string
	Timestamp      string
	LedgerIndex    int64
	InLedgerIndex  int64
	TxHash         string
}

// MoneyFlowEvent is a normalized asset-transfer event.
//
// FromAmount is the signed cost: it is negated during normalization so an
// outflow is negative. The only valid processing order is
// (LedgerIndex, InLedgerIndex) ascending; FIFO matching and running-balance
// computation are incorrect under any other order.
type MoneyFlowEvent struct {
	FromAddress    string
	ToAddress      string
	FromAsset      string // "XRP" or "currency.issuer"
	ToAsset        string
	FromAmount     float64 // signed, negative = outflow
	ToAmount       float64 // received, positive
	InitFromAmount float64 // running-balance anchor on the from side
	InitToAmount   float64 // running-balance anchor on the to side
	Kind           string
	XRPPrice       float64 // usd price of the base asset at this event
	Timestamp      time.Time
	LedgerIndex    int64
	InLedgerIndex  int64
	TxHash         string
}

// HasValidTimestamp reports whether normalization produced a usable instant.
// Rows whose timestamp failed every parse format carry a zero instant.
func (e *MoneyFlowEvent) HasValidTimestamp() bool {
	return !e.Timestamp.IsZero()
}
