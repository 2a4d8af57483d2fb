package charts

import (
	"testing"
	"time"

	"xrpl-money-flow/internal/domain"
)

const testToken = "USD.rIssuer"

func TestVolumeSeries(t *testing.T) {
	events := []*domain.MoneyFlowEvent{
		{ // buy: token on the receiving side
			FromAsset: domain.BaseAsset, ToAsset: testToken,
			FromAmount: -200, ToAmount: 100,
			Timestamp: anchor.Add(-30 * time.Second),
		},
		{ // sell: token on the sending side, absolute value counted
			FromAsset: testToken, ToAsset: domain.BaseAsset,
			FromAmount: -30, ToAmount: 80,
			Timestamp: anchor.Add(-30 * time.Second),
		},
		{ // older event, separate bucket
			FromAsset: domain.BaseAsset, ToAsset: testToken,
			FromAmount: -10, ToAmount: 5,
			Timestamp: anchor.Add(-10 * time.Minute),
		},
		{ // outside the window
			FromAsset: domain.BaseAsset, ToAsset: testToken,
			FromAmount: -999, ToAmount: 999,
			Timestamp: anchor.Add(-2 * time.Hour),
		},
		{ // token on neither side
			FromAsset: domain.BaseAsset, ToAsset: "AAA.rIss",
			FromAmount: -50, ToAmount: 25,
			Timestamp: anchor.Add(-30 * time.Second),
		},
	}

	points := volumeSeries(anchor, hourWindow, testToken, events)

	if points[59].Value != 130 {
		t.Errorf("newest bucket = %f, want 130 (100 bought + 30 sold)", points[59].Value)
	}
	if points[49].Value != 5 {
		t.Errorf("bucket 49 = %f, want 5", points[49].Value)
	}

	var total float64
	for _, p := range points {
		total += p.Value
	}
	if total != 135 {
		t.Errorf("window total = %f, want 135 (out-of-window and foreign flows excluded)", total)
	}
}

func TestVolumeSeries_SelfSwapCountsBothSides(t *testing.T) {
	events := []*domain.MoneyFlowEvent{{
		FromAsset: testToken, ToAsset: testToken,
		FromAmount: -10, ToAmount: 10,
		Timestamp: anchor,
	}}

	points := volumeSeries(anchor, hourWindow, testToken, events)

	if points[59].Value != 20 {
		t.Errorf("self swap volume = %f, want 20", points[59].Value)
	}
}

func TestTradersSeries_Distinct(t *testing.T) {
	events := []*domain.MoneyFlowEvent{
		{
			FromAddress: "rA", ToAddress: "rA",
			FromAsset: domain.BaseAsset, ToAsset: testToken,
			Timestamp: anchor.Add(-30 * time.Second),
		},
		{ // same address again in the same bucket
			FromAddress: "rA", ToAddress: "rA",
			FromAsset: testToken, ToAsset: domain.BaseAsset,
			Timestamp: anchor.Add(-40 * time.Second),
		},
		{
			FromAddress: "rB", ToAddress: "rC",
			FromAsset: testToken, ToAsset: testToken,
			Timestamp: anchor.Add(-45 * time.Second),
		},
		{ // token not involved: no contribution
			FromAddress: "rD", ToAddress: "rD",
			FromAsset: domain.BaseAsset, ToAsset: "AAA.rIss",
			Timestamp: anchor.Add(-10 * time.Second),
		},
		{ // empty address skipped
			FromAddress: "", ToAddress: "",
			FromAsset: testToken, ToAsset: domain.BaseAsset,
			Timestamp: anchor.Add(-20 * time.Second),
		},
	}

	points := tradersSeries(anchor, hourWindow, testToken, events)

	if points[59].Value != 3 {
		t.Errorf("newest bucket = %f, want 3 distinct traders (rA, rB, rC)", points[59].Value)
	}
	if points[0].Value != 0 {
		t.Errorf("oldest bucket = %f, want 0", points[0].Value)
	}
}
