package domain

import "time"

// Trader tag codes.
const (
	TagWhale = "WHALE"

	TagBot           = "BOT"
	TagActiveTrader  = "ACTIVE_TRADER"
	TagBasicTrader   = "BASIC_TRADER"
	TagPassiveTrader = "PASSIVE_TRADER"

	TagWinrateVeryHigh = "WINRATE_VERY_HIGH"
	TagWinrateHigh     = "WINRATE_HIGH"
	TagWinrateMid      = "WINRATE_MID"
	TagWinrateLow      = "WINRATE_LOW"

	TagPnlVeryHigh = "PNL_VERY_HIGH"
	TagPnlHigh     = "PNL_HIGH"
	TagPnlMid      = "PNL_MID"
	TagPnlLow      = "PNL_LOW"
	TagPnlNegative = "PNL_NEGATIVE"

	TagRoiVeryHigh = "ROI_VERY_HIGH"
	TagRoiHigh     = "ROI_HIGH"
	TagRoiMid      = "ROI_MID"
	TagRoiLow      = "ROI_LOW"

	TagVolumeVeryHigh = "VOLUME_VERY_HIGH"
	TagVolumeHigh     = "VOLUME_HIGH"
	TagVolumeMid      = "VOLUME_MID"
	TagVolumeLow      = "VOLUME_LOW"

	TagSmallAssetGroup = "SMALL_ASSET_GROUP"
	TagBigAssetGroup   = "BIG_ASSET_GROUP"
)

// SmartMoneySummary aggregates one account's closed positions and series
// into the inputs the tag classifier consumes, plus the outputs the cache
// collaborator persists.
type SmartMoneySummary struct {
	Address string `json:"address"`

	ClosedPositions int     `json:"closedPositions"`
	Wins            int     `json:"wins"`
	WinRate         float64 `json:"winRate"` // percent, 0..100
	TotalPnl        float64 `json:"totalPnl"`
	AvgRoi          float64 `json:"avgRoi"`
	TotalVolume     float64 `json:"totalVolume"`

	// MaxBaseCost is the largest sale cost funded directly by the base
	// asset, used by the whale rule.
	MaxBaseCost float64 `json:"maxBaseCost"`

	// FirstHopTime/LastHopTime bound the trading activity: first hop of the
	// first sale chain and last hop of the last sale chain.
	FirstHopTime time.Time `json:"firstHopTime"`
	LastHopTime  time.Time `json:"lastHopTime"`

	// AssetChainVolume is the realized volume per asset aggregated over all
	// sale-chain hops, used by the diversification rule.
	AssetChainVolume map[string]float64 `json:"assetChainVolume"`

	Tags     []string     `json:"tags"`
	TopSales []SaleRecord `json:"topSales"`
}
