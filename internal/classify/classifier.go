// Package classify derives categorical trader tags from an aggregated
// account summary.
package classify

import (
	"math"

	"xrpl-money-flow/internal/domain"
)

// Config holds the tunable classification thresholds.
type Config struct {
	// WhaleCostThreshold is the minimum base-asset sale cost for the
	// whale tag.
	WhaleCostThreshold float64

	// DiversificationVolume is the minimum realized per-asset chain volume
	// for an asset to count toward diversification.
	DiversificationVolume float64

	// DiversificationGroupSize separates the small and big asset groups.
	DiversificationGroupSize int
}

// DefaultConfig mirrors the production thresholds.
var DefaultConfig = Config{
	WhaleCostThreshold:       500,
	DiversificationVolume:    100,
	DiversificationGroupSize: 5,
}

// Classify evaluates all rule groups independently and returns the derived
// tags. It never fails: any internal panic yields an empty tag set, so
// downstream consumers must treat "no tags" as either "no signal" or
// "classification failed" - the two are deliberately indistinguishable.
func Classify(s *domain.SmartMoneySummary, cfg Config) (tags []string) {
	defer func() {
		if r := recover(); r != nil {
			tags = []string{}
		}
	}()

	tags = []string{}

	if s.MaxBaseCost >= cfg.WhaleCostThreshold && s.MaxBaseCost > 0 {
		tags = append(tags, domain.TagWhale)
	}

	tags = append(tags, cadenceTag(s))
	tags = append(tags, winRateTag(s.WinRate))
	tags = append(tags, pnlTag(s.TotalPnl))
	tags = append(tags, roiTag(s.AvgRoi))
	tags = append(tags, volumeTag(s.TotalVolume))
	tags = append(tags, diversificationTag(s, cfg))

	return tags
}

// cadenceTag bands the average closed positions per active day.
// daysBetween can come out zero when all activity shares one instant; the
// float quotient is then +Inf and lands in the bot band.
func cadenceTag(s *domain.SmartMoneySummary) string {
	if s.ClosedPositions == 0 || s.FirstHopTime.IsZero() || s.LastHopTime.IsZero() {
		return domain.TagPassiveTrader
	}

	daysBetween := math.Ceil(s.LastHopTime.Sub(s.FirstHopTime).Hours() / 24)
	avgPerDay := math.Round(float64(s.ClosedPositions) / daysBetween)

	switch {
	case avgPerDay > 200:
		return domain.TagBot
	case avgPerDay > 50:
		return domain.TagActiveTrader
	case avgPerDay > 10:
		return domain.TagBasicTrader
	default:
		return domain.TagPassiveTrader
	}
}

func winRateTag(winRate float64) string {
	switch {
	case winRate > 90:
		return domain.TagWinrateVeryHigh
	case winRate > 75:
		return domain.TagWinrateHigh
	case winRate > 50:
		return domain.TagWinrateMid
	default:
		return domain.TagWinrateLow
	}
}

func pnlTag(totalPnl float64) string {
	switch {
	case totalPnl > 100:
		return domain.TagPnlVeryHigh
	case totalPnl > 50:
		return domain.TagPnlHigh
	case totalPnl > 10:
		return domain.TagPnlMid
	case totalPnl > 0:
		return domain.TagPnlLow
	default:
		return domain.TagPnlNegative
	}
}

func roiTag(avgRoi float64) string {
	switch {
	case avgRoi > 0.3:
		return domain.TagRoiVeryHigh
	case avgRoi > 0.1:
		return domain.TagRoiHigh
	case avgRoi > 0.05:
		return domain.TagRoiMid
	default:
		return domain.TagRoiLow
	}
}

func volumeTag(totalVolume float64) string {
	switch {
	case totalVolume > 10000:
		return domain.TagVolumeVeryHigh
	case totalVolume > 1000:
		return domain.TagVolumeHigh
	case totalVolume > 100:
		return domain.TagVolumeMid
	default:
		return domain.TagVolumeLow
	}
}

func diversificationTag(s *domain.SmartMoneySummary, cfg Config) string {
	distinct := 0
	for _, volume := range s.AssetChainVolume {
		if volume > cfg.DiversificationVolume {
			distinct++
		}
	}
	if distinct < cfg.DiversificationGroupSize {
		return domain.TagSmallAssetGroup
	}
	return domain.TagBigAssetGroup
}
