package dashboard

import (
	"fmt"

	"greenvolt.xyz/energy-dashboard-service/pkg/common"
	"greenvolt.xyz/energy-dashboard-service/pkg/models"
)

// TrendWindow is the number of trailing points compared against the
// window immediately before it.
const TrendWindow = 7

// Trend is the percent change between the mean of the last TrendWindow
// points and the mean of the up-to-TrendWindow points preceding them.
// Series shorter than two full windows use what they have; the result
// is 0 when there is no previous window to compare against, when the
// previous mean is zero, or when the series has fewer than 2 points.
func Trend[T any](points []T, value func(T) float64) float64 {
	if len(points) < 2 {
		return 0
	}

	recentLo := max(0, len(points)-TrendWindow)
	previousLo := max(0, len(points)-2*TrendWindow)

	recent := points[recentLo:]
	previous := points[previousLo:recentLo]

	if len(previous) == 0 {
		return 0
	}

	recentMean := common.SumBy(recent, value) / float64(len(recent))
	previousMean := common.SumBy(previous, value) / float64(len(previous))

	if previousMean == 0 {
		return 0
	}

	return (recentMean - previousMean) / previousMean * 100
}

// EfficiencyRatio relates production to consumption as a percentage,
// 0 when nothing was consumed.
func EfficiencyRatio(totalProduction, totalConsumption float64) float64 {
	if totalConsumption == 0 {
		return 0
	}
	return totalProduction / totalConsumption * 100
}

const (
	BalanceSurplus = "Surplus"
	BalanceDeficit = "Deficit"
)

// AnalyticsSummary is the derived period view backing the analytics
// summary cards.
type AnalyticsSummary struct {
	TotalProduction  float64 `json:"totalProduction"`
	TotalConsumption float64 `json:"totalConsumption"`
	ProductionTrend  float64 `json:"productionTrend"`
	ConsumptionTrend float64 `json:"consumptionTrend"`
	NetEnergy        float64 `json:"netEnergy"`
	Balance          string  `json:"balance"`
	EfficiencyRatio  float64 `json:"efficiencyRatio"`
}

// Summarize derives period totals, both trends, and the net energy
// balance from the two series. Production totals follow each point's
// Total field, which is the source of truth even when it is not
// exactly solar+wind.
func Summarize(production []models.ProductionPoint, consumption []models.ConsumptionPoint) AnalyticsSummary {
	summary := AnalyticsSummary{
		TotalProduction:  common.SumBy(production, func(p models.ProductionPoint) float64 { return p.Total }),
		TotalConsumption: common.SumBy(consumption, func(p models.ConsumptionPoint) float64 { return p.Consumption }),
		ProductionTrend:  Trend(production, func(p models.ProductionPoint) float64 { return p.Total }),
		ConsumptionTrend: Trend(consumption, func(p models.ConsumptionPoint) float64 { return p.Consumption }),
	}

	summary.NetEnergy = summary.TotalProduction - summary.TotalConsumption
	if summary.TotalProduction > summary.TotalConsumption {
		summary.Balance = BalanceSurplus
	} else {
		summary.Balance = BalanceDeficit
	}
	summary.EfficiencyRatio = EfficiencyRatio(summary.TotalProduction, summary.TotalConsumption)

	return summary
}

// GenerateInsight renders the deterministic one-line insight from the
// trend signs and magnitudes. Detailed insight text beyond this
// template comes from the external insight collaborator and passes
// through this layer unmodified.
func GenerateInsight(summary AnalyticsSummary) string {
	productionWord := "higher"
	if summary.ProductionTrend < 0 {
		productionWord = "lower"
	}
	consumptionWord := "lower"
	if summary.ConsumptionTrend < 0 {
		consumptionWord = "higher"
	}

	return fmt.Sprintf(
		"Based on the current trends, your energy production is %.1f%% %s and consumption is %.1f%% %s than the previous period.",
		summary.ProductionTrend, productionWord,
		summary.ConsumptionTrend, consumptionWord,
	)
}
