package dashboard

import (
	"greenvolt.xyz/energy-dashboard-service/pkg/common"
	"greenvolt.xyz/energy-dashboard-service/pkg/models"
)

// DefaultPaybackHorizonYears is the horizon the payback progress bar
// is rendered against.
const DefaultPaybackHorizonYears = 10

// PaybackProgress maps the payback period onto a 0-100 progress value
// against the given horizon, clamped at 100. Negative input counts as
// no progress; a non-positive horizon falls back to the default.
func PaybackProgress(paybackYears, horizonYears float64) float64 {
	if paybackYears < 0 {
		return 0
	}
	if horizonYears <= 0 {
		horizonYears = DefaultPaybackHorizonYears
	}
	return common.Clamp(paybackYears/horizonYears*100, 0, 100)
}

// NetBenefit combines cumulative savings, annualized revenue, and one
// month of maintenance cost. The mixed units are deliberate: this is
// the headline figure the financial page shows; the annualized cost
// figure lives in AnnualProjection for the breakdown view.
func NetBenefit(overview models.FinancialOverview) float64 {
	return overview.TotalSavings + overview.MonthlyRevenue*12 - overview.MaintenanceCosts
}

type AnnualProjection struct {
	AnnualSavings float64 `json:"annualSavings"`
	AnnualRevenue float64 `json:"annualRevenue"`
	AnnualCosts   float64 `json:"annualCosts"`
}

// ProjectAnnual derives the cost-breakdown figures. Savings are
// averaged over the payback period, floored at one year to keep the
// division meaningful.
func ProjectAnnual(overview models.FinancialOverview) AnnualProjection {
	return AnnualProjection{
		AnnualSavings: overview.TotalSavings / max(overview.PaybackPeriod, 1),
		AnnualRevenue: overview.MonthlyRevenue * 12,
		AnnualCosts:   overview.MaintenanceCosts * 12,
	}
}

// FinancialSummary bundles the overview with every derived figure the
// financial page needs, so the arithmetic has one definition.
type FinancialSummary struct {
	Overview        models.FinancialOverview `json:"overview"`
	NetBenefit      float64                  `json:"netBenefit"`
	PaybackProgress float64                  `json:"paybackProgress"`
	Projection      AnnualProjection         `json:"projection"`
}

func SummarizeFinancial(overview models.FinancialOverview) FinancialSummary {
	return FinancialSummary{
		Overview:        overview,
		NetBenefit:      NetBenefit(overview),
		PaybackProgress: PaybackProgress(overview.PaybackPeriod, DefaultPaybackHorizonYears),
		Projection:      ProjectAnnual(overview),
	}
}
