// Package source is the upstream data boundary of the dashboard: the
// external backend that owns raw snapshots, time series, and detailed
// insight text. The core consumes it through the Source interface and
// treats every response as opaque input; whether the concrete
// implementation talks to a network or simulates locally is invisible
// to callers.
package source

import (
	"context"

	"greenvolt.xyz/energy-dashboard-service/pkg/models"
)

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

func ParsePeriod(s string) (Period, bool) {
	switch Period(s) {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return Period(s), true
	}
	return "", false
}

func (p Period) Days() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodYear:
		return 365
	default:
		return 30
	}
}

type FinancialPeriod string

const (
	FinancialPeriodSixMonths FinancialPeriod = "6months"
	FinancialPeriodYear      FinancialPeriod = "year"
)

func ParseFinancialPeriod(s string) (FinancialPeriod, bool) {
	switch FinancialPeriod(s) {
	case FinancialPeriodSixMonths, FinancialPeriodYear:
		return FinancialPeriod(s), true
	}
	return "", false
}

func (p FinancialPeriod) Months() int {
	if p == FinancialPeriodYear {
		return 12
	}
	return 6
}

type Source interface {
	ProductionAnalytics(ctx context.Context, period Period) ([]models.ProductionPoint, error)
	ConsumptionAnalytics(ctx context.Context, period Period) ([]models.ConsumptionPoint, error)
	Overview(ctx context.Context) (*models.DashboardOverview, error)
	EnergyFlow(ctx context.Context) (*models.EnergyFlowReading, error)
	FinancialOverview(ctx context.Context) (*models.FinancialOverview, error)
	FinancialHistory(ctx context.Context, period FinancialPeriod) ([]models.FinancialPoint, error)
	DetailedInsight(ctx context.Context, production []models.ProductionPoint, consumption []models.ConsumptionPoint) (string, error)
}
