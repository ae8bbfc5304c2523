package source

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
	"greenvolt.xyz/energy-dashboard-service/pkg/common"
	"greenvolt.xyz/energy-dashboard-service/pkg/models"
)

// Simulated is an in-memory Source for development and tests. Value
// ranges match the historical telemetry this installation reports, so
// charts rendered against it look plausible.
type Simulated struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewSimulated(seed int64) *Simulated {
	return &Simulated{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

func (s *Simulated) between(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *Simulated) ProductionAnalytics(ctx context.Context, period Period) ([]models.ProductionPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	days := period.Days()
	data := make([]models.ProductionPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		data = append(data, models.ProductionPoint{
			Date:  s.now().AddDate(0, 0, -i).Format(time.DateOnly),
			Solar: s.between(20, 70),
			Wind:  s.between(5, 25),
			Total: s.between(25, 95),
		})
	}
	return data, nil
}

func (s *Simulated) ConsumptionAnalytics(ctx context.Context, period Period) ([]models.ConsumptionPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	days := period.Days()
	data := make([]models.ConsumptionPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		data = append(data, models.ConsumptionPoint{
			Date:        s.now().AddDate(0, 0, -i).Format(time.DateOnly),
			Consumption: s.between(20, 80),
			Production:  s.between(25, 95),
		})
	}
	return data, nil
}

func (s *Simulated) Overview(ctx context.Context) (*models.DashboardOverview, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &models.DashboardOverview{
		TotalProduction:   1247.5,
		CurrentPower:      8.2,
		DailyProduction:   45.8,
		MonthlyProduction: 1247.5,
		SystemStatus:      "optimal",
		WeatherCondition:  "sunny",
		Temperature:       24,
		Savings:           2847.32,
		CarbonOffset:      1.2,
	}, nil
}

func (s *Simulated) EnergyFlow(ctx context.Context) (*models.EnergyFlowReading, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &models.EnergyFlowReading{
		Solar:       6.5,
		Wind:        1.7,
		Battery:     2.1,
		Grid:        -0.8,
		Consumption: 9.5,
	}, nil
}

func (s *Simulated) FinancialOverview(ctx context.Context) (*models.FinancialOverview, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &models.FinancialOverview{
		TotalSavings:     12847.32,
		MonthlyRevenue:   456.78,
		ROI:              18.5,
		PaybackPeriod:    6.2,
		MaintenanceCosts: 234.50,
	}, nil
}

func (s *Simulated) FinancialHistory(ctx context.Context, period FinancialPeriod) ([]models.FinancialPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	months := period.Months()
	data := make([]models.FinancialPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		data = append(data, models.FinancialPoint{
			Date:    s.now().AddDate(0, -i, 0).Format(time.DateOnly),
			Savings: s.between(300, 800),
			Revenue: s.between(100, 300),
			Costs:   s.between(50, 150),
		})
	}
	return data, nil
}

// DetailedInsight stands in for the external text-generation service.
// The caller passes the text through unmodified.
func (s *Simulated) DetailedInsight(ctx context.Context, production []models.ProductionPoint, consumption []models.ConsumptionPoint) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	logger := common.GetLoggerWith(common.LoggerNameSource)
	logger.Info("Generating detailed insight",
		zap.Int("production_points", len(production)),
		zap.Int("consumption_points", len(consumption)))

	totalProduction := common.SumBy(production, func(p models.ProductionPoint) float64 { return p.Total })
	totalConsumption := common.SumBy(consumption, func(p models.ConsumptionPoint) float64 { return p.Consumption })

	return fmt.Sprintf(
		"Over the selected period the system produced %.1f kWh against %.1f kWh consumed. "+
			"Solar output dominates daytime generation; shifting flexible loads into peak "+
			"production hours and topping the battery from surplus would cut grid draw further.",
		totalProduction, totalConsumption), nil
}
