package models

import "time"

type DeviceType string

const (
	DeviceTypeSolar   DeviceType = "solar"
	DeviceTypeWind    DeviceType = "wind"
	DeviceTypeBattery DeviceType = "battery"
	DeviceTypeOther   DeviceType = "other"
)

func (t DeviceType) Valid() bool {
	switch t {
	case DeviceTypeSolar, DeviceTypeWind, DeviceTypeBattery, DeviceTypeOther:
		return true
	}
	return false
}

type DeviceStatus string

const (
	DeviceStatusOnline   DeviceStatus = "online"
	DeviceStatusOffline  DeviceStatus = "offline"
	DeviceStatusCharging DeviceStatus = "charging"
	DeviceStatusWarning  DeviceStatus = "warning"
)

type AlertType string

const (
	AlertTypeInfo     AlertType = "info"
	AlertTypeWarning  AlertType = "warning"
	AlertTypeCritical AlertType = "critical"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Weight orders priorities for ranking: high > medium > low.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type RecommendationCategory string

const (
	CategorySolar       RecommendationCategory = "solar"
	CategoryWind        RecommendationCategory = "wind"
	CategoryBattery     RecommendationCategory = "battery"
	CategoryConsumption RecommendationCategory = "consumption"
)

func (c RecommendationCategory) Valid() bool {
	switch c {
	case CategorySolar, CategoryWind, CategoryBattery, CategoryConsumption:
		return true
	}
	return false
}

type Device struct {
	ID              string       `gorm:"primaryKey" json:"id"`
	Name            string       `json:"name"`
	Type            DeviceType   `gorm:"type:varchar(20);check:type IN ('solar','wind','battery','other')" json:"type"`
	Status          DeviceStatus `gorm:"type:varchar(20);check:status IN ('online','offline','charging','warning')" json:"status"`
	CurrentOutput   float64      `json:"currentOutput"`
	MaxOutput       float64      `json:"maxOutput"`
	Efficiency      float64      `json:"efficiency"`
	LastMaintenance string       `json:"lastMaintenance"`
	CreatedAt       time.Time    `json:"-"`
}

type Alert struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      AlertType `gorm:"type:varchar(20);check:type IN ('info','warning','critical')" json:"type"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
	Read      bool      `json:"read"`
	Resolved  bool      `json:"resolved"`
}

type Recommendation struct {
	ID               string                 `gorm:"primaryKey" json:"id"`
	Title            string                 `json:"title"`
	Description      string                 `json:"description"`
	Priority         Priority               `gorm:"type:varchar(10);check:priority IN ('low','medium','high')" json:"priority"`
	EstimatedSavings float64                `json:"estimatedSavings"`
	Difficulty       Difficulty             `gorm:"type:varchar(10);check:difficulty IN ('easy','medium','hard')" json:"difficulty"`
	Category         RecommendationCategory `gorm:"type:varchar(20);check:category IN ('solar','wind','battery','consumption')" json:"category"`
	CreatedAt        time.Time              `json:"-"`
}

// Time-series value types produced by the upstream source. Immutable
// once fetched; dates are calendar days in "2006-01-02" form.

type ProductionPoint struct {
	Date  string  `json:"date"`
	Solar float64 `json:"solar"`
	Wind  float64 `json:"wind"`
	Total float64 `json:"total"`
}

type ConsumptionPoint struct {
	Date        string  `json:"date"`
	Consumption float64 `json:"consumption"`
	Production  float64 `json:"production"`
}

type FinancialPoint struct {
	Date    string  `json:"date"`
	Savings float64 `json:"savings"`
	Revenue float64 `json:"revenue"`
	Costs   float64 `json:"costs"`
}

// EnergyFlowReading is the raw flow sample reported by the upstream
// source. Grid is signed: negative means export.
type EnergyFlowReading struct {
	Solar       float64 `json:"solar"`
	Wind        float64 `json:"wind"`
	Battery     float64 `json:"battery"`
	Grid        float64 `json:"grid"`
	Consumption float64 `json:"consumption"`
}

type FinancialOverview struct {
	TotalSavings     float64 `json:"totalSavings"`
	MonthlyRevenue   float64 `json:"monthlyRevenue"`
	ROI              float64 `json:"roi"`
	PaybackPeriod    float64 `json:"paybackPeriod"`
	MaintenanceCosts float64 `json:"maintenanceCosts"`
}

type DashboardOverview struct {
	TotalProduction   float64 `json:"totalProduction"`
	CurrentPower      float64 `json:"currentPower"`
	DailyProduction   float64 `json:"dailyProduction"`
	MonthlyProduction float64 `json:"monthlyProduction"`
	SystemStatus      string  `json:"systemStatus"`
	WeatherCondition  string  `json:"weatherCondition"`
	Temperature       float64 `json:"temperature"`
	Savings           float64 `json:"savings"`
	CarbonOffset      float64 `json:"carbonOffset"`
}
