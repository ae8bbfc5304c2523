package source

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"greenvolt.xyz/energy-dashboard-service/pkg/common"
	"greenvolt.xyz/energy-dashboard-service/pkg/models"
)

// SeedStore loads the demo installation into an empty store: the
// device fleet, its open alerts, and the current optimization
// recommendations. Tables that already hold rows are left alone so a
// restart never duplicates records.
func SeedStore(conn *gorm.DB) error {
	logger := common.GetLoggerWith(common.LoggerNameSource)

	seeded := false

	var deviceCount int64
	if err := conn.Model(&models.Device{}).Count(&deviceCount).Error; err != nil {
		return err
	}
	if deviceCount == 0 {
		if err := conn.Create(seedDevices()).Error; err != nil {
			return err
		}
		seeded = true
	}

	var alertCount int64
	if err := conn.Model(&models.Alert{}).Count(&alertCount).Error; err != nil {
		return err
	}
	if alertCount == 0 {
		if err := conn.Create(seedAlerts()).Error; err != nil {
			return err
		}
		seeded = true
	}

	var recommendationCount int64
	if err := conn.Model(&models.Recommendation{}).Count(&recommendationCount).Error; err != nil {
		return err
	}
	if recommendationCount == 0 {
		if err := conn.Create(seedRecommendations()).Error; err != nil {
			return err
		}
		seeded = true
	}

	if seeded {
		logger.Info("Seeded store with demo installation")
	}

	return nil
}

func seedDevices() []models.Device {
	return []models.Device{
		{
			ID: uuid.NewString(), Name: "Solar Panel Array A", Type: models.DeviceTypeSolar,
			Status: models.DeviceStatusOnline, CurrentOutput: 4.2, MaxOutput: 5.0,
			Efficiency: 84, LastMaintenance: "2024-01-15",
		},
		{
			ID: uuid.NewString(), Name: "Solar Panel Array B", Type: models.DeviceTypeSolar,
			Status: models.DeviceStatusOnline, CurrentOutput: 2.3, MaxOutput: 3.0,
			Efficiency: 77, LastMaintenance: "2024-01-10",
		},
		{
			ID: uuid.NewString(), Name: "Wind Turbine 1", Type: models.DeviceTypeWind,
			Status: models.DeviceStatusOnline, CurrentOutput: 1.7, MaxOutput: 2.5,
			Efficiency: 68, LastMaintenance: "2024-01-20",
		},
		{
			ID: uuid.NewString(), Name: "Battery Storage Unit", Type: models.DeviceTypeBattery,
			Status: models.DeviceStatusCharging, CurrentOutput: 2.1, MaxOutput: 10.0,
			Efficiency: 95, LastMaintenance: "2024-01-05",
		},
	}
}

func seedAlerts() []models.Alert {
	return []models.Alert{
		{
			ID:      uuid.NewString(),
			Title:   "Solar Panel Efficiency Drop",
			Message: "Solar Panel Array B showing 15% efficiency drop. Cleaning recommended.",
			Type:    models.AlertTypeWarning, Timestamp: time.Now().Add(-2 * time.Hour),
		},
		{
			ID:      uuid.NewString(),
			Title:   "High Energy Consumption",
			Message: "Energy consumption 25% above average for this time of day.",
			Type:    models.AlertTypeInfo, Timestamp: time.Now().Add(-3 * time.Hour), Read: true,
		},
		{
			ID:      uuid.NewString(),
			Title:   "Battery Storage Full",
			Message: "Battery storage at 100% capacity. Consider selling excess energy to grid.",
			Type:    models.AlertTypeInfo, Timestamp: time.Now().Add(-4 * time.Hour), Read: true, Resolved: true,
		},
		{
			ID:      uuid.NewString(),
			Title:   "Wind Turbine Offline",
			Message: "Wind Turbine 1 has gone offline. Maintenance required.",
			Type:    models.AlertTypeCritical, Timestamp: time.Now().Add(-20 * time.Hour),
		},
	}
}

func seedRecommendations() []models.Recommendation {
	return []models.Recommendation{
		{
			ID:          uuid.NewString(),
			Title:       "Optimize Solar Panel Angle",
			Description: "Adjust solar panel tilt angle to 35 degrees for optimal winter performance",
			Priority:    models.PriorityHigh, EstimatedSavings: 245.50,
			Difficulty: models.DifficultyMedium, Category: models.CategorySolar,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Schedule High-Energy Appliances",
			Description: "Run dishwasher and washing machine during peak solar production hours (11 AM - 3 PM)",
			Priority:    models.PriorityMedium, EstimatedSavings: 89.30,
			Difficulty: models.DifficultyEasy, Category: models.CategoryConsumption,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Battery Charging Optimization",
			Description: "Adjust battery charging schedule to store excess solar energy during peak production",
			Priority:    models.PriorityHigh, EstimatedSavings: 156.80,
			Difficulty: models.DifficultyEasy, Category: models.CategoryBattery,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Wind Turbine Maintenance",
			Description: "Clean wind turbine blades to improve efficiency by 12%",
			Priority:    models.PriorityMedium, EstimatedSavings: 78.20,
			Difficulty: models.DifficultyHard, Category: models.CategoryWind,
		},
	}
}
