package dashboard

import (
	"math"

	"greenvolt.xyz/energy-dashboard-service/pkg/models"
)

// EnergyFlowSnapshot is the balanced point-in-time flow view consumed
// by the dashboard and monitoring pages. All figures are kW; Grid is
// signed (negative = export).
type EnergyFlowSnapshot struct {
	Solar       float64 `json:"solar"`
	Wind        float64 `json:"wind"`
	Battery     float64 `json:"battery"`
	Grid        float64 `json:"grid"`
	Consumption float64 `json:"consumption"`

	BalanceWarning *BalanceWarning `json:"balanceWarning,omitempty"`
}

// Supply is the summed supply side: solar + wind + battery + grid.
func (s EnergyFlowSnapshot) Supply() float64 {
	return s.Solar + s.Wind + s.Battery + s.Grid
}

// Snapshot partitions device output by type and joins the supplied
// grid exchange. A non-negative reportedConsumption is taken as the
// consumption figure and checked against summed supply: a mismatch
// beyond tolerance attaches a BalanceWarning, since field telemetry
// may be inconsistent. A negative reportedConsumption means the
// upstream reported nothing, and consumption falls back to the
// residual supply, which balances by construction.
func Snapshot(devices []models.Device, gridExchange, reportedConsumption, tolerance float64) EnergyFlowSnapshot {
	snap := EnergyFlowSnapshot{Grid: gridExchange}

	for _, device := range devices {
		switch device.Type {
		case models.DeviceTypeSolar:
			snap.Solar += device.CurrentOutput
		case models.DeviceTypeWind:
			snap.Wind += device.CurrentOutput
		case models.DeviceTypeBattery:
			snap.Battery += device.CurrentOutput
		}
	}

	if reportedConsumption < 0 {
		snap.Consumption = snap.Supply()
		return snap
	}

	snap.Consumption = reportedConsumption
	if math.Abs(snap.Supply()-reportedConsumption) > tolerance {
		snap.BalanceWarning = &BalanceWarning{
			Supply:      snap.Supply(),
			Consumption: reportedConsumption,
			Tolerance:   tolerance,
		}
	}
	return snap
}
