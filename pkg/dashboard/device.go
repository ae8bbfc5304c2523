package dashboard

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"greenvolt.xyz/energy-dashboard-service/pkg/common"
	"greenvolt.xyz/energy-dashboard-service/pkg/models"
)

type RegisterDeviceInput struct {
	Name      string
	Type      models.DeviceType
	MaxOutput float64
}

func (d *Dashboard) registerDevice(input *RegisterDeviceInput) (*models.Device, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameDashCore,
		zap.String(common.LoggerFieldDashCategory, common.LoggerCategoryDevice),
	)

	if strings.TrimSpace(input.Name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if !input.Type.Valid() {
		return nil, &ValidationError{Field: "type", Reason: "must be one of solar, wind, battery, other"}
	}
	if input.MaxOutput <= 0 {
		return nil, &ValidationError{Field: "maxOutput", Reason: "must be greater than zero"}
	}

	// New units come up offline with zero output until the next
	// telemetry refresh; maintenance clock starts at registration.
	device := models.Device{
		ID:              uuid.NewString(),
		Name:            input.Name,
		Type:            input.Type,
		Status:          models.DeviceStatusOffline,
		CurrentOutput:   0,
		MaxOutput:       input.MaxOutput,
		Efficiency:      0,
		LastMaintenance: time.Now().Format(time.DateOnly),
	}

	logger.Info("Registering device", zap.Reflect("device", device))

	if err := d.Db.Conn.Create(&device).Error; err != nil {
		return nil, err
	}

	logger.Info("Registered device", zap.Reflect("device", device))

	return &device, nil
}

func (d *Dashboard) listDevices() ([]models.Device, error) {
	var devices []models.Device
	err := d.Db.Conn.
		Order("created_at desc").
		Find(&devices).Error
	return devices, err
}

// DeviceAggregate is the derived fleet view for the monitoring page:
// summed current output, summed capacity, and mean efficiency weighted
// by each unit's maxOutput.
type DeviceAggregate struct {
	TotalOutput        float64 `json:"totalOutput"`
	Capacity           float64 `json:"capacity"`
	LoadRatio          float64 `json:"loadRatio"`
	WeightedEfficiency float64 `json:"weightedEfficiency"`
	OnlineCount        int     `json:"onlineCount"`
}

func AggregateDevices(devices []models.Device) DeviceAggregate {
	agg := DeviceAggregate{
		TotalOutput: common.SumBy(devices, func(d models.Device) float64 { return d.CurrentOutput }),
		Capacity:    common.SumBy(devices, func(d models.Device) float64 { return d.MaxOutput }),
	}

	if agg.Capacity > 0 {
		weighted := common.SumBy(devices, func(d models.Device) float64 { return d.Efficiency * d.MaxOutput })
		agg.WeightedEfficiency = weighted / agg.Capacity
		agg.LoadRatio = agg.TotalOutput / agg.Capacity
	}

	agg.OnlineCount = common.Reducer(devices, func(acc int, d models.Device) int {
		if d.Status == models.DeviceStatusOnline || d.Status == models.DeviceStatusCharging {
			return acc + 1
		}
		return acc
	}, 0)

	return agg
}

type IDeviceImpl struct {
	dash *Dashboard
}

func (id *IDeviceImpl) RegisterDevice(input *RegisterDeviceInput) (*models.Device, error) {
	return id.dash.registerDevice(input)
}

func (id *IDeviceImpl) ListDevices() ([]models.Device, error) {
	return id.dash.listDevices()
}

func (d *Dashboard) GetIDevice() IDevice {
	return &IDeviceImpl{dash: d}
}
