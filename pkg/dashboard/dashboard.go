package dashboard

import (
	"greenvolt.xyz/energy-dashboard-service/pkg/db"
	"greenvolt.xyz/energy-dashboard-service/pkg/models"
)

type IDevice interface {
	RegisterDevice(input *RegisterDeviceInput) (*models.Device, error)
	ListDevices() ([]models.Device, error)
}

type IAlert interface {
	ListAlerts() ([]models.Alert, error)
	MarkAlertRead(alertID string) error
}

type IRecommendation interface {
	ListRecommendations() ([]models.Recommendation, error)
	AcceptRecommendation(recommendationID string) error
	DismissRecommendation(recommendationID string) error
}

type Dashboard struct {
	Db             db.DB
	Device         IDevice
	Alert          IAlert
	Recommendation IRecommendation
}

type ServiceOpts struct {
	Device         IDevice
	Alert          IAlert
	Recommendation IRecommendation
}

func (d *Dashboard) WithServices(opts ServiceOpts) *Dashboard {
	if opts.Device != nil {
		d.Device = opts.Device
	}
	if opts.Alert != nil {
		d.Alert = opts.Alert
	}
	if opts.Recommendation != nil {
		d.Recommendation = opts.Recommendation
	}
	return d
}
