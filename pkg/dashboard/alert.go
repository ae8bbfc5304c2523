package dashboard

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"greenvolt.xyz/energy-dashboard-service/pkg/common"
	"greenvolt.xyz/energy-dashboard-service/pkg/models"
)

func (d *Dashboard) listAlerts() ([]models.Alert, error) {
	var alerts []models.Alert
	err := d.Db.Conn.
		Order("timestamp desc").
		Find(&alerts).Error
	return alerts, err
}

// markAlertRead flips an alert to read. Read is monotonic: marking an
// already-read alert is a no-op. Resolved is set at ingestion and not
// touched here.
func (d *Dashboard) markAlertRead(alertID string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameDashCore,
		zap.String(common.LoggerFieldDashCategory, common.LoggerCategoryAlert),
	)

	var alert models.Alert
	if err := d.Db.Conn.First(&alert, "id = ?", alertID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Kind: "alert", ID: alertID}
		}
		return err
	}

	if alert.Read {
		return nil
	}

	if err := d.Db.Conn.Model(&alert).Update("read", true).Error; err != nil {
		return err
	}

	logger.Info("Marked alert read", zap.String("alert_id", alertID))

	return nil
}

type AlertFilter string

const (
	AlertFilterAll      AlertFilter = "all"
	AlertFilterUnread   AlertFilter = "unread"
	AlertFilterCritical AlertFilter = "critical"
	AlertFilterResolved AlertFilter = "resolved"
)

// FilterAlerts selects alerts by criterion, preserving order. An
// unknown criterion falls back to all so a stale UI filter value never
// blanks the page.
func FilterAlerts(alerts []models.Alert, criterion AlertFilter) []models.Alert {
	var keep func(models.Alert) bool

	switch criterion {
	case AlertFilterUnread:
		keep = func(a models.Alert) bool { return !a.Read }
	case AlertFilterCritical:
		keep = func(a models.Alert) bool { return a.Type == models.AlertTypeCritical }
	case AlertFilterResolved:
		keep = func(a models.Alert) bool { return a.Resolved }
	default:
		return alerts
	}

	filtered := make([]models.Alert, 0, len(alerts))
	for _, alert := range alerts {
		if keep(alert) {
			filtered = append(filtered, alert)
		}
	}
	return filtered
}

type AlertCounts struct {
	Unread   int `json:"unread"`
	Critical int `json:"critical"`
}

// CountAlerts recomputes the badge counts from the full collection.
func CountAlerts(alerts []models.Alert) AlertCounts {
	return common.Reducer(alerts, func(acc AlertCounts, a models.Alert) AlertCounts {
		if !a.Read {
			acc.Unread++
		}
		if a.Type == models.AlertTypeCritical {
			acc.Critical++
		}
		return acc
	}, AlertCounts{})
}

type IAlertImpl struct {
	dash *Dashboard
}

func (ia *IAlertImpl) ListAlerts() ([]models.Alert, error) {
	return ia.dash.listAlerts()
}

func (ia *IAlertImpl) MarkAlertRead(alertID string) error {
	return ia.dash.markAlertRead(alertID)
}

func (d *Dashboard) GetIAlert() IAlert {
	return &IAlertImpl{dash: d}
}
