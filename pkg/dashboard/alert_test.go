package dashboard_test

import (
	. "greenvolt.xyz/energy-dashboard-service/pkg/dashboard"
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"greenvolt.xyz/energy-dashboard-service/pkg/common"
	"greenvolt.xyz/energy-dashboard-service/pkg/models"
	_ "greenvolt.xyz/energy-dashboard-service/pkg/testing"
)

func seedAlert(t *testing.T, dashObj *Dashboard, alertType models.AlertType, read, resolved bool) models.Alert {
	t.Helper()

	alert := models.Alert{
		ID:        uuid.NewString(),
		Title:     "Wind Turbine Offline",
		Message:   "Wind Turbine 1 has gone offline. Maintenance required.",
		Type:      alertType,
		Timestamp: time.Now(),
		Read:      read,
		Resolved:  resolved,
	}
	require.NoError(t, dashObj.Db.Conn.Create(&alert).Error)
	return alert
}

func TestMarkAlertRead(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, dashObj, _, _, _ := GetMockDashboardWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	alert := seedAlert(t, dashObj, models.AlertTypeCritical, false, false)

	err := dashObj.Alert.MarkAlertRead(alert.ID)
	assert.NoError(t, err)

	var saved models.Alert
	require.NoError(t, dashObj.Db.Conn.First(&saved, "id = ?", alert.ID).Error)
	assert.True(t, saved.Read)
	assert.False(t, saved.Resolved, "resolved must not change")
}

func TestMarkAlertRead_Idempotent(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, dashObj, _, _, _ := GetMockDashboardWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	alert := seedAlert(t, dashObj, models.AlertTypeInfo, false, false)

	assert.NoError(t, dashObj.Alert.MarkAlertRead(alert.ID))
	assert.NoError(t, dashObj.Alert.MarkAlertRead(alert.ID))

	var saved models.Alert
	require.NoError(t, dashObj.Db.Conn.First(&saved, "id = ?", alert.ID).Error)
	assert.True(t, saved.Read)
}

func TestMarkAlertRead_NotFound(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, dashObj, _, _, _ := GetMockDashboardWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	err := dashObj.Alert.MarkAlertRead(uuid.NewString())

	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "alert", notFoundErr.Kind)
}

func TestMarkAlertRead_WithLog(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	ctrl, dashObj, _, _, _ := GetMockDashboardWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	alert := seedAlert(t, dashObj, models.AlertTypeWarning, false, false)
	require.NoError(t, dashObj.Alert.MarkAlertRead(alert.ID))

	logs := ParseLogs(buf)

	found := false
	for _, log := range logs {
		lobj := log.(map[string]any)
		if lobj["category"] == "alert" &&
			lobj["logger"] == "dash_core" &&
			lobj["msg"] == "Marked alert read" &&
			lobj["alert_id"] == alert.ID {
			found = true
		}
	}
	assert.True(t, found, "log not found")
}

func alertFixture() []models.Alert {
	return []models.Alert{
		{ID: "1", Title: "Solar Panel Efficiency Drop", Type: models.AlertTypeWarning, Read: false, Resolved: false},
		{ID: "2", Title: "High Energy Consumption", Type: models.AlertTypeInfo, Read: true, Resolved: false},
		{ID: "3", Title: "Battery Storage Full", Type: models.AlertTypeInfo, Read: true, Resolved: true},
		{ID: "4", Title: "Wind Turbine Offline", Type: models.AlertTypeCritical, Read: false, Resolved: false},
	}
}

func TestFilterAlerts(t *testing.T) {
	alerts := alertFixture()

	all := FilterAlerts(alerts, AlertFilterAll)
	assert.Equal(t, alerts, all, "all must return the input set unchanged in order")

	unread := FilterAlerts(alerts, AlertFilterUnread)
	require.Len(t, unread, 2)
	assert.Equal(t, "1", unread[0].ID)
	assert.Equal(t, "4", unread[1].ID)

	critical := FilterAlerts(alerts, AlertFilterCritical)
	require.Len(t, critical, 1)
	assert.Equal(t, "4", critical[0].ID)

	resolved := FilterAlerts(alerts, AlertFilterResolved)
	require.Len(t, resolved, 1)
	assert.Equal(t, "3", resolved[0].ID)
}

func TestFilterAlerts_UnknownCriterionFallsBackToAll(t *testing.T) {
	alerts := alertFixture()

	filtered := FilterAlerts(alerts, AlertFilter("archived"))
	assert.Equal(t, alerts, filtered)
}

func TestCountAlerts(t *testing.T) {
	counts := CountAlerts([]models.Alert{
		{Read: false, Type: models.AlertTypeCritical, Resolved: false},
		{Read: true, Type: models.AlertTypeInfo, Resolved: true},
	})

	assert.Equal(t, AlertCounts{Unread: 1, Critical: 1}, counts)
}

func TestCountAlerts_Empty(t *testing.T) {
	assert.Equal(t, AlertCounts{}, CountAlerts(nil))
}
