package dashboard_test

import (
	. "greenvolt.xyz/energy-dashboard-service/pkg/dashboard"
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"
	"greenvolt.xyz/energy-dashboard-service/pkg/dashboard/mocks"
	"greenvolt.xyz/energy-dashboard-service/pkg/db"
)

func GetMockDashboardWithMemorySqliteDialector(t *testing.T, useMockIDevice, useMockIAlert, useMockIRecommendation bool) (
	*gomock.Controller,
	*Dashboard,
	*mocks.MockIDevice,
	*mocks.MockIAlert,
	*mocks.MockIRecommendation,
) {
	ctrl := gomock.NewController(t)

	mockIDevice := mocks.NewMockIDevice(ctrl)
	mockIAlert := mocks.NewMockIAlert(ctrl)
	mockIRecommendation := mocks.NewMockIRecommendation(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	dashInstance := &Dashboard{Db: *dbInstance}

	deviceService := dashInstance.GetIDevice()
	if useMockIDevice {
		deviceService = mockIDevice
	}

	alertService := dashInstance.GetIAlert()
	if useMockIAlert {
		alertService = mockIAlert
	}

	recommendationService := dashInstance.GetIRecommendation()
	if useMockIRecommendation {
		recommendationService = mockIRecommendation
	}

	dashInstance.WithServices(ServiceOpts{
		Device:         deviceService,
		Alert:          alertService,
		Recommendation: recommendationService,
	})

	return ctrl, dashInstance, mockIDevice, mockIAlert, mockIRecommendation
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
