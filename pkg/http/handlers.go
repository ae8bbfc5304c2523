package http

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"greenvolt.xyz/energy-dashboard-service/pkg/dashboard"
	"greenvolt.xyz/energy-dashboard-service/pkg/models"
	"greenvolt.xyz/energy-dashboard-service/pkg/source"
)

// respondError maps the service error taxonomy onto HTTP statuses:
// bad input 400, unknown id 404, upstream source failure 502,
// everything else 500.
func respondError(c *gin.Context, err error) {
	var validationErr *dashboard.ValidationError
	var notFoundErr *dashboard.NotFoundError
	var upstreamErr *dashboard.UpstreamFailure

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &upstreamErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type RegisterDeviceRequest struct {
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	MaxOutput float64 `json:"maxOutput"`
}

var registerDeviceRequestSchema = z.Struct(z.Shape{
	"Name":      z.String().Required(),
	"Type":      z.String().OneOf([]string{"solar", "wind", "battery", "other"}).Required(),
	"MaxOutput": z.Float64().Required(),
})

func (rs *RestfulServer) PostDevice(c *gin.Context) {
	var req RegisterDeviceRequest
	if err := registerDeviceRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	device, err := rs.Dash.Device.RegisterDevice(&dashboard.RegisterDeviceInput{
		Name:      req.Name,
		Type:      models.DeviceType(req.Type),
		MaxOutput: req.MaxOutput,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Device added successfully",
		"device":  device,
	})
}

func (rs *RestfulServer) GetDevices(c *gin.Context) {
	devices, err := rs.Dash.Device.ListDevices()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"devices":   devices,
		"aggregate": dashboard.AggregateDevices(devices),
	})
}

func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	alerts, err := rs.Dash.Alert.ListAlerts()
	if err != nil {
		respondError(c, err)
		return
	}

	criterion := dashboard.AlertFilter(c.DefaultQuery("filter", string(dashboard.AlertFilterAll)))

	c.JSON(http.StatusOK, gin.H{"alerts": dashboard.FilterAlerts(alerts, criterion)})
}

func (rs *RestfulServer) GetAlertCounts(c *gin.Context) {
	alerts, err := rs.Dash.Alert.ListAlerts()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard.CountAlerts(alerts))
}

type AlertReadRequest struct {
	AlertID string `json:"alertId"`
}

var alertReadRequestSchema = z.Struct(z.Shape{
	"AlertID": z.String().Required(),
})

func (rs *RestfulServer) PutAlertRead(c *gin.Context) {
	var req AlertReadRequest
	if err := alertReadRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Dash.Alert.MarkAlertRead(req.AlertID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Alert marked as read"})
}

func (rs *RestfulServer) GetRecommendations(c *gin.Context) {
	recommendations, err := rs.Dash.Recommendation.ListRecommendations()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": dashboard.RankRecommendations(recommendations)})
}

type RecommendationRequest struct {
	RecommendationID string `json:"recommendationId"`
}

var recommendationRequestSchema = z.Struct(z.Shape{
	"RecommendationID": z.String().Required(),
})

func (rs *RestfulServer) PostRecommendationAccept(c *gin.Context) {
	var req RecommendationRequest
	if err := recommendationRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Dash.Recommendation.AcceptRecommendation(req.RecommendationID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Recommendation accepted and scheduled for implementation"})
}

func (rs *RestfulServer) PostRecommendationDismiss(c *gin.Context) {
	var req RecommendationRequest
	if err := recommendationRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Dash.Recommendation.DismissRecommendation(req.RecommendationID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Recommendation dismissed"})
}

func analyticsPeriod(c *gin.Context) (source.Period, bool) {
	period, ok := source.ParsePeriod(c.DefaultQuery("period", string(source.PeriodWeek)))
	if !ok {
		respondError(c, &dashboard.ValidationError{Field: "period", Reason: "must be one of week, month, year"})
	}
	return period, ok
}

func (rs *RestfulServer) GetProductionAnalytics(c *gin.Context) {
	period, ok := analyticsPeriod(c)
	if !ok {
		return
	}

	data, err := rs.Source.ProductionAnalytics(c.Request.Context(), period)
	if err != nil {
		respondError(c, &dashboard.UpstreamFailure{Op: "production analytics", Err: err})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (rs *RestfulServer) GetConsumptionAnalytics(c *gin.Context) {
	period, ok := analyticsPeriod(c)
	if !ok {
		return
	}

	data, err := rs.Source.ConsumptionAnalytics(c.Request.Context(), period)
	if err != nil {
		respondError(c, &dashboard.UpstreamFailure{Op: "consumption analytics", Err: err})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}

// fetchSeries pulls the production and consumption series for a period
// in parallel; the first upstream error wins.
func (rs *RestfulServer) fetchSeries(c *gin.Context, period source.Period) ([]models.ProductionPoint, []models.ConsumptionPoint, error) {
	var (
		wg             sync.WaitGroup
		production     []models.ProductionPoint
		consumption    []models.ConsumptionPoint
		productionErr  error
		consumptionErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		production, productionErr = rs.Source.ProductionAnalytics(c.Request.Context(), period)
	}()
	go func() {
		defer wg.Done()
		consumption, consumptionErr = rs.Source.ConsumptionAnalytics(c.Request.Context(), period)
	}()
	wg.Wait()

	if productionErr != nil {
		return nil, nil, &dashboard.UpstreamFailure{Op: "production analytics", Err: productionErr}
	}
	if consumptionErr != nil {
		return nil, nil, &dashboard.UpstreamFailure{Op: "consumption analytics", Err: consumptionErr}
	}
	return production, consumption, nil
}

func (rs *RestfulServer) GetAnalyticsSummary(c *gin.Context) {
	period, ok := analyticsPeriod(c)
	if !ok {
		return
	}

	production, consumption, err := rs.fetchSeries(c, period)
	if err != nil {
		respondError(c, err)
		return
	}

	summary := dashboard.Summarize(production, consumption)

	c.JSON(http.StatusOK, gin.H{
		"summary": summary,
		"insight": dashboard.GenerateInsight(summary),
	})
}

// InsightRequest carries the series the client currently has on
// screen; the insight describes exactly what the user is looking at.
// Nested arrays, so gin binding instead of a flat zog schema.
type InsightRequest struct {
	ProductionData  []models.ProductionPoint  `json:"productionData"`
	ConsumptionData []models.ConsumptionPoint `json:"consumptionData"`
}

func (rs *RestfulServer) PostInsight(c *gin.Context) {
	var req InsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.ProductionData) == 0 && len(req.ConsumptionData) == 0 {
		respondError(c, &dashboard.ValidationError{
			Field:  "productionData",
			Reason: "at least one of productionData, consumptionData must be non-empty",
		})
		return
	}

	insight, err := rs.Source.DetailedInsight(c.Request.Context(), req.ProductionData, req.ConsumptionData)
	if err != nil {
		respondError(c, &dashboard.UpstreamFailure{Op: "detailed insight", Err: err})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insight": insight})
}

// GetOverview joins the upstream snapshot with the device registry:
// current power is recomputed from the fleet so the headline figure
// always matches the device list below it.
func (rs *RestfulServer) GetOverview(c *gin.Context) {
	overview, err := rs.Source.Overview(c.Request.Context())
	if err != nil {
		respondError(c, &dashboard.UpstreamFailure{Op: "overview", Err: err})
		return
	}

	devices, err := rs.Dash.Device.ListDevices()
	if err != nil {
		respondError(c, err)
		return
	}

	if len(devices) > 0 {
		overview.CurrentPower = dashboard.AggregateDevices(devices).TotalOutput
	}

	c.JSON(http.StatusOK, overview)
}

func (rs *RestfulServer) GetEnergyFlow(c *gin.Context) {
	reading, err := rs.Source.EnergyFlow(c.Request.Context())
	if err != nil {
		respondError(c, &dashboard.UpstreamFailure{Op: "energy flow", Err: err})
		return
	}

	devices, err := rs.Dash.Device.ListDevices()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard.Snapshot(devices, reading.Grid, reading.Consumption, rs.BalanceTolerance))
}

func (rs *RestfulServer) GetFinancialOverview(c *gin.Context) {
	overview, err := rs.Source.FinancialOverview(c.Request.Context())
	if err != nil {
		respondError(c, &dashboard.UpstreamFailure{Op: "financial overview", Err: err})
		return
	}

	c.JSON(http.StatusOK, overview)
}

func (rs *RestfulServer) GetFinancialHistory(c *gin.Context) {
	period, ok := source.ParseFinancialPeriod(c.DefaultQuery("period", string(source.FinancialPeriodSixMonths)))
	if !ok {
		respondError(c, &dashboard.ValidationError{Field: "period", Reason: "must be one of 6months, year"})
		return
	}

	data, err := rs.Source.FinancialHistory(c.Request.Context(), period)
	if err != nil {
		respondError(c, &dashboard.UpstreamFailure{Op: "financial history", Err: err})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (rs *RestfulServer) GetFinancialSummary(c *gin.Context) {
	overview, err := rs.Source.FinancialOverview(c.Request.Context())
	if err != nil {
		respondError(c, &dashboard.UpstreamFailure{Op: "financial overview", Err: err})
		return
	}

	c.JSON(http.StatusOK, dashboard.SummarizeFinancial(*overview))
}
