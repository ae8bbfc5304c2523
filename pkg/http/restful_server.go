package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"greenvolt.xyz/energy-dashboard-service/pkg/dashboard"
	"greenvolt.xyz/energy-dashboard-service/pkg/source"
)

type RestfulServer struct {
	Server           *gin.Engine
	Dash             *dashboard.Dashboard
	Source           source.Source
	RateLimiterStore *dashboard.RateLimiterStore

	// BalanceTolerance is the max allowed supply/consumption gap (kW)
	// before an energy flow snapshot carries a balance warning.
	BalanceTolerance float64
}

func (rs *RestfulServer) GetLimiter(clientKey string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(clientKey)
	}
}

func (rs *RestfulServer) CheckClientLimiter(clientKey string) bool {
	limiter := rs.GetLimiter(clientKey)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(clientKey string, clientRate float64, clientBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(clientKey, rate.Limit(clientRate), clientBurst)
}

// RateLimit gates every /api route by client IP.
func (rs *RestfulServer) RateLimit(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.AbortWithStatus(http.StatusTooManyRequests)
		return
	}
	c.Next()
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	api := rs.Server.Group("/api", rs.RateLimit)
	{
		api.GET("/devices", rs.GetDevices)
		api.POST("/devices", rs.PostDevice)

		alerts := api.Group("/alerts")
		{
			alerts.GET("", rs.GetAlerts)
			alerts.GET("/counts", rs.GetAlertCounts)
			alerts.PUT("/read", rs.PutAlertRead)
		}

		optimization := api.Group("/optimization")
		{
			optimization.GET("/recommendations", rs.GetRecommendations)
			optimization.POST("/accept", rs.PostRecommendationAccept)
			optimization.POST("/dismiss", rs.PostRecommendationDismiss)
		}

		analytics := api.Group("/analytics")
		{
			analytics.GET("/production", rs.GetProductionAnalytics)
			analytics.GET("/consumption", rs.GetConsumptionAnalytics)
			analytics.GET("/summary", rs.GetAnalyticsSummary)
		}

		api.POST("/insight", rs.PostInsight)

		overview := api.Group("/dashboard")
		{
			overview.GET("/overview", rs.GetOverview)
			overview.GET("/energy-flow", rs.GetEnergyFlow)
		}

		financial := api.Group("/financial")
		{
			financial.GET("/overview", rs.GetFinancialOverview)
			financial.GET("/history", rs.GetFinancialHistory)
			financial.GET("/summary", rs.GetFinancialSummary)
		}
	}
}
