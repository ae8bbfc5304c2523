package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"greenvolt.xyz/energy-dashboard-service/pkg/common"
	"greenvolt.xyz/energy-dashboard-service/pkg/dashboard"
	"greenvolt.xyz/energy-dashboard-service/pkg/db"
	dashHttp "greenvolt.xyz/energy-dashboard-service/pkg/http"
	"greenvolt.xyz/energy-dashboard-service/pkg/source"
)

const defaultBalanceTolerance = 0.5

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	dashDbType := os.Getenv(common.EnvKeyDashDBType)
	switch dashDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown DASH_DB_TYPE: " + dashDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyDashHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyDashDefaultRate), 64); err != nil {
		log.Fatal("Invalid DASH_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyDashDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid DASH_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	balanceTolerance := defaultBalanceTolerance
	if raw := strings.TrimSpace(os.Getenv(common.EnvKeyDashBalanceTolerance)); raw != "" {
		if balanceTolerance, err = strconv.ParseFloat(raw, 64); err != nil {
			log.Fatal("Invalid DASH_BALANCE_TOLERANCE, should be a float64 value")
		}
	}

	logger := common.GetLogger()

	dashCore := dashboard.Dashboard{
		Db: *dbInstance,
	}
	dashCore.WithServices(dashboard.ServiceOpts{
		Device:         dashCore.GetIDevice(),
		Alert:          dashCore.GetIAlert(),
		Recommendation: dashCore.GetIRecommendation(),
	})

	if err := source.SeedStore(dbInstance.Conn); err != nil {
		log.Fatalf("failed to seed store: %v", err)
	}

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &dashHttp.RestfulServer{
		Server:           gin.Default(),
		Dash:             &dashCore,
		Source:           source.NewSimulated(0),
		RateLimiterStore: dashboard.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
		BalanceTolerance: balanceTolerance,
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)),
		zap.Float64("balance_tolerance", balanceTolerance))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
