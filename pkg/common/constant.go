package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyDashDBType string = "DASH_DB_TYPE"
	EnvKeyDashDbPath string = "DASH_DB_PATH"

	EnvKeyDashHttpHostPort string = "DASH_HTTP_HOST_PORT"

	EnvKeyDashDefaultRate  string = "DASH_DEFAULT_RATE"
	EnvKeyDashDefaultBurst string = "DASH_DEFAULT_BURST"

	EnvKeyDashBalanceTolerance string = "DASH_BALANCE_TOLERANCE"

	LoggerNameDashCore      string = "dash_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameSource        string = "source"

	LoggerFieldDashCategory string = "category"

	LoggerCategoryDevice         string = "device"
	LoggerCategoryFlow           string = "flow"
	LoggerCategoryAlert          string = "alert"
	LoggerCategoryRecommendation string = "recommendation"
	LoggerCategoryAnalytics      string = "analytics"
	LoggerCategoryFinancial      string = "financial"
)
