package config

const (
	EnvPrefix = "FACTORYOPS"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv                 = "FACTORYOPS_APP_ENV"
	EnvPort                   = "FACTORYOPS_APP_PORT"
	EnvLogLevel               = "FACTORYOPS_LOG_LEVEL"
	EnvCORSOrigins            = "FACTORYOPS_CORS_ORIGINS"
	EnvJWTSecret              = "FACTORYOPS_JWT_SECRET"
	EnvJWTIssuer              = "FACTORYOPS_JWT_ISSUER"
	EnvJWTExpMins             = "FACTORYOPS_JWT_EXPIRATION_MINUTES"
	EnvRedisURL               = "FACTORYOPS_REDIS_URL"
	EnvAttendanceMultipleOpen = "FACTORYOPS_ATTENDANCE_ALLOW_MULTIPLE_OPEN"
	EnvInvoiceDueDays         = "FACTORYOPS_INVOICE_DUE_DAYS"
	EnvLowStockThreshold      = "FACTORYOPS_LOW_STOCK_THRESHOLD"
	EnvSeedEnabled            = "FACTORYOPS_SEED_ENABLED"
	EnvSeedFile               = "FACTORYOPS_SEED_FILE"
)
