package config

import (
	"mosefak-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		PostgresDB: PostgresDB{
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			DbName:   utils.GetEnvString("POSTGRES_DB_NAME", "mosefak"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "defaultPassword"),
			SSLMode:  utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
		},
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "mosefak"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", "customRedisPass"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "/v1"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
			PaymentDueWindowInHours:   utils.GetEnvInt("APP_PAYMENT_DUE_WINDOW_IN_HOURS", 24),
			ReaperCronSpec:            utils.GetEnvString("APP_REAPER_CRON_SPEC", "@every 5m"),
			ReaperLockTTLInSeconds:    utils.GetEnvInt("APP_REAPER_LOCK_TTL_IN_SECONDS", 300),
			BookingLockTTLInSeconds:   utils.GetEnvInt("APP_BOOKING_LOCK_TTL_IN_SECONDS", 10),
		},
		PaymentGateway: PaymentGateway{
			BaseUrl:              utils.GetEnvString("PAYMENT_GATEWAY_BASE_URL", "https://api.stripe.com"),
			SecretKey:            utils.GetEnvString("PAYMENT_GATEWAY_SECRET_KEY", ""),
			WebhookSecret:        utils.GetEnvString("PAYMENT_GATEWAY_WEBHOOK_SECRET", ""),
			TimeoutInSeconds:     utils.GetEnvInt("PAYMENT_GATEWAY_TIMEOUT_IN_SECONDS", 15),
			MaxRequestsPerSecond: utils.GetEnvInt("PAYMENT_GATEWAY_MAX_REQUESTS_PER_SECOND", 25),
		},
	}
}
