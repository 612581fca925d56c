package config

import (
	"screening-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                             utils.GetEnvString("APP_ENV", "development"),
			Port:                            utils.GetEnvString("APP_PORT", ":8080"),
			Version:                         utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                        utils.GetEnvString("APP_TIMEZONE", "America/Sao_Paulo"),
			EndpointPrefix:                  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                     utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:                 utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			AnswerStateExpiredTimeInMinutes: utils.GetEnvInt("APP_ANSWER_STATE_EXPIRED_TIME_IN_MINUTE", 60),
			SubmitMaxRequestsPerMinute:      utils.GetEnvInt("APP_SUBMIT_MAX_REQUESTS_PER_MINUTE", 6),
			SubmitBlockTimeInMinutes:        utils.GetEnvInt("APP_SUBMIT_BLOCK_TIME_IN_MINUTE", 1),
		},
		JWT: JWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
		Scoring: Scoring{
			BaseUrl:                 utils.GetEnvString("SCORING_BASE_URL", "http://localhost:5555"),
			Endpoint:                utils.GetEnvString("SCORING_ENDPOINT", "/questionnaire"),
			RequestTimeoutInSeconds: utils.GetEnvInt("SCORING_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
	}
}
