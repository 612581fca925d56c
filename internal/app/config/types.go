package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Redis          *redis.Client
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App     App
		JWT     JWT
		Scoring Scoring
	}

	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}

	App struct {
		Env                             string
		Port                            string
		Version                         string
		Timezone                        string
		EndpointPrefix                  string
		MaxRequests                     int
		ShutdownTimeout                 int
		AnswerStateExpiredTimeInMinutes int
		SubmitMaxRequestsPerMinute      int
		SubmitBlockTimeInMinutes        int
	}

	JWT struct {
		Secret string
	}

	// Scoring points at the remote eligibility scoring service.
	Scoring struct {
		BaseUrl                 string
		Endpoint                string
		RequestTimeoutInSeconds int
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
