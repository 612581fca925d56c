package routers

import (
	"screening-service/internal/app/config"
	"screening-service/internal/app/delivery/http/middlewares"
	"screening-service/internal/app/services/questionnaires"
	"time"

	"github.com/go-chi/chi/v5"
)

func attachQuestionnaireRoutes(
	r chi.Router,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	questionnaireController *questionnaires.QuestionnaireController,
) {
	r.With(mw.OptionalAuthenticate).Get("/schema", questionnaireController.GetSchema)

	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate)

		r.Get("/answers", questionnaireController.GetAnswers)
		r.Patch("/answers", questionnaireController.EditAnswer)
		r.Get("/result", questionnaireController.GetResult)
		r.Post("/reset", questionnaireController.Reset)

		submitLimiter := middlewares.NewRateLimiter(
			internalConfig.App.SubmitMaxRequestsPerMinute,
			time.Minute,
			time.Duration(internalConfig.App.SubmitBlockTimeInMinutes)*time.Minute,
		)
		r.With(submitLimiter.Limit).Post("/submit", questionnaireController.Submit)
	})
}
