package contracts

import (
	"context"
	"screening-service/internal/pkg/dto/requests"
	"screening-service/internal/pkg/dto/responses"
)

type QuestionnaireUsecase interface {
	GetSchema(ctx context.Context, procedureType string) (*responses.QuestionnaireSchema, error)
	GetAnswers(ctx context.Context, sessionData string) (*responses.QuestionnaireState, error)
	EditAnswer(ctx context.Context, sessionData string, request *requests.AnswerEditRequest) (*responses.QuestionnaireState, error)
	Submit(ctx context.Context, sessionData, credential string, request *requests.SubmitQuestionnaireRequest) (*responses.EligibilityResult, error)
	GetResult(ctx context.Context, sessionData string) (*responses.EligibilityResult, error)
	Reset(ctx context.Context, sessionData string) error
}
