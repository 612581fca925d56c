package questionnaires

import (
	"context"
	"errors"
	"io"
	"net/http"
	"screening-service/internal/app/contracts"
	"screening-service/internal/pkg/constvars"
	"screening-service/internal/pkg/dto/requests"
	"screening-service/internal/pkg/exceptions"
	"screening-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type QuestionnaireController struct {
	Log                  *zap.Logger
	QuestionnaireUsecase contracts.QuestionnaireUsecase
}

func NewQuestionnaireController(logger *zap.Logger, questionnaireUsecase contracts.QuestionnaireUsecase) *QuestionnaireController {
	return &QuestionnaireController{
		Log:                  logger,
		QuestionnaireUsecase: questionnaireUsecase,
	}
}

func (qc *QuestionnaireController) GetSchema(w http.ResponseWriter, r *http.Request) {
	procedureType := r.URL.Query().Get(constvars.URLQueryProcedureType)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	schema, err := qc.QuestionnaireUsecase.GetSchema(ctx, procedureType)
	if err != nil {
		utils.BuildErrorResponse(qc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetQuestionnaireSchemaSuccessMessage, schema)
}

func (qc *QuestionnaireController) GetAnswers(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionDataFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(qc.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	state, err := qc.QuestionnaireUsecase.GetAnswers(ctx, sessionData)
	if err != nil {
		utils.BuildErrorResponse(qc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetQuestionnaireStateSuccessMessage, state)
}

func (qc *QuestionnaireController) EditAnswer(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionDataFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(qc.Log, w, err)
		return
	}

	request := new(requests.AnswerEditRequest)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(qc.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	state, err := qc.QuestionnaireUsecase.EditAnswer(ctx, sessionData, request)
	if err != nil {
		utils.BuildErrorResponse(qc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EditQuestionnaireSuccessMessage, state)
}

func (qc *QuestionnaireController) Submit(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionDataFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(qc.Log, w, err)
		return
	}
	credential, _ := r.Context().Value(constvars.CONTEXT_BEARER_TOKEN_KEY).(string)

	// The body is optional: without one the stored session answers are
	// submitted as-is.
	var request *requests.SubmitQuestionnaireRequest
	decoded := new(requests.SubmitQuestionnaireRequest)
	err = json.NewDecoder(r.Body).Decode(decoded)
	switch {
	case err == nil:
		request = decoded
	case errors.Is(err, io.EOF):
		request = nil
	default:
		utils.BuildErrorResponse(qc.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := qc.QuestionnaireUsecase.Submit(ctx, sessionData, credential, request)
	if err != nil {
		utils.BuildErrorResponse(qc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubmitQuestionnaireSuccessMessage, result)
}

func (qc *QuestionnaireController) GetResult(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionDataFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(qc.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := qc.QuestionnaireUsecase.GetResult(ctx, sessionData)
	if err != nil {
		utils.BuildErrorResponse(qc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetEligibilityResultSuccessMessage, result)
}

func (qc *QuestionnaireController) Reset(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionDataFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(qc.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = qc.QuestionnaireUsecase.Reset(ctx, sessionData)
	if err != nil {
		utils.BuildErrorResponse(qc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResetQuestionnaireSuccessMessage, nil)
}

func sessionDataFromContext(ctx context.Context) (string, error) {
	sessionData, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		return "", exceptions.ErrTokenMissing(nil)
	}
	return sessionData, nil
}
