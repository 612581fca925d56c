package questionnaires

import (
	"context"
	"fmt"
	"screening-service/internal/app/config"
	"screening-service/internal/app/contracts"
	"screening-service/internal/pkg/constvars"
	"screening-service/internal/pkg/dto/requests"
	"screening-service/internal/pkg/dto/responses"
	"screening-service/internal/pkg/exceptions"
	"screening-service/internal/pkg/screening"
	"screening-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
)

// submitLockMargin keeps the in-flight lock alive slightly longer than the
// scoring call can take, so a crashed submit cannot wedge the session forever.
const submitLockMargin = 5 * time.Second

type questionnaireUsecase struct {
	RedisRepository contracts.RedisRepository
	SessionService  contracts.SessionService
	ScoringClient   contracts.ScoringClient
	InternalConfig  *config.InternalConfig
}

func NewQuestionnaireUsecase(
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	scoringClient contracts.ScoringClient,
	internalConfig *config.InternalConfig,
) contracts.QuestionnaireUsecase {
	return &questionnaireUsecase{
		RedisRepository: redisRepository,
		SessionService:  sessionService,
		ScoringClient:   scoringClient,
		InternalConfig:  internalConfig,
	}
}

func (uc *questionnaireUsecase) GetSchema(ctx context.Context, procedureType string) (*responses.QuestionnaireSchema, error) {
	selected := screening.ProcedureType(procedureType)
	if procedureType != "" && !selected.Known() {
		return nil, exceptions.ErrMissingProcedure(nil)
	}

	return &responses.QuestionnaireSchema{
		ProcedureType: procedureType,
		Procedures:    screening.Procedures,
		Questions:     screening.QuestionsFor(selected),
	}, nil
}

func (uc *questionnaireUsecase) GetAnswers(ctx context.Context, sessionData string) (*responses.QuestionnaireState, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	state, err := uc.loadState(ctx, session.SessionID)
	if err != nil {
		return nil, err
	}

	return stateResponse(state), nil
}

func (uc *questionnaireUsecase) EditAnswer(ctx context.Context, sessionData string, request *requests.AnswerEditRequest) (*responses.QuestionnaireState, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if !screening.KnownQuestionKey(request.Key) {
		return nil, exceptions.ErrUnknownQuestionKey(nil)
	}

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	state, err := uc.loadState(ctx, session.SessionID)
	if err != nil {
		return nil, err
	}

	next, err := screening.ApplyEdit(state, screening.FieldEdit{Key: request.Key, Value: request.Value})
	if err != nil {
		return nil, exceptions.ErrAnswerTypeMismatch(err)
	}

	err = uc.saveState(ctx, session.SessionID, next)
	if err != nil {
		return nil, err
	}

	return stateResponse(next), nil
}

func (uc *questionnaireUsecase) Submit(ctx context.Context, sessionData, credential string, request *requests.SubmitQuestionnaireRequest) (*responses.EligibilityResult, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	// Only one submission may be in flight per session; a second submit is
	// rejected instead of queued.
	lockKey := fmt.Sprintf(constvars.RedisKeySubmitLockFormat, session.SessionID)
	acquired, err := uc.RedisRepository.TrySetNX(ctx, lockKey, "in-flight", uc.submitLockTTL())
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSubmissionInFlight(nil)
	}
	defer uc.RedisRepository.Delete(context.WithoutCancel(ctx), lockKey)

	state, err := uc.submissionState(ctx, session.SessionID, request)
	if err != nil {
		return nil, err
	}

	// On any failure from here on the stored answers stay untouched so the
	// user can correct and resubmit without re-entering data.
	err = screening.Validate(state.ProcedureType, state.Answers)
	if err != nil {
		return nil, err
	}

	payload := screening.Normalize(state.ProcedureType, state.Answers)

	verdict, err := uc.ScoringClient.SubmitQuestionnaire(ctx, payload, credential)
	if err != nil {
		return nil, err
	}

	result := &responses.EligibilityResult{Eligibility: verdict}

	resultKey := fmt.Sprintf(constvars.RedisKeyResultFormat, session.SessionID)
	err = uc.RedisRepository.Set(ctx, resultKey, result, uc.answerStateTTL())
	if err != nil {
		return nil, err
	}

	answersKey := fmt.Sprintf(constvars.RedisKeyAnswerStateFormat, session.SessionID)
	err = uc.RedisRepository.Delete(ctx, answersKey)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (uc *questionnaireUsecase) GetResult(ctx context.Context, sessionData string) (*responses.EligibilityResult, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	resultKey := fmt.Sprintf(constvars.RedisKeyResultFormat, session.SessionID)
	data, err := uc.RedisRepository.Get(ctx, resultKey)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrNoSubmissionResult(nil)
	}

	result := new(responses.EligibilityResult)
	err = json.Unmarshal([]byte(data), result)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return result, nil
}

func (uc *questionnaireUsecase) Reset(ctx context.Context, sessionData string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	answersKey := fmt.Sprintf(constvars.RedisKeyAnswerStateFormat, session.SessionID)
	err = uc.RedisRepository.Delete(ctx, answersKey)
	if err != nil {
		return err
	}

	resultKey := fmt.Sprintf(constvars.RedisKeyResultFormat, session.SessionID)
	return uc.RedisRepository.Delete(ctx, resultKey)
}

// submissionState prefers a full questionnaire in the request body (the form
// layer may submit statelessly) and falls back to the stored session answers.
func (uc *questionnaireUsecase) submissionState(ctx context.Context, sessionID string, request *requests.SubmitQuestionnaireRequest) (screening.FormState, error) {
	if request != nil && (request.ProcedureType != "" || request.Answers != nil) {
		err := utils.ValidateStruct(request)
		if err != nil {
			return screening.FormState{}, exceptions.ErrInputValidation(err)
		}
		state := screening.FormState{ProcedureType: screening.ProcedureType(request.ProcedureType)}
		if request.Answers != nil {
			state.Answers = *request.Answers
		}
		return state, nil
	}

	return uc.loadState(ctx, sessionID)
}

func (uc *questionnaireUsecase) loadState(ctx context.Context, sessionID string) (screening.FormState, error) {
	answersKey := fmt.Sprintf(constvars.RedisKeyAnswerStateFormat, sessionID)
	data, err := uc.RedisRepository.Get(ctx, answersKey)
	if err != nil {
		return screening.FormState{}, err
	}
	if data == "" {
		return screening.FormState{}, nil
	}

	state, err := screening.DecodeFormState([]byte(data))
	if err != nil {
		return screening.FormState{}, exceptions.ErrCannotParseJSON(err)
	}
	return state, nil
}

func (uc *questionnaireUsecase) saveState(ctx context.Context, sessionID string, state screening.FormState) error {
	answersKey := fmt.Sprintf(constvars.RedisKeyAnswerStateFormat, sessionID)
	return uc.RedisRepository.Set(ctx, answersKey, state, uc.answerStateTTL())
}

func (uc *questionnaireUsecase) answerStateTTL() time.Duration {
	return time.Duration(uc.InternalConfig.App.AnswerStateExpiredTimeInMinutes) * time.Minute
}

func (uc *questionnaireUsecase) submitLockTTL() time.Duration {
	return time.Duration(uc.InternalConfig.Scoring.RequestTimeoutInSeconds)*time.Second*2 + submitLockMargin
}

func stateResponse(state screening.FormState) *responses.QuestionnaireState {
	return &responses.QuestionnaireState{
		ProcedureType: string(state.ProcedureType),
		Answers:       state.Answers,
	}
}
