package questionnaires

import (
	"context"
	"errors"
	"fmt"
	"screening-service/internal/app/config"
	"screening-service/internal/app/contracts"
	"screening-service/internal/app/services/core/session"
	"screening-service/internal/pkg/dto/requests"
	"screening-service/internal/pkg/exceptions"
	"screening-service/internal/pkg/screening"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionData = `{"session_id":"sess-1"}`

type fakeRedisRepository struct {
	mu     sync.Mutex
	values map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: make(map[string]string)}
}

func (r *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = string(jsonValue)
	return nil
}

func (r *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.values[key], nil
}

func (r *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, key)
	return nil
}

func (r *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.values[key]; exists {
		return false, nil
	}
	r.values[key] = string(jsonValue)
	return true, nil
}

func (r *fakeRedisRepository) has(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, found := r.values[key]
	return found
}

type fakeScoringClient struct {
	mu          sync.Mutex
	verdict     string
	err         error
	calls       int
	lastPayload screening.SubmissionPayload
}

func (c *fakeScoringClient) SubmitQuestionnaire(ctx context.Context, payload screening.SubmissionPayload, credential string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	c.lastPayload = payload
	if c.err != nil {
		return "", c.err
	}
	return c.verdict, nil
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			AnswerStateExpiredTimeInMinutes: 60,
		},
		Scoring: config.Scoring{
			RequestTimeoutInSeconds: 2,
		},
	}
}

func newTestUsecase(redisRepository contracts.RedisRepository, scoringClient contracts.ScoringClient) contracts.QuestionnaireUsecase {
	sessionService := session.NewSessionService(redisRepository)
	return NewQuestionnaireUsecase(redisRepository, sessionService, scoringClient, testInternalConfig())
}

func editAll(t *testing.T, uc contracts.QuestionnaireUsecase, edits map[string]interface{}) {
	t.Helper()
	for key, value := range edits {
		_, err := uc.EditAnswer(context.Background(), testSessionData, &requests.AnswerEditRequest{Key: key, Value: value})
		require.NoError(t, err, "editing %s should succeed", key)
	}
}

func completeBariatricEdits() map[string]interface{} {
	return map[string]interface{}{
		"procedureType":       "bariatric-surgery",
		"fullName":            "Maria Silva",
		"taxId":               "123.456.789-01",
		"birthDate":           "1985-03-12",
		"bmi":                 "41,3",
		"sex":                 "F",
		"diabetesHistory":     true,
		"hypertensionHistory": false,
		"weightLossAttempt":   true,
	}
}

func assertCustomErrorStatus(t *testing.T, err error, statusCode int) {
	t.Helper()
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, statusCode, customErr.StatusCode)
}

func TestEditAnswerAndGetAnswers(t *testing.T) {
	repo := newFakeRedisRepository()
	uc := newTestUsecase(repo, &fakeScoringClient{verdict: "Eligible"})

	t.Run("Fresh Session Starts Empty", func(t *testing.T) {
		state, err := uc.GetAnswers(context.Background(), testSessionData)
		require.NoError(t, err)
		assert.Equal(t, "", state.ProcedureType)
		assert.Equal(t, "", state.Answers.FullName)
	})

	t.Run("Edits Persist Across Reads", func(t *testing.T) {
		editAll(t, uc, map[string]interface{}{
			"procedureType":   "hip-arthroplasty",
			"fullName":        "Maria Silva",
			"diabetesHistory": false,
		})

		state, err := uc.GetAnswers(context.Background(), testSessionData)
		require.NoError(t, err)
		assert.Equal(t, "hip-arthroplasty", state.ProcedureType)
		assert.Equal(t, "Maria Silva", state.Answers.FullName)
		assert.Equal(t, screening.TriStateNo, state.Answers.DiabetesHistory)
		assert.Equal(t, screening.TriStateUnanswered, state.Answers.HypertensionHistory)
	})

	t.Run("Unknown Key Is Rejected", func(t *testing.T) {
		_, err := uc.EditAnswer(context.Background(), testSessionData, &requests.AnswerEditRequest{Key: "shoeSize", Value: "42"})
		assertCustomErrorStatus(t, err, 400)
	})

	t.Run("Wrong Value Type Is Rejected", func(t *testing.T) {
		_, err := uc.EditAnswer(context.Background(), testSessionData, &requests.AnswerEditRequest{Key: "diabetesHistory", Value: "yes"})
		assertCustomErrorStatus(t, err, 400)
	})

	t.Run("Missing Key Fails Binding", func(t *testing.T) {
		_, err := uc.EditAnswer(context.Background(), testSessionData, &requests.AnswerEditRequest{Value: "x"})
		assertCustomErrorStatus(t, err, 400)
	})
}

func TestSubmitFromStoredState(t *testing.T) {
	repo := newFakeRedisRepository()
	scorer := &fakeScoringClient{verdict: "Eligible"}
	uc := newTestUsecase(repo, scorer)

	editAll(t, uc, completeBariatricEdits())

	result, err := uc.Submit(context.Background(), testSessionData, "token-123", nil)
	require.NoError(t, err)
	assert.Equal(t, "Eligible", result.Eligibility)

	assert.Equal(t, "bariatric-surgery", scorer.lastPayload.ProcedureType)
	assert.Equal(t, "41.3", scorer.lastPayload.Answers["bmi"], "comma BMI is normalized before submission")
	assert.Equal(t, true, scorer.lastPayload.Answers["diabetesHistory"])
	_, found := scorer.lastPayload.Answers["hypertensionHistory"]
	assert.False(t, found, "an explicit no is dropped from the payload")

	t.Run("Answers Are Discarded On Success", func(t *testing.T) {
		state, err := uc.GetAnswers(context.Background(), testSessionData)
		require.NoError(t, err)
		assert.Equal(t, "", state.ProcedureType)
		assert.Equal(t, "", state.Answers.FullName)
	})

	t.Run("Result Is Stored For Later Reads", func(t *testing.T) {
		result, err := uc.GetResult(context.Background(), testSessionData)
		require.NoError(t, err)
		assert.Equal(t, "Eligible", result.Eligibility)
	})

	t.Run("Lock Is Released", func(t *testing.T) {
		assert.False(t, repo.has(fmt.Sprintf("questionnaire:submit-lock:%s", "sess-1")))
	})
}

func TestSubmitFromRequestBody(t *testing.T) {
	repo := newFakeRedisRepository()
	scorer := &fakeScoringClient{verdict: "Not eligible"}
	uc := newTestUsecase(repo, scorer)

	request := &requests.SubmitQuestionnaireRequest{
		ProcedureType: "varicose-vein-surgery",
		Answers: &screening.AnswerSet{
			FullName:          "Joana Prado",
			TaxID:             "12345678901",
			BirthDate:         "1970-06-01",
			BMI:               "24.0",
			Sex:               "F",
			LargeCaliberVeins: screening.TriStateYes,
		},
	}

	result, err := uc.Submit(context.Background(), testSessionData, "token-123", request)
	require.NoError(t, err)
	assert.Equal(t, "Not eligible", result.Eligibility)
	assert.Equal(t, "varicose-vein-surgery", scorer.lastPayload.ProcedureType)
	assert.Equal(t, true, scorer.lastPayload.Answers["largeCaliberVeins"])
}

func TestSubmitValidationFailureRetainsAnswers(t *testing.T) {
	repo := newFakeRedisRepository()
	scorer := &fakeScoringClient{verdict: "Eligible"}
	uc := newTestUsecase(repo, scorer)

	edits := completeBariatricEdits()
	edits["fullName"] = "Maria"
	editAll(t, uc, edits)

	_, err := uc.Submit(context.Background(), testSessionData, "token-123", nil)
	assertCustomErrorStatus(t, err, 422)
	assert.Equal(t, 0, scorer.calls, "validation failures never reach the scorer")

	state, err := uc.GetAnswers(context.Background(), testSessionData)
	require.NoError(t, err)
	assert.Equal(t, "Maria", state.Answers.FullName, "answers survive a failed submit for correction")

	t.Run("Corrected Resubmission Succeeds", func(t *testing.T) {
		editAll(t, uc, map[string]interface{}{"fullName": "Maria Silva"})
		result, err := uc.Submit(context.Background(), testSessionData, "token-123", nil)
		require.NoError(t, err)
		assert.Equal(t, "Eligible", result.Eligibility)
	})
}

func TestSubmitScoringFailureRetainsAnswersAndLock(t *testing.T) {
	repo := newFakeRedisRepository()
	scorer := &fakeScoringClient{err: exceptions.ErrScoringUnreachable(errors.New("connection refused"))}
	uc := newTestUsecase(repo, scorer)

	editAll(t, uc, completeBariatricEdits())

	_, err := uc.Submit(context.Background(), testSessionData, "token-123", nil)
	assertCustomErrorStatus(t, err, 502)

	state, getErr := uc.GetAnswers(context.Background(), testSessionData)
	require.NoError(t, getErr)
	assert.Equal(t, "Maria Silva", state.Answers.FullName)

	_, resultErr := uc.GetResult(context.Background(), testSessionData)
	assertCustomErrorStatus(t, resultErr, 404)

	t.Run("Resubmission After Recovery Succeeds", func(t *testing.T) {
		scorer.err = nil
		scorer.verdict = "Eligible"

		result, err := uc.Submit(context.Background(), testSessionData, "token-123", nil)
		require.NoError(t, err, "the lock from the failed submit must not linger")
		assert.Equal(t, "Eligible", result.Eligibility)
	})
}

func TestSubmitRejectsConcurrentSubmission(t *testing.T) {
	repo := newFakeRedisRepository()
	uc := newTestUsecase(repo, &fakeScoringClient{verdict: "Eligible"})

	editAll(t, uc, completeBariatricEdits())

	lockKey := fmt.Sprintf("questionnaire:submit-lock:%s", "sess-1")
	acquired, err := repo.TrySetNX(context.Background(), lockKey, "in-flight", time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	_, err = uc.Submit(context.Background(), testSessionData, "token-123", nil)
	assertCustomErrorStatus(t, err, 409)
}

func TestGetResultWithoutSubmission(t *testing.T) {
	uc := newTestUsecase(newFakeRedisRepository(), &fakeScoringClient{})

	_, err := uc.GetResult(context.Background(), testSessionData)
	assertCustomErrorStatus(t, err, 404)
}

func TestReset(t *testing.T) {
	repo := newFakeRedisRepository()
	uc := newTestUsecase(repo, &fakeScoringClient{verdict: "Eligible"})

	editAll(t, uc, completeBariatricEdits())
	_, err := uc.Submit(context.Background(), testSessionData, "token-123", nil)
	require.NoError(t, err)

	editAll(t, uc, map[string]interface{}{"fullName": "Another Person"})

	require.NoError(t, uc.Reset(context.Background(), testSessionData))

	state, err := uc.GetAnswers(context.Background(), testSessionData)
	require.NoError(t, err)
	assert.Equal(t, "", state.Answers.FullName)

	_, err = uc.GetResult(context.Background(), testSessionData)
	assertCustomErrorStatus(t, err, 404)
}

func TestGetSchema(t *testing.T) {
	uc := newTestUsecase(newFakeRedisRepository(), &fakeScoringClient{})

	t.Run("No Procedure Selected", func(t *testing.T) {
		schema, err := uc.GetSchema(context.Background(), "")
		require.NoError(t, err)
		assert.Len(t, schema.Questions, 7)
		assert.Len(t, schema.Procedures, 3)
	})

	t.Run("Hip Arthroplasty Adds Three Questions", func(t *testing.T) {
		schema, err := uc.GetSchema(context.Background(), "hip-arthroplasty")
		require.NoError(t, err)
		assert.Len(t, schema.Questions, 10)
	})

	t.Run("Unknown Procedure Is Rejected", func(t *testing.T) {
		_, err := uc.GetSchema(context.Background(), "appendectomy")
		assertCustomErrorStatus(t, err, 422)
	})
}
