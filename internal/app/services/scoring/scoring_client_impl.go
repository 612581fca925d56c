package scoring

import (
	"bytes"
	"context"
	"net/http"
	"screening-service/internal/app/config"
	"screening-service/internal/app/contracts"
	"screening-service/internal/pkg/constvars"
	"screening-service/internal/pkg/exceptions"
	"screening-service/internal/pkg/screening"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const transportRetries = 1

type scoringClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewScoringClient(internalConfig *config.InternalConfig, log *zap.Logger) contracts.ScoringClient {
	return &scoringClient{
		BaseUrl: internalConfig.Scoring.BaseUrl + internalConfig.Scoring.Endpoint,
		HTTPClient: &http.Client{
			Timeout: time.Duration(internalConfig.Scoring.RequestTimeoutInSeconds) * time.Second,
		},
		Log: log,
	}
}

// SubmitQuestionnaire posts the normalized payload to the scorer and returns
// the eligibility verdict. Transport failures are retried once; a reply with
// a non-success status is not retried because the scorer already received the
// submission.
func (c *scoringClient) SubmitQuestionnaire(ctx context.Context, payload screening.SubmissionPayload, credential string) (string, error) {
	requestJSON, err := json.Marshal(payload)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	var resp *http.Response
	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewReader(requestJSON))
		if err != nil {
			return "", exceptions.ErrScoringBuildRequest(err)
		}
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+credential)

		resp, err = c.HTTPClient.Do(req)
		if err == nil {
			break
		}
		if attempt >= transportRetries || ctx.Err() != nil {
			return "", exceptions.ErrScoringUnreachable(err)
		}
		c.Log.Warn("Scoring service request failed, retrying once",
			zap.Error(err),
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		c.Log.Error("Scoring service returned non-success status",
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return "", exceptions.ErrScoringBadStatus(nil)
	}

	var result struct {
		Result *string `json:"result"`
	}
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return "", exceptions.ErrScoringMalformedResponse(err)
	}
	if result.Result == nil {
		// The contract promises a result field; its absence is a protocol
		// violation, not an empty verdict.
		return "", exceptions.ErrScoringMalformedResponse(nil)
	}

	return *result.Result, nil
}
