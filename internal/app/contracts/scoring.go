package contracts

import (
	"context"
	"screening-service/internal/pkg/screening"
)

// ScoringClient talks to the remote eligibility scoring service. The
// credential is the caller's bearer token, forwarded verbatim.
type ScoringClient interface {
	SubmitQuestionnaire(ctx context.Context, payload screening.SubmissionPayload, credential string) (string, error)
}
