package constvars

// Client-facing messages. Every failure path surfaces one of these; the
// matching ErrDev* message goes to the log only.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"

	ErrClientMissingProcedure   = "please select the procedure"
	ErrClientInvalidTaxID       = "the tax ID is invalid"
	ErrClientInvalidBirthDate   = "the birth date is invalid"
	ErrClientIncompleteName     = "the full name must contain at least two words"
	ErrClientMissingRiskFactors = "please answer the diabetes and hypertension questions"
	ErrClientUnknownQuestion    = "this question does not exist"
	ErrClientAnswerWrongType    = "the answer has the wrong type for this question"

	ErrClientSubmissionInFlight = "your submission is still being processed, please wait"
	ErrClientScoringUnavailable = "could not reach the eligibility service, please try again"
	ErrClientNoResultYet        = "no eligibility result is available yet"
)

// Developer messages, logged with caller location.
const (
	ErrDevCannotParseJSON   = "Cannot parse JSON data"
	ErrDevCannotMarshalJSON = "Cannot marshal JSON data"
	ErrDevValidationFailed  = "Request validation failed"

	ErrDevAuthTokenMissing          = "Authorization token is missing"
	ErrDevAuthTokenInvalid          = "Authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "Authorization token is invalid or already expired"
	ErrDevAuthSigningMethod         = "Unexpected JWT signing method"
	ErrDevSessionNotFound           = "Session data not found in redis"

	ErrDevRedisSet    = "Redis failed to set value"
	ErrDevRedisGet    = "Redis failed to get value"
	ErrDevRedisDelete = "Redis failed to delete key"
	ErrDevRedisSetNX  = "Redis failed to acquire lock"

	ErrDevMissingProcedure   = "Procedure type is empty or not one of the known procedures"
	ErrDevInvalidTaxID       = "Tax ID does not match the expected pattern"
	ErrDevInvalidBirthDate   = "Birth date is unparseable, before 1900 or not in the past"
	ErrDevIncompleteName     = "Full name has fewer than two words after trimming"
	ErrDevMissingRiskFactors = "Diabetes or hypertension history left unanswered for a procedure that requires them"
	ErrDevUnknownQuestionKey = "Answer edit references an unknown question key"
	ErrDevAnswerTypeMismatch = "Answer value type does not match the question kind"

	ErrDevSubmissionInFlight       = "Another submission for this session is still in flight"
	ErrDevScoringBuildRequest      = "Failed to build scoring service request"
	ErrDevScoringUnreachable       = "Scoring service request failed"
	ErrDevScoringBadStatus         = "Scoring service responded with a non-success status"
	ErrDevScoringMalformedResponse = "Scoring service response is missing the eligibility result field"
	ErrDevNoSubmissionResult       = "No stored eligibility result for this session"
	ErrDevServerDeadlineExceeded   = "Server took too long to process the request"
)
