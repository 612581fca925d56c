package constvars

// Question keys shared by the schema registry, the answer store and the
// submission payload. The scorer expects exactly these identifiers.
const (
	QuestionKeyProcedureType = "procedureType"

	QuestionKeyFullName            = "fullName"
	QuestionKeyTaxID               = "taxId"
	QuestionKeyBirthDate           = "birthDate"
	QuestionKeyBMI                 = "bmi"
	QuestionKeySex                 = "sex"
	QuestionKeyDiabetesHistory     = "diabetesHistory"
	QuestionKeyHypertensionHistory = "hypertensionHistory"

	QuestionKeyWeightLossAttempt    = "weightLossAttempt"
	QuestionKeyObesityOverFiveYears = "obesityOverFiveYears"

	QuestionKeyLargeCaliberVeins = "largeCaliberVeins"
	QuestionKeyPriorThrombosis   = "priorThrombosis"

	QuestionKeyPreexistingJointCondition = "preexistingJointCondition"
	QuestionKeyDailyDisablingPain        = "dailyDisablingPain"
	QuestionKeyHipWearOverFortyPercent   = "hipWearOverFortyPercent"
)

// Redis key formats, all keyed by session ID so state dies with the session.
const (
	RedisKeyAnswerStateFormat = "questionnaire:answers:%s"
	RedisKeyResultFormat      = "questionnaire:result:%s"
	RedisKeySubmitLockFormat  = "questionnaire:submit-lock:%s"
)

const (
	URLQueryProcedureType = "procedure_type"
)

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_BEARER_TOKEN_KEY         ContextKey = "bearer_token"
)
