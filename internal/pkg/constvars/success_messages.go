package constvars

const (
	GetQuestionnaireSchemaSuccessMessage = "Successfully fetched questionnaire schema"
	GetQuestionnaireStateSuccessMessage  = "Successfully fetched questionnaire answers"
	EditQuestionnaireSuccessMessage      = "Successfully updated questionnaire answer"
	SubmitQuestionnaireSuccessMessage    = "Successfully submitted questionnaire"
	GetEligibilityResultSuccessMessage   = "Successfully fetched eligibility result"
	ResetQuestionnaireSuccessMessage     = "Successfully reset questionnaire"
)
