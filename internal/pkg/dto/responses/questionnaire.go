package responses

import (
	"screening-service/internal/pkg/screening"
)

type QuestionnaireSchema struct {
	ProcedureType string                         `json:"procedureType,omitempty"`
	Procedures    []screening.ProcedureType      `json:"procedures"`
	Questions     []screening.QuestionDefinition `json:"questions"`
}

type QuestionnaireState struct {
	ProcedureType string              `json:"procedureType"`
	Answers       screening.AnswerSet `json:"answers"`
}

// EligibilityResult carries the scorer's verdict verbatim.
type EligibilityResult struct {
	Eligibility string `json:"eligibility"`
}
