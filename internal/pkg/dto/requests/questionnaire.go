package requests

import (
	"screening-service/internal/pkg/screening"
)

// AnswerEditRequest is one field interaction from the form layer. Value is
// a string for text questions, a boolean for flag questions, or null to
// return a flag to its unanswered state.
type AnswerEditRequest struct {
	Key   string      `json:"key" validate:"required"`
	Value interface{} `json:"value"`
}

// SubmitQuestionnaireRequest optionally carries the full questionnaire in the
// request body. When the body is empty the stored session answers are
// submitted instead.
type SubmitQuestionnaireRequest struct {
	ProcedureType string               `json:"procedureType" validate:"omitempty,procedure_type"`
	Answers       *screening.AnswerSet `json:"answers"`
}
