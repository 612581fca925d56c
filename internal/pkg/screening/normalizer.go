package screening

import (
	"screening-service/internal/pkg/constvars"
	"strings"
)

// SubmissionPayload is the body posted to the scoring service. Answers only
// carries fields with a meaningful value; an explicit "no" flag is dropped
// the same as an unanswered one, which is what the scorer expects.
type SubmissionPayload struct {
	ProcedureType string                 `json:"procedureType"`
	Answers       map[string]interface{} `json:"answers"`
}

// Normalize builds the minimal submission payload from the answer state.
// Empty strings and non-yes flags are filtered out, then the BMI is rewritten
// with a dot decimal separator unconditionally, so it is always present and
// always dot-formatted no matter how it was entered. Pure and idempotent.
func Normalize(procedureType ProcedureType, answers AnswerSet) SubmissionPayload {
	filtered := make(map[string]interface{})

	putText := func(key, value string) {
		if value != "" {
			filtered[key] = value
		}
	}
	putFlag := func(key string, value TriState) {
		if value.Yes() {
			filtered[key] = true
		}
	}

	putText(constvars.QuestionKeyFullName, answers.FullName)
	putText(constvars.QuestionKeyTaxID, answers.TaxID)
	putText(constvars.QuestionKeyBirthDate, answers.BirthDate)
	putText(constvars.QuestionKeySex, answers.Sex)
	putFlag(constvars.QuestionKeyDiabetesHistory, answers.DiabetesHistory)
	putFlag(constvars.QuestionKeyHypertensionHistory, answers.HypertensionHistory)
	putFlag(constvars.QuestionKeyWeightLossAttempt, answers.WeightLossAttempt)
	putFlag(constvars.QuestionKeyObesityOverFiveYears, answers.ObesityOverFiveYears)
	putFlag(constvars.QuestionKeyLargeCaliberVeins, answers.LargeCaliberVeins)
	putFlag(constvars.QuestionKeyPriorThrombosis, answers.PriorThrombosis)
	putFlag(constvars.QuestionKeyPreexistingJointCondition, answers.PreexistingJointCondition)
	putFlag(constvars.QuestionKeyDailyDisablingPain, answers.DailyDisablingPain)
	putFlag(constvars.QuestionKeyHipWearOverFortyPercent, answers.HipWearOverFortyPercent)

	// The BMI is written last and unconditionally, even when the raw value
	// had no comma, so the scorer always sees a dot-formatted value.
	filtered[constvars.QuestionKeyBMI] = strings.ReplaceAll(answers.BMI, ",", ".")

	return SubmissionPayload{
		ProcedureType: string(procedureType),
		Answers:       filtered,
	}
}
