// Package screening holds the questionnaire eligibility engine: the
// procedure-conditional question schema, the answer state and its edit
// transition, the ordered validation rules and the submission normalizer.
// Everything in this package is pure; transport and storage live in the
// service layer.
package screening

import (
	"screening-service/internal/pkg/constvars"
)

type ProcedureType string

const (
	ProcedureBariatricSurgery    ProcedureType = "bariatric-surgery"
	ProcedureVaricoseVeinSurgery ProcedureType = "varicose-vein-surgery"
	ProcedureHipArthroplasty     ProcedureType = "hip-arthroplasty"
)

// Procedures lists every known procedure type in presentation order.
var Procedures = []ProcedureType{
	ProcedureBariatricSurgery,
	ProcedureVaricoseVeinSurgery,
	ProcedureHipArthroplasty,
}

func (p ProcedureType) Known() bool {
	for _, procedure := range Procedures {
		if p == procedure {
			return true
		}
	}
	return false
}

// RequiresRiskFactors reports whether the diabetes and hypertension history
// questions must be explicitly answered before submission.
func (p ProcedureType) RequiresRiskFactors() bool {
	return p == ProcedureBariatricSurgery || p == ProcedureHipArthroplasty
}

type QuestionKind string

const (
	QuestionKindText   QuestionKind = "text"
	QuestionKindTaxID  QuestionKind = "tax-id"
	QuestionKindDate   QuestionKind = "date"
	QuestionKindNumber QuestionKind = "number"
	QuestionKindChoice QuestionKind = "choice"
	QuestionKindFlag   QuestionKind = "flag"
)

type QuestionDefinition struct {
	Key      string         `json:"key"`
	Label    string         `json:"label"`
	Kind     QuestionKind   `json:"kind"`
	Required bool           `json:"required"`
	Options  []string       `json:"options,omitempty"`
	Only     *ProcedureType `json:"procedureType,omitempty"`
}

// baseQuestions are asked regardless of the selected procedure.
var baseQuestions = []QuestionDefinition{
	{Key: constvars.QuestionKeyFullName, Label: "Full name", Kind: QuestionKindText, Required: true},
	{Key: constvars.QuestionKeyTaxID, Label: "National tax ID", Kind: QuestionKindTaxID, Required: true},
	{Key: constvars.QuestionKeyBirthDate, Label: "Date of birth", Kind: QuestionKindDate, Required: true},
	{Key: constvars.QuestionKeyBMI, Label: "Body-mass index", Kind: QuestionKindNumber, Required: true},
	{Key: constvars.QuestionKeySex, Label: "Sex", Kind: QuestionKindChoice, Required: true, Options: []string{"M", "F"}},
	{Key: constvars.QuestionKeyDiabetesHistory, Label: "Family history of diabetes?", Kind: QuestionKindFlag, Required: true},
	{Key: constvars.QuestionKeyHypertensionHistory, Label: "Family history of hypertension?", Kind: QuestionKindFlag, Required: true},
}

// conditionalQuestions maps each procedure to its extra question block, in
// render order. The three blocks are disjoint and never overlap the base set.
// Adding a procedure means adding one entry here and one to Procedures.
var conditionalQuestions = map[ProcedureType][]QuestionDefinition{
	ProcedureBariatricSurgery: {
		{Key: constvars.QuestionKeyWeightLossAttempt, Label: "Tried to lose weight for over a year without success?", Kind: QuestionKindFlag},
		{Key: constvars.QuestionKeyObesityOverFiveYears, Label: "Obese for more than five years?", Kind: QuestionKindFlag},
	},
	ProcedureVaricoseVeinSurgery: {
		{Key: constvars.QuestionKeyLargeCaliberVeins, Label: "Large-caliber varicose veins?", Kind: QuestionKindFlag},
		{Key: constvars.QuestionKeyPriorThrombosis, Label: "Prior episode of thrombosis?", Kind: QuestionKindFlag},
	},
	ProcedureHipArthroplasty: {
		{Key: constvars.QuestionKeyPreexistingJointCondition, Label: "Preexisting condition such as osteoarthritis, rheumatoid arthritis or ankylosing spondylitis?", Kind: QuestionKindFlag},
		{Key: constvars.QuestionKeyDailyDisablingPain, Label: "Daily disabling pain?", Kind: QuestionKindFlag},
		{Key: constvars.QuestionKeyHipWearOverFortyPercent, Label: "Hip joint wear above 40%?", Kind: QuestionKindFlag},
	},
}

// QuestionsFor returns the ordered question list to render for the given
// procedure: the always-asked base set followed by the procedure's
// conditional block. An empty or unknown procedure yields the base set only.
func QuestionsFor(procedureType ProcedureType) []QuestionDefinition {
	questions := make([]QuestionDefinition, 0, len(baseQuestions)+3)
	questions = append(questions, baseQuestions...)
	for _, question := range conditionalQuestions[procedureType] {
		question.Only = &procedureType
		questions = append(questions, question)
	}
	return questions
}
