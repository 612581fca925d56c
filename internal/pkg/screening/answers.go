package screening

import (
	"fmt"
	"screening-service/internal/pkg/constvars"
	"strings"

	"github.com/goccy/go-json"
)

// TriState is a yes/no answer that also remembers whether the user answered
// at all. The UI default is Unanswered and stays distinguishable from an
// explicit "no" until normalization collapses it at the submission boundary.
type TriState int

const (
	TriStateUnanswered TriState = iota
	TriStateYes
	TriStateNo
)

func (t TriState) Answered() bool {
	return t != TriStateUnanswered
}

func (t TriState) Yes() bool {
	return t == TriStateYes
}

// MarshalJSON writes Yes/No as booleans and Unanswered as null, which is the
// wire shape the form layer reads back.
func (t TriState) MarshalJSON() ([]byte, error) {
	switch t {
	case TriStateYes:
		return []byte("true"), nil
	case TriStateNo:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

func (t *TriState) UnmarshalJSON(data []byte) error {
	switch strings.TrimSpace(string(data)) {
	case "null":
		*t = TriStateUnanswered
	case "true":
		*t = TriStateYes
	case "false":
		*t = TriStateNo
	default:
		return fmt.Errorf("invalid tri-state value: %s", data)
	}
	return nil
}

// AnswerSet is the full mutable answer state of one questionnaire. Fields the
// user never touched keep their zero value: empty string for inputs,
// TriStateUnanswered for flags.
type AnswerSet struct {
	FullName            string   `json:"fullName"`
	TaxID               string   `json:"taxId"`
	BirthDate           string   `json:"birthDate"`
	BMI                 string   `json:"bmi"`
	Sex                 string   `json:"sex"`
	DiabetesHistory     TriState `json:"diabetesHistory"`
	HypertensionHistory TriState `json:"hypertensionHistory"`

	WeightLossAttempt    TriState `json:"weightLossAttempt"`
	ObesityOverFiveYears TriState `json:"obesityOverFiveYears"`

	LargeCaliberVeins TriState `json:"largeCaliberVeins"`
	PriorThrombosis   TriState `json:"priorThrombosis"`

	PreexistingJointCondition TriState `json:"preexistingJointCondition"`
	DailyDisablingPain        TriState `json:"dailyDisablingPain"`
	HipWearOverFortyPercent   TriState `json:"hipWearOverFortyPercent"`
}

// FormState is what the answer store holds per session: the selected
// procedure plus the answers.
type FormState struct {
	ProcedureType ProcedureType `json:"procedureType"`
	Answers       AnswerSet     `json:"answers"`
}

// FieldEdit is one user interaction: a question key and its new raw value.
// Text questions carry a string, flag questions a boolean or null (null
// returns the flag to its unanswered state).
type FieldEdit struct {
	Key   string
	Value interface{}
}

// ApplyEdit returns the state after applying one field edit. The input state
// is not mutated, so callers can diff or discard freely.
func ApplyEdit(state FormState, edit FieldEdit) (FormState, error) {
	if edit.Key == constvars.QuestionKeyProcedureType {
		procedureType, err := stringValue(edit)
		if err != nil {
			return state, err
		}
		next := ProcedureType(procedureType)
		if next != "" && !next.Known() {
			return state, fmt.Errorf("unknown procedure type: %s", procedureType)
		}
		state.ProcedureType = next
		return state, nil
	}

	switch edit.Key {
	case constvars.QuestionKeyFullName:
		return applyString(state, edit, func(a *AnswerSet, v string) { a.FullName = v })
	case constvars.QuestionKeyTaxID:
		return applyString(state, edit, func(a *AnswerSet, v string) { a.TaxID = v })
	case constvars.QuestionKeyBirthDate:
		return applyString(state, edit, func(a *AnswerSet, v string) { a.BirthDate = v })
	case constvars.QuestionKeyBMI:
		return applyString(state, edit, func(a *AnswerSet, v string) { a.BMI = v })
	case constvars.QuestionKeySex:
		return applyString(state, edit, func(a *AnswerSet, v string) { a.Sex = v })
	case constvars.QuestionKeyDiabetesHistory:
		return applyFlag(state, edit, func(a *AnswerSet, v TriState) { a.DiabetesHistory = v })
	case constvars.QuestionKeyHypertensionHistory:
		return applyFlag(state, edit, func(a *AnswerSet, v TriState) { a.HypertensionHistory = v })
	case constvars.QuestionKeyWeightLossAttempt:
		return applyFlag(state, edit, func(a *AnswerSet, v TriState) { a.WeightLossAttempt = v })
	case constvars.QuestionKeyObesityOverFiveYears:
		return applyFlag(state, edit, func(a *AnswerSet, v TriState) { a.ObesityOverFiveYears = v })
	case constvars.QuestionKeyLargeCaliberVeins:
		return applyFlag(state, edit, func(a *AnswerSet, v TriState) { a.LargeCaliberVeins = v })
	case constvars.QuestionKeyPriorThrombosis:
		return applyFlag(state, edit, func(a *AnswerSet, v TriState) { a.PriorThrombosis = v })
	case constvars.QuestionKeyPreexistingJointCondition:
		return applyFlag(state, edit, func(a *AnswerSet, v TriState) { a.PreexistingJointCondition = v })
	case constvars.QuestionKeyDailyDisablingPain:
		return applyFlag(state, edit, func(a *AnswerSet, v TriState) { a.DailyDisablingPain = v })
	case constvars.QuestionKeyHipWearOverFortyPercent:
		return applyFlag(state, edit, func(a *AnswerSet, v TriState) { a.HipWearOverFortyPercent = v })
	}
	return state, fmt.Errorf("unknown question key: %s", edit.Key)
}

// KnownQuestionKey reports whether key names the procedure selector or any
// question in the registry.
func KnownQuestionKey(key string) bool {
	if key == constvars.QuestionKeyProcedureType {
		return true
	}
	for _, question := range baseQuestions {
		if question.Key == key {
			return true
		}
	}
	for _, block := range conditionalQuestions {
		for _, question := range block {
			if question.Key == key {
				return true
			}
		}
	}
	return false
}

func applyString(state FormState, edit FieldEdit, set func(*AnswerSet, string)) (FormState, error) {
	value, err := stringValue(edit)
	if err != nil {
		return state, err
	}
	set(&state.Answers, value)
	return state, nil
}

func applyFlag(state FormState, edit FieldEdit, set func(*AnswerSet, TriState)) (FormState, error) {
	value, err := triStateValue(edit)
	if err != nil {
		return state, err
	}
	set(&state.Answers, value)
	return state, nil
}

func stringValue(edit FieldEdit) (string, error) {
	if edit.Value == nil {
		return "", nil
	}
	value, ok := edit.Value.(string)
	if !ok {
		return "", fmt.Errorf("question %s expects a string value, got %T", edit.Key, edit.Value)
	}
	return value, nil
}

func triStateValue(edit FieldEdit) (TriState, error) {
	if edit.Value == nil {
		return TriStateUnanswered, nil
	}
	value, ok := edit.Value.(bool)
	if !ok {
		return TriStateUnanswered, fmt.Errorf("question %s expects a boolean value, got %T", edit.Key, edit.Value)
	}
	if value {
		return TriStateYes, nil
	}
	return TriStateNo, nil
}

// EncodeFormState and DecodeFormState are the storage codec for the
// session-scoped answer store.
func EncodeFormState(state FormState) ([]byte, error) {
	return json.Marshal(state)
}

func DecodeFormState(data []byte) (FormState, error) {
	var state FormState
	err := json.Unmarshal(data, &state)
	return state, err
}
