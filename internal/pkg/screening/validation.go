package screening

import (
	"regexp"
	"screening-service/internal/pkg/constvars"
	"screening-service/internal/pkg/exceptions"
	"strings"
	"time"
)

var taxIDPattern = regexp.MustCompile(constvars.RegexTaxID)

const birthDateLayout = "2006-01-02"

// Validate runs the submission gate over the answer state. Rules run in a
// fixed order and the first failure wins; nothing is accumulated. A
// comma-formatted BMI passes here, the normalizer fixes it later.
func Validate(procedureType ProcedureType, answers AnswerSet) error {
	return validateAt(procedureType, answers, time.Now())
}

func validateAt(procedureType ProcedureType, answers AnswerSet, now time.Time) error {
	if !procedureType.Known() {
		return exceptions.ErrMissingProcedure(nil)
	}

	if !taxIDPattern.MatchString(answers.TaxID) {
		return exceptions.ErrInvalidTaxID(nil)
	}

	if !validBirthDate(answers.BirthDate, now) {
		return exceptions.ErrInvalidBirthDate(nil)
	}

	if len(strings.Fields(answers.FullName)) < 2 {
		return exceptions.ErrIncompleteName(nil)
	}

	if procedureType.RequiresRiskFactors() {
		if !answers.DiabetesHistory.Answered() || !answers.HypertensionHistory.Answered() {
			return exceptions.ErrMissingRiskFactors(nil)
		}
	}

	return nil
}

// validBirthDate accepts calendar dates from 1900-01-01 up to but excluding
// the current date.
func validBirthDate(value string, now time.Time) bool {
	birthDate, err := time.Parse(birthDateLayout, value)
	if err != nil {
		return false
	}
	if birthDate.Year() < 1900 {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return birthDate.Before(today)
}
