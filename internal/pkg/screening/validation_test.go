package screening

import (
	"errors"
	"screening-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validationNow = time.Date(2026, time.August, 29, 15, 4, 5, 0, time.UTC)

func completeAnswers() AnswerSet {
	return AnswerSet{
		FullName:            "Maria Silva",
		TaxID:               "123.456.789-01",
		BirthDate:           "1985-03-12",
		BMI:                 "27,5",
		Sex:                 "F",
		DiabetesHistory:     TriStateNo,
		HypertensionHistory: TriStateYes,
	}
}

func assertValidationError(t *testing.T, err error, devMessage string) {
	t.Helper()
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "validation errors should be CustomError")
	assert.Equal(t, 422, customErr.StatusCode)
	assert.Equal(t, devMessage, customErr.DevMessage)
}

func TestValidateProcedureType(t *testing.T) {
	t.Run("Unset Procedure", func(t *testing.T) {
		err := validateAt("", completeAnswers(), validationNow)
		assertValidationError(t, err, "Procedure type is empty or not one of the known procedures")
	})

	t.Run("Unknown Procedure", func(t *testing.T) {
		err := validateAt("appendectomy", completeAnswers(), validationNow)
		assertValidationError(t, err, "Procedure type is empty or not one of the known procedures")
	})

	t.Run("Every Known Procedure Passes", func(t *testing.T) {
		for _, procedure := range Procedures {
			err := validateAt(procedure, completeAnswers(), validationNow)
			assert.NoError(t, err, "procedure %s should validate", procedure)
		}
	})
}

func TestValidateTaxID(t *testing.T) {
	valid := []string{
		"123.456.789-01",
		"123456789-01",
		"12345678901",
		"123.456.78901",
	}
	for _, taxID := range valid {
		t.Run("Valid "+taxID, func(t *testing.T) {
			answers := completeAnswers()
			answers.TaxID = taxID
			assert.NoError(t, validateAt(ProcedureVaricoseVeinSurgery, answers, validationNow))
		})
	}

	invalid := []string{
		"",
		"123.456.789-1",
		"123.456.789",
		"123.456.789-012",
		"abc.def.ghi-jk",
		"123,456,789-01",
	}
	for _, taxID := range invalid {
		t.Run("Invalid "+taxID, func(t *testing.T) {
			answers := completeAnswers()
			answers.TaxID = taxID
			err := validateAt(ProcedureVaricoseVeinSurgery, answers, validationNow)
			assertValidationError(t, err, "Tax ID does not match the expected pattern")
		})
	}
}

func TestValidateBirthDate(t *testing.T) {
	cases := []struct {
		name      string
		birthDate string
		valid     bool
	}{
		{"Before 1900", "1899-12-31", false},
		{"First Accepted Date", "1900-01-01", true},
		{"Ordinary Past Date", "1985-03-12", true},
		{"Yesterday", "2026-08-28", true},
		{"Today", "2026-08-29", false},
		{"Future", "2031-01-01", false},
		{"Unparseable", "12/03/1985", false},
		{"Empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			answers := completeAnswers()
			answers.BirthDate = tc.birthDate
			err := validateAt(ProcedureVaricoseVeinSurgery, answers, validationNow)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assertValidationError(t, err, "Birth date is unparseable, before 1900 or not in the past")
			}
		})
	}
}

func TestValidateFullName(t *testing.T) {
	t.Run("Single Word", func(t *testing.T) {
		answers := completeAnswers()
		answers.FullName = "Maria"
		err := validateAt(ProcedureVaricoseVeinSurgery, answers, validationNow)
		assertValidationError(t, err, "Full name has fewer than two words after trimming")
	})

	t.Run("Single Word With Padding", func(t *testing.T) {
		answers := completeAnswers()
		answers.FullName = "  Maria  "
		err := validateAt(ProcedureVaricoseVeinSurgery, answers, validationNow)
		assertValidationError(t, err, "Full name has fewer than two words after trimming")
	})

	t.Run("Two Words", func(t *testing.T) {
		answers := completeAnswers()
		answers.FullName = "Maria Silva"
		assert.NoError(t, validateAt(ProcedureVaricoseVeinSurgery, answers, validationNow))
	})

	t.Run("Many Words", func(t *testing.T) {
		answers := completeAnswers()
		answers.FullName = "Maria de Lourdes Silva"
		assert.NoError(t, validateAt(ProcedureVaricoseVeinSurgery, answers, validationNow))
	})
}

func TestValidateRiskFactors(t *testing.T) {
	t.Run("Bariatric Requires Both", func(t *testing.T) {
		answers := completeAnswers()
		answers.DiabetesHistory = TriStateUnanswered
		answers.HypertensionHistory = TriStateUnanswered
		err := validateAt(ProcedureBariatricSurgery, answers, validationNow)
		assertValidationError(t, err, "Diabetes or hypertension history left unanswered for a procedure that requires them")
	})

	t.Run("Bariatric One Missing", func(t *testing.T) {
		answers := completeAnswers()
		answers.HypertensionHistory = TriStateUnanswered
		err := validateAt(ProcedureBariatricSurgery, answers, validationNow)
		assertValidationError(t, err, "Diabetes or hypertension history left unanswered for a procedure that requires them")
	})

	t.Run("Hip Arthroplasty Requires Both", func(t *testing.T) {
		answers := completeAnswers()
		answers.DiabetesHistory = TriStateUnanswered
		err := validateAt(ProcedureHipArthroplasty, answers, validationNow)
		assertValidationError(t, err, "Diabetes or hypertension history left unanswered for a procedure that requires them")
	})

	t.Run("Explicit No Counts As Answered", func(t *testing.T) {
		answers := completeAnswers()
		answers.DiabetesHistory = TriStateNo
		answers.HypertensionHistory = TriStateNo
		assert.NoError(t, validateAt(ProcedureBariatricSurgery, answers, validationNow))
	})

	t.Run("Varicose Veins Skips The Rule", func(t *testing.T) {
		answers := completeAnswers()
		answers.DiabetesHistory = TriStateUnanswered
		answers.HypertensionHistory = TriStateUnanswered
		assert.NoError(t, validateAt(ProcedureVaricoseVeinSurgery, answers, validationNow))
	})
}

func TestValidateShortCircuitOrder(t *testing.T) {
	t.Run("Procedure Beats Tax ID", func(t *testing.T) {
		answers := completeAnswers()
		answers.TaxID = "nonsense"
		err := validateAt("", answers, validationNow)
		assertValidationError(t, err, "Procedure type is empty or not one of the known procedures")
	})

	t.Run("Tax ID Beats Birth Date", func(t *testing.T) {
		answers := completeAnswers()
		answers.TaxID = "nonsense"
		answers.BirthDate = "nonsense"
		err := validateAt(ProcedureBariatricSurgery, answers, validationNow)
		assertValidationError(t, err, "Tax ID does not match the expected pattern")
	})

	t.Run("Birth Date Beats Name", func(t *testing.T) {
		answers := completeAnswers()
		answers.BirthDate = "nonsense"
		answers.FullName = "Maria"
		err := validateAt(ProcedureBariatricSurgery, answers, validationNow)
		assertValidationError(t, err, "Birth date is unparseable, before 1900 or not in the past")
	})

	t.Run("Name Beats Risk Factors", func(t *testing.T) {
		answers := completeAnswers()
		answers.FullName = "Maria"
		answers.DiabetesHistory = TriStateUnanswered
		err := validateAt(ProcedureBariatricSurgery, answers, validationNow)
		assertValidationError(t, err, "Full name has fewer than two words after trimming")
	})
}

func TestValidateAcceptsCommaFormattedBMI(t *testing.T) {
	answers := completeAnswers()
	answers.BMI = "31,2"
	assert.NoError(t, validateAt(ProcedureBariatricSurgery, answers, validationNow), "comma BMI is a normalization concern, not a validation failure")
}
