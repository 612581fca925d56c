package utils

import (
	"screening-service/internal/pkg/screening"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("procedure_type", validateProcedureType)
}

// ValidateStruct runs binding validation over a request DTO. Domain rules
// (ordered eligibility checks) live in the screening package, not here.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateProcedureType(fl validator.FieldLevel) bool {
	return screening.ProcedureType(fl.Field().String()).Known()
}
