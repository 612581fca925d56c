package constvars

var CustomValidationErrorMessages = map[string]string{
	"required":       "is required",
	"oneof":          "must be one of: %s",
	"max":            "must be at most %s characters",
	"procedure_type": "must be a known procedure type",
}

var TagsWithParams = map[string]bool{
	"oneof": true,
	"max":   true,
}
