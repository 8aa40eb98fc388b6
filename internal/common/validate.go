package common

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct runs the validate tags of a request struct and returns
// per-field messages, or nil when the struct is valid.
func ValidateStruct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fields := map[string]string{}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fields["_"] = ErrValidation.Error()
		return fields
	}
	for _, fe := range validationErrors {
		switch fe.Tag() {
		case "required":
			fields[fe.Field()] = fe.Field() + " is required"
		case "min":
			fields[fe.Field()] = fe.Field() + " must be at least " + fe.Param() + " characters"
		case "max":
			fields[fe.Field()] = fe.Field() + " must be at most " + fe.Param() + " characters"
		default:
			fields[fe.Field()] = fe.Field() + " is invalid"
		}
	}
	return fields
}
