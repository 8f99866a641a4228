package middleware

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance used by the request validators.
var Validate = validator.New()

// FieldErrors flattens validator.ValidationErrors into a field -> message
// map suitable for ValidationErrorResponse.
func FieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "Invalid request body!"
		return errors
	}
	for _, fieldError := range validationErrors {
		field := strings.ToLower(fieldError.Field())
		switch fieldError.Tag() {
		case "required":
			errors[field] = "This field is required!"
		case "min":
			errors[field] = "Must be at least " + fieldError.Param() + " characters long!"
		case "max":
			errors[field] = "Must be at most " + fieldError.Param() + " characters long!"
		case "email":
			errors[field] = "Invalid email!"
		case "url":
			errors[field] = "Invalid URL!"
		case "gte":
			errors[field] = "Must be at least " + fieldError.Param() + "!"
		case "lte":
			errors[field] = "Must be at most " + fieldError.Param() + "!"
		case "oneof":
			errors[field] = "Must be one of: " + fieldError.Param() + "!"
		default:
			errors[field] = "Invalid value!"
		}
	}
	return errors
}
