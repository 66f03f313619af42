package dto

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is the singleton validator for every form DTO.
var Validate *validator.Validate

func init() {
	Validate = validator.New()

	// Use form field names for errors instead of Go struct names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidationMessage flattens validator errors into one user-facing line.
func ValidationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Field()+" is required")
		case "email":
			parts = append(parts, fe.Field()+" must be a valid email")
		case "gte":
			parts = append(parts, fe.Field()+" must be at least "+fe.Param())
		case "lte":
			parts = append(parts, fe.Field()+" must be at most "+fe.Param())
		default:
			parts = append(parts, fe.Field()+" is invalid")
		}
	}
	return strings.Join(parts, "; ")
}
