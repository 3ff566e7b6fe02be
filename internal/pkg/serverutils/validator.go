package serverutils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"newsroom-be/internal/pkg/validation"
	"newsroom-be/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report issue paths by json field name, not Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// "nocode" rejects free text that looks like source code.
	_ = v.RegisterValidation("nocode", func(fl validator.FieldLevel) bool {
		return !validation.ContainsCode(fl.Field().String())
	})

	return v
}

// ValidateRequest runs tag validation on req and converts failures into an
// apperrors.ValidationError with one {path, message} issue per field.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewBadRequest("Invalid request data")
	}

	issues := make([]apperrors.FieldIssue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, apperrors.FieldIssue{
			Path:    fe.Field(),
			Message: issueMessage(fe),
		})
	}
	return apperrors.NewValidation(issues...)
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "uuid4":
		return fmt.Sprintf("%s must be a valid UUID", fe.Field())
	case "nocode":
		return validation.NoCodeMessage
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
