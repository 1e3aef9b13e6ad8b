package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"

	"todo-backend/internal/domain"
)

// Validator is implemented by requests with checks beyond binding tags.
type Validator interface {
	Validate() error
}

// Translate maps a gin binding error to *domain.ValidationError.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		field := jsonName(fe.Field())
		return domain.NewValidationError(field, tagMessage(field, fe.Tag()))
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return domain.NewValidationError("body", "body must be a JSON object")
		}
		return domain.NewValidationError(typeErr.Field,
			fmt.Sprintf("%q must be a %s", typeErr.Field, typeErr.Type.Kind()))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return domain.NewValidationError("body", "malformed JSON body")
	}
	return domain.NewValidationError("", err.Error())
}

func tagMessage(field, tag string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	default:
		return fmt.Sprintf("%q is invalid", field)
	}
}

// jsonName maps a Go field name to the payload key: FullName -> fullName, ID -> id.
func jsonName(s string) string {
	if s == "" || strings.ToUpper(s) == s {
		return strings.ToLower(s)
	}
	return strings.ToLower(s[:1]) + s[1:]
}
