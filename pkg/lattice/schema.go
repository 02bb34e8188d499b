package lattice

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var errNotWireTime = errors.New("must be an ISO-8601 timestamp")

// isWireTime validates optional timestamp strings in wire payloads.
var isWireTime = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	if _, err := parseWireTime(s); err != nil {
		return errNotWireTime
	}

	return nil
})

// schemaError converts a schema validation failure into a ValidationError
// whose Fields map carries one message per failing field.
func schemaError(err error) error {
	if err == nil {
		return nil
	}

	result := &ValidationError{
		APIError: APIError{
			Type:    ErrorTypeValidation,
			Message: "payload does not match the resource schema",
		},
		Fields: map[string]string{},
	}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		for name, fieldErr := range fieldErrs {
			result.Fields[name] = fieldErr.Error()
		}

		return result
	}

	result.Message = err.Error()

	return result
}
