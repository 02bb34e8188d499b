package lattice

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// UnknownErrorMessage is the fallback message used when a failure carries no
// usable description of its own.
const UnknownErrorMessage = "An unknown error occurred. Please try the operation again."

// Error types reported when the response envelope does not name one.
const (
	ErrorTypeAuthorization = "authorization"
	ErrorTypeValidation    = "validation"
	ErrorTypeUnknown       = "unknown"
)

// APIError represents a failed request against the Lattice API.
type APIError struct {
	StatusCode int    `json:"statusCode" yaml:"statusCode"`
	Type       string `json:"type"       yaml:"type"`
	Message    string `json:"message"    yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	return fmt.Sprintf("%s: %s (status: %d)", e.Type, e.Message, e.StatusCode)
}

// IsAuthorizationError reports whether the failure was an authentication or
// authorization rejection; derived from the status code.
func (e *APIError) IsAuthorizationError() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// ValidationError is an APIError carrying per-field messages.
type ValidationError struct {
	APIError

	Fields map[string]string `json:"fields" yaml:"fields"`
}

// Unwrap exposes the embedded APIError so errors.As can match either level.
func (e *ValidationError) Unwrap() error {
	return &e.APIError
}

// errorEnvelope is the wire shape of API error responses.
type errorEnvelope struct {
	Error            string            `json:"error"`
	ErrorDescription string            `json:"error_description"`
	Fields           map[string]string `json:"fields"`
}

// NormalizeError converts an arbitrary error into the APIError taxonomy.
// Already-normalized errors pass through unchanged, so the function is
// idempotent and never double-wraps.
func NormalizeError(err error) error {
	if err == nil {
		return nil
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	message := err.Error()
	if message == "" {
		message = UnknownErrorMessage
	}

	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Type:       ErrorTypeUnknown,
		Message:    message,
	}
}

// ErrorFromResponse maps a failed response to an APIError or, when the body
// carries a field map, a ValidationError. The body is parsed leniently: an
// unparsable body still yields a typed error with a fallback message.
func ErrorFromResponse(statusCode int, body []byte) error {
	var envelope errorEnvelope

	_ = json.Unmarshal(body, &envelope)

	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		message := envelope.ErrorDescription
		if message == "" {
			message = "Unauthorized"
		}

		errType := envelope.Error
		if errType == "" {
			errType = ErrorTypeAuthorization
		}

		return &APIError{
			StatusCode: statusCode,
			Type:       errType,
			Message:    message,
		}
	}

	if len(envelope.Fields) > 0 {
		return &ValidationError{
			APIError: APIError{
				StatusCode: statusCode,
				Type:       envelopeType(envelope),
				Message:    envelopeMessage(envelope),
			},
			Fields: envelope.Fields,
		}
	}

	return &APIError{
		StatusCode: statusCode,
		Type:       envelopeType(envelope),
		Message:    envelopeMessage(envelope),
	}
}

func envelopeType(envelope errorEnvelope) string {
	if envelope.Error != "" {
		return envelope.Error
	}

	return ErrorTypeUnknown
}

func envelopeMessage(envelope errorEnvelope) string {
	if envelope.ErrorDescription != "" {
		return envelope.ErrorDescription
	}

	return UnknownErrorMessage
}

// IsAuthorizationError reports whether err is a normalized 401/403 failure.
func IsAuthorizationError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.IsAuthorizationError()
	}

	return false
}
