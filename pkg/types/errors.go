package types

import (
	"fmt"
	"strings"
)

// AuthenticationError is returned when the API rejects the client's
// credentials, or when no credentials were provided at all.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	if e.Message == "" {
		return "authentication failed"
	}
	return e.Message
}

// ValidationError is returned by the submission builders when a job
// parameter is missing, out of range, or not one of the allowed values.
// It is always raised before any network call is made.
type ValidationError struct {
	// Param is the name of the offending parameter
	Param string
	// Allowed lists the accepted values for enumerated parameters
	Allowed []string
	// Message describes what was wrong with the value
	Message string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid parameter %q: %s", e.Param, e.Message)
	if len(e.Allowed) > 0 {
		msg = fmt.Sprintf("%s (allowed: %s)", msg, strings.Join(e.Allowed, ", "))
	}
	return msg
}

// ServerError is returned when the API reports a failure. StatusCode is the
// HTTP status and Message carries the server-reported detail, when present.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("server error (status %d): %s", e.StatusCode, e.Message)
}

// ServiceUnavailableError is returned when the API is temporarily down.
type ServiceUnavailableError struct {
	Message string
}

func (e *ServiceUnavailableError) Error() string {
	if e.Message == "" {
		return "service temporarily unavailable"
	}
	return fmt.Sprintf("service temporarily unavailable: %s", e.Message)
}

// DeserializationError is returned when a server response does not match the
// expected record format. Field names the missing or invalid field.
type DeserializationError struct {
	Field   string
	Message string
}

func (e *DeserializationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("malformed server response: %s", e.Message)
	}
	return fmt.Sprintf("malformed server response: field %q: %s", e.Field, e.Message)
}
