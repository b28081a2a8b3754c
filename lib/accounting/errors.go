// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

package accounting

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ServiceError represents a non-2xx response from the accounting
// service. The service returns structured JSON error bodies; Body holds
// the raw bytes and Message the extracted human-readable description.
type ServiceError struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Message is the error description extracted from the response
	// body, or the raw body when it is not structured JSON.
	Message string

	// Body is the verbatim response body.
	Body json.RawMessage

	// cause is set when the ServiceError wraps a lower-level failure,
	// as with cancellation failures during Transfer.Close.
	cause error
}

func (err *ServiceError) Error() string {
	return fmt.Sprintf("accounting: HTTP %d: %s", err.StatusCode, err.Message)
}

// Unwrap exposes the underlying failure, if any, so callers can reach
// the original error behind a cancellation failure with errors.As.
func (err *ServiceError) Unwrap() error {
	return err.cause
}

// newServiceError builds a ServiceError from a response status and
// body. The service wraps errors as {"error": "..."} or
// {"message": "..."}; anything else is carried verbatim.
func newServiceError(statusCode int, body []byte) *ServiceError {
	serviceError := &ServiceError{
		StatusCode: statusCode,
		Body:       append(json.RawMessage(nil), body...),
	}

	var wireError struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &wireError) == nil {
		switch {
		case wireError.Error != "":
			serviceError.Message = wireError.Error
		case wireError.Message != "":
			serviceError.Message = wireError.Message
		}
	}
	if serviceError.Message == "" {
		serviceError.Message = string(body)
	}
	return serviceError
}

// ValidationError is a locally detected precondition violation
// (non-positive amount, invalid format selector). It is raised before
// any network call; the caller can recover by correcting the input.
type ValidationError struct {
	Message string
}

func (err *ValidationError) Error() string {
	return "accounting: " + err.Message
}

// validationf builds a ValidationError from a format string.
func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// LifecycleError reports misuse of a [Transfer] guard, such as
// confirming before the guard was opened. This is a programming error
// in the caller, not a runtime condition to handle.
type LifecycleError struct {
	Message string
}

func (err *LifecycleError) Error() string {
	return "accounting: " + err.Message
}

// AsServiceError returns the ServiceError in err's chain, if any.
func AsServiceError(err error) (*ServiceError, bool) {
	var serviceError *ServiceError
	ok := errors.As(err, &serviceError)
	return serviceError, ok
}

// IsNotFound reports whether err is a 404 response from the service.
func IsNotFound(err error) bool {
	serviceError, ok := AsServiceError(err)
	return ok && serviceError.StatusCode == 404
}

// IsUnauthorized reports whether err is a 401 response from the
// service (bad or missing credentials).
func IsUnauthorized(err error) bool {
	serviceError, ok := AsServiceError(err)
	return ok && serviceError.StatusCode == 401
}

// IsValidation reports whether err is a locally raised
// ValidationError.
func IsValidation(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}
