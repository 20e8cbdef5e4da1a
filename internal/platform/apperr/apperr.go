// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error taxonomy for HypeHub.

Every failure that leaves the service layer is an [AppError] carrying one
[Kind] from a closed set. The HTTP status is never chosen by a handler: it is
derived from the kind by [Kind.Status], the single mapping table of the API.

Architecture:

  - AppError: kind, client-safe message, ordered detail list, and a server-only cause.
  - Kind: closed enum. Adding a kind requires extending [Kind.Status].
  - Mapping: [Kind.Status] is exhaustive; unknown kinds render as 500.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// # Error Kinds

// Kind classifies a failure. The zero value is [KindInternal].
type Kind uint8

const (
	// KindInternal covers anything unclassified.
	KindInternal Kind = iota
	// KindNotFound means a referenced entity does not exist.
	KindNotFound
	// KindValidationFailed means the input failed declarative rules.
	KindValidationFailed
	// KindInvalidCredentials means the login lookup or password check failed.
	KindInvalidCredentials
	// KindBadRequest is a generic malformed request.
	KindBadRequest
	// KindUnauthorized means a missing, invalid or expired token or refresh token.
	KindUnauthorized
	// KindForbidden means the caller is authenticated but not allowed.
	KindForbidden
	// KindConflict means a uniqueness rule would be violated.
	KindConflict
	// KindTooManyRequests means the caller exceeded the rate limit.
	KindTooManyRequests
)

// Kinds lists every defined kind in declaration order.
var Kinds = []Kind{
	KindInternal,
	KindNotFound,
	KindValidationFailed,
	KindInvalidCredentials,
	KindBadRequest,
	KindUnauthorized,
	KindForbidden,
	KindConflict,
	KindTooManyRequests,
}

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidationFailed, KindInvalidCredentials, KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// String returns the machine-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindValidationFailed:
		return "ValidationFailed"
	case KindInvalidCredentials:
		return "InvalidCredentials"
	case KindBadRequest:
		return "BadRequest"
	case KindUnauthorized:
		return "Unauthorized"
	case KindForbidden:
		return "Forbidden"
	case KindConflict:
		return "Conflict"
	case KindTooManyRequests:
		return "TooManyRequests"
	default:
		return "Internal"
	}
}

// # Error Type

// AppError is the canonical error type for the HypeHub API.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	// Kind selects the HTTP status through [Kind.Status].
	Kind Kind
	// Message is a human-readable description safe to return to the client.
	Message string
	// Details holds ordered detail strings, e.g. one per failed validation rule.
	Details []string
	// Cause is the underlying error, used for server-side logging only.
	Cause error
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// Status is shorthand for e.Kind.Status().
func (e *AppError) Status() int { return e.Kind.Status() }

// New builds an [AppError] of the given kind. A nil details slice is
// normalized to an empty one so the wire shape is stable.
func New(kind Kind, message string, details ...string) *AppError {
	if details == nil {
		details = []string{}
	}
	return &AppError{Kind: kind, Message: message, Details: details}
}

// # Client Errors (4xx)

// NotFound creates a [KindNotFound] error with a fixed message.
//
// Example:
//
//	apperr.NotFound("There is no item with the given Id: 42.")
func NotFound(msg string) *AppError {
	return New(KindNotFound, msg)
}

// ValidationFailed creates a [KindValidationFailed] error with one detail per failed rule.
func ValidationFailed(msg string, details ...string) *AppError {
	return New(KindValidationFailed, msg, details...)
}

// InvalidCredentials creates a [KindInvalidCredentials] error.
func InvalidCredentials(msg string) *AppError {
	return New(KindInvalidCredentials, msg)
}

// BadRequest creates a [KindBadRequest] error.
func BadRequest(msg string, details ...string) *AppError {
	return New(KindBadRequest, msg, details...)
}

// Unauthorized creates a [KindUnauthorized] error.
func Unauthorized(msg string) *AppError {
	return New(KindUnauthorized, msg)
}

// Forbidden creates a [KindForbidden] error.
func Forbidden(msg string) *AppError {
	return New(KindForbidden, msg)
}

// Conflict creates a [KindConflict] error for duplicate or unique-constraint violations.
func Conflict(msg string) *AppError {
	return New(KindConflict, msg)
}

// TooManyRequests creates a [KindTooManyRequests] error.
func TooManyRequests(retryAfterSeconds int) *AppError {
	return New(KindTooManyRequests, fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds))
}

// # Server Errors (5xx)

// Internal creates a [KindInternal] error wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	e := New(KindInternal, "An unexpected error occurred")
	e.Cause = cause
	return e
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// KindOf returns the kind of err, or [KindInternal] when err is unclassified.
func KindOf(err error) Kind {
	if ae := As(err); ae != nil {
		return ae.Kind
	}
	return KindInternal
}

// Classify converts any error into an [*AppError]. Unclassified errors become
// [KindInternal] with the original error kept as the cause and no details.
func Classify(err error) *AppError {
	if ae := As(err); ae != nil {
		return ae
	}
	return Internal(err)
}
