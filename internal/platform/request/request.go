// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hypehub/api/internal/platform/apperr"
	"github.com/hypehub/api/internal/platform/constants"
	"github.com/hypehub/api/internal/platform/ctxutil"
	"github.com/hypehub/api/internal/platform/sec"
	"github.com/hypehub/api/internal/platform/validate"
)

// ErrBodyTooLarge is returned when the body exceeds [constants.MaxRequestBodyBytes].
var ErrBodyTooLarge = apperr.BadRequest("Request body too large")

/*
DecodeJSON reads at most [constants.MaxRequestBodyBytes] of the request body
and decodes it into the target structure.

Returns:
  - error: ErrBodyTooLarge past the cap, validate.ErrInvalidJSON if decoding
    fails, otherwise nil
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target interface{}) error {
	if request.Body == nil {
		return validate.ErrInvalidJSON
	}

	request.Body = http.MaxBytesReader(writer, request.Body, constants.MaxRequestBodyBytes)
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return ErrBodyTooLarge
		}
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
UUIDParam retrieves a named URL parameter and checks it is a UUID.

Returns:
  - error: apperr.BadRequest if the parameter is not a UUID
*/
func UUIDParam(request *http.Request, name string) (string, error) {
	value := chi.URLParam(request, name)
	validator := &validate.Validator{}
	if err := validator.UUID(name, value).Err(); err != nil {
		return "", apperr.BadRequest("Malformed identifier", apperr.As(err).Details...)
	}
	return strings.ToLower(value), nil
}

/*
Claims extracts the authenticated user claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

/*
RequiredClaims ensures the request is authenticated and returns the user claims.

Returns:
  - *sec.AuthClaims: The authenticated user claims
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}

/*
RequiredUserID returns the account ID of the currently logged-in caller.
*/
func RequiredUserID(request *http.Request) (string, error) {
	claims, err := RequiredClaims(request)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}

/*
BearerToken extracts the token from an "Authorization: Bearer <token>" header.

Returns:
  - string: the raw token
  - error: apperr.BadRequest if the header is absent or malformed
*/
func BearerToken(request *http.Request) (string, error) {
	header := request.Header.Get("Authorization")
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", apperr.BadRequest("Invalid authorization format")
	}
	return parts[1], nil
}
