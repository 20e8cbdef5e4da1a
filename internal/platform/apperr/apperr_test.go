// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypehub/api/internal/platform/apperr"
)

/*
TestKind_Status pins the kind to status table.
*/
func TestKind_Status(t *testing.T) {
	expected := map[apperr.Kind]int{
		apperr.KindInternal:           http.StatusInternalServerError,
		apperr.KindNotFound:           http.StatusNotFound,
		apperr.KindValidationFailed:   http.StatusBadRequest,
		apperr.KindInvalidCredentials: http.StatusBadRequest,
		apperr.KindBadRequest:         http.StatusBadRequest,
		apperr.KindUnauthorized:       http.StatusUnauthorized,
		apperr.KindForbidden:          http.StatusForbidden,
		apperr.KindConflict:           http.StatusConflict,
		apperr.KindTooManyRequests:    http.StatusTooManyRequests,
	}

	require.Len(t, apperr.Kinds, len(expected))
	for _, kind := range apperr.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			assert.Equal(t, expected[kind], kind.Status())
		})
	}

	assert.Equal(t, http.StatusInternalServerError, apperr.Kind(200).Status())
	assert.Equal(t, "Internal", apperr.Kind(200).String())
}

/*
TestConstructors verifies messages and detail normalization.
*/
func TestConstructors(t *testing.T) {
	notFound := apperr.NotFound("There is no item with the given Id: 7.")
	assert.Equal(t, apperr.KindNotFound, notFound.Kind)
	assert.Equal(t, "There is no item with the given Id: 7.", notFound.Error())
	assert.NotNil(t, notFound.Details)
	assert.Empty(t, notFound.Details)

	validation := apperr.ValidationFailed("Validation failed", "a.", "b.")
	assert.Equal(t, []string{"a.", "b."}, validation.Details)
	assert.Equal(t, http.StatusBadRequest, validation.Status())

	limited := apperr.TooManyRequests(3)
	assert.Equal(t, "Too many requests. Try again in 3s.", limited.Message)
}

/*
TestClassify covers classified, wrapped and unclassified errors.
*/
func TestClassify(t *testing.T) {
	t.Run("classified", func(t *testing.T) {
		original := apperr.Unauthorized("Invalid refresh token.")
		assert.Same(t, original, apperr.Classify(original))
	})

	t.Run("wrapped", func(t *testing.T) {
		original := apperr.Conflict("Username is already taken.")
		wrapped := fmt.Errorf("register: %w", original)

		classified := apperr.Classify(wrapped)
		assert.Equal(t, apperr.KindConflict, classified.Kind)
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(wrapped))
		assert.True(t, apperr.IsAppError(wrapped))
	})

	t.Run("unclassified", func(t *testing.T) {
		cause := errors.New("connection refused")
		classified := apperr.Classify(cause)

		assert.Equal(t, apperr.KindInternal, classified.Kind)
		assert.Equal(t, http.StatusInternalServerError, classified.Status())
		assert.Empty(t, classified.Details)
		assert.NotContains(t, classified.Message, "connection refused")
		assert.ErrorIs(t, classified, cause)
		assert.False(t, apperr.IsAppError(cause))
		assert.Nil(t, apperr.As(cause))
	})
}
