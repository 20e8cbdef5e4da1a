// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypehub/api/internal/platform/constants"
	requestutil "github.com/hypehub/api/internal/platform/request"
	"github.com/hypehub/api/internal/platform/validate"
)

type payload struct {
	Name string `json:"name"`
}

func TestDecodeJSON(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"jacket"}`))

		var target payload
		require.NoError(t, requestutil.DecodeJSON(httptest.NewRecorder(), request, &target))
		assert.Equal(t, "jacket", target.Name)
	})

	t.Run("malformed", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))

		var target payload
		assert.Equal(t, validate.ErrInvalidJSON, requestutil.DecodeJSON(httptest.NewRecorder(), request, &target))
	})

	t.Run("oversized", func(t *testing.T) {
		padding := strings.Repeat("a", constants.MaxRequestBodyBytes)
		request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"`+padding+`"}`))

		var target payload
		err := requestutil.DecodeJSON(httptest.NewRecorder(), request, &target)
		assert.Equal(t, requestutil.ErrBodyTooLarge, err)
		assert.Empty(t, target.Name)
	})
}
