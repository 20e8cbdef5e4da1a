// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypehub/api/internal/platform/constants"
	"github.com/hypehub/api/internal/platform/middleware"
)

func newTestRouter(f *fixture) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Authenticate(f.tokens))
	router.Mount("/api/v1/auth", NewHandler(f.service).Routes())
	return router
}

func doRequest(t *testing.T, handler http.Handler, method, path, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		request.Header.Set("Authorization", "Bearer "+bearer)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestHTTP_LoginSuccess(t *testing.T) {
	f := newFixture(t)
	f.store.seed(t, "alice", "alice@example.com", "correct-pw", "User")
	router := newTestRouter(f)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/auth/login",
		`{"emailOrUsername":"alice@example.com","password":"correct-pw"}`, "")

	require.Equal(t, http.StatusOK, recorder.Code)
	var pair TokenPair
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &pair))
	assert.NotEmpty(t, pair.Token)
	assert.NotEmpty(t, pair.RefreshToken)
}

func TestHTTP_LoginWrongPassword(t *testing.T) {
	f := newFixture(t)
	f.store.seed(t, "alice", "alice@example.com", "correct-pw", "User")
	router := newTestRouter(f)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/auth/login",
		`{"emailOrUsername":"alice@example.com","password":"wrong-pw"}`, "")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"message":"Wrong password.","errors":[],"status":400}`, recorder.Body.String())
}

func TestHTTP_LoginMalformedJSON(t *testing.T) {
	router := newTestRouter(newFixture(t))

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", `{"emailOrUsername":`, "")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"message":"Invalid JSON payload","errors":[],"status":400}`, recorder.Body.String())
}

func TestHTTP_LoginOversizedBody(t *testing.T) {
	router := newTestRouter(newFixture(t))

	body := `{"emailOrUsername":"` + strings.Repeat("a", constants.MaxRequestBodyBytes) + `","password":"x"}`
	recorder := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", body, "")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"message":"Request body too large","errors":[],"status":400}`, recorder.Body.String())
}

func TestHTTP_RefreshUnknown(t *testing.T) {
	router := newTestRouter(newFixture(t))

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/auth/refresh-token", `{"refreshToken":"unknown"}`, "")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"message":"Invalid refresh token.","errors":[],"status":401}`, recorder.Body.String())
}

func TestHTTP_SessionLifecycle(t *testing.T) {
	f := newFixture(t)
	f.store.seed(t, "alice", "alice@example.com", "correct-pw", "User")
	router := newTestRouter(f)

	login := doRequest(t, router, http.MethodPost, "/api/v1/auth/login",
		`{"emailOrUsername":"alice","password":"correct-pw"}`, "")
	require.Equal(t, http.StatusOK, login.Code)
	var pair TokenPair
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &pair))

	refresh := doRequest(t, router, http.MethodPost, "/api/v1/auth/refresh-token",
		`{"refreshToken":"`+pair.RefreshToken+`"}`, "")
	require.Equal(t, http.StatusOK, refresh.Code)
	var renewed AccessToken
	require.NoError(t, json.Unmarshal(refresh.Body.Bytes(), &renewed))
	assert.NotEmpty(t, renewed.Token)

	current := doRequest(t, router, http.MethodGet, "/api/v1/auth/current-account", "", renewed.Token)
	require.Equal(t, http.StatusOK, current.Code)
	var view map[string]any
	require.NoError(t, json.Unmarshal(current.Body.Bytes(), &view))
	assert.Equal(t, "alice", view["username"])
	assert.Equal(t, []any{"User"}, view["roles"])
	assert.Contains(t, view, "avatarUrl")
	assert.Contains(t, view, "isPrivate")

	revoke := doRequest(t, router, http.MethodPost, "/api/v1/auth/revoke-token/alice", "", pair.Token)
	assert.Equal(t, http.StatusNoContent, revoke.Code)
	assert.Empty(t, revoke.Body.String())

	again := doRequest(t, router, http.MethodPost, "/api/v1/auth/refresh-token",
		`{"refreshToken":"`+pair.RefreshToken+`"}`, "")
	assert.Equal(t, http.StatusUnauthorized, again.Code)
}

func TestHTTP_PublicRoutesIgnoreExpiredBearer(t *testing.T) {
	f := newFixture(t)
	alice := f.store.seed(t, "alice", "alice@example.com", "correct-pw", "User")
	router := newTestRouter(f)

	expired, err := f.tokens.GenerateAccessToken(alice.ID, alice.Username, []string{"User"}, -time.Minute)
	require.NoError(t, err)

	login := doRequest(t, router, http.MethodPost, "/api/v1/auth/login",
		`{"emailOrUsername":"alice","password":"correct-pw"}`, expired)
	require.Equal(t, http.StatusOK, login.Code)
	var pair TokenPair
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &pair))
	assert.NotEmpty(t, pair.RefreshToken)

	refresh := doRequest(t, router, http.MethodPost, "/api/v1/auth/refresh-token",
		`{"refreshToken":"`+pair.RefreshToken+`"}`, expired)
	require.Equal(t, http.StatusOK, refresh.Code)
	var renewed AccessToken
	require.NoError(t, json.Unmarshal(refresh.Body.Bytes(), &renewed))
	assert.NotEmpty(t, renewed.Token)

	current := doRequest(t, router, http.MethodGet, "/api/v1/auth/current-account", "", expired)
	assert.Equal(t, http.StatusUnauthorized, current.Code)
}

func TestHTTP_ProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(newFixture(t))

	revoke := doRequest(t, router, http.MethodPost, "/api/v1/auth/revoke-token/alice", "", "")
	assert.Equal(t, http.StatusUnauthorized, revoke.Code)

	current := doRequest(t, router, http.MethodGet, "/api/v1/auth/current-account", "", "")
	assert.Equal(t, http.StatusUnauthorized, current.Code)

	forged := doRequest(t, router, http.MethodGet, "/api/v1/auth/current-account", "", "forged.token.value")
	assert.Equal(t, http.StatusUnauthorized, forged.Code)
}

func TestHTTP_Register(t *testing.T) {
	router := newTestRouter(newFixture(t))

	created := doRequest(t, router, http.MethodPost, "/api/v1/auth/register",
		`{"username":"dave","email":"dave@example.com","password":"long-enough","isPrivate":true}`, "")
	require.Equal(t, http.StatusOK, created.Code)

	var view AccountView
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &view))
	assert.Equal(t, "dave", view.Username)
	assert.True(t, view.IsPrivate)

	duplicate := doRequest(t, router, http.MethodPost, "/api/v1/auth/register",
		`{"username":"dave","email":"dave2@example.com","password":"long-enough"}`, "")
	assert.Equal(t, http.StatusConflict, duplicate.Code)
}
