// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hypehub/api/internal/platform/apperr"
	"github.com/hypehub/api/internal/platform/ctxutil"
	"github.com/hypehub/api/internal/platform/middleware"
	requestutil "github.com/hypehub/api/internal/platform/request"
	"github.com/hypehub/api/internal/platform/respond"
)

// # Definitions & Constructors

// Handler implements the session HTTP endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication routes.
//
// # Endpoints
//   - POST /register                   : Creates a new account.
//   - POST /login                      : Returns {token, refreshToken}.
//   - POST /refresh-token              : Returns {token}.
//   - POST /revoke-token/{identifier}  : Clears a refresh token (bearer).
//   - GET  /current-account            : Returns the caller's account (bearer).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/refresh-token", handler.refresh)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/revoke-token/{identifier}", handler.revoke)
		r.Get("/current-account", handler.currentAccount)
	})

	return router
}

// # Request Payloads

type registerRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	IsPrivate bool   `json:"isPrivate"`
}

type loginRequest struct {
	EmailOrUsername string `json:"emailOrUsername"`
	Password        string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

/*
Register handles the creation of a new account.

POST /api/v1/auth/register

Response:
  - 200: AccountView
  - 400: Bad input or validation failure
  - 409: Username or Email already exists
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.authService.Register(request.Context(), RegisterInput{
		Username:  input.Username,
		Email:     input.Email,
		Password:  input.Password,
		IsPrivate: input.IsPrivate,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, account)
}

/*
Login authenticates an account and issues a token pair.

POST /api/v1/auth/login

Response:
  - 200: {token, refreshToken}
  - 400: Validation failure or wrong credentials
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	pair, err := handler.authService.Authenticate(request.Context(), input.EmailOrUsername, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, pair)
}

/*
Refresh exchanges a refresh token for a new access token.

POST /api/v1/auth/refresh-token

Response:
  - 200: {token}
  - 400: Missing refresh token
  - 401: Unknown or expired refresh token
*/
func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	var input refreshRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, err := handler.authService.Refresh(request.Context(), input.RefreshToken)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, AccessToken{Token: token})
}

/*
Revoke clears the refresh token of an account.

POST /api/v1/auth/revoke-token/{identifier}

Response:
  - 204: Revoked (or nothing to revoke)
  - 401: Not authenticated or unknown account
  - 403: Not the owner and not an administrator
*/
func (handler *Handler) revoke(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.authService.Revoke(request.Context(), claims, requestutil.Param(request, "identifier")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
CurrentAccount returns the account identified by the bearer token.

GET /api/v1/auth/current-account

Response:
  - 200: AccountView
  - 401: Missing or unreadable token
  - 404: Account no longer exists
*/
func (handler *Handler) currentAccount(writer http.ResponseWriter, request *http.Request) {
	token := ctxutil.GetAccessToken(request.Context())
	if token == "" {
		respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
		return
	}

	account, err := handler.authService.GetCurrentAccount(request.Context(), token)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, account)
}
