// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/hypehub/api/internal/platform/apperr"
	"github.com/hypehub/api/internal/platform/constants"
	"github.com/hypehub/api/internal/platform/ctxutil"
	"github.com/hypehub/api/internal/platform/respond"
	"github.com/hypehub/api/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// Authenticate extracts and verifies the JWT from the Authorization header.
//
// # Flow
//  1. No header: the request proceeds as anonymous.
//  2. Malformed header or invalid token: logged at debug level and the
//     request proceeds as anonymous. Protected routes reject it in [RequireAuth].
//  3. Valid token: claims, the raw token and a user-scoped logger are put on the context.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				ignoreBearer(request, "malformed_header", nil)
				next.ServeHTTP(writer, request)
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			claims, err := verifier.VerifyToken(parts[1])
			if err != nil {
				ignoreBearer(request, "invalid_token", err)
				next.ServeHTTP(writer, request)
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			ctx = ctxutil.WithAccessToken(ctx, parts[1])
			ctx = ctxutil.WithLogger(ctx, ctxutil.GetLogger(ctx).With(slog.String("user_id", claims.UserID)))
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

func ignoreBearer(request *http.Request, reason string, err error) {
	attrs := []any{slog.String("reason", reason)}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}
	ctxutil.GetLogger(request.Context()).DebugContext(request.Context(), "bearer_token_ignored", attrs...)
}

// RequireAuth blocks requests that are not authenticated.
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetAuthUser(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireRole blocks requests whose token does not carry role.
// It implies [RequireAuth].
func RequireRole(role sec.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := ctxutil.GetAuthUser(request.Context())
			if claims == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			if !claims.HasRole(role) {
				respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
