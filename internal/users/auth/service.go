// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hypehub/api/internal/platform/apperr"
	"github.com/hypehub/api/internal/platform/constants"
	"github.com/hypehub/api/internal/platform/ctxutil"
	"github.com/hypehub/api/internal/platform/metrics"
	"github.com/hypehub/api/internal/platform/sec"
	"github.com/hypehub/api/internal/platform/validate"
	"github.com/hypehub/api/pkg/uuid"
)

// # Contracts & Types

// TokenProvider signs and verifies access tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT carrying the account identity and roles.
	GenerateAccessToken(userID, username string, roles []string, timeToLive time.Duration) (string, error)

	// VerifyToken parses and validates a signed JWT.
	VerifyToken(tokenString string) (*sec.AuthClaims, error)
}

// Config holds the session lifetimes, read once at construction.
type Config struct {
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// Service implements the session manager.
//
// It keeps no state between calls: every operation re-reads the store.
type Service struct {
	store  IdentityStore
	tokens TokenProvider
	config Config

	now          func() time.Time
	hashPassword func(string) (string, error)
}

// NewService constructs a new [Service] with its dependencies.
func NewService(store IdentityStore, tokens TokenProvider, config Config) *Service {
	return &Service{
		store:        store,
		tokens:       tokens,
		config:       config,
		now:          time.Now,
		hashPassword: sec.HashPassword,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	IsPrivate bool
}

/*
Register validates, hashes, and persists a brand new account with the User role.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *AccountView: Created account
  - error: ValidationFailed, Conflict (if identity exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (_ *AccountView, err error) {
	defer func() { metrics.RecordSessionEvent(eventRegister, err == nil) }()

	username := normalizeIdentifier(input.Username)
	email := normalizeEmail(input.Email)

	validator := &validate.Validator{}
	validator.Required(FieldUsername, username).
		MinLen(FieldUsername, username, UsernameMinLength).
		MaxLen(FieldUsername, username, UsernameMaxLength).
		Custom(FieldUsername, strings.ContainsAny(username, " @"), "must not contain spaces or '@'").
		Email(FieldEmail, email).
		MaxLen(FieldEmail, email, EmailMaxLength).
		MinLen(FieldPassword, input.Password, PasswordMinLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Fast-path uniqueness checks; the unique indexes still guard races.
	if taken, err := service.exists(context, service.store.FindByEmail, email); err != nil {
		return nil, err
	} else if taken {
		return nil, apperr.Conflict("Email is already registered.")
	}
	if taken, err := service.exists(context, service.store.FindByUsername, username); err != nil {
		return nil, err
	} else if taken {
		return nil, apperr.Conflict("Username is already taken.")
	}

	passwordHash, err := service.hashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	now := service.now().UTC()
	account := &Account{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		IsPrivate: input.IsPrivate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	roles := []string{sec.RoleUser.String()}

	if err := service.store.Create(context, account, passwordHash, roles); err != nil {
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	ctxutil.GetLogger(context).InfoContext(context, "account_registered", slog.String("account_id", account.ID))
	return NewAccountView(account, roles), nil
}

// # Authentication Flow

/*
Authenticate verifies credentials and issues a new token pair.

The identifier is tried as an email first, then as a username. A successful
login replaces any refresh token previously stored on the account.

Parameters:
  - context: context.Context
  - identifier: email or username
  - password: plain password

Returns:
  - *TokenPair: access token and refresh token
  - error: ValidationFailed, InvalidCredentials or internal failures
*/
func (service *Service) Authenticate(context context.Context, identifier, password string) (_ *TokenPair, err error) {
	defer func() { metrics.RecordSessionEvent(eventLogin, err == nil) }()

	identifier = normalizeIdentifier(identifier)

	validator := &validate.Validator{}
	validator.Required(FieldEmailOrUsername, identifier).
		Required(FieldPassword, password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	account, err := service.lookup(context, identifier, service.findByEmail, service.store.FindByUsername)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.InvalidCredentials(fmt.Sprintf("There is no account with the given credentials: %s.", identifier))
		}
		return nil, err
	}

	valid, err := service.store.CheckPassword(context, account.ID, password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_check_password_failed: %w", err)
	}
	if !valid {
		return nil, apperr.InvalidCredentials("Wrong password.")
	}

	roles, err := service.store.GetRoles(context, account.ID)
	if err != nil {
		return nil, fmt.Errorf("auth_service_get_roles_failed: %w", err)
	}

	accessToken, err := service.tokens.GenerateAccessToken(account.ID, account.Username, roles, service.config.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	refreshToken, err := sec.GenerateSecureToken(constants.RefreshTokenBytes)
	if err != nil {
		return nil, fmt.Errorf("auth_service_refresh_token_failed: %w", err)
	}

	now := service.now().UTC()
	account.setSession(sec.HashToken(refreshToken), now.Add(service.config.RefreshTokenTTL))
	account.UpdatedAt = now

	if err := service.store.Update(context, account); err != nil {
		return nil, fmt.Errorf("auth_service_session_update_failed: %w", err)
	}

	ctxutil.GetLogger(context).InfoContext(context, "session_started", slog.String("account_id", account.ID))
	return &TokenPair{Token: accessToken, RefreshToken: refreshToken}, nil
}

// # Session Management

/*
Refresh exchanges a refresh token for a new access token.

The refresh token itself is not rotated. Unknown and expired tokens fail with
the same Unauthorized error.

Returns:
  - string: a new access token carrying the account's current roles
  - error: BadRequest, Unauthorized or internal failures
*/
func (service *Service) Refresh(context context.Context, refreshToken string) (_ string, err error) {
	defer func() { metrics.RecordSessionEvent(eventRefresh, err == nil) }()

	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return "", apperr.BadRequest("Refresh token must be provided.", FieldRefreshToken+" must have a value.")
	}

	now := service.now().UTC()
	account, err := service.store.FindByRefreshToken(context, sec.HashToken(refreshToken), now)
	if err != nil {
		if isNotFound(err) {
			return "", errInvalidRefreshToken()
		}
		return "", fmt.Errorf("auth_service_refresh_lookup_failed: %w", err)
	}

	// Expiry is evaluated here as well so a lenient store cannot extend a session.
	if !account.HasSession(now) {
		return "", errInvalidRefreshToken()
	}

	roles, err := service.store.GetRoles(context, account.ID)
	if err != nil {
		return "", fmt.Errorf("auth_service_get_roles_failed: %w", err)
	}

	accessToken, err := service.tokens.GenerateAccessToken(account.ID, account.Username, roles, service.config.AccessTokenTTL)
	if err != nil {
		return "", fmt.Errorf("auth_service_refresh_access_token_failed: %w", err)
	}

	return accessToken, nil
}

/*
Revoke clears the refresh token of the account named by identifier.

The actor must own the account or hold the Admin role. The identifier is tried
as a username first, then as an email. Revoking an account without a session
succeeds.

Parameters:
  - context: context.Context
  - actor: claims of the authenticated caller
  - identifier: username or email of the target account

Returns:
  - error: Unauthorized, Forbidden or internal failures
*/
func (service *Service) Revoke(context context.Context, actor *sec.AuthClaims, identifier string) (err error) {
	defer func() { metrics.RecordSessionEvent(eventRevoke, err == nil) }()

	if actor == nil {
		return apperr.Unauthorized("Authentication required")
	}

	identifier = normalizeIdentifier(identifier)
	if identifier == "" {
		return apperr.Unauthorized("Invalid user name.")
	}

	account, err := service.lookup(context, identifier, service.store.FindByUsername, service.findByEmail)
	if err != nil {
		if isNotFound(err) {
			return apperr.Unauthorized("Invalid user name.")
		}
		return err
	}

	if account.ID != actor.UserID && !actor.HasRole(sec.RoleAdmin) {
		return apperr.Forbidden("You can only revoke your own session.")
	}

	if account.RefreshTokenHash == nil && account.RefreshTokenExpiresAt == nil {
		return nil
	}

	account.clearSession()
	account.UpdatedAt = service.now().UTC()

	if err := service.store.Update(context, account); err != nil {
		return fmt.Errorf("auth_service_revoke_failed: %w", err)
	}

	ctxutil.GetLogger(context).InfoContext(context, "session_revoked",
		slog.String("account_id", account.ID),
		slog.String("actor_id", actor.UserID),
	)
	return nil
}

/*
GetCurrentAccount resolves the account identified by an access token.

The token has already been verified by the authentication middleware; its
identifier claim is read again here.

Returns:
  - *AccountView: the account with its roles
  - error: Unauthorized (unreadable token), NotFound (account deleted) or internal failures
*/
func (service *Service) GetCurrentAccount(context context.Context, accessToken string) (*AccountView, error) {
	claims, err := service.tokens.VerifyToken(accessToken)
	if err != nil || claims == nil || claims.UserID == "" {
		return nil, apperr.Unauthorized("Invalid access token.")
	}

	account, err := service.store.FindByID(context, claims.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("There is no account with the given Id: %s.", claims.UserID))
		}
		return nil, fmt.Errorf("auth_service_current_account_failed: %w", err)
	}

	roles, err := service.store.GetRoles(context, account.ID)
	if err != nil {
		return nil, fmt.Errorf("auth_service_get_roles_failed: %w", err)
	}

	return NewAccountView(account, roles), nil
}

// # Helpers

type finder func(context.Context, string) (*Account, error)

// lookup tries each finder in order and returns the first match. A NotFound
// from the last finder is returned as is.
func (service *Service) lookup(context context.Context, value string, finders ...finder) (*Account, error) {
	var lastErr error
	for _, find := range finders {
		account, err := find(context, value)
		if err == nil {
			return account, nil
		}
		if !isNotFound(err) {
			return nil, fmt.Errorf("auth_service_lookup_failed: %w", err)
		}
		lastErr = err
	}
	return nil, lastErr
}

// findByEmail looks an identifier up as a lowercased email.
func (service *Service) findByEmail(context context.Context, email string) (*Account, error) {
	return service.store.FindByEmail(context, strings.ToLower(email))
}

// exists reports whether find matches value.
func (service *Service) exists(context context.Context, find finder, value string) (bool, error) {
	_, err := find(context, value)
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}
	return false, fmt.Errorf("auth_service_lookup_failed: %w", err)
}

func isNotFound(err error) bool {
	return apperr.KindOf(err) == apperr.KindNotFound
}

func errInvalidRefreshToken() *apperr.AppError {
	return apperr.Unauthorized("Invalid refresh token.")
}
