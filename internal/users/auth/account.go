// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements the HypeHub session lifecycle.

It verifies credentials, issues access and refresh tokens, renews access
tokens from a refresh token, revokes sessions, and resolves the current
account from an access token.

Architecture:

  - Service: the session manager use cases (Register, Authenticate, Refresh, Revoke, GetCurrentAccount).
  - IdentityStore: account lookup, password check, roles and updates, backed by PostgreSQL.
  - Handler: the /api/v1/auth HTTP surface.

Session state lives on the account row: one refresh token fingerprint and its
expiry. Logging in again overwrites it; revoking clears it.
*/
package auth

import (
	"time"
)

// # Domain Entities

// Account is a registered member as seen by the session layer.
//
// The password hash is owned by the [IdentityStore] and never loaded here.
type Account struct {
	ID        string
	Username  string
	Email     string
	IsPrivate bool
	AvatarURL *string

	// RefreshTokenHash is the SHA-256 fingerprint of the live refresh token.
	RefreshTokenHash      *string
	RefreshTokenExpiresAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasSession reports whether the account holds a refresh token that is still
// valid at now.
func (account *Account) HasSession(now time.Time) bool {
	return account.RefreshTokenHash != nil &&
		account.RefreshTokenExpiresAt != nil &&
		account.RefreshTokenExpiresAt.After(now)
}

// setSession stores a refresh token fingerprint and its expiry.
func (account *Account) setSession(fingerprint string, expiresAt time.Time) {
	account.RefreshTokenHash = &fingerprint
	account.RefreshTokenExpiresAt = &expiresAt
}

// clearSession drops the refresh token.
func (account *Account) clearSession() {
	account.RefreshTokenHash = nil
	account.RefreshTokenExpiresAt = nil
}

// AccountView is the public representation of an account.
type AccountView struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	IsPrivate bool     `json:"isPrivate"`
	AvatarURL *string  `json:"avatarUrl"`
	Roles     []string `json:"roles"`
}

// NewAccountView builds the public view of account with its roles.
func NewAccountView(account *Account, roles []string) *AccountView {
	if roles == nil {
		roles = []string{}
	}
	return &AccountView{
		ID:        account.ID,
		Username:  account.Username,
		Email:     account.Email,
		IsPrivate: account.IsPrivate,
		AvatarURL: account.AvatarURL,
		Roles:     roles,
	}
}

// TokenPair is returned by a successful login.
type TokenPair struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// AccessToken is returned by a successful refresh.
type AccessToken struct {
	Token string `json:"token"`
}
