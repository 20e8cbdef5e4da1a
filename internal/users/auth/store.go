// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"
)

// # Identity Data Access

// IdentityStore defines the data access contract for accounts.
//
// Lookups that match nothing return an [apperr.KindNotFound] error.
type IdentityStore interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Account: Hydrated entity
		  - error: NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id string) (*Account, error)

	/*
		FindByEmail returns the account with the given email, compared case-insensitively.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *Account: Hydrated entity
		  - error: NotFound or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*Account, error)

	/*
		FindByUsername returns the account with the given username, compared case-insensitively.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *Account: Hydrated entity
		  - error: NotFound or database retrieval failures
	*/
	FindByUsername(context context.Context, username string) (*Account, error)

	/*
		FindByRefreshToken returns the account holding the refresh token with the
		given fingerprint, provided its expiry is after now.

		Parameters:
		  - context: context.Context
		  - fingerprint: string (SHA-256 hex of the refresh token)
		  - now: time.Time

		Returns:
		  - *Account: Hydrated entity
		  - error: NotFound (absent or expired) or database retrieval failures
	*/
	FindByRefreshToken(context context.Context, fingerprint string, now time.Time) (*Account, error)

	/*
		CheckPassword compares a plain password with the stored hash.

		Returns:
		  - bool: true if the password matches
		  - error: database retrieval failures
	*/
	CheckPassword(context context.Context, accountID, password string) (bool, error)

	/*
		GetRoles returns the role names assigned to the account, sorted by name.
	*/
	GetRoles(context context.Context, accountID string) ([]string, error)

	/*
		Update persists the mutable account fields, including the refresh token
		fingerprint and expiry. Last writer wins.
	*/
	Update(context context.Context, account *Account) error

	/*
		Create persists a new account with its password hash and initial roles.

		Returns:
		  - error: Conflict on a duplicate username or email, or persistence failures
	*/
	Create(context context.Context, account *Account, passwordHash string, roles []string) error
}
