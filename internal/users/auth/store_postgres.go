// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hypehub/api/internal/platform/database/schema"
	"github.com/hypehub/api/internal/platform/dberr"
	"github.com/hypehub/api/internal/platform/sec"
)

const accountNotFound = "Account not found."

// PostgresStore implements [IdentityStore] on users.account, users.role and
// users.accountrole.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL implementation of the IdentityStore.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// selectAccount builds a SELECT over the account columns with the given WHERE clause.
func selectAccount(where string) string {
	return fmt.Sprintf(`SELECT %s FROM %s WHERE %s`,
		strings.Join(schema.UserAccount.Columns(), ", "),
		schema.UserAccount.Table,
		where,
	)
}

func scanAccount(row pgx.Row) (*Account, error) {
	account := &Account{}
	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.IsPrivate,
		&account.AvatarURL,
		&account.RefreshTokenHash,
		&account.RefreshTokenExpiresAt,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (store *PostgresStore) findOne(context context.Context, action, where string, args ...any) (*Account, error) {
	account, err := scanAccount(store.pool.QueryRow(context, selectAccount(where), args...))
	if err != nil {
		return nil, dberr.Wrap(err, action, accountNotFound)
	}
	return account, nil
}

// FindByID implements [IdentityStore].
func (store *PostgresStore) FindByID(context context.Context, id string) (*Account, error) {
	return store.findOne(context, "auth_store_find_by_id",
		fmt.Sprintf(`%s = $1`, schema.UserAccount.ID), id)
}

// FindByEmail implements [IdentityStore].
func (store *PostgresStore) FindByEmail(context context.Context, email string) (*Account, error) {
	return store.findOne(context, "auth_store_find_by_email",
		fmt.Sprintf(`LOWER(%s) = LOWER($1)`, schema.UserAccount.Email), email)
}

// FindByUsername implements [IdentityStore].
func (store *PostgresStore) FindByUsername(context context.Context, username string) (*Account, error) {
	return store.findOne(context, "auth_store_find_by_username",
		fmt.Sprintf(`LOWER(%s) = LOWER($1)`, schema.UserAccount.Username), username)
}

// FindByRefreshToken implements [IdentityStore].
func (store *PostgresStore) FindByRefreshToken(context context.Context, fingerprint string, now time.Time) (*Account, error) {
	return store.findOne(context, "auth_store_find_by_refresh_token",
		fmt.Sprintf(`%s = $1 AND %s > $2`, schema.UserAccount.RefreshTokenHash, schema.UserAccount.RefreshTokenExpiresAt),
		fingerprint, now)
}

/*
CheckPassword loads the bcrypt hash and compares it with password.

Returns:
  - bool: true if the password matches
  - error: NotFound if the account vanished, or database errors
*/
func (store *PostgresStore) CheckPassword(context context.Context, accountID, password string) (bool, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.UserAccount.Password, schema.UserAccount.Table, schema.UserAccount.ID)

	var passwordHash string
	if err := store.pool.QueryRow(context, query, accountID).Scan(&passwordHash); err != nil {
		return false, dberr.Wrap(err, "auth_store_check_password", accountNotFound)
	}

	return sec.CheckPasswordHash(password, passwordHash), nil
}

// GetRoles implements [IdentityStore].
func (store *PostgresStore) GetRoles(context context.Context, accountID string) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT r.%s
		FROM %s ar
		JOIN %s r ON r.%s = ar.%s
		WHERE ar.%s = $1
		ORDER BY r.%s`,
		schema.UserRole.Name,
		schema.UserAccountRole.Table,
		schema.UserRole.Table, schema.UserRole.ID, schema.UserAccountRole.RoleID,
		schema.UserAccountRole.AccountID,
		schema.UserRole.Name,
	)

	rows, err := store.pool.Query(context, query, accountID)
	if err != nil {
		return nil, dberr.Wrap(err, "auth_store_get_roles", accountNotFound)
	}

	roles, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, dberr.Wrap(err, "auth_store_scan_roles", accountNotFound)
	}
	return roles, nil
}

/*
Update persists the mutable account fields.

Description: Writes privacy, avatar and the refresh token columns in a single
statement. Concurrent writers race; the last one wins.
*/
func (store *PostgresStore) Update(context context.Context, account *Account) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $1`,
		schema.UserAccount.Table,
		schema.UserAccount.IsPrivate,
		schema.UserAccount.AvatarURL,
		schema.UserAccount.RefreshTokenHash,
		schema.UserAccount.RefreshTokenExpiresAt,
		schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID,
	)

	tag, err := store.pool.Exec(context, query,
		account.ID,
		account.IsPrivate,
		account.AvatarURL,
		account.RefreshTokenHash,
		account.RefreshTokenExpiresAt,
		account.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "auth_store_update", accountNotFound)
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "auth_store_update", accountNotFound)
	}
	return nil
}

/*
Create inserts the account and its role assignments in one transaction.

Returns:
  - error: Conflict on duplicate username or email, or database errors
*/
func (store *PostgresStore) Create(context context.Context, account *Account, passwordHash string, roles []string) error {
	return pgx.BeginFunc(context, store.pool, func(tx pgx.Tx) error {
		insertAccount := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			schema.UserAccount.Table,
			schema.UserAccount.ID,
			schema.UserAccount.Username,
			schema.UserAccount.Email,
			schema.UserAccount.Password,
			schema.UserAccount.IsPrivate,
			schema.UserAccount.AvatarURL,
			schema.UserAccount.CreatedAt,
			schema.UserAccount.UpdatedAt,
		)

		if _, err := tx.Exec(context, insertAccount,
			account.ID,
			account.Username,
			account.Email,
			passwordHash,
			account.IsPrivate,
			account.AvatarURL,
			account.CreatedAt,
			account.UpdatedAt,
		); err != nil {
			return dberr.Wrap(err, "auth_store_create_account", accountNotFound)
		}

		insertRoles := fmt.Sprintf(`
			INSERT INTO %s (%s, %s)
			SELECT $1, %s FROM %s WHERE %s = ANY($2)`,
			schema.UserAccountRole.Table, schema.UserAccountRole.AccountID, schema.UserAccountRole.RoleID,
			schema.UserRole.ID, schema.UserRole.Table, schema.UserRole.Name,
		)

		tag, err := tx.Exec(context, insertRoles, account.ID, roles)
		if err != nil {
			return dberr.Wrap(err, "auth_store_assign_roles", accountNotFound)
		}
		if int(tag.RowsAffected()) != len(roles) {
			return fmt.Errorf("auth_store_assign_roles: %d of %d roles exist", tag.RowsAffected(), len(roles))
		}
		return nil
	})
}
