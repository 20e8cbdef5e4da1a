// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hypehub/api/internal/platform/apperr"
)

// PostgreSQL SQLSTATE codes that map to client errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// Wrap inspects a database error and wraps it into an [apperr.AppError].
//
// notFound is the client message used when no row matched. Unique and foreign
// key violations become Conflict and NotFound respectively. Anything else is
// an opaque Internal error carrying the action for logs.
func Wrap(err error, action, notFound string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(notFound)
	}

	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		switch pgError.Code {
		case codeUniqueViolation:
			return apperr.Conflict(fmt.Sprintf("A record with the same %s already exists.", constraintSubject(pgError)))
		case codeForeignKeyViolation:
			return apperr.NotFound(notFound)
		}
	}

	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// IsNoRows reports whether err means the query matched nothing.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func constraintSubject(pgError *pgconn.PgError) string {
	if pgError.ColumnName != "" {
		return pgError.ColumnName
	}
	if pgError.ConstraintName != "" {
		return pgError.ConstraintName
	}
	return "value"
}
