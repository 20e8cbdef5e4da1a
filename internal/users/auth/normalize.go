// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalizeIdentifier trims an email or username and folds it to NFKC, so
// visually identical input (full-width letters, composed accents) resolves to
// the same account.
func normalizeIdentifier(identifier string) string {
	return norm.NFKC.String(strings.TrimSpace(identifier))
}

// normalizeEmail additionally lowercases an email address.
func normalizeEmail(email string) string {
	return strings.ToLower(normalizeIdentifier(email))
}
