// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole is a role name stored in users.role and embedded in access tokens.
type UserRole string

const (
	// Unrestricted system access, including revoking other accounts' sessions.
	RoleAdmin UserRole = "Admin"

	// Default role for standard registered accounts.
	RoleUser UserRole = "User"
)

// String returns the role name.
func (r UserRole) String() string { return string(r) }
