// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema holds table and column names used by the Postgres stores.
package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table                 string
	ID                    string
	Username              string
	Email                 string
	Password              string
	IsPrivate             string
	AvatarURL             string
	RefreshTokenHash      string
	RefreshTokenExpiresAt string
	CreatedAt             string
	UpdatedAt             string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:                 "users.account",
	ID:                    "id",
	Username:              "username",
	Email:                 "email",
	Password:              "passwordhash",
	IsPrivate:             "isprivate",
	AvatarURL:             "avatarurl",
	RefreshTokenHash:      "refreshtokenhash",
	RefreshTokenExpiresAt: "refreshtokenexpiresat",
	CreatedAt:             "createdat",
	UpdatedAt:             "updatedat",
}

// Columns returns the columns read into an account entity. The password hash
// is excluded; it never leaves the store.
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Username, t.Email, t.IsPrivate, t.AvatarURL,
		t.RefreshTokenHash, t.RefreshTokenExpiresAt, t.CreatedAt, t.UpdatedAt,
	}
}
