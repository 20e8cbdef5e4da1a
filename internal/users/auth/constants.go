// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

// # Field Identifiers

const (
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldEmailOrUsername = "emailOrUsername"
	FieldRefreshToken    = "refreshToken"
)

// # Registration Rules

const (
	UsernameMinLength = 3
	UsernameMaxLength = 50
	EmailMaxLength    = 320
	PasswordMinLength = 8
)

// # Session Events

// Labels for metrics.RecordSessionEvent.
const (
	eventRegister = "register"
	eventLogin    = "login"
	eventRefresh  = "refresh"
	eventRevoke   = "revoke"
)
