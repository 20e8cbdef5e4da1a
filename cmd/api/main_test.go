// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_ReturnsStartupErrors(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_PRIVATE_KEY_PATH", "/keys/private.pem")
	t.Setenv("JWT_PUBLIC_KEY_PATH", "/keys/public.pem")

	err := run(slog.New(slog.DiscardHandler))

	assert.ErrorContains(t, err, "load configuration")
	assert.ErrorContains(t, err, "DATABASE_URL")
}
