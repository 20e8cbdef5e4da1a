// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/hypehub/api/internal/platform/constants"
	"github.com/hypehub/api/internal/platform/respond"
)

// Check pings a single dependency.
type Check func(ctx context.Context) error

// HealthDependencies holds the named checkers for the /ready endpoint.
//
// A nil checker is skipped, which is how an unconfigured Redis is reported.
type HealthDependencies struct {
	Database Check
	Cache    Check
}

type checkResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health.
func (handler *healthHandler) liveness(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, map[string]string{
		constants.FieldStatus:  "ok",
		constants.FieldApp:     constants.AppName,
		constants.FieldVersion: constants.AppVersion,
	})
}

// readiness handles GET /ready. Each check gets its own deadline.
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	results := make([]checkResult, 0, 2)
	ready := true

	for _, dependency := range []struct {
		name  string
		check Check
	}{
		{"postgres", handler.dependencies.Database},
		{"redis", handler.dependencies.Cache},
	} {
		if dependency.check == nil {
			continue
		}

		ctx, cancel := context.WithTimeout(request.Context(), constants.ReadinessTimeout)
		err := dependency.check(ctx)
		cancel()

		result := checkResult{Name: dependency.name, IsOK: err == nil}
		if err != nil {
			ready = false
			result.Error = err.Error()
			handler.logger.Error("readiness_check_failed", slog.String("dependency", dependency.name), slog.Any("error", err))
		}
		results = append(results, result)
	}

	status, code := "ready", http.StatusOK
	if !ready {
		status, code = "degraded", http.StatusServiceUnavailable
	}

	respond.JSON(writer, code, map[string]any{
		constants.FieldStatus: status,
		constants.FieldChecks: results,
	})
}
