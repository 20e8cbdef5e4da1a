// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package is the only place that renders errors. Handlers hand any error
// to [Error]; it is classified through [apperr.Classify], logged through the
// request logger, and written as a single JSON body of the shape
// {message, errors, status}.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hypehub/api/internal/platform/apperr"
	"github.com/hypehub/api/internal/platform/ctxutil"
	"github.com/hypehub/api/internal/platform/metrics"
)

// ErrorBody is the JSON body written for every failed request.
type ErrorBody struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
	Status  int      `json:"status"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with the payload as the body.
func OK(writer http.ResponseWriter, data interface{}) {
	JSON(writer, http.StatusOK, data)
}

// Created writes a 201 Created response with the payload as the body.
func Created(writer http.ResponseWriter, data interface{}) {
	JSON(writer, http.StatusCreated, data)
}

// NoContent writes a 204 No Content response.
func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// Error converts any Go error into the standardized JSON error response.
//
// Unclassified errors are logged with full detail and rendered as an opaque
// 500 with no details. If the response has already started, the error is only
// logged.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.Classify(err)
	logger := ctxutil.GetLogger(request.Context())
	requestID := ctxutil.GetRequestID(request.Context())

	if appError.Kind == apperr.KindInternal {
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("kind", appError.Kind.String()),
			slog.String("request_id", requestID),
			slog.Any("cause", appError.Cause),
		)
	} else {
		logger.WarnContext(request.Context(), "api_client_error",
			slog.String("kind", appError.Kind.String()),
			slog.String("request_id", requestID),
			slog.String("error", appError.Message),
		)
	}

	if Started(writer) {
		logger.ErrorContext(request.Context(), "response_already_started",
			slog.String("kind", appError.Kind.String()),
			slog.String("request_id", requestID),
		)
		return
	}

	metrics.RecordError(appError.Kind.String())
	JSON(writer, appError.Status(), Body(appError))
}

// Body builds the wire error shape for a classified error.
func Body(appError *apperr.AppError) ErrorBody {
	details := appError.Details
	if appError.Kind == apperr.KindInternal || details == nil {
		details = []string{}
	}
	return ErrorBody{
		Message: appError.Message,
		Errors:  details,
		Status:  appError.Status(),
	}
}
