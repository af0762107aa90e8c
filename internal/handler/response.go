package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"massive-gateway/internal/format"
	"massive-gateway/internal/massive"
	"massive-gateway/internal/model"
	"massive-gateway/pkg/apierror"
)

func writeSuccess(w http.ResponseWriter, status int, data any, meta *model.Meta) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := &model.APIError{
		Code:    "INTERNAL_ERROR",
		Message: "Unexpected server error",
	}

	var apiErr *apierror.APIError
	var statusErr *massive.StatusError
	var urlErr *url.Error

	if errors.As(err, &apiErr) {
		status = apiErr.HTTPStatus
		body.Code = apiErr.Code
		body.Message = apiErr.Message
		body.Details = apiErr.Details
	} else if errors.As(err, &statusErr) {
		status = statusErr.StatusCode
		body.Code = "UPSTREAM_ERROR"
		body.Message = statusErr.Message
		body.Details = statusErr.RequestID
	} else if errors.Is(err, context.DeadlineExceeded) {
		status = http.StatusGatewayTimeout
		body.Code = "UPSTREAM_TIMEOUT"
		body.Message = "Upstream request timed out"
	} else if errors.As(err, &urlErr) {
		status = http.StatusBadGateway
		body.Code = "UPSTREAM_UNAVAILABLE"
		body.Message = "Upstream request failed"
		body.Details = urlErr.Err.Error()
	} else if errors.Is(err, model.ErrUsageDisabled) {
		status = http.StatusServiceUnavailable
		body.Code = "USAGE_DISABLED"
		body.Message = "Usage logging is not configured"
	} else if errors.Is(err, model.ErrInvalidCredentials) || errors.Is(err, model.ErrUnauthorized) || errors.Is(err, model.ErrTokenExpired) {
		status = http.StatusUnauthorized
		body.Code = "UNAUTHORIZED"
		body.Message = "Invalid credentials"
	} else if errors.Is(err, model.ErrInvalidInput) {
		status = http.StatusBadRequest
		body.Code = "BAD_REQUEST"
		body.Message = "Invalid input"
	} else {
		// Log unclassified errors so they are visible in container logs.
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: false,
		Error:   body,
	})
}

// respondCSV finishes every passthrough endpoint: upstream payload in,
// CSV text out through the envelope.
func respondCSV(w http.ResponseWriter, payload []byte, err error) {
	if err != nil {
		writeError(w, err)
		return
	}

	csvText, err := format.JSONToCSV(payload)
	if err != nil {
		writeError(w, apierror.New("UPSTREAM_PAYLOAD", "upstream returned a malformed payload", err.Error(), http.StatusBadGateway))
		return
	}

	writeSuccess(w, http.StatusOK, csvText, nil)
}
