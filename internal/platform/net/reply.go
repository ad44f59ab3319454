package net

import (
	"net/http"

	perr "tutorhub/internal/platform/errors"
)

// Wire is the response envelope every transport writes
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Success builds a 2xx envelope with data
func Success(status int, data any, reqID string) (int, Wire) {
	return status, Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		RequestID:  reqID,
		Data:       data,
	}
}

// OK builds a 200 envelope
func OK(data any, reqID string) (int, Wire) { return Success(http.StatusOK, data, reqID) }

// Created builds a 201 envelope
func Created(data any, reqID string) (int, Wire) { return Success(http.StatusCreated, data, reqID) }

// Error builds an error envelope, the status comes from the error code
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		return OK(nil, reqID)
	}
	status := perr.HTTPStatus(err)
	w := perr.WireFrom(err)
	return status, Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       w.Code,
		Error:      w.Message,
		Field:      w.Field,
		RequestID:  reqID,
	}
}

// HTTPStatus maps a project error to an http status, nil is 200
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return perr.HTTPStatus(err)
}
