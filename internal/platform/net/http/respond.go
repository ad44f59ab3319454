// Package http provides the platform HTTP surface: router seam, server and envelope responses
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "tutorhub/internal/platform/errors"
	"tutorhub/internal/platform/logger"
	pnet "tutorhub/internal/platform/net"
)

// Envelope is the standard response body for all endpoints
type Envelope = pnet.Wire

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Named("http").Warn().Err(err).Int("status", status).Msg("encode response")
	}
}

// RespondError maps a project error into an envelope and writes it
// for middleware that short-circuits before a handler runs
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, body := pnet.Error(err, pnet.RequestID(r.Context()))
	logFailure(r, status, err)
	JSON(w, status, body)
}

// logFailure logs 5xx answers, and client answers that hide a backend
// failure: an op tagged error with a cause, a failed count query for one
func logFailure(r *stdhttp.Request, status int, err error) {
	e, ours := perr.As(err)
	op := ""
	if ours {
		op = e.Op()
	}
	log := logger.C(r.Context())
	switch {
	case status >= stdhttp.StatusInternalServerError:
		log.Error().Err(err).Str("path", r.URL.Path).Str("op", op).Msg("request failed")
	case op != "" && e.Unwrap() != nil:
		log.Warn().Err(err).Str("path", r.URL.Path).Str("op", op).Int("status", status).Msg("request failed")
	}
}

// Response is a functional response object for return-style handlers
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}

	reqID := pnet.RequestID(r.Context())
	if err, ok := resp.Body.(error); ok && err != nil {
		status, body := pnet.Error(err, reqID)
		logFailure(r, status, err)
		JSON(w, status, body)
		return
	}
	_, body := pnet.Success(status, resp.Body, reqID)
	JSON(w, status, body)
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created returns a 201 response
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response that maps the error to status and envelope
func Error(err error) Response { return Response{Body: err} }
