// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response helpers shared by every endpoint. Errors
// leave through failErr, which is the single place where apperr kinds are
// translated into HTTP statuses:
//
//	KindValidation -> 400 bad_request   (error + details per field)
//	KindNotFound   -> 404 not_found
//	KindConflict   -> 409 conflict
//	anything else  -> 500 internal_error (cause carries the raw message)
//
// A body cut off by the size limit answers 413 payload_too_large.
//
// Success bodies are the bare record, or a JSON array for lists.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-survey-backend/internal/apperr"
	"github.com/tbourn/go-survey-backend/internal/http/middleware"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"not_found"`
	// Human-readable message
	Message string `json:"error" example:"Empresa não encontrada"`
	// Every violated field, for validation failures
	Details []apperr.Violation `json:"details,omitempty"`
	// Raw cause of an internal error
	Cause string `json:"cause,omitempty" example:"database is locked"`
}

// fail aborts the request with a structured error.
func fail(c *gin.Context, status int, code, msg string) {
	abort(c, status, ErrorResponse{Code: code, Message: msg})
}

// RouteNotFound answers unmatched routes.
func RouteNotFound(c *gin.Context) {
	fail(c, http.StatusNotFound, ErrCodeNotFound, msgRouteNotFound)
}

// MethodNotAllowed answers known routes hit with an unsupported verb.
func MethodNotAllowed(c *gin.Context) {
	fail(c, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, msgMethodNotAllowed)
}

// failErr maps err onto the status table above and aborts.
func failErr(c *gin.Context, err error) {
	if errors.Is(err, errBodyTooLarge) {
		fail(c, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, msgBodyTooLarge)
		return
	}

	var ae *apperr.Error
	errors.As(err, &ae)

	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		vs := apperr.ViolationsOf(err)
		middleware.ObserveValidationFailure(c)
		abort(c, http.StatusBadRequest, ErrorResponse{
			Code:    ErrCodeBadRequest,
			Message: apperr.JoinMessages(vs),
			Details: vs,
		})
	case apperr.KindNotFound:
		fail(c, http.StatusNotFound, ErrCodeNotFound, ae.Message)
	case apperr.KindConflict:
		fail(c, http.StatusConflict, ErrCodeConflict, ae.Message)
	default:
		resp := ErrorResponse{Code: ErrCodeInternal, Message: msgInternal}
		if ae == nil {
			resp.Cause = err.Error()
		} else {
			if ae.Message != "" {
				resp.Message = ae.Message
			}
			if ae.Err != nil {
				resp.Cause = ae.Err.Error()
			}
		}
		abort(c, http.StatusInternalServerError, resp)
	}
}

// abort stamps the request id, logs server-side errors with the
// request-scoped logger and writes resp.
func abort(c *gin.Context, status int, resp ErrorResponse) {
	resp.RequestID = c.Writer.Header().Get("X-Request-ID")

	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", resp.Code).
			Str("message", resp.Message).
			Str("cause", resp.Cause).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}
