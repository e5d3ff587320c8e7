// Package apperr defines the error taxonomy shared by the validator and the
// service layer. Errors carry a Kind that the HTTP layer maps to a status
// code; nothing below the handlers knows about HTTP.
//
// Kinds:
//   - KindValidation: input is malformed or breaks a declared rule (400)
//   - KindNotFound:   the target row or a referenced row is absent (404)
//   - KindConflict:   unique violation or dependents blocking a delete (409)
//   - KindUnexpected: everything else (500)
//
// Callers test kinds with errors.Is against the exported sentinels, or
// with KindOf when every kind matters:
//
//	if errors.Is(err, apperr.ErrNotFound) { ... }
package apperr

import (
	"errors"
	"strings"
)

// Kind classifies an Error.
type Kind uint8

const (
	KindUnexpected Kind = iota
	KindValidation
	KindNotFound
	KindConflict
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation_failed"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "unexpected"
	}
}

// Violation is a single field-level validation failure.
type Violation struct {
	Field   string `json:"field" example:"name"`
	Message string `json:"message" example:"Nome é obrigatório"`
}

// Error is the concrete error type produced by the validator and services.
type Error struct {
	Kind    Kind
	Message string

	// Entity and ID identify the missing row for KindNotFound.
	Entity string
	ID     uint

	// Violations is non-empty only for KindValidation.
	Violations []Violation

	// Err is the underlying cause, if any.
	Err error
}

// Sentinels for errors.Is. Only the Kind is compared.
var (
	ErrValidation = &Error{Kind: KindValidation, Message: "validation failed"}
	ErrNotFound   = &Error{Kind: KindNotFound, Message: "not found"}
	ErrConflict   = &Error{Kind: KindConflict, Message: "conflict"}
)

func (e *Error) Error() string {
	if e.Kind == KindValidation && len(e.Violations) > 0 {
		return e.Message + ": " + JoinMessages(e.Violations)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Validation builds a KindValidation error from one or more violations.
func Validation(vs ...Violation) *Error {
	return &Error{
		Kind:       KindValidation,
		Message:    "Dados inválidos",
		Violations: vs,
	}
}

// NotFound builds a KindNotFound error for entity/id with a user-facing message.
func NotFound(entity string, id uint, msg string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, ID: id, Message: msg}
}

// Conflict builds a KindConflict error wrapping the store cause.
func Conflict(msg string, cause error) *Error {
	return &Error{Kind: KindConflict, Message: msg, Err: cause}
}

// Unexpected builds a KindUnexpected error. When msg is empty the cause
// message is surfaced unchanged.
func Unexpected(msg string, cause error) *Error {
	if msg == "" && cause != nil {
		msg = cause.Error()
	}
	return &Error{Kind: KindUnexpected, Message: msg, Err: cause}
}

// KindOf returns the Kind of err, or KindUnexpected for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// ViolationsOf returns the violations carried by err, if any.
func ViolationsOf(err error) []Violation {
	var e *Error
	if errors.As(err, &e) {
		return e.Violations
	}
	return nil
}

// JoinMessages concatenates violation messages in order.
func JoinMessages(vs []Violation) string {
	msgs := make([]string, 0, len(vs))
	for _, v := range vs {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, "; ")
}
