// Package apperr defines the typed application error carried from the
// service layer to the HTTP boundary. Every error holds the status code
// it should surface as; anything else becomes a 500.
package apperr

import "net/http"

type Error struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// Unauthenticated is a missing, invalid or expired session (401).
func Unauthenticated(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

// Forbidden covers inactive accounts, role/ownership mismatches and
// business-rule denials (403).
func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

// NotFound means the referenced entity is absent (404).
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// Conflict is a uniqueness violation (409).
func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

// InvalidRequest is a business-rule violation such as a bad state
// transition or a malformed reference list (400).
func InvalidRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}
