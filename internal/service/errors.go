package service

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is; read the user-facing text with errors.As(*Error).
var (
	ErrValidation = errors.New("validation error")
	ErrAuth       = errors.New("authentication error")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrUpstream   = errors.New("upstream error")
	ErrInfra      = errors.New("infrastructure error")
)

// Error is a classified failure. Message is safe to show to clients; Err is the cause.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// Cause returns the wrapped error's text, or "" when there is none.
func (e *Error) Cause() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func validationErr(msg string) error { return &Error{Kind: ErrValidation, Message: msg} }
func authErr(msg string) error       { return &Error{Kind: ErrAuth, Message: msg} }
func conflictErr(msg string) error   { return &Error{Kind: ErrConflict, Message: msg} }
func notFoundErr(msg string) error   { return &Error{Kind: ErrNotFound, Message: msg} }

func upstreamErr(msg string, cause error) error {
	return &Error{Kind: ErrUpstream, Message: msg, Err: cause}
}

func infraErr(msg string, cause error) error {
	return &Error{Kind: ErrInfra, Message: msg, Err: cause}
}

// User-facing messages.
const (
	msgCredentialsRequired = "username and password are required"
	msgUserExists          = "user already exists"
	msgPasswordTooLong     = "password must be at most 72 bytes"
	msgInvalidCredentials  = "invalid credentials"
	msgServerError         = "server error"
	msgTermRequired        = "search term is required"
	msgPokemonNotFound     = "pokemon not found"
	msgListFailed          = "failed to load pokemon"
	msgDetailFailed        = "failed to load pokemon details"
	msgSearchFailed        = "search failed"
	msgHistoryFailed       = "failed to load search history"
)
