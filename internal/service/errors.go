package service

import "errors"

var (
	ErrValidation      = errors.New("validation failed")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrPaymentDeclined = errors.New("payment declined")
)

// Error carries a client-facing message for one of the sentinel kinds.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func fail(kind error, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Identity is what a verified bearer token proves about the caller.
type Identity struct {
	UserID uint
	Email  string
}
