package services

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotFound      = errors.New("email not found")
	ErrNotFound           = errors.New("record not found")
	ErrInvalidSignature   = errors.New("invalid payment signature")
	ErrPaymentReused      = errors.New("payment already recorded for another account")
)

// ValidationError is a rejected input tied to a single request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
