package identity

import "errors"

var (
	ErrNotLinked          = errors.New("telegram not linked")
	ErrInvalidTelegramID  = errors.New("invalid telegram id")
	ErrInvalidMode        = errors.New("invalid action")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRegistrationFailed = errors.New("registration failed")
)
