package fields

import "errors"

var (
	ErrNameRequired       = errors.New("name is required")
	ErrCodeRequired       = errors.New("code is required")
	ErrInvitationNotFound = errors.New("invitation code invalid or expired")
)
