package plots

import "errors"

var (
	ErrNameRequired = errors.New("name is required")
	ErrInvalidArea  = errors.New("area must be a non-negative number")
)
