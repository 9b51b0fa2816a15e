package records

import "errors"

var (
	ErrInvalidDate        = errors.New("date is required")
	ErrInvalidMillimeters = errors.New("mm must be a non-negative number")
	ErrInvalidYield       = errors.New("yield must be a non-negative number")
	ErrInvalidMoisture    = errors.New("moisture must be a number between 0 and 100")
	ErrUnitRequired       = errors.New("unit is required")
)
