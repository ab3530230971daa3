package booking

import "errors"

var (
	// ErrValidation is returned before any record-store call when
	// required fields are missing or malformed.
	ErrValidation = errors.New("validation failed")

	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")

	// ErrConflict is only returned when the uniqueness check on
	// (trainer, day, time) is enabled.
	ErrConflict = errors.New("slot already booked")
)

func IsErrValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsErrUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

func IsErrNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsErrConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
