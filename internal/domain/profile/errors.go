package profile

import "errors"

var (
	ErrBadRequest        = errors.New("bad request")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNotFound          = errors.New("not found")
	ErrAlreadyRegistered = errors.New("email already registered")

	// ErrPartialFailure marks a multi-step operation that left the
	// record store and the identity provider out of sync after the
	// compensating step also failed.
	ErrPartialFailure = errors.New("partial failure")
)

func IsErrBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest)
}

func IsErrUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

func IsErrNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsErrAlreadyRegistered(err error) bool {
	return errors.Is(err, ErrAlreadyRegistered)
}

func IsErrPartialFailure(err error) bool {
	return errors.Is(err, ErrPartialFailure)
}
