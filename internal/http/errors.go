package http

import (
	"gators-academy/backend/internal/domain/booking"
	"gators-academy/backend/internal/domain/profile"
	"gators-academy/backend/internal/domain/schedule"
	"gators-academy/backend/internal/domain/stats"
)

func mapBookingError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case booking.IsErrValidation(err):
		return 400, err.Error()
	case booking.IsErrUnauthorized(err):
		return 403, err.Error()
	case booking.IsErrNotFound(err):
		return 404, err.Error()
	case booking.IsErrConflict(err):
		return 409, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapScheduleError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case schedule.IsErrBadRequest(err):
		return 400, err.Error()
	case schedule.IsErrUnauthorized(err):
		return 403, err.Error()
	case schedule.IsErrNotFound(err):
		return 404, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapProfileError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case profile.IsErrBadRequest(err):
		return 400, err.Error()
	case profile.IsErrUnauthorized(err):
		return 403, err.Error()
	case profile.IsErrNotFound(err):
		return 404, err.Error()
	case profile.IsErrAlreadyRegistered(err):
		return 409, err.Error()
	case profile.IsErrPartialFailure(err):
		return 500, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapStatsError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case stats.IsErrBadRequest(err):
		return 400, err.Error()
	case stats.IsErrNotFound(err):
		return 404, err.Error()
	default:
		return 500, err.Error()
	}
}
