package stats

import (
	"context"
	"fmt"
	"time"

	"gators-academy/backend/internal/authctx"
	"gators-academy/backend/internal/domain/booking"
	"gators-academy/backend/internal/domain/profile"
	"gators-academy/backend/internal/domain/schedule"
)

type BookingLister interface {
	List(ctx context.Context, input booking.ListBookingsInput) ([]booking.Booking, error)
}

type ScheduleLister interface {
	List(ctx context.Context, input schedule.ListSchedulesInput) ([]schedule.Schedule, error)
}

type ProfileLister interface {
	List(ctx context.Context, role authctx.Role) ([]profile.Profile, error)
}

type Service struct {
	bookings  BookingLister
	schedules ScheduleLister
	profiles  ProfileLister

	// now is swappable for tests.
	now func() time.Time
}

func NewService(bookings BookingLister, schedules ScheduleLister, profiles ProfileLister) *Service {
	return &Service{
		bookings:  bookings,
		schedules: schedules,
		profiles:  profiles,
		now:       time.Now,
	}
}

func (s *Service) today() string {
	return s.now().UTC().Format("2006-01-02")
}

// Overview aggregates the admin dashboard numbers from the full
// collections.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	bookings, err := s.bookings.List(ctx, booking.ListBookingsInput{})
	if err != nil {
		return nil, err
	}
	trainers, err := s.profiles.List(ctx, authctx.RoleTrainer)
	if err != nil {
		return nil, err
	}
	trainees, err := s.profiles.List(ctx, authctx.RoleTrainee)
	if err != nil {
		return nil, err
	}
	activeSchedules, err := s.schedules.List(ctx, schedule.ListSchedulesInput{Status: schedule.StatusActive})
	if err != nil {
		return nil, err
	}

	agg := Compute(bookings, s.today())
	return &Overview{
		TotalBookings:   agg.Total,
		TotalTrainers:   len(trainers),
		TotalTrainees:   len(trainees),
		ActiveSchedules: len(activeSchedules),
		ByStatus:        agg.ByStatus,
	}, nil
}

// ForTrainer aggregates the trainer dashboard numbers: declared
// schedules, distinct trainees served, and today's confirmed sessions.
func (s *Service) ForTrainer(ctx context.Context, trainerID string) (*TrainerSummary, error) {
	if trainerID == "" {
		return nil, fmt.Errorf("%w: trainer id is required", ErrBadRequest)
	}

	schedules, err := s.schedules.List(ctx, schedule.ListSchedulesInput{TrainerID: trainerID})
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.List(ctx, booking.ListBookingsInput{TrainerID: trainerID})
	if err != nil {
		return nil, err
	}

	return &TrainerSummary{
		Schedules:      len(schedules),
		Trainees:       UniqueTrainees(bookings),
		TodaysSessions: TodaysConfirmed(bookings, s.today()),
	}, nil
}

// ForTrainee computes the trainee's attendance progress over all of
// their bookings.
func (s *Service) ForTrainee(ctx context.Context, studentID string) (*ProgressReport, error) {
	if studentID == "" {
		return nil, fmt.Errorf("%w: trainee id is required", ErrBadRequest)
	}

	bookings, err := s.bookings.List(ctx, booking.ListBookingsInput{StudentID: studentID})
	if err != nil {
		return nil, err
	}

	report := Progress(bookings)
	return &report, nil
}
