package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gators-academy/backend/internal/authctx"
	"gators-academy/backend/internal/domain/profile"
)

// Store is the record-store surface the service needs. *Repo satisfies
// it; tests use an in-memory fake.
type Store interface {
	Create(ctx context.Context, b Booking) (*Booking, error)
	Get(ctx context.Context, id string) (*Booking, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*Booking, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, input ListBookingsInput) ([]Booking, error)
}

// ProfileDirectory resolves trainee and trainer profiles at booking
// time: existence checks plus the one-time name/level snapshots.
type ProfileDirectory interface {
	Get(ctx context.Context, id string) (*profile.Profile, error)
}

type Service struct {
	store    Store
	profiles ProfileDirectory

	// rejectSlotConflicts enables the uniqueness check on
	// (trainer, day, time). The academy historically allowed shared
	// slots for group lessons, so the default is permissive.
	rejectSlotConflicts bool
}

func NewService(store Store, profiles ProfileDirectory, rejectSlotConflicts bool) *Service {
	return &Service{store: store, profiles: profiles, rejectSlotConflicts: rejectSlotConflicts}
}

// Create validates, snapshots display fields from the referenced
// profiles, and persists a new booking. Validation failures return
// before any store call is made.
func (s *Service) Create(ctx context.Context, in CreateBookingInput) (*Booking, error) {
	in.Trim()

	if missing := in.MissingFields(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required fields: %s", ErrValidation, strings.Join(missing, ", "))
	}
	if _, err := time.Parse("2006-01-02", in.Day); err != nil {
		return nil, fmt.Errorf("%w: day must be YYYY-MM-DD", ErrValidation)
	}
	if !IsValidTimeSlot(in.Time) {
		return nil, fmt.Errorf("%w: time must be one of the hourly slots between 08:00 and 20:00", ErrValidation)
	}

	status := in.Status
	if status == "" {
		status = string(StatusConfirmed)
	}
	if !IsValidStatus(status) {
		return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, status)
	}

	student, err := s.profiles.Get(ctx, in.StudentID)
	if err != nil {
		return nil, fmt.Errorf("%w: trainee %s", ErrNotFound, in.StudentID)
	}
	trainer, err := s.profiles.Get(ctx, in.TrainerID)
	if err != nil {
		return nil, fmt.Errorf("%w: trainer %s", ErrNotFound, in.TrainerID)
	}
	if trainer.Role != authctx.RoleTrainer {
		return nil, fmt.Errorf("%w: %s is not a trainer", ErrValidation, in.TrainerID)
	}

	if s.rejectSlotConflicts {
		existing, err := s.store.List(ctx, ListBookingsInput{
			TrainerID: in.TrainerID,
			Day:       in.Day,
			Time:      in.Time,
		})
		if err != nil {
			return nil, err
		}
		for _, b := range existing {
			if b.Status != StatusCancelled {
				return nil, fmt.Errorf("%w: trainer %s at %s on %s", ErrConflict, in.TrainerID, in.Time, in.Day)
			}
		}
	}

	level := in.Level
	if level == "" {
		level = student.Level
	}
	if level == "" {
		level = profile.DefaultLevel
	}

	now := time.Now().UTC()
	return s.store.Create(ctx, Booking{
		StudentID:   in.StudentID,
		TrainerID:   in.TrainerID,
		Day:         in.Day,
		Time:        in.Time,
		Status:      Status(status),
		Level:       level,
		StudentName: student.FullName,
		TrainerName: trainer.FullName,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *Service) Get(ctx context.Context, id string) (*Booking, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidation)
	}
	return s.store.Get(ctx, id)
}

// Update applies a partial edit. Changing the trainee or trainer
// refreshes the corresponding name snapshot; nothing else re-syncs it.
func (s *Service) Update(ctx context.Context, id string, in UpdateBookingInput) (*Booking, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidation)
	}

	if _, err := s.store.Get(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}

	if in.StudentID != nil {
		student, err := s.profiles.Get(ctx, *in.StudentID)
		if err != nil {
			return nil, fmt.Errorf("%w: trainee %s", ErrNotFound, *in.StudentID)
		}
		updates["student_id"] = student.ID
		updates["student_name"] = student.FullName
	}
	if in.TrainerID != nil {
		trainer, err := s.profiles.Get(ctx, *in.TrainerID)
		if err != nil {
			return nil, fmt.Errorf("%w: trainer %s", ErrNotFound, *in.TrainerID)
		}
		if trainer.Role != authctx.RoleTrainer {
			return nil, fmt.Errorf("%w: %s is not a trainer", ErrValidation, *in.TrainerID)
		}
		updates["trainer_id"] = trainer.ID
		updates["trainer_name"] = trainer.FullName
	}
	if in.Day != nil {
		if _, err := time.Parse("2006-01-02", *in.Day); err != nil {
			return nil, fmt.Errorf("%w: day must be YYYY-MM-DD", ErrValidation)
		}
		updates["day"] = *in.Day
	}
	if in.Time != nil {
		if !IsValidTimeSlot(*in.Time) {
			return nil, fmt.Errorf("%w: time must be one of the hourly slots between 08:00 and 20:00", ErrValidation)
		}
		updates["time"] = *in.Time
	}
	if in.Status != nil {
		if !IsValidStatus(*in.Status) {
			return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, *in.Status)
		}
		updates["status"] = *in.Status
	}
	if in.Level != nil {
		updates["level"] = *in.Level
	}

	return s.store.Update(ctx, id, updates)
}

// SetAttendance records whether the trainee appeared. Empty clears the
// record. Status is untouched: attendance never transitions it.
func (s *Service) SetAttendance(ctx context.Context, id, attendance string) (*Booking, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidation)
	}
	if attendance != "" && !IsValidAttendance(attendance) {
		return nil, fmt.Errorf("%w: attendance must be present or absent", ErrValidation)
	}

	if _, err := s.store.Get(ctx, id); err != nil {
		return nil, err
	}

	return s.store.Update(ctx, id, map[string]interface{}{
		"attendance": attendance,
		"updated_at": time.Now().UTC(),
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// List lists bookings matching the equality filters. Name snapshots
// travel with the records; no profile join happens here, so a renamed
// profile shows its old name until the booking itself is edited.
func (s *Service) List(ctx context.Context, input ListBookingsInput) ([]Booking, error) {
	return s.store.List(ctx, input)
}
