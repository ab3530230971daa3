package schedule

import (
	"context"
	"fmt"
	"time"

	"gators-academy/backend/internal/authctx"
	"gators-academy/backend/internal/domain/profile"
)

// Store is the record-store surface the service needs. *Repo satisfies
// it; tests use an in-memory fake.
type Store interface {
	Create(ctx context.Context, s Schedule) (*Schedule, error)
	Get(ctx context.Context, id string) (*Schedule, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*Schedule, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, input ListSchedulesInput) ([]Schedule, error)
}

// ProfileGetter resolves trainer profiles for validation and display
// joins.
type ProfileGetter interface {
	Get(ctx context.Context, id string) (*profile.Profile, error)
	List(ctx context.Context, role authctx.Role) ([]profile.Profile, error)
}

type Service struct {
	store    Store
	profiles ProfileGetter
}

func NewService(store Store, profiles ProfileGetter) *Service {
	return &Service{store: store, profiles: profiles}
}

// Create declares availability. The trainer must exist; overlapping
// schedules for the same (trainer, date) are allowed.
func (s *Service) Create(ctx context.Context, in CreateScheduleInput) (*Schedule, error) {
	in.Trim()

	if in.TrainerID == "" || in.Date == "" || len(in.TimeSlots) == 0 {
		return nil, fmt.Errorf("%w: trainer_id, date and time_slot are required", ErrBadRequest)
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrBadRequest)
	}

	status := in.Status
	if status == "" {
		status = string(StatusActive)
	}
	if !IsValidStatus(status) {
		return nil, fmt.Errorf("%w: status must be active or inactive", ErrBadRequest)
	}

	capacity := in.Capacity
	if capacity <= 0 {
		capacity = 1
	}

	trainer, err := s.profiles.Get(ctx, in.TrainerID)
	if err != nil {
		return nil, fmt.Errorf("%w: trainer not found", ErrBadRequest)
	}
	if trainer.Role != authctx.RoleTrainer {
		return nil, fmt.Errorf("%w: %s is not a trainer", ErrBadRequest, in.TrainerID)
	}

	now := time.Now().UTC()
	out, err := s.store.Create(ctx, Schedule{
		TrainerID: in.TrainerID,
		Date:      in.Date,
		TimeSlots: in.TimeSlots,
		Capacity:  capacity,
		Status:    Status(status),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	out.TrainerName = trainer.FullName
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Schedule, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	return s.store.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, in UpdateScheduleInput) (*Schedule, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrBadRequest)
	}

	if _, err := s.store.Get(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if in.Date != nil {
		if _, err := time.Parse("2006-01-02", *in.Date); err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrBadRequest)
		}
		updates["date"] = *in.Date
	}
	if in.TimeSlots != nil {
		if len(*in.TimeSlots) == 0 {
			return nil, fmt.Errorf("%w: time_slot cannot be empty", ErrBadRequest)
		}
		updates["time_slot"] = *in.TimeSlots
	}
	if in.Capacity != nil {
		if *in.Capacity < 1 {
			return nil, fmt.Errorf("%w: capacity must be at least 1", ErrBadRequest)
		}
		updates["capacity"] = *in.Capacity
	}
	if in.Status != nil {
		if !IsValidStatus(*in.Status) {
			return nil, fmt.Errorf("%w: status must be active or inactive", ErrBadRequest)
		}
		updates["status"] = *in.Status
	}

	return s.store.Update(ctx, id, updates)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// List lists schedules with trainer display names joined in.
func (s *Service) List(ctx context.Context, input ListSchedulesInput) ([]Schedule, error) {
	schedules, err := s.store.List(ctx, input)
	if err != nil {
		return nil, err
	}

	trainers, err := s.profiles.List(ctx, authctx.RoleTrainer)
	if err != nil {
		// The join is display-only; the schedule list is still usable.
		return schedules, nil
	}
	names := make(map[string]string, len(trainers))
	for _, t := range trainers {
		names[t.ID] = t.FullName
	}
	for i := range schedules {
		schedules[i].TrainerName = names[schedules[i].TrainerID]
	}
	return schedules, nil
}

// AvailableTimes returns the flattened slot strings from active
// schedules matching (trainer, date). Empty when the trainer has
// declared nothing; duplicates across schedules propagate.
func (s *Service) AvailableTimes(ctx context.Context, trainerID, date string) ([]string, error) {
	if trainerID == "" || date == "" {
		return nil, fmt.Errorf("%w: trainer_id and date are required", ErrBadRequest)
	}

	schedules, err := s.store.List(ctx, ListSchedulesInput{
		TrainerID: trainerID,
		Date:      date,
		Status:    StatusActive,
	})
	if err != nil {
		return nil, err
	}

	times := []string{}
	for _, sch := range schedules {
		times = append(times, sch.TimeSlots...)
	}
	return times, nil
}

// CountActive counts active schedules across all trainers.
func (s *Service) CountActive(ctx context.Context) (int, error) {
	schedules, err := s.store.List(ctx, ListSchedulesInput{Status: StatusActive})
	if err != nil {
		return 0, err
	}
	return len(schedules), nil
}
