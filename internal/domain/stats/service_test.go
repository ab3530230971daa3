package stats

import (
	"context"
	"testing"
	"time"

	"gators-academy/backend/internal/authctx"
	"gators-academy/backend/internal/domain/booking"
	"gators-academy/backend/internal/domain/profile"
	"gators-academy/backend/internal/domain/schedule"
)

type bookingListerStub struct {
	bookings []booking.Booking
}

func (s *bookingListerStub) List(ctx context.Context, input booking.ListBookingsInput) ([]booking.Booking, error) {
	var out []booking.Booking
	for _, b := range s.bookings {
		if input.TrainerID != "" && b.TrainerID != input.TrainerID {
			continue
		}
		if input.StudentID != "" && b.StudentID != input.StudentID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type scheduleListerStub struct {
	schedules []schedule.Schedule
}

func (s *scheduleListerStub) List(ctx context.Context, input schedule.ListSchedulesInput) ([]schedule.Schedule, error) {
	var out []schedule.Schedule
	for _, sch := range s.schedules {
		if input.TrainerID != "" && sch.TrainerID != input.TrainerID {
			continue
		}
		if input.Status != "" && sch.Status != input.Status {
			continue
		}
		out = append(out, sch)
	}
	return out, nil
}

type profileListerStub struct {
	profiles []profile.Profile
}

func (s *profileListerStub) List(ctx context.Context, role authctx.Role) ([]profile.Profile, error) {
	var out []profile.Profile
	for _, p := range s.profiles {
		if role == "" || p.Role == role {
			out = append(out, p)
		}
	}
	return out, nil
}

func fixedClock(svc *Service, day string) {
	t, _ := time.Parse("2006-01-02", day)
	svc.now = func() time.Time { return t }
}

func TestOverview(t *testing.T) {
	svc := NewService(
		&bookingListerStub{bookings: []booking.Booking{
			{StudentID: "s1", TrainerID: "t1", Day: "2026-09-01", Status: booking.StatusConfirmed},
			{StudentID: "s2", TrainerID: "t1", Day: "2026-09-02", Status: booking.StatusPending},
		}},
		&scheduleListerStub{schedules: []schedule.Schedule{
			{TrainerID: "t1", Status: schedule.StatusActive},
			{TrainerID: "t1", Status: schedule.StatusActive},
			{TrainerID: "t2", Status: schedule.StatusInactive},
		}},
		&profileListerStub{profiles: []profile.Profile{
			{ID: "t1", Role: authctx.RoleTrainer},
			{ID: "t2", Role: authctx.RoleTrainer},
			{ID: "s1", Role: authctx.RoleTrainee},
			{ID: "a1", Role: authctx.RoleAdmin},
		}},
	)
	fixedClock(svc, "2026-09-01")

	got, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	if got.TotalBookings != 2 {
		t.Errorf("TotalBookings = %d, want 2", got.TotalBookings)
	}
	if got.TotalTrainers != 2 {
		t.Errorf("TotalTrainers = %d, want 2", got.TotalTrainers)
	}
	if got.TotalTrainees != 1 {
		t.Errorf("TotalTrainees = %d, want 1", got.TotalTrainees)
	}
	if got.ActiveSchedules != 2 {
		t.Errorf("ActiveSchedules = %d, want 2", got.ActiveSchedules)
	}
	if got.ByStatus["confirmed"] != 1 || got.ByStatus["pending"] != 1 {
		t.Errorf("ByStatus = %v", got.ByStatus)
	}
}

func TestForTrainer(t *testing.T) {
	svc := NewService(
		&bookingListerStub{bookings: []booking.Booking{
			{StudentID: "s1", TrainerID: "t1", Day: "2026-09-01", Status: booking.StatusConfirmed},
			{StudentID: "s1", TrainerID: "t1", Day: "2026-09-02", Status: booking.StatusConfirmed},
			{StudentID: "s2", TrainerID: "t1", Day: "2026-09-01", Status: booking.StatusPending},
			{StudentID: "s3", TrainerID: "t2", Day: "2026-09-01", Status: booking.StatusConfirmed},
		}},
		&scheduleListerStub{schedules: []schedule.Schedule{
			{TrainerID: "t1", Status: schedule.StatusActive},
			{TrainerID: "t1", Status: schedule.StatusInactive},
			{TrainerID: "t2", Status: schedule.StatusActive},
		}},
		&profileListerStub{},
	)
	fixedClock(svc, "2026-09-01")

	got, err := svc.ForTrainer(context.Background(), "t1")
	if err != nil {
		t.Fatalf("for trainer: %v", err)
	}

	// All of the trainer's schedules count, active or not.
	if got.Schedules != 2 {
		t.Errorf("Schedules = %d, want 2", got.Schedules)
	}
	if got.Trainees != 2 {
		t.Errorf("Trainees = %d, want 2 distinct", got.Trainees)
	}
	// Today's sessions are confirmed bookings on today only.
	if got.TodaysSessions != 1 {
		t.Errorf("TodaysSessions = %d, want 1", got.TodaysSessions)
	}

	if _, err := svc.ForTrainer(context.Background(), ""); err == nil {
		t.Error("empty trainer id must fail")
	}
}

func TestForTrainee(t *testing.T) {
	svc := NewService(
		&bookingListerStub{bookings: []booking.Booking{
			{StudentID: "s1", Attendance: booking.AttendancePresent},
			{StudentID: "s1"},
			{StudentID: "s2", Attendance: booking.AttendancePresent},
		}},
		&scheduleListerStub{},
		&profileListerStub{},
	)

	got, err := svc.ForTrainee(context.Background(), "s1")
	if err != nil {
		t.Fatalf("for trainee: %v", err)
	}
	if got.Total != 2 || got.Attended != 1 || got.Percent != 50 {
		t.Errorf("progress = %+v", got)
	}

	// Unknown trainee has a zero report, not an error.
	got, err = svc.ForTrainee(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("for unknown trainee: %v", err)
	}
	if got.Total != 0 || got.Percent != 0 {
		t.Errorf("empty progress = %+v", got)
	}

	if _, err := svc.ForTrainee(context.Background(), ""); err == nil {
		t.Error("empty trainee id must fail")
	}
}
