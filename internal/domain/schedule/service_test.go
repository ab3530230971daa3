package schedule

import (
	"context"
	"fmt"
	"testing"

	"gators-academy/backend/internal/authctx"
	"gators-academy/backend/internal/domain/profile"
)

type storeStub struct {
	schedules map[string]Schedule
	nextID    int
}

func newStoreStub() *storeStub {
	return &storeStub{schedules: map[string]Schedule{}}
}

func (s *storeStub) Create(ctx context.Context, sch Schedule) (*Schedule, error) {
	s.nextID++
	sch.ID = fmt.Sprintf("sch%d", s.nextID)
	s.schedules[sch.ID] = sch
	return &sch, nil
}

func (s *storeStub) Get(ctx context.Context, id string) (*Schedule, error) {
	sch, ok := s.schedules[id]
	if !ok {
		return nil, fmt.Errorf("%w: schedule not found", ErrNotFound)
	}
	return &sch, nil
}

func (s *storeStub) Update(ctx context.Context, id string, updates map[string]interface{}) (*Schedule, error) {
	sch, ok := s.schedules[id]
	if !ok {
		return nil, fmt.Errorf("%w: schedule not found", ErrNotFound)
	}
	if v, ok := updates["status"].(string); ok {
		sch.Status = Status(v)
	}
	if v, ok := updates["date"].(string); ok {
		sch.Date = v
	}
	if v, ok := updates["time_slot"].([]string); ok {
		sch.TimeSlots = v
	}
	if v, ok := updates["capacity"].(int); ok {
		sch.Capacity = v
	}
	s.schedules[id] = sch
	return &sch, nil
}

func (s *storeStub) Delete(ctx context.Context, id string) error {
	delete(s.schedules, id)
	return nil
}

func (s *storeStub) List(ctx context.Context, input ListSchedulesInput) ([]Schedule, error) {
	var out []Schedule
	for i := 1; i <= s.nextID; i++ {
		sch, ok := s.schedules[fmt.Sprintf("sch%d", i)]
		if !ok {
			continue
		}
		if input.TrainerID != "" && sch.TrainerID != input.TrainerID {
			continue
		}
		if input.Date != "" && sch.Date != input.Date {
			continue
		}
		if input.Status != "" && sch.Status != input.Status {
			continue
		}
		out = append(out, sch)
	}
	return out, nil
}

type profilesStub struct {
	profiles map[string]profile.Profile
}

func (p *profilesStub) Get(ctx context.Context, id string) (*profile.Profile, error) {
	pr, ok := p.profiles[id]
	if !ok {
		return nil, fmt.Errorf("%w: profile not found", profile.ErrNotFound)
	}
	return &pr, nil
}

func (p *profilesStub) List(ctx context.Context, role authctx.Role) ([]profile.Profile, error) {
	var out []profile.Profile
	for _, pr := range p.profiles {
		if role == "" || pr.Role == role {
			out = append(out, pr)
		}
	}
	return out, nil
}

func testProfiles() *profilesStub {
	return &profilesStub{profiles: map[string]profile.Profile{
		"t1": {ID: "t1", FullName: "Omar Coach", Role: authctx.RoleTrainer},
		"s1": {ID: "s1", FullName: "Ali Hassan", Role: authctx.RoleTrainee},
	}}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newStoreStub(), testProfiles())

	tests := []struct {
		name string
		in   CreateScheduleInput
	}{
		{"missing trainer", CreateScheduleInput{Date: "2026-09-01", TimeSlots: []string{"09:00 - 10:00"}}},
		{"missing date", CreateScheduleInput{TrainerID: "t1", TimeSlots: []string{"09:00 - 10:00"}}},
		{"missing slots", CreateScheduleInput{TrainerID: "t1", Date: "2026-09-01"}},
		{"bad date format", CreateScheduleInput{TrainerID: "t1", Date: "Sep 1", TimeSlots: []string{"09:00 - 10:00"}}},
		{"bad status", CreateScheduleInput{TrainerID: "t1", Date: "2026-09-01", TimeSlots: []string{"09:00 - 10:00"}, Status: "paused"}},
		{"unknown trainer", CreateScheduleInput{TrainerID: "ghost", Date: "2026-09-01", TimeSlots: []string{"09:00 - 10:00"}}},
		{"trainee as trainer", CreateScheduleInput{TrainerID: "s1", Date: "2026-09-01", TimeSlots: []string{"09:00 - 10:00"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tt.in); !IsErrBadRequest(err) {
				t.Errorf("want bad request, got %v", err)
			}
		})
	}
}

func TestCreateDefaults(t *testing.T) {
	svc := NewService(newStoreStub(), testProfiles())

	out, err := svc.Create(context.Background(), CreateScheduleInput{
		TrainerID: "t1",
		Date:      "2026-09-01",
		TimeSlots: []string{"09:00 - 10:00", "10:00 - 11:00"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out.Status != StatusActive {
		t.Errorf("default status = %s, want active", out.Status)
	}
	if out.Capacity != 1 {
		t.Errorf("default capacity = %d, want 1", out.Capacity)
	}
	if out.TrainerName != "Omar Coach" {
		t.Errorf("trainer name = %q", out.TrainerName)
	}
}

func TestAvailableTimes(t *testing.T) {
	store := newStoreStub()
	svc := NewService(store, testProfiles())

	mustCreate := func(in CreateScheduleInput) *Schedule {
		t.Helper()
		out, err := svc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		return out
	}

	mustCreate(CreateScheduleInput{TrainerID: "t1", Date: "2026-09-01", TimeSlots: []string{"09:00 - 10:00"}})
	mustCreate(CreateScheduleInput{TrainerID: "t1", Date: "2026-09-01", TimeSlots: []string{"09:00 - 10:00", "14:00 - 15:00"}})
	mustCreate(CreateScheduleInput{TrainerID: "t1", Date: "2026-09-02", TimeSlots: []string{"11:00 - 12:00"}})
	inactive := mustCreate(CreateScheduleInput{TrainerID: "t1", Date: "2026-09-01", TimeSlots: []string{"18:00 - 19:00"}})

	off := string(StatusInactive)
	if _, err := svc.Update(context.Background(), inactive.ID, UpdateScheduleInput{Status: &off}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	got, err := svc.AvailableTimes(context.Background(), "t1", "2026-09-01")
	if err != nil {
		t.Fatalf("available times: %v", err)
	}

	// Slots concatenate across matching active schedules; duplicates
	// propagate, other dates and inactive schedules are excluded.
	want := []string{"09:00 - 10:00", "09:00 - 10:00", "14:00 - 15:00"}
	if len(got) != len(want) {
		t.Fatalf("times = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("times = %v, want %v", got, want)
		}
	}
}

func TestAvailableTimesEmpty(t *testing.T) {
	svc := NewService(newStoreStub(), testProfiles())

	got, err := svc.AvailableTimes(context.Background(), "t1", "2026-09-01")
	if err != nil {
		t.Fatalf("available times: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("want empty non-nil slice, got %#v", got)
	}

	if _, err := svc.AvailableTimes(context.Background(), "", "2026-09-01"); !IsErrBadRequest(err) {
		t.Errorf("missing trainer: want bad request, got %v", err)
	}
	if _, err := svc.AvailableTimes(context.Background(), "t1", ""); !IsErrBadRequest(err) {
		t.Errorf("missing date: want bad request, got %v", err)
	}
}

func TestListJoinsTrainerNames(t *testing.T) {
	store := newStoreStub()
	svc := NewService(store, testProfiles())

	if _, err := svc.Create(context.Background(), CreateScheduleInput{
		TrainerID: "t1", Date: "2026-09-01", TimeSlots: []string{"09:00 - 10:00"},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.List(context.Background(), ListSchedulesInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].TrainerName != "Omar Coach" {
		t.Errorf("list = %+v", got)
	}
}

func TestCountActive(t *testing.T) {
	store := newStoreStub()
	svc := NewService(store, testProfiles())

	mk := func(status string) {
		t.Helper()
		if _, err := svc.Create(context.Background(), CreateScheduleInput{
			TrainerID: "t1", Date: "2026-09-01",
			TimeSlots: []string{"09:00 - 10:00"}, Status: status,
		}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	mk("active")
	mk("active")
	mk("inactive")

	got, err := svc.CountActive(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if got != 2 {
		t.Errorf("CountActive = %d, want 2", got)
	}
}

func TestDeleteUnknown(t *testing.T) {
	svc := NewService(newStoreStub(), testProfiles())
	if err := svc.Delete(context.Background(), "ghost"); !IsErrNotFound(err) {
		t.Errorf("want not found, got %v", err)
	}
}
