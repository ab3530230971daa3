package schedule

import (
	"testing"
	"time"
)

func TestFlattenTimeSlot(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want []string
	}{
		{"single string", "09:00 - 10:00", []string{"09:00 - 10:00"}},
		{"empty string", "", []string{}},
		{"string slice", []string{"09:00 - 10:00", "10:00 - 11:00"}, []string{"09:00 - 10:00", "10:00 - 11:00"}},
		{"interface slice", []interface{}{"09:00 - 10:00", "14:00 - 15:00"}, []string{"09:00 - 10:00", "14:00 - 15:00"}},
		{"interface slice with junk", []interface{}{"09:00 - 10:00", 42, "", nil}, []string{"09:00 - 10:00"}},
		{"duplicates kept", []interface{}{"09:00 - 10:00", "09:00 - 10:00"}, []string{"09:00 - 10:00", "09:00 - 10:00"}},
		{"nil", nil, []string{}},
		{"unexpected type", 7, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FlattenTimeSlot(tt.in)
			if got == nil {
				t.Fatal("want non-nil slice")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("FlattenTimeSlot = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("FlattenTimeSlot = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestFromDoc(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	data := map[string]interface{}{
		"trainer_id": "t1",
		"date":       "2026-09-01",
		"time_slot":  "09:00 - 10:00", // legacy single-slot form
		"capacity":   int64(3),
		"status":     "active",
		"created_at": now,
		"updated_at": now,
	}

	s := fromDoc("sch1", data)

	if s.ID != "sch1" || s.TrainerID != "t1" || s.Date != "2026-09-01" {
		t.Errorf("identity fields: %+v", s)
	}
	if len(s.TimeSlots) != 1 || s.TimeSlots[0] != "09:00 - 10:00" {
		t.Errorf("TimeSlots = %v", s.TimeSlots)
	}
	if s.Capacity != 3 {
		t.Errorf("Capacity = %d, want 3", s.Capacity)
	}
	if s.Status != StatusActive {
		t.Errorf("Status = %s", s.Status)
	}
	if !s.CreatedAt.Equal(now) || !s.UpdatedAt.Equal(now) {
		t.Errorf("timestamps: %v / %v", s.CreatedAt, s.UpdatedAt)
	}
}

func TestFromDocPartial(t *testing.T) {
	s := fromDoc("sch2", map[string]interface{}{})
	if s.ID != "sch2" {
		t.Errorf("ID = %s", s.ID)
	}
	if s.TimeSlots == nil || len(s.TimeSlots) != 0 {
		t.Errorf("TimeSlots = %#v, want empty", s.TimeSlots)
	}
	if s.Capacity != 0 || s.Status != "" {
		t.Errorf("zero values expected: %+v", s)
	}
}
