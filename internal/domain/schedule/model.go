package schedule

import (
	"strings"
	"time"
)

// Status is the schedule lifecycle flag. Inactive schedules stay on
// record but stop offering their slots.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func IsValidStatus(s string) bool {
	return s == string(StatusActive) || s == string(StatusInactive)
}

// Schedule is a trainer's declared availability on a date: potential
// capacity, not a commitment. Several schedules may overlap on the
// same (trainer, date); nothing dedupes them.
type Schedule struct {
	ID        string `json:"id"`
	TrainerID string `json:"trainer_id"`
	Date      string `json:"date"` // YYYY-MM-DD

	// TimeSlots is always flattened in memory. Stored documents hold
	// either a single slot string or a list of them; the repo
	// normalizes both forms on read.
	TimeSlots []string `json:"time_slot"`

	// Capacity is informational. Bookings do not decrement it.
	Capacity int `json:"capacity"`

	Status Status `json:"status"`

	// TrainerName is a display join, filled by list queries.
	TrainerName string `json:"trainer_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateScheduleInput represents input for declaring availability.
type CreateScheduleInput struct {
	TrainerID string   `json:"trainer_id"`
	Date      string   `json:"date"`
	TimeSlots []string `json:"time_slot"`
	Capacity  int      `json:"capacity,omitempty"`
	Status    string   `json:"status,omitempty"`
}

func (in *CreateScheduleInput) Trim() {
	in.TrainerID = strings.TrimSpace(in.TrainerID)
	in.Date = strings.TrimSpace(in.Date)
	in.Status = strings.TrimSpace(in.Status)
	slots := make([]string, 0, len(in.TimeSlots))
	for _, s := range in.TimeSlots {
		if s = strings.TrimSpace(s); s != "" {
			slots = append(slots, s)
		}
	}
	in.TimeSlots = slots
}

// UpdateScheduleInput represents input for editing a schedule.
type UpdateScheduleInput struct {
	Date      *string   `json:"date,omitempty"`
	TimeSlots *[]string `json:"time_slot,omitempty"`
	Capacity  *int      `json:"capacity,omitempty"`
	Status    *string   `json:"status,omitempty"`
}

// ListSchedulesInput represents equality filters for listing.
type ListSchedulesInput struct {
	TrainerID string
	Date      string
	Status    Status
}
