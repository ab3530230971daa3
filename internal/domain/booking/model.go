package booking

import (
	"strings"
	"time"
)

// Status is the booking's administrative lifecycle stage. Transitions
// are direct writes by an authorized actor; no transition table is
// enforced.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCancelled  Status = "cancelled"
	StatusAttended   Status = "attended"
	StatusAbsent     Status = "absent"
	StatusApologized Status = "apologized"
)

var ValidStatuses = []Status{
	StatusPending, StatusConfirmed, StatusCancelled,
	StatusAttended, StatusAbsent, StatusApologized,
}

func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if string(v) == s {
			return true
		}
	}
	return false
}

// Attendance is the post-hoc record of whether the trainee showed up.
// It is independent of Status and never changes it.
type Attendance string

const (
	AttendancePresent Attendance = "present"
	AttendanceAbsent  Attendance = "absent"
)

func IsValidAttendance(s string) bool {
	return s == string(AttendancePresent) || s == string(AttendanceAbsent)
}

// TimeSlots are the twelve bookable hour slots of an academy day.
var TimeSlots = []string{
	"08:00 - 09:00",
	"09:00 - 10:00",
	"10:00 - 11:00",
	"11:00 - 12:00",
	"12:00 - 13:00",
	"13:00 - 14:00",
	"14:00 - 15:00",
	"15:00 - 16:00",
	"16:00 - 17:00",
	"17:00 - 18:00",
	"18:00 - 19:00",
	"19:00 - 20:00",
}

func IsValidTimeSlot(t string) bool {
	for _, v := range TimeSlots {
		if v == t {
			return true
		}
	}
	return false
}

// Booking links a trainee and a trainer at a date and time slot.
// StudentName, TrainerName and Level are snapshots taken at creation:
// display caches that are never re-synced if the profile is renamed
// later, so lists stay renderable even when a profile lookup fails.
type Booking struct {
	ID        string `json:"id"`
	StudentID string `json:"student_id"`
	TrainerID string `json:"trainer_id"`
	Day       string `json:"day"`  // YYYY-MM-DD
	Time      string `json:"time"` // one of TimeSlots

	Status     Status     `json:"status"`
	Attendance Attendance `json:"attendance,omitempty"`

	Level       string `json:"level,omitempty"`
	StudentName string `json:"student_name,omitempty"`
	TrainerName string `json:"trainer_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateBookingInput represents input for creating a booking, whether
// trainee self-service or on behalf of a trainee by staff.
type CreateBookingInput struct {
	StudentID string `json:"student_id"`
	TrainerID string `json:"trainer_id"`
	Day       string `json:"day"`
	Time      string `json:"time"`
	Status    string `json:"status,omitempty"` // defaults to confirmed
	Level     string `json:"level,omitempty"`
}

func (in *CreateBookingInput) Trim() {
	in.StudentID = strings.TrimSpace(in.StudentID)
	in.TrainerID = strings.TrimSpace(in.TrainerID)
	in.Day = strings.TrimSpace(in.Day)
	in.Time = strings.TrimSpace(in.Time)
	in.Status = strings.TrimSpace(in.Status)
	in.Level = strings.TrimSpace(strings.ToLower(in.Level))
}

// MissingFields lists the required fields this input leaves empty.
func (in CreateBookingInput) MissingFields() []string {
	var missing []string
	if in.StudentID == "" {
		missing = append(missing, "student_id")
	}
	if in.TrainerID == "" {
		missing = append(missing, "trainer_id")
	}
	if in.Day == "" {
		missing = append(missing, "day")
	}
	if in.Time == "" {
		missing = append(missing, "time")
	}
	return missing
}

// UpdateBookingInput represents a partial edit. Attendance has its own
// operation and is deliberately absent here.
type UpdateBookingInput struct {
	StudentID *string `json:"student_id,omitempty"`
	TrainerID *string `json:"trainer_id,omitempty"`
	Day       *string `json:"day,omitempty"`
	Time      *string `json:"time,omitempty"`
	Status    *string `json:"status,omitempty"`
	Level     *string `json:"level,omitempty"`
}

// ListBookingsInput represents equality filters for listing.
type ListBookingsInput struct {
	TrainerID string
	StudentID string
	Day       string
	Time      string
	Status    Status
}
