package stats

// Overview backs the admin dashboard stat cards. Counts always cover
// the full dataset, never a search-narrowed view.
type Overview struct {
	TotalBookings   int            `json:"total_bookings"`
	TotalTrainers   int            `json:"total_trainers"`
	TotalTrainees   int            `json:"total_trainees"`
	ActiveSchedules int            `json:"active_schedules"`
	ByStatus        map[string]int `json:"by_status"`
}

// TrainerSummary backs the trainer dashboard stat cards.
type TrainerSummary struct {
	Schedules      int `json:"schedules"`
	Trainees       int `json:"trainees"` // distinct trainees served
	TodaysSessions int `json:"todays_sessions"`
}

// BookingStats is the projection of a booking list used by both
// dashboards.
type BookingStats struct {
	Total          int            `json:"total"`
	ByStatus       map[string]int `json:"by_status"`
	UniqueTrainees int            `json:"unique_trainees"`
	Today          int            `json:"today"`
}

// ProgressReport is the trainee-facing attendance ratio.
type ProgressReport struct {
	Total    int     `json:"total"`
	Attended int     `json:"attended"`
	Percent  float64 `json:"percent"`
}
