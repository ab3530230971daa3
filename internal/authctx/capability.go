package authctx

// Action names a dashboard operation subject to a capability check.
// Handlers evaluate Can once per operation instead of scattering
// role comparisons across views.
type Action string

const (
	ActionManageBookings   Action = "bookings.manage"   // create/edit/delete any booking
	ActionBookSelf         Action = "bookings.self"     // trainee self-service booking
	ActionRecordAttendance Action = "bookings.attendance"
	ActionManageSchedules  Action = "schedules.manage"
	ActionManageProfiles   Action = "profiles.manage" // edit/delete other users
	ActionViewStats        Action = "stats.view"
)

var capabilities = map[Role]map[Action]bool{
	RoleAdmin: {
		ActionManageBookings:   true,
		ActionBookSelf:         true,
		ActionRecordAttendance: true,
		ActionManageSchedules:  true,
		ActionManageProfiles:   true,
		ActionViewStats:        true,
	},
	RoleTrainer: {
		ActionManageBookings:   true,
		ActionRecordAttendance: true,
		ActionManageSchedules:  true,
		ActionViewStats:        true,
	},
	RoleTrainee: {
		ActionBookSelf: true,
	},
}

func (s *Session) Can(a Action) bool {
	if s == nil {
		return false
	}
	return capabilities[s.Role][a]
}
