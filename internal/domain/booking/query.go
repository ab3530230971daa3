package booking

import (
	"sort"
	"strings"

	"gators-academy/backend/internal/utils"
)

// Sort/filter projections over booking lists. These are pure: they
// copy the input and leave it untouched, so a dashboard can re-project
// the same fetched dataset any number of times.

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortConfig is a dashboard's current sort selection.
type SortConfig struct {
	Key       string        `json:"key"`
	Direction SortDirection `json:"direction"`
}

// NextSort returns the selection after clicking a column header:
// the same key toggles ascending to descending, a new key resets to
// ascending.
func NextSort(current SortConfig, key string) SortConfig {
	if current.Key == key && current.Direction == SortAsc {
		return SortConfig{Key: key, Direction: SortDesc}
	}
	return SortConfig{Key: key, Direction: SortAsc}
}

// Sort returns a copy of list ordered by the given column key. The
// sort is stable: equal keys keep their relative order, in both
// directions. An empty key returns the copy unordered.
func Sort(list []Booking, key string, dir SortDirection) []Booking {
	out := make([]Booking, len(list))
	copy(out, list)

	if key == "" {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := fieldValue(out[i], key), fieldValue(out[j], key)
		if dir == SortDesc {
			return a > b
		}
		return a < b
	})
	return out
}

func fieldValue(b Booking, key string) string {
	switch key {
	case "id":
		return b.ID
	case "student_id":
		return b.StudentID
	case "trainer_id":
		return b.TrainerID
	case "day":
		return b.Day
	case "time":
		return b.Time
	case "status":
		return string(b.Status)
	case "attendance":
		return string(b.Attendance)
	case "level":
		return b.Level
	case "student_name":
		return b.StudentName
	case "trainer_name":
		return b.TrainerName
	default:
		return ""
	}
}

// SearchFields selects which columns FilterBySearch matches against.
type SearchFields struct {
	// SlotFields additionally matches the day and time columns, the
	// way the trainer dashboard searches.
	SlotFields bool
}

// FilterBySearch returns the bookings whose trainee name or trainer
// name (and optionally day/time) contain the term, ignoring case and
// accents. An empty term matches everything.
func FilterBySearch(list []Booking, term string, fields SearchFields) []Booking {
	term = utils.SearchFold(term)
	if term == "" {
		out := make([]Booking, len(list))
		copy(out, list)
		return out
	}

	out := make([]Booking, 0, len(list))
	for _, b := range list {
		if matches(b, term, fields) {
			out = append(out, b)
		}
	}
	return out
}

func matches(b Booking, foldedTerm string, fields SearchFields) bool {
	if strings.Contains(utils.SearchFold(b.StudentName), foldedTerm) {
		return true
	}
	if strings.Contains(utils.SearchFold(b.TrainerName), foldedTerm) {
		return true
	}
	if fields.SlotFields {
		if strings.Contains(utils.SearchFold(b.Day), foldedTerm) {
			return true
		}
		if strings.Contains(utils.SearchFold(b.Time), foldedTerm) {
			return true
		}
	}
	return false
}
