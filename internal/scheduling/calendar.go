package scheduling

import (
	"time"

	"medicare-portal/internal/domain/entity"
)

// DateOnly is the wire format for calendar dates. Upstream timestamps are
// truncated to this length before any date comparison.
const DateOnly = "2006-01-02"

// DateSet is a set of YYYY-MM-DD date strings.
type DateSet map[string]struct{}

// NewDateSet builds a DateSet from date strings.
func NewDateSet(dates ...string) DateSet {
	set := make(DateSet, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

// Contains reports whether the set holds the given date string.
func (s DateSet) Contains(date string) bool {
	_, ok := s[date]
	return ok
}

// NormalizeDate truncates a timestamp to its 10-character date-only prefix.
func NormalizeDate(date string) string {
	if len(date) > len(DateOnly) {
		return date[:len(DateOnly)]
	}
	return date
}

// MonthGrid returns one DayCell per day of the month containing reference,
// in ascending date order. Adjacent-month padding is left to the renderer,
// so every produced cell is in the current month.
func MonthGrid(reference, selected time.Time, unavailable DateSet, appointmentDates []string) []entity.DayCell {
	year, month, _ := reference.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	counts := make(map[string]int, len(appointmentDates))
	for _, d := range appointmentDates {
		counts[NormalizeDate(d)]++
	}

	selectedStr := selected.Format(DateOnly)

	cells := make([]entity.DayCell, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(DateOnly)
		cells = append(cells, entity.DayCell{
			Date:             date,
			IsSelected:       date == selectedStr,
			IsInCurrentMonth: true,
			IsUnavailable:    unavailable.Contains(date),
			HasAppointments:  counts[date] > 0,
			AppointmentCount: counts[date],
		})
	}

	return cells
}
