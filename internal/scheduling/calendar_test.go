package scheduling

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	t, err := time.Parse(DateOnly, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestMonthGrid_CellCounts(t *testing.T) {
	cases := []struct {
		reference string
		want      int
	}{
		{"2025-01-15", 31},
		{"2025-02-01", 28},
		{"2024-02-29", 29}, // leap year
		{"2025-04-30", 30},
		{"2025-08-18", 31},
		{"2025-12-01", 31},
	}

	for _, tc := range cases {
		t.Run(tc.reference, func(t *testing.T) {
			cells := MonthGrid(date(tc.reference), date(tc.reference), nil, nil)
			assert.Len(t, cells, tc.want)
		})
	}
}

func TestMonthGrid_AscendingOrderAndBounds(t *testing.T) {
	cells := MonthGrid(date("2025-08-18"), date("2025-08-18"), nil, nil)

	assert.Equal(t, "2025-08-01", cells[0].Date)
	assert.Equal(t, "2025-08-31", cells[len(cells)-1].Date)
	for i := 1; i < len(cells); i++ {
		assert.Less(t, cells[i-1].Date, cells[i].Date)
	}
	for _, cell := range cells {
		assert.True(t, cell.IsInCurrentMonth)
	}
}

func TestMonthGrid_Flags(t *testing.T) {
	unavailable := NewDateSet("2025-08-20")
	appointments := []string{"2025-08-18", "2025-08-18", "2025-08-25T00:00:00.000Z"}

	cells := MonthGrid(date("2025-08-01"), date("2025-08-18"), unavailable, appointments)

	byDate := make(map[string]int)
	for i, cell := range cells {
		byDate[cell.Date] = i
	}

	selected := cells[byDate["2025-08-18"]]
	assert.True(t, selected.IsSelected)
	assert.True(t, selected.HasAppointments)
	assert.Equal(t, 2, selected.AppointmentCount)

	marked := cells[byDate["2025-08-20"]]
	assert.True(t, marked.IsUnavailable)
	assert.False(t, marked.HasAppointments)

	// Timestamp suffixes are truncated before matching.
	withTimestamp := cells[byDate["2025-08-25"]]
	assert.True(t, withTimestamp.HasAppointments)
	assert.Equal(t, 1, withTimestamp.AppointmentCount)

	for i, cell := range cells {
		if cell.Date != "2025-08-18" {
			assert.False(t, cell.IsSelected, fmt.Sprintf("cell %d", i))
		}
	}
}

func TestMonthGrid_HasAppointmentsMatchesExactDates(t *testing.T) {
	appointments := []string{"2025-02-14"}
	cells := MonthGrid(date("2025-02-01"), date("2025-02-01"), nil, appointments)

	for _, cell := range cells {
		assert.Equal(t, cell.Date == "2025-02-14", cell.HasAppointments, cell.Date)
	}
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2025-08-18", NormalizeDate("2025-08-18T09:30:00.000Z"))
	assert.Equal(t, "2025-08-18", NormalizeDate("2025-08-18"))
	assert.Equal(t, "", NormalizeDate(""))
}
