package dto

// DayCellResponse is one cell of the doctor dashboard month grid.
type DayCellResponse struct {
	Date             string `json:"date"`
	IsSelected       bool   `json:"is_selected"`
	IsInCurrentMonth bool   `json:"is_in_current_month"`
	IsUnavailable    bool   `json:"is_unavailable"`
	HasAppointments  bool   `json:"has_appointments"`
	AppointmentCount int    `json:"appointment_count"`
}

// DoctorDashboardResponse composes the calendar for the requested month with
// the reconciled appointments of the selected date.
type DoctorDashboardResponse struct {
	Month            string                `json:"month"`
	SelectedDate     string                `json:"selected_date"`
	Calendar         []DayCellResponse     `json:"calendar"`
	Appointments     []AppointmentResponse `json:"appointments"`
	UnavailableDates []string              `json:"unavailable_dates"`
}

// AvailabilityResponse reports the state of a date after a toggle.
type AvailabilityResponse struct {
	Date        string `json:"date"`
	Unavailable bool   `json:"unavailable"`
}
