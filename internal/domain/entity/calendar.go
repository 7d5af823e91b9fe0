package entity

// DayCell is one cell of the dashboard month grid. It has no lifecycle of its
// own; every field is derived from the reference month, the selected date, the
// unavailable-date set and the fetched appointments.
type DayCell struct {
	Date             string `json:"date"`
	IsSelected       bool   `json:"is_selected"`
	IsInCurrentMonth bool   `json:"is_in_current_month"`
	IsUnavailable    bool   `json:"is_unavailable"`
	HasAppointments  bool   `json:"has_appointments"`
	AppointmentCount int    `json:"appointment_count"`
}
