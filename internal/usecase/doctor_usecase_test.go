package usecase

import (
	"context"
	"testing"

	"medicare-portal/internal/availability"
	"medicare-portal/internal/domain/entity"
	"medicare-portal/internal/domain/upstream"

	"github.com/stretchr/testify/assert"
)

var doctorSession = &entity.Session{
	ID:    "sess-2",
	Token: "upstream-token",
	User:  entity.User{ID: "d1", Role: entity.RoleDoctor},
}

func doctorAppointments() []entity.Appointment {
	return []entity.Appointment{
		{ID: "a1", Date: "2025-08-18", Time: "09:00 AM", Status: entity.AppointmentStatusPending, PatientName: "Jane"},
		{ID: "a2", Date: "2025-08-18", Time: "02:30 PM", Status: entity.AppointmentStatusConfirmed, PatientName: "Ravi"},
		{ID: "a3", Date: "2025-08-28", Time: "10:00 AM", Status: entity.AppointmentStatusPending, PatientName: "Mia"},
	}
}

func newDoctorUsecase(appointmentAPI *MockAppointmentAPI) (*doctorUsecase, *availability.Store) {
	store := availability.NewStore()
	uc := NewDoctorUsecase(testLogger(), appointmentAPI, store).(*doctorUsecase)
	uc.now = fixedNow("2025-08-20 10:00")
	return uc, store
}

func TestDoctorUsecase_Dashboard(t *testing.T) {
	appointmentAPI := &MockAppointmentAPI{
		ListFunc: func(ctx context.Context, token string) ([]entity.Appointment, error) {
			return doctorAppointments(), nil
		},
	}
	uc, store := newDoctorUsecase(appointmentAPI)
	store.Toggle("d1", "2025-08-22")

	resp, err := uc.Dashboard(context.Background(), doctorSession, "2025-08", "2025-08-18")
	assert.NoError(t, err)

	assert.Equal(t, "2025-08", resp.Month)
	assert.Equal(t, "2025-08-18", resp.SelectedDate)
	assert.Len(t, resp.Calendar, 31)

	// Appointments for the selected date, ordered by slot, statuses derived.
	assert.Len(t, resp.Appointments, 2)
	assert.Equal(t, "a1", resp.Appointments[0].ID)
	assert.Equal(t, "completed", resp.Appointments[0].Status)
	assert.Equal(t, "a2", resp.Appointments[1].ID)
	assert.Equal(t, "completed", resp.Appointments[1].Status)

	var day18, day22, day28 entity.DayCell
	for _, cell := range resp.Calendar {
		switch cell.Date {
		case "2025-08-18":
			day18 = entity.DayCell{Date: cell.Date, IsSelected: cell.IsSelected, HasAppointments: cell.HasAppointments, AppointmentCount: cell.AppointmentCount}
		case "2025-08-22":
			day22 = entity.DayCell{Date: cell.Date, IsUnavailable: cell.IsUnavailable}
		case "2025-08-28":
			day28 = entity.DayCell{Date: cell.Date, HasAppointments: cell.HasAppointments}
		}
	}
	assert.True(t, day18.IsSelected)
	assert.True(t, day18.HasAppointments)
	assert.Equal(t, 2, day18.AppointmentCount)
	assert.True(t, day22.IsUnavailable)
	assert.True(t, day28.HasAppointments)

	assert.Equal(t, []string{"2025-08-22"}, resp.UnavailableDates)
}

func TestDoctorUsecase_Dashboard_DefaultsToToday(t *testing.T) {
	appointmentAPI := &MockAppointmentAPI{
		ListFunc: func(ctx context.Context, token string) ([]entity.Appointment, error) {
			return nil, nil
		},
	}
	uc, _ := newDoctorUsecase(appointmentAPI)

	resp, err := uc.Dashboard(context.Background(), doctorSession, "", "")
	assert.NoError(t, err)
	assert.Equal(t, "2025-08", resp.Month)
	assert.Equal(t, "2025-08-20", resp.SelectedDate)
	assert.Len(t, resp.Calendar, 31)
	assert.Empty(t, resp.Appointments)
}

func TestDoctorUsecase_Dashboard_RejectsBadMonth(t *testing.T) {
	uc, _ := newDoctorUsecase(&MockAppointmentAPI{})

	_, err := uc.Dashboard(context.Background(), doctorSession, "August 2025", "")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestDoctorUsecase_Accept(t *testing.T) {
	appointmentAPI := &MockAppointmentAPI{
		UpdateStatusFunc: func(ctx context.Context, token, id string, status entity.AppointmentStatus) (*entity.Appointment, error) {
			assert.Equal(t, "a3", id)
			assert.Equal(t, entity.AppointmentStatusConfirmed, status)
			return &entity.Appointment{ID: "a3", Date: "2025-08-28", Time: "10:00 AM", Status: entity.AppointmentStatusConfirmed}, nil
		},
	}
	uc, _ := newDoctorUsecase(appointmentAPI)

	resp, err := uc.Accept(context.Background(), doctorSession, "a3")
	assert.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestDoctorUsecase_Accept_PastSlotReadsCompleted(t *testing.T) {
	appointmentAPI := &MockAppointmentAPI{
		UpdateStatusFunc: func(ctx context.Context, token, id string, status entity.AppointmentStatus) (*entity.Appointment, error) {
			return &entity.Appointment{ID: "a1", Date: "2025-08-18", Time: "09:00 AM", Status: entity.AppointmentStatusConfirmed}, nil
		},
	}
	uc, _ := newDoctorUsecase(appointmentAPI)

	resp, err := uc.Accept(context.Background(), doctorSession, "a1")
	assert.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
}

func TestDoctorUsecase_Delete_PropagatesUpstreamError(t *testing.T) {
	appointmentAPI := &MockAppointmentAPI{
		DeleteFunc: func(ctx context.Context, token, id string) error {
			return &upstream.Error{StatusCode: 404, Message: "Appointment not found"}
		},
	}
	uc, _ := newDoctorUsecase(appointmentAPI)

	err := uc.Delete(context.Background(), doctorSession, "missing")
	var upErr *upstream.Error
	assert.ErrorAs(t, err, &upErr)
	assert.Equal(t, 404, upErr.StatusCode)
}

func TestDoctorUsecase_ToggleAvailability(t *testing.T) {
	uc, store := newDoctorUsecase(&MockAppointmentAPI{})

	resp, err := uc.ToggleAvailability(context.Background(), doctorSession, "2025-08-22")
	assert.NoError(t, err)
	assert.True(t, resp.Unavailable)
	assert.True(t, store.IsUnavailable("d1", "2025-08-22"))

	resp, err = uc.ToggleAvailability(context.Background(), doctorSession, "2025-08-22")
	assert.NoError(t, err)
	assert.False(t, resp.Unavailable)
	assert.False(t, store.IsUnavailable("d1", "2025-08-22"))
}

func TestDoctorUsecase_ToggleAvailability_RejectsBadDate(t *testing.T) {
	uc, _ := newDoctorUsecase(&MockAppointmentAPI{})

	_, err := uc.ToggleAvailability(context.Background(), doctorSession, "someday")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}
