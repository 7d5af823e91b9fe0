package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"medicare-portal/internal/availability"
	"medicare-portal/internal/converter"
	"medicare-portal/internal/delivery/dto"
	"medicare-portal/internal/domain/entity"
	"medicare-portal/internal/domain/upstream"
	"medicare-portal/internal/scheduling"

	"github.com/sirupsen/logrus"
)

var ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")

// monthFormat selects the dashboard month, e.g. "2025-08".
const monthFormat = "2006-01"

type DoctorUsecase interface {
	Dashboard(ctx context.Context, sess *entity.Session, month, selectedDate string) (*dto.DoctorDashboardResponse, error)
	Accept(ctx context.Context, sess *entity.Session, appointmentID string) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, sess *entity.Session, appointmentID string) error
	ToggleAvailability(ctx context.Context, sess *entity.Session, date string) (*dto.AvailabilityResponse, error)
}

type doctorUsecase struct {
	log            *logrus.Logger
	appointmentAPI upstream.AppointmentAPI
	availability   *availability.Store
	now            func() time.Time
}

func NewDoctorUsecase(
	log *logrus.Logger,
	appointmentAPI upstream.AppointmentAPI,
	availabilityStore *availability.Store,
) DoctorUsecase {
	return &doctorUsecase{
		log:            log,
		appointmentAPI: appointmentAPI,
		availability:   availabilityStore,
		now:            scheduling.NowIST,
	}
}

// Dashboard fetches the doctor's appointments, reconciles each status against
// the current time, and composes the month grid plus the selected date's
// appointment list. Month defaults to the current month, selected date to
// today.
func (u *doctorUsecase) Dashboard(ctx context.Context, sess *entity.Session, month, selectedDate string) (*dto.DoctorDashboardResponse, error) {
	now := u.now()

	reference := now
	if month != "" {
		parsed, err := time.Parse(monthFormat, month)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		reference = parsed
	}

	selected := now
	if selectedDate != "" {
		parsed, err := time.Parse(scheduling.DateOnly, selectedDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		selected = parsed
	}

	appointments, err := u.appointmentAPI.List(ctx, sess.Token)
	if err != nil {
		u.log.Warnf("Failed to fetch doctor appointments: %+v", err)
		return nil, err
	}
	appointments = scheduling.ReconcileAll(appointments, now)

	dates := make([]string, len(appointments))
	for i, appt := range appointments {
		dates[i] = appt.Date
	}

	unavailable := u.availability.Dates(sess.User.ID)
	cells := scheduling.MonthGrid(reference, selected, unavailable, dates)

	selectedStr := selected.Format(scheduling.DateOnly)
	daily := make([]entity.Appointment, 0, len(appointments))
	for _, appt := range appointments {
		if appt.Date == selectedStr {
			daily = append(daily, appt)
		}
	}
	sort.SliceStable(daily, func(i, j int) bool {
		a, errA := scheduling.SlotTime(daily[i].Date, daily[i].Time)
		b, errB := scheduling.SlotTime(daily[j].Date, daily[j].Time)
		if errA != nil || errB != nil {
			return errB != nil && errA == nil
		}
		return a.Before(b)
	})

	return &dto.DoctorDashboardResponse{
		Month:            reference.Format(monthFormat),
		SelectedDate:     selectedStr,
		Calendar:         converter.DayCellsToResponses(cells),
		Appointments:     converter.AppointmentsToResponses(daily),
		UnavailableDates: u.availability.List(sess.User.ID),
	}, nil
}

// Accept confirms a pending appointment upstream. The returned record is
// reconciled so a slot that has already passed reads as completed, not
// confirmed.
func (u *doctorUsecase) Accept(ctx context.Context, sess *entity.Session, appointmentID string) (*dto.AppointmentResponse, error) {
	updated, err := u.appointmentAPI.UpdateStatus(ctx, sess.Token, appointmentID, entity.AppointmentStatusConfirmed)
	if err != nil {
		u.log.Warnf("Failed to confirm appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	reconciled := scheduling.Reconcile(*updated, u.now())
	return converter.AppointmentToResponse(&reconciled), nil
}

func (u *doctorUsecase) Delete(ctx context.Context, sess *entity.Session, appointmentID string) error {
	if err := u.appointmentAPI.Delete(ctx, sess.Token, appointmentID); err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", appointmentID, err)
		return err
	}
	return nil
}

// ToggleAvailability flips the ephemeral unavailable flag for one of the
// doctor's dates; the platform is never told.
func (u *doctorUsecase) ToggleAvailability(ctx context.Context, sess *entity.Session, date string) (*dto.AvailabilityResponse, error) {
	normalized := scheduling.NormalizeDate(date)
	if _, err := time.Parse(scheduling.DateOnly, normalized); err != nil {
		return nil, ErrInvalidDateFormat
	}

	unavailable := u.availability.Toggle(sess.User.ID, normalized)
	return &dto.AvailabilityResponse{
		Date:        normalized,
		Unavailable: unavailable,
	}, nil
}
