package usecase

import (
	"context"
	"time"

	"medicare-portal/internal/converter"
	"medicare-portal/internal/delivery/dto"
	"medicare-portal/internal/domain/entity"
	"medicare-portal/internal/domain/upstream"
	"medicare-portal/internal/scheduling"

	"github.com/sirupsen/logrus"
)

type PatientUsecase interface {
	Doctors(ctx context.Context, search, specialization string) (*dto.DoctorListResponse, error)
	History(ctx context.Context, sess *entity.Session) (*dto.AppointmentListResponse, error)
	Book(ctx context.Context, sess *entity.Session, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, *dto.AppointmentListResponse, error)
}

type patientUsecase struct {
	log            *logrus.Logger
	doctorAPI      upstream.DoctorAPI
	appointmentAPI upstream.AppointmentAPI
	now            func() time.Time
}

func NewPatientUsecase(
	log *logrus.Logger,
	doctorAPI upstream.DoctorAPI,
	appointmentAPI upstream.AppointmentAPI,
) PatientUsecase {
	return &patientUsecase{
		log:            log,
		doctorAPI:      doctorAPI,
		appointmentAPI: appointmentAPI,
		now:            scheduling.NowIST,
	}
}

func (u *patientUsecase) Doctors(ctx context.Context, search, specialization string) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorAPI.Doctors(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch doctor directory: %+v", err)
		return nil, err
	}

	filtered := scheduling.FilterDoctors(doctors, search, specialization)

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(filtered),
		Total:   len(filtered),
	}, nil
}

func (u *patientUsecase) History(ctx context.Context, sess *entity.Session) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentAPI.List(ctx, sess.Token)
	if err != nil {
		u.log.Warnf("Failed to fetch appointment history: %+v", err)
		return nil, err
	}

	// Patient history shows the same derived status the doctor sees.
	appointments = scheduling.ReconcileAll(appointments, u.now())

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// Book creates the appointment upstream and, on success, re-fetches the
// patient's history so the caller renders a consistent list.
func (u *patientUsecase) Book(ctx context.Context, sess *entity.Session, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, *dto.AppointmentListResponse, error) {
	if !scheduling.IsValidSlot(req.Time) {
		return nil, nil, ErrInvalidSlot
	}

	input := &upstream.BookingInput{
		DoctorID: req.DoctorID,
		Date:     scheduling.NormalizeDate(req.Date),
		Time:     req.Time,
		Symptoms: req.Symptoms,
		Notes:    req.Notes,
	}

	created, err := u.appointmentAPI.Create(ctx, sess.Token, input)
	if err != nil {
		u.log.Warnf("Failed to book appointment: %+v", err)
		return nil, nil, err
	}

	history, err := u.History(ctx, sess)
	if err != nil {
		// Booking succeeded; a failed refresh is not fatal.
		u.log.Warnf("Failed to refresh history after booking: %+v", err)
		history = nil
	}

	return converter.AppointmentToResponse(created), history, nil
}
