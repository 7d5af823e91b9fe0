package converter

import (
	"medicare-portal/internal/delivery/dto"
	"medicare-portal/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appt *entity.Appointment) *dto.AppointmentResponse {
	if appt == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:          appt.ID,
		DoctorID:    appt.DoctorID,
		DoctorName:  appt.DoctorName,
		PatientID:   appt.PatientID,
		PatientName: appt.PatientName,
		Date:        appt.Date,
		Time:        appt.Time,
		Status:      string(appt.Status),
		Symptoms:    appt.Symptoms,
		Notes:       appt.Notes,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appts []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appts))
	for i := range appts {
		responses[i] = *AppointmentToResponse(&appts[i])
	}
	return responses
}
