package upstream

import (
	"medicare-portal/internal/domain/entity"
	"medicare-portal/internal/scheduling"
)

// The platform serves Mongo-style documents: primary keys arrive as "_id"
// and appointment doctor/patient references arrive populated as sub-objects.

type wireUser struct {
	ID             string `json:"_id"`
	AltID          string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Specialization string `json:"specialization"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
}

func (u *wireUser) toEntity() *entity.User {
	id := u.ID
	if id == "" {
		id = u.AltID
	}
	return &entity.User{
		ID:             id,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		Specialization: u.Specialization,
		Phone:          u.Phone,
		Address:        u.Address,
	}
}

type wireDoctor struct {
	ID             string   `json:"_id"`
	AltID          string   `json:"id"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	Address        string   `json:"address"`
	Rating         *float64 `json:"rating"`
}

func (d *wireDoctor) toEntity() entity.Doctor {
	id := d.ID
	if id == "" {
		id = d.AltID
	}
	return entity.Doctor{
		ID:             id,
		Name:           d.Name,
		Specialization: d.Specialization,
		Address:        d.Address,
		Rating:         d.Rating,
	}
}

type wireRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type wireAppointment struct {
	ID       string  `json:"_id"`
	AltID    string  `json:"id"`
	Doctor   wireRef `json:"doctor"`
	Patient  wireRef `json:"patient"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Status   string  `json:"status"`
	Symptoms string  `json:"symptoms"`
	Notes    string  `json:"notes"`
}

// toEntity normalizes the date to its 10-character date-only form; the
// platform sometimes serves full timestamps.
func (a *wireAppointment) toEntity() entity.Appointment {
	id := a.ID
	if id == "" {
		id = a.AltID
	}
	return entity.Appointment{
		ID:          id,
		DoctorID:    a.Doctor.ID,
		DoctorName:  a.Doctor.Name,
		PatientID:   a.Patient.ID,
		PatientName: a.Patient.Name,
		Date:        scheduling.NormalizeDate(a.Date),
		Time:        a.Time,
		Status:      entity.AppointmentStatus(a.Status),
		Symptoms:    a.Symptoms,
		Notes:       a.Notes,
	}
}
