// Package upstream defines the gateway's view of the clinic platform REST
// API. Implementations live in internal/upstream; usecases depend only on
// these interfaces.
package upstream

import (
	"context"
	"fmt"

	"medicare-portal/internal/domain/entity"
)

// Error is a failure reported by the clinic platform itself, as opposed to a
// transport failure reaching it.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// RegisterInput mirrors the platform's /auth/register body.
type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	Role           string
	Specialization string
	Phone          string
	Address        string
}

// BookingInput mirrors the platform's POST /appointments body.
type BookingInput struct {
	DoctorID string
	Date     string
	Time     string
	Symptoms string
	Notes    string
}

// ProfileInput mirrors the platform's PUT /users/profile body.
type ProfileInput struct {
	Name    string
	Phone   string
	Address string
}

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Me(ctx context.Context, token string) (*entity.User, error)
}

type AppointmentAPI interface {
	List(ctx context.Context, token string) ([]entity.Appointment, error)
	Create(ctx context.Context, token string, input *BookingInput) (*entity.Appointment, error)
	UpdateStatus(ctx context.Context, token, id string, status entity.AppointmentStatus) (*entity.Appointment, error)
	Delete(ctx context.Context, token, id string) error
}

type DoctorAPI interface {
	Doctors(ctx context.Context) ([]entity.Doctor, error)
}

type ProfileAPI interface {
	Profile(ctx context.Context, token string) (*entity.User, error)
	UpdateProfile(ctx context.Context, token string, input *ProfileInput) (*entity.User, error)
}
