package usecase

import (
	"context"
	"errors"
	"time"

	"medicare-portal/internal/domain/entity"
	"medicare-portal/internal/domain/upstream"
	"medicare-portal/internal/session"
)

// --- MockAuthAPI ---
var _ upstream.AuthAPI = (*MockAuthAPI)(nil)

type MockAuthAPI struct {
	LoginFunc    func(ctx context.Context, email, password string) (string, *entity.User, error)
	RegisterFunc func(ctx context.Context, input *upstream.RegisterInput) (*entity.User, error)
	MeFunc       func(ctx context.Context, token string) (*entity.User, error)
}

func (m *MockAuthAPI) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", nil, errors.New("LoginFunc not implemented in mock")
}

func (m *MockAuthAPI) Register(ctx context.Context, input *upstream.RegisterInput) (*entity.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, input)
	}
	return nil, errors.New("RegisterFunc not implemented in mock")
}

func (m *MockAuthAPI) Me(ctx context.Context, token string) (*entity.User, error) {
	if m.MeFunc != nil {
		return m.MeFunc(ctx, token)
	}
	return nil, errors.New("MeFunc not implemented in mock")
}

// --- MockAppointmentAPI ---
var _ upstream.AppointmentAPI = (*MockAppointmentAPI)(nil)

type MockAppointmentAPI struct {
	ListFunc         func(ctx context.Context, token string) ([]entity.Appointment, error)
	CreateFunc       func(ctx context.Context, token string, input *upstream.BookingInput) (*entity.Appointment, error)
	UpdateStatusFunc func(ctx context.Context, token, id string, status entity.AppointmentStatus) (*entity.Appointment, error)
	DeleteFunc       func(ctx context.Context, token, id string) error

	ListCallCount int
}

func (m *MockAppointmentAPI) List(ctx context.Context, token string) ([]entity.Appointment, error) {
	m.ListCallCount++
	if m.ListFunc != nil {
		return m.ListFunc(ctx, token)
	}
	return nil, nil
}

func (m *MockAppointmentAPI) Create(ctx context.Context, token string, input *upstream.BookingInput) (*entity.Appointment, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token, input)
	}
	return nil, errors.New("CreateFunc not implemented in mock")
}

func (m *MockAppointmentAPI) UpdateStatus(ctx context.Context, token, id string, status entity.AppointmentStatus) (*entity.Appointment, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, token, id, status)
	}
	return nil, errors.New("UpdateStatusFunc not implemented in mock")
}

func (m *MockAppointmentAPI) Delete(ctx context.Context, token, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, token, id)
	}
	return errors.New("DeleteFunc not implemented in mock")
}

// --- MockDoctorAPI ---
var _ upstream.DoctorAPI = (*MockDoctorAPI)(nil)

type MockDoctorAPI struct {
	DoctorsFunc func(ctx context.Context) ([]entity.Doctor, error)
}

func (m *MockDoctorAPI) Doctors(ctx context.Context) ([]entity.Doctor, error) {
	if m.DoctorsFunc != nil {
		return m.DoctorsFunc(ctx)
	}
	return nil, errors.New("DoctorsFunc not implemented in mock")
}

// --- MockProfileAPI ---
var _ upstream.ProfileAPI = (*MockProfileAPI)(nil)

type MockProfileAPI struct {
	ProfileFunc       func(ctx context.Context, token string) (*entity.User, error)
	UpdateProfileFunc func(ctx context.Context, token string, input *upstream.ProfileInput) (*entity.User, error)
}

func (m *MockProfileAPI) Profile(ctx context.Context, token string) (*entity.User, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, token)
	}
	return nil, errors.New("ProfileFunc not implemented in mock")
}

func (m *MockProfileAPI) UpdateProfile(ctx context.Context, token string, input *upstream.ProfileInput) (*entity.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, token, input)
	}
	return nil, errors.New("UpdateProfileFunc not implemented in mock")
}

// --- MockSessionStore ---
var _ session.Store = (*MockSessionStore)(nil)

type MockSessionStore struct {
	CreateFunc func(ctx context.Context, sess *entity.Session, ttl time.Duration) error
	GetFunc    func(ctx context.Context, id string) (*entity.Session, error)
	DeleteFunc func(ctx context.Context, id string) error

	DeleteCallCount int
}

func (m *MockSessionStore) Create(ctx context.Context, sess *entity.Session, ttl time.Duration) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sess, ttl)
	}
	return nil
}

func (m *MockSessionStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, session.ErrNotFound
}

func (m *MockSessionStore) Delete(ctx context.Context, id string) error {
	m.DeleteCallCount++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
