package usecase

import (
	"context"
	"errors"
	"time"

	"medicare-portal/internal/converter"
	"medicare-portal/internal/delivery/dto"
	"medicare-portal/internal/domain/entity"
	"medicare-portal/internal/domain/upstream"
	"medicare-portal/internal/session"
	"medicare-portal/pkg/token"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrInvalidSlot        = errors.New("time is not a bookable slot")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Logout(ctx context.Context, sessionID string) error
	CurrentUser(ctx context.Context, sess *entity.Session) (*dto.UserResponse, error)
}

type authUsecase struct {
	log        *logrus.Logger
	authAPI    upstream.AuthAPI
	sessions   session.Store
	sessionTTL time.Duration
	now        func() time.Time
}

func NewAuthUsecase(
	log *logrus.Logger,
	authAPI upstream.AuthAPI,
	sessions session.Store,
	sessionTTL time.Duration,
) AuthUsecase {
	return &authUsecase{
		log:        log,
		authAPI:    authAPI,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	bearer, user, err := u.authAPI.Login(ctx, req.Email, req.Password)
	if err != nil {
		var upErr *upstream.Error
		if errors.As(err, &upErr) && upErr.StatusCode < 500 {
			return nil, ErrInvalidCredentials
		}
		u.log.Warnf("Upstream login failed: %+v", err)
		return nil, err
	}

	sess := &entity.Session{
		ID:    uuid.New().String(),
		Token: bearer,
		User:  *user,
	}

	// Avoid keeping a session alive past the upstream token's own expiry.
	ttl := token.RemainingTTL(bearer, u.sessionTTL, u.now())
	if ttl <= 0 {
		return nil, ErrInvalidCredentials
	}

	if err := u.sessions.Create(ctx, sess, ttl); err != nil {
		u.log.Warnf("Failed to store session: %+v", err)
		return nil, err
	}

	return &dto.SessionResponse{
		SessionToken: sess.ID,
		User:         converter.UserToResponse(user),
	}, nil
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	input := &upstream.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Role:           req.Role,
		Specialization: req.Specialization,
		Phone:          req.Phone,
		Address:        req.Address,
	}

	user, err := u.authAPI.Register(ctx, input)
	if err != nil {
		var upErr *upstream.Error
		if errors.As(err, &upErr) && upErr.StatusCode == 409 {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Upstream registration failed: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Logout(ctx context.Context, sessionID string) error {
	if err := u.sessions.Delete(ctx, sessionID); err != nil {
		u.log.Warnf("Failed to delete session: %+v", err)
		return err
	}
	return nil
}

func (u *authUsecase) CurrentUser(ctx context.Context, sess *entity.Session) (*dto.UserResponse, error) {
	user, err := u.authAPI.Me(ctx, sess.Token)
	if err != nil {
		var upErr *upstream.Error
		if errors.As(err, &upErr) && upErr.StatusCode == 401 {
			// The upstream token died before the session did.
			u.sessions.Delete(ctx, sess.ID)
			return nil, ErrSessionNotFound
		}
		u.log.Warnf("Failed to fetch current user: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}
