package usecase

import (
	"context"

	"medicare-portal/internal/converter"
	"medicare-portal/internal/delivery/dto"
	"medicare-portal/internal/domain/entity"
	"medicare-portal/internal/domain/upstream"

	"github.com/sirupsen/logrus"
)

type ProfileUsecase interface {
	Get(ctx context.Context, sess *entity.Session) (*dto.UserResponse, error)
	Update(ctx context.Context, sess *entity.Session, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type profileUsecase struct {
	log        *logrus.Logger
	profileAPI upstream.ProfileAPI
}

func NewProfileUsecase(log *logrus.Logger, profileAPI upstream.ProfileAPI) ProfileUsecase {
	return &profileUsecase{
		log:        log,
		profileAPI: profileAPI,
	}
}

func (u *profileUsecase) Get(ctx context.Context, sess *entity.Session) (*dto.UserResponse, error) {
	user, err := u.profileAPI.Profile(ctx, sess.Token)
	if err != nil {
		u.log.Warnf("Failed to fetch profile: %+v", err)
		return nil, err
	}
	return converter.UserToResponse(user), nil
}

func (u *profileUsecase) Update(ctx context.Context, sess *entity.Session, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	input := &upstream.ProfileInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	}

	user, err := u.profileAPI.UpdateProfile(ctx, sess.Token, input)
	if err != nil {
		u.log.Warnf("Failed to update profile: %+v", err)
		return nil, err
	}
	return converter.UserToResponse(user), nil
}
