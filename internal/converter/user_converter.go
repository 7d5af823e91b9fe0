package converter

import (
	"medicare-portal/internal/delivery/dto"
	"medicare-portal/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role,
		Specialization: user.Specialization,
		Phone:          user.Phone,
		Address:        user.Address,
	}
}
