package dto

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name            string `json:"name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Role            string `json:"role" validate:"required,oneof=patient doctor"`
	Specialization  string `json:"specialization" validate:"required_if=Role doctor"`
	Phone           string `json:"phone" validate:"omitempty,min=10,max=20"`
	Address         string `json:"address" validate:"omitempty"`
}

// Response DTOs

type SessionResponse struct {
	SessionToken string        `json:"session_token"`
	User         *UserResponse `json:"user"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Specialization string `json:"specialization,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Address        string `json:"address,omitempty"`
}
