package upstream

import (
	"context"
	"net/http"

	"medicare-portal/internal/domain/entity"
	"medicare-portal/internal/domain/upstream"
)

// Doctors fetches the public directory; the platform serves it without auth.
func (c *Client) Doctors(ctx context.Context) ([]entity.Doctor, error) {
	var result struct {
		Doctors []wireDoctor `json:"doctors"`
		Message string       `json:"message"`
	}

	status, err := c.do(ctx, http.MethodGet, "/users/doctors", "", nil, &result)
	if err != nil {
		return nil, err
	}
	if result.Doctors == nil && status >= http.StatusBadRequest {
		return nil, apiError(status, result.Message)
	}

	doctors := make([]entity.Doctor, len(result.Doctors))
	for i := range result.Doctors {
		doctors[i] = result.Doctors[i].toEntity()
	}
	return doctors, nil
}

func (c *Client) Profile(ctx context.Context, token string) (*entity.User, error) {
	var result struct {
		User    *wireUser `json:"user"`
		Message string    `json:"message"`
	}

	status, err := c.do(ctx, http.MethodGet, "/users/profile", token, nil, &result)
	if err != nil {
		return nil, err
	}
	if result.User == nil {
		return nil, apiError(status, result.Message)
	}

	return result.User.toEntity(), nil
}

func (c *Client) UpdateProfile(ctx context.Context, token string, input *upstream.ProfileInput) (*entity.User, error) {
	body := map[string]string{
		"name":    input.Name,
		"phone":   input.Phone,
		"address": input.Address,
	}

	var result struct {
		User    *wireUser `json:"user"`
		Message string    `json:"message"`
	}

	status, err := c.do(ctx, http.MethodPut, "/users/profile", token, body, &result)
	if err != nil {
		return nil, err
	}
	if result.User == nil {
		return nil, apiError(status, result.Message)
	}

	return result.User.toEntity(), nil
}

var _ upstream.DoctorAPI = (*Client)(nil)
var _ upstream.ProfileAPI = (*Client)(nil)
