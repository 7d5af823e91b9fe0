package upstream

import (
	"context"
	"net/http"

	"medicare-portal/internal/domain/entity"
	"medicare-portal/internal/domain/upstream"
)

func (c *Client) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var result struct {
		Token   string    `json:"token"`
		User    *wireUser `json:"user"`
		Message string    `json:"message"`
	}

	status, err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &result)
	if err != nil {
		return "", nil, err
	}
	if result.Token == "" || result.User == nil {
		return "", nil, apiError(status, result.Message)
	}

	return result.Token, result.User.toEntity(), nil
}

func (c *Client) Register(ctx context.Context, input *upstream.RegisterInput) (*entity.User, error) {
	body := map[string]string{
		"name":     input.Name,
		"email":    input.Email,
		"password": input.Password,
		"role":     input.Role,
	}
	if input.Specialization != "" {
		body["specialization"] = input.Specialization
	}
	if input.Phone != "" {
		body["phone"] = input.Phone
	}
	if input.Address != "" {
		body["address"] = input.Address
	}

	var result struct {
		User    *wireUser `json:"user"`
		Message string    `json:"message"`
	}

	status, err := c.do(ctx, http.MethodPost, "/auth/register", "", body, &result)
	if err != nil {
		return nil, err
	}
	if result.User == nil {
		return nil, apiError(status, result.Message)
	}

	return result.User.toEntity(), nil
}

func (c *Client) Me(ctx context.Context, token string) (*entity.User, error) {
	var result struct {
		User    *wireUser `json:"user"`
		Message string    `json:"message"`
	}

	status, err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &result)
	if err != nil {
		return nil, err
	}
	if result.User == nil {
		return nil, apiError(status, result.Message)
	}

	return result.User.toEntity(), nil
}

var _ upstream.AuthAPI = (*Client)(nil)
