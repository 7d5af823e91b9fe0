package upstream

import (
	"context"
	"fmt"
	"net/http"

	"medicare-portal/internal/domain/entity"
	"medicare-portal/internal/domain/upstream"
)

func (c *Client) List(ctx context.Context, token string) ([]entity.Appointment, error) {
	var result struct {
		Appointments []wireAppointment `json:"appointments"`
		Message      string            `json:"message"`
	}

	status, err := c.do(ctx, http.MethodGet, "/appointments", token, nil, &result)
	if err != nil {
		return nil, err
	}
	if result.Appointments == nil && status >= http.StatusBadRequest {
		return nil, apiError(status, result.Message)
	}

	appointments := make([]entity.Appointment, len(result.Appointments))
	for i := range result.Appointments {
		appointments[i] = result.Appointments[i].toEntity()
	}
	return appointments, nil
}

func (c *Client) Create(ctx context.Context, token string, input *upstream.BookingInput) (*entity.Appointment, error) {
	body := map[string]string{
		"doctorId": input.DoctorID,
		"date":     input.Date,
		"time":     input.Time,
	}
	if input.Symptoms != "" {
		body["symptoms"] = input.Symptoms
	}
	if input.Notes != "" {
		body["notes"] = input.Notes
	}

	var result struct {
		Appointment *wireAppointment `json:"appointment"`
		Message     string           `json:"message"`
	}

	status, err := c.do(ctx, http.MethodPost, "/appointments", token, body, &result)
	if err != nil {
		return nil, err
	}
	if result.Appointment == nil {
		return nil, apiError(status, result.Message)
	}

	appt := result.Appointment.toEntity()
	return &appt, nil
}

// UpdateStatus is the one call that fails on a non-2xx status instead of
// inspecting the body, matching the platform client's historical behavior.
func (c *Client) UpdateStatus(ctx context.Context, token, id string, status entity.AppointmentStatus) (*entity.Appointment, error) {
	body := map[string]string{
		"status": string(status),
	}

	var result struct {
		Appointment *wireAppointment `json:"appointment"`
		Message     string           `json:"message"`
	}

	code, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/appointments/%s/status", id), token, body, &result)
	if err != nil {
		return nil, err
	}
	if code < http.StatusOK || code >= http.StatusMultipleChoices {
		return nil, apiError(code, fmt.Sprintf("failed to update appointment status: %s", result.Message))
	}
	if result.Appointment == nil {
		return nil, apiError(code, result.Message)
	}

	appt := result.Appointment.toEntity()
	return &appt, nil
}

func (c *Client) Delete(ctx context.Context, token, id string) error {
	var result struct {
		Message string `json:"message"`
	}

	status, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/appointments/%s", id), token, nil, &result)
	if err != nil {
		return err
	}
	if status >= http.StatusBadRequest {
		return apiError(status, result.Message)
	}
	return nil
}

var _ upstream.AppointmentAPI = (*Client)(nil)
