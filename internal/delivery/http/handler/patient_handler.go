package handler

import (
	"encoding/json"
	"net/http"

	"medicare-portal/internal/delivery/dto"
	"medicare-portal/internal/delivery/http/middleware"
	"medicare-portal/internal/usecase"
	"medicare-portal/pkg/response"
	"medicare-portal/pkg/validator"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// Doctors serves the searchable doctor directory. Query parameters: search
// (free text) and specialization (exact tag, "All" disables).
func (h *PatientHandler) Doctors(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	specialization := r.URL.Query().Get("specialization")

	doctors, err := h.patientUsecase.Doctors(r.Context(), search, specialization)
	if err != nil {
		writeUpstreamError(w, err, "Failed to fetch doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

// History returns the patient's appointment history with derived statuses
func (h *PatientHandler) History(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	history, err := h.patientUsecase.History(r.Context(), sess)
	if err != nil {
		writeUpstreamError(w, err, "Failed to fetch appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", history)
}

// Book schedules an appointment and returns the created record together with
// the refreshed history.
func (h *PatientHandler) Book(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	created, history, err := h.patientUsecase.Book(r.Context(), sess, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidSlot:
			response.Error(w, http.StatusBadRequest, "Time is not a bookable slot", nil)
		default:
			writeUpstreamError(w, err, "Failed to schedule appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment scheduled successfully", map[string]interface{}{
		"appointment": created,
		"history":     history,
	})
}
