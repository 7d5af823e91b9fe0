package handler

import (
	"net/http"

	"medicare-portal/internal/delivery/http/middleware"
	"medicare-portal/internal/usecase"
	"medicare-portal/pkg/response"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
	}
}

// Dashboard serves the calendar month grid plus the selected date's
// appointments. Query parameters: month (YYYY-MM) and date (YYYY-MM-DD),
// both defaulting to today.
func (h *DoctorHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	month := r.URL.Query().Get("month")
	date := r.URL.Query().Get("date")

	dashboard, err := h.doctorUsecase.Dashboard(r.Context(), sess, month, date)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			writeUpstreamError(w, err, "Failed to fetch appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

// Accept confirms a pending appointment
func (h *DoctorHandler) Accept(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	id := mux.Vars(r)["id"]

	appointment, err := h.doctorUsecase.Accept(r.Context(), sess, id)
	if err != nil {
		writeUpstreamError(w, err, "Failed to confirm appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment confirmed", appointment)
}

// Delete removes an appointment
func (h *DoctorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	id := mux.Vars(r)["id"]

	if err := h.doctorUsecase.Delete(r.Context(), sess, id); err != nil {
		writeUpstreamError(w, err, "Failed to delete appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted", nil)
}

// ToggleAvailability flips the unavailable flag for a date
func (h *DoctorHandler) ToggleAvailability(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	date := mux.Vars(r)["date"]

	result, err := h.doctorUsecase.ToggleAvailability(r.Context(), sess, date)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update availability")
		}
		return
	}

	message := "Date marked as available"
	if result.Unavailable {
		message = "Date marked as unavailable"
	}
	response.Success(w, http.StatusOK, message, result)
}
