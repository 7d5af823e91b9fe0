package http

import (
	"net/http"

	"medicare-portal/internal/delivery/http/handler"
	"medicare-portal/internal/delivery/http/middleware"
	"medicare-portal/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	authHandler       *handler.AuthHandler
	patientHandler    *handler.PatientHandler
	doctorHandler     *handler.DoctorHandler
	profileHandler    *handler.ProfileHandler
	sessionMiddleware *middleware.SessionMiddleware
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	profileHandler *handler.ProfileHandler,
	sessionMiddleware *middleware.SessionMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		authHandler:       authHandler,
		patientHandler:    patientHandler,
		doctorHandler:     doctorHandler,
		profileHandler:    profileHandler,
		sessionMiddleware: sessionMiddleware,
		corsMiddleware:    corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)

	// Auth routes (session required)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.sessionMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Profile routes
	profile := api.PathPrefix("/profile").Subrouter()
	profile.Use(r.sessionMiddleware.Authenticate)
	profile.HandleFunc("", r.profileHandler.Get).Methods(http.MethodGet)
	profile.HandleFunc("", r.profileHandler.Update).Methods(http.MethodPut)

	// Doctor directory is public upstream, so it is public here too
	api.HandleFunc("/patient/doctors", r.patientHandler.Doctors).Methods(http.MethodGet)

	// Patient dashboard
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.sessionMiddleware.Authenticate)
	patient.Use(middleware.RequireRole(entity.RolePatient))
	patient.HandleFunc("/appointments", r.patientHandler.History).Methods(http.MethodGet)
	patient.HandleFunc("/appointments", r.patientHandler.Book).Methods(http.MethodPost)

	// Doctor dashboard
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.sessionMiddleware.Authenticate)
	doctor.Use(middleware.RequireRole(entity.RoleDoctor))
	doctor.HandleFunc("/dashboard", r.doctorHandler.Dashboard).Methods(http.MethodGet)
	doctor.HandleFunc("/appointments/{id}/accept", r.doctorHandler.Accept).Methods(http.MethodPut)
	doctor.HandleFunc("/appointments/{id}", r.doctorHandler.Delete).Methods(http.MethodDelete)
	doctor.HandleFunc("/availability/{date}", r.doctorHandler.ToggleAvailability).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
