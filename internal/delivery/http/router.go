package http

import (
	"net/http"

	"doctor-finder/internal/delivery/http/handler"
	"doctor-finder/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	doctorHandler     *handler.DoctorHandler
	pageHandler       *handler.PageHandler
	metricsHandler    http.Handler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	pageHandler *handler.PageHandler,
	metricsHandler http.Handler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		doctorHandler:     doctorHandler,
		pageHandler:       pageHandler,
		metricsHandler:    metricsHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Directory page
	r.router.HandleFunc("/", r.pageHandler.Index).Methods(http.MethodGet)

	if r.metricsHandler != nil {
		r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)
	}

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Doctor directory (public, read-only)
	api.HandleFunc("/doctors", r.doctorHandler.SearchDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/suggestions", r.doctorHandler.SuggestDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/events", r.doctorHandler.ApplyViewEvent).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/specialties", r.doctorHandler.GetSpecialties).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
