package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/andressagobbi/SGHSS-VidaPlus/internal/dashboard"
	httpmiddleware "github.com/andressagobbi/SGHSS-VidaPlus/internal/http/middleware"
	"github.com/andressagobbi/SGHSS-VidaPlus/internal/patients"
	"github.com/andressagobbi/SGHSS-VidaPlus/internal/professionals"
	"github.com/andressagobbi/SGHSS-VidaPlus/internal/scheduling"
	"github.com/andressagobbi/SGHSS-VidaPlus/internal/telemedicine"
	"github.com/andressagobbi/SGHSS-VidaPlus/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger               *logging.Logger
	PatientsHandler      *patients.Handler
	ProfessionalsHandler *professionals.Handler
	SchedulingHandler    *scheduling.Handler
	DashboardHandler     *dashboard.Handler
	TelemedicineHandler  *telemedicine.Handler
	MetricsHandler       http.Handler
	CORSAllowedOrigins   []string

	// Rate limiting for the public telemedicine endpoints
	PublicBookingRate  float64
	PublicBookingBurst int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	if cfg.PatientsHandler != nil {
		r.Route("/patients", func(r chi.Router) {
			r.Post("/", cfg.PatientsHandler.CreatePatient)
			r.Get("/", cfg.PatientsHandler.ListPatients)
			r.Get("/{id}", cfg.PatientsHandler.GetPatient)
			r.Post("/{id}/history", cfg.PatientsHandler.AddHistory)
		})
	}

	if cfg.ProfessionalsHandler != nil {
		r.Route("/professionals", func(r chi.Router) {
			r.Post("/", cfg.ProfessionalsHandler.CreateProfessional)
			r.Get("/", cfg.ProfessionalsHandler.ListProfessionals)
			r.Put("/{id}", cfg.ProfessionalsHandler.UpdateProfessional)
			r.Delete("/{id}", cfg.ProfessionalsHandler.DeleteProfessional)
		})
	}

	if cfg.SchedulingHandler != nil {
		r.Route("/appointments", func(r chi.Router) {
			r.Post("/", cfg.SchedulingHandler.QuickSchedule)
			r.Get("/", cfg.SchedulingHandler.ListAppointments)
			r.Delete("/{id}", cfg.SchedulingHandler.CancelAppointment)
		})
	}

	// Public telemedicine surface, rate limited per client IP.
	r.Group(func(public chi.Router) {
		if cfg.PublicBookingRate > 0 {
			public.Use(httpmiddleware.RateLimit(cfg.PublicBookingRate, cfg.PublicBookingBurst))
		}
		if cfg.SchedulingHandler != nil {
			public.Get("/telemedicine/slots", cfg.SchedulingHandler.ListSlots)
			public.Post("/telemedicine/appointments", cfg.SchedulingHandler.BookTelemedicine)
		}
		if cfg.TelemedicineHandler != nil {
			public.Post("/telemedicine/call/start", cfg.TelemedicineHandler.StartCall)
			public.Post("/telemedicine/call/end", cfg.TelemedicineHandler.EndCall)
		}
	})

	if cfg.DashboardHandler != nil {
		r.Get("/dashboard/stats", cfg.DashboardHandler.GetStats)
		r.Post("/reports", cfg.DashboardHandler.CreateReport)
	}

	return r
}
