package scheduling

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/andressagobbi/SGHSS-VidaPlus/internal/hospital"
	"github.com/andressagobbi/SGHSS-VidaPlus/pkg/logging"
)

// Handler handles HTTP requests for appointments and telemedicine bookings
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a new scheduling handler
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if service == nil {
		panic("scheduling: service required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

// QuickScheduleRequest is the request body for internal bookings
type QuickScheduleRequest struct {
	PatientID      int64  `json:"patient_id"`
	ProfessionalID int64  `json:"professional_id"`
	Date           string `json:"date"`
	Time           string `json:"time"`
}

// QuickSchedule handles POST /appointments requests
func (h *Handler) QuickSchedule(w http.ResponseWriter, r *http.Request) {
	var req QuickScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.PatientID == 0 || req.ProfessionalID == 0 || req.Date == "" || req.Time == "" {
		http.Error(w, "patient_id, professional_id, date and time are required", http.StatusBadRequest)
		return
	}

	appt, err := h.service.BookInternal(r.Context(), req.PatientID, req.ProfessionalID, req.Date, req.Time)
	if err != nil {
		h.logger.Error("failed to book appointment", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(appt)
}

// PublicBookingRequest is the request body for public telemedicine bookings
type PublicBookingRequest struct {
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Symptoms string `json:"symptoms"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// BookTelemedicine handles POST /telemedicine/appointments requests
func (h *Handler) BookTelemedicine(w http.ResponseWriter, r *http.Request) {
	var req PublicBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.Contact == "" || req.Symptoms == "" || req.Date == "" || req.Time == "" {
		http.Error(w, "name, contact, symptoms, date and time are required", http.StatusBadRequest)
		return
	}

	appt, err := h.service.BookPublic(r.Context(), req.Name, req.Contact, req.Symptoms, req.Date, req.Time)
	switch {
	case errors.Is(err, ErrSlotTaken):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case errors.Is(err, ErrInvalidSlot):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("failed to book telemedicine appointment", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(appt)
}

// ListAppointmentsResponse is the response for listing appointments
type ListAppointmentsResponse struct {
	Appointments []hospital.Appointment `json:"appointments"`
	Count        int                    `json:"count"`
}

// ListAppointments handles GET /appointments requests, time-ordered.
func (h *Handler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	appointments := h.service.List()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ListAppointmentsResponse{
		Appointments: appointments,
		Count:        len(appointments),
	})
}

// CancelAppointment handles DELETE /appointments/{id} requests
func (h *Handler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid appointment id", http.StatusBadRequest)
		return
	}

	if err := h.service.Cancel(r.Context(), id); err != nil {
		if errors.Is(err, hospital.ErrAppointmentNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		h.logger.Error("failed to cancel appointment", "id", id, "error", err)
		http.Error(w, "failed to cancel appointment", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SlotsResponse is the response for the slot catalog
type SlotsResponse struct {
	Slots          []string `json:"slots"`
	Available      []string `json:"available,omitempty"`
	ProfessionalID int64    `json:"professional_id"`
}

// ListSlots handles GET /telemedicine/slots requests. With a ?date= query it
// also reports which catalog slots are still free on that date.
func (h *Handler) ListSlots(w http.ResponseWriter, r *http.Request) {
	resp := SlotsResponse{
		Slots:          Slots,
		ProfessionalID: h.service.TelemedicineProfessionalID(),
	}
	if date := r.URL.Query().Get("date"); date != "" {
		resp.Available = h.service.Availability(date)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
