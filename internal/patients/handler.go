package patients

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/andressagobbi/SGHSS-VidaPlus/internal/hospital"
	"github.com/andressagobbi/SGHSS-VidaPlus/pkg/logging"
)

// Persister is the write-through hook invoked after every successful mutation.
type Persister interface {
	Save(ctx context.Context, store *hospital.Store)
}

// Handler handles HTTP requests for patient records
type Handler struct {
	store   *hospital.Store
	persist Persister
	logger  *logging.Logger
}

// NewHandler creates a new patients handler
func NewHandler(store *hospital.Store, persist Persister, logger *logging.Logger) *Handler {
	if store == nil {
		panic("patients: store required")
	}
	if persist == nil {
		panic("patients: persister required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{store: store, persist: persist, logger: logger}
}

// CreatePatientRequest is the request body for registering a patient
type CreatePatientRequest struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Contact string `json:"contact"`
	Notes   string `json:"notes"`
}

// CreatePatient handles POST /patients requests
func (h *Handler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	patient, err := h.store.AddPatient(req.Name, req.Age, req.Contact, req.Notes)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.persist.Save(r.Context(), h.store)
	h.logger.Info("patient registered", "id", patient.ID, "name", patient.Name)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(patient)
}

// ListPatientsResponse is the response for listing patients
type ListPatientsResponse struct {
	Patients []hospital.Patient `json:"patients"`
	Count    int                `json:"count"`
}

// ListPatients handles GET /patients requests. An optional ?q= query filters
// by name or contact.
func (h *Handler) ListPatients(w http.ResponseWriter, r *http.Request) {
	var patients []hospital.Patient
	if q := r.URL.Query().Get("q"); q != "" {
		patients = h.store.SearchPatients(q)
	} else {
		patients = h.store.ListPatients()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ListPatientsResponse{
		Patients: patients,
		Count:    len(patients),
	})
}

// GetPatient handles GET /patients/{id} requests
func (h *Handler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid patient id", http.StatusBadRequest)
		return
	}

	patient, err := h.store.FindPatient(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(patient)
}

// AddHistoryRequest is the request body for appending a clinical note
type AddHistoryRequest struct {
	Note string `json:"note"`
}

// AddHistory handles POST /patients/{id}/history requests
func (h *Handler) AddHistory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid patient id", http.StatusBadRequest)
		return
	}

	var req AddHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	patient, err := h.store.AppendHistory(id, req.Note)
	switch {
	case errors.Is(err, hospital.ErrPatientNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.persist.Save(r.Context(), h.store)
	h.logger.Info("history appended", "patient_id", id)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(patient)
}
