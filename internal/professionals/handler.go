package professionals

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

// Handler handles HTTP requests for the staff roster
type Handler struct {
	store   *hospital.Store
	persist Persister
	logger  *logging.Logger
}

// NewHandler creates a new professionals handler
func NewHandler(store *hospital.Store, persist Persister, logger *logging.Logger) *Handler {
	if store == nil {
		panic("professionals: store required")
	}
	if persist == nil {
		panic("professionals: persister required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{store: store, persist: persist, logger: logger}
}

// CreateProfessionalRequest is the request body for registering a staff member
type CreateProfessionalRequest struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	Specialty string `json:"specialty"`
	Contact   string `json:"contact"`
}

// CreateProfessional handles POST /professionals requests
func (h *Handler) CreateProfessional(w http.ResponseWriter, r *http.Request) {
	var req CreateProfessionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	prof, err := h.store.AddProfessional(req.Name, req.Role, req.Specialty, req.Contact)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.persist.Save(r.Context(), h.store)
	h.logger.Info("professional registered", "id", prof.ID, "role", prof.Role)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(prof)
}

// ListProfessionalsResponse is the response for listing the roster
type ListProfessionalsResponse struct {
	Professionals []hospital.Professional `json:"professionals"`
	Count         int                     `json:"count"`
}

// ListProfessionals handles GET /professionals requests
func (h *Handler) ListProfessionals(w http.ResponseWriter, r *http.Request) {
	professionals := h.store.ListProfessionals()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ListProfessionalsResponse{
		Professionals: professionals,
		Count:         len(professionals),
	})
}

// UpdateProfessional handles PUT /professionals/{id} requests
func (h *Handler) UpdateProfessional(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid professional id", http.StatusBadRequest)
		return
	}

	var upd hospital.ProfessionalUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	prof, err := h.store.UpdateProfessional(id, upd)
	switch {
	case errors.Is(err, hospital.ErrProfessionalNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.persist.Save(r.Context(), h.store)
	h.logger.Info("professional updated", "id", id)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(prof)
}

// DeleteProfessional handles DELETE /professionals/{id} requests
func (h *Handler) DeleteProfessional(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid professional id", http.StatusBadRequest)
		return
	}

	if err := h.store.RemoveProfessional(id); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	h.persist.Save(r.Context(), h.store)
	h.logger.Info("professional removed", "id", id)

	w.WriteHeader(http.StatusNoContent)
}
