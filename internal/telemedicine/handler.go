package telemedicine

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andressagobbi/SGHSS-VidaPlus/pkg/logging"
)

// Handler handles HTTP requests for telemedicine call sessions
type Handler struct {
	manager *Manager
	logger  *logging.Logger
}

// NewHandler creates a new telemedicine handler
func NewHandler(manager *Manager, logger *logging.Logger) *Handler {
	if manager == nil {
		panic("telemedicine: manager required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{manager: manager, logger: logger}
}

// StartCall handles POST /telemedicine/call/start requests
func (h *Handler) StartCall(w http.ResponseWriter, r *http.Request) {
	session, err := h.manager.StartCall(r.Context())
	switch {
	case errors.Is(err, ErrCallInProgress):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case errors.Is(err, ErrCaptureUnavailable):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	case err != nil:
		h.logger.Error("failed to start call", "error", err)
		http.Error(w, "failed to start call", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session)
}

// EndCall handles POST /telemedicine/call/end requests
func (h *Handler) EndCall(w http.ResponseWriter, r *http.Request) {
	h.manager.EndCall()
	w.WriteHeader(http.StatusNoContent)
}
