package dashboard

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andressagobbi/SGHSS-VidaPlus/internal/hospital"
	"github.com/andressagobbi/SGHSS-VidaPlus/pkg/logging"
)

// SessionCounter reports active telemedicine calls for the overview panel.
type SessionCounter interface {
	Active() int
}

// Handler serves the operational overview and on-demand reports.
type Handler struct {
	store    *hospital.Store
	sessions SessionCounter
	gatherer prometheus.Gatherer
	logger   *logging.Logger
}

// NewHandler creates a new dashboard handler. sessions may be nil when
// telemedicine is disabled.
func NewHandler(store *hospital.Store, sessions SessionCounter, gatherer prometheus.Gatherer, logger *logging.Logger) *Handler {
	if store == nil {
		panic("dashboard: store required")
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{store: store, sessions: sessions, gatherer: gatherer, logger: logger}
}

// StatsResponse is the overview panel payload.
type StatsResponse struct {
	Stats
	// Placeholder figures without a data source yet; refreshed per request.
	NewPatientsWeek    int     `json:"new_patients_week"`
	BedReservations    int     `json:"bed_reservations"`
	MonthlyRevenueBRL  float64 `json:"monthly_revenue_brl"`
	ActiveTeleSessions int     `json:"active_tele_sessions"`

	BookingLatency BookingLatencySnapshot `json:"booking_latency"`
}

// GetStats handles GET /dashboard/stats requests
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	resp := StatsResponse{
		Stats:             Aggregate(h.store.Snapshot()),
		NewPatientsWeek:   rand.Intn(6),
		BedReservations:   rand.Intn(12),
		MonthlyRevenueBRL: float64(rand.Intn(500000)) / 100.0,
		BookingLatency:    snapshotBookingLatency(h.gatherer),
	}
	if h.sessions != nil {
		resp.ActiveTeleSessions = h.sessions.Active()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// ReportRequest is the request body for generating a report
type ReportRequest struct {
	Type string `json:"type"`
}

// ReportCounts are the collection sizes captured in a report.
type ReportCounts struct {
	Patients      int `json:"patients"`
	Professionals int `json:"professionals"`
	Appointments  int `json:"appointments"`
	BedsOccupied  int `json:"beds_occupied"`
}

// Report is a point-in-time census of the store.
type Report struct {
	Type      string       `json:"type"`
	Generated string       `json:"generated"`
	Counts    ReportCounts `json:"counts"`
}

// CreateReport handles POST /reports requests
func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Type == "" {
		req.Type = "general"
	}

	snap := h.store.Snapshot()
	report := Report{
		Type:      req.Type,
		Generated: time.Now().UTC().Format(time.RFC3339),
		Counts: ReportCounts{
			Patients:      len(snap.Patients),
			Professionals: len(snap.Professionals),
			Appointments:  len(snap.Appointments),
			BedsOccupied:  snap.Beds.Occupied,
		},
	}
	h.logger.Info("report generated", "type", report.Type)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(report)
}
