package dashboard

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/andressagobbi/SGHSS-VidaPlus/internal/hospital"
	"github.com/andressagobbi/SGHSS-VidaPlus/internal/observability/metrics"
	"github.com/andressagobbi/SGHSS-VidaPlus/pkg/logging"
)

type stubGatherer struct {
	families []*dto.MetricFamily
	err      error
}

func (s stubGatherer) Gather() ([]*dto.MetricFamily, error) {
	return s.families, s.err
}

var _ prometheus.Gatherer = stubGatherer{}

type stubSessions struct {
	active int
}

func (s stubSessions) Active() int { return s.active }

func TestGetStats(t *testing.T) {
	store := hospital.NewSeeded()
	handler := NewHandler(store, stubSessions{active: 1}, stubGatherer{}, logging.Default())

	req := httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)
	w := httptest.NewRecorder()
	handler.GetStats(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp StatsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Patients != 3 {
		t.Errorf("patients = %d, want 3", resp.Patients)
	}
	if resp.BedOccupancy != "34 / 120" {
		t.Errorf("bed occupancy = %q, want %q", resp.BedOccupancy, "34 / 120")
	}
	want := RoleCounts{Doctors: 2, Nurses: 1}
	if resp.Staffing != want {
		t.Errorf("staffing = %+v, want %+v", resp.Staffing, want)
	}
	if resp.ActiveTeleSessions != 1 {
		t.Errorf("active_tele_sessions = %d, want 1", resp.ActiveTeleSessions)
	}
	if resp.NewPatientsWeek < 0 || resp.NewPatientsWeek > 5 {
		t.Errorf("new_patients_week out of range: %d", resp.NewPatientsWeek)
	}
	if resp.BookingLatency.Total != 0 {
		t.Errorf("expected empty latency snapshot, got %+v", resp.BookingLatency)
	}
}

func TestGetStatsWithRealRegistry(t *testing.T) {
	store := hospital.NewSeeded()
	reg := prometheus.NewRegistry()
	m := metrics.NewHospitalMetrics(reg)
	for i := 0; i < 10; i++ {
		m.ObserveBookingLatency("telemedicine", 0.02)
	}

	handler := NewHandler(store, nil, reg, logging.Default())

	req := httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)
	w := httptest.NewRecorder()
	handler.GetStats(w, req)

	var resp StatsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.BookingLatency.Total != 10 {
		t.Errorf("booking_latency.total = %d, want 10", resp.BookingLatency.Total)
	}
	if resp.BookingLatency.P95Ms <= 0 {
		t.Errorf("booking_latency.p95_ms = %f, want > 0", resp.BookingLatency.P95Ms)
	}
}

func TestSnapshotBookingLatencyAggregatesPaths(t *testing.T) {
	familyName := metrics.BookingLatencyMetric
	metricType := dto.MetricType_HISTOGRAM

	histogram := func(counts []uint64, uppers []float64, total uint64) *dto.Histogram {
		h := &dto.Histogram{SampleCount: ptrUint64(total)}
		for i := range counts {
			h.Bucket = append(h.Bucket, &dto.Bucket{
				UpperBound:      ptrFloat64(uppers[i]),
				CumulativeCount: ptrUint64(counts[i]),
			})
		}
		return h
	}

	uppers := []float64{0.5, 1, 2.5}
	gatherer := stubGatherer{
		families: []*dto.MetricFamily{
			{
				Name: &familyName,
				Type: &metricType,
				Metric: []*dto.Metric{
					{Histogram: histogram([]uint64{3, 5, 6}, uppers, 6)},
					{Histogram: histogram([]uint64{1, 2, 4}, uppers, 4)},
				},
			},
		},
	}

	got := snapshotBookingLatency(gatherer)
	if got.Total != 10 {
		t.Fatalf("total = %d, want 10", got.Total)
	}
	// Merged cumulative counts: 4 at 0.5s, 7 at 1s, 10 at 2.5s.
	if got.P90Ms < 1999 || got.P90Ms > 2001 {
		t.Errorf("p90_ms = %f, want ~2000", got.P90Ms)
	}
	if len(got.Buckets) != 3 {
		t.Errorf("buckets = %+v, want 3 entries", got.Buckets)
	}
}

func TestSnapshotBookingLatencyNoMetrics(t *testing.T) {
	if got := snapshotBookingLatency(stubGatherer{}); got.Total != 0 {
		t.Errorf("expected zero snapshot, got %+v", got)
	}
}

func TestCreateReport(t *testing.T) {
	store := hospital.NewSeeded()
	handler := NewHandler(store, nil, stubGatherer{}, logging.Default())

	body, _ := json.Marshal(ReportRequest{Type: "occupancy"})
	req := httptest.NewRequest(http.MethodPost, "/reports", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.CreateReport(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
	var report Report
	if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if report.Type != "occupancy" {
		t.Errorf("type = %q, want %q", report.Type, "occupancy")
	}
	if report.Counts.Patients != 3 || report.Counts.Professionals != 3 || report.Counts.BedsOccupied != 34 {
		t.Errorf("unexpected counts: %+v", report.Counts)
	}
	if _, err := time.Parse(time.RFC3339, report.Generated); err != nil {
		t.Errorf("generated timestamp not RFC3339: %q", report.Generated)
	}
}

func TestCreateReportDefaultsType(t *testing.T) {
	store := hospital.NewSeeded()
	handler := NewHandler(store, nil, stubGatherer{}, logging.Default())

	req := httptest.NewRequest(http.MethodPost, "/reports", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()
	handler.CreateReport(w, req)

	var report Report
	if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if report.Type != "general" {
		t.Errorf("type = %q, want %q", report.Type, "general")
	}
}

func ptrUint64(v uint64) *uint64    { return &v }
func ptrFloat64(v float64) *float64 { return &v }
