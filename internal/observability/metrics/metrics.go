package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingLatencyMetric is the fully-qualified histogram name the dashboard
// reads back from the registry.
const BookingLatencyMetric = "sghss_scheduling_booking_latency_seconds"

// HospitalMetrics exposes counters/gauges/histograms for the scheduling,
// persistence and telemedicine flows.
type HospitalMetrics struct {
	bookingsTotal       *prometheus.CounterVec
	cancellationsTotal  prometheus.Counter
	slotConflictsTotal  prometheus.Counter
	persistenceFailures *prometheus.CounterVec
	bookingLatency      *prometheus.HistogramVec
	activeTeleSessions  prometheus.Gauge
}

func NewHospitalMetrics(reg prometheus.Registerer) *HospitalMetrics {
	m := &HospitalMetrics{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sghss",
			Subsystem: "scheduling",
			Name:      "bookings_total",
			Help:      "Total appointments booked",
		}, []string{"path"}),
		cancellationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sghss",
			Subsystem: "scheduling",
			Name:      "cancellations_total",
			Help:      "Total appointments cancelled",
		}),
		slotConflictsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sghss",
			Subsystem: "scheduling",
			Name:      "slot_conflicts_total",
			Help:      "Public bookings rejected because the slot was taken",
		}),
		persistenceFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sghss",
			Subsystem: "persistence",
			Name:      "failures_total",
			Help:      "Best-effort snapshot operations that failed",
		}, []string{"op"}),
		bookingLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sghss",
			Subsystem: "scheduling",
			Name:      "booking_latency_seconds",
			Help:      "Latency of booking operations",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),
		activeTeleSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sghss",
			Subsystem: "telemedicine",
			Name:      "active_sessions",
			Help:      "Telemedicine call sessions currently active",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.bookingsTotal,
		m.cancellationsTotal,
		m.slotConflictsTotal,
		m.persistenceFailures,
		m.bookingLatency,
		m.activeTeleSessions,
	)
	return m
}

func (m *HospitalMetrics) ObserveBooking(path string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(path).Inc()
}

func (m *HospitalMetrics) ObserveCancellation() {
	if m == nil {
		return
	}
	m.cancellationsTotal.Inc()
}

func (m *HospitalMetrics) ObserveSlotConflict() {
	if m == nil {
		return
	}
	m.slotConflictsTotal.Inc()
}

func (m *HospitalMetrics) ObservePersistenceFailure(op string) {
	if m == nil {
		return
	}
	m.persistenceFailures.WithLabelValues(op).Inc()
}

func (m *HospitalMetrics) ObserveBookingLatency(path string, seconds float64) {
	if m == nil {
		return
	}
	m.bookingLatency.WithLabelValues(path).Observe(seconds)
}

func (m *HospitalMetrics) SetActiveTeleSessions(n int) {
	if m == nil {
		return
	}
	m.activeTeleSessions.Set(float64(n))
}
