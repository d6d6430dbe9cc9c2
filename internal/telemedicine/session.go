package telemedicine

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/andressagobbi/SGHSS-VidaPlus/internal/observability/metrics"
	"github.com/andressagobbi/SGHSS-VidaPlus/pkg/logging"
)

// ErrCallInProgress signals that a call session is already active. The
// capture device is a singleton, so at most one call runs at a time.
var ErrCallInProgress = errors.New("telemedicine: call already in progress")

// Session is an active telemedicine call.
type Session struct {
	ID string `json:"session_id"`
}

// Manager owns the single call session and its media stream. The stream is
// always released when the session ends, so repeated start/end cycles never
// leak a device handle.
type Manager struct {
	capturer Capturer
	metrics  *metrics.HospitalMetrics
	logger   *logging.Logger

	mu      sync.Mutex
	current *Session
	stream  Stream
}

// NewManager creates a call-session manager.
func NewManager(capturer Capturer, m *metrics.HospitalMetrics, logger *logging.Logger) *Manager {
	if capturer == nil {
		panic("telemedicine: capturer required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Manager{capturer: capturer, metrics: m, logger: logger}
}

// StartCall acquires the media devices and opens a session.
func (m *Manager) StartCall(ctx context.Context) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		return nil, ErrCallInProgress
	}

	stream, err := m.capturer.Acquire(ctx)
	if err != nil {
		m.logger.Warn("media capture failed", "error", err)
		return nil, ErrCaptureUnavailable
	}

	m.current = &Session{ID: "sess-" + uuid.NewString()[:8]}
	m.stream = stream
	m.metrics.SetActiveTeleSessions(1)
	m.logger.Info("telemedicine call started", "session_id", m.current.ID)

	out := *m.current
	return &out, nil
}

// EndCall releases the media stream and closes the session. Ending when no
// call is active is a no-op.
func (m *Manager) EndCall() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return
	}

	m.stream.Release()
	m.logger.Info("telemedicine call ended", "session_id", m.current.ID)
	m.current = nil
	m.stream = nil
	m.metrics.SetActiveTeleSessions(0)
}

// Active reports how many call sessions are running (0 or 1).
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return 0
	}
	return 1
}
