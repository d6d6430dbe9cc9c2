package telemedicine

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andressagobbi/SGHSS-VidaPlus/pkg/logging"
)

func TestStartCallEndpoint(t *testing.T) {
	mgr := NewManager(NewSimulatedDevice(), nil, logging.Default())
	handler := NewHandler(mgr, logging.Default())

	req := httptest.NewRequest(http.MethodPost, "/telemedicine/call/start", nil)
	w := httptest.NewRecorder()
	handler.StartCall(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	var session Session
	if err := json.NewDecoder(w.Body).Decode(&session); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if session.ID == "" {
		t.Error("expected a session id")
	}
}

func TestStartCallEndpointConflict(t *testing.T) {
	mgr := NewManager(NewSimulatedDevice(), nil, logging.Default())
	handler := NewHandler(mgr, logging.Default())

	req := httptest.NewRequest(http.MethodPost, "/telemedicine/call/start", nil)
	handler.StartCall(httptest.NewRecorder(), req)

	w := httptest.NewRecorder()
	handler.StartCall(w, httptest.NewRequest(http.MethodPost, "/telemedicine/call/start", nil))
	if w.Code != http.StatusConflict {
		t.Errorf("expected status %d, got %d", http.StatusConflict, w.Code)
	}
}

func TestStartCallEndpointUnavailable(t *testing.T) {
	mgr := NewManager(failingCapturer{}, nil, logging.Default())
	handler := NewHandler(mgr, logging.Default())

	w := httptest.NewRecorder()
	handler.StartCall(w, httptest.NewRequest(http.MethodPost, "/telemedicine/call/start", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, w.Code)
	}
}

func TestEndCallEndpoint(t *testing.T) {
	mgr := NewManager(NewSimulatedDevice(), nil, logging.Default())
	handler := NewHandler(mgr, logging.Default())

	handler.StartCall(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/telemedicine/call/start", nil))

	w := httptest.NewRecorder()
	handler.EndCall(w, httptest.NewRequest(http.MethodPost, "/telemedicine/call/end", nil))
	if w.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, w.Code)
	}
	if mgr.Active() != 0 {
		t.Errorf("active = %d, want 0", mgr.Active())
	}

	// Ending without an active call is still a 204.
	w = httptest.NewRecorder()
	handler.EndCall(w, httptest.NewRequest(http.MethodPost, "/telemedicine/call/end", nil))
	if w.Code != http.StatusNoContent {
		t.Errorf("expected status %d on idle end, got %d", http.StatusNoContent, w.Code)
	}
}
