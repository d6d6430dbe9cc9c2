package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/andressagobbi/SGHSS-VidaPlus/internal/hospital"
	"github.com/andressagobbi/SGHSS-VidaPlus/internal/observability/metrics"
	"github.com/andressagobbi/SGHSS-VidaPlus/pkg/logging"
)

// persistedState is the wire layout of the snapshot slot: one JSON object
// with three optional collections. A nil slice decodes from an absent field
// and means "keep defaults"; a present field, even an empty array, replaces.
type persistedState struct {
	Appointments  []hospital.Appointment  `json:"appointments"`
	Professionals []hospital.Professional `json:"professionals"`
	Patients      []hospital.Patient      `json:"patients"`
}

// Adapter persists the mutable store collections as a single JSON blob under
// one named key. Both directions are best effort: failures are logged and
// counted, never propagated, and the in-memory store stays the source of
// truth for the running session.
type Adapter struct {
	client  *redis.Client
	key     string
	logger  *logging.Logger
	metrics *metrics.HospitalMetrics
}

// New creates a snapshot adapter bound to one storage key.
func New(client *redis.Client, key string, logger *logging.Logger, m *metrics.HospitalMetrics) *Adapter {
	if client == nil {
		panic("persistence: redis client required")
	}
	if key == "" {
		panic("persistence: storage key required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Adapter{client: client, key: key, logger: logger, metrics: m}
}

// Load reads the slot and applies whatever collections it carries over the
// store's current contents. A missing key, unreachable storage or malformed
// payload leaves the store untouched so startup always succeeds on defaults.
func (a *Adapter) Load(ctx context.Context, store *hospital.Store) {
	raw, err := a.client.Get(ctx, a.key).Bytes()
	if errors.Is(err, redis.Nil) {
		a.logger.Info("no persisted state, starting from defaults", "key", a.key)
		return
	}
	if err != nil {
		a.metrics.ObservePersistenceFailure("load")
		a.logger.Warn("failed to read persisted state, keeping defaults", "key", a.key, "error", err)
		return
	}

	var state persistedState
	if err := json.Unmarshal(raw, &state); err != nil {
		a.metrics.ObservePersistenceFailure("load")
		a.logger.Warn("persisted state is malformed, keeping defaults", "key", a.key, "error", err)
		return
	}

	store.Restore(hospital.Snapshot{
		Patients:      state.Patients,
		Professionals: state.Professionals,
		Appointments:  state.Appointments,
	})
	a.logger.Info("persisted state restored",
		"key", a.key,
		"patients", len(state.Patients),
		"professionals", len(state.Professionals),
		"appointments", len(state.Appointments),
	)
}

// Save overwrites the slot with the store's current collections. Called after
// every mutation and once more on shutdown; a failed write is dropped.
func (a *Adapter) Save(ctx context.Context, store *hospital.Store) {
	snap := store.Snapshot()
	state := persistedState{
		Appointments:  snap.Appointments,
		Professionals: snap.Professionals,
		Patients:      snap.Patients,
	}

	data, err := json.Marshal(state)
	if err != nil {
		a.metrics.ObservePersistenceFailure("save")
		a.logger.Warn("failed to encode snapshot", "key", a.key, "error", err)
		return
	}

	if err := a.client.Set(ctx, a.key, data, 0).Err(); err != nil {
		a.metrics.ObservePersistenceFailure("save")
		a.logger.Warn("failed to persist snapshot, in-memory state remains authoritative", "key", a.key, "error", err)
	}
}
