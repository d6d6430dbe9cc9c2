package scheduling

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/andressagobbi/SGHSS-VidaPlus/internal/hospital"
	"github.com/andressagobbi/SGHSS-VidaPlus/internal/observability/metrics"
	"github.com/andressagobbi/SGHSS-VidaPlus/pkg/logging"
)

var schedulingTracer = otel.Tracer("sghss.internal.scheduling")

// Persister is the write-through hook invoked after every successful mutation.
type Persister interface {
	Save(ctx context.Context, store *hospital.Store)
}

// Service books and cancels appointments against the domain store.
type Service struct {
	store   *hospital.Store
	persist Persister
	metrics *metrics.HospitalMetrics
	logger  *logging.Logger

	// telemedProfessionalID is the professional public bookings schedule
	// against; configurable because id 3 is only a seeded convention.
	telemedProfessionalID int64
}

// NewService constructs a scheduling service.
func NewService(store *hospital.Store, persist Persister, m *metrics.HospitalMetrics, logger *logging.Logger, telemedProfessionalID int64) *Service {
	if store == nil {
		panic("scheduling: store required")
	}
	if persist == nil {
		panic("scheduling: persister required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		store:                 store,
		persist:               persist,
		metrics:               m,
		logger:                logger,
		telemedProfessionalID: telemedProfessionalID,
	}
}

// TelemedicineProfessionalID returns the professional that public bookings
// are scheduled against.
func (s *Service) TelemedicineProfessionalID() int64 {
	return s.telemedProfessionalID
}

// BookInternal books the quick-schedule path used by staff for registered
// patients. It intentionally performs no slot-conflict check and may
// double-book; only the public path enforces the slot invariant.
func (s *Service) BookInternal(ctx context.Context, patientID, professionalID int64, date, timeOfDay string) (*hospital.Appointment, error) {
	ctx, span := schedulingTracer.Start(ctx, "scheduling.book_internal")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("sghss.patient_id", patientID),
		attribute.Int64("sghss.professional_id", professionalID),
	)
	start := time.Now()

	appt, err := s.store.AddAppointment(hospital.Appointment{
		Patient:        hospital.PatientRef{PatientID: patientID},
		ProfessionalID: professionalID,
		Date:           date,
		Time:           timeOfDay,
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.persist.Save(ctx, s.store)
	s.metrics.ObserveBooking("internal")
	s.metrics.ObserveBookingLatency("internal", time.Since(start).Seconds())
	s.logger.Info("appointment booked", "id", appt.ID, "path", "internal", "date", date, "time", timeOfDay, "professional_id", professionalID)
	return appt, nil
}

// BookPublic books the public telemedicine path for callers without a patient
// record. The time must come from the slot catalog and the slot must still be
// free for the telemedicine professional.
func (s *Service) BookPublic(ctx context.Context, name, contact, symptoms, date, timeOfDay string) (*hospital.Appointment, error) {
	ctx, span := schedulingTracer.Start(ctx, "scheduling.book_public")
	defer span.End()
	span.SetAttributes(attribute.Int64("sghss.professional_id", s.telemedProfessionalID))
	start := time.Now()

	if !ValidSlot(timeOfDay) {
		span.RecordError(ErrInvalidSlot)
		return nil, ErrInvalidSlot
	}
	if SlotTaken(s.store.ListAppointments(), date, timeOfDay, s.telemedProfessionalID) {
		s.metrics.ObserveSlotConflict()
		s.logger.Info("public booking rejected, slot taken", "date", date, "time", timeOfDay, "professional_id", s.telemedProfessionalID)
		span.RecordError(ErrSlotTaken)
		return nil, ErrSlotTaken
	}

	appt, err := s.store.AddAppointment(hospital.Appointment{
		Patient:        hospital.PatientRef{Name: name, Contact: contact},
		ProfessionalID: s.telemedProfessionalID,
		Date:           date,
		Time:           timeOfDay,
		Symptoms:       symptoms,
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.persist.Save(ctx, s.store)
	s.metrics.ObserveBooking("telemedicine")
	s.metrics.ObserveBookingLatency("telemedicine", time.Since(start).Seconds())
	s.logger.Info("appointment booked", "id", appt.ID, "path", "telemedicine", "date", date, "time", timeOfDay)
	return appt, nil
}

// Cancel removes an appointment by id.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	ctx, span := schedulingTracer.Start(ctx, "scheduling.cancel")
	defer span.End()
	span.SetAttributes(attribute.Int64("sghss.appointment_id", id))

	if err := s.store.RemoveAppointment(id); err != nil {
		span.RecordError(err)
		return err
	}

	s.persist.Save(ctx, s.store)
	s.metrics.ObserveCancellation()
	s.logger.Info("appointment cancelled", "id", id)
	return nil
}

// List returns all appointments in chronological (date, time) order.
func (s *Service) List() []hospital.Appointment {
	return Ordered(s.store.ListAppointments())
}

// Availability returns the free catalog slots for the telemedicine
// professional on a date.
func (s *Service) Availability(date string) []string {
	return FreeSlots(s.store.ListAppointments(), date, s.telemedProfessionalID)
}
