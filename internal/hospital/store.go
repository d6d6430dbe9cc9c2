package hospital

import (
	"strings"
	"sync"
	"time"
)

// Store owns the patient, professional and appointment collections plus the
// static bed/supply counters. It is the only writer of domain state; callers
// trigger persistence and re-rendering after mutations. All methods are safe
// for concurrent use.
type Store struct {
	mu            sync.RWMutex
	patients      []Patient
	professionals []Professional
	appointments  []Appointment
	beds          BedStats
	supplies      SupplyStats
	lastID        int64
}

// New creates an empty store with zeroed counters.
func New() *Store {
	return &Store{}
}

// nextID assigns a fresh id. Ids are derived from wall-clock milliseconds,
// bumped past the highest id ever seen so rapid calls and restored snapshots
// never collide.
func (s *Store) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// AddPatient registers a patient. The last-visit date is set to today and a
// non-empty notes text becomes the first clinical-history entry.
func (s *Store) AddPatient(name string, age int, contact, notes string) (*Patient, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if age < 0 {
		return nil, ErrInvalidAge
	}

	history := []string{}
	if strings.TrimSpace(notes) != "" {
		history = append(history, notes)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := Patient{
		ID:        s.nextID(),
		Name:      name,
		Age:       age,
		Contact:   contact,
		LastVisit: time.Now().UTC().Format("2006-01-02"),
		History:   history,
	}
	s.patients = append(s.patients, p)

	out := clonePatient(p)
	return &out, nil
}

// FindPatient returns the patient with the given id.
func (s *Store) FindPatient(id int64) (*Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.patients {
		if p.ID == id {
			out := clonePatient(p)
			return &out, nil
		}
	}
	return nil, ErrPatientNotFound
}

// ListPatients returns all patients in registration order.
func (s *Store) ListPatients() []Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePatients(s.patients)
}

// SearchPatients returns patients whose name (case-insensitive) or contact
// contains the query. An empty query matches everyone.
func (s *Store) SearchPatients(query string) []Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lower := strings.ToLower(query)
	out := make([]Patient, 0, len(s.patients))
	for _, p := range s.patients {
		if strings.Contains(strings.ToLower(p.Name), lower) || strings.Contains(p.Contact, query) {
			out = append(out, clonePatient(p))
		}
	}
	return out
}

// AppendHistory adds a clinical note to a patient's history.
func (s *Store) AppendHistory(patientID int64, note string) (*Patient, error) {
	if strings.TrimSpace(note) == "" {
		return nil, ErrInvalidNote
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.patients {
		if s.patients[i].ID == patientID {
			s.patients[i].History = append(s.patients[i].History, note)
			out := clonePatient(s.patients[i])
			return &out, nil
		}
	}
	return nil, ErrPatientNotFound
}

// AddProfessional registers a staff member. Name and role are required.
func (s *Store) AddProfessional(name, role, specialty, contact string) (*Professional, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(role) == "" {
		return nil, ErrRoleRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := Professional{
		ID:        s.nextID(),
		Name:      name,
		Role:      role,
		Specialty: specialty,
		Contact:   contact,
	}
	s.professionals = append(s.professionals, p)
	out := p
	return &out, nil
}

// FindProfessional returns the professional with the given id.
func (s *Store) FindProfessional(id int64) (*Professional, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.professionals {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, ErrProfessionalNotFound
}

// ListProfessionals returns all staff in registration order.
func (s *Store) ListProfessionals() []Professional {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Professional, len(s.professionals))
	copy(out, s.professionals)
	return out
}

// UpdateProfessional edits a staff member in place.
func (s *Store) UpdateProfessional(id int64, upd ProfessionalUpdate) (*Professional, error) {
	if strings.TrimSpace(upd.Name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(upd.Role) == "" {
		return nil, ErrRoleRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.professionals {
		if s.professionals[i].ID == id {
			s.professionals[i].Name = upd.Name
			s.professionals[i].Role = upd.Role
			s.professionals[i].Specialty = upd.Specialty
			s.professionals[i].Contact = upd.Contact
			out := s.professionals[i]
			return &out, nil
		}
	}
	return nil, ErrProfessionalNotFound
}

// RemoveProfessional deletes a staff member by id. A missing id is signalled
// distinctly and leaves the collection untouched.
func (s *Store) RemoveProfessional(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.professionals {
		if s.professionals[i].ID == id {
			s.professionals = append(s.professionals[:i], s.professionals[i+1:]...)
			return nil
		}
	}
	return ErrProfessionalNotFound
}

// AddAppointment books an appointment, assigning a fresh id. Slot-conflict
// checking is the caller's concern; the store accepts any valid record.
func (s *Store) AddAppointment(appt Appointment) (*Appointment, error) {
	if !appt.Patient.Valid() || appt.ProfessionalID == 0 || appt.Date == "" || appt.Time == "" {
		return nil, ErrInvalidAppointment
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	appt.ID = s.nextID()
	s.appointments = append(s.appointments, appt)
	out := appt
	return &out, nil
}

// ListAppointments returns all appointments in booking order.
func (s *Store) ListAppointments() []Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

// RemoveAppointment cancels an appointment by id. A missing id is signalled
// distinctly and leaves the collection untouched.
func (s *Store) RemoveAppointment(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
			return nil
		}
	}
	return ErrAppointmentNotFound
}

// Beds returns the bed occupancy counter.
func (s *Store) Beds() BedStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.beds
}

// Supplies returns the critical-supply counter.
func (s *Store) Supplies() SupplyStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.supplies
}

// Snapshot returns a deep copy of the whole store state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Patients:      clonePatients(s.patients),
		Professionals: make([]Professional, len(s.professionals)),
		Appointments:  make([]Appointment, len(s.appointments)),
		Beds:          s.beds,
		Supplies:      s.supplies,
	}
	copy(snap.Professionals, s.professionals)
	copy(snap.Appointments, s.appointments)
	return snap
}

// Restore replaces collections from a snapshot. Nil fields keep the current
// contents so a partial snapshot only overwrites what it carries; non-nil
// empty slices do replace. Counters are never restored. The id watermark is
// re-derived so future ids cannot collide with restored ones.
func (s *Store) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snap.Patients != nil {
		s.patients = clonePatients(snap.Patients)
	}
	if snap.Professionals != nil {
		s.professionals = make([]Professional, len(snap.Professionals))
		copy(s.professionals, snap.Professionals)
	}
	if snap.Appointments != nil {
		s.appointments = make([]Appointment, len(snap.Appointments))
		copy(s.appointments, snap.Appointments)
	}

	for _, p := range s.patients {
		if p.ID > s.lastID {
			s.lastID = p.ID
		}
	}
	for _, p := range s.professionals {
		if p.ID > s.lastID {
			s.lastID = p.ID
		}
	}
	for _, a := range s.appointments {
		if a.ID > s.lastID {
			s.lastID = a.ID
		}
	}
}

func clonePatient(p Patient) Patient {
	out := p
	out.History = make([]string, len(p.History))
	copy(out.History, p.History)
	return out
}

func clonePatients(in []Patient) []Patient {
	out := make([]Patient, len(in))
	for i, p := range in {
		out[i] = clonePatient(p)
	}
	return out
}
