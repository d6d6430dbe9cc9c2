package hospital

import (
	"errors"
	"reflect"
	"testing"
)

func TestAddPatientAssignsUniqueIDs(t *testing.T) {
	s := NewSeeded()

	seen := map[int64]bool{}
	for _, p := range s.ListPatients() {
		seen[p.ID] = true
	}

	for i := 0; i < 50; i++ {
		p, err := s.AddPatient("Paciente Teste", 30, "", "")
		if err != nil {
			t.Fatalf("AddPatient: %v", err)
		}
		if seen[p.ID] {
			t.Fatalf("id %d assigned twice", p.ID)
		}
		seen[p.ID] = true

		found, err := s.FindPatient(p.ID)
		if err != nil {
			t.Fatalf("patient %d not findable after creation: %v", p.ID, err)
		}
		if found.Name != "Paciente Teste" {
			t.Errorf("expected name to round-trip, got %q", found.Name)
		}
	}
}

func TestAddPatientScenario(t *testing.T) {
	s := NewSeeded()
	if got := len(s.ListPatients()); got != 3 {
		t.Fatalf("expected 3 seeded patients, got %d", got)
	}

	p, err := s.AddPatient("Teresa Alves", 51, "(48) 99000-0000", "")
	if err != nil {
		t.Fatalf("AddPatient: %v", err)
	}

	if got := len(s.ListPatients()); got != 4 {
		t.Errorf("expected 4 patients, got %d", got)
	}
	if len(p.History) != 0 {
		t.Errorf("expected empty history, got %v", p.History)
	}
	if p.LastVisit == "" {
		t.Error("expected last-visit date to be set")
	}
}

func TestAddPatientWrapsNotes(t *testing.T) {
	s := New()
	p, err := s.AddPatient("João Silva", 42, "", "Hipertensão")
	if err != nil {
		t.Fatalf("AddPatient: %v", err)
	}
	if !reflect.DeepEqual(p.History, []string{"Hipertensão"}) {
		t.Errorf("expected single-note history, got %v", p.History)
	}
}

func TestAddPatientValidation(t *testing.T) {
	s := New()

	if _, err := s.AddPatient("  ", 30, "", ""); !errors.Is(err, ErrNameRequired) {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
	if _, err := s.AddPatient("Ana", -1, "", ""); !errors.Is(err, ErrInvalidAge) {
		t.Errorf("expected ErrInvalidAge, got %v", err)
	}
	if got := len(s.ListPatients()); got != 0 {
		t.Errorf("failed validation must not mutate state, got %d patients", got)
	}
}

func TestSearchPatients(t *testing.T) {
	s := NewSeeded()

	byName := s.SearchPatients("mariana")
	if len(byName) != 1 || byName[0].Name != "Mariana Costa" {
		t.Errorf("expected Mariana Costa, got %v", byName)
	}

	byContact := s.SearchPatients("98811")
	if len(byContact) != 1 || byContact[0].Name != "Carlos Souza" {
		t.Errorf("expected Carlos Souza, got %v", byContact)
	}

	if got := len(s.SearchPatients("")); got != 3 {
		t.Errorf("empty query should match everyone, got %d", got)
	}
}

func TestAppendHistory(t *testing.T) {
	s := NewSeeded()

	p, err := s.AppendHistory(1, "Retorno em 30 dias")
	if err != nil {
		t.Fatalf("AppendHistory: %v", err)
	}
	if !reflect.DeepEqual(p.History, []string{"Hipertensão", "Retorno em 30 dias"}) {
		t.Errorf("unexpected history: %v", p.History)
	}

	if _, err := s.AppendHistory(999, "nota"); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("expected ErrPatientNotFound, got %v", err)
	}
	if _, err := s.AppendHistory(1, "  "); !errors.Is(err, ErrInvalidNote) {
		t.Errorf("expected ErrInvalidNote, got %v", err)
	}
}

func TestRemoveProfessionalNotFound(t *testing.T) {
	s := NewSeeded()
	before := s.ListProfessionals()

	err := s.RemoveProfessional(12345)
	if !errors.Is(err, ErrProfessionalNotFound) {
		t.Fatalf("expected ErrProfessionalNotFound, got %v", err)
	}
	if !reflect.DeepEqual(before, s.ListProfessionals()) {
		t.Error("collection changed on failed removal")
	}
}

func TestRemoveProfessionalExisting(t *testing.T) {
	s := NewSeeded()
	before := len(s.ListProfessionals())

	if err := s.RemoveProfessional(2); err != nil {
		t.Fatalf("RemoveProfessional: %v", err)
	}
	if got := len(s.ListProfessionals()); got != before-1 {
		t.Errorf("expected %d professionals, got %d", before-1, got)
	}
	if _, err := s.FindProfessional(2); !errors.Is(err, ErrProfessionalNotFound) {
		t.Errorf("removed id still findable: %v", err)
	}
}

func TestUpdateProfessional(t *testing.T) {
	s := NewSeeded()

	upd := ProfessionalUpdate{Name: "Dra. Ana Pereira", Role: "Médica", Specialty: "Cardiologia Pediátrica", Contact: "(48) 3222-0000"}
	p, err := s.UpdateProfessional(1, upd)
	if err != nil {
		t.Fatalf("UpdateProfessional: %v", err)
	}
	if p.Specialty != "Cardiologia Pediátrica" || p.Contact != "(48) 3222-0000" {
		t.Errorf("update not applied: %+v", p)
	}

	if _, err := s.UpdateProfessional(999, upd); !errors.Is(err, ErrProfessionalNotFound) {
		t.Errorf("expected ErrProfessionalNotFound, got %v", err)
	}
	if _, err := s.UpdateProfessional(1, ProfessionalUpdate{Name: "X"}); !errors.Is(err, ErrRoleRequired) {
		t.Errorf("expected ErrRoleRequired, got %v", err)
	}
}

func TestAddAndRemoveAppointment(t *testing.T) {
	s := NewSeeded()

	appt, err := s.AddAppointment(Appointment{
		Patient:        PatientRef{PatientID: 1},
		ProfessionalID: 2,
		Date:           "2025-12-05",
		Time:           "10:00",
	})
	if err != nil {
		t.Fatalf("AddAppointment: %v", err)
	}
	if appt.ID == 0 {
		t.Error("expected assigned id")
	}

	if err := s.RemoveAppointment(appt.ID); err != nil {
		t.Fatalf("RemoveAppointment: %v", err)
	}
	if err := s.RemoveAppointment(appt.ID); !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestAddAppointmentValidation(t *testing.T) {
	s := New()

	cases := []struct {
		name string
		appt Appointment
	}{
		{"missing patient ref", Appointment{ProfessionalID: 1, Date: "2025-12-01", Time: "09:00"}},
		{"both ref variants", Appointment{Patient: PatientRef{PatientID: 1, Name: "X"}, ProfessionalID: 1, Date: "2025-12-01", Time: "09:00"}},
		{"missing professional", Appointment{Patient: PatientRef{PatientID: 1}, Date: "2025-12-01", Time: "09:00"}},
		{"missing date", Appointment{Patient: PatientRef{PatientID: 1}, ProfessionalID: 1, Time: "09:00"}},
		{"missing time", Appointment{Patient: PatientRef{PatientID: 1}, ProfessionalID: 1, Date: "2025-12-01"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.AddAppointment(tc.appt); !errors.Is(err, ErrInvalidAppointment) {
				t.Errorf("expected ErrInvalidAppointment, got %v", err)
			}
		})
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := NewSeeded()
	snap := s.Snapshot()

	snap.Patients[0].History[0] = "mutated"
	snap.Professionals[0].Name = "mutated"

	p, _ := s.FindPatient(1)
	if p.History[0] != "Hipertensão" {
		t.Error("snapshot shares history backing array with store")
	}
	if s.ListProfessionals()[0].Name != "Dr. Ana Pereira" {
		t.Error("snapshot shares professional slice with store")
	}
}

func TestRestoreAppliesOnlyPresentFields(t *testing.T) {
	s := NewSeeded()

	s.Restore(Snapshot{
		Appointments: []Appointment{
			{ID: 100, Patient: PatientRef{Name: "Ana"}, ProfessionalID: 3, Date: "2025-12-01", Time: "09:00"},
		},
	})

	if got := len(s.ListAppointments()); got != 1 {
		t.Errorf("expected restored appointment, got %d", got)
	}
	if got := len(s.ListPatients()); got != 3 {
		t.Errorf("nil patients field must keep defaults, got %d", got)
	}

	// A present-but-empty collection replaces.
	s.Restore(Snapshot{Appointments: []Appointment{}})
	if got := len(s.ListAppointments()); got != 0 {
		t.Errorf("empty slice must replace, got %d", got)
	}
}

func TestRestoreBumpsIDWatermark(t *testing.T) {
	s := New()
	high := int64(9999999999999) // far beyond current wall clock millis

	s.Restore(Snapshot{Patients: []Patient{{ID: high, Name: "X", History: []string{}}}})

	p, err := s.AddPatient("Nova Paciente", 20, "", "")
	if err != nil {
		t.Fatalf("AddPatient: %v", err)
	}
	if p.ID <= high {
		t.Errorf("expected fresh id above restored watermark %d, got %d", high, p.ID)
	}
}

func TestSeededCounters(t *testing.T) {
	s := NewSeeded()
	if s.Beds() != (BedStats{Total: 120, Occupied: 34}) {
		t.Errorf("unexpected bed stats: %+v", s.Beds())
	}
	if s.Supplies() != (SupplyStats{Critical: 4}) {
		t.Errorf("unexpected supply stats: %+v", s.Supplies())
	}
}
