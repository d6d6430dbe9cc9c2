package hospital

// NewSeeded creates a store pre-loaded with the built-in sample data. This is
// the state every install starts from until a persisted snapshot replaces the
// mutable collections. Professional 3 is the telemedicine specialist by
// convention; see config.TelemedicineProfessionalID.
func NewSeeded() *Store {
	s := New()
	s.patients = []Patient{
		{ID: 1, Name: "João Silva", Age: 42, Contact: "(48) 99123-4567", LastVisit: "2025-11-27", History: []string{"Hipertensão"}},
		{ID: 2, Name: "Mariana Costa", Age: 29, Contact: "(48) 99876-5544", LastVisit: "2025-11-29", History: []string{"Alergia a penicilina"}},
		{ID: 3, Name: "Carlos Souza", Age: 63, Contact: "(48) 98811-2233", LastVisit: "2025-11-20", History: []string{"Diabetes tipo 2"}},
	}
	s.professionals = []Professional{
		{ID: 1, Name: "Dr. Ana Pereira", Role: "Médica", Specialty: "Cardiologia"},
		{ID: 2, Name: "Enf. Bruno Lima", Role: "Enfermeiro", Specialty: "Urgência"},
		{ID: 3, Name: "Dr. Felipe Rocha", Role: "Médico", Specialty: "Telemedicina"},
	}
	s.beds = BedStats{Total: 120, Occupied: 34}
	s.supplies = SupplyStats{Critical: 4}
	s.lastID = 3
	return s
}
