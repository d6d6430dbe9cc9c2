package hospital

// Patient is a registered patient record. History notes keep insertion order.
type Patient struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Age       int      `json:"age"`
	Contact   string   `json:"contact,omitempty"`
	LastVisit string   `json:"last"` // calendar date, YYYY-MM-DD
	History   []string `json:"history"`
}

// Professional is a staff directory entry. Role is free text; the
// doctor/nurse/technician split is derived at read time, never stored.
type Professional struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Specialty string `json:"specialty,omitempty"`
	Contact   string `json:"contact,omitempty"`
}

// ProfessionalUpdate carries the editable fields of a Professional.
type ProfessionalUpdate struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	Specialty string `json:"specialty"`
	Contact   string `json:"contact"`
}

// PatientRef identifies who an appointment is for. Internal bookings carry a
// patient id; public telemedicine bookings carry a free-text name and contact
// instead. Exactly one variant is set.
type PatientRef struct {
	PatientID int64  `json:"patientId,omitempty"`
	Name      string `json:"name,omitempty"`
	Contact   string `json:"contact,omitempty"`
}

// Internal reports whether the reference points at a registered patient.
func (r PatientRef) Internal() bool {
	return r.PatientID != 0
}

// Valid reports whether exactly one variant of the reference is populated.
func (r PatientRef) Valid() bool {
	if r.PatientID != 0 {
		return r.Name == "" && r.Contact == ""
	}
	return r.Name != ""
}

// Appointment is a booked (professional, date, time) slot. Ids increase
// monotonically with creation time.
type Appointment struct {
	ID             int64      `json:"id"`
	Patient        PatientRef `json:"patient"`
	ProfessionalID int64      `json:"prof"`
	Date           string     `json:"date"` // YYYY-MM-DD
	Time           string     `json:"time"` // HH:MM, from the slot catalog for public bookings
	Symptoms       string     `json:"symptoms,omitempty"`
}

// BedStats is the static bed occupancy counter shown on the dashboard.
type BedStats struct {
	Total    int `json:"total"`
	Occupied int `json:"occupied"`
}

// SupplyStats is the static critical-supply counter shown on the dashboard.
type SupplyStats struct {
	Critical int `json:"critical"`
}

// Snapshot is a deep copy of store state. Patients, professionals and
// appointments are the persisted collections; bed and supply counters ride
// along for derivations but are never written to storage.
type Snapshot struct {
	Patients      []Patient
	Professionals []Professional
	Appointments  []Appointment
	Beds          BedStats
	Supplies      SupplyStats
}
