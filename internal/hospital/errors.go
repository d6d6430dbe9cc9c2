package hospital

import "errors"

var (
	// ErrNameRequired is returned when a patient or professional name is missing
	ErrNameRequired = errors.New("name is required")

	// ErrInvalidAge is returned when a patient age is negative
	ErrInvalidAge = errors.New("age must be zero or greater")

	// ErrRoleRequired is returned when a professional role is missing
	ErrRoleRequired = errors.New("role is required")

	// ErrInvalidNote is returned when a clinical-history note is empty
	ErrInvalidNote = errors.New("note is required")

	// ErrInvalidAppointment is returned when an appointment misses its
	// professional, date, time, or a valid patient reference
	ErrInvalidAppointment = errors.New("appointment requires a patient reference, professional, date and time")

	// ErrPatientNotFound is returned when a patient id is not in the store
	ErrPatientNotFound = errors.New("patient not found")

	// ErrProfessionalNotFound is returned when a professional id is not in the store
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrAppointmentNotFound is returned when an appointment id is not in the store
	ErrAppointmentNotFound = errors.New("appointment not found")
)
