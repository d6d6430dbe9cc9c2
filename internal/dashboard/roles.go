package dashboard

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Role buckets for the staffing panel.
const (
	RoleDoctor     = "doctor"
	RoleNurse      = "nurse"
	RoleTechnician = "technician"
)

var roleNormalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeRole strips diacritics and lowercases so "Médica", "medica" and
// "MÉDICO" all compare equal.
func normalizeRole(role string) string {
	out, _, err := transform.String(roleNormalizer, role)
	if err != nil {
		out = role
	}
	return strings.ToLower(out)
}

// Classify buckets a free-text role label. Anything containing "med" or "dr"
// is a doctor, then anything containing "enf" is a nurse, and everything else
// counts as a technician. The doctor check runs first, so a label matching
// both buckets lands on doctor.
func Classify(role string) string {
	n := normalizeRole(role)
	switch {
	case strings.Contains(n, "med") || strings.Contains(n, "dr"):
		return RoleDoctor
	case strings.Contains(n, "enf"):
		return RoleNurse
	default:
		return RoleTechnician
	}
}
