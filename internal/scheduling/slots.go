package scheduling

import (
	"sort"

	"github.com/andressagobbi/SGHSS-VidaPlus/internal/hospital"
)

// Slots is the fixed catalog of bookable times of day, in display order.
// Public telemedicine bookings must pick from it; it is configuration, not an
// invariant-bearing entity.
var Slots = []string{"08:00", "09:00", "10:00", "13:00", "14:00", "15:00"}

// ValidSlot reports whether t is in the slot catalog.
func ValidSlot(t string) bool {
	for _, s := range Slots {
		if s == t {
			return true
		}
	}
	return false
}

// SlotTaken reports whether some appointment already occupies the exact
// (date, time, professional) triple. Dates and times compare as strings,
// professional ids as numbers.
func SlotTaken(appointments []hospital.Appointment, date, timeOfDay string, professionalID int64) bool {
	for _, a := range appointments {
		if a.Date == date && a.Time == timeOfDay && a.ProfessionalID == professionalID {
			return true
		}
	}
	return false
}

// Ordered returns the appointments sorted ascending by (date, time).
// Zero-padded ISO-style strings make lexicographic order chronological; the
// sort is stable so equal slots keep their booking order.
func Ordered(appointments []hospital.Appointment) []hospital.Appointment {
	out := make([]hospital.Appointment, len(appointments))
	copy(out, appointments)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out
}

// FreeSlots returns the catalog entries not yet taken for the professional on
// the given date, preserving catalog order.
func FreeSlots(appointments []hospital.Appointment, date string, professionalID int64) []string {
	out := make([]string, 0, len(Slots))
	for _, s := range Slots {
		if !SlotTaken(appointments, date, s, professionalID) {
			out = append(out, s)
		}
	}
	return out
}
