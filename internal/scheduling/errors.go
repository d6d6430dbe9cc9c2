package scheduling

import "errors"

var (
	// ErrSlotTaken is returned when the requested (professional, date, time)
	// triple is already booked
	ErrSlotTaken = errors.New("slot already taken")

	// ErrInvalidSlot is returned when a public booking asks for a time outside
	// the slot catalog
	ErrInvalidSlot = errors.New("time is not an available slot")
)
