package dashboard

import (
	"fmt"

	"github.com/andressagobbi/SGHSS-VidaPlus/internal/hospital"
)

// RoleCounts is the staffing breakdown by bucketed role.
type RoleCounts struct {
	Doctors     int `json:"doctors"`
	Nurses      int `json:"nurses"`
	Technicians int `json:"technicians"`
}

// Stats is the aggregated overview panel computed from a store snapshot.
type Stats struct {
	Patients       int        `json:"patients"`
	Appointments   int        `json:"appointments"`
	BedsTotal      int        `json:"beds_total"`
	BedsOccupied   int        `json:"beds_occupied"`
	BedOccupancy   string     `json:"bed_occupancy"`
	CriticalSupply int        `json:"critical_supply"`
	Staffing       RoleCounts `json:"staffing"`
}

// Aggregate computes the overview panel from a snapshot. It is a pure
// function of its input; callers take the snapshot under the store's lock.
func Aggregate(snap hospital.Snapshot) Stats {
	var roles RoleCounts
	for _, p := range snap.Professionals {
		switch Classify(p.Role) {
		case RoleDoctor:
			roles.Doctors++
		case RoleNurse:
			roles.Nurses++
		default:
			roles.Technicians++
		}
	}

	return Stats{
		Patients:       len(snap.Patients),
		Appointments:   len(snap.Appointments),
		BedsTotal:      snap.Beds.Total,
		BedsOccupied:   snap.Beds.Occupied,
		BedOccupancy:   fmt.Sprintf("%d / %d", snap.Beds.Occupied, snap.Beds.Total),
		CriticalSupply: snap.Supplies.Critical,
		Staffing:       roles,
	}
}
