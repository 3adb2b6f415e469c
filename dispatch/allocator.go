package dispatch

import (
	"github.com/bitmark-inc/emergency-api/schema"
)

// Allocation is the result of an allocation pass
type Allocation struct {
	// Assignments holds both existing and new assignments
	Assignments schema.Assignments `json:"assignments"`
	// Added holds the assignments made by this pass
	Added schema.Assignments `json:"added"`
	// Unassigned lists the patients without an eligible hospital, in input order
	Unassigned []string `json:"unassigned"`
}

// Allocate binds each unassigned patient to the nearest eligible hospital.
// Patients are served in input order. A hospital is eligible if it holds
// fewer than capacity patients and, for an emergency patient, it is
// emergency capable. Existing assignments are kept as they are and the
// given map is not modified.
func Allocate(patients []schema.Patient, ranked []schema.RankedHospital, existing schema.Assignments, capacity int) Allocation {
	if capacity <= 0 {
		capacity = schema.DefaultHospitalCapacity
	}

	assignments := existing.Clone()
	occupancy := assignments.Occupancy()

	result := Allocation{
		Assignments: assignments,
		Added:       schema.Assignments{},
		Unassigned:  []string{},
	}

	for _, p := range patients {
		if _, ok := assignments[p.ID]; ok {
			continue
		}

		h, ok := nearestEligible(p, ranked, occupancy, capacity)
		if !ok {
			result.Unassigned = append(result.Unassigned, p.ID)
			continue
		}

		assignments[p.ID] = h
		result.Added[p.ID] = h
		occupancy[h]++
	}

	return result
}

func nearestEligible(p schema.Patient, ranked []schema.RankedHospital, occupancy map[string]int, capacity int) (string, bool) {
	for _, h := range ranked {
		if occupancy[h.ID] >= capacity {
			continue
		}
		if p.IsEmergency && !h.IsEmergencyCapable {
			continue
		}
		return h.ID, true
	}
	return "", false
}
