package dispatch

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/emergency-api/geo"
	"github.com/bitmark-inc/emergency-api/schema"
	"github.com/bitmark-inc/emergency-api/store"
)

const logPrefix = "dispatch"

// DefaultFacilityRadius is the search radius in meters used when none is configured
const DefaultFacilityRadius = 10000

var ErrStaleRanking = fmt.Errorf("ranking superseded by a newer request")

// PatientSource lists the patients waiting for a hospital
type PatientSource interface {
	ListPendingPatients(assignedIDs []string) ([]schema.Patient, error)
}

// AssignmentBook persists patient to hospital bindings. A claim is
// rejected with store.ErrHospitalFull when the hospital has no slot left
// and with store.ErrPatientAssigned when the patient is already bound.
type AssignmentBook interface {
	ListAssignments() (schema.Assignments, error)
	ClaimAssignment(patientID, hospitalID string, capacity int) error
}

// Dispatcher runs a dispatch pass: find the hospitals around an origin,
// rank them and allocate the pending patients.
type Dispatcher struct {
	patients   PatientSource
	book       AssignmentBook
	facilities geo.FacilityFinder
	ranker     *geo.Ranker
	rankings   *geo.Tracker

	Capacity int
	Radius   int
}

func NewDispatcher(patients PatientSource, book AssignmentBook, facilities geo.FacilityFinder, ranker *geo.Ranker) *Dispatcher {
	return &Dispatcher{
		patients:   patients,
		book:       book,
		facilities: facilities,
		ranker:     ranker,
		rankings:   geo.NewTracker(),
		Capacity:   schema.DefaultHospitalCapacity,
		Radius:     DefaultFacilityRadius,
	}
}

// RankHospitals ranks the hospitals around the origin. The result replaces
// the latest ranking unless a newer pass has started meanwhile, in which
// case ErrStaleRanking is returned along with the ranking.
func (d *Dispatcher) RankHospitals(ctx context.Context, origin schema.Location) ([]schema.RankedHospital, error) {
	return rankInto(ctx, d.rankings, d.facilities, d.ranker, origin, d.Radius)
}

// LatestRanking returns the last published ranking
func (d *Dispatcher) LatestRanking() ([]schema.RankedHospital, bool) {
	return d.rankings.Latest()
}

// maxClaimRounds bounds how often a pass replans after its claims were
// rejected by concurrent passes
const maxClaimRounds = 3

// AllocatePending assigns the pending patients to the ranked hospitals.
// Every assignment is claimed from the book one by one. A claim rejected
// because another pass took the slot or the patient meanwhile makes the
// rejected patients be planned again against the refreshed book. Only the
// claims which succeeded are reported as added.
func (d *Dispatcher) AllocatePending(ranked []schema.RankedHospital) (Allocation, error) {
	existing, err := d.book.ListAssignments()
	if err != nil {
		return Allocation{}, err
	}

	patients, err := d.patients.ListPendingPatients(existing.PatientIDs())
	if err != nil {
		return Allocation{}, err
	}

	added := schema.Assignments{}
	pending := patients
	for round := 0; round < maxClaimRounds && len(pending) > 0; round++ {
		if round > 0 {
			if existing, err = d.book.ListAssignments(); err != nil {
				return Allocation{}, err
			}
			pending = unbound(pending, existing)
		}

		plan := Allocate(pending, ranked, existing, d.Capacity)

		var rejected []schema.Patient
		for _, p := range pending {
			hospitalID, ok := plan.Added[p.ID]
			if !ok {
				continue
			}

			switch err := d.book.ClaimAssignment(p.ID, hospitalID, d.Capacity); err {
			case nil:
				added[p.ID] = hospitalID
			case store.ErrHospitalFull, store.ErrPatientAssigned:
				log.WithFields(log.Fields{
					"prefix":   logPrefix,
					"patient":  p.ID,
					"hospital": hospitalID,
					"error":    err,
				}).Warn("assignment claim rejected")
				rejected = append(rejected, p)
			default:
				return Allocation{}, err
			}
		}
		pending = rejected
	}

	if len(pending) > 0 {
		if existing, err = d.book.ListAssignments(); err != nil {
			return Allocation{}, err
		}
	}

	allocation := Allocation{
		Assignments: existing.Clone(),
		Added:       added,
		Unassigned:  []string{},
	}
	for patientID, hospitalID := range added {
		allocation.Assignments[patientID] = hospitalID
	}
	for _, p := range patients {
		if _, ok := allocation.Assignments[p.ID]; !ok {
			allocation.Unassigned = append(allocation.Unassigned, p.ID)
		}
	}

	log.WithFields(log.Fields{
		"prefix":     logPrefix,
		"added":      len(allocation.Added),
		"unassigned": len(allocation.Unassigned),
	}).Info("allocation pass finished")

	return allocation, nil
}

// unbound drops the patients which hold an assignment
func unbound(patients []schema.Patient, assignments schema.Assignments) []schema.Patient {
	result := make([]schema.Patient, 0, len(patients))
	for _, p := range patients {
		if _, ok := assignments[p.ID]; !ok {
			result = append(result, p)
		}
	}
	return result
}

// Run ranks the hospitals around the origin and allocates the pending patients
func (d *Dispatcher) Run(ctx context.Context, origin schema.Location) ([]schema.RankedHospital, Allocation, error) {
	ranked, err := d.RankHospitals(ctx, origin)
	if err != nil && err != ErrStaleRanking {
		return nil, Allocation{}, err
	}

	allocation, err := d.AllocatePending(ranked)
	if err != nil {
		return ranked, Allocation{}, err
	}

	return ranked, allocation, nil
}

func rankInto(ctx context.Context, tracker *geo.Tracker, facilities geo.FacilityFinder, ranker *geo.Ranker, origin schema.Location, radius int) ([]schema.RankedHospital, error) {
	req := tracker.Begin()

	candidates, err := facilities.FindFacilities(ctx, origin, radius)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("find facilities")
		return nil, err
	}

	ranked := ranker.Rank(ctx, origin, candidates)
	if !tracker.Publish(req, ranked) {
		return ranked, ErrStaleRanking
	}

	return ranked, nil
}

// RankForSession ranks hospitals for a call. The ranking is kept on the
// session so that the latest one can be served later.
func (d *Dispatcher) RankForSession(ctx context.Context, s *Session, origin schema.Location) ([]schema.RankedHospital, error) {
	return rankInto(ctx, s.Rankings(), d.facilities, d.ranker, origin, d.Radius)
}
