package schema

import (
	"sort"
	"time"
)

const (
	AssignmentCollection = "assignment"
	OccupancyCollection  = "hospital_occupancy"

	DefaultHospitalCapacity = 5
)

// Patient is created by the intake form and lives through the dispatch workflow
type Patient struct {
	ID          string    `json:"id" gorm:"primary_key"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	IsEmergency bool      `json:"is_emergency"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Assignments maps a patient id to a hospital id
type Assignments map[string]string

// Clone returns a copy of the assignments
func (a Assignments) Clone() Assignments {
	c := make(Assignments, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

// PatientIDs returns the assigned patient ids in ascending order
func (a Assignments) PatientIDs() []string {
	ids := make([]string, 0, len(a))
	for patientID := range a {
		ids = append(ids, patientID)
	}
	sort.Strings(ids)
	return ids
}

// Occupancy counts the assigned patients per hospital
func (a Assignments) Occupancy() map[string]int {
	o := make(map[string]int)
	for _, h := range a {
		o[h]++
	}
	return o
}

// Assignment is the mongo document binding a patient to a hospital
type Assignment struct {
	PatientID  string    `json:"patient_id" bson:"patient_id"`
	HospitalID string    `json:"hospital_id" bson:"hospital_id"`
	AssignedAt time.Time `json:"assigned_at" bson:"assigned_at"`
}

// HospitalOccupancy is the mongo document counting the patients assigned
// to a hospital. A slot is taken before the assignment is written.
type HospitalOccupancy struct {
	HospitalID string `json:"hospital_id" bson:"hospital_id"`
	Count      int    `json:"count" bson:"count"`
}
