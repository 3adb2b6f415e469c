package store

import (
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/bitmark-inc/emergency-api/schema"
)

const uniqueViolation = "23505"

// CreatePatient inserts a patient from the intake form. A new id is
// generated if the patient does not carry one.
func (s *DispatchStore) CreatePatient(patient *schema.Patient) error {
	if patient.ID == "" {
		patient.ID = uuid.New().String()
	}

	if err := s.ormDB.Create(patient).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return ErrPatientDuplicate
		}
		return err
	}

	return nil
}

// GetPatient returns a patient by id
func (s *DispatchStore) GetPatient(patientID string) (*schema.Patient, error) {
	var p schema.Patient
	if err := s.ormDB.Where("id = ?", patientID).First(&p).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListPendingPatients returns patients without an assignment in intake order
func (s *DispatchStore) ListPendingPatients(assignedIDs []string) ([]schema.Patient, error) {
	patients := []schema.Patient{}

	q := s.ormDB.Order("created_at")
	if len(assignedIDs) > 0 {
		q = q.Where("NOT (id = ANY(?))", pq.Array(assignedIDs))
	}

	if err := q.Find(&patients).Error; err != nil {
		return nil, err
	}

	return patients, nil
}
