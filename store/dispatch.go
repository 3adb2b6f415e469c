package store

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/bitmark-inc/emergency-api/schema"
)

var (
	ErrPatientNotFound  = fmt.Errorf("patient not found")
	ErrPatientDuplicate = fmt.Errorf("patient already exists")
	ErrCallNotFound     = fmt.Errorf("call not found")
	ErrCallNotActive    = fmt.Errorf("call is not active")
)

// DispatchCore is the relational datastore of patients and calls
type DispatchCore interface {
	Ping() error

	// Patient
	CreatePatient(patient *schema.Patient) error
	GetPatient(patientID string) (*schema.Patient, error)
	ListPendingPatients(assignedIDs []string) ([]schema.Patient, error)

	// Call
	CreateCall(record *schema.DialerRecord) error
	GetCall(callID string) (*schema.DialerRecord, error)
	UpdateCallSymptoms(callID string, symptoms, transcript []string, severity float64) error
	MarkDispatched(callID string, at time.Time) error
	EndCall(callID, status string, at time.Time) error
}

// DispatchStore is an implementation of DispatchCore
type DispatchStore struct {
	ormDB *gorm.DB
}

func NewDispatchStore(ormDB *gorm.DB) *DispatchStore {
	return &DispatchStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *DispatchStore) Ping() error {
	return s.ormDB.DB().Ping()
}
