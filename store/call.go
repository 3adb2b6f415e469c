package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/bitmark-inc/emergency-api/schema"
)

// CreateCall opens a call record
func (s *DispatchStore) CreateCall(record *schema.DialerRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	if record.CallStartTime.IsZero() {
		record.CallStartTime = time.Now()
	}

	if record.Status == "" {
		record.Status = schema.CALL_ACTIVE
	}

	return s.ormDB.Create(record).Error
}

// GetCall returns a call record by id
func (s *DispatchStore) GetCall(callID string) (*schema.DialerRecord, error) {
	id, err := uuid.Parse(callID)
	if err != nil {
		return nil, ErrCallNotFound
	}

	var r schema.DialerRecord
	if err := s.ormDB.Where("id = ?", id).First(&r).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrCallNotFound
		}
		return nil, err
	}
	return &r, nil
}

// UpdateCallSymptoms stores the symptom labels, transcript and score of an active call
func (s *DispatchStore) UpdateCallSymptoms(callID string, symptoms, transcript []string, severity float64) error {
	return s.updateActiveCall(callID, map[string]interface{}{
		"symptoms":       pq.StringArray(symptoms),
		"transcript":     pq.StringArray(transcript),
		"severity_score": severity,
	})
}

// MarkDispatched records that an ambulance has been dispatched for a call
func (s *DispatchStore) MarkDispatched(callID string, at time.Time) error {
	return s.updateActiveCall(callID, map[string]interface{}{
		"ambulance_dispatched": true,
		"dispatch_time":        at,
	})
}

// EndCall closes an active call with the given status
func (s *DispatchStore) EndCall(callID, status string, at time.Time) error {
	return s.updateActiveCall(callID, map[string]interface{}{
		"status":        status,
		"call_end_time": at,
	})
}

func (s *DispatchStore) updateActiveCall(callID string, values map[string]interface{}) error {
	id, err := uuid.Parse(callID)
	if err != nil {
		return ErrCallNotFound
	}

	result := s.ormDB.Model(schema.DialerRecord{}).
		Where("id = ? AND status = ?", id, schema.CALL_ACTIVE).
		Updates(values)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if _, err := s.GetCall(callID); err != nil {
			return err
		}
		return ErrCallNotActive
	}

	return nil
}
