package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	CALL_ACTIVE    = "ACTIVE"
	CALL_COMPLETED = "COMPLETED"
	CALL_CANCELLED = "CANCELLED"
)

// DialerRecord is a call taken by the call center
type DialerRecord struct {
	ID                  uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	CallerName          string         `json:"caller_name"`
	CallerPhone         string         `json:"caller_phone"`
	EmergencyType       string         `json:"emergency_type"`
	Location            string         `json:"location"`
	Symptoms            pq.StringArray `json:"symptoms" gorm:"type:text[]"`
	SeverityScore       float64        `json:"severity_score"`
	Transcript          pq.StringArray `json:"transcript" gorm:"type:text[]"`
	CallStartTime       time.Time      `json:"call_start_time"`
	CallEndTime         *time.Time     `json:"call_end_time"`
	AmbulanceDispatched bool           `json:"ambulance_dispatched"`
	DispatchTime        *time.Time     `json:"dispatch_time"`
	Status              string         `json:"status" sql:"default:'ACTIVE'"`
	Notes               string         `json:"notes"`
}
