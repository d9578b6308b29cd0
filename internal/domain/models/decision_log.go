package models

import (
	"time"
)

// DecisionLog records one approve/reject write issued against an upstream
// visit API, for audit. TargetID is the id the write was keyed by: the staff
// record id, or the request_id for the grouped sources.
type DecisionLog struct {
	BaseModel
	VisitorID string        `gorm:"type:varchar(64);not null" json:"visitor_id"`
	Source    VisitorSource `gorm:"type:varchar(20);not null" json:"source"`
	TargetID  int           `gorm:"not null" json:"target_id"`
	Action    string        `gorm:"type:varchar(20);not null" json:"action"` // APPROVED or REJECTED
	UserID    uint          `json:"user_id"`                                 // dashboard account that made the decision
	Timestamp time.Time     `json:"timestamp"`
	Success   bool          `gorm:"default:true" json:"success"`
	Details   string        `gorm:"type:text" json:"details"`
}
