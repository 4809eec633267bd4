package models

import "time"

// AuditLog is an append-only record of group activity. It does not embed
// BaseModel because rows are never updated.
type AuditLog struct {
	ID           uint                   `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       *uint                  `json:"userID,omitempty" gorm:"index"`
	GroupID      *uint                  `json:"groupID,omitempty" gorm:"index"`
	Action       string                 `json:"action" gorm:"type:varchar(50);not null;index"`
	ResourceType string                 `json:"resourceType" gorm:"type:varchar(30);not null"`
	ResourceID   *uint                  `json:"resourceID,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty" gorm:"type:text;serializer:json"`
	CreatedAt    time.Time              `json:"createdAt" gorm:"not null;index"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// All lists every model the store migrates.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Group{},
		&Invitation{},
		&ActivitySuggestion{},
		&Vote{},
		&AvailabilitySlot{},
		&UserAvailability{},
		&HostingAvailability{},
		&AuditLog{},
	}
}
