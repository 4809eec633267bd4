package models

import "time"

// BaseModel is embedded by every ledger row. IDs are auto-increment so
// callers get the row id back from each insert.
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null"`
}
