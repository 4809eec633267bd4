package models

// Group is a named friend group. OwnerID is informational only: no
// operation checks it before mutating the group's ledgers.
type Group struct {
	BaseModel
	Name    string `json:"name" gorm:"type:varchar(150);uniqueIndex;not null"`
	OwnerID uint   `json:"ownerID" gorm:"not null;index"`
}

func (Group) TableName() string {
	return "groups"
}
