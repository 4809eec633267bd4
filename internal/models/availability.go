package models

type AvailabilitySlot struct {
	BaseModel
	GroupID   uint   `json:"groupID" gorm:"not null;index"`
	DayOfWeek string `json:"dayOfWeek" gorm:"type:varchar(10);not null"`
	StartTime string `json:"startTime" gorm:"type:varchar(5);not null"`
	EndTime   string `json:"endTime" gorm:"type:varchar(5);not null"`
}

func (AvailabilitySlot) TableName() string {
	return "availability_slots"
}

// UserAvailability has no unique key: marking the same slot twice keeps both rows.
type UserAvailability struct {
	BaseModel
	UserID uint `json:"userID" gorm:"not null;index"`
	SlotID uint `json:"slotID" gorm:"not null;index"`
}

func (UserAvailability) TableName() string {
	return "user_availability"
}

type HostingAvailability struct {
	BaseModel
	UserID    uint   `json:"userID" gorm:"not null;uniqueIndex:idx_hosting_user_group_day"`
	GroupID   uint   `json:"groupID" gorm:"not null;index;uniqueIndex:idx_hosting_user_group_day"`
	DayOfWeek string `json:"dayOfWeek" gorm:"type:varchar(10);not null;uniqueIndex:idx_hosting_user_group_day"`
	Activity  string `json:"activity" gorm:"type:text;not null"`
}

func (HostingAvailability) TableName() string {
	return "hosting_availability"
}
