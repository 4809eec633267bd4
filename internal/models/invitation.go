package models

import "time"

type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusDenied   InvitationStatus = "denied"
)

// IsResponse reports whether s is a status an invitee may respond with.
func (s InvitationStatus) IsResponse() bool {
	return s == InvitationStatusAccepted || s == InvitationStatusDenied
}

func (s InvitationStatus) IsValid() bool {
	return s == InvitationStatusPending || s.IsResponse()
}

// Invitation references its group and user by id only; there is no
// foreign key and no uniqueness on (group, user).
type Invitation struct {
	BaseModel
	GroupID       uint             `json:"groupID" gorm:"not null;index"`
	InvitedUserID uint             `json:"invitedUserID" gorm:"not null;index"`
	Status        InvitationStatus `json:"status" gorm:"type:varchar(20);not null;check:status IN ('pending','accepted','denied')"`
	RespondedAt   *time.Time       `json:"respondedAt,omitempty"`
}

func (Invitation) TableName() string {
	return "invitations"
}
