package api

import "time"

// User mirrors the server's user record; the password hash is never sent.
type User struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

type Group struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	OwnerID   uint      `json:"ownerID"`
	CreatedAt time.Time `json:"createdAt"`
}

type Invitation struct {
	ID            uint       `json:"id"`
	GroupID       uint       `json:"groupID"`
	InvitedUserID uint       `json:"invitedUserID"`
	Status        string     `json:"status"`
	RespondedAt   *time.Time `json:"respondedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type Suggestion struct {
	ID        uint      `json:"id"`
	GroupID   uint      `json:"groupID"`
	Activity  string    `json:"activity"`
	CreatedAt time.Time `json:"createdAt"`
}

// Tally is one ranked row from /groups/:id/suggestions/top.
type Tally struct {
	ID       uint   `json:"id"`
	Activity string `json:"activity"`
	YesVotes int64  `json:"yesVotes"`
	NoVotes  int64  `json:"noVotes"`
}

type VoteCount struct {
	YesVotes int64 `json:"yesVotes"`
	NoVotes  int64 `json:"noVotes"`
}

type VoteResult struct {
	ID           uint `json:"id"`
	SuggestionID uint `json:"suggestionId"`
	Vote         bool `json:"vote"`
}

type Slot struct {
	ID        uint   `json:"id"`
	GroupID   uint   `json:"groupID"`
	DayOfWeek string `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type HostingOffer struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"userID"`
	GroupID   uint   `json:"groupID"`
	DayOfWeek string `json:"dayOfWeek"`
	Activity  string `json:"activity"`
}

type ActivityEntry struct {
	ID           uint                   `json:"id"`
	UserID       *uint                  `json:"userID,omitempty"`
	Action       string                 `json:"action"`
	ResourceType string                 `json:"resourceType"`
	ResourceID   *uint                  `json:"resourceID,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
	CreatedAt    time.Time              `json:"createdAt"`
}

// SignupResponse is returned by POST /auth/signup.
type SignupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
}

// LoginResponse is returned by POST /auth/login.
type LoginResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

type VersionInfo struct {
	Version    string `json:"version"`
	APIVersion string `json:"apiVersion"`
}
