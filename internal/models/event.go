package models

type ActivitySuggestion struct {
	BaseModel
	GroupID  uint   `json:"groupID" gorm:"not null;index"`
	Activity string `json:"activity" gorm:"type:text;not null"`
}

func (ActivitySuggestion) TableName() string {
	return "event_suggestions"
}

// Vote is unique per (suggestion, user); writes go through an upsert on
// that key so the latest vote replaces the previous one.
type Vote struct {
	BaseModel
	SuggestionID uint `json:"suggestionID" gorm:"not null;uniqueIndex:idx_vote_suggestion_user"`
	UserID       uint `json:"userID" gorm:"not null;uniqueIndex:idx_vote_suggestion_user"`
	Vote         bool `json:"vote" gorm:"not null"`
}

func (Vote) TableName() string {
	return "event_votes"
}

// ActivityTally is one row of the ranked vote aggregation.
type ActivityTally struct {
	ID       uint   `json:"id"`
	Activity string `json:"activity"`
	YesVotes int64  `json:"yesVotes"`
	NoVotes  int64  `json:"noVotes"`
}

type VoteCount struct {
	YesVotes int64 `json:"yesVotes"`
	NoVotes  int64 `json:"noVotes"`
}
