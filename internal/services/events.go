package services

import (
	"context"
	"strings"

	"github.com/connorholly11/friend-meetup/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VotingService is the activity voting board: per-group suggestions and
// one yes/no vote per (suggestion, user).
type VotingService struct {
	DB    *gorm.DB
	Audit *AuditService
}

func NewVotingService(db *gorm.DB, audit *AuditService) *VotingService {
	return &VotingService{DB: db, Audit: audit}
}

func (s *VotingService) AddEventSuggestion(ctx context.Context, groupID uint, activity string) (uint, error) {
	activity = strings.TrimSpace(activity)
	if activity == "" {
		return 0, ErrEmptyActivity
	}

	suggestion := models.ActivitySuggestion{GroupID: groupID, Activity: activity}
	if err := s.DB.WithContext(ctx).Create(&suggestion).Error; err != nil {
		return 0, storageError("suggestion_create_failed", "failed adding suggestion", err, map[string]interface{}{
			"group_id": groupID,
		})
	}

	s.Audit.LogAsync(AuditEntry{
		GroupID:      &groupID,
		Action:       "suggestion.create",
		ResourceType: "suggestion",
		ResourceID:   &suggestion.ID,
		Details:      map[string]interface{}{"activity": activity},
	})
	return suggestion.ID, nil
}

// VoteOnEventSuggestion upserts the user's vote. A later vote replaces the
// earlier one in place; no history is kept. The returned id is the id of
// the single row holding the pair.
func (s *VotingService) VoteOnEventSuggestion(ctx context.Context, suggestionID, userID uint, vote bool) (uint, error) {
	db := s.DB.WithContext(ctx)

	row := models.Vote{SuggestionID: suggestionID, UserID: userID, Vote: vote}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "suggestion_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"vote", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return 0, storageError("vote_upsert_failed", "failed recording vote", err, map[string]interface{}{
			"suggestion_id": suggestionID,
			"user_id":       userID,
		})
	}

	var stored models.Vote
	if err := db.Select("id").First(&stored, "suggestion_id = ? AND user_id = ?", suggestionID, userID).Error; err != nil {
		return 0, storageError("vote_lookup_failed", "failed recording vote", err, map[string]interface{}{
			"suggestion_id": suggestionID,
			"user_id":       userID,
		})
	}
	return stored.ID, nil
}

// GetEventSuggestions lists the group's suggestions, newest first.
func (s *VotingService) GetEventSuggestions(ctx context.Context, groupID uint) ([]models.ActivitySuggestion, error) {
	var suggestions []models.ActivitySuggestion
	err := s.DB.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at DESC, id DESC").
		Find(&suggestions).Error
	if err != nil {
		return nil, storageError("suggestion_list_failed", "failed listing suggestions", err, map[string]interface{}{
			"group_id": groupID,
		})
	}
	return suggestions, nil
}

func (s *VotingService) GetSuggestion(ctx context.Context, id uint) (*models.ActivitySuggestion, error) {
	var suggestion models.ActivitySuggestion
	found, err := findOne(s.DB.WithContext(ctx), &suggestion, "id = ?", id)
	if err != nil {
		return nil, storageError("suggestion_lookup_failed", "failed loading suggestion", err, map[string]interface{}{
			"suggestion_id": id,
		})
	}
	if !found {
		return nil, ErrSuggestionNotFound
	}
	return &suggestion, nil
}

// CountVotesForSuggestion tallies one suggestion. An unknown or unvoted
// suggestion counts zero both ways.
func (s *VotingService) CountVotesForSuggestion(ctx context.Context, suggestionID uint) (models.VoteCount, error) {
	var count models.VoteCount
	err := s.DB.WithContext(ctx).
		Model(&models.Vote{}).
		Select(
			"COALESCE(SUM(CASE WHEN vote = ? THEN 1 ELSE 0 END), 0) AS yes_votes, "+
				"COALESCE(SUM(CASE WHEN vote = ? THEN 1 ELSE 0 END), 0) AS no_votes",
			true, false,
		).
		Where("suggestion_id = ?", suggestionID).
		Scan(&count).Error
	if err != nil {
		return models.VoteCount{}, storageError("vote_count_failed", "failed counting votes", err, map[string]interface{}{
			"suggestion_id": suggestionID,
		})
	}
	return count, nil
}

const topVotedQuery = `
SELECT es.id AS id,
       es.activity AS activity,
       COALESCE(SUM(CASE WHEN ev.vote = ? THEN 1 ELSE 0 END), 0) AS yes_votes,
       COALESCE(SUM(CASE WHEN ev.vote = ? THEN 1 ELSE 0 END), 0) AS no_votes
FROM event_suggestions es
LEFT JOIN event_votes ev ON ev.suggestion_id = es.id
WHERE es.group_id = ?
GROUP BY es.id, es.activity
ORDER BY yes_votes DESC, no_votes ASC, es.id ASC`

// GetTopVotedActivities ranks every suggestion of the group by yes votes
// (desc) then no votes (asc). Suggestions nobody voted on are included
// with zero counts.
func (s *VotingService) GetTopVotedActivities(ctx context.Context, groupID uint) ([]models.ActivityTally, error) {
	tallies := []models.ActivityTally{}
	if err := s.DB.WithContext(ctx).Raw(topVotedQuery, true, false, groupID).Scan(&tallies).Error; err != nil {
		return nil, storageError("vote_tally_failed", "failed ranking activities", err, map[string]interface{}{
			"group_id": groupID,
		})
	}
	return tallies, nil
}
