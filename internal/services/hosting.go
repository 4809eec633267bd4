package services

import (
	"context"
	"strings"

	"github.com/connorholly11/friend-meetup/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HostingService records which users are willing to host which activity
// on which weekday. There is at most one row per (user, group, day).
type HostingService struct {
	DB *gorm.DB
}

func NewHostingService(db *gorm.DB) *HostingService {
	return &HostingService{DB: db}
}

// MarkHostingAvailability upserts the user's hosting offer for the day,
// replacing the activity of any earlier offer for the same day.
func (s *HostingService) MarkHostingAvailability(ctx context.Context, userID, groupID uint, dayOfWeek, activity string) (uint, error) {
	day, err := NormalizeDayOfWeek(dayOfWeek)
	if err != nil {
		return 0, err
	}
	activity = strings.TrimSpace(activity)
	if activity == "" {
		return 0, ErrEmptyActivity
	}

	db := s.DB.WithContext(ctx)
	row := models.HostingAvailability{UserID: userID, GroupID: groupID, DayOfWeek: day, Activity: activity}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "group_id"}, {Name: "day_of_week"}},
		DoUpdates: clause.AssignmentColumns([]string{"activity", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return 0, storageError("hosting_upsert_failed", "failed marking hosting availability", err, map[string]interface{}{
			"user_id":  userID,
			"group_id": groupID,
			"day":      day,
		})
	}

	var stored models.HostingAvailability
	err = db.Select("id").
		First(&stored, "user_id = ? AND group_id = ? AND day_of_week = ?", userID, groupID, day).Error
	if err != nil {
		return 0, storageError("hosting_lookup_failed", "failed marking hosting availability", err, map[string]interface{}{
			"user_id":  userID,
			"group_id": groupID,
			"day":      day,
		})
	}
	return stored.ID, nil
}

func (s *HostingService) GetHostingAvailability(ctx context.Context, userID, groupID uint) ([]models.HostingAvailability, error) {
	var rows []models.HostingAvailability
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND group_id = ?", userID, groupID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, storageError("hosting_list_failed", "failed listing hosting availability", err, map[string]interface{}{
			"user_id":  userID,
			"group_id": groupID,
		})
	}
	return rows, nil
}

// GetAvailableHosts returns the users offering to host activity on the day.
func (s *HostingService) GetAvailableHosts(ctx context.Context, groupID uint, dayOfWeek, activity string) ([]uint, error) {
	day, err := NormalizeDayOfWeek(dayOfWeek)
	if err != nil {
		return nil, err
	}

	userIDs := []uint{}
	err = s.DB.WithContext(ctx).
		Model(&models.HostingAvailability{}).
		Where("group_id = ? AND day_of_week = ? AND activity = ?", groupID, day, strings.TrimSpace(activity)).
		Order("id ASC").
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, storageError("hosting_hosts_failed", "failed listing hosts", err, map[string]interface{}{
			"group_id": groupID,
			"day":      day,
		})
	}
	return userIDs, nil
}

// RemoveHostingAvailability deletes the user's offer for the day and
// returns the number of rows removed.
func (s *HostingService) RemoveHostingAvailability(ctx context.Context, userID, groupID uint, dayOfWeek string) (int64, error) {
	day, err := NormalizeDayOfWeek(dayOfWeek)
	if err != nil {
		return 0, err
	}

	result := s.DB.WithContext(ctx).
		Where("user_id = ? AND group_id = ? AND day_of_week = ?", userID, groupID, day).
		Delete(&models.HostingAvailability{})
	if result.Error != nil {
		return 0, storageError("hosting_remove_failed", "failed removing hosting availability", result.Error, map[string]interface{}{
			"user_id":  userID,
			"group_id": groupID,
			"day":      day,
		})
	}
	return result.RowsAffected, nil
}

// GetGroupHostingAvailabilities lists every offer in the group ordered by
// weekday name, matching the stored text ordering.
func (s *HostingService) GetGroupHostingAvailabilities(ctx context.Context, groupID uint) ([]models.HostingAvailability, error) {
	var rows []models.HostingAvailability
	err := s.DB.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("day_of_week ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, storageError("hosting_list_failed", "failed listing hosting availability", err, map[string]interface{}{
			"group_id": groupID,
		})
	}
	return rows, nil
}
