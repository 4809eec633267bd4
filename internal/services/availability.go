package services

import (
	"context"
	"strings"
	"time"

	"github.com/connorholly11/friend-meetup/internal/models"
	"gorm.io/gorm"
)

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// NormalizeDayOfWeek accepts any casing of a weekday name and returns the
// canonical capitalized form.
func NormalizeDayOfWeek(day string) (string, error) {
	day = strings.TrimSpace(day)
	for _, d := range weekdays {
		if strings.EqualFold(d, day) {
			return d, nil
		}
	}
	return "", ErrInvalidDayOfWeek
}

func parseClock(value string) (time.Time, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(value))
	return t, err == nil
}

// AvailabilityService owns weekly time slots per group and the
// user-to-slot availability join.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

func (s *AvailabilityService) AddAvailabilitySlot(ctx context.Context, groupID uint, dayOfWeek, startTime, endTime string) (uint, error) {
	day, err := NormalizeDayOfWeek(dayOfWeek)
	if err != nil {
		return 0, err
	}
	start, okStart := parseClock(startTime)
	end, okEnd := parseClock(endTime)
	if !okStart || !okEnd || !start.Before(end) {
		return 0, ErrInvalidTimeRange
	}

	slot := models.AvailabilitySlot{
		GroupID:   groupID,
		DayOfWeek: day,
		StartTime: start.Format("15:04"),
		EndTime:   end.Format("15:04"),
	}
	if err := s.DB.WithContext(ctx).Create(&slot).Error; err != nil {
		return 0, storageError("slot_create_failed", "failed adding availability slot", err, map[string]interface{}{
			"group_id": groupID,
		})
	}
	return slot.ID, nil
}

// MarkUserAvailability is a plain insert: marking the same slot twice
// stores two rows and the user is listed twice for that slot.
func (s *AvailabilityService) MarkUserAvailability(ctx context.Context, userID, slotID uint) (uint, error) {
	row := models.UserAvailability{UserID: userID, SlotID: slotID}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, storageError("availability_mark_failed", "failed marking availability", err, map[string]interface{}{
			"user_id": userID,
			"slot_id": slotID,
		})
	}
	return row.ID, nil
}

func (s *AvailabilityService) GetSlot(ctx context.Context, id uint) (*models.AvailabilitySlot, error) {
	var slot models.AvailabilitySlot
	found, err := findOne(s.DB.WithContext(ctx), &slot, "id = ?", id)
	if err != nil {
		return nil, storageError("slot_lookup_failed", "failed loading availability slot", err, map[string]interface{}{
			"slot_id": id,
		})
	}
	if !found {
		return nil, ErrSlotNotFound
	}
	return &slot, nil
}

func (s *AvailabilityService) GetGroupAvailabilitySlots(ctx context.Context, groupID uint) ([]models.AvailabilitySlot, error) {
	var slots []models.AvailabilitySlot
	if err := s.DB.WithContext(ctx).Where("group_id = ?", groupID).Order("id ASC").Find(&slots).Error; err != nil {
		return nil, storageError("slot_list_failed", "failed listing availability slots", err, map[string]interface{}{
			"group_id": groupID,
		})
	}
	return slots, nil
}

func (s *AvailabilityService) GetAvailableUsersForSlot(ctx context.Context, slotID uint) ([]uint, error) {
	userIDs := []uint{}
	err := s.DB.WithContext(ctx).
		Model(&models.UserAvailability{}).
		Where("slot_id = ?", slotID).
		Order("id ASC").
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, storageError("availability_list_failed", "failed listing available users", err, map[string]interface{}{
			"slot_id": slotID,
		})
	}
	return userIDs, nil
}
