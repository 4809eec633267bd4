package services

import (
	"context"
	"strings"
	"time"

	"github.com/connorholly11/friend-meetup/internal/models"
	"github.com/connorholly11/friend-meetup/pkg/logger"
	"github.com/connorholly11/friend-meetup/pkg/utils"
	"gorm.io/gorm"
)

// GroupService owns the group registry and the invitation ledger.
//
// Group and user ids passed in are soft references: SendInvitation stores
// whatever it is given. InviteUser is the checked entry point that
// confirms the invited user exists first.
type GroupService struct {
	DB    *gorm.DB
	Audit *AuditService
}

func NewGroupService(db *gorm.DB, audit *AuditService) *GroupService {
	return &GroupService{DB: db, Audit: audit}
}

func (s *GroupService) CreateGroup(ctx context.Context, name string, ownerID uint) (uint, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrEmptyGroupName
	}

	db := s.DB.WithContext(ctx)

	var existing int64
	if err := db.Model(&models.Group{}).Where("name = ?", name).Count(&existing).Error; err != nil {
		return 0, storageError("group_lookup_failed", "failed creating group", err, map[string]interface{}{
			"group_name": name,
		})
	}
	if existing > 0 {
		return 0, ErrDuplicateGroupName
	}

	group := models.Group{Name: name, OwnerID: ownerID}
	if err := db.Create(&group).Error; err != nil {
		if isDuplicate(err) {
			return 0, ErrDuplicateGroupName
		}
		return 0, storageError("group_create_failed", "failed creating group", err, map[string]interface{}{
			"group_name": name,
		})
	}

	logger.InfoWithUser(ownerID, "group_created", map[string]interface{}{
		"group_id":   group.ID,
		"group_name": group.Name,
	})
	s.Audit.LogAsync(AuditEntry{
		UserID:       &ownerID,
		GroupID:      &group.ID,
		Action:       "group.create",
		ResourceType: "group",
		ResourceID:   &group.ID,
		Details:      map[string]interface{}{"group_name": group.Name},
	})

	return group.ID, nil
}

func (s *GroupService) GetGroup(ctx context.Context, id uint) (*models.Group, error) {
	var group models.Group
	found, err := findOne(s.DB.WithContext(ctx), &group, "id = ?", id)
	if err != nil {
		return nil, storageError("group_lookup_failed", "failed loading group", err, map[string]interface{}{
			"group_id": id,
		})
	}
	if !found {
		return nil, ErrGroupNotFound
	}
	return &group, nil
}

// ListGroups returns one page of groups, newest first, and the total count.
func (s *GroupService) ListGroups(ctx context.Context, p utils.PaginationParams) ([]models.Group, int64, error) {
	db := s.DB.WithContext(ctx)

	var total int64
	if err := db.Model(&models.Group{}).Count(&total).Error; err != nil {
		return nil, 0, storageError("group_count_failed", "failed counting groups", err, nil)
	}

	var groups []models.Group
	if err := db.Order("created_at DESC, id DESC").Scopes(p.Paginate).Find(&groups).Error; err != nil {
		return nil, 0, storageError("group_list_failed", "failed listing groups", err, nil)
	}
	return groups, total, nil
}

// SendInvitation records a pending invitation. It performs no existence
// checks and no duplicate guard: inviting the same user twice yields two rows.
func (s *GroupService) SendInvitation(ctx context.Context, groupID, invitedUserID uint) (uint, error) {
	invitation := models.Invitation{
		GroupID:       groupID,
		InvitedUserID: invitedUserID,
		Status:        models.InvitationStatusPending,
	}
	if err := s.DB.WithContext(ctx).Create(&invitation).Error; err != nil {
		return 0, storageError("invitation_create_failed", "failed sending invitation", err, map[string]interface{}{
			"group_id":        groupID,
			"invited_user_id": invitedUserID,
		})
	}
	return invitation.ID, nil
}

// InviteUser checks that the invited user exists, then sends the invitation.
// invitedBy is recorded in the audit feed only.
func (s *GroupService) InviteUser(ctx context.Context, groupID, invitedUserID, invitedBy uint) (uint, error) {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", invitedUserID).Count(&count).Error; err != nil {
		return 0, storageError("invitation_user_lookup_failed", "failed sending invitation", err, map[string]interface{}{
			"invited_user_id": invitedUserID,
		})
	}
	if count == 0 {
		return 0, ErrUserNotFound
	}

	id, err := s.SendInvitation(ctx, groupID, invitedUserID)
	if err != nil {
		return 0, err
	}

	s.Audit.LogAsync(AuditEntry{
		UserID:       &invitedBy,
		GroupID:      &groupID,
		Action:       "invitation.send",
		ResourceType: "invitation",
		ResourceID:   &id,
		Details:      map[string]interface{}{"invited_user_id": invitedUserID},
	})
	return id, nil
}

// RespondToInvitation sets the invitation to accepted or denied and stamps
// responded_at. Responding again overwrites the previous answer; concurrent
// responses race and the last committed update wins.
func (s *GroupService) RespondToInvitation(ctx context.Context, invitationID uint, status models.InvitationStatus) error {
	if !status.IsResponse() {
		return ErrInvalidStatus
	}

	result := s.DB.WithContext(ctx).
		Model(&models.Invitation{}).
		Where("id = ?", invitationID).
		Updates(map[string]interface{}{
			"status":       status,
			"responded_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return storageError("invitation_respond_failed", "failed responding to invitation", result.Error, map[string]interface{}{
			"invitation_id": invitationID,
			"status":        string(status),
		})
	}
	if result.RowsAffected == 0 {
		return ErrInvitationNotFound
	}
	return nil
}

func (s *GroupService) GetInvitation(ctx context.Context, id uint) (*models.Invitation, error) {
	var invitation models.Invitation
	found, err := findOne(s.DB.WithContext(ctx), &invitation, "id = ?", id)
	if err != nil {
		return nil, storageError("invitation_lookup_failed", "failed loading invitation", err, map[string]interface{}{
			"invitation_id": id,
		})
	}
	if !found {
		return nil, ErrInvitationNotFound
	}
	return &invitation, nil
}

// ListInvitationsForUser returns the user's invitations, optionally
// filtered by status, oldest first.
func (s *GroupService) ListInvitationsForUser(ctx context.Context, userID uint, status models.InvitationStatus) ([]models.Invitation, error) {
	query := s.DB.WithContext(ctx).Where("invited_user_id = ?", userID)
	if status != "" {
		if !status.IsValid() {
			return nil, &Error{Kind: KindValidation, Message: "Invalid status filter"}
		}
		query = query.Where("status = ?", status)
	}

	var invitations []models.Invitation
	if err := query.Order("id ASC").Find(&invitations).Error; err != nil {
		return nil, storageError("invitation_list_failed", "failed listing invitations", err, map[string]interface{}{
			"user_id": userID,
		})
	}
	return invitations, nil
}

func (s *GroupService) ListGroupInvitations(ctx context.Context, groupID uint) ([]models.Invitation, error) {
	var invitations []models.Invitation
	if err := s.DB.WithContext(ctx).Where("group_id = ?", groupID).Order("id ASC").Find(&invitations).Error; err != nil {
		return nil, storageError("invitation_list_failed", "failed listing invitations", err, map[string]interface{}{
			"group_id": groupID,
		})
	}
	return invitations, nil
}
