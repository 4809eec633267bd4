package services

import (
	"context"
	"sync"
	"time"

	"github.com/connorholly11/friend-meetup/internal/models"
	"github.com/connorholly11/friend-meetup/pkg/logger"
	"gorm.io/gorm"
)

type AuditEntry struct {
	UserID       *uint
	GroupID      *uint
	Action       string
	ResourceType string
	ResourceID   *uint
	Details      map[string]interface{}
}

// AuditService persists group activity off the request path. Entries are
// queued and written by a single goroutine; when the queue is full or the
// service is closed the entry is dropped with a warning.
type AuditService struct {
	DB    *gorm.DB
	queue chan models.AuditLog

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewAuditService(db *gorm.DB, queueSize int) *AuditService {
	if queueSize <= 0 {
		queueSize = 1000
	}
	s := &AuditService{
		DB:    db,
		queue: make(chan models.AuditLog, queueSize),
		done:  make(chan struct{}),
	}
	go s.processQueue()
	return s
}

// LogAsync is safe on a nil receiver so services can run without a feed.
func (s *AuditService) LogAsync(entry AuditEntry) {
	if s == nil {
		return
	}

	row := models.AuditLog{
		UserID:       entry.UserID,
		GroupID:      entry.GroupID,
		Action:       entry.Action,
		ResourceType: entry.ResourceType,
		ResourceID:   entry.ResourceID,
		Details:      entry.Details,
		CreatedAt:    time.Now().UTC(),
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		logger.Warn("audit_queue_closed", map[string]interface{}{
			"action":  entry.Action,
			"dropped": true,
		})
		return
	}

	select {
	case s.queue <- row:
	default:
		logger.Warn("audit_queue_full", map[string]interface{}{
			"action":  entry.Action,
			"dropped": true,
		})
	}
}

func (s *AuditService) processQueue() {
	defer close(s.done)
	for row := range s.queue {
		if err := s.DB.Create(&row).Error; err != nil {
			logger.Error("audit_log_insert_failed", err, map[string]interface{}{
				"action": row.Action,
			})
		}
	}
}

// Close stops accepting entries and waits until queued ones are written.
// Entries logged afterwards are dropped.
func (s *AuditService) Close() {
	if s == nil {
		return
	}

	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.mu.Unlock()

	<-s.done
}

// ListGroupActivity returns up to limit audit rows for the group, newest first.
func (s *AuditService) ListGroupActivity(ctx context.Context, groupID uint, limit int) ([]models.AuditLog, error) {
	if s == nil {
		return []models.AuditLog{}, nil
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var rows []models.AuditLog
	err := s.DB.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, storageError("audit_list_failed", "failed loading group activity", err, map[string]interface{}{
			"group_id": groupID,
		})
	}
	return rows, nil
}
