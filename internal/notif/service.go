package notif

import (
	"context"
	"strings"
	"time"

	"qualifygym/internal/common"
	"qualifygym/internal/dbmysql"
)

// NotificationService stores moderation notices for the owners of one kind
// of record (comments or publications).
type NotificationService struct {
	repo       dbmysql.NotificationRepository
	sourceType string
	now        func() time.Time
}

func NewNotificationService(repo dbmysql.NotificationRepository, sourceType string) *NotificationService {
	return &NotificationService{
		repo:       repo,
		sourceType: sourceType,
		now:        time.Now,
	}
}

// Create stores an unread notification for recipientUserID about the
// record sourceRecordID.
func (s *NotificationService) Create(ctx context.Context, recipientUserID, sourceRecordID uint64, message string) (*dbmysql.Notification, error) {
	if recipientUserID == 0 {
		return nil, common.NewValidationError("recipient user_id must be a positive integer")
	}
	if sourceRecordID == 0 {
		return nil, common.NewValidationError("source_id must be a positive integer")
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, common.NewValidationError("message is required")
	}

	notification := &dbmysql.Notification{
		UserID:     recipientUserID,
		SourceID:   sourceRecordID,
		SourceType: s.sourceType,
		Message:    message,
		Read:       false,
		CreatedAt:  s.now(),
	}

	if err := s.repo.Create(ctx, notification); err != nil {
		return nil, common.NewInternalError(err)
	}
	return notification, nil
}

func (s *NotificationService) ListForUser(ctx context.Context, userID uint64) ([]*dbmysql.Notification, error) {
	return s.repo.ByUserID(ctx, userID)
}

func (s *NotificationService) ListUnreadForUser(ctx context.Context, userID uint64) ([]*dbmysql.Notification, error) {
	return s.repo.UnreadByUserID(ctx, userID)
}

func (s *NotificationService) CountUnread(ctx context.Context, userID uint64) (int64, error) {
	return s.repo.UnreadCount(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id uint64) (*dbmysql.Notification, error) {
	notification, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	notification.Read = true
	if err := s.repo.Save(ctx, notification); err != nil {
		return nil, common.NewInternalError(err)
	}
	return notification, nil
}

// MarkAllRead flags every unread notification of the user as read in one
// batch and returns how many changed.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint64) (int, error) {
	unread, err := s.repo.UnreadByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}

	for _, n := range unread {
		n.Read = true
	}

	if err := s.repo.SaveAll(ctx, unread); err != nil {
		return 0, common.NewInternalError(err)
	}
	return len(unread), nil
}

func (s *NotificationService) Delete(ctx context.Context, id uint64) error {
	return s.repo.Delete(ctx, id)
}
