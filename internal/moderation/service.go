// Package moderation implements the create / hide / show workflow shared by
// comments and publications.
package moderation

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"qualifygym/internal/common"
	"qualifygym/internal/dbmysql"
	"qualifygym/internal/existence"
)

// Record is a moderatable row. *dbmysql.Comment and *dbmysql.Publication
// implement it.
type Record interface {
	GetID() uint64
	OwnerID() uint64
	ParentID() uint64
	Body() string
	SetBody(body string)
	SetCreatedAt(at time.Time)
	State() *dbmysql.Moderation
}

// Repository persists records of one type. ByID and Delete return a
// NotFound AppError for unknown ids.
type Repository[T Record] interface {
	Create(ctx context.Context, record T) error
	ByID(ctx context.Context, id uint64) (T, error)
	Save(ctx context.Context, record T) error
	Delete(ctx context.Context, id uint64) error
}

// Notifier receives the hide notification for the record owner.
type Notifier interface {
	Create(ctx context.Context, recipientUserID, sourceRecordID uint64, message string) (*dbmysql.Notification, error)
}

// Service runs the moderation workflow for one record type.
type Service[T Record] struct {
	kind     string // "comment", "publication"
	parent   string // "publication", "topic"
	repo     Repository[T]
	users    existence.Checker
	parents  existence.Checker
	notifier Notifier
	now      func() time.Time
}

func NewService[T Record](
	kind, parent string,
	repo Repository[T],
	users existence.Checker,
	parents existence.Checker,
	notifier Notifier,
) *Service[T] {
	return &Service[T]{
		kind:     kind,
		parent:   parent,
		repo:     repo,
		users:    users,
		parents:  parents,
		notifier: notifier,
		now:      time.Now,
	}
}

// Create validates the record, checks the owner and then the parent, and
// persists it visible. The parent is never checked when the owner is missing.
func (s *Service[T]) Create(ctx context.Context, record T) (T, error) {
	var zero T

	body := strings.TrimSpace(record.Body())
	if body == "" {
		return zero, common.NewValidationError(s.kind + " body is required")
	}
	if record.OwnerID() == 0 {
		return zero, common.NewValidationError("user_id must be a positive integer")
	}
	if record.ParentID() == 0 {
		return zero, common.NewValidationError(s.parent + "_id must be a positive integer")
	}

	if !s.users.Exists(ctx, record.OwnerID()) {
		return zero, common.NewReferentialIntegrityError("user does not exist")
	}
	if !s.parents.Exists(ctx, record.ParentID()) {
		return zero, common.NewReferentialIntegrityError(s.parent + " does not exist")
	}

	record.SetBody(body)
	record.SetCreatedAt(s.now())
	record.State().Show()

	if err := s.repo.Create(ctx, record); err != nil {
		return zero, common.NewInternalError(err)
	}
	return record, nil
}

// Update replaces the body when the new one is not blank and applies any
// extra edits before saving. Moderation fields are left untouched.
func (s *Service[T]) Update(ctx context.Context, id uint64, newBody string, edits ...func(T) error) (T, error) {
	var zero T

	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		return zero, err
	}

	if body := strings.TrimSpace(newBody); body != "" {
		record.SetBody(body)
	}
	for _, edit := range edits {
		if err := edit(record); err != nil {
			return zero, err
		}
	}

	if err := s.repo.Save(ctx, record); err != nil {
		return zero, common.NewInternalError(err)
	}
	return record, nil
}

// Hide marks the record hidden and, for a non-blank reason, notifies the
// owner. A failed notification is logged and never fails the hide.
func (s *Service[T]) Hide(ctx context.Context, id uint64, reason string) (T, error) {
	var zero T

	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		return zero, err
	}

	record.State().Hide(s.now(), reason)

	if err := s.repo.Save(ctx, record); err != nil {
		return zero, common.NewInternalError(err)
	}

	if reason = strings.TrimSpace(reason); reason != "" {
		s.notify(ctx, record, reason)
	}
	return record, nil
}

func (s *Service[T]) notify(ctx context.Context, record T, reason string) {
	if s.notifier == nil {
		return
	}
	if _, err := s.notifier.Create(ctx, record.OwnerID(), record.GetID(), reason); err != nil {
		common.NotificationsDroppedTotal.WithLabelValues(s.kind).Inc()
		slog.WarnContext(ctx, "failed to notify owner of hidden record",
			"kind", s.kind,
			"id", record.GetID(),
			"owner", record.OwnerID(),
			"error", err,
		)
	}
}

// Show makes the record visible and clears its ban metadata.
func (s *Service[T]) Show(ctx context.Context, id uint64) (T, error) {
	var zero T

	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		return zero, err
	}

	record.State().Show()

	if err := s.repo.Save(ctx, record); err != nil {
		return zero, common.NewInternalError(err)
	}
	return record, nil
}

func (s *Service[T]) Delete(ctx context.Context, id uint64) error {
	if _, err := s.repo.ByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
