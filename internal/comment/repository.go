package comment

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"qualifygym/internal/common"
	"qualifygym/internal/dbmysql"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *dbmysql.Comment) error
	ByID(ctx context.Context, id uint64) (*dbmysql.Comment, error)
	Save(ctx context.Context, comment *dbmysql.Comment) error
	Delete(ctx context.Context, id uint64) error

	All(ctx context.Context) ([]*dbmysql.Comment, error)
	ByPublicationID(ctx context.Context, publicationID uint64, includeHidden bool) ([]*dbmysql.Comment, error)
	ByUserID(ctx context.Context, userID uint64) ([]*dbmysql.Comment, error)
	CountByPublicationID(ctx context.Context, publicationID uint64) (int64, error)
	CountByUserID(ctx context.Context, userID uint64) (int64, error)
	Exists(ctx context.Context, id uint64) (bool, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *dbmysql.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *commentRepository) ByID(ctx context.Context, id uint64) (*dbmysql.Comment, error) {
	var comment dbmysql.Comment

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("comment", id)
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &comment, nil
}

func (r *commentRepository) Save(ctx context.Context, comment *dbmysql.Comment) error {
	if err := r.db.WithContext(ctx).Save(comment).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&dbmysql.Comment{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return common.NewNotFoundError("comment", id)
	}
	return nil
}

func (r *commentRepository) All(ctx context.Context) ([]*dbmysql.Comment, error) {
	var comments []*dbmysql.Comment

	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// ByPublicationID lists newest first. Hidden comments are left out unless
// includeHidden is set.
func (r *commentRepository) ByPublicationID(ctx context.Context, publicationID uint64, includeHidden bool) ([]*dbmysql.Comment, error) {
	var comments []*dbmysql.Comment

	query := r.db.WithContext(ctx).Where("publication_id = ?", publicationID)
	if !includeHidden {
		query = query.Where("hidden = ?", false)
	}

	if err := query.Order("created_at DESC").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to list publication comments: %w", err)
	}
	return comments, nil
}

func (r *commentRepository) ByUserID(ctx context.Context, userID uint64) ([]*dbmysql.Comment, error) {
	var comments []*dbmysql.Comment

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list user comments: %w", err)
	}
	return comments, nil
}

func (r *commentRepository) CountByPublicationID(ctx context.Context, publicationID uint64) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&dbmysql.Comment{}).
		Where("publication_id = ?", publicationID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count publication comments: %w", err)
	}
	return count, nil
}

func (r *commentRepository) CountByUserID(ctx context.Context, userID uint64) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&dbmysql.Comment{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count user comments: %w", err)
	}
	return count, nil
}

func (r *commentRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).Model(&dbmysql.Comment{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check comment: %w", err)
	}
	return count > 0, nil
}
