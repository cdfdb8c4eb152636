package publication

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"qualifygym/internal/common"
	"qualifygym/internal/dbmysql"
)

type PublicationRepository interface {
	Create(ctx context.Context, publication *dbmysql.Publication) error
	ByID(ctx context.Context, id uint64) (*dbmysql.Publication, error)
	Save(ctx context.Context, publication *dbmysql.Publication) error
	Delete(ctx context.Context, id uint64) error

	All(ctx context.Context, includeHidden bool) ([]*dbmysql.Publication, error)
	ByTopicID(ctx context.Context, topicID uint64, includeHidden bool) ([]*dbmysql.Publication, error)
	ByUserID(ctx context.Context, userID uint64, includeHidden bool) ([]*dbmysql.Publication, error)
	Search(ctx context.Context, query string) ([]*dbmysql.Publication, error)
	CountByTopicID(ctx context.Context, topicID uint64) (int64, error)
	CountByUserID(ctx context.Context, userID uint64) (int64, error)
	Exists(ctx context.Context, id uint64) (bool, error)
}

type publicationRepository struct {
	db *gorm.DB
}

func NewPublicationRepository(db *gorm.DB) PublicationRepository {
	return &publicationRepository{db: db}
}

func (r *publicationRepository) Create(ctx context.Context, publication *dbmysql.Publication) error {
	if err := r.db.WithContext(ctx).Create(publication).Error; err != nil {
		return fmt.Errorf("failed to create publication: %w", err)
	}
	return nil
}

func (r *publicationRepository) ByID(ctx context.Context, id uint64) (*dbmysql.Publication, error) {
	var publication dbmysql.Publication

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&publication).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("publication", id)
		}
		return nil, fmt.Errorf("failed to get publication: %w", err)
	}
	return &publication, nil
}

func (r *publicationRepository) Save(ctx context.Context, publication *dbmysql.Publication) error {
	if err := r.db.WithContext(ctx).Save(publication).Error; err != nil {
		return fmt.Errorf("failed to save publication: %w", err)
	}
	return nil
}

func (r *publicationRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&dbmysql.Publication{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete publication: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return common.NewNotFoundError("publication", id)
	}
	return nil
}

func (r *publicationRepository) list(query *gorm.DB, includeHidden bool) ([]*dbmysql.Publication, error) {
	var publications []*dbmysql.Publication

	if !includeHidden {
		query = query.Where("hidden = ?", false)
	}
	if err := query.Order("created_at DESC").Find(&publications).Error; err != nil {
		return nil, fmt.Errorf("failed to list publications: %w", err)
	}
	return publications, nil
}

func (r *publicationRepository) All(ctx context.Context, includeHidden bool) ([]*dbmysql.Publication, error) {
	return r.list(r.db.WithContext(ctx), includeHidden)
}

func (r *publicationRepository) ByTopicID(ctx context.Context, topicID uint64, includeHidden bool) ([]*dbmysql.Publication, error) {
	return r.list(r.db.WithContext(ctx).Where("topic_id = ?", topicID), includeHidden)
}

func (r *publicationRepository) ByUserID(ctx context.Context, userID uint64, includeHidden bool) ([]*dbmysql.Publication, error) {
	return r.list(r.db.WithContext(ctx).Where("user_id = ?", userID), includeHidden)
}

// Search matches title or description and never returns hidden rows.
func (r *publicationRepository) Search(ctx context.Context, query string) ([]*dbmysql.Publication, error) {
	pattern := common.ContainsPattern(query)
	return r.list(
		r.db.WithContext(ctx).Where("(title LIKE ? OR description LIKE ?)", pattern, pattern),
		false,
	)
}

func (r *publicationRepository) CountByTopicID(ctx context.Context, topicID uint64) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&dbmysql.Publication{}).
		Where("topic_id = ?", topicID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count topic publications: %w", err)
	}
	return count, nil
}

func (r *publicationRepository) CountByUserID(ctx context.Context, userID uint64) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&dbmysql.Publication{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count user publications: %w", err)
	}
	return count, nil
}

func (r *publicationRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).Model(&dbmysql.Publication{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check publication: %w", err)
	}
	return count > 0, nil
}
