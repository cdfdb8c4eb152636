package topic

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"qualifygym/internal/common"
	"qualifygym/internal/dbmysql"
)

type TopicRepository interface {
	All(ctx context.Context) ([]*dbmysql.Topic, error)
	ByID(ctx context.Context, id uint64) (*dbmysql.Topic, error)
	ByName(ctx context.Context, name string) (*dbmysql.Topic, error)
	ByEstadoID(ctx context.Context, estadoID uint64) ([]*dbmysql.Topic, error)
	SearchByName(ctx context.Context, query string) ([]*dbmysql.Topic, error)
	CountByEstadoID(ctx context.Context, estadoID uint64) (int64, error)
	Count(ctx context.Context) (int64, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, topic *dbmysql.Topic) error
	Save(ctx context.Context, topic *dbmysql.Topic) error
	Delete(ctx context.Context, id uint64) error
}

type topicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) All(ctx context.Context) ([]*dbmysql.Topic, error) {
	var topics []*dbmysql.Topic
	if err := r.db.WithContext(ctx).Order("id").Find(&topics).Error; err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	return topics, nil
}

func (r *topicRepository) ByID(ctx context.Context, id uint64) (*dbmysql.Topic, error) {
	var topic dbmysql.Topic
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&topic).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("topic", id)
		}
		return nil, fmt.Errorf("failed to get topic: %w", err)
	}
	return &topic, nil
}

func (r *topicRepository) ByName(ctx context.Context, name string) (*dbmysql.Topic, error) {
	var topic dbmysql.Topic
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&topic).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &common.AppError{Kind: common.KindNotFound, Message: fmt.Sprintf("topic %q not found", name)}
		}
		return nil, fmt.Errorf("failed to get topic by name: %w", err)
	}
	return &topic, nil
}

func (r *topicRepository) ByEstadoID(ctx context.Context, estadoID uint64) ([]*dbmysql.Topic, error) {
	var topics []*dbmysql.Topic
	if err := r.db.WithContext(ctx).Where("estado_id = ?", estadoID).Order("id").Find(&topics).Error; err != nil {
		return nil, fmt.Errorf("failed to list topics by state: %w", err)
	}
	return topics, nil
}

func (r *topicRepository) SearchByName(ctx context.Context, query string) ([]*dbmysql.Topic, error) {
	var topics []*dbmysql.Topic
	err := r.db.WithContext(ctx).
		Where("name LIKE ?", common.ContainsPattern(query)).
		Order("name").
		Find(&topics).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search topics: %w", err)
	}
	return topics, nil
}

func (r *topicRepository) CountByEstadoID(ctx context.Context, estadoID uint64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&dbmysql.Topic{}).Where("estado_id = ?", estadoID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count topics by state: %w", err)
	}
	return count, nil
}

func (r *topicRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&dbmysql.Topic{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count topics: %w", err)
	}
	return count, nil
}

func (r *topicRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&dbmysql.Topic{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check topic: %w", err)
	}
	return count > 0, nil
}

func (r *topicRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&dbmysql.Topic{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check topic name: %w", err)
	}
	return count > 0, nil
}

func (r *topicRepository) Create(ctx context.Context, topic *dbmysql.Topic) error {
	if err := r.db.WithContext(ctx).Create(topic).Error; err != nil {
		return fmt.Errorf("failed to create topic: %w", err)
	}
	return nil
}

func (r *topicRepository) Save(ctx context.Context, topic *dbmysql.Topic) error {
	if err := r.db.WithContext(ctx).Save(topic).Error; err != nil {
		return fmt.Errorf("failed to save topic: %w", err)
	}
	return nil
}

func (r *topicRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&dbmysql.Topic{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete topic: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return common.NewNotFoundError("topic", id)
	}
	return nil
}
