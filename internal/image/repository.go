package image

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"qualifygym/internal/common"
	"qualifygym/internal/dbmysql"
)

type ImageRepository interface {
	Create(ctx context.Context, image *dbmysql.Image) error
	ByID(ctx context.Context, id uint64) (*dbmysql.Image, error)
	ProfileByUserID(ctx context.Context, userID uint64) (*dbmysql.Image, error)
	ByPublicationID(ctx context.Context, publicationID uint64) ([]*dbmysql.Image, error)
	CountByUserID(ctx context.Context, userID uint64) (int64, error)
	CountByPublicationID(ctx context.Context, publicationID uint64) (int64, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	Delete(ctx context.Context, id uint64) error
}

type imageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(ctx context.Context, image *dbmysql.Image) error {
	if err := r.db.WithContext(ctx).Create(image).Error; err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	return nil
}

func (r *imageRepository) ByID(ctx context.Context, id uint64) (*dbmysql.Image, error) {
	var image dbmysql.Image
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&image).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("image", id)
		}
		return nil, fmt.Errorf("failed to get image: %w", err)
	}
	return &image, nil
}

// ProfileByUserID returns the newest profile photo of the user.
func (r *imageRepository) ProfileByUserID(ctx context.Context, userID uint64) (*dbmysql.Image, error) {
	var image dbmysql.Image
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ?", userID, dbmysql.ImageKindProfile).
		Order("created_at DESC").
		First(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &common.AppError{Kind: common.KindNotFound, Message: fmt.Sprintf("user %d has no profile photo", userID)}
		}
		return nil, fmt.Errorf("failed to get profile photo: %w", err)
	}
	return &image, nil
}

func (r *imageRepository) ByPublicationID(ctx context.Context, publicationID uint64) ([]*dbmysql.Image, error) {
	var images []*dbmysql.Image
	err := r.db.WithContext(ctx).
		Where("publication_id = ? AND kind = ?", publicationID, dbmysql.ImageKindPublication).
		Order("created_at").
		Find(&images).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list publication images: %w", err)
	}
	return images, nil
}

func (r *imageRepository) CountByUserID(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&dbmysql.Image{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count user images: %w", err)
	}
	return count, nil
}

func (r *imageRepository) CountByPublicationID(ctx context.Context, publicationID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbmysql.Image{}).
		Where("publication_id = ? AND kind = ?", publicationID, dbmysql.ImageKindPublication).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count publication images: %w", err)
	}
	return count, nil
}

func (r *imageRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&dbmysql.Image{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check image: %w", err)
	}
	return count > 0, nil
}

func (r *imageRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&dbmysql.Image{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete image: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return common.NewNotFoundError("image", id)
	}
	return nil
}
