package estado

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"qualifygym/internal/common"
	"qualifygym/internal/dbmysql"
)

type EstadoRepository interface {
	All(ctx context.Context) ([]*dbmysql.Estado, error)
	ByID(ctx context.Context, id uint64) (*dbmysql.Estado, error)
	ByName(ctx context.Context, name string) (*dbmysql.Estado, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, estado *dbmysql.Estado) error
	Save(ctx context.Context, estado *dbmysql.Estado) error
	Delete(ctx context.Context, id uint64) error
}

type estadoRepository struct {
	db *gorm.DB
}

func NewEstadoRepository(db *gorm.DB) EstadoRepository {
	return &estadoRepository{db: db}
}

func (r *estadoRepository) All(ctx context.Context) ([]*dbmysql.Estado, error) {
	var estados []*dbmysql.Estado
	if err := r.db.WithContext(ctx).Order("id").Find(&estados).Error; err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}
	return estados, nil
}

func (r *estadoRepository) ByID(ctx context.Context, id uint64) (*dbmysql.Estado, error) {
	var estado dbmysql.Estado
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&estado).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("state", id)
		}
		return nil, fmt.Errorf("failed to get state: %w", err)
	}
	return &estado, nil
}

func (r *estadoRepository) ByName(ctx context.Context, name string) (*dbmysql.Estado, error) {
	var estado dbmysql.Estado
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&estado).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &common.AppError{Kind: common.KindNotFound, Message: fmt.Sprintf("state %q not found", name)}
		}
		return nil, fmt.Errorf("failed to get state by name: %w", err)
	}
	return &estado, nil
}

func (r *estadoRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&dbmysql.Estado{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check state: %w", err)
	}
	return count > 0, nil
}

func (r *estadoRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&dbmysql.Estado{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check state name: %w", err)
	}
	return count > 0, nil
}

func (r *estadoRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&dbmysql.Estado{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count states: %w", err)
	}
	return count, nil
}

func (r *estadoRepository) Create(ctx context.Context, estado *dbmysql.Estado) error {
	if err := r.db.WithContext(ctx).Create(estado).Error; err != nil {
		return fmt.Errorf("failed to create state: %w", err)
	}
	return nil
}

func (r *estadoRepository) Save(ctx context.Context, estado *dbmysql.Estado) error {
	if err := r.db.WithContext(ctx).Save(estado).Error; err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

func (r *estadoRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&dbmysql.Estado{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete state: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return common.NewNotFoundError("state", id)
	}
	return nil
}
