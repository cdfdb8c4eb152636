package estado

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"qualifygym/internal/common"
	"qualifygym/internal/dbmysql"
)

// DefaultNames are inserted by Seed into an empty table.
var DefaultNames = []string{"Activo", "Inactivo", "Pendiente", "Eliminado"}

const maxNameLength = 100

type EstadoService struct {
	repo EstadoRepository
}

func NewEstadoService(repo EstadoRepository) *EstadoService {
	return &EstadoService{repo: repo}
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", common.NewValidationError("state name is required")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", common.NewValidationError("state name must be at most 100 characters")
	}
	return name, nil
}

func duplicateName(name string) error {
	return common.NewConflictError(fmt.Sprintf("a state named %q already exists", name))
}

// Seed inserts DefaultNames when no state exists yet.
func (s *EstadoService) Seed(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, name := range DefaultNames {
		if err := s.repo.Create(ctx, &dbmysql.Estado{Name: name}); err != nil {
			return err
		}
	}
	slog.InfoContext(ctx, "seeded states", "count", len(DefaultNames))
	return nil
}

func (s *EstadoService) List(ctx context.Context) ([]*dbmysql.Estado, error) {
	return s.repo.All(ctx)
}

func (s *EstadoService) Get(ctx context.Context, id uint64) (*dbmysql.Estado, error) {
	return s.repo.ByID(ctx, id)
}

func (s *EstadoService) GetByName(ctx context.Context, name string) (*dbmysql.Estado, error) {
	return s.repo.ByName(ctx, strings.TrimSpace(name))
}

func (s *EstadoService) Exists(ctx context.Context, id uint64) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *EstadoService) ExistsByName(ctx context.Context, name string) (bool, error) {
	return s.repo.ExistsByName(ctx, strings.TrimSpace(name))
}

func (s *EstadoService) Create(ctx context.Context, name string) (*dbmysql.Estado, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, duplicateName(name)
	}

	estado := &dbmysql.Estado{Name: name}
	if err := s.repo.Create(ctx, estado); err != nil {
		if dbmysql.IsDuplicateKey(err) {
			return nil, duplicateName(name)
		}
		return nil, common.NewInternalError(err)
	}
	return estado, nil
}

// GetOrCreate returns the state with the given name, creating it first
// when it does not exist.
func (s *EstadoService) GetOrCreate(ctx context.Context, name string) (*dbmysql.Estado, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	estado, err := s.repo.ByName(ctx, name)
	if err == nil {
		return estado, nil
	}
	if !common.IsNotFound(err) {
		return nil, err
	}

	estado = &dbmysql.Estado{Name: name}
	if err := s.repo.Create(ctx, estado); err != nil {
		if dbmysql.IsDuplicateKey(err) {
			return s.repo.ByName(ctx, name)
		}
		return nil, common.NewInternalError(err)
	}
	return estado, nil
}

// Update renames the state. A blank name leaves it unchanged.
func (s *EstadoService) Update(ctx context.Context, id uint64, name string) (*dbmysql.Estado, error) {
	estado, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(name) != "" {
		name, err = cleanName(name)
		if err != nil {
			return nil, err
		}
		other, err := s.repo.ByName(ctx, name)
		if err != nil && !common.IsNotFound(err) {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, duplicateName(name)
		}
		estado.Name = name
	}

	if err := s.repo.Save(ctx, estado); err != nil {
		if dbmysql.IsDuplicateKey(err) {
			return nil, duplicateName(name)
		}
		return nil, common.NewInternalError(err)
	}
	return estado, nil
}

func (s *EstadoService) Delete(ctx context.Context, id uint64) error {
	return s.repo.Delete(ctx, id)
}
