package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"qualifygym/internal/common"
	"qualifygym/internal/dbmysql"
	"qualifygym/internal/existence"
)

// DefaultNames are inserted by Seed, all in state 1.
var DefaultNames = []string{
	"Rutinas de Fuerza",
	"Cardio y Resistencia",
	"Nutrición",
	"Suplementos",
	"Recuperación",
	"Motivación",
}

const (
	maxNameLength   = 200
	defaultEstadoID = 1
)

type TopicService struct {
	repo    TopicRepository
	estados existence.Checker
}

func NewTopicService(repo TopicRepository, checkers *existence.Checkers) *TopicService {
	return &TopicService{repo: repo, estados: checkers.States}
}

func cleanName(name string) (string, error) {
	name = common.CleanText(name)
	if name == "" {
		return "", common.NewValidationError("topic name is required")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", common.NewValidationError("topic name must be at most 200 characters")
	}
	return name, nil
}

func duplicateName(name string) error {
	return common.NewConflictError(fmt.Sprintf("a topic named %q already exists", name))
}

func (s *TopicService) checkEstado(ctx context.Context, estadoID uint64) error {
	if !s.estados.Exists(ctx, estadoID) {
		return common.NewReferentialIntegrityError("state does not exist")
	}
	return nil
}

func (s *TopicService) Seed(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, name := range DefaultNames {
		if err := s.repo.Create(ctx, &dbmysql.Topic{Name: name, EstadoID: defaultEstadoID}); err != nil {
			return err
		}
	}
	slog.InfoContext(ctx, "seeded topics", "count", len(DefaultNames))
	return nil
}

func (s *TopicService) List(ctx context.Context) ([]*dbmysql.Topic, error) {
	return s.repo.All(ctx)
}

func (s *TopicService) Get(ctx context.Context, id uint64) (*dbmysql.Topic, error) {
	return s.repo.ByID(ctx, id)
}

func (s *TopicService) GetByName(ctx context.Context, name string) (*dbmysql.Topic, error) {
	return s.repo.ByName(ctx, strings.TrimSpace(name))
}

func (s *TopicService) ListByEstado(ctx context.Context, estadoID uint64) ([]*dbmysql.Topic, error) {
	return s.repo.ByEstadoID(ctx, estadoID)
}

// Search lists topics whose name contains query; a blank query lists all.
func (s *TopicService) Search(ctx context.Context, query string) ([]*dbmysql.Topic, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.repo.All(ctx)
	}
	return s.repo.SearchByName(ctx, query)
}

func (s *TopicService) CountByEstado(ctx context.Context, estadoID uint64) (int64, error) {
	return s.repo.CountByEstadoID(ctx, estadoID)
}

func (s *TopicService) Exists(ctx context.Context, id uint64) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *TopicService) ExistsByName(ctx context.Context, name string) (bool, error) {
	return s.repo.ExistsByName(ctx, strings.TrimSpace(name))
}

func (s *TopicService) Create(ctx context.Context, name string, estadoID uint64) (*dbmysql.Topic, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	if estadoID == 0 {
		return nil, common.NewValidationError("estado_id must be a positive integer")
	}

	taken, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, duplicateName(name)
	}
	if err := s.checkEstado(ctx, estadoID); err != nil {
		return nil, err
	}

	topic := &dbmysql.Topic{Name: name, EstadoID: estadoID}
	if err := s.repo.Create(ctx, topic); err != nil {
		if dbmysql.IsDuplicateKey(err) {
			return nil, duplicateName(name)
		}
		return nil, common.NewInternalError(err)
	}
	return topic, nil
}

// Update applies a non-blank name and a non-zero estadoID.
func (s *TopicService) Update(ctx context.Context, id uint64, name string, estadoID uint64) (*dbmysql.Topic, error) {
	topic, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !common.IsBlank(name) {
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
		topic.Name = name
	}

	if estadoID > 0 {
		if err := s.checkEstado(ctx, estadoID); err != nil {
			return nil, err
		}
		topic.EstadoID = estadoID
	}

	if err := s.repo.Save(ctx, topic); err != nil {
		if dbmysql.IsDuplicateKey(err) {
			return nil, duplicateName(topic.Name)
		}
		return nil, common.NewInternalError(err)
	}
	return topic, nil
}

func (s *TopicService) Delete(ctx context.Context, id uint64) error {
	return s.repo.Delete(ctx, id)
}
