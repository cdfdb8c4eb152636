//go:build wireinject
// +build wireinject

package di

import (
	"log/slog"

	"github.com/google/wire"

	"qualifygym/internal/config"
	appwire "qualifygym/internal/wire"
)

// Declarations only; wire generates the bodies in wire_gen.go.

func InitUserApplication(cfg *config.Config, logger *slog.Logger) (*appwire.Application, error) {
	wire.Build(appwire.UserSet)
	return &appwire.Application{}, nil
}

func InitStateApplication(cfg *config.Config, logger *slog.Logger) (*appwire.Application, error) {
	wire.Build(appwire.StateSet)
	return &appwire.Application{}, nil
}

func InitTopicApplication(cfg *config.Config, logger *slog.Logger) (*appwire.Application, error) {
	wire.Build(appwire.TopicSet)
	return &appwire.Application{}, nil
}

func InitPublicationApplication(cfg *config.Config, logger *slog.Logger) (*appwire.Application, error) {
	wire.Build(appwire.PublicationSet)
	return &appwire.Application{}, nil
}

func InitCommentApplication(cfg *config.Config, logger *slog.Logger) (*appwire.Application, error) {
	wire.Build(appwire.CommentSet)
	return &appwire.Application{}, nil
}

func InitImageApplication(cfg *config.Config, logger *slog.Logger) (*appwire.Application, error) {
	wire.Build(appwire.ImageSet)
	return &appwire.Application{}, nil
}
