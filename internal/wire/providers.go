// Package wire holds the provider sets the service injectors in internal/di
// are built from.
package wire

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/wire"
	"gorm.io/gorm"

	"qualifygym/internal/comment"
	"qualifygym/internal/common"
	"qualifygym/internal/config"
	"qualifygym/internal/dbmongo"
	"qualifygym/internal/dbmysql"
	"qualifygym/internal/estado"
	"qualifygym/internal/existence"
	"qualifygym/internal/image"
	"qualifygym/internal/moderation"
	"qualifygym/internal/notif"
	"qualifygym/internal/publication"
	"qualifygym/internal/server"
	"qualifygym/internal/topic"
	"qualifygym/internal/user"
)

// Seeder inserts reference rows at startup.
type Seeder interface {
	Seed(ctx context.Context) error
}

// Application is one running service.
type Application struct {
	Server *server.Server
	Seeder Seeder // nil when the service has no reference data
}

// Start seeds reference data and serves until shutdown.
func (a *Application) Start(ctx context.Context) error {
	if a.Seeder != nil {
		if err := a.Seeder.Seed(ctx); err != nil {
			return fmt.Errorf("failed to seed: %w", err)
		}
	}
	return a.Server.Run()
}

var (
	UserSet = wire.NewSet(
		ProvideUserDB,
		ProvideTokenIssuer,
		user.NewUserRepository,
		user.NewRoleRepository,
		user.NewUserService,
		user.NewHandler,
		ProvideUserApplication,
	)

	StateSet = wire.NewSet(
		ProvideStateDB,
		estado.NewEstadoRepository,
		estado.NewEstadoService,
		estado.NewHandler,
		ProvideStateApplication,
	)

	TopicSet = wire.NewSet(
		ProvideTopicDB,
		existence.NewCheckers,
		topic.NewTopicRepository,
		topic.NewTopicService,
		topic.NewHandler,
		ProvideTopicApplication,
	)

	PublicationSet = wire.NewSet(
		ProvidePublicationDB,
		existence.NewCheckers,
		dbmysql.NewNotificationRepository,
		ProvidePublicationNotifications,
		wire.Bind(new(moderation.Notifier), new(*notif.NotificationService)),
		publication.NewPublicationRepository,
		publication.NewPublicationService,
		publication.NewHandler,
		notif.NewNotificationHandler,
		ProvidePublicationApplication,
	)

	CommentSet = wire.NewSet(
		ProvideCommentDB,
		existence.NewCheckers,
		dbmysql.NewNotificationRepository,
		ProvideCommentNotifications,
		wire.Bind(new(moderation.Notifier), new(*notif.NotificationService)),
		comment.NewCommentRepository,
		comment.NewCommentService,
		comment.NewHandler,
		notif.NewNotificationHandler,
		ProvideCommentApplication,
	)

	ImageSet = wire.NewSet(
		ProvideImageDB,
		ProvideMongo,
		existence.NewCheckers,
		dbmongo.NewImageStorage,
		wire.Bind(new(image.BlobStore), new(*dbmongo.ImageStorage)),
		image.NewImageRepository,
		image.NewImageService,
		image.NewHandler,
		ProvideImageApplication,
	)
)

func ProvideTokenIssuer(cfg *config.Config) *common.TokenIssuer {
	return common.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

// Each service owns its schema, so each one migrates only its own tables.

func ProvideUserDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	return dbmysql.NewMySQL(cfg, logger, &dbmysql.Role{}, &dbmysql.User{})
}

func ProvideStateDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	return dbmysql.NewMySQL(cfg, logger, &dbmysql.Estado{})
}

func ProvideTopicDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	return dbmysql.NewMySQL(cfg, logger, &dbmysql.Topic{})
}

func ProvidePublicationDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	return dbmysql.NewMySQL(cfg, logger, &dbmysql.Publication{}, &dbmysql.Notification{})
}

func ProvideCommentDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	return dbmysql.NewMySQL(cfg, logger, &dbmysql.Comment{}, &dbmysql.Notification{})
}

func ProvideImageDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	return dbmysql.NewMySQL(cfg, logger, &dbmysql.Image{})
}

func ProvideMongo(cfg *config.Config, logger *slog.Logger) (*dbmongo.MongoClient, error) {
	return dbmongo.NewMongoConnection(cfg, logger)
}

func ProvidePublicationNotifications(repo dbmysql.NotificationRepository) *notif.NotificationService {
	return notif.NewNotificationService(repo, dbmysql.SourcePublication)
}

func ProvideCommentNotifications(repo dbmysql.NotificationRepository) *notif.NotificationService {
	return notif.NewNotificationService(repo, dbmysql.SourceComment)
}

func closeDB(db *gorm.DB) func(context.Context) error {
	return func(context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		return sqlDB.Close()
	}
}

func newApplication(cfg *config.Config, logger *slog.Logger, db *gorm.DB, seeder Seeder, registrars ...server.RouteRegistrar) *Application {
	srv := server.New(cfg, logger, registrars...)
	srv.OnShutdown(closeDB(db))
	return &Application{Server: srv, Seeder: seeder}
}

func ProvideUserApplication(cfg *config.Config, logger *slog.Logger, db *gorm.DB, svc user.UserService, h *user.Handler) *Application {
	return newApplication(cfg, logger, db, svc, h)
}

func ProvideStateApplication(cfg *config.Config, logger *slog.Logger, db *gorm.DB, svc *estado.EstadoService, h *estado.Handler) *Application {
	return newApplication(cfg, logger, db, svc, h)
}

func ProvideTopicApplication(cfg *config.Config, logger *slog.Logger, db *gorm.DB, svc *topic.TopicService, h *topic.Handler) *Application {
	return newApplication(cfg, logger, db, svc, h)
}

func ProvidePublicationApplication(cfg *config.Config, logger *slog.Logger, db *gorm.DB, h *publication.Handler, nh *notif.NotificationHandler) *Application {
	return newApplication(cfg, logger, db, nil, h, nh)
}

func ProvideCommentApplication(cfg *config.Config, logger *slog.Logger, db *gorm.DB, h *comment.Handler, nh *notif.NotificationHandler) *Application {
	return newApplication(cfg, logger, db, nil, h, nh)
}

func ProvideImageApplication(cfg *config.Config, logger *slog.Logger, db *gorm.DB, mongo *dbmongo.MongoClient, h *image.Handler) *Application {
	app := newApplication(cfg, logger, db, nil, h)
	app.Server.OnShutdown(mongo.Close)
	return app
}
