package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Service names, also used as the default SERVICE_NAME of each binary.
const (
	UserService        = "user-svc"
	StateService       = "state-svc"
	TopicService       = "topic-svc"
	PublicationService = "publication-svc"
	CommentService     = "comment-svc"
	ImageService       = "image-svc"
)

var defaultHTTPPorts = map[string]string{
	UserService:        "8081",
	StateService:       "8082",
	TopicService:       "8083",
	PublicationService: "8084",
	CommentService:     "8085",
	ImageService:       "8086",
}

var defaultGRPCPorts = map[string]string{
	UserService:        "9081",
	StateService:       "9082",
	TopicService:       "9083",
	PublicationService: "9084",
	CommentService:     "9085",
	ImageService:       "9086",
}

type Config struct {
	Server ServerConfig `mapstructure:"server"`

	// Database Configuration
	Database DatabaseConfig `mapstructure:"database"`

	// MongoDB holds image bytes (GridFS)
	MongoDB MongoDBConfig `mapstructure:"mongodb"`

	// Base URLs of sibling services
	Services ServicesConfig `mapstructure:"services"`

	Existence ExistenceConfig `mapstructure:"existence"`

	Auth AuthConfig `mapstructure:"auth"`

	Images ImagesConfig `mapstructure:"images"`

	// Logging Configuration
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Name            string        `mapstructure:"name"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	GRPCPort        string        `mapstructure:"grpc_port"` // empty disables the gRPC health server
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Environment     string        `mapstructure:"environment"` // development, staging, production
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	DatabaseName string `mapstructure:"database_name"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

type MongoDBConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	Bucket   string `mapstructure:"bucket"`
}

// ServicesConfig holds the /api/v1 base URL of every sibling service.
type ServicesConfig struct {
	UsersURL        string `mapstructure:"users_url"`
	StatesURL       string `mapstructure:"states_url"`
	TopicsURL       string `mapstructure:"topics_url"`
	PublicationsURL string `mapstructure:"publications_url"`
}

// ExistenceConfig controls outbound existence checks. A FailOpen flag makes
// an unreachable service count as "exists" for that resource.
type ExistenceConfig struct {
	Timeout              time.Duration `mapstructure:"timeout"`
	UsersFailOpen        bool          `mapstructure:"users_fail_open"`
	PublicationsFailOpen bool          `mapstructure:"publications_fail_open"`
	TopicsFailOpen       bool          `mapstructure:"topics_fail_open"`
	StatesFailOpen       bool          `mapstructure:"states_fail_open"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type ImagesConfig struct {
	MaxBytes int64 `mapstructure:"max_bytes"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

// LoadConfig resolves configuration for the named service from the
// environment, falling back to local development defaults.
func LoadConfig(service string) *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("SERVICE_NAME", service)
	v.SetDefault("HTTP_HOST", "")
	v.SetDefault("HTTP_PORT", defaultHTTPPorts[service])
	v.SetDefault("GRPC_PORT", defaultGRPCPorts[service])
	v.SetDefault("READ_TIMEOUT", 15*time.Second)
	v.SetDefault("WRITE_TIMEOUT", 15*time.Second)
	v.SetDefault("SHUTDOWN_TIMEOUT", 30*time.Second)
	v.SetDefault("ENVIRONMENT", "development")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_USER", "qualifygym")
	v.SetDefault("DB_PASSWORD", "qualifygym")
	v.SetDefault("DB_NAME", defaultDatabaseName(service))
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("MONGO_HOST", "localhost")
	v.SetDefault("MONGO_PORT", "27017")
	v.SetDefault("MONGO_USERNAME", "")
	v.SetDefault("MONGO_PASSWORD", "")
	v.SetDefault("MONGO_DATABASE", "qualifygym_images")
	v.SetDefault("MONGO_BUCKET", "images")

	v.SetDefault("USERS_SERVICE_URL", "http://localhost:8081/api/v1")
	v.SetDefault("STATES_SERVICE_URL", "http://localhost:8082/api/v1")
	v.SetDefault("TOPICS_SERVICE_URL", "http://localhost:8083/api/v1")
	v.SetDefault("PUBLICATIONS_SERVICE_URL", "http://localhost:8084/api/v1")

	v.SetDefault("EXISTENCE_TIMEOUT", 5*time.Second)
	v.SetDefault("EXISTENCE_USERS_FAIL_OPEN", false)
	v.SetDefault("EXISTENCE_PUBLICATIONS_FAIL_OPEN", false)
	v.SetDefault("EXISTENCE_TOPICS_FAIL_OPEN", false)
	v.SetDefault("EXISTENCE_STATES_FAIL_OPEN", true)

	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("JWT_TTL", 24*time.Hour)

	v.SetDefault("IMAGE_MAX_BYTES", int64(10<<20))

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")

	return &Config{
		Server: ServerConfig{
			Name:            v.GetString("SERVICE_NAME"),
			Host:            v.GetString("HTTP_HOST"),
			Port:            v.GetString("HTTP_PORT"),
			GRPCPort:        v.GetString("GRPC_PORT"),
			ReadTimeout:     v.GetDuration("READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("WRITE_TIMEOUT"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
			Environment:     v.GetString("ENVIRONMENT"),
		},
		Database: DatabaseConfig{
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetString("DB_PORT"),
			Username:     v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASSWORD"),
			DatabaseName: v.GetString("DB_NAME"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
		},
		MongoDB: MongoDBConfig{
			Host:     v.GetString("MONGO_HOST"),
			Port:     v.GetString("MONGO_PORT"),
			Username: v.GetString("MONGO_USERNAME"),
			Password: v.GetString("MONGO_PASSWORD"),
			Database: v.GetString("MONGO_DATABASE"),
			Bucket:   v.GetString("MONGO_BUCKET"),
		},
		Services: ServicesConfig{
			UsersURL:        strings.TrimRight(v.GetString("USERS_SERVICE_URL"), "/"),
			StatesURL:       strings.TrimRight(v.GetString("STATES_SERVICE_URL"), "/"),
			TopicsURL:       strings.TrimRight(v.GetString("TOPICS_SERVICE_URL"), "/"),
			PublicationsURL: strings.TrimRight(v.GetString("PUBLICATIONS_SERVICE_URL"), "/"),
		},
		Existence: ExistenceConfig{
			Timeout:              v.GetDuration("EXISTENCE_TIMEOUT"),
			UsersFailOpen:        v.GetBool("EXISTENCE_USERS_FAIL_OPEN"),
			PublicationsFailOpen: v.GetBool("EXISTENCE_PUBLICATIONS_FAIL_OPEN"),
			TopicsFailOpen:       v.GetBool("EXISTENCE_TOPICS_FAIL_OPEN"),
			StatesFailOpen:       v.GetBool("EXISTENCE_STATES_FAIL_OPEN"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("JWT_SECRET"),
			TokenTTL:  v.GetDuration("JWT_TTL"),
		},
		Images: ImagesConfig{
			MaxBytes: v.GetInt64("IMAGE_MAX_BYTES"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}
}

// each service owns its own schema
func defaultDatabaseName(service string) string {
	name := strings.TrimSuffix(service, "-svc")
	return "qualifygym_" + name
}

func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func (cfg *Config) GetMongoURI() string {
	if cfg.MongoDB.Username == "" {
		return fmt.Sprintf("mongodb://%s:%s/%s", cfg.MongoDB.Host, cfg.MongoDB.Port, cfg.MongoDB.Database)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=admin",
		cfg.MongoDB.Username,
		cfg.MongoDB.Password,
		cfg.MongoDB.Host,
		cfg.MongoDB.Port,
		cfg.MongoDB.Database,
	)
}

// Addr is the HTTP listen address.
func (cfg *Config) Addr() string {
	return fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
}
