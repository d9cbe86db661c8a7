package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Storage  StorageConfig
	Mail     MailConfig
	Log      LogConfig
	Jobs     BackgroundConfig
}

type AppConfig struct {
	AppName       string
	Environment   string
	HTTPPort      string
	MigrationsDir string
	AutoMigrate   bool
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

// AuthConfig describes how bearer tokens minted by the identity provider are verified.
type AuthConfig struct {
	JWTSecret string
	Issuer    string
	AdminRole string
}

type StorageConfig struct {
	Region         string
	Bucket         string
	Endpoint       string
	UploadURLTTL   time.Duration
	DownloadURLTTL time.Duration
}

type MailConfig struct {
	Enabled bool
	Region  string
	From    string
}

type LogConfig struct {
	Level  string
	Format string
}

type BackgroundConfig struct {
	PurgeInterval time.Duration
	// PurgeWorkers and PurgeDeleteRPS bound how stored objects are deleted.
	PurgeWorkers   int
	PurgeDeleteRPS int
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return load(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("MIGRATIONS_DIR", "migrations")
	v.SetDefault("AUTO_MIGRATE", true)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_CONNECT_TIMEOUT", 5*time.Second)
	v.SetDefault("DB_POOL_MAX_CONNS", 10)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_TTL", 600*time.Second)

	v.SetDefault("AUTH_ADMIN_ROLE", "admin")

	v.SetDefault("STORAGE_REGION", "us-east-1")
	v.SetDefault("STORAGE_UPLOAD_URL_TTL", 15*time.Minute)
	v.SetDefault("STORAGE_DOWNLOAD_URL_TTL", time.Hour)

	v.SetDefault("MAIL_ENABLED", false)
	v.SetDefault("MAIL_REGION", "us-east-1")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("PURGE_INTERVAL", 24*time.Hour)
	v.SetDefault("PURGE_WORKERS", 4)
	v.SetDefault("PURGE_DELETE_RPS", 20)
}

func load(v *viper.Viper) (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		s := strings.TrimSpace(v.GetString(key))
		if s == "" {
			missing = append(missing, key)
		}
		return s
	}
	opt := func(key string) string {
		return strings.TrimSpace(v.GetString(key))
	}

	cfg.App = AppConfig{
		AppName:       req("APP_NAME"),
		Environment:   req("APP_ENV"),
		HTTPPort:      req("HTTP_PORT"),
		MigrationsDir: opt("MIGRATIONS_DIR"),
		AutoMigrate:   v.GetBool("AUTO_MIGRATE"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:                opt("DB_HOST"),
		DBPort:                opt("DB_PORT"),
		DBName:                opt("DB_NAME"),
		DBUser:                opt("DB_USER"),
		DBPassword:            opt("DB_PASSWORD"),
		DBSSLMode:             opt("DB_SSL_MODE"),
		ConnectTimeout:        v.GetDuration("DB_CONNECT_TIMEOUT"),
		PoolMaxConns:          v.GetInt32("DB_POOL_MAX_CONNS"),
		PoolMinConns:          v.GetInt32("DB_POOL_MIN_CONNS"),
		PoolMaxConnLifetime:   v.GetDuration("DB_POOL_MAX_CONN_LIFETIME"),
		PoolMaxConnIdleTime:   v.GetDuration("DB_POOL_MAX_CONN_IDLE_TIME"),
		PoolHealthCheckPeriod: v.GetDuration("DB_POOL_HEALTH_CHECK_PERIOD"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
		TTL:      v.GetDuration("REDIS_TTL"),
	}

	cfg.Auth = AuthConfig{
		JWTSecret: req("JWT_SECRET"),
		Issuer:    opt("JWT_ISSUER"),
		AdminRole: opt("AUTH_ADMIN_ROLE"),
	}

	cfg.Storage = StorageConfig{
		Region:         opt("STORAGE_REGION"),
		Bucket:         opt("STORAGE_BUCKET"),
		Endpoint:       opt("STORAGE_ENDPOINT"),
		UploadURLTTL:   v.GetDuration("STORAGE_UPLOAD_URL_TTL"),
		DownloadURLTTL: v.GetDuration("STORAGE_DOWNLOAD_URL_TTL"),
	}

	cfg.Mail = MailConfig{
		Enabled: v.GetBool("MAIL_ENABLED"),
		Region:  opt("MAIL_REGION"),
		From:    opt("MAIL_FROM"),
	}
	if cfg.Mail.Enabled && cfg.Mail.From == "" {
		missing = append(missing, "MAIL_FROM")
	}

	cfg.Log = LogConfig{
		Level:  strings.ToLower(opt("LOG_LEVEL")),
		Format: strings.ToLower(opt("LOG_FORMAT")),
	}

	cfg.Jobs = BackgroundConfig{
		PurgeInterval:  v.GetDuration("PURGE_INTERVAL"),
		PurgeWorkers:   v.GetInt("PURGE_WORKERS"),
		PurgeDeleteRPS: v.GetInt("PURGE_DELETE_RPS"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.App.Environment, "production")
}
