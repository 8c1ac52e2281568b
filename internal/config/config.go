package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config aggregates application settings sourced from environment variables and an optional .env file.
type Config struct {
	HTTP   HTTPConfig   `mapstructure:"http"`
	Log    LogConfig    `mapstructure:"log"`
	Redis  RedisConfig  `mapstructure:"redis"`
	MinIO  MinIOConfig  `mapstructure:"minio"`
	Export ExportConfig `mapstructure:"export"`
}

// HTTPConfig contains HTTP server settings.
type HTTPConfig struct {
	Port int `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// RedisConfig 包含 Redis 连接配置，导出队列与通知频道共用。
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// MinIOConfig contains connection options for MinIO/S3-compatible storage.
type MinIOConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	Bucket          string `mapstructure:"bucket"`
}

// ExportConfig 控制异步导出。Enabled 为 false 时导出接口只返回提示文案。
type ExportConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Concurrency int           `mapstructure:"concurrency"`
	Timeout     time.Duration `mapstructure:"timeout"`
	LinkTTL     time.Duration `mapstructure:"link_ttl"`
	MaxRetry    int           `mapstructure:"max_retry"`
}

// SlogLevel 把配置中的日志级别转换为 slog.Level，未知值按 info 处理。
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Load reads configuration from the environment. A .env file in the working directory is applied first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad wraps Load and panics on failure.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.use_ssl", false)
	v.SetDefault("minio.bucket", "resume-exports")
	v.SetDefault("export.enabled", false)
	v.SetDefault("export.concurrency", 2)
	v.SetDefault("export.timeout", "60s")
	v.SetDefault("export.link_ttl", "15m")
	v.SetDefault("export.max_retry", 3)
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"http.port":               "HTTP_PORT",
		"log.level":               "LOG_LEVEL",
		"redis.addr":              "REDIS_ADDR",
		"redis.password":          "REDIS_PASSWORD",
		"redis.db":                "REDIS_DB",
		"minio.endpoint":          "MINIO_ENDPOINT",
		"minio.access_key_id":     "MINIO_ACCESS_KEY_ID",
		"minio.secret_access_key": "MINIO_SECRET_ACCESS_KEY",
		"minio.use_ssl":           "MINIO_USE_SSL",
		"minio.bucket":            "MINIO_BUCKET",
		"export.enabled":          "EXPORT_ENABLED",
		"export.concurrency":      "EXPORT_CONCURRENCY",
		"export.timeout":          "EXPORT_TIMEOUT",
		"export.link_ttl":         "EXPORT_LINK_TTL",
		"export.max_retry":        "EXPORT_MAX_RETRY",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}

	return nil
}

func validate(cfg Config) error {
	if cfg.HTTP.Port <= 0 {
		return errors.New("http port must be positive")
	}
	if !cfg.Export.Enabled {
		return nil
	}
	return cfg.ValidateExport()
}

// ValidateExport 校验导出链路（Redis、MinIO、队列）所需的配置。
// API 只在开启导出时校验，worker 启动时总是校验。
func (cfg Config) ValidateExport() error {
	if cfg.Redis.Addr == "" {
		return errors.New("redis addr is required for export")
	}
	if cfg.MinIO.Endpoint == "" {
		return errors.New("minio endpoint is required for export")
	}
	if cfg.MinIO.AccessKeyID == "" {
		return errors.New("minio access key id is required for export")
	}
	if cfg.MinIO.SecretAccessKey == "" {
		return errors.New("minio secret access key is required for export")
	}
	if cfg.MinIO.Bucket == "" {
		return errors.New("minio bucket is required for export")
	}
	if cfg.Export.Concurrency <= 0 {
		return errors.New("export concurrency must be positive")
	}
	if cfg.Export.Timeout <= 0 {
		return errors.New("export timeout must be positive")
	}
	return nil
}
