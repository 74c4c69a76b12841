package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Session  SessionConfig
	Compress CompressConfig
	Resize   ResizeConfig
	Upload   UploadConfig
	Storage  StorageConfig
	Watch    WatchConfig
	Metrics  MetricsConfig
}

type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"127.0.0.1" validate:"required"`
	Port            int           `envconfig:"SERVER_PORT" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"2m"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	Format         string `envconfig:"LOG_FORMAT" default:"json" validate:"oneof=json console"`
	File           string `envconfig:"LOG_FILE"`
	FileMaxSizeMB  int    `envconfig:"LOG_FILE_MAX_SIZE_MB" default:"50" validate:"min=1"`
	FileMaxBackups int    `envconfig:"LOG_FILE_MAX_BACKUPS" default:"3" validate:"min=0"`
	FileMaxAgeDays int    `envconfig:"LOG_FILE_MAX_AGE_DAYS" default:"14" validate:"min=0"`
}

type SessionConfig struct {
	DefaultTool    string `envconfig:"SESSION_DEFAULT_TOOL" default:"compress" validate:"oneof=compress resize"`
	DefaultQuality int    `envconfig:"SESSION_DEFAULT_QUALITY" default:"80" validate:"min=10,max=100"`
	AspectLocked   bool   `envconfig:"SESSION_ASPECT_LOCKED" default:"true"`
	AutoApply      bool   `envconfig:"SESSION_AUTO_APPLY" default:"true"`
}

type CompressConfig struct {
	MaxSizeMB     float64 `envconfig:"COMPRESS_MAX_SIZE_MB" default:"1" validate:"gt=0"`
	MaxEdge       int     `envconfig:"COMPRESS_MAX_EDGE" default:"1920" validate:"min=1"`
	MaxIterations int     `envconfig:"COMPRESS_MAX_ITERATIONS" default:"10" validate:"min=0,max=50"`
}

func (c CompressConfig) MaxSizeBytes() int64 {
	return int64(c.MaxSizeMB * 1024 * 1024)
}

type ResizeConfig struct {
	Backend     string `envconfig:"RESIZE_BACKEND" default:"imaging" validate:"oneof=imaging xdraw nfnt"`
	Filter      string `envconfig:"RESIZE_FILTER" default:"lanczos" validate:"oneof=lanczos catmullrom linear nearest"`
	JPEGQuality int    `envconfig:"RESIZE_JPEG_QUALITY" default:"92" validate:"min=1,max=100"`
	MaxEdge     int    `envconfig:"RESIZE_MAX_EDGE" default:"10000" validate:"min=1"`
}

type UploadConfig struct {
	MaxBytes  int64 `envconfig:"UPLOAD_MAX_BYTES" default:"26214400" validate:"min=1"`
	MaxPixels int   `envconfig:"UPLOAD_MAX_PIXELS" default:"50000000" validate:"min=1"`
}

type StorageConfig struct {
	ArtifactURLPrefix string `envconfig:"ARTIFACT_URL_PREFIX" default:"/api/v1/artifacts"`
	DownloadDir       string `envconfig:"DOWNLOAD_DIR"`
}

type WatchConfig struct {
	Dir    string        `envconfig:"WATCH_DIR"`
	Settle time.Duration `envconfig:"WATCH_SETTLE" default:"500ms"`
}

type MetricsConfig struct {
	Enabled bool `envconfig:"METRICS_ENABLED" default:"true"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}
