package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
)

var (
	ErrStorageProviderUnknown   = errors.New("sitecms config: storage provider is invalid")
	ErrStorageDriverUnknown     = errors.New("sitecms config: storage driver is invalid")
	ErrStorageDSNRequired       = errors.New("sitecms config: storage dsn is required for the bun provider")
	ErrCacheRequiresBunStorage  = errors.New("sitecms config: repository cache requires the bun storage provider")
	ErrLoggingProviderUnknown   = errors.New("sitecms config: logging provider is invalid")
	ErrLoggingLevelInvalid      = errors.New("sitecms config: logging level is invalid")
	ErrLoggingFormatInvalid     = errors.New("sitecms config: logging format is invalid")
	ErrAuthProviderUnknown      = errors.New("sitecms config: auth provider is invalid")
	ErrFirebaseProjectRequired  = errors.New("sitecms config: firebase project id is required")
	ErrStaticTokensRequired     = errors.New("sitecms config: static auth requires at least one token")
	ErrMediaProviderUnknown     = errors.New("sitecms config: media provider is invalid")
	ErrMediaBucketRequired      = errors.New("sitecms config: gcs media provider requires a bucket")
	ErrScrollAttemptsInvalid    = errors.New("sitecms config: navigation max scroll attempts must be positive")
	ErrRenderConcurrencyInvalid = errors.New("sitecms config: rendering concurrency must be zero or positive")
)

// Config aggregates runtime settings for the site module.
type Config struct {
	SiteName   string           `yaml:"site_name"`
	Storage    StorageConfig    `yaml:"storage"`
	Cache      CacheConfig      `yaml:"cache"`
	Logging    LoggingConfig    `yaml:"logging"`
	HTTP       HTTPConfig       `yaml:"http"`
	Auth       AuthConfig       `yaml:"auth"`
	Media      MediaConfig      `yaml:"media"`
	Navigation NavigationConfig `yaml:"navigation"`
	Rendering  RenderingConfig  `yaml:"rendering"`
	Features   Features         `yaml:"features"`
}

// StorageConfig selects where content documents, enquiries and images live.
// Provider "memory" keeps everything in process; "bun" uses Driver/DSN.
type StorageConfig struct {
	Provider string `yaml:"provider"`
	Driver   string `yaml:"driver"`
	DSN      string `yaml:"dsn"`
	// AutoMigrate creates missing tables on startup.
	AutoMigrate bool `yaml:"auto_migrate"`
}

// CacheConfig toggles the repository cache around content reads.
type CacheConfig struct {
	Enabled    bool          `yaml:"enabled"`
	DefaultTTL time.Duration `yaml:"default_ttl"`
}

// LoggingConfig captures provider options for runtime logging.
type LoggingConfig struct {
	Provider  string   `yaml:"provider"`
	Level     string   `yaml:"level"`
	Format    string   `yaml:"format"`
	AddSource bool     `yaml:"add_source"`
	Focus     []string `yaml:"focus"`
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Address         string        `yaml:"address"`
	BasePath        string        `yaml:"base_path"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes"`
}

// AuthConfig selects how admin bearer tokens are verified.
type AuthConfig struct {
	Provider        string        `yaml:"provider"`
	ProjectID       string        `yaml:"project_id"`
	CredentialsFile string        `yaml:"credentials_file"`
	StaticTokens    []string      `yaml:"static_tokens"`
	VerifyTimeout   time.Duration `yaml:"verify_timeout"`
}

// MediaConfig selects the blob store used for image uploads.
type MediaConfig struct {
	Provider      string `yaml:"provider"`
	Bucket        string `yaml:"bucket"`
	Folder        string `yaml:"folder"`
	PublicBaseURL string `yaml:"public_base_url"`
}

// NavigationConfig controls route building and scroll behaviour.
type NavigationConfig struct {
	RouteConfig       *urlkit.Config `yaml:"-"`
	BaseURL           string         `yaml:"base_url"`
	HeaderOffset      float64        `yaml:"header_offset"`
	MaxScrollAttempts int            `yaml:"max_scroll_attempts"`
	FrameInterval     time.Duration  `yaml:"frame_interval"`
}

// RenderingConfig tunes page rendering.
type RenderingConfig struct {
	// Concurrency bounds parallel section resolution; zero resolves sequentially.
	Concurrency int  `yaml:"concurrency"`
	RichText    bool `yaml:"rich_text"`
}

// Features toggles optional modules.
type Features struct {
	Enquiries bool `yaml:"enquiries"`
	Media     bool `yaml:"media"`
	Events    bool `yaml:"events"`
	Logger    bool `yaml:"logger"`
}

// DefaultConfig returns settings suitable for local development.
func DefaultConfig() Config {
	return Config{
		SiteName: "sitecms",
		Storage: StorageConfig{
			Provider:    "memory",
			Driver:      "sqlite",
			AutoMigrate: true,
		},
		Cache: CacheConfig{
			Enabled:    false,
			DefaultTTL: time.Minute,
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "json",
		},
		HTTP: HTTPConfig{
			Address:         ":5000",
			BasePath:        "/api",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxUploadBytes:  10 << 20,
		},
		Auth: AuthConfig{
			Provider:      "none",
			VerifyTimeout: 5 * time.Second,
		},
		Media: MediaConfig{
			Provider: "memory",
			Folder:   "suffix_uploads",
		},
		Navigation: NavigationConfig{
			BaseURL:           "",
			HeaderOffset:      0,
			MaxScrollAttempts: 40,
			FrameInterval:     16 * time.Millisecond,
		},
		Rendering: RenderingConfig{
			Concurrency: 4,
			RichText:    true,
		},
		Features: Features{
			Enquiries: true,
			Media:     true,
			Events:    true,
			Logger:    true,
		},
	}
}

// Validate performs consistency checks across sections.
func (cfg Config) Validate() error {
	provider := normalize(cfg.Storage.Provider)
	switch provider {
	case "memory":
	case "bun":
		switch normalize(cfg.Storage.Driver) {
		case "sqlite", "sqlite3", "postgres", "pg":
		default:
			return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, cfg.Storage.Driver)
		}
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	default:
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, cfg.Storage.Provider)
	}
	if cfg.Cache.Enabled && provider != "bun" {
		return ErrCacheRequiresBunStorage
	}

	if cfg.Features.Logger {
		switch normalize(cfg.Logging.Provider) {
		case "gologger", "noop":
		default:
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Logging.Provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}

	switch normalize(cfg.Auth.Provider) {
	case "", "none":
	case "firebase":
		if strings.TrimSpace(cfg.Auth.ProjectID) == "" {
			return ErrFirebaseProjectRequired
		}
	case "static":
		if len(cfg.Auth.StaticTokens) == 0 {
			return ErrStaticTokensRequired
		}
	default:
		return fmt.Errorf("%w: %s", ErrAuthProviderUnknown, cfg.Auth.Provider)
	}

	if cfg.Features.Media {
		switch normalize(cfg.Media.Provider) {
		case "memory":
		case "gcs":
			if strings.TrimSpace(cfg.Media.Bucket) == "" {
				return ErrMediaBucketRequired
			}
		default:
			return fmt.Errorf("%w: %s", ErrMediaProviderUnknown, cfg.Media.Provider)
		}
	}

	if cfg.Navigation.MaxScrollAttempts <= 0 {
		return ErrScrollAttemptsInvalid
	}
	if cfg.Rendering.Concurrency < 0 {
		return ErrRenderConcurrencyInvalid
	}
	return nil
}

func normalize(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

func isSupportedLevel(level string) bool {
	switch normalize(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	}
	return false
}

func isSupportedFormat(format string) bool {
	switch normalize(format) {
	case "json", "console", "pretty":
		return true
	}
	return false
}
