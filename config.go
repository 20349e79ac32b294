package sitecms

import "github.com/goliatone/go-sitecms/internal/runtimeconfig"

var (
	ErrStorageProviderUnknown   = runtimeconfig.ErrStorageProviderUnknown
	ErrStorageDriverUnknown     = runtimeconfig.ErrStorageDriverUnknown
	ErrStorageDSNRequired       = runtimeconfig.ErrStorageDSNRequired
	ErrCacheRequiresBunStorage  = runtimeconfig.ErrCacheRequiresBunStorage
	ErrLoggingProviderUnknown   = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid      = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid     = runtimeconfig.ErrLoggingFormatInvalid
	ErrAuthProviderUnknown      = runtimeconfig.ErrAuthProviderUnknown
	ErrFirebaseProjectRequired  = runtimeconfig.ErrFirebaseProjectRequired
	ErrStaticTokensRequired     = runtimeconfig.ErrStaticTokensRequired
	ErrMediaProviderUnknown     = runtimeconfig.ErrMediaProviderUnknown
	ErrMediaBucketRequired      = runtimeconfig.ErrMediaBucketRequired
	ErrScrollAttemptsInvalid    = runtimeconfig.ErrScrollAttemptsInvalid
	ErrRenderConcurrencyInvalid = runtimeconfig.ErrRenderConcurrencyInvalid
)

type (
	Config           = runtimeconfig.Config
	StorageConfig    = runtimeconfig.StorageConfig
	CacheConfig      = runtimeconfig.CacheConfig
	LoggingConfig    = runtimeconfig.LoggingConfig
	HTTPConfig       = runtimeconfig.HTTPConfig
	AuthConfig       = runtimeconfig.AuthConfig
	MediaConfig      = runtimeconfig.MediaConfig
	NavigationConfig = runtimeconfig.NavigationConfig
	RenderingConfig  = runtimeconfig.RenderingConfig
	Features         = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads path over DefaultConfig and applies SITECMS_* overrides.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.Load(path)
}
