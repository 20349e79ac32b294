package runtimeconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "SITECMS_"

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Load reads a YAML file layered over DefaultConfig, applies SITECMS_*
// environment overrides and validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("sitecms config: read %s: %w", path, err)
		}
		if cfg, err = Decode(bytes.NewReader(data), cfg); err != nil {
			return Config{}, err
		}
	}
	cfg = ApplyEnv(cfg, os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode unmarshals YAML from r over base. Keys missing from the document keep
// their base values.
func Decode(r io.Reader, base Config) (Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&base); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("sitecms config: decode: %w", err)
	}
	return base, nil
}

// ApplyEnv overrides selected fields from the environment.
func ApplyEnv(cfg Config, lookup LookupFunc) Config {
	if lookup == nil {
		return cfg
	}
	str := func(name string, target *string) {
		if v, ok := lookup(EnvPrefix + name); ok && strings.TrimSpace(v) != "" {
			*target = strings.TrimSpace(v)
		}
	}

	str("SITE_NAME", &cfg.SiteName)
	str("STORAGE_PROVIDER", &cfg.Storage.Provider)
	str("STORAGE_DRIVER", &cfg.Storage.Driver)
	str("DSN", &cfg.Storage.DSN)
	str("HTTP_ADDR", &cfg.HTTP.Address)
	str("LOG_LEVEL", &cfg.Logging.Level)
	str("LOG_FORMAT", &cfg.Logging.Format)
	str("AUTH_PROVIDER", &cfg.Auth.Provider)
	str("FIREBASE_PROJECT_ID", &cfg.Auth.ProjectID)
	str("FIREBASE_CREDENTIALS", &cfg.Auth.CredentialsFile)
	str("MEDIA_PROVIDER", &cfg.Media.Provider)
	str("GCS_BUCKET", &cfg.Media.Bucket)

	if v, ok := lookup(EnvPrefix + "STATIC_TOKENS"); ok {
		tokens := []string{}
		for _, token := range strings.Split(v, ",") {
			if token = strings.TrimSpace(token); token != "" {
				tokens = append(tokens, token)
			}
		}
		if len(tokens) > 0 {
			cfg.Auth.StaticTokens = tokens
		}
	}
	if v, ok := lookup(EnvPrefix + "CACHE_ENABLED"); ok {
		if enabled, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			cfg.Cache.Enabled = enabled
		}
	}
	return cfg
}
