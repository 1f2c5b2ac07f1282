package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const envPrefix = "FOODHUB_"

type Config struct {
	Env         string        `koanf:"env"`
	Port        int           `koanf:"port"`
	DatabaseDSN string        `koanf:"database_dsn"`
	BcryptCost  int           `koanf:"bcrypt_cost"`
	SessionTTL  time.Duration `koanf:"session_ttl"`
	LogLevel    string        `koanf:"log_level"`
}

// Load reads config.yaml (if present) and FOODHUB_* environment
// variables, env taking precedence. Unset keys keep their defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Env:         "debug",
		Port:        5000,
		DatabaseDSN: "foodhub.db",
		BcryptCost:  12,
		SessionTTL:  7 * 24 * time.Hour,
		LogLevel:    "info",
	}

	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, errors.Wrapf(err, "read config %s", path)
			}
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			// FOODHUB_SESSION_TTL -> session_ttl
			return strings.ToLower(strings.TrimPrefix(key, envPrefix)), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables")
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			TagName:          "koanf",
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	return cfg, nil
}

// IsRelease reports whether the server runs in release mode; 500 responses
// hide error detail when it does.
func (c *Config) IsRelease() bool {
	return c.Env == "release" || c.Env == "production"
}
