// Package config manages environment variables.
//
// It reads variables from the `.env` file and the process environment,
// loads them into structured Go types (struct), resolves the runtime
// mode profile and validates the result so it can be reused across the
// application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Pick the mode profile (development or production) from HELLO_ENV.
//   - Map optional overrides into the structured config.
//   - Validate values so the app fails fast on bad config.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env *before* LoadConfig reads env vars.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

/*
	Env vars are read using the prefix HELLO_.

	- The prefix is removed and keys are lowercased.
	- A double underscore marks nesting, e.g.
	  HELLO_SERVER__PORT -> server.port -> Config.Server.Port
	  HELLO_OBSERVABILITY__LOGGING__LEVEL -> observability.logging.level
	- HELLO_ENV is the mode selector and the only variable the server needs.
*/

const (
	// EnvPrefix is the prefix every config variable carries.
	EnvPrefix = "HELLO_"

	EnvDevelopment = "development"
	EnvProduction  = "production"

	// ServiceName tags logs and New Relic data.
	ServiceName = "hello-api"
)

// Profile holds the fixed settings of one runtime mode.
type Profile struct {
	Port    string
	EnvName string
}

// profiles maps the mode selector to its settings. Port 8080 in production
// is for demonstration purposes only.
var profiles = map[string]Profile{
	EnvDevelopment: {Port: "3000", EnvName: EnvDevelopment},
	EnvProduction:  {Port: "8080", EnvName: EnvProduction},
}

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"..."` tags are enforced by go-playground/validator once
// the profile defaults are applied.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected for the selected environment.
type Config struct {
	Env           string               `koanf:"env" validate:"required,oneof=development production"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are in seconds. Zero disables the timeout, which is the default:
// a slow client keeps its connection until the transport closes it.
type ServerConfig struct {
	Port         string `koanf:"port" validate:"required,numeric"`
	ReadTimeout  int    `koanf:"read_timeout" validate:"gte=0"`
	WriteTimeout int    `koanf:"write_timeout" validate:"gte=0"`
	IdleTimeout  int    `koanf:"idle_timeout" validate:"gte=0"`
}

// IsProduction reports whether the production profile is active.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// ResolveProfile returns the profile for a mode selector value.
//
// Unknown or empty values fall back to development.
func ResolveProfile(envName string) Profile {
	if p, ok := profiles[strings.ToLower(strings.TrimSpace(envName))]; ok {
		return p
	}
	return profiles[EnvDevelopment]
}

// envKey turns HELLO_SERVER__PORT into server.port.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// LoadConfig loads configuration from environment variables, applies the
// profile for HELLO_ENV, fills observability defaults and validates the
// resulting config.
//
// Behavior summary:
//   - Loads env vars with prefix HELLO_
//   - Resolves the profile (unknown env -> development)
//   - Lays down profile and observability defaults
//   - Unmarshals the present keys over those defaults
//   - Validates both the struct tags and observability rules
func LoadConfig() (*Config, error) {
	// "." is the key-path delimiter koanf uses to represent nesting.
	k := koanf.New(".")

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, "could not load env variables")
	}

	// The profile has to be known before unmarshalling so that its
	// defaults can be laid down first and then overridden by whatever
	// keys are actually present.
	profile := ResolveProfile(k.String("env"))

	mainConfig := &Config{
		Server:        ServerConfig{Port: profile.Port},
		Observability: DefaultObservabilityConfig(profile.EnvName),
	}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal config")
	}

	// The raw selector may be unknown ("staging"); keep the resolved name.
	mainConfig.Env = profile.EnvName

	// Service name and environment are forced so logs and traces stay consistent.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Env

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid observability config")
	}

	return mainConfig, nil
}
