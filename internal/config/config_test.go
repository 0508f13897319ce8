package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsToDevelopment(t *testing.T) {
	t.Setenv("HELLO_ENV", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.False(t, cfg.IsProduction())
	assert.Zero(t, cfg.Server.ReadTimeout)
	assert.Zero(t, cfg.Server.WriteTimeout)
	assert.Zero(t, cfg.Server.IdleTimeout)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, EnvDevelopment, cfg.Observability.Environment)
	assert.Equal(t, "debug", cfg.Observability.GetLogLevel())
	assert.Equal(t, "console", cfg.Observability.Logging.Format)
	assert.False(t, cfg.Observability.NewRelicEnabled())
}

func TestLoadConfig_Production(t *testing.T) {
	t.Setenv("HELLO_ENV", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.Observability.IsProduction())
	assert.Equal(t, "info", cfg.Observability.GetLogLevel())
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
}

func TestLoadConfig_UnknownEnvFallsBack(t *testing.T) {
	t.Setenv("HELLO_ENV", "staging")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "3000", cfg.Server.Port)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("HELLO_ENV", "production")
	t.Setenv("HELLO_SERVER__PORT", "9090")
	t.Setenv("HELLO_SERVER__IDLE_TIMEOUT", "30")
	t.Setenv("HELLO_OBSERVABILITY__LOGGING__LEVEL", "warn")
	t.Setenv("HELLO_OBSERVABILITY__NEW_RELIC__LICENSE_KEY", "abc")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 30, cfg.Server.IdleTimeout)
	assert.Equal(t, "warn", cfg.Observability.GetLogLevel())
	// Untouched keys keep the production defaults.
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
	assert.True(t, cfg.Observability.NewRelic.AppLogForwardingEnabled)
	assert.True(t, cfg.Observability.NewRelicEnabled())
}

func TestLoadConfig_InvalidLevel(t *testing.T) {
	t.Setenv("HELLO_ENV", "development")
	t.Setenv("HELLO_OBSERVABILITY__LOGGING__LEVEL", "loud")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging level")
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	t.Setenv("HELLO_SERVER__PORT", "http")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestResolveProfile(t *testing.T) {
	tests := []struct {
		in   string
		want Profile
	}{
		{"development", Profile{Port: "3000", EnvName: EnvDevelopment}},
		{"production", Profile{Port: "8080", EnvName: EnvProduction}},
		{"PRODUCTION", Profile{Port: "8080", EnvName: EnvProduction}},
		{"", Profile{Port: "3000", EnvName: EnvDevelopment}},
		{"test", Profile{Port: "3000", EnvName: EnvDevelopment}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveProfile(tt.in))
		})
	}
}

func TestObservabilityConfig_Validate(t *testing.T) {
	cfg := DefaultObservabilityConfig(EnvDevelopment)
	require.NoError(t, cfg.Validate())

	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig(EnvDevelopment)
	cfg.ServiceName = ""
	assert.Error(t, cfg.Validate())
}
