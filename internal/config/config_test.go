package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that default values load when only credentials are set.
func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)
	setCredentials(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port, "default server port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "10s", cfg.Server.WriteTimeout.String(), "default write timeout")

	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
	assert.Equal(t, "json", cfg.Logging.Format, "default log format")
	assert.False(t, cfg.Logging.Caller, "default log caller")

	assert.Equal(t, "development", cfg.App.Env, "default app environment")
	assert.Equal(t, "UTC", cfg.App.Timezone, "default timezone")

	assert.Equal(t, "https://test.api.amadeus.com", cfg.Amadeus.BaseURL, "default API host")
	assert.Equal(t, "test-id", cfg.Amadeus.ClientID)
	assert.Equal(t, "test-secret", cfg.Amadeus.ClientSecret)
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)
	setCredentials(t)

	setEnvVars(t, map[string]string{
		"SERVER_PORT":          "3000",
		"SERVER_READ_TIMEOUT":  "30s",
		"SERVER_WRITE_TIMEOUT": "1m30s",
		"LOG_LEVEL":            "debug",
		"LOG_FORMAT":           "console",
		"LOG_CALLER":           "true",
		"APP_ENV":              "production",
		"APP_TIMEZONE":         "America/New_York",
		"AMADEUS_BASE_URL":     "https://api.amadeus.com",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "30s", cfg.Server.ReadTimeout.String())
	assert.Equal(t, "1m30s", cfg.Server.WriteTimeout.String())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Caller)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "America/New_York", cfg.App.Timezone)
	assert.Equal(t, "https://api.amadeus.com", cfg.Amadeus.BaseURL)
}

// TestLoad_MissingCredentials tests that both API credentials are required.
func TestLoad_MissingCredentials(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		missing string
	}{
		{
			name:    "no client id",
			vars:    map[string]string{"AMADEUS_CLIENT_SECRET": "s"},
			missing: "AMADEUS_CLIENT_ID",
		},
		{
			name:    "no client secret",
			vars:    map[string]string{"AMADEUS_CLIENT_ID": "id"},
			missing: "AMADEUS_CLIENT_SECRET",
		},
		{
			name:    "empty client id",
			vars:    map[string]string{"AMADEUS_CLIENT_ID": "", "AMADEUS_CLIENT_SECRET": "s"},
			missing: "AMADEUS_CLIENT_ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, tt.vars)

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.missing)
			assert.Nil(t, cfg)
		})
	}
}

// TestLoad_Validation_PortRange tests port validation boundaries.
func TestLoad_Validation_PortRange(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		wantErr bool
	}{
		{"valid port 1", "1", false},
		{"valid port 8080", "8080", false},
		{"valid port 65535", "65535", false},
		{"invalid port 0", "0", true},
		{"invalid port negative", "-1", true},
		{"invalid port too high", "65536", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setCredentials(t)
			setEnvVars(t, map[string]string{"SERVER_PORT": tt.port})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "SERVER_PORT must be between 1 and 65535")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_PositiveTimeouts tests that server timeouts must be positive.
func TestLoad_Validation_PositiveTimeouts(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
	}{
		{"zero read timeout", "SERVER_READ_TIMEOUT", "0s"},
		{"negative read timeout", "SERVER_READ_TIMEOUT", "-1s"},
		{"zero write timeout", "SERVER_WRITE_TIMEOUT", "0s"},
		{"negative write timeout", "SERVER_WRITE_TIMEOUT", "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setCredentials(t)
			setEnvVars(t, map[string]string{tt.envVar: tt.value})

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.envVar+" must be positive")
			assert.Nil(t, cfg)
		})
	}
}

// TestLoad_Validation_Enums tests the enumerated settings.
func TestLoad_Validation_Enums(t *testing.T) {
	tests := []struct {
		name    string
		envVar  string
		value   string
		wantErr bool
	}{
		{"level debug", "LOG_LEVEL", "debug", false},
		{"level error", "LOG_LEVEL", "error", false},
		{"level trace", "LOG_LEVEL", "trace", true},
		{"level fatal", "LOG_LEVEL", "fatal", true},
		{"format json", "LOG_FORMAT", "json", false},
		{"format console", "LOG_FORMAT", "console", false},
		{"format text", "LOG_FORMAT", "text", true},
		{"env staging", "APP_ENV", "staging", false},
		{"env local", "APP_ENV", "local", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setCredentials(t)
			setEnvVars(t, map[string]string{tt.envVar: tt.value})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.envVar+" must be one of")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_Timezone tests APP_TIMEZONE must be loadable.
func TestLoad_Validation_Timezone(t *testing.T) {
	clearEnvVars(t)
	setCredentials(t)
	setEnvVars(t, map[string]string{"APP_TIMEZONE": "Mars/Olympus_Mons"})

	cfg, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_TIMEZONE")
	assert.Nil(t, cfg)
}

// TestLoad_Validation_BaseURL tests AMADEUS_BASE_URL must be absolute http(s).
func TestLoad_Validation_BaseURL(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"https", "https://api.amadeus.com", false},
		{"http with port", "http://localhost:9090", false},
		{"no scheme", "api.amadeus.com", true},
		{"ftp", "ftp://api.amadeus.com", true},
		{"no host", "https://", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setCredentials(t)
			setEnvVars(t, map[string]string{"AMADEUS_BASE_URL": tt.value})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "AMADEUS_BASE_URL")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, cfg.Amadeus.BaseURL)
		})
	}
}

// TestMustLoad tests MustLoad succeeds with valid config and panics otherwise.
func TestMustLoad(t *testing.T) {
	clearEnvVars(t)
	setCredentials(t)

	assert.NotPanics(t, func() {
		assert.NotNil(t, MustLoad())
	})

	setEnvVars(t, map[string]string{"SERVER_PORT": "0"})
	assert.Panics(t, func() {
		MustLoad()
	})
}

// TestConfig_EnvHelpers tests IsDevelopment and IsProduction.
func TestConfig_EnvHelpers(t *testing.T) {
	tests := []struct {
		env    string
		isDev  bool
		isProd bool
	}{
		{"development", true, false},
		{"staging", false, false},
		{"production", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := &Config{App: AppConfig{Env: tt.env}}
			assert.Equal(t, tt.isDev, cfg.IsDevelopment())
			assert.Equal(t, tt.isProd, cfg.IsProduction())
		})
	}
}

func TestConfig_Location(t *testing.T) {
	cfg := &Config{App: AppConfig{Timezone: "Asia/Tokyo"}}
	assert.Equal(t, "Asia/Tokyo", cfg.Location().String())

	cfg = &Config{App: AppConfig{Timezone: "nowhere"}}
	assert.Equal(t, "UTC", cfg.Location().String())
}

func TestConfig_LoggerConfig(t *testing.T) {
	cfg := &Config{Logging: LoggingConfig{Level: "warn", Format: "console", Caller: true}}

	lc := cfg.LoggerConfig()
	assert.Equal(t, "warn", lc.Level)
	assert.Equal(t, "console", lc.Format)
	assert.True(t, lc.EnableCaller)
	assert.Equal(t, "flight-price-optimizer", lc.ServiceName)
}

// Helper functions

var configEnvVars = []string{
	"SERVER_PORT",
	"SERVER_READ_TIMEOUT",
	"SERVER_WRITE_TIMEOUT",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"LOG_CALLER",
	"APP_ENV",
	"APP_TIMEZONE",
	"AMADEUS_BASE_URL",
	"AMADEUS_CLIENT_ID",
	"AMADEUS_CLIENT_SECRET",
}

// clearEnvVars unsets all config-related environment variables for the test
// and restores them afterwards.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, v := range configEnvVars {
		if old, ok := os.LookupEnv(v); ok {
			t.Cleanup(func() { os.Setenv(v, old) })
		} else {
			t.Cleanup(func() { os.Unsetenv(v) })
		}
		os.Unsetenv(v)
	}
}

// setEnvVars sets multiple environment variables.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		os.Setenv(k, v)
	}
}

func setCredentials(t *testing.T) {
	t.Helper()
	setEnvVars(t, map[string]string{
		"AMADEUS_CLIENT_ID":     "test-id",
		"AMADEUS_CLIENT_SECRET": "test-secret",
	})
}
