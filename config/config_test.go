package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected bool
	}{
		{
			name: "development environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "development"},
			},
			expected: true,
		},
		{
			name: "debug gin mode",
			config: &Config{
				Server: ServerConfig{GinMode: "debug"},
			},
			expected: true,
		},
		{
			name: "production environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "production", GinMode: "release"},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.IsDevelopment())
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	assert.True(t, (&Config{Server: ServerConfig{AppEnv: "production"}}).IsProduction())
	assert.False(t, (&Config{Server: ServerConfig{AppEnv: "development"}}).IsProduction())
	assert.False(t, (&Config{Server: ServerConfig{AppEnv: "staging"}}).IsProduction())
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{
				Port:           "8081",
				BaseURL:        "https://medical2025.2024-996.tech",
				AllowedOrigins: []string{"https://medical2025.2024-996.tech"},
			},
			Mail: MailConfig{
				Endpoint: "https://api.mailchannels.net/tx/v1/send",
				To:       "inbox@example.com",
				From:     "noreply@example.com",
			},
			Locale: LocaleConfig{Default: "zh"},
		}
	}

	tests := []struct {
		name     string
		mutate   func(*Config)
		errorMsg string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:     "missing port",
			mutate:   func(c *Config) { c.Server.Port = "" },
			errorMsg: "PORT is required",
		},
		{
			name:     "missing CORS origins",
			mutate:   func(c *Config) { c.Server.AllowedOrigins = nil },
			errorMsg: "ALLOWED_CORS_ORIGINS is required",
		},
		{
			name:     "missing mail endpoint",
			mutate:   func(c *Config) { c.Mail.Endpoint = "" },
			errorMsg: "MAILCHANNELS_ENDPOINT is required",
		},
		{
			name:     "missing recipient",
			mutate:   func(c *Config) { c.Mail.To = "" },
			errorMsg: "SITE_EMAIL_TO is required",
		},
		{
			name:     "missing sender",
			mutate:   func(c *Config) { c.Mail.From = "" },
			errorMsg: "SITE_EMAIL_FROM is required",
		},
		{
			name:     "missing default locale",
			mutate:   func(c *Config) { c.Locale.Default = "" },
			errorMsg: "DEFAULT_LOCALE is required",
		},
		{
			name: "profiling enabled without endpoint",
			mutate: func(c *Config) {
				c.Profiling.Enabled = true
				c.Profiling.Endpoint = ""
			},
			errorMsg: "O11Y_PROFILING_ENDPOINT is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errorMsg != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	// Clean environment
	os.Clearenv()

	cfg, err := Load()

	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	// Check defaults
	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, "production", cfg.Server.AppEnv)
	assert.Equal(t, "https://medical2025.2024-996.tech", cfg.Server.BaseURL)
	assert.Equal(t, []string{"https://medical2025.2024-996.tech", "https://www.medical2025.2024-996.tech"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "/app/logs", cfg.Logging.Dir)
	assert.Equal(t, "https://api.mailchannels.net/tx/v1/send", cfg.Mail.Endpoint)
	assert.Equal(t, "machao2024.996@gmail.com", cfg.Mail.To)
	assert.Equal(t, "noreply@medical2025.2024-996.tech", cfg.Mail.From)
	assert.Equal(t, "MediBridge Global", cfg.Mail.FromName)
	assert.Equal(t, "zh", cfg.Locale.Default)
	assert.False(t, cfg.Profiling.Enabled)
}

func TestLoad_WithEnvironmentVariables(t *testing.T) {
	// Clean environment
	os.Clearenv()

	os.Setenv("PORT", "9000")
	os.Setenv("GIN_MODE", "debug")
	os.Setenv("APP_ENV", "development")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("ALLOWED_CORS_ORIGINS", "https://a.example, https://b.example")
	os.Setenv("MAILCHANNELS_ENDPOINT", "https://relay.example/tx/v1/send")
	os.Setenv("SITE_EMAIL_TO", "ops@example.com")
	os.Setenv("SITE_EMAIL_FROM", "noreply@example.com")
	os.Setenv("DEFAULT_LOCALE", "en")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.GinMode)
	assert.Equal(t, "development", cfg.Server.AppEnv)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "https://relay.example/tx/v1/send", cfg.Mail.Endpoint)
	assert.Equal(t, "ops@example.com", cfg.Mail.To)
	assert.Equal(t, "noreply@example.com", cfg.Mail.From)
	assert.Equal(t, "en", cfg.Locale.Default)
}
