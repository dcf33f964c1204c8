package arbiter

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	ctx := context.Background()
	testCases := []struct {
		description string
		file        string
		env         map[string]string
		expect      func(t *testing.T, config *Config)
	}{
		{
			description: "defaults",
			expect: func(t *testing.T, config *Config) {
				assert.Equal(t, DefaultConfig(), config)
			},
		},
		{
			description: "yaml",
			file:        "config.yaml",
			expect: func(t *testing.T, config *Config) {
				assert.Equal(t, 10*time.Millisecond, config.Scheduler.Period)
				assert.False(t, config.Scheduler.WarnOnOverrun)
				assert.Equal(t, "mem://localhost/routines", config.Routines.BaseURL)
				assert.Equal(t, 5, config.Log.MaxBackups)
				assert.Equal(t, 10, config.Log.MaxSizeMB)
			},
		},
		{
			description: "toml",
			file:        "config.toml",
			expect: func(t *testing.T, config *Config) {
				assert.Equal(t, 40*time.Millisecond, config.Scheduler.Period)
				assert.True(t, config.Scheduler.StartDisabled)
				assert.True(t, config.Scheduler.WarnOnOverrun)
				assert.Equal(t, "file:///var/arbiter/routines", config.Routines.BaseURL)
			},
		},
		{
			description: "environment overrides file",
			file:        "config.yaml",
			env: map[string]string{
				"ARBITER_SCHEDULER_PERIOD":  "5ms",
				"ARBITER_TRACING_ENABLED":   "true",
				"ARBITER_LOG_FILE":          "/tmp/arbiter.log",
				"ARBITER_ROUTINES_BASE_URL": "mem://localhost/other",
			},
			expect: func(t *testing.T, config *Config) {
				assert.Equal(t, 5*time.Millisecond, config.Scheduler.Period)
				assert.True(t, config.Tracing.Enabled)
				assert.Equal(t, "/tmp/arbiter.log", config.Log.File)
				assert.Equal(t, "mem://localhost/other", config.Routines.BaseURL)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			URL := ""
			if tc.file != "" {
				location, err := filepath.Abs(filepath.Join("testdata", tc.file))
				require.NoError(t, err)
				URL = location
			}
			config, err := LoadConfig(ctx, URL)
			require.NoError(t, err)
			tc.expect(t, config)
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	ctx := context.Background()
	_, err := LoadConfig(ctx, "mem://localhost/missing.yaml")
	assert.Error(t, err)

	t.Setenv("ARBITER_SCHEDULER_PERIOD", "-1s")
	_, err = LoadConfig(ctx, "")
	assert.ErrorContains(t, err, "scheduler.period must be >= 0")
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		description string
		mutate      func(c *Config)
		expectErr   bool
	}{
		{description: "default", mutate: func(c *Config) {}},
		{description: "negative period", mutate: func(c *Config) { c.Scheduler.Period = -time.Millisecond }, expectErr: true},
		{description: "tracing without name", mutate: func(c *Config) { c.Tracing.Enabled = true; c.Tracing.ServiceName = "" }, expectErr: true},
		{description: "negative backups", mutate: func(c *Config) { c.Log.MaxBackups = -1 }, expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			config := DefaultConfig()
			tc.mutate(config)
			err := config.Validate()
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
	var nilConfig *Config
	assert.NoError(t, nilConfig.Validate())
}
