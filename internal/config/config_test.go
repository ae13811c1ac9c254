package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// loadConfigFromYAML reads yaml the way the root command does: defaults first,
// then the file on top.
func loadConfigFromYAML(t *testing.T, content string) Config {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(configPath)
	require.NoError(t, v.ReadInConfig())

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	return cfg
}

func TestDefaults_AreValid(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "New Recording", cfg.Recording.DefaultLabel)
	assert.Equal(t, filepath.Join(cfg.DataDir, "soundboard.db"), cfg.DBPath())
	assert.Equal(t, filepath.Join(cfg.DataDir, "recordings"), cfg.RecordingsPath())
}

func TestDefaultConfigTemplate_MatchesDefaults(t *testing.T) {
	cfg := loadConfigFromYAML(t, DefaultConfigTemplate())
	want := Defaults()

	assert.Equal(t, want, cfg)
}

func TestLoad_Overrides(t *testing.T) {
	cfg := loadConfigFromYAML(t, `
data_dir: /srv/sounds
recordings_dir: /srv/takes
auto_refresh: false
auto_refresh_debounce: 2s
playback:
  sample_rate: 48000
recording:
  default_label: Memo
  channels: 2
  device: USB
  microphone_allowed: false
picker:
  native: false
tracing:
  exporter: stdout
  file: /tmp/t.json
`)

	assert.Equal(t, "/srv/sounds", cfg.DataDir)
	assert.Equal(t, "/srv/takes", cfg.RecordingsPath())
	assert.False(t, cfg.AutoRefresh)
	assert.Equal(t, 2*time.Second, cfg.AutoRefreshDebounce)
	assert.Equal(t, 48000, cfg.Playback.SampleRate)
	assert.Equal(t, 10*time.Minute, cfg.Playback.CacheTTL, "unset keys keep defaults")
	assert.Equal(t, "Memo", cfg.Recording.DefaultLabel)
	assert.Equal(t, 2, cfg.Recording.Channels)
	assert.Equal(t, "USB", cfg.Recording.Device)
	assert.False(t, cfg.Recording.MicrophoneAllowed)
	assert.False(t, cfg.Picker.Native)
	assert.Equal(t, "stdout", cfg.Tracing.Exporter)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing data dir", func(c *Config) { c.DataDir = "" }, "data_dir is required"},
		{"negative debounce", func(c *Config) { c.AutoRefreshDebounce = -time.Second }, "auto_refresh_debounce"},
		{"negative playback rate", func(c *Config) { c.Playback.SampleRate = -1 }, "playback.sample_rate"},
		{"negative recording rate", func(c *Config) { c.Recording.SampleRate = -1 }, "recording.sample_rate"},
		{"too many channels", func(c *Config) { c.Recording.Channels = 6 }, "recording.channels"},
		{"bad exporter", func(c *Config) { c.Tracing.Exporter = "jaeger" }, "tracing.exporter"},
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			require.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := Defaults()
	cfg.DataDir = ""
	cfg.Tracing.Exporter = "bogus"

	err := cfg.Validate()
	require.ErrorContains(t, err, "data_dir")
	require.ErrorContains(t, err, "tracing.exporter")
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfigTemplate(), string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestDefaultDataDir_HonorsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	assert.Equal(t, filepath.Join("/xdg/data", "soundboard"), DefaultDataDir())
}

func TestConfig_MarshalsYAMLKeys(t *testing.T) {
	cfg := Defaults()
	cfg.Recording.Device = "USB"

	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), "microphone_allowed: true")
	assert.Contains(t, string(out), "device: USB")
}
