// Package config provides configuration types and defaults for soundboard.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration options for soundboard.
type Config struct {
	DataDir             string          `mapstructure:"data_dir" yaml:"data_dir"`
	RecordingsDir       string          `mapstructure:"recordings_dir" yaml:"recordings_dir"`
	AutoRefresh         bool            `mapstructure:"auto_refresh" yaml:"auto_refresh"`
	AutoRefreshDebounce time.Duration   `mapstructure:"auto_refresh_debounce" yaml:"auto_refresh_debounce"`
	Playback            PlaybackConfig  `mapstructure:"playback" yaml:"playback"`
	Recording           RecordingConfig `mapstructure:"recording" yaml:"recording"`
	Picker              PickerConfig    `mapstructure:"picker" yaml:"picker"`
	UI                  UIConfig        `mapstructure:"ui" yaml:"ui"`
	Log                 LogConfig       `mapstructure:"log" yaml:"log"`
	Tracing             TracingConfig   `mapstructure:"tracing" yaml:"tracing"`
}

// PlaybackConfig configures the audio output context.
type PlaybackConfig struct {
	SampleRate int           `mapstructure:"sample_rate" yaml:"sample_rate"`
	CacheTTL   time.Duration `mapstructure:"cache_ttl" yaml:"cache_ttl"` // how long decoded clips stay in memory
}

// RecordingConfig configures microphone capture.
type RecordingConfig struct {
	DefaultLabel      string `mapstructure:"default_label" yaml:"default_label"`
	SampleRate        int    `mapstructure:"sample_rate" yaml:"sample_rate"`
	Channels          int    `mapstructure:"channels" yaml:"channels"`
	Device            string `mapstructure:"device" yaml:"device"` // substring of the capture device name
	MicrophoneAllowed bool   `mapstructure:"microphone_allowed" yaml:"microphone_allowed"`
}

// PickerConfig configures the import file picker.
type PickerConfig struct {
	Native bool   `mapstructure:"native" yaml:"native"` // use the system file dialog
	Dir    string `mapstructure:"dir" yaml:"dir"`       // initial directory of the dialog
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowStatusBar bool   `mapstructure:"show_status_bar" yaml:"show_status_bar"`
	Theme         string `mapstructure:"theme" yaml:"theme"` // "default" or "high-contrast"
}

// LogConfig configures the debug log file.
type LogConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	File       string `mapstructure:"file" yaml:"file"` // empty disables logging
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
}

// TracingConfig configures OpenTelemetry export.
type TracingConfig struct {
	Exporter string `mapstructure:"exporter" yaml:"exporter"` // none, stdout or otlp
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
	File     string `mapstructure:"file" yaml:"file"`
}

// DatabaseFile is the SQLite file name inside DataDir.
const DatabaseFile = "soundboard.db"

// DBPath returns the database file path.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, DatabaseFile)
}

// RecordingsPath returns where recordings are written, defaulting to DataDir/recordings.
func (c Config) RecordingsPath() string {
	if c.RecordingsDir != "" {
		return c.RecordingsDir
	}
	return filepath.Join(c.DataDir, "recordings")
}

// Validate checks configuration for errors.
func (c Config) Validate() error {
	var errs []error
	if c.DataDir == "" {
		errs = append(errs, errors.New("data_dir is required"))
	}
	if c.AutoRefreshDebounce < 0 {
		errs = append(errs, fmt.Errorf("auto_refresh_debounce must not be negative, got %s", c.AutoRefreshDebounce))
	}
	if c.Playback.SampleRate < 0 {
		errs = append(errs, fmt.Errorf("playback.sample_rate must not be negative, got %d", c.Playback.SampleRate))
	}
	if c.Recording.SampleRate < 0 {
		errs = append(errs, fmt.Errorf("recording.sample_rate must not be negative, got %d", c.Recording.SampleRate))
	}
	if c.Recording.Channels < 0 || c.Recording.Channels > 2 {
		errs = append(errs, fmt.Errorf("recording.channels must be 1 or 2, got %d", c.Recording.Channels))
	}
	switch c.Tracing.Exporter {
	case "", "none", "stdout", "otlp":
	default:
		errs = append(errs, fmt.Errorf("tracing.exporter must be none, stdout or otlp, got %q", c.Tracing.Exporter))
	}
	switch c.UI.Theme {
	case "", "default", "high-contrast":
	default:
		errs = append(errs, fmt.Errorf("ui.theme must be default or high-contrast, got %q", c.UI.Theme))
	}
	return errors.Join(errs...)
}

// DefaultDataDir returns ~/.local/share/soundboard, or a relative directory
// when the home directory cannot be determined.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "soundboard")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".soundboard"
	}
	return filepath.Join(home, ".local", "share", "soundboard")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	dataDir := DefaultDataDir()
	return Config{
		DataDir:             dataDir,
		AutoRefresh:         true,
		AutoRefreshDebounce: 250 * time.Millisecond,
		Playback: PlaybackConfig{
			SampleRate: 44100,
			CacheTTL:   10 * time.Minute,
		},
		Recording: RecordingConfig{
			DefaultLabel:      "New Recording",
			SampleRate:        44100,
			Channels:          1,
			MicrophoneAllowed: true,
		},
		Picker: PickerConfig{
			Native: true,
		},
		UI: UIConfig{
			ShowStatusBar: true,
			Theme:         "default",
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Tracing: TracingConfig{
			Exporter: "none",
			Endpoint: "localhost:4317",
		},
	}
}

// SetDefaults registers every key of Defaults on v so partial config files
// and environment overrides merge over them.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("recordings_dir", d.RecordingsDir)
	v.SetDefault("auto_refresh", d.AutoRefresh)
	v.SetDefault("auto_refresh_debounce", d.AutoRefreshDebounce)
	v.SetDefault("playback.sample_rate", d.Playback.SampleRate)
	v.SetDefault("playback.cache_ttl", d.Playback.CacheTTL)
	v.SetDefault("recording.default_label", d.Recording.DefaultLabel)
	v.SetDefault("recording.sample_rate", d.Recording.SampleRate)
	v.SetDefault("recording.channels", d.Recording.Channels)
	v.SetDefault("recording.device", d.Recording.Device)
	v.SetDefault("recording.microphone_allowed", d.Recording.MicrophoneAllowed)
	v.SetDefault("picker.native", d.Picker.Native)
	v.SetDefault("picker.dir", d.Picker.Dir)
	v.SetDefault("ui.show_status_bar", d.UI.ShowStatusBar)
	v.SetDefault("ui.theme", d.UI.Theme)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.endpoint", d.Tracing.Endpoint)
	v.SetDefault("tracing.file", d.Tracing.File)
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Soundboard Configuration

# Where the sound database lives (default: ~/.local/share/soundboard)
# data_dir: /path/to/data

# Where new recordings are written (default: <data_dir>/recordings)
# recordings_dir: /path/to/recordings

# Reload the board when another soundboard process changes the database
auto_refresh: true
auto_refresh_debounce: 250ms

playback:
  sample_rate: 44100   # output sample rate in Hz
  cache_ttl: 10m       # how long decoded clips stay in memory

recording:
  default_label: New Recording
  sample_rate: 44100
  channels: 1
  # device: USB          # capture device name (substring match); empty uses the default
  microphone_allowed: true

picker:
  native: true           # use the system file dialog for imports
  # dir: ~/Music

ui:
  show_status_bar: true
  theme: default         # default or high-contrast

log:
  level: info            # debug, info, warn, error
  # file: ~/.local/state/soundboard/soundboard.log
  max_size_mb: 10
  max_backups: 3

tracing:
  exporter: none         # none, stdout or otlp
  endpoint: localhost:4317
  # file: /tmp/soundboard-traces.json
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
