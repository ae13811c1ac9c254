// Package cmd implements the soundboard command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kobeSmallman/mobileSoundboard/internal/config"
	"github.com/kobeSmallman/mobileSoundboard/internal/log"
	"github.com/kobeSmallman/mobileSoundboard/internal/soundboard"
	"github.com/kobeSmallman/mobileSoundboard/internal/tracing"
	"github.com/kobeSmallman/mobileSoundboard/internal/ui/board"
	"github.com/kobeSmallman/mobileSoundboard/internal/ui/styles"
	"github.com/kobeSmallman/mobileSoundboard/internal/ui/unavailable"
)

var (
	version = "dev"

	cfgFile string
	cfg     config.Config

	logCloser       io.Closer
	shutdownTracing tracing.ShutdownFunc
)

var rootCmd = &cobra.Command{
	Use:   "soundboard",
	Short: "A terminal soundboard",
	Long: `Play, loop and record short sounds from the terminal.

Run without arguments to open the board. The subcommands manage the sound
library from scripts.`,
	Version:            version,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE:               runBoard,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/soundboard/config.yaml)")
	flags.String("data-dir", "", "directory holding the sound database")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-file", "", "write logs to this file")
	flags.String("theme", "", "color theme: default or high-contrast")
}

// Execute runs the root command. Cancelling ctx interrupts long-running
// commands such as play and record.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// flagKeys maps persistent flags to config keys.
var flagKeys = map[string]string{
	"data-dir":  "data_dir",
	"log-level": "log.level",
	"log-file":  "log.file",
	"theme":     "ui.theme",
}

func setup(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("binding --%s: %w", flag, err)
		}
	}

	loaded, err := loadConfig(v, cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded

	logCloser, err = log.Init(log.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}

	shutdownTracing, err = tracing.Setup(cmd.Context(), tracing.Options{
		Exporter: cfg.Tracing.Exporter,
		Endpoint: cfg.Tracing.Endpoint,
		File:     cfg.Tracing.File,
		Version:  version,
	})
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}

	if err := styles.ApplyTheme(cfg.UI.Theme); err != nil {
		return err
	}
	log.Debug(log.CatCmd, "Starting", "command", cmd.Name(), "data_dir", cfg.DataDir)
	return nil
}

func teardown(cmd *cobra.Command, _ []string) error {
	var errs []error
	if shutdownTracing != nil {
		errs = append(errs, shutdownTracing(context.WithoutCancel(cmd.Context())))
		shutdownTracing = nil
	}
	if logCloser != nil {
		errs = append(errs, logCloser.Close())
		logCloser = nil
	}
	return errors.Join(errs...)
}

// loadConfig layers defaults, the config file, SOUNDBOARD_* environment
// variables and bound flags, in increasing precedence.
func loadConfig(v *viper.Viper, path string) (config.Config, error) {
	config.SetDefaults(v)
	v.SetEnvPrefix("SOUNDBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = defaultConfigPath()
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return config.Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		log.Debug(log.CatConfig, "No config file, using defaults", "path", path)
	}

	var c config.Config
	if err := v.Unmarshal(&c); err != nil {
		return config.Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}

// defaultConfigPath returns $XDG_CONFIG_HOME/soundboard/config.yaml.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".soundboard", "config.yaml")
	}
	return filepath.Join(dir, "soundboard", "config.yaml")
}

// configPath is the file `config init` writes and `config show` reports.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return defaultConfigPath()
}

// withSession opens a session for a one-shot command and closes it afterwards.
func withSession(cmd *cobra.Command, fn func(ctx context.Context, s *soundboard.Session) error) (err error) {
	ctx := cmd.Context()
	s, err := soundboard.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := s.Close(context.WithoutCancel(ctx)); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return fn(ctx, s)
}

func runBoard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	s, err := soundboard.New(ctx, cfg)
	if err != nil {
		log.ErrorErr(log.CatCmd, "Failed to open session", err)
		_, runErr := tea.NewProgram(unavailable.New(err, cfg.DBPath()), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
		return errors.Join(err, runErr)
	}
	defer func() { _ = s.Close(context.WithoutCancel(ctx)) }()

	_, err = tea.NewProgram(board.New(ctx, s), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
