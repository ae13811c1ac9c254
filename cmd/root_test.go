package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kobeSmallman/mobileSoundboard/internal/sound"
	"github.com/kobeSmallman/mobileSoundboard/internal/sounds/domain"
)

// execute runs the root command against an isolated config file and data dir.
func execute(t *testing.T, dataDir string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		cfgFile, addLabel, listMarkdown, configForce = "", "", false, false
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(dataDir, "config.yaml"), "--data-dir", dataDir}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeClip(t *testing.T, name string) string {
	t.Helper()
	rc, err := sound.Default().Open("Sound2.wav")
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	c, err := loadConfig(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "New Recording", c.Recording.DefaultLabel)
	assert.True(t, c.AutoRefresh)
}

func TestLoadConfig_FileAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: /from/file\nrecording:\n  channels: 2\n"), 0o600))
	t.Setenv("SOUNDBOARD_RECORDING_DEFAULT_LABEL", "Memo")

	c, err := loadConfig(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "/from/file", c.DataDir)
	assert.Equal(t, 2, c.Recording.Channels)
	assert.Equal(t, "Memo", c.Recording.DefaultLabel)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tracing:\n  exporter: smoke-signals\n"), 0o600))

	_, err := loadConfig(viper.New(), path)
	require.ErrorContains(t, err, "tracing.exporter")
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: [unterminated\n"), 0o600))

	_, err := loadConfig(viper.New(), path)
	require.ErrorContains(t, err, "reading config")
}

func TestList_FreshLibrary(t *testing.T) {
	out, err := execute(t, t.TempDir(), "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "default-0")
	assert.Contains(t, lines[0], "Default Sound 1")
	assert.Contains(t, lines[2], "(default)")
}

func TestList_Markdown(t *testing.T) {
	out, err := execute(t, t.TempDir(), "list", "--markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "Default Sound 2")
	assert.Contains(t, out, "Label")
}

func TestLibraryCommands(t *testing.T) {
	dir := t.TempDir()
	clip := writeClip(t, "cowbell.wav")

	out, err := execute(t, dir, "add", clip)
	require.NoError(t, err)
	assert.Equal(t, "Added 1 \"cowbell\"\n", out)

	out, err = execute(t, dir, "rename", "1", "More cowbell")
	require.NoError(t, err)
	assert.Contains(t, out, `Renamed 1 to "More cowbell"`)

	out, err = execute(t, dir, "list")
	require.NoError(t, err)
	first := strings.Split(out, "\n")[0]
	assert.Contains(t, first, "More cowbell")
	assert.Contains(t, first, "file://")

	_, err = execute(t, dir, "remove", "1")
	require.NoError(t, err)

	out, err = execute(t, dir, "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "cowbell")
}

func TestAdd_WithLabel(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "add", writeClip(t, "x.wav"), "--label", "Airhorn")
	require.NoError(t, err)
	assert.Contains(t, out, `"Airhorn"`)
}

func TestAdd_RejectsUndecodableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("not audio"), 0o600))

	_, err := execute(t, t.TempDir(), "add", path)
	var invalid *domain.InvalidSoundError
	require.ErrorAs(t, err, &invalid)
}

func TestRename_BuiltInRefused(t *testing.T) {
	_, err := execute(t, t.TempDir(), "rename", "default-0", "Nope")
	require.ErrorIs(t, err, domain.ErrBuiltInImmutable)
}

func TestRename_BadID(t *testing.T) {
	_, err := execute(t, t.TempDir(), "rename", "abc", "Nope")
	require.ErrorContains(t, err, "invalid sound id")
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "config.yaml")
	_, err = os.Stat(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)

	_, err = execute(t, dir, "config", "init")
	require.ErrorContains(t, err, "already exists")

	_, err = execute(t, dir, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigShow(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "data_dir: "+dir)
	assert.Contains(t, out, "default_label: New Recording")
	assert.Contains(t, out, "auto_refresh_debounce: 250ms")
}

func TestConfigPath(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml")+"\n", out)
}
