package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"creduce/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_Defaults_When_NoFilesExist(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg, err := config.Load(config.LoadInput{WorkDir: dir, Env: map[string]string{}})
	require.NoError(t, err)
	require.Equal(t, "indent", cfg.IndentPath)
	require.Empty(t, cfg.DefaultMethods)
}

func TestLoad_ProjectConfig_Overrides_Defaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, config.FileName), `{"default_methods": ["blanks", "crc"]}`)

	cfg, err := config.Load(config.LoadInput{WorkDir: dir, Env: map[string]string{}})
	require.NoError(t, err)
	require.Equal(t, []string{"blanks", "crc"}, cfg.DefaultMethods)
}

func TestLoad_ProjectConfig_SupportsComments(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, config.FileName), `{
		// pin the indent binary for this repo
		"indent_path": "/usr/local/bin/gnu-indent",
	}`)

	cfg, err := config.Load(config.LoadInput{WorkDir: dir, Env: map[string]string{}})
	require.NoError(t, err)
	require.Equal(t, "/usr/local/bin/gnu-indent", cfg.IndentPath)
}

func TestLoad_GlobalConfig_Loaded_When_XDGConfigHomeSet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	xdgDir := t.TempDir()
	writeFile(t, filepath.Join(xdgDir, "creduce", "config.json"), `{"debug": true}`)

	cfg, err := config.Load(config.LoadInput{
		WorkDir: dir,
		Env:     map[string]string{"XDG_CONFIG_HOME": xdgDir},
	})
	require.NoError(t, err)
	require.True(t, cfg.Debug)
	require.Equal(t, filepath.Join(xdgDir, "creduce", "config.json"), cfg.Sources.Global)
}

func TestLoad_ProjectConfig_Overrides_GlobalConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	xdgDir := t.TempDir()
	writeFile(t, filepath.Join(xdgDir, "creduce", "config.json"), `{"indent_path": "global-indent"}`)
	writeFile(t, filepath.Join(dir, config.FileName), `{"indent_path": "project-indent"}`)

	cfg, err := config.Load(config.LoadInput{
		WorkDir: dir,
		Env:     map[string]string{"XDG_CONFIG_HOME": xdgDir},
	})
	require.NoError(t, err)
	require.Equal(t, "project-indent", cfg.IndentPath)
}

func TestLoad_ExplicitConfigPath_MustExist(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := config.Load(config.LoadInput{
		WorkDir:    dir,
		ConfigPath: "nonexistent.json",
		Env:        map[string]string{},
	})
	require.ErrorIs(t, err, config.ErrConfigFileNotFound)
}

func TestLoad_InvalidJSON_ReturnsError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, config.FileName), `{not json}`)

	_, err := config.Load(config.LoadInput{WorkDir: dir, Env: map[string]string{}})
	require.ErrorIs(t, err, config.ErrConfigInvalid)
}
