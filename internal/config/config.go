// Package config loads the on-disk defaults a project can pin for
// creduce: which methods to run by default, where the pretty-printer
// lives, and a debugging toggle. It has no bearing on
// reduction semantics themselves (those stay entirely CLI/registry
// driven); it only saves retyping "--all" on every invocation.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// FileName is the project-level config file name, read from the
// directory containing the input C file.
const FileName = ".creduce.json"

// Config holds creduce's file-backed defaults.
type Config struct {
	DefaultMethods []string `json:"default_methods,omitempty"`
	IndentPath     string   `json:"indent_path,omitempty"`
	Debug          bool     `json:"debug,omitempty"`

	// Sources tracks which files were loaded, for diagnostics.
	Sources Sources `json:"-"`
}

// Sources records which config files contributed to the final Config.
type Sources struct {
	Global  string
	Project string
}

// Default returns creduce's built-in defaults: no methods enabled (the
// CLI must name at least one) and the pretty-printer resolved from
// $PATH.
func Default() Config {
	return Config{
		IndentPath: "indent",
	}
}

// getGlobalPath returns $XDG_CONFIG_HOME/creduce/config.json, falling
// back to ~/.config/creduce/config.json, or "" if neither can be
// determined.
func getGlobalPath(env map[string]string) string {
	if xdg := env["XDG_CONFIG_HOME"]; xdg != "" {
		return filepath.Join(xdg, "creduce", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "creduce", "config.json")
	}

	return ""
}

// LoadInput holds the inputs to Load.
type LoadInput struct {
	WorkDir    string            // directory containing the input C file
	ConfigPath string            // -c/--config flag value, if any
	Env        map[string]string // environment variables
}

// Load resolves a Config with the following precedence (highest wins):
//
//  1. built-in defaults
//  2. global user config ($XDG_CONFIG_HOME/creduce/config.json or
//     ~/.config/creduce/config.json)
//  3. project config (.creduce.json next to the input file, or the file
//     named by ConfigPath if non-empty)
//
// CLI flags are applied by the caller on top of the returned Config; Load
// itself knows nothing about pflag.
func Load(input LoadInput) (Config, error) {
	cfg := Default()

	globalCfg, globalPath, err := loadOptional(getGlobalPath(input.Env))
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Global = globalPath
	cfg = merge(cfg, globalCfg)

	projectCfg, projectPath, err := loadProject(input.WorkDir, input.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Project = projectPath
	cfg = merge(cfg, projectCfg)

	return cfg, nil
}

func loadProject(workDir, configPath string) (Config, string, error) {
	var path string

	var mustExist bool

	if configPath != "" {
		path = configPath
		if !filepath.IsAbs(path) {
			path = filepath.Join(workDir, path)
		}

		mustExist = true
	} else {
		path = filepath.Join(workDir, FileName)
		mustExist = false
	}

	if mustExist {
		if _, err := os.Stat(path); err != nil {
			return Config{}, "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
		}
	}

	return loadOptional(path)
}

// loadOptional reads and parses path, returning a zero Config and an
// empty path if path is empty or does not exist.
func loadOptional(path string) (Config, string, error) {
	if path == "" {
		return Config{}, "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, "", nil
		}

		return Config{}, "", fmt.Errorf("%w: %s", ErrConfigFileRead, path)
	}

	cfg, err := parse(data)
	if err != nil {
		return Config{}, "", fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	return cfg, path, nil
}

func parse(data []byte) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	return cfg, nil
}

func merge(base, overlay Config) Config {
	if len(overlay.DefaultMethods) > 0 {
		base.DefaultMethods = overlay.DefaultMethods
	}

	if overlay.IndentPath != "" {
		base.IndentPath = overlay.IndentPath
	}

	if overlay.Debug {
		base.Debug = true
	}

	return base
}
