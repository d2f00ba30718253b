// Package config handles loading the user-level todo TOML settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ProjectFile is the optional per-directory settings file merged over the
// user-level file.
const ProjectFile = ".todo.toml"

// PathEnv overrides the location of the user-level settings file.
const PathEnv = "TODO_CONFIG"

// Config represents the todo settings files.
type Config struct {
	Create Create `toml:"create"`
	Global Global `toml:"global"`
	List   List   `toml:"list"`
}

// Create contains defaults for `todo create`.
type Create struct {
	// Name is the owner name written into new list configs.
	Name string `toml:"name"`
	// Deleted is the deletion policy token written into new list configs.
	Deleted string `toml:"deleted"`
}

// Global contains settings for --global mode.
type Global struct {
	// Dir replaces the home directory as the global data directory.
	Dir string `toml:"dir"`
}

// List contains display settings.
type List struct {
	// Color enables highlighting in table views. Defaults to true.
	Color bool `toml:"color"`
}

// Path returns the user-level settings file path.
func Path() (string, error) {
	if path := strings.TrimSpace(os.Getenv(PathEnv)); path != "" {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "todo", "config.toml"), nil
}

// Load loads the user-level settings and the project file in projectDir.
// Missing files leave the built-in defaults in place. An empty projectDir
// skips the project file.
func Load(projectDir string) (*Config, error) {
	globalPath, err := Path()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta := &Config{}, toml.MetaData{}
	if projectDir != "" {
		projectCfg, projectMeta, err = loadConfigFile(filepath.Join(projectDir, ProjectFile))
		if err != nil {
			return nil, err
		}
	}

	return mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta), nil
}

// LoadFile loads a single settings file with defaults applied.
func LoadFile(path string) (*Config, error) {
	cfg, meta, err := loadConfigFile(path)
	if err != nil {
		return nil, err
	}
	return mergeConfigs(cfg, &Config{}, meta, toml.MetaData{}), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Create.Name = mergeString(projectMeta.IsDefined("create", "name"), projectCfg.Create.Name, globalCfg.Create.Name)
	merged.Create.Deleted = mergeString(projectMeta.IsDefined("create", "deleted"), projectCfg.Create.Deleted, globalCfg.Create.Deleted)
	merged.Global.Dir = mergeString(projectMeta.IsDefined("global", "dir"), projectCfg.Global.Dir, globalCfg.Global.Dir)

	merged.List.Color = true
	if projectMeta.IsDefined("list", "color") {
		merged.List.Color = projectCfg.List.Color
	} else if globalMeta.IsDefined("list", "color") {
		merged.List.Color = globalCfg.List.Color
	}

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}

// SetGlobalDir stores dir as [global].dir in the settings file at path,
// keeping every other key. The file and its parent directory are created
// when missing.
func SetGlobalDir(path, dir string) error {
	doc := map[string]interface{}{}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return fmt.Errorf("read config file %s: %w", path, err)
	default:
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	global, ok := doc["global"].(map[string]interface{})
	if !ok {
		global = map[string]interface{}{}
	}
	global["dir"] = dir
	doc["global"] = global

	return writeTOML(path, doc)
}

func writeTOML(path string, doc interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	if err := toml.NewEncoder(f).Encode(doc); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode config file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename config file: %w", err)
	}
	return nil
}
