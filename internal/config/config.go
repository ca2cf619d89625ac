// Package config handles loading tracklet.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Defaults applied when neither config file defines a key.
const (
	DefaultTasksFile = "tasks.json"
	DefaultCacheFile = "events.json"
	DefaultAPIURL    = "https://api.github.com"
	DefaultTokenEnv  = "GITHUB_TOKEN"
)

const (
	projectConfigName    = "tracklet.toml"
	globalConfigDirName  = "tracklet"
	globalConfigFileName = "config.toml"
)

// Config represents the tracklet.toml configuration file.
type Config struct {
	Tasks    Tasks    `toml:"tasks"`
	Activity Activity `toml:"activity"`
}

// Tasks contains task-store configuration.
type Tasks struct {
	// File is the path of the JSON file holding the task list.
	File string `toml:"file"`
}

// Activity contains event-fetcher configuration.
type Activity struct {
	// CacheFile is the path of the JSON file holding raw fetched events.
	CacheFile string `toml:"cache-file"`

	// APIURL is the base URL of the GitHub REST API.
	APIURL string `toml:"api-url"`

	// TokenEnv names the environment variable read for the bearer token.
	TokenEnv string `toml:"token-env"`
}

// Load loads configuration from dir and the global config file, with
// project values taking precedence and defaults filling the rest.
// Returns the defaults if no config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(dir, projectConfigName))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)
	applyDefaults(merged)
	return merged, nil
}

// Token reads the configured token environment variable.
func (c *Config) Token() string {
	return os.Getenv(c.Activity.TokenEnv)
}

func globalConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", globalConfigDirName, globalConfigFileName), nil
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
	merged.Tasks.File = mergeString(projectMeta.IsDefined("tasks", "file"), projectCfg.Tasks.File, globalCfg.Tasks.File)
	merged.Activity.CacheFile = mergeString(projectMeta.IsDefined("activity", "cache-file"), projectCfg.Activity.CacheFile, globalCfg.Activity.CacheFile)
	merged.Activity.APIURL = mergeString(projectMeta.IsDefined("activity", "api-url"), projectCfg.Activity.APIURL, globalCfg.Activity.APIURL)
	merged.Activity.TokenEnv = mergeString(projectMeta.IsDefined("activity", "token-env"), projectCfg.Activity.TokenEnv, globalCfg.Activity.TokenEnv)

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}

func applyDefaults(cfg *Config) {
	if cfg.Tasks.File == "" {
		cfg.Tasks.File = DefaultTasksFile
	}
	if cfg.Activity.CacheFile == "" {
		cfg.Activity.CacheFile = DefaultCacheFile
	}
	if cfg.Activity.APIURL == "" {
		cfg.Activity.APIURL = DefaultAPIURL
	}
	if cfg.Activity.TokenEnv == "" {
		cfg.Activity.TokenEnv = DefaultTokenEnv
	}
}
