package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the builtins tool.
type Config struct {
	Extract ExtractConfig `yaml:"extract"`
	Output  OutputConfig  `yaml:"output"`
	Cache   CacheConfig   `yaml:"cache"`
	Logging LoggingConfig `yaml:"logging"`
}

// ExtractConfig holds file discovery and parsing configuration.
type ExtractConfig struct {
	Framework string   `yaml:"framework"` // "JavaScriptCore" or "WebCore"
	Includes  []string `yaml:"includes"`
	Excludes  []string `yaml:"excludes"`
}

// OutputConfig holds manifest output configuration.
type OutputConfig struct {
	Format      string `yaml:"format"`       // "json", "go" or "text"
	Path        string `yaml:"path"`         // empty writes to stdout
	PackageName string `yaml:"package_name"` // package clause for the "go" format
}

// CacheConfig holds extraction cache configuration.
type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Extract: ExtractConfig{
			Framework: "JavaScriptCore",
			Includes:  []string{"**/*.js"},
			Excludes:  []string{"**/node_modules/**", "**/.git/**", "**/*.min.js"},
		},
		Output: OutputConfig{
			Format:      "json",
			PackageName: "builtins",
		},
		Cache: CacheConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for builtins.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "builtins.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".builtins", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CacheDBPath returns the path to the extraction cache database.
func CacheDBPath(dir string) string {
	return filepath.Join(dir, ".builtins", "cache.db")
}

// EnsureBuiltinsDir ensures the .builtins directory exists.
func EnsureBuiltinsDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".builtins"), 0755)
}
