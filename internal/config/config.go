package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/dotcommander/artscore/internal/scoring"
	"github.com/dotcommander/artscore/internal/substat"
)

// ConfigPaths are the config files looked up in the working directory, in order.
var ConfigPaths = []string{".artscorerc.json", ".artscorerc.yaml", ".artscorerc.yml"}

// Config represents the artscore configuration
type Config struct {
	Profile         string            `mapstructure:"profile" json:"profile"`
	Locale          string            `mapstructure:"locale" json:"locale"`
	Format          string            `mapstructure:"format" json:"format"`
	Output          string            `mapstructure:"output" json:"output,omitempty"`
	Quiet           bool              `mapstructure:"quiet" json:"quiet"`
	Verbose         bool              `mapstructure:"verbose" json:"verbose"`
	Concurrency     int               `mapstructure:"concurrency" json:"concurrency"`
	Patterns        []string          `mapstructure:"patterns" json:"patterns"`
	Exclude         []string          `mapstructure:"exclude" json:"exclude,omitempty"`
	FollowSymlinks  bool              `mapstructure:"followSymlinks" json:"followSymlinks"`
	FailOnMalformed bool              `mapstructure:"failOnMalformed" json:"failOnMalformed"`
	Corrections     map[string]string `mapstructure:"corrections" json:"corrections,omitempty"`
}

// SetDefaults registers the default values with viper.
func SetDefaults() {
	viper.SetDefault("profile", string(scoring.ProfileCrit))
	viper.SetDefault("locale", substat.Japanese.Name)
	viper.SetDefault("format", "console")
	viper.SetDefault("output", "")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("concurrency", 4)
	viper.SetDefault("patterns", []string{"**/*.txt"})
	viper.SetDefault("exclude", []string{})
	viper.SetDefault("followSymlinks", false)
	viper.SetDefault("failOnMalformed", false)
	viper.SetDefault("corrections", map[string]string{})
}

// LoadConfig loads configuration from defaults, config file, environment
// and any flags already bound to viper, in increasing precedence.
func LoadConfig() (*Config, error) {
	SetDefaults()

	// Config file locations
	for _, path := range ConfigPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
		break
	}

	// Environment variables
	viper.SetEnvPrefix("ARTSCORE")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if _, err := scoring.ParseProfile(config.Profile); err != nil {
		return err
	}

	if _, err := substat.LookupLocale(config.Locale); err != nil {
		return err
	}

	if config.Format != "console" && config.Format != "json" && config.Format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	if config.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}

	return nil
}

// ScoringProfile returns the configured profile. It is valid after LoadConfig.
func (c *Config) ScoringProfile() scoring.Profile {
	p, _ := scoring.ParseProfile(c.Profile)
	return p
}

// Parser builds a substat parser from the configured locale and corrections.
func (c *Config) Parser() (*substat.Parser, error) {
	loc, err := substat.LookupLocale(c.Locale)
	if err != nil {
		return nil, err
	}
	return substat.NewParser(loc, substat.DefaultCorrections.With(c.Corrections)), nil
}

// Default returns the built-in configuration without consulting viper.
func Default() *Config {
	return &Config{
		Profile:     string(scoring.ProfileCrit),
		Locale:      substat.Japanese.Name,
		Format:      "console",
		Concurrency: 4,
		Patterns:    []string{"**/*.txt"},
		Corrections: map[string]string{},
	}
}

// SaveConfig saves the current configuration to a file
func SaveConfig(config *Config, path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	// Marshal config to JSON
	jsonData, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
