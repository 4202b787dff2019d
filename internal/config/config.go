package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// INITIALIZR_METADATA_URL.
const EnvPrefix = "INITIALIZR"

var envReplacer = strings.NewReplacer(".", "_")

// Config represents the full configuration for the wizard.
type Config struct {
	Metadata         MetadataConfig `json:"metadata" yaml:"metadata" mapstructure:"metadata"`
	Tool             ToolConfig     `json:"tool" yaml:"tool" mapstructure:"tool"`
	Defaults         Defaults       `json:"defaults" yaml:"defaults" mapstructure:"defaults"`
	BuildSystems     []string       `json:"buildSystems" yaml:"buildSystems" mapstructure:"buildSystems"`
	Loop             bool           `json:"loop" yaml:"loop" mapstructure:"loop"`
	DryRun           bool           `json:"dryRun" yaml:"dryRun" mapstructure:"dryRun"`
	HideIncompatible bool           `json:"hideIncompatible" yaml:"hideIncompatible" mapstructure:"hideIncompatible"`
	NoColor          bool           `json:"noColor" yaml:"noColor" mapstructure:"noColor"`
}

// MetadataConfig locates the remote capability document.
type MetadataConfig struct {
	URL     string        `json:"url" yaml:"url" mapstructure:"url"`
	Accept  string        `json:"accept" yaml:"accept" mapstructure:"accept"`
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"` // 0 keeps the transport default
}

// ToolConfig describes the external scaffolding command. Args are inserted
// between Command and the generated flags.
type ToolConfig struct {
	Command string   `json:"command" yaml:"command" mapstructure:"command"`
	Args    []string `json:"args" yaml:"args" mapstructure:"args"`
	Dir     string   `json:"dir" yaml:"dir" mapstructure:"dir"`
}

// Defaults holds the free-text fallbacks used when the server declares none.
type Defaults struct {
	Group       string `json:"group" yaml:"group" mapstructure:"group"`
	Name        string `json:"name" yaml:"name" mapstructure:"name"`
	Description string `json:"description" yaml:"description" mapstructure:"description"`
	Version     string `json:"version" yaml:"version" mapstructure:"version"`
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("metadata.url", "https://start.spring.io")
	v.SetDefault("metadata.accept", "application/vnd.initializr.v2.2+json")
	v.SetDefault("metadata.timeout", time.Duration(0))

	v.SetDefault("tool.command", "spring")
	v.SetDefault("tool.args", []string{"init"})
	v.SetDefault("tool.dir", "")

	v.SetDefault("defaults.group", "com.example")
	v.SetDefault("defaults.name", "demo")
	v.SetDefault("defaults.description", "Demo project for Spring Boot")
	v.SetDefault("defaults.version", "0.0.1-SNAPSHOT")

	v.SetDefault("buildSystems", []string{"Maven", "Gradle"})
	v.SetDefault("loop", false)
	v.SetDefault("dryRun", false)
	v.SetDefault("hideIncompatible", true)
	v.SetDefault("noColor", false)
}

// Prepare points v at the config file (explicit path or the search
// locations), installs defaults and enables environment overrides. It does not
// read the file; see ReadIn.
func Prepare(v *viper.Viper, cfgFile string) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("initializr")
		v.AddConfigPath(".")
		if dir := userConfigDir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()
}

// ReadIn reads the config file if one exists. A missing file in the search
// locations is not an error; an explicit --config path that is missing is.
func ReadIn(v *viper.Viper) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("reading config: %w", err)
	}
	return true, nil
}

// Load decodes the effective configuration out of v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

// userConfigDir returns $XDG_CONFIG_HOME/spring-initializr (or the platform
// equivalent). Empty when the directory cannot be determined.
func userConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "spring-initializr")
}
