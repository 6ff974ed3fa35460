package config

import (
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	apperrors "firstelem/internal/errors"
)

// CurrentVersion is the config schema version this build understands
const CurrentVersion = 1

// DirName is the per-directory configuration folder
const DirName = ".firstelem"

// EnvPrefix prefixes environment overrides, e.g. FIRSTELEM_HEADER_STYLE
const EnvPrefix = "FIRSTELEM"

// Config represents the complete program configuration
type Config struct {
	Version int           `json:"version" mapstructure:"version" yaml:"version" toml:"version"`
	Header  HeaderConfig  `json:"header" mapstructure:"header" yaml:"header" toml:"header"`
	Prompts PromptsConfig `json:"prompts" mapstructure:"prompts" yaml:"prompts" toml:"prompts"`
	Input   InputConfig   `json:"input" mapstructure:"input" yaml:"input" toml:"input"`
	Output  OutputConfig  `json:"output" mapstructure:"output" yaml:"output" toml:"output"`
	Logging LoggingConfig `json:"logging" mapstructure:"logging" yaml:"logging" toml:"logging"`
}

// HeaderConfig controls the banner printed before prompting
type HeaderConfig struct {
	Enabled    bool   `json:"enabled" mapstructure:"enabled" yaml:"enabled" toml:"enabled"`
	Style      string `json:"style" mapstructure:"style" yaml:"style" toml:"style"`
	Author     string `json:"author" mapstructure:"author" yaml:"author" toml:"author"`
	Campus     string `json:"campus" mapstructure:"campus" yaml:"campus" toml:"campus"`
	Repository string `json:"repository" mapstructure:"repository" yaml:"repository" toml:"repository"`
	TimeFormat string `json:"timeFormat" mapstructure:"timeFormat" yaml:"timeFormat" toml:"timeFormat"`
}

// PromptsConfig holds the interactive prompt text
type PromptsConfig struct {
	Length   string `json:"length" mapstructure:"length" yaml:"length" toml:"length"`
	Elements string `json:"elements" mapstructure:"elements" yaml:"elements" toml:"elements"`
	// ResultLabel overrides the style's default label when set
	ResultLabel string `json:"resultLabel" mapstructure:"resultLabel" yaml:"resultLabel" toml:"resultLabel"`
}

// InputConfig bounds what the reader accepts
type InputConfig struct {
	MaxLength int `json:"maxLength" mapstructure:"maxLength" yaml:"maxLength" toml:"maxLength"`
}

// OutputConfig selects the result format
type OutputConfig struct {
	Format string `json:"format" mapstructure:"format" yaml:"format" toml:"format"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `json:"level" mapstructure:"level" yaml:"level" toml:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Header: HeaderConfig{
			Enabled:    true,
			Style:      "emoji",
			Author:     "Harold Adrian",
			Campus:     "Campus Cali, U. Cooperativa de Colombia",
			Repository: "https://github.com/habolanos/ucc-estructuras/blob/master/sesion04/ejercicios/1-algoritmo-O1/PgmAlgoritmoO1.java",
			TimeFormat: "02/01/2006 15:04:05",
		},
		Prompts: PromptsConfig{
			Length:   "Ingrese el tamaño del array: ",
			Elements: "Ingrese los elementos del array:",
		},
		Input: InputConfig{
			MaxLength: 1000000,
		},
		Output: OutputConfig{
			Format: "human",
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// setDefaults registers every key so environment overrides are picked up on Unmarshal
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("version", d.Version)
	v.SetDefault("header.enabled", d.Header.Enabled)
	v.SetDefault("header.style", d.Header.Style)
	v.SetDefault("header.author", d.Header.Author)
	v.SetDefault("header.campus", d.Header.Campus)
	v.SetDefault("header.repository", d.Header.Repository)
	v.SetDefault("header.timeFormat", d.Header.TimeFormat)
	v.SetDefault("prompts.length", d.Prompts.Length)
	v.SetDefault("prompts.elements", d.Prompts.Elements)
	v.SetDefault("prompts.resultLabel", d.Prompts.ResultLabel)
	v.SetDefault("input.maxLength", d.Input.MaxLength)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("logging.level", d.Logging.Level)
}

// Load resolves configuration: defaults, then the config file, then FIRSTELEM_* environment.
// With an empty path it looks for config.{json,yaml,toml} under <workDir>/.firstelem and falls
// back to defaults when none exists. An explicit path must exist.
func Load(workDir, path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(filepath.Join(workDir, DirName))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !stderrors.As(err, &notFound) {
			return nil, apperrors.New(apperrors.ConfigInvalid, "failed to read config", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperrors.New(apperrors.ConfigInvalid, "failed to decode config", err)
	}

	return &cfg, nil
}

// Save writes the configuration to <workDir>/.firstelem/config.json
func (c *Config) Save(workDir string) (string, error) {
	dir := filepath.Join(workDir, DirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}

	configPath := filepath.Join(dir, "config.json")
	return configPath, os.WriteFile(configPath, append(data, '\n'), 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return configError("version", "unsupported config version")
	}
	switch strings.ToLower(c.Header.Style) {
	case "emoji", "plain":
	default:
		return configError("header.style", "must be emoji or plain")
	}
	switch strings.ToLower(c.Output.Format) {
	case "human", "json":
	default:
		return configError("output.format", "must be human or json")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return configError("logging.level", "must be debug, info, warn or error")
	}
	if c.Input.MaxLength <= 0 {
		return configError("input.maxLength", "must be positive")
	}
	return nil
}

func configError(field, message string) error {
	return apperrors.New(apperrors.ConfigInvalid,
		"config error in field '"+field+"': "+message, nil).
		WithDetails(map[string]string{"field": field})
}
