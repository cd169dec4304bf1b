package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/smitstech/Shutdowner/internal/countdown"
)

const (
	// FileName is looked up next to the executable when no path is given
	FileName = "shutdowner.json"
	// EnvPrefix prefixes environment overrides, e.g. SHUTDOWNER_LOGLEVEL
	EnvPrefix = "SHUTDOWNER"
)

type Config struct {
	DefaultAction string `mapstructure:"defaultAction"`
	Language      string `mapstructure:"language"`
	LogLevel      string `mapstructure:"logLevel"`
	DryRun        bool   `mapstructure:"dryRun"`
	Notifications bool   `mapstructure:"notifications"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("defaultAction", countdown.DefaultAction.String())
	v.SetDefault("language", "")
	v.SetDefault("logLevel", "warn")
	v.SetDefault("dryRun", false)
	v.SetDefault("notifications", true)
}

// Load reads configuration from the specified path.
// With an empty path, shutdowner.json in the executable's directory is
// used if present; a missing default file leaves the built-in defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := configPath != ""
	if !explicit {
		exePath, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("failed to get executable path: %w", err)
		}
		configPath = filepath.Join(filepath.Dir(exePath), FileName)
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		if explicit || !isNotFound(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.DefaultAction == "" {
		c.DefaultAction = countdown.DefaultAction.String()
	}
	if _, err := countdown.ParseAction(c.DefaultAction); err != nil {
		return fmt.Errorf("defaultAction: %w", err)
	}

	validLogLevels := map[string]bool{
		"debug":   true,
		"info":    true,
		"warn":    true,
		"warning": true,
		"error":   true,
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("logLevel must be one of: debug, info, warn, warning, error (got: %s)", c.LogLevel)
	}

	return nil
}

// Action returns the validated default action
func (c *Config) Action() countdown.Action {
	a, err := countdown.ParseAction(c.DefaultAction)
	if err != nil {
		return countdown.DefaultAction
	}
	return a
}

// LanguageTag returns the configured language, falling back to the
// environment's locale variables.
func (c *Config) LanguageTag() string {
	if c.Language != "" {
		return c.Language
	}
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	return ""
}
