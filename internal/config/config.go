// Package config loads gitship settings through viper. A config file
// is optional; the tool runs on defaults alone.
package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"

	"github.com/gitship-dev/gitship/internal/suggest"
)

// Config holds the settings the workflow reads.
type Config struct {
	Remote         string `mapstructure:"remote"`
	Branch         string `mapstructure:"branch"`
	SuggestCommand string `mapstructure:"suggest_command"`
}

const (
	DefaultRemote     = "origin"
	DefaultBranch     = "master"
	DefaultConfigName = ".gitship"
)

// InitConfig wires viper defaults and reads the config file when one
// exists. A missing file is not an error.
func InitConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(DefaultConfigName)
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("remote", DefaultRemote)
	viper.SetDefault("branch", DefaultBranch)
	viper.SetDefault("suggest_command", suggest.DefaultCommand)

	viper.SetEnvPrefix("GITSHIP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}

// Get returns the current settings.
func Get() *Config {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return &Config{
			Remote:         DefaultRemote,
			Branch:         DefaultBranch,
			SuggestCommand: suggest.DefaultCommand,
		}
	}
	return cfg
}
