package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/gitship-dev/gitship/internal/version"
)

func TestRootCommand(t *testing.T) {
	assert.NotNil(t, rootCmd)
	assert.Equal(t, "gitship", rootCmd.Use)
	assert.Contains(t, rootCmd.Long, "commit message")
	assert.True(t, rootCmd.SilenceErrors)
	assert.True(t, rootCmd.SilenceUsage)
}

func TestVersionDefaults(t *testing.T) {
	assert.Equal(t, "dev", version.Version)
	assert.Equal(t, "unknown", version.BuildTime)

	assert.NotNil(t, versionCmd)
	assert.Equal(t, "version", versionCmd.Use)
}

func TestSubcommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	assert.True(t, names["dashboard"], "dashboard command missing")
	assert.True(t, names["version"], "version command missing")
}

func TestFlags(t *testing.T) {
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
}

func TestInitConfig(t *testing.T) {
	viper.Reset()
	t.Setenv("HOME", t.TempDir())
	cfgFile = ""

	assert.NotPanics(t, func() {
		initConfig()
	})
	assert.NoError(t, configErr)
}
