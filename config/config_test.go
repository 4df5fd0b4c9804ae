package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)
	assert.False(t, cfg.Log.JSON)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadWithViperOverrides(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("log.json", true)
	v.Set("log.level", "debug")

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadEnvOverride(t *testing.T) {
	Reset()
	defer Reset()

	t.Setenv("GRIDMETA_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadCaches(t *testing.T) {
	Reset()
	defer Reset()

	first, err := Load()
	require.NoError(t, err)

	second, err := Load()
	require.NoError(t, err)
	assert.Same(t, first, second)
}
