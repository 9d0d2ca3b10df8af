package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commonshub/signup/pkg/config"
)

type testConfig struct {
	Addr  string `env:"TEST_ADDR" envDefault:":8080"`
	Limit int    `env:"TEST_LIMIT" envDefault:"3"`
}

type requiredConfig struct {
	Token string `env:"TEST_REQUIRED_TOKEN_MISSING,required"`
}

func TestLoadDefaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 3, cfg.Limit)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TEST_ENV_ADDR", ":9999")

	type envConfig struct {
		Addr string `env:"TEST_ENV_ADDR"`
	}

	var cfg envConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":9999", cfg.Addr)
}

func TestLoadCachesPerType(t *testing.T) {
	var first testConfig
	require.NoError(t, config.Load(&first))

	// Environment changes after the first load are not observed.
	t.Setenv("TEST_ADDR", ":7777")

	var second testConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first, second)
}

func TestLoadNilPointer(t *testing.T) {
	err := config.Load[testConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoadMissingRequired(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestMustLoadPanicsOnFailure(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
