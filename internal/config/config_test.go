package config

import (
	"testing"

	"slviewer/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATA_DIR", "")
	t.Setenv("DATA_FILE", "")
	t.Setenv("GIN_MODE", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, ".", cfg.Data.Dir)
	assert.Empty(t, cfg.Data.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DATA_DIR", "/srv/fila")
	t.Setenv("DATA_FILE", "fila.xlsx")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "/srv/fila", cfg.Data.Dir)
	assert.Equal(t, "fila.xlsx", cfg.Data.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsBadPort(t *testing.T) {
	for _, port := range []string{"abc", "0", "70000", "-1"} {
		t.Setenv("PORT", port)

		_, err := Load()
		require.Error(t, err, "port %q", port)
		assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
	}
}
