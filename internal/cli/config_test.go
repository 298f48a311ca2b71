package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/michaelrommel/progress-view/internal/config"
	pverrors "github.com/michaelrommel/progress-view/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)

	var out bytes.Buffer
	require.NoError(t, initConfig(&out, path, false, nil))
	assert.Contains(t, out.String(), "Wrote "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestInitConfigExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("progress:\n  header: Mine\n"), 0644))

	t.Run("non-interactive without force", func(t *testing.T) {
		err := initConfig(&bytes.Buffer{}, path, false, nil)
		require.Error(t, err)
		assert.True(t, pverrors.IsCode(err, pverrors.ErrConfig))
	})

	t.Run("declined", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, initConfig(&out, path, false, func(string) (bool, error) { return false, nil }))
		assert.Contains(t, out.String(), "Keeping the existing config.")

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Mine", cfg.Progress.Header)
	})

	t.Run("confirmed", func(t *testing.T) {
		require.NoError(t, initConfig(&bytes.Buffer{}, path, false, func(string) (bool, error) { return true, nil }))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Records", cfg.Progress.Header)
	})

	t.Run("forced", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0644))
		require.NoError(t, initConfig(&bytes.Buffer{}, path, true, nil))
	})
}

func TestConfigInitPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := configInitPath(false)
	require.NoError(t, err)
	assert.Equal(t, config.ConfigFileName, path)

	path, err = configInitPath(true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, config.GlobalConfigDir, config.GlobalConfigFile), path)
}

func TestShowConfig(t *testing.T) {
	orig := cfgFile
	defer func() { cfgFile = orig }()

	path := filepath.Join(t.TempDir(), "dash.yaml")
	require.NoError(t, os.WriteFile(path, []byte("progress:\n  header: Shown\n"), 0644))
	cfgFile = path

	var out bytes.Buffer
	require.NoError(t, showConfig(&out))
	assert.Contains(t, out.String(), "# source: "+path)
	assert.Contains(t, out.String(), "header: Shown")
}

func TestShowConfigInvalid(t *testing.T) {
	orig := cfgFile
	defer func() { cfgFile = orig }()

	path := filepath.Join(t.TempDir(), "dash.yaml")
	require.NoError(t, os.WriteFile(path, []byte("progress:\n  type: BYTES\n"), 0644))
	cfgFile = path

	err := showConfig(&bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, pverrors.IsCode(err, pverrors.ErrConfig))
}
