// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvsparse/internal/config"
	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/stretchr/testify/require"
)

// writeFile writes content to a temp file and returns its path.
func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvsparse.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
numeric:
  epsilon: 1e-9
  validate_nan_inf: false
log:
  level: debug
  format: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 1e-9, cfg.Numeric.Epsilon)
	require.False(t, cfg.Numeric.ValidateNaNInf)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, ".lvsparse", cfg.Store.Path) // untouched section keeps its default

	o := sparse.NewOptions(cfg.SparseOptions()...)
	require.Equal(t, 1e-9, o.Epsilon())
	require.False(t, o.ValidateNaNInf())
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"negative epsilon", "numeric:\n  epsilon: -1\n"},
		{"bad level", "log:\n  level: loud\n"},
		{"bad format", "log:\n  format: xml\n"},
		{"no store path", "store:\n  path: \"\"\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tc.content))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Load(writeFile(t, "numeric: [unclosed"))
	require.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := config.Default().Marshal()
	require.NoError(t, err)

	cfg, err := config.Load(writeFile(t, string(data)))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}
