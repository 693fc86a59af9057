package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := `
addr: ":9999"
solver: backtrack
generator:
  default_difficulty: expert
  max_nodes: 5000
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9999", cfg.Addr)
	require.Equal(t, "backtrack", cfg.Solver)
	require.Equal(t, "expert", cfg.Generator.DefaultDifficulty)
	require.Equal(t, 5000, cfg.Generator.MaxNodes)
	// untouched keys keep defaults
	require.Equal(t, "./data", cfg.PersistPath)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("solver: quantum\n"), 0o644))
	_, err := Load(path)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("addr: bad: [yaml\n"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
}
