package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/azybler/xn2vwalk/pkg/walk"
)

func TestLoadFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig().Walk.P, cfg.Walk.P)
	require.Equal(t, "\t", cfg.Graph.Separator)
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "walk:\n  p: 2.0\n  q: 0.5\n  heterogeneous: true\ngraph:\n  edgesPath: edges.tsv\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, 2.0, cfg.Walk.P)
	require.Equal(t, 0.5, cfg.Walk.Q)
	require.True(t, cfg.Walk.Heterogeneous)
	require.Equal(t, "edges.tsv", cfg.Graph.EdgesPath)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XN2VWALK_WALK_P", "3.5")

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, 3.5, cfg.Walk.P)
}

func TestWalkParamsTranslatesMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Walk.Heterogeneous = true
	params := cfg.WalkParams()
	require.Equal(t, 1.0, params.P)
	require.Equal(t, walk.Heterogeneous, params.Mode)
}
