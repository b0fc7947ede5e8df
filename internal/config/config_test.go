package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HartBrook/muntjac/internal/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultVersion, cfg.Version)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.InDelta(t, DefaultThreshold, cfg.Optimize.SimilarityThreshold, 1e-9)
	assert.True(t, cfg.Optimize.StructurePreserved())
	require.NoError(t, cfg.Validate())
}

func TestLoadFrom_NotFound(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var merr *errors.MuntjacError
	require.True(t, stderrors.As(err, &merr))
	assert.Equal(t, errors.ErrConfigNotFound, merr.Code)
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: [unclosed"), 0644))

	_, err := LoadFrom(path)
	require.Error(t, err)

	var merr *errors.MuntjacError
	require.True(t, stderrors.As(err, &merr))
	assert.Equal(t, errors.ErrConfigInvalid, merr.Code)
}

func TestLoadFrom_AppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: claude-3-haiku\n"), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "claude-3-haiku", cfg.Model)
	assert.Equal(t, DefaultVersion, cfg.Version)
	assert.InDelta(t, DefaultThreshold, cfg.Optimize.SimilarityThreshold, 1e-9)
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	preserve := false
	in := &Config{
		Model: "gpt-4o",
		Optimize: OptimizeConfig{
			SimilarityThreshold: 0.9,
			Strategies:          []string{"semantic", "token"},
			Aggressive:          true,
			PreserveStructure:   &preserve,
			TargetReduction:     0.3,
		},
	}
	require.NoError(t, SaveTo(in, path))

	out, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", out.Model)
	assert.InDelta(t, 0.9, out.Optimize.SimilarityThreshold, 1e-9)
	assert.Equal(t, []string{"semantic", "token"}, out.Optimize.Strategies)
	assert.True(t, out.Optimize.Aggressive)
	assert.False(t, out.Optimize.StructurePreserved())
	assert.InDelta(t, 0.3, out.Optimize.TargetReduction, 1e-9)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults valid", mutate: func(c *Config) {}},
		{
			name:    "threshold above one",
			mutate:  func(c *Config) { c.Optimize.SimilarityThreshold = 1.5 },
			wantErr: true,
		},
		{
			name:    "negative target",
			mutate:  func(c *Config) { c.Optimize.TargetReduction = -0.1 },
			wantErr: true,
		},
		{
			name:    "target of one",
			mutate:  func(c *Config) { c.Optimize.TargetReduction = 1.0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewPathsWithOverrides(t *testing.T) {
	p := NewPathsWithOverrides("/tmp/muntjac-test")
	assert.Equal(t, filepath.Join("/tmp/muntjac-test", "config.yaml"), p.ConfigFile)
}
