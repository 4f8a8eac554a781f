package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_AppliesFileOverDefaults(t *testing.T) {
	path := writeConfig(t, `
graph_path: /data/web.txt
similarity: approx_jaccard
mu: 5
epsilon: 0.7
num_samples: 128
seed: 9
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/web.txt", cfg.GraphPath)
	assert.Equal(t, "approx_jaccard", cfg.Similarity)
	assert.Equal(t, uint64(5), cfg.Mu)
	assert.Equal(t, 0.7, cfg.Epsilon)
	assert.Equal(t, uint32(128), cfg.NumSamples)
	assert.Equal(t, uint64(9), cfg.Seed)
	assert.Equal(t, "INFO", cfg.LogLevel) // untouched default
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "mu: [not a number\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_Rules(t *testing.T) {
	base := Default()
	base.GraphPath = "/data/g.txt"

	t.Run("valid", func(t *testing.T) {
		cfg := base
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing graph path", func(t *testing.T) {
		cfg := base
		cfg.GraphPath = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("mu below 2", func(t *testing.T) {
		cfg := base
		cfg.Mu = 1
		assert.Error(t, cfg.Validate())
	})

	t.Run("epsilon above 1", func(t *testing.T) {
		cfg := base
		cfg.Epsilon = 1.2
		assert.Error(t, cfg.Validate())
	})

	t.Run("epsilon below 0", func(t *testing.T) {
		cfg := base
		cfg.Epsilon = -0.1
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown similarity", func(t *testing.T) {
		cfg := base
		cfg.Similarity = "euclidean"
		assert.Error(t, cfg.Validate())
	})

	t.Run("approx without samples", func(t *testing.T) {
		cfg := base
		cfg.Similarity = "approx_cosine"
		cfg.NumSamples = 0
		assert.ErrorIs(t, cfg.Validate(), ErrApproxNeedsSamples)
	})

	t.Run("negative workers", func(t *testing.T) {
		cfg := base
		cfg.Workers = -1
		assert.Error(t, cfg.Validate())
	})
}
