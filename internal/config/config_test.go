package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/cardeval/poker"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5, cfg.Census.Cards)
	assert.Equal(t, 100000, cfg.Odds.Iterations)
	assert.Equal(t, poker.UpperLetters, cfg.CardFormat())
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cardeval.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level = "debug"
format    = "compact"

census {
  cards   = 7
  workers = 3
}

odds {
  iterations = 5000
}
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, poker.Compact, cfg.CardFormat())
	assert.Equal(t, &CensusConfig{Cards: 7, Workers: 3}, cfg.Census)
	assert.Equal(t, &OddsConfig{Iterations: 5000}, cfg.Odds)
}

func TestParsePartialBlocks(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`census { workers = 2 }`), "partial.hcl")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Census.Cards)
	assert.Equal(t, 2, cfg.Census.Workers)
	assert.Equal(t, 100000, cfg.Odds.Iterations)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		message string
	}{
		{"syntax", `log_level = `, "failed to parse HCL"},
		{"unknown attribute", `colour = "red"`, "failed to decode HCL"},
		{"wrong type", `census { cards = "five" }`, "failed to decode HCL"},
		{"bad level", `log_level = "loud"`, "invalid log_level"},
		{"bad format", `format = "braille"`, "unknown card format"},
		{"bad hand size", `census { cards = 6 }`, "cards must be 5 or 7"},
		{"negative workers", `odds { workers = -1 }`, "workers must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.src), "test.hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
