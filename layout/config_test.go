package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chars_per_line: 40\nfont_pt: 20\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.CharsPerLine)
	assert.Equal(t, 20.0, cfg.FontPt)
	// Unset fields keep their defaults.
	assert.Equal(t, 1.3, cfg.Leading)
	assert.Equal(t, 15, cfg.SoftenInterval)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigRejectsNonPositiveBudget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chars_per_line: 0\n"), 0o644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "chars_per_line")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	for _, tc := range []struct {
		field  string
		mutate func(*Config)
	}{
		{"chars_per_line", func(c *Config) { c.CharsPerLine = -1 }},
		{"font_pt", func(c *Config) { c.FontPt = 0 }},
		{"leading", func(c *Config) { c.Leading = 0 }},
		{"region_height_in", func(c *Config) { c.RegionHeightIn = -2 }},
	} {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		assert.ErrorContains(t, cfg.Validate(), tc.field)
	}

	// Softening may be disabled outright.
	cfg := DefaultConfig()
	cfg.SoftenInterval = 0
	assert.NoError(t, cfg.Validate())
}
