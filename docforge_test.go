package docforge

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flanksource/docforge/api"
	"github.com/flanksource/docforge/renderers"
)

func TestGenerate(t *testing.T) {
	path, err := Generate("Demo", "# Intro\nHello world",
		GenerateOptions{
			Format: renderers.FormatPDF,
			Output: filepath.Join(t.TempDir(), "demo"),
			NoOpen: true,
		})
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Equal(t, ".pdf", filepath.Ext(path))
}

func TestParse(t *testing.T) {
	blocks := Parse("# Heading\nbody")
	require.Len(t, blocks, 2)
	assert.Equal(t, api.Heading1, blocks[0].Kind)
}

func TestPickPalette(t *testing.T) {
	assert.Equal(t, PickPalette("Demo"), PickPalette("Demo"))
}
