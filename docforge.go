// Package docforge turns a stream of semantically-tagged text blocks into
// themed PDF, DOCX or PPTX documents, each colored by a palette derived
// deterministically from the document title.
package docforge

import (
	"github.com/flanksource/docforge/api"
	"github.com/flanksource/docforge/platform"
	"github.com/flanksource/docforge/renderers"
)

// GenerateOptions is re-exported for callers that only import the root
// package.
type GenerateOptions = renderers.Options

// DefaultManager renders with the OS-native file opener.
var DefaultManager = renderers.NewManager(platform.DefaultOpener{})

// Generate renders raw body text under the given title into the requested
// format and returns the produced file path.
func Generate(title, raw string, opts ...GenerateOptions) (string, error) {
	return DefaultManager.Generate(title, raw, renderers.MergeOptions(opts...))
}

// Parse exposes the block parser for callers that want the intermediate
// representation.
func Parse(raw string) []api.Block {
	return api.ParseBlocks(raw)
}

// PickPalette exposes deterministic palette selection.
func PickPalette(title string) api.Palette {
	return api.PickPalette(title)
}
