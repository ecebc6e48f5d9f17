// Package renderers turns parsed block streams into styled output files and
// dispatches between the per-format renderers.
package renderers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/flanksource/commons/logger"
	"github.com/samber/lo"

	"github.com/flanksource/docforge/api"
	"github.com/flanksource/docforge/layout"
	"github.com/flanksource/docforge/platform"
	"github.com/flanksource/docforge/renderers/docx"
	"github.com/flanksource/docforge/renderers/pdf"
	"github.com/flanksource/docforge/renderers/pptx"
)

// Renderer renders a document to the given path. Failures propagate to the
// caller as a single error; renderers do not retry.
type Renderer interface {
	Render(doc *api.Document, path string) error
}

// Manager resolves output paths and dispatches documents to the renderer
// registered for the requested format.
type Manager struct {
	renderers map[string]func(layout.Config) Renderer
	opener    platform.Opener
}

// NewManager creates a manager with all built-in renderers registered.
// The opener is injected so tests can supply a no-op implementation.
func NewManager(opener platform.Opener) *Manager {
	return &Manager{
		opener: opener,
		renderers: map[string]func(layout.Config) Renderer{
			FormatPDF:  func(cfg layout.Config) Renderer { return pdf.New(cfg) },
			FormatDocx: func(cfg layout.Config) Renderer { return docx.New(cfg) },
			FormatPptx: func(cfg layout.Config) Renderer { return pptx.New(cfg) },
		},
	}
}

// Formats lists the formats the manager can produce.
func (m *Manager) Formats() []string {
	return append(lo.Keys(m.renderers), FormatText)
}

// Generate parses the raw body, writes it verbatim to the .txt base path,
// then renders the requested format next to it and returns the produced
// path. The open-file side effect is best-effort and never fails the call.
func (m *Manager) Generate(title, raw string, opts Options) (string, error) {
	format := opts.Format
	if format == "" {
		format = FormatPDF
	}

	txtPath, err := m.resolveBasePath(title, opts.Output)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(txtPath, []byte(raw), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", txtPath, err)
	}

	// Plain text bypasses rendering (and the open side effect) entirely.
	if format == FormatText {
		return txtPath, nil
	}

	factory, ok := m.renderers[format]
	if !ok {
		return "", fmt.Errorf("unknown format: %s", format)
	}

	cfg := layout.DefaultConfig()
	if opts.Layout != nil {
		if err := opts.Layout.Validate(); err != nil {
			return "", fmt.Errorf("invalid layout config: %w", err)
		}
		cfg = *opts.Layout
	}

	doc := api.NewDocument(title, raw)
	outPath := strings.TrimSuffix(txtPath, ".txt") + "." + format

	logger.Debugf("rendering %q as %s to %s (palette=%s, blocks=%d)",
		title, format, outPath, doc.Palette.Name, len(doc.Blocks))

	if err := factory(cfg).Render(doc, outPath); err != nil {
		return "", err
	}

	m.open(outPath, opts)
	return outPath, nil
}

// resolveBasePath returns the .txt path the raw body is persisted at. A path
// hint keeps its directory and stem; otherwise the file is named from the
// title (spaces become underscores) under the per-user documents directory.
func (m *Manager) resolveBasePath(title, hint string) (string, error) {
	path := hint
	if path == "" {
		dir := filepath.Join(xdg.UserDirs.Documents, "docforge")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
		return filepath.Join(dir, strings.ReplaceAll(title, " ", "_")+".txt"), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if ext := filepath.Ext(path); ext != "" {
		path = strings.TrimSuffix(path, ext)
	}
	return path + ".txt", nil
}

func (m *Manager) open(path string, opts Options) {
	if opts.NoOpen || m.opener == nil {
		return
	}
	m.opener.Open(path)
}
