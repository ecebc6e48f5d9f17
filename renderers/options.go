package renderers

import (
	"github.com/spf13/pflag"

	"github.com/flanksource/docforge/layout"
)

// Format identifiers accepted by the manager.
const (
	FormatPDF  = "pdf"
	FormatDocx = "docx"
	FormatPptx = "pptx"
	FormatText = "txt"
)

// Options controls a single generate call.
type Options struct {
	// Format selects the renderer: pdf, docx, pptx or txt.
	Format string
	// Output is an optional path hint. When empty the per-user documents
	// directory is used and the file is named from the title.
	Output string
	// NoOpen suppresses the open-with-default-application side effect.
	NoOpen bool
	// Layout overrides the layout tunables. Nil means defaults.
	Layout *layout.Config
}

// MergeOptions folds a series of option values left to right; later non-zero
// fields win.
func MergeOptions(opts ...Options) Options {
	merged := Options{}
	for _, opt := range opts {
		if opt.Format != "" {
			merged.Format = opt.Format
		}
		if opt.Output != "" {
			merged.Output = opt.Output
		}
		if opt.NoOpen {
			merged.NoOpen = true
		}
		if opt.Layout != nil {
			merged.Layout = opt.Layout
		}
	}
	return merged
}

// BindFlags adds generate flags to a pflag set (for cobra commands).
func BindFlags(flags *pflag.FlagSet, options *Options) {
	flags.StringVar(&options.Format, "format", FormatPDF, "Output format: pdf, docx, pptx, txt")
	flags.StringVarP(&options.Output, "output", "o", "", "Output file path (default: per-user documents directory)")
	flags.BoolVar(&options.NoOpen, "no-open", false, "Do not open the generated file")
}
