// Package layout implements the shared greedy line-wrapping and
// capacity-overflow logic used by the renderers.
package layout

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the layout tunables. The defaults encode assumptions about
// one specific font/metrics combination (Calibri at 16pt with 1.3 leading)
// and are deliberately overridable rather than baked in.
type Config struct {
	// CharsPerLine is the wrap budget for slide body text.
	CharsPerLine int `yaml:"chars_per_line"`
	// FontPt is the slide body font size in points.
	FontPt float64 `yaml:"font_pt"`
	// Leading is the line-height multiplier applied to FontPt.
	Leading float64 `yaml:"leading"`
	// RegionHeightIn is the slide content region height in inches.
	RegionHeightIn float64 `yaml:"region_height_in"`
	// SoftenInterval is the word-character run length after which an
	// invisible break opportunity is inserted.
	SoftenInterval int `yaml:"soften_interval"`
}

// DefaultConfig returns the tuning the renderers ship with.
func DefaultConfig() Config {
	return Config{
		CharsPerLine:   55,
		FontPt:         16,
		Leading:        1.3,
		RegionHeightIn: 5.0,
		SoftenInterval: 15,
	}
}

// MaxLines reports how many wrapped lines fit in the content region before a
// new slide must start.
func (c Config) MaxLines() int {
	return int((c.RegionHeightIn * 72) / (c.FontPt * c.Leading))
}

// Validate rejects tunables the layout math cannot work with. SoftenInterval
// may be zero or negative; that disables softening.
func (c Config) Validate() error {
	if c.CharsPerLine <= 0 {
		return fmt.Errorf("chars_per_line must be positive, got %d", c.CharsPerLine)
	}
	if c.FontPt <= 0 {
		return fmt.Errorf("font_pt must be positive, got %g", c.FontPt)
	}
	if c.Leading <= 0 {
		return fmt.Errorf("leading must be positive, got %g", c.Leading)
	}
	if c.RegionHeightIn <= 0 {
		return fmt.Errorf("region_height_in must be positive, got %g", c.RegionHeightIn)
	}
	return nil
}

// LoadConfig reads a Config from a YAML file, filling unset fields from the
// defaults. A config that fails validation is rejected here rather than
// surfacing later inside a renderer.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read layout config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse layout config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid layout config: %w", err)
	}
	return cfg, nil
}
