package nodeflow

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EditorConfig holds the tunables of an Editor. Zero values are not valid;
// start from DefaultEditorConfig.
type EditorConfig struct {
	// MinNodeWidth and MinNodeHeight are applied to nodes added without
	// their own minimum.
	MinNodeWidth  float64 `yaml:"min_node_width" toml:"min_node_width"`
	MinNodeHeight float64 `yaml:"min_node_height" toml:"min_node_height"`
	// HandleSize is the side of the square resize handles, in canvas units.
	HandleSize float64 `yaml:"handle_size" toml:"handle_size"`
	// Alignment enables snapping while dragging.
	Alignment bool `yaml:"alignment" toml:"alignment"`
	// SnapDistance is the snapping range in screen pixels.
	SnapDistance float64 `yaml:"snap_distance" toml:"snap_distance"`
	MinZoom      float64 `yaml:"min_zoom" toml:"min_zoom"`
	MaxZoom      float64 `yaml:"max_zoom" toml:"max_zoom"`
	// ZoomStep is the zoom factor applied per wheel notch.
	ZoomStep float64 `yaml:"zoom_step" toml:"zoom_step"`
	// AutoPanMargin is the width in pixels of the viewport border that
	// triggers auto-panning during a node drag. Zero disables auto-pan.
	AutoPanMargin float64 `yaml:"auto_pan_margin" toml:"auto_pan_margin"`
	// AutoPanSpeed is in screen pixels per second.
	AutoPanSpeed float64 `yaml:"auto_pan_speed" toml:"auto_pan_speed"`
}

// DefaultEditorConfig returns the stock settings.
func DefaultEditorConfig() EditorConfig {
	return EditorConfig{
		MinNodeWidth:  defaultMinWidth,
		MinNodeHeight: defaultMinHeight,
		HandleSize:    10,
		Alignment:     true,
		SnapDistance:  8,
		MinZoom:       0.1,
		MaxZoom:       4,
		ZoomStep:      1.1,
		AutoPanMargin: 24,
		AutoPanSpeed:  400,
	}
}

// Validate reports the first setting that cannot work.
func (c EditorConfig) Validate() error {
	switch {
	case c.MinNodeWidth < 0 || c.MinNodeHeight < 0:
		return errors.New("minimum node size must not be negative")
	case c.HandleSize < 0:
		return errors.New("handle_size must not be negative")
	case c.MinZoom <= 0:
		return errors.New("min_zoom must be positive")
	case c.MaxZoom < c.MinZoom:
		return fmt.Errorf("max_zoom %v is below min_zoom %v", c.MaxZoom, c.MinZoom)
	case c.ZoomStep <= 1:
		return errors.New("zoom_step must be greater than 1")
	case c.AutoPanMargin < 0 || c.AutoPanSpeed < 0:
		return errors.New("auto-pan settings must not be negative")
	}
	return nil
}

// ParseEditorConfig decodes data in the given format ("yaml", "yml" or
// "toml") over the defaults, so missing keys keep their default values.
func ParseEditorConfig(data []byte, format string) (EditorConfig, error) {
	cfg := DefaultEditorConfig()
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return EditorConfig{}, fmt.Errorf("parse editor config: %w", err)
		}
	case "toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return EditorConfig{}, fmt.Errorf("parse editor config: %w", err)
		}
	default:
		return EditorConfig{}, fmt.Errorf("parse editor config: unknown format %q", format)
	}
	if err := cfg.Validate(); err != nil {
		return EditorConfig{}, fmt.Errorf("parse editor config: %w", err)
	}
	return cfg, nil
}

// LoadEditorConfig reads a YAML or TOML file, picking the format from the
// file extension.
func LoadEditorConfig(path string) (EditorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EditorConfig{}, fmt.Errorf("load editor config: %w", err)
	}
	return ParseEditorConfig(data, strings.TrimPrefix(filepath.Ext(path), "."))
}
