package nodeflow

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultEditorConfigValid(t *testing.T) {
	if err := DefaultEditorConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestParseEditorConfigYAML(t *testing.T) {
	cfg, err := ParseEditorConfig([]byte("snap_distance: 4\nalignment: false\n"), "yaml")
	if err != nil {
		t.Fatalf("ParseEditorConfig: %v", err)
	}
	if cfg.SnapDistance != 4 || cfg.Alignment {
		t.Errorf("cfg = %+v, want snap 4 with alignment off", cfg)
	}
	if cfg.HandleSize != DefaultEditorConfig().HandleSize {
		t.Errorf("HandleSize = %v, want default", cfg.HandleSize)
	}
}

func TestParseEditorConfigTOML(t *testing.T) {
	cfg, err := ParseEditorConfig([]byte("handle_size = 14\nmax_zoom = 8\n"), "toml")
	if err != nil {
		t.Fatalf("ParseEditorConfig: %v", err)
	}
	if cfg.HandleSize != 14 || cfg.MaxZoom != 8 {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.Alignment {
		t.Error("Alignment should keep its default")
	}
}

func TestParseEditorConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format string
		want   string
	}{
		{"unknown format", "{}", "json", "unknown format"},
		{"bad yaml", "snap_distance: [", "yaml", "parse editor config"},
		{"bad toml", "handle_size = ", "toml", "parse editor config"},
		{"invalid zoom", "min_zoom: 0\n", "yml", "min_zoom"},
		{"zoom order", "min_zoom: 2\nmax_zoom: 1\n", "yaml", "max_zoom"},
		{"zoom step", "zoom_step = 1.0\n", "toml", "zoom_step"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEditorConfig([]byte(tt.data), tt.format)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadEditorConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "editor.toml")
	if err := os.WriteFile(path, []byte("auto_pan_speed = 100\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadEditorConfig(path)
	if err != nil {
		t.Fatalf("LoadEditorConfig: %v", err)
	}
	if cfg.AutoPanSpeed != 100 {
		t.Errorf("AutoPanSpeed = %v, want 100", cfg.AutoPanSpeed)
	}

	if _, err := LoadEditorConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}
