package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "painterm.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if cfg.Canvas.Width != DefaultWidth || cfg.Canvas.Height != DefaultHeight {
		t.Errorf("canvas = %dx%d, want defaults", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.History.MaxDepth != DefaultDepth {
		t.Errorf("max_depth = %d, want %d", cfg.History.MaxDepth, DefaultDepth)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Palette) == 0 {
		t.Error("default palette is empty")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	// Top-level keys must precede the first table header, or TOML scopes
	// them into that table.
	path := writeConfig(t, `
palette = ["#112233", "#aabbcc"]

[canvas]
width = 120
height = 40

[history]
max_depth = 50

[brush]
glyph = "*"

[keys]
"x" = "tool.eraser"

[log]
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Canvas.Width != 120 || cfg.Canvas.Height != 40 {
		t.Errorf("canvas = %dx%d, want 120x40", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.History.MaxDepth != 50 {
		t.Errorf("max_depth = %d, want 50", cfg.History.MaxDepth)
	}
	if cfg.Keys["x"] != "tool.eraser" {
		t.Errorf("keys[x] = %q", cfg.Keys["x"])
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}

	glyph, err := cfg.BrushGlyph()
	if err != nil {
		t.Fatal(err)
	}
	if glyph != '*' {
		t.Errorf("glyph = %q, want '*'", glyph)
	}

	colors, err := cfg.PaletteColors()
	if err != nil {
		t.Fatal(err)
	}
	if len(colors) != 2 {
		t.Fatalf("palette len = %d, want 2", len(colors))
	}
	if colors[0].R != 0x11 || colors[0].G != 0x22 || colors[0].B != 0x33 {
		t.Errorf("palette[0] = %+v", colors[0])
	}
}

func TestLoadRejectsMisplacedTopLevelKey(t *testing.T) {
	// A top-level key after a table header lands inside that table; strict
	// decoding must reject it rather than keep the default palette.
	path := writeConfig(t, `
[brush]
glyph = "*"

palette = ["#112233", "#aabbcc"]
`)
	if _, err := Load(path); err == nil {
		t.Error("palette scoped under [brush] was silently dropped")
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := writeConfig(t, "pallette = [\"#112233\"]")
	if _, err := Load(path); err == nil {
		t.Error("misspelled key accepted")
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := writeConfig(t, "[canvas\nwidth = ")
	if _, err := Load(path); err == nil {
		t.Error("malformed TOML accepted")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero width", "[canvas]\nwidth = 0\nheight = 24"},
		{"huge height", "[canvas]\nwidth = 80\nheight = 99999"},
		{"zero depth", "[history]\nmax_depth = 0"},
		{"multi-rune glyph", "[brush]\nglyph = \"ab\""},
		{"empty glyph", "[brush]\nglyph = \"\""},
		{"bad palette entry", "palette = [\"notacolor\"]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.body)
			if _, err := Load(path); err == nil {
				t.Errorf("invalid config accepted:\n%s", tt.body)
			}
		})
	}
}

func TestDefaultPaletteParses(t *testing.T) {
	colors, err := Default().PaletteColors()
	if err != nil {
		t.Fatal(err)
	}
	if len(colors) != 8 {
		t.Errorf("palette len = %d, want 8", len(colors))
	}
}
