package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Layout.Columns != 3 || cfg.Layout.CardWidth != 56 || cfg.Defaults.Scale != 2 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if _, err := os.Stat(GetConfigFilePath()); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	again, err := LoadConfig()
	if err != nil {
		t.Fatalf("second LoadConfig() error = %v", err)
	}
	if again.Paths != cfg.Paths || again.Layout != cfg.Layout || again.Defaults != cfg.Defaults {
		t.Errorf("round trip changed config: %+v != %+v", again, cfg)
	}
}

func TestGetConfigFilePath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	want := filepath.Join(dir, "spritedeck", "config.toml")
	if got := GetConfigFilePath(); got != want {
		t.Errorf("GetConfigFilePath() = %q, want %q", got, want)
	}
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		check   func(t *testing.T, cfg *Config)
		wantErr string
	}{
		{
			name: "toml partial",
			file: "config.toml",
			content: `[defaults]
edge = 2

[suits.hearts]
colour = "#00ff00"
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Defaults.Edge != 2 || cfg.Defaults.Top != 1 {
					t.Errorf("defaults = %+v", cfg.Defaults)
				}
				if cfg.Layout.Rows != 19 {
					t.Errorf("missing layout did not keep defaults: %+v", cfg.Layout)
				}
				colours, err := cfg.SuitColours()
				if err != nil {
					t.Fatal(err)
				}
				if got := colours["hearts"]; got != (color.RGBA{0, 255, 0, 255}) {
					t.Errorf("hearts colour = %v", got)
				}
			},
		},
		{
			name: "yaml",
			file: "config.yaml",
			content: `layout:
  style: placeholder
paths:
  output: out
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Layout.Style != "placeholder" || cfg.Paths.Output != "out" {
					t.Errorf("yaml not applied: %+v", cfg)
				}
				if cfg.Paths.Templates != filepath.Join("dev", "art") {
					t.Errorf("templates = %q", cfg.Paths.Templates)
				}
			},
		},
		{
			name:    "bad colour",
			file:    "config.toml",
			content: "[suits.clubs]\ncolour = \"nope\"\n",
			wantErr: "suit clubs",
		},
		{
			name:    "bad style",
			file:    "config.yml",
			content: "layout:\n  style: fancy\n",
			wantErr: "style",
		},
		{
			name:    "too few cells",
			file:    "config.toml",
			content: "[layout]\nrows = 2\n",
			wantErr: "need 57",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			cfg, err := LoadFile(path)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("LoadFile() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSaveYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spritedeck.yml")

	cfg := Default()
	cfg.Defaults.Scale = 1
	cfg.Suits = map[string]SuitOverride{"spades": {Colour: "#101010"}}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if loaded.Defaults.Scale != 1 || loaded.Suits["spades"].Colour != "#101010" {
		t.Errorf("yaml round trip lost settings: %+v", loaded)
	}
}
