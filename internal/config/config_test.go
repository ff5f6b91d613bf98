// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"os"
	"testing"

	"github.com/spf13/afero"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Extension != ".js" {
		t.Errorf("expected default extension to be .js, got %s", cfg.Extension)
	}

	if len(cfg.ExcludeDirs) != 1 || cfg.ExcludeDirs[0] != ".git" {
		t.Errorf("expected default exclude_dirs to be [.git], got %v", cfg.ExcludeDirs)
	}

	if len(cfg.GlobalExport) != 1 || cfg.GlobalExport[0] != "common.js" {
		t.Errorf("expected default global_export to be [common.js], got %v", cfg.GlobalExport)
	}

	if len(cfg.ModuleExport) != 1 || cfg.ModuleExport[0] != "main.js" {
		t.Errorf("expected default module_export to be [main.js], got %v", cfg.ModuleExport)
	}

	if len(cfg.GlobalAPI) != 52 {
		t.Errorf("expected 52 default global API names, got %d", len(cfg.GlobalAPI))
	}

	if cfg.SourceRoot != "" || cfg.DestRoot != "" {
		t.Errorf("expected default roots to be empty, got %q / %q", cfg.SourceRoot, cfg.DestRoot)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "extension without dot",
			mutate:  func(c *Config) { c.Extension = "js" },
			wantErr: ErrInvalidExtension,
		},
		{
			name: "module in both category lists",
			mutate: func(c *Config) {
				c.GlobalExport = []string{"common.js", "main.js"}
			},
			wantErr: ErrCategoryOverlap,
		},
		{
			name:    "empty API name",
			mutate:  func(c *Config) { c.GlobalAPI = append(c.GlobalAPI, "") },
			wantErr: ErrInvalidAPIName,
		},
		{
			name:    "API name with punctuation",
			mutate:  func(c *Config) { c.GlobalAPI = []string{"Send.ToAll"} },
			wantErr: ErrInvalidAPIName,
		},
		{
			name:    "valid config passes",
			mutate:  func(c *Config) {},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want error wrapping %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	content := `source_root = "/src/gsjs"
dest_root = "/out/gsjs"
extension = ".js"
exclude_dirs = [".git", ".svn"]
global_export = ["common.js"]
module_export = ["main.js"]
global_api = ["SendToAll"]
`
	if err := afero.WriteFile(fs, "/cfg/config.toml", []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(LoadOptions{ConfigFilePath: "/cfg/config.toml", Fs: fs})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.SourceRoot != "/src/gsjs" {
		t.Errorf("source_root = %q, want /src/gsjs", cfg.SourceRoot)
	}
	if cfg.DestRoot != "/out/gsjs" {
		t.Errorf("dest_root = %q, want /out/gsjs", cfg.DestRoot)
	}
	if len(cfg.ExcludeDirs) != 2 {
		t.Errorf("exclude_dirs = %v, want two entries", cfg.ExcludeDirs)
	}
	if len(cfg.GlobalAPI) != 1 || cfg.GlobalAPI[0] != "SendToAll" {
		t.Errorf("global_api = %v, want [SendToAll]", cfg.GlobalAPI)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	_, err := Load(LoadOptions{ConfigFilePath: "/cfg/absent.toml", Fs: fs})
	if err == nil {
		t.Fatal("Load() succeeded with a missing explicit config file")
	}
}

func TestLoadInvalidConfigRejected(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	content := `extension = "js"` + "\n"
	if err := afero.WriteFile(fs, "/cfg/config.toml", []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(LoadOptions{ConfigFilePath: "/cfg/config.toml", Fs: fs})
	if !errors.Is(err, ErrInvalidExtension) {
		t.Errorf("Load() = %v, want error wrapping ErrInvalidExtension", err)
	}
}

func TestWriteDefault(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	path := "/cfg/gsjsprep/config.toml"

	if err := WriteDefault(fs, path); err != nil {
		t.Fatalf("WriteDefault() failed: %v", err)
	}

	// The written file must load back as the default configuration.
	cfg, err := Load(LoadOptions{ConfigFilePath: path, Fs: fs})
	if err != nil {
		t.Fatalf("Load() of written defaults failed: %v", err)
	}
	if len(cfg.GlobalAPI) != len(DefaultConfig().GlobalAPI) {
		t.Errorf("written config has %d API names, want %d", len(cfg.GlobalAPI), len(DefaultConfig().GlobalAPI))
	}

	// An existing file is never overwritten.
	err = WriteDefault(fs, path)
	if !errors.Is(err, os.ErrExist) {
		t.Errorf("WriteDefault() over existing file = %v, want error wrapping os.ErrExist", err)
	}
}

func TestAPISet(t *testing.T) {
	t.Parallel()

	cfg := &Config{GlobalAPI: []string{"SendToAll", "NewItem", "SendToAll"}}
	set := cfg.APISet()
	if len(set) != 2 {
		t.Errorf("APISet() has %d entries, want 2", len(set))
	}
	if _, ok := set["SendToAll"]; !ok {
		t.Error("APISet() missing SendToAll")
	}

	sorted := cfg.SortedAPINames()
	want := []string{"NewItem", "SendToAll"}
	if len(sorted) != len(want) || sorted[0] != want[0] || sorted[1] != want[1] {
		t.Errorf("SortedAPINames() = %v, want %v", sorted, want)
	}
}
