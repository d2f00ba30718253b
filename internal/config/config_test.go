package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amonks/dottodo/internal/config"
	"github.com/amonks/dottodo/internal/testsupport"
)

func writeGlobalConfig(t *testing.T, homeDir, content string) string {
	t.Helper()

	path := filepath.Join(homeDir, ".config", "todo", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create global config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write global config: %v", err)
	}
	return path
}

func TestLoad_NotFound(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if cfg.Create.Name != "" || cfg.Create.Deleted != "" {
		t.Errorf("expected empty create defaults, got %+v", cfg.Create)
	}
	if cfg.Global.Dir != "" {
		t.Errorf("expected empty global dir, got %q", cfg.Global.Dir)
	}
	if !cfg.List.Color {
		t.Error("expected color to default to true")
	}
}

func TestLoad_Full(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)

	writeGlobalConfig(t, homeDir, `
[create]
name = "alice"
deleted = "discard"

[global]
dir = "~/notes"

[list]
color = false
`)

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Create.Name != "alice" {
		t.Errorf("Create.Name = %q, expected %q", cfg.Create.Name, "alice")
	}
	if cfg.Create.Deleted != "discard" {
		t.Errorf("Create.Deleted = %q, expected %q", cfg.Create.Deleted, "discard")
	}
	if cfg.Global.Dir != "~/notes" {
		t.Errorf("Global.Dir = %q, expected %q", cfg.Global.Dir, "~/notes")
	}
	if cfg.List.Color {
		t.Error("expected color to be disabled")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	writeGlobalConfig(t, homeDir, "[create\nname = ")

	_, err := config.Load("")
	if err == nil {
		t.Fatal("expected error for invalid TOML")
	}
	if !strings.Contains(err.Error(), "parse config file") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_PathEnvOverride(t *testing.T) {
	testsupport.SetupTestHome(t)

	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("[create]\nname = \"bob\"\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv(config.PathEnv, path)

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Create.Name != "bob" {
		t.Fatalf("Create.Name = %q, expected %q", cfg.Create.Name, "bob")
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	projectDir := t.TempDir()

	writeGlobalConfig(t, homeDir, `
[create]
name = "alice"
deleted = "discard"

[list]
color = false
`)

	projectContent := `
[create]
name = "team"

[list]
color = true
`
	if err := os.WriteFile(filepath.Join(projectDir, config.ProjectFile), []byte(projectContent), 0644); err != nil {
		t.Fatalf("failed to write project config: %v", err)
	}

	cfg, err := config.Load(projectDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Create.Name != "team" {
		t.Errorf("Create.Name = %q, expected %q", cfg.Create.Name, "team")
	}
	if cfg.Create.Deleted != "discard" {
		t.Errorf("Create.Deleted = %q, expected global %q", cfg.Create.Deleted, "discard")
	}
	if !cfg.List.Color {
		t.Error("expected project color to win")
	}
}

func TestLoad_ProjectEmptyOverridesGlobal(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	projectDir := t.TempDir()

	writeGlobalConfig(t, homeDir, "[global]\ndir = \"/srv/todo\"\n")
	if err := os.WriteFile(filepath.Join(projectDir, config.ProjectFile), []byte("[global]\ndir = \"\"\n"), 0644); err != nil {
		t.Fatalf("failed to write project config: %v", err)
	}

	cfg, err := config.Load(projectDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Global.Dir != "" {
		t.Fatalf("expected empty global dir, got %q", cfg.Global.Dir)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[create]\nname = \"  carol  \"\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Create.Name != "carol" {
		t.Fatalf("Create.Name = %q, expected %q", cfg.Create.Name, "carol")
	}
	if !cfg.List.Color {
		t.Fatal("expected color to default to true")
	}
}

func TestSetGlobalDir_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	if err := config.SetGlobalDir(path, "/srv/todo"); err != nil {
		t.Fatalf("set global dir: %v", err)
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Global.Dir != "/srv/todo" {
		t.Fatalf("Global.Dir = %q, expected %q", cfg.Global.Dir, "/srv/todo")
	}
}

func TestSetGlobalDir_KeepsOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[create]
name = "alice"

[global]
dir = "/old"

[list]
color = false
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if err := config.SetGlobalDir(path, "~/notes"); err != nil {
		t.Fatalf("set global dir: %v", err)
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Global.Dir != "~/notes" {
		t.Errorf("Global.Dir = %q, expected %q", cfg.Global.Dir, "~/notes")
	}
	if cfg.Create.Name != "alice" {
		t.Errorf("Create.Name = %q, expected %q", cfg.Create.Name, "alice")
	}
	if cfg.List.Color {
		t.Error("expected color to stay disabled")
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected temp file to be gone, got %v", err)
	}
}

func TestSetGlobalDir_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[global\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if err := config.SetGlobalDir(path, "/srv/todo"); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}
