package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Memory.DMEMLimit != 16 {
		t.Errorf("Expected DMEMLimit=16, got %d", cfg.Memory.DMEMLimit)
	}
	if cfg.Memory.IMEMLimit != 32 {
		t.Errorf("Expected IMEMLimit=32, got %d", cfg.Memory.IMEMLimit)
	}
	if cfg.Output.Directory != "./output" {
		t.Errorf("Expected Directory=./output, got %s", cfg.Output.Directory)
	}
	if cfg.Output.ForceWrites {
		t.Error("Expected ForceWrites=false")
	}
	if cfg.CLI.Verbose {
		t.Error("Expected Verbose=false")
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()

	if path == "" {
		t.Error("GetConfigPath returned empty string")
	}
	if filepath.Base(path) != "config.toml" {
		t.Errorf("Expected path to end with config.toml, got %s", path)
	}

	switch runtime.GOOS {
	case "darwin", "linux":
		dir := filepath.Dir(path)
		if filepath.Base(dir) != "i281asm" && path != "config.toml" {
			t.Errorf("Expected path in i281asm directory or fallback, got %s", path)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.toml")

	cfg := DefaultConfig()
	cfg.Memory.DMEMLimit = 32
	cfg.Output.ForceWrites = true
	cfg.Output.Directory = "/tmp/out"
	cfg.CLI.Verbose = true

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.Memory.DMEMLimit != 32 {
		t.Errorf("Expected DMEMLimit=32, got %d", loaded.Memory.DMEMLimit)
	}
	if !loaded.Output.ForceWrites {
		t.Error("Expected ForceWrites=true")
	}
	if loaded.Output.Directory != "/tmp/out" {
		t.Errorf("Expected Directory=/tmp/out, got %s", loaded.Output.Directory)
	}
	if !loaded.CLI.Verbose {
		t.Error("Expected Verbose=true")
	}
}

func TestLoadNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.toml")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom should not error on non-existent file: %v", err)
	}

	if cfg.Memory.DMEMLimit != 16 {
		t.Error("Expected default config when file doesn't exist")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.toml")

	invalidTOML := `
[memory]
dmem_limit = "not a number"
`
	if err := os.WriteFile(configPath, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	_, err := LoadFrom(configPath)
	if err == nil {
		t.Error("Expected error when loading invalid TOML")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "subdir1", "subdir2", "config.toml")

	cfg := DefaultConfig()
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	dir := filepath.Dir(configPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("Parent directories were not created")
	}
}
