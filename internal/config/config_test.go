package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigYAMLRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Server.BaseURL = "http://climate.example:9000"
	cfg.Chat.HistorySize = 8

	if err := WriteConfig(tmpDir, cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	loaded, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}

	if loaded.Server.BaseURL != "http://climate.example:9000" {
		t.Errorf("Server.BaseURL: got %q, want %q", loaded.Server.BaseURL, "http://climate.example:9000")
	}
	if loaded.Chat.HistorySize != 8 {
		t.Errorf("Chat.HistorySize: got %d, want 8", loaded.Chat.HistorySize)
	}
}

func TestDefaultConfigServerDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.BaseURL != "http://localhost:8000" {
		t.Errorf("default BaseURL: got %q", cfg.Server.BaseURL)
	}
	if cfg.Server.MaxResults != 5 {
		t.Errorf("default MaxResults: got %d, want 5", cfg.Server.MaxResults)
	}
}

func TestDefaultConfigSeedsGreeting(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Chat.Greeting == "" {
		t.Error("default greeting should not be empty")
	}
	if cfg.Chat.HistorySize != 5 {
		t.Errorf("default HistorySize: got %d, want 5", cfg.Chat.HistorySize)
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	if _, err := ReadConfig(t.TempDir()); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestReadConfigPartialFile(t *testing.T) {
	// An older config without the chat or log sections should still parse.
	tmpDir := t.TempDir()
	partial := `version: 1
server:
  base_url: http://localhost:8000
  max_results: 3
`
	if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte(partial), 0644); err != nil {
		t.Fatalf("writing partial config: %v", err)
	}

	cfg, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed on partial config: %v", err)
	}
	if cfg.Server.MaxResults != 3 {
		t.Errorf("Server.MaxResults: got %d, want 3", cfg.Server.MaxResults)
	}
	if cfg.Chat.Greeting != "" {
		t.Errorf("Chat.Greeting should be zero value, got %q", cfg.Chat.Greeting)
	}
}

func TestLogPathFallback(t *testing.T) {
	cfg := DefaultConfig()
	got := cfg.LogPath("/tmp/pc")
	if got != filepath.Join("/tmp/pc", "policychat.log") {
		t.Errorf("LogPath fallback: got %q", got)
	}

	cfg.Log.Path = "/var/log/pc.log"
	if cfg.LogPath("/tmp/pc") != "/var/log/pc.log" {
		t.Errorf("LogPath override: got %q", cfg.LogPath("/tmp/pc"))
	}
}
