// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/playbymail/paleoparse/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("non-existent file", func(t *testing.T) {
		cfg, err := config.Load("non-existent-file.json", false)
		if err != nil {
			t.Errorf("expected no error for non-existent file, got %v", err)
		}
		if cfg == nil {
			t.Fatalf("expected non-nil config")
		}
		if cfg.Classifier.ScanWindow != 200 {
			t.Errorf("expected default scan window 200, got %d", cfg.Classifier.ScanWindow)
		}
	})

	t.Run("directory error", func(t *testing.T) {
		tmpDir := t.TempDir()
		_, err := config.Load(tmpDir, false)
		if err == nil {
			t.Errorf("expected error for directory, got nil")
		}
	})

	t.Run("empty config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.json")

		if err := os.WriteFile(configFile, []byte("{}"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		cfg, err := config.Load(configFile, false)
		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if cfg.Classifier.ScanWindow != 200 {
			t.Errorf("expected default scan window to survive, got %d", cfg.Classifier.ScanWindow)
		}
	})

	t.Run("partial config overlays defaults", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.json")

		testConfig := config.Config{
			AllowConfig: true,
			Ingest:      config.Ingest_t{TabWidth: 4},
		}
		data, err := json.Marshal(testConfig)
		if err != nil {
			t.Fatalf("failed to marshal test config: %v", err)
		}
		if err := os.WriteFile(configFile, data, 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		cfg, err := config.Load(configFile, false)
		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if !cfg.AllowConfig {
			t.Errorf("expected AllowConfig to be true")
		}
		if cfg.Ingest.TabWidth != 4 {
			t.Errorf("expected tab width 4, got %d", cfg.Ingest.TabWidth)
		}
		// Untouched nested default should survive the overlay.
		if cfg.Classifier.ScanWindow != 200 {
			t.Errorf("expected default scan window to survive, got %d", cfg.Classifier.ScanWindow)
		}
	})

	t.Run("invalid JSON falls back to defaults", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.json")

		if err := os.WriteFile(configFile, []byte("not json"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		cfg, err := config.Load(configFile, true)
		if err != nil {
			t.Errorf("expected no error for invalid JSON, got %v", err)
		}
		if cfg.AllowConfig {
			t.Errorf("expected AllowConfig false for invalid JSON")
		}
	})
}
