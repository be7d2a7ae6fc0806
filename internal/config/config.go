// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"reflect"

	"github.com/playbymail/paleoparse/perrors"
)

// Config holds the parser's tunable runtime settings. Every field has a
// sensible zero-value-safe default from Default(); Load overlays whatever
// a JSON file on disk sets on top of those defaults.
type Config struct {
	AllowConfig bool         `json:"AllowConfig,omitempty"`
	DebugFlags  DebugFlags_t `json:"DebugFlags"`
	Classifier  Classifier_t `json:"Classifier"`
	Ingest      Ingest_t     `json:"Ingest"`
	Store       Store_t      `json:"Store"`
	Search      Search_t     `json:"Search"`
}

type DebugFlags_t struct {
	LogFile  bool `json:"LogFile,omitempty"`
	LogTime  bool `json:"LogTime,omitempty"`
	Blocks   bool `json:"Blocks,omitempty"`
	Headers  bool `json:"Headers,omitempty"`
	Metadata bool `json:"Metadata,omitempty"`
}

// Classifier_t holds Template Classifier and Block Classifier settings.
// The parser does not read them; it uses classify.ScanWindow,
// classify.DefaultVocabulary and blocks.DefaultThresholds.
type Classifier_t struct {
	ScanWindow            int      `json:"ScanWindow,omitempty"`
	Vocabulary            []string `json:"Vocabulary,omitempty"`
	NarrativeNumericRatio float64  `json:"NarrativeNumericRatio,omitempty"`
	HeaderOnlyMaxLines    int      `json:"HeaderOnlyMaxLines,omitempty"`
}

// Ingest_t holds Ingestor settings. The Ingestor does not read them; it
// expands tabs to the fixed ingest.TabWidth.
type Ingest_t struct {
	TabWidth int `json:"TabWidth,omitempty"`
}

// Store_t points at the sqlite cache database.
type Store_t struct {
	Path string `json:"Path,omitempty"`
}

// Search_t configures the remote search-service client.
type Search_t struct {
	BaseURL string `json:"BaseURL,omitempty"`
}

func Default() *Config {
	return &Config{
		Classifier: Classifier_t{
			ScanWindow:            200,
			Vocabulary:            []string{"Site_Name", "Variables", "Data", "Title", "Investigators"},
			NarrativeNumericRatio: 0.3,
			HeaderOnlyMaxLines:    5,
		},
		Ingest: Ingest_t{
			TabWidth: 8,
		},
		Store: Store_t{
			Path: "data/paleoparse.db",
		},
	}
}

// Load reads a JSON config file and overlays its non-zero fields onto the
// defaults. A missing file is not an error: the defaults are returned as-is.
func Load(name string, debug bool) (*Config, error) {
	if debug {
		log.Printf("[config] %q: loading configuration...\n", name)
	}
	cfg := Default()
	if sb, err := os.Stat(name); errors.Is(err, os.ErrNotExist) || os.IsNotExist(err) {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if sb.Mode().IsDir() {
		return cfg, perrors.New(perrors.ReadError, name, "is a directory")
	} else if !sb.Mode().IsRegular() {
		return cfg, perrors.New(perrors.ReadError, name, "is not a regular file")
	}

	var tmp Config
	if data, err := os.ReadFile(name); err != nil {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if err = json.Unmarshal(data, &tmp); err != nil {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if debug {
		if nice, err := json.MarshalIndent(tmp, "", "  "); err == nil {
			log.Printf("[config] %s\n", nice)
		} else {
			log.Printf("[config] %q: loaded %s\n", name, string(data))
		}
	}

	copyNonZeroFields(&tmp, cfg)
	return cfg, nil
}

// copyNonZeroFields recursively copies non-zero fields from src to dst using reflection
func copyNonZeroFields(src, dst interface{}) {
	srcVal := reflect.ValueOf(src)
	dstVal := reflect.ValueOf(dst)

	if srcVal.Kind() == reflect.Ptr {
		srcVal = srcVal.Elem()
	}
	if dstVal.Kind() == reflect.Ptr {
		dstVal = dstVal.Elem()
	}

	if srcVal.Kind() != reflect.Struct || dstVal.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < srcVal.NumField(); i++ {
		srcField := srcVal.Field(i)
		dstField := dstVal.Field(i)

		if !srcField.CanInterface() || !dstField.CanSet() {
			continue
		}
		if srcField.IsZero() {
			continue
		}

		switch srcField.Kind() {
		case reflect.Struct:
			copyNonZeroFields(srcField.Interface(), dstField.Addr().Interface())
		default:
			dstField.Set(srcField)
		}
	}
}
