// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package config manages JSON configuration loading for the parser. It
// holds debug flags, Template/Block Classifier tuning (sentinel vocabulary,
// numeric-ratio and header-only thresholds), the Ingestor's tab width, the
// sqlite cache store path, and the search-service base URL. Configuration
// is loaded from a paleoparse.json file with sensible defaults.
package config
