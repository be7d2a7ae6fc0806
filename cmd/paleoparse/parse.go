// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	paleoparse "github.com/playbymail/paleoparse"
	"github.com/playbymail/paleoparse/internal/store"
	"github.com/playbymail/paleoparse/table"
)

var argsParse struct {
	useCache bool
}

var cmdParse = &cobra.Command{
	Use:   "parse",
	Short: "Parse paleoclimate data files",
}

var cmdParseFile = &cobra.Command{
	Use:   "file <path>",
	Short: "Parse a single file and print its tables as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tables, err := parseWithCache(args[0])
		if err != nil {
			return err
		}
		return printTables(tables)
	},
}

var cmdParseDir = &cobra.Command{
	Use:   "dir <path>",
	Short: "Parse every .txt file in a directory and print their tables as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := os.ReadDir(args[0])
		if err != nil {
			return err
		}
		for _, e := range entries {
			if e.IsDir() || filepath.Ext(e.Name()) != ".txt" {
				continue
			}
			path := filepath.Join(args[0], e.Name())
			tables, err := parseWithCache(path)
			if err != nil {
				log.Printf("[parse] %s: %v\n", path, err)
				continue
			}
			if err := printTables(tables); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	cmdParseFile.Flags().BoolVar(&argsParse.useCache, "cache", true, "use the sqlite result cache")
	cmdParseDir.Flags().BoolVar(&argsParse.useCache, "cache", true, "use the sqlite result cache")
}

// parseWithCache parses path, consulting and populating the sqlite cache
// by the file's sha256 checksum when caching is enabled.
func parseWithCache(path string) ([]*table.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(data)
	checksum := hex.EncodeToString(sum[:])

	if !argsParse.useCache {
		return paleoparse.ParseFile(path)
	}

	db, err := store.Open(globalConfig.Store.Path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if cached, ok, err := db.GetTable(checksum); err == nil && ok {
		var tables []*table.Table
		if err := json.Unmarshal(cached, &tables); err == nil {
			return tables, nil
		}
	}

	tables, err := paleoparse.ParseFile(path)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(tables); err == nil {
		if err := db.PutTable(checksum, path, payload); err != nil {
			log.Printf("[parse] %s: cache write: %v\n", path, err)
		}
	}
	return tables, nil
}

func printTables(tables []*table.Table) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	for _, tbl := range tables {
		if err := enc.Encode(tbl); err != nil {
			return fmt.Errorf("encode table: %w", err)
		}
	}
	return nil
}
