// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/playbymail/paleoparse/search"
)

var cmdSearch = &cobra.Command{
	Use:   "search",
	Short: "Query the remote table-search service",
}

var cmdSearchQuery = &cobra.Command{
	Use:   "query <text>",
	Short: "Run a search query and print the folded result table as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if globalConfig.Search.BaseURL == "" {
			return fmt.Errorf("search: no base url configured (set Search.BaseURL in paleoparse.json)")
		}
		c, err := search.New(globalConfig.Search.BaseURL)
		if err != nil {
			return err
		}
		requestID, tbl, err := search.Query(context.Background(), c, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "[search] request_id=%s\n", requestID)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tbl)
	},
}
