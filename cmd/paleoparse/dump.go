// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/playbymail/paleoparse/blocks"
	"github.com/playbymail/paleoparse/classify"
	"github.com/playbymail/paleoparse/ingest"
	"github.com/playbymail/paleoparse/lex"
)

var cmdDump = &cobra.Command{
	Use:   "dump <path>",
	Short: "Print block segmentation, stats, and classification without constructing tables",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := ingest.Load(args[0])
		if err != nil {
			return err
		}

		template := classify.Detect(lines, nil)
		fmt.Printf("template: %s\n", template)
		if template == classify.Standard {
			fmt.Println("(standard files have no block segmentation to dump)")
			return nil
		}

		th := blocks.DefaultThresholds()
		for _, rb := range blocks.Segment(lines) {
			cb := blocks.Classify(blocks.Stat(rb), th)
			fmt.Printf("block %d..%d: kind=%s header_extent=%d mean_numeric_ratio=%.3f mode[multi]=%d cv[multi]=%.3f\n",
				cb.Start, cb.End, cb.Kind, cb.HeaderExtent, cb.Stats.MeanNumericRatio,
				cb.Stats.ModeTokenCount[lex.MultiSpace], cb.Stats.CVTokenCount[lex.MultiSpace])
		}
		return nil
	},
}
