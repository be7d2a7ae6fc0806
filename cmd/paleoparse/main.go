// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package main implements the paleoparse command-line application.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/playbymail/paleoparse/internal/config"
)

var globalConfig *config.Config

func main() {
	for _, arg := range os.Args {
		if arg == "-version" || arg == "--version" {
			fmt.Printf("%s\n", paleoparseVersion.Short())
			return
		} else if arg == "-build-info" || arg == "--build-info" {
			fmt.Printf("%s\n", paleoparseVersion.String())
			return
		}
	}
	log.SetFlags(log.Lshortfile | log.Ltime)

	const configFileName = "paleoparse.json"
	debugConfigFile := false
	if sb, err := os.Stat(configFileName); err == nil && sb.Mode().IsRegular() {
		debugConfigFile = true
	}
	cfg, err := config.Load(configFileName, debugConfigFile)
	if err != nil && debugConfigFile {
		log.Printf("[config] %q: %v\n", configFileName, err)
	}

	if err := Execute(cfg); err != nil {
		log.Fatal(err)
	}
}

func Execute(cfg *config.Config) error {
	cmdRoot.PersistentFlags().BoolVar(&argsRoot.showVersion, "show-version", false, "show version")
	cmdRoot.PersistentFlags().StringVar(&argsRoot.logFile.name, "log-file", "", "set log file")

	cmdRoot.AddCommand(cmdParse)
	cmdParse.AddCommand(cmdParseFile)
	cmdParse.AddCommand(cmdParseDir)

	cmdRoot.AddCommand(cmdSearch)
	cmdSearch.AddCommand(cmdSearchQuery)

	cmdRoot.AddCommand(cmdDump)

	cmdRoot.AddCommand(cmdVersion)

	if cfg == nil {
		globalConfig = config.Default()
	} else {
		globalConfig = cfg
	}

	return cmdRoot.Execute()
}

var argsRoot struct {
	logFile struct {
		name string
		fd   *os.File
	}
	showVersion bool
}

var cmdRoot = &cobra.Command{
	Use:   "paleoparse",
	Short: "Root command for the paleoparse application",
	Long:  `Parse NOAA paleoclimate data tables out of loosely-structured text files.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if argsRoot.logFile.name != "" {
			fd, err := os.OpenFile(argsRoot.logFile.name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
			if err != nil {
				return err
			}
			argsRoot.logFile.fd = fd
			log.SetOutput(argsRoot.logFile.fd)
			argsRoot.showVersion = true
		}
		if argsRoot.showVersion {
			log.Printf("version: %s\n", paleoparseVersion)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if argsRoot.logFile.fd != nil {
			if err := argsRoot.logFile.fd.Close(); err != nil {
				return err
			}
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}
