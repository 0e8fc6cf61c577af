// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package main

import (
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/vibesearch/internal/corpus"
	"github.com/tomtom215/vibesearch/internal/logging"
)

func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vibecorpus",
		Short:         "Inspect, convert and query song embedding artifacts",
		Long:          `Offline tooling for the embedding artifacts served by vibesearch.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level, _ := cmd.Flags().GetString("log-level")
			logging.Init(logging.Config{
				Level:  level,
				Format: "console",
				Output: cmd.ErrOrStderr(),
			})
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	addPersistentFlags(rootCmd)
	rootCmd.AddCommand(
		NewInspectCmd(),
		NewConvertCmd(),
		NewCleanNameCmd(),
		NewQueryCmd(),
	)

	return rootCmd
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("format", "auto", "Artifact format (auto|json|sqlite)")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("log-level", "warn", "Log level (debug|info|warn|error)")
}

// loadArtifact loads path using the --format flag.
func loadArtifact(cmd *cobra.Command, path string) (*corpus.Corpus, error) {
	raw, _ := cmd.Flags().GetString("format")
	format, err := corpus.ParseFormat(raw)
	if err != nil {
		return nil, err
	}
	return corpus.Load(path, format)
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
