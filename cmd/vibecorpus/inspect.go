// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/vibesearch/internal/corpus"
)

func NewInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <artifact>",
		Short: "Report size and data quality of an artifact",
		Long:  `Loads an artifact and reports song count, embedding dimension, duplicate names and zero-norm embeddings.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	c, err := loadArtifact(cmd, args[0])
	if err != nil {
		return err
	}

	stats := c.Stats()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(cmd, struct {
			Path string `json:"path"`
			corpus.Stats
		}{Path: args[0], Stats: stats})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "path:            %s\n", args[0])
	fmt.Fprintf(out, "songs:           %d\n", stats.Songs)
	fmt.Fprintf(out, "dimension:       %d\n", stats.Dim)
	fmt.Fprintf(out, "duplicate names: %d\n", len(stats.DuplicateNames))
	for _, name := range stats.DuplicateNames {
		fmt.Fprintf(out, "  %s\n", name)
	}
	fmt.Fprintf(out, "zero vectors:    %d\n", len(stats.ZeroVectors))
	for _, i := range stats.ZeroVectors {
		fmt.Fprintf(out, "  #%d %s\n", i, c.Name(i))
	}
	return nil
}
