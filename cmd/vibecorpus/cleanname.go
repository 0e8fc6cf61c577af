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

func NewCleanNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean-name <filename>...",
		Short: "Derive display names from audio filenames",
		Long:  `Turns Jamendo-style filenames such as 001-2285379-Artist-Title.mp3 into "Artist - Title".`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCleanName,
	}
}

func runCleanName(cmd *cobra.Command, args []string) error {
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		out := make([]map[string]string, 0, len(args))
		for _, filename := range args {
			out = append(out, map[string]string{
				"filename": filename,
				"name":     corpus.CleanSongName(filename),
			})
		}
		return writeJSON(cmd, out)
	}

	for _, filename := range args {
		fmt.Fprintln(cmd.OutOrStdout(), corpus.CleanSongName(filename))
	}
	return nil
}
