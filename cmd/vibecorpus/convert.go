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

func NewConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert an artifact between JSON and SQLite",
		Long:  `Reads an artifact and writes it in another layout. Song order is preserved.`,
		Args:  cobra.ExactArgs(2),
		RunE:  runConvert,
	}

	cmd.Flags().String("to", "auto", "Output format (auto|json|sqlite), auto uses the output extension")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]

	c, err := loadArtifact(cmd, in)
	if err != nil {
		return err
	}

	raw, _ := cmd.Flags().GetString("to")
	target, err := corpus.ParseFormat(raw)
	if err != nil {
		return err
	}
	if target == corpus.FormatAuto {
		if target, err = corpus.DetectFormat(out); err != nil {
			return err
		}
	}

	switch target {
	case corpus.FormatJSON:
		err = corpus.WriteJSON(c, out)
	case corpus.FormatSQLite:
		err = corpus.WriteSQLite(c, out)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d songs (dim %d) to %s as %s\n", c.Len(), c.Dim(), out, target)
	return nil
}
