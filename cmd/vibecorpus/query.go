// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/vibesearch/internal/api"
	"github.com/tomtom215/vibesearch/internal/logging"
	"github.com/tomtom215/vibesearch/internal/recommend"
)

func NewQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <artifact> <song>",
		Short: "Recommend songs from an artifact without running the server",
		Long:  `Runs the same matching and ranking as the server. Exits non-zero when no song matches.`,
		Args:  cobra.ExactArgs(2),
		RunE:  runQuery,
	}

	cmd.Flags().IntP("top-k", "k", 5, "Number of recommendations")
	return cmd
}

func runQuery(cmd *cobra.Command, args []string) error {
	c, err := loadArtifact(cmd, args[0])
	if err != nil {
		return err
	}

	rec, err := recommend.FromCorpus(c, logging.WithComponent("query"))
	if err != nil {
		return err
	}

	topK, _ := cmd.Flags().GetInt("top-k")
	asJSON, _ := cmd.Flags().GetBool("json")

	result := rec.Recommend(cmd.Context(), args[1], topK)
	if asJSON {
		resp, err := api.NewRecommendResponse(result)
		if err != nil {
			return err
		}
		if err := writeJSON(cmd, resp); err != nil {
			return err
		}
		if nm, ok := result.(recommend.NoMatch); ok {
			return nm.Err()
		}
		return nil
	}

	switch res := result.(type) {
	case recommend.Match:
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "matched: %s\n", res.Name)
		for _, s := range res.Recommendations {
			fmt.Fprintf(out, "%.4f  %s\n", s.Similarity, s.Song)
		}
		return nil
	case recommend.NoMatch:
		return res.Err()
	default:
		return fmt.Errorf("unexpected result %T", res)
	}
}
