package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/tOgg1/ranksort/internal/rankcli"
)

func newHashtagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hashtags",
		Short: "List hashtags with item and vote counts",
		Args:  cobra.NoArgs,
		RunE:  runHashtags,
	}
	addConfigFlag(cmd)
	addJSONFlag(cmd)
	return cmd
}

func runHashtags(cmd *cobra.Command, args []string) error {
	rt, err := ensureRuntime(cmd)
	if err != nil {
		return err
	}

	stats := rt.engine.ListHashtags()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	if err := rankcli.RenderHashtags(cmd.OutOrStdout(), stats); err != nil {
		return rankcli.Exitf(rankcli.ExitCodeUsage, "write output: %v", err)
	}
	return nil
}
