package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/tOgg1/ranksort/internal/rankcli"
)

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Rebuild state from the configured data directory's log",
		Args:  cobra.NoArgs,
		RunE:  runReplay,
	}
	addConfigFlag(cmd)
	addJSONFlag(cmd)
	return cmd
}

// runReplay calls ensureRuntime, which already replays the log on startup;
// this subcommand exists to surface that count explicitly to an operator.
func runReplay(cmd *cobra.Command, args []string) error {
	rt, err := ensureRuntime(cmd)
	if err != nil {
		return err
	}

	result, err := rt.engine.Replay()
	if err != nil {
		return rankcli.Exitf(rankcli.ExitCodeFailure, "replay: %v", err)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	cmd.Printf("replayed %d/%d record(s), %d skipped\n", result.Applied, result.Total, len(result.Skipped))
	for _, skip := range result.Skipped {
		cmd.Printf("  skipped %s: %s\n", skip.Filename, skip.Reason)
	}
	return nil
}
