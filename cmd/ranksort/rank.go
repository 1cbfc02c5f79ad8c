package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/tOgg1/ranksort/internal/dsl"
	"github.com/tOgg1/ranksort/internal/rank"
	"github.com/tOgg1/ranksort/internal/rankcli"
	"github.com/tOgg1/ranksort/internal/state"
)

// newRankCmd is the spec's rank-cli: it parses and reduces a single .sorter
// file standalone, with no log and no prior state, then ranks and prints.
func newRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank <path.sorter> <hashtag> <attribute>",
		Short: "Rank a standalone submission file by hashtag and attribute",
		Args:  cobra.ExactArgs(3),
		RunE:  runRank,
	}
	addJSONFlag(cmd)
	return cmd
}

func runRank(cmd *cobra.Command, args []string) error {
	path, hashtag, attribute := args[0], args[1], args[2]

	content, err := os.ReadFile(path)
	if err != nil {
		return rankcli.Exitf(rankcli.ExitCodeUsage, "read %s: %v", path, err)
	}

	doc, err := dsl.ParseFiltered(string(content))
	if err != nil {
		return rankcli.Exitf(rankcli.ExitCodeFailure, "%v", err)
	}

	reducer := state.NewReducer()
	if err := reducer.ProcessDocument(doc, "0", "", path); err != nil {
		return rankcli.Exitf(rankcli.ExitCodeFailure, "%v", err)
	}

	rankings := rank.ComputeRankings(reducer.State(), hashtag, attribute)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(rankings); err != nil {
			return rankcli.Exitf(rankcli.ExitCodeUsage, "encode output: %v", err)
		}
		return nil
	}

	if err := rankcli.RenderRankings(cmd.OutOrStdout(), hashtag, attribute, rankings); err != nil {
		return rankcli.Exitf(rankcli.ExitCodeUsage, "write output: %v", err)
	}
	return nil
}
