package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/tOgg1/ranksort/internal/rankcli"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <item1> <item2> <attribute>",
		Short: "Compare aggregate preference weight between two items",
		Args:  cobra.ExactArgs(3),
		RunE:  runCompare,
	}
	addConfigFlag(cmd)
	addJSONFlag(cmd)
	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	rt, err := ensureRuntime(cmd)
	if err != nil {
		return err
	}

	item1, item2, attribute := args[0], args[1], args[2]
	result, err := rt.engine.Compare(item1, item2, attribute)
	if err != nil {
		return rankcli.Exitf(rankcli.ExitCodeFailure, "compare: %v", err)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if err := rankcli.RenderCompare(cmd.OutOrStdout(), attribute, result); err != nil {
		return rankcli.Exitf(rankcli.ExitCodeUsage, "write output: %v", err)
	}
	return nil
}
