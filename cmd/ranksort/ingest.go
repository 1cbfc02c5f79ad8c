package main

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tOgg1/ranksort/internal/core"
	"github.com/tOgg1/ranksort/internal/rankcli"
)

func newIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest <file>",
		Short: "Feed a submission file through the log and reducer",
		Args:  cobra.ExactArgs(1),
		RunE:  runIngest,
	}
	cmd.Flags().String("from", "", "submitter email, for the log envelope")
	cmd.Flags().String("subject", "", "submission subject, for the log envelope")
	addConfigFlag(cmd)
	addJSONFlag(cmd)
	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	rt, err := ensureRuntime(cmd)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return rankcli.Exitf(rankcli.ExitCodeUsage, "read %s: %v", args[0], err)
	}

	from, _ := cmd.Flags().GetString("from")
	subject, _ := cmd.Flags().GetString("subject")

	result, err := rt.engine.Ingest(from, time.Now().UnixMilli(), subject, string(content))
	if err != nil {
		if errors.Is(err, core.ErrNoDSLContent) {
			return rankcli.Exitf(rankcli.ExitCodeFailure, "no dsl content in %s", args[0])
		}
		return rankcli.Exitf(rankcli.ExitCodeFailure, "ingest: %v", err)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	cmd.Printf("accepted %d statement(s) as %s\n", result.AcceptedStatements, result.SourceFilename)
	return nil
}
