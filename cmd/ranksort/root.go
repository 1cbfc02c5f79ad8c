package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ranksort",
		Short:         "Collaborative ranking engine driven by an email-shaped DSL",
		Long:          "ranksort ingests #hashtag/:attribute/vote submissions, keeps an append-only log, and ranks items with rank centrality.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	cmd.AddCommand(
		newRankCmd(),
		newIngestCmd(),
		newReplayCmd(),
		newHashtagsCmd(),
		newCompareCmd(),
	)

	return cmd
}

func execute(version string) error {
	return newRootCmd(version).Execute()
}
