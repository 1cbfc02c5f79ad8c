package main

import (
	"github.com/spf13/cobra"

	"github.com/tOgg1/ranksort/internal/config"
	"github.com/tOgg1/ranksort/internal/core"
	"github.com/tOgg1/ranksort/internal/logging"
	"github.com/tOgg1/ranksort/internal/rankcli"
	"github.com/tOgg1/ranksort/internal/store"
)

// runtime bundles the engine and config a subcommand needs once flags are
// parsed. Built fresh per invocation; there is no long-lived daemon state.
type runtime struct {
	cfg    *config.Config
	engine *core.Engine
}

// ensureRuntime loads config (honoring --config), initializes logging, opens
// the store at cfg.Store.DataDir, and replays the existing log so every
// subcommand other than rank-cli sees consistent prior state.
func ensureRuntime(cmd *cobra.Command) (*runtime, error) {
	configFile, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if configFile != "" {
		cfg, err = config.LoadFromFile(configFile)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, rankcli.Exitf(rankcli.ExitCodeFailure, "load config: %v", err)
	}

	logging.Init(logging.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.Logging.EnableCaller,
	})

	if err := cfg.EnsureDirectories(); err != nil {
		return nil, rankcli.Exitf(rankcli.ExitCodeFailure, "prepare data dir: %v", err)
	}

	st, err := store.New(cfg.Store.DataDir)
	if err != nil {
		return nil, rankcli.Exitf(rankcli.ExitCodeFailure, "open store: %v", err)
	}

	engine := core.NewEngine(st)
	if _, err := engine.Replay(); err != nil {
		return nil, rankcli.Exitf(rankcli.ExitCodeFailure, "replay log: %v", err)
	}

	return &runtime{cfg: cfg, engine: engine}, nil
}

func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to a ranksort.yaml config file")
}

func addJSONFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "emit machine-readable JSON output")
}
