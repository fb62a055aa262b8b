package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/example/go-hakka-tone/internal/config"
	"github.com/example/go-hakka-tone/internal/rules"
	"github.com/example/go-hakka-tone/internal/server"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	activeCfg config.Config

	// appFS backs every file the commands read or write.
	appFS afero.Fs = afero.NewOsFs()
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "hakkatone",
		Short:         "Hakka romanization tone converter and dictionary builder",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded
			setupLogger(loaded.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newBuildCmd())
	cmd.AddCommand(newWrapCmd())
	cmd.AddCommand(newExtractCmd())
	cmd.AddCommand(newDialectsCmd())
	cmd.AddCommand(newBenchCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newHealthCmd())
	cmd.AddCommand(newDoctorCmd())

	return cmd
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(levelStr string) {
	lvl, err := server.ParseLogLevel(levelStr)
	if err != nil {
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

func requireConfig() (config.Config, error) {
	if activeCfg.Rules.ReversePath == "" || activeCfg.Rules.TonePath == "" {
		return config.Config{}, fmt.Errorf("configuration not loaded")
	}
	return activeCfg, nil
}

// loadRules reads the rule files named by cfg.
func loadRules(cfg config.Config) (*rules.Set, error) {
	set, err := rules.Load(appFS, cfg.Rules.ReversePath, cfg.Rules.TonePath)
	if err != nil {
		return nil, err
	}
	slog.Debug("rules loaded",
		"reverse", cfg.Rules.ReversePath,
		"tone", cfg.Rules.TonePath,
		"dialects", len(set.Reverse.DialectReverseMap),
	)
	return set, nil
}
