package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/Carmen-Shannon/oxy-garden/config"
	"github.com/Carmen-Shannon/oxy-garden/logger"
)

const defaultConfigPath = "configs/garden.yaml"

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "garden",
		Short:         "Walk the herbal garden avatar",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "path to the garden YAML config")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log.level from the config")

	cmd.AddCommand(newRunCmd(opts), newSimulateCmd(opts))
	return cmd
}

// load reads the config. A missing default config falls back to built-in defaults;
// a missing explicit path is an error.
func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) || cmd.Flags().Changed("config") {
			return nil, err
		}
		cfg = config.Default()
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	return cfg, nil
}

// session builds the run's logger tagged with a fresh session id.
func session(cfg *config.Config) (logger.Logger, error) {
	log, id, err := logger.NewSession(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	log.Debug("session started", logger.F("id", id))
	return log, nil
}
