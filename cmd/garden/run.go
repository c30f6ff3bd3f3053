package main

import (
	"github.com/spf13/cobra"

	"github.com/Carmen-Shannon/oxy-garden/config"
	"github.com/Carmen-Shannon/oxy-garden/engine"
	"github.com/Carmen-Shannon/oxy-garden/engine/scene"
	"github.com/Carmen-Shannon/oxy-garden/engine/window"
	"github.com/Carmen-Shannon/oxy-garden/logger"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the garden window and drive the avatar with W, A, S, D and Shift",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			log, err := session(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			win, err := window.NewWindow(
				window.WithTitle(cfg.Window.Title),
				window.WithSize(cfg.Window.Width, cfg.Window.Height),
			)
			if err != nil {
				return err
			}
			defer func() { _ = win.Close() }()

			s, err := scene.NewScene("garden",
				scene.WithConfig(cfg),
				scene.WithActive(true),
				scene.WithLogger(log),
				scene.WithAspect(float64(win.Width())/float64(max(win.Height(), 1))),
			)
			if err != nil {
				return err
			}

			e := engine.NewEngine(
				engine.WithWindow(win),
				engine.WithScene(0, s),
				engine.WithTickRate(float64(cfg.Engine.TickRate)),
				engine.WithMaxDelta(cfg.Engine.MaxDelta),
				engine.WithProfiling(cfg.Engine.Profiling),
				engine.WithLogger(log),
			)

			if watch {
				w, err := config.Watch(opts.configPath)
				if err != nil {
					log.Warn("config watch disabled", logger.F("error", err))
				} else {
					defer func() { _ = w.Close() }()
					go applyReloads(w, s, e, log)
				}
			}

			log.Info("garden running", logger.F("title", cfg.Window.Title))
			e.Run()
			return nil
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", true, "reload locomotion tuning when the config file changes")
	return cmd
}

// applyReloads forwards reloaded configs to the scene until the watcher or the engine stops.
func applyReloads(w *config.Watcher, s scene.Scene, e engine.Engine, log logger.Logger) {
	for {
		select {
		case <-e.Done():
			return
		case cfg, ok := <-w.Configs:
			if !ok {
				return
			}
			s.Apply(cfg.Locomotion)
			log.Info("config reloaded", logger.F("run_velocity", cfg.Locomotion.RunVelocity))
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Warn("config reload failed", logger.F("error", err))
		}
	}
}
