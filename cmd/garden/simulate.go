package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Carmen-Shannon/oxy-garden/config"
	"github.com/Carmen-Shannon/oxy-garden/engine"
	"github.com/Carmen-Shannon/oxy-garden/engine/input"
	"github.com/Carmen-Shannon/oxy-garden/engine/scene"
	"github.com/Carmen-Shannon/oxy-garden/logger"
)

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "simulate",
		Short: "Replay the configured key script headless and print the final pose",
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

			res, err := simulate(cfg, log)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

// result is the avatar state after a script has been replayed.
type result struct {
	Frames   int
	Position [3]float64
	State    string
	RunMode  bool
	Camera   [3]float64
}

// simulate replays cfg.Simulate.Script against a fresh garden scene, one engine
// step of cfg.Simulate.Delta per frame.
func simulate(cfg *config.Config, log logger.Logger) (result, error) {
	s, err := scene.NewScene("garden",
		scene.WithConfig(cfg),
		scene.WithActive(true),
		scene.WithLogger(log),
	)
	if err != nil {
		return result{}, err
	}
	e := engine.NewEngine(
		engine.WithScene(0, s),
		engine.WithMaxDelta(cfg.Engine.MaxDelta),
		engine.WithProfiling(cfg.Engine.Profiling),
		engine.WithLogger(log),
	)

	frames := 0
	for i, step := range cfg.Simulate.Script {
		s.Input().Hold(input.ParseKeys(step.Keys))
		if step.ToggleRun {
			s.Input().ToggleRun()
		}
		for range step.Frames {
			e.Step(cfg.Simulate.Delta)
			frames++
		}
		log.Debug("script step done",
			logger.F("step", i),
			logger.F("keys", step.Keys),
			logger.F("state", s.Controller().State().String()),
		)
	}

	p := s.Avatar().Position()
	c := s.Camera().Position()
	res := result{
		Frames:   frames,
		Position: [3]float64{p.X(), p.Y(), p.Z()},
		State:    s.Controller().State().String(),
		RunMode:  s.Controller().RunMode(),
		Camera:   [3]float64{c.X(), c.Y(), c.Z()},
	}
	log.Info("simulation finished",
		logger.F("frames", res.Frames),
		logger.F("state", res.State),
		logger.F("x", p.X()),
		logger.F("z", p.Z()),
	)
	return res, nil
}

func printResult(w io.Writer, r result) {
	fmt.Fprintf(w, "frames:   %d\n", r.Frames)
	fmt.Fprintf(w, "state:    %s (run mode %t)\n", r.State, r.RunMode)
	fmt.Fprintf(w, "position: %.3f %.3f %.3f\n", r.Position[0], r.Position[1], r.Position[2])
	fmt.Fprintf(w, "camera:   %.3f %.3f %.3f\n", r.Camera[0], r.Camera[1], r.Camera[2])
}
