package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/antwalk/render"
	"github.com/katalvlaran/antwalk/sim"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Walk a fixed number of steps and print a summary",
		Example: `  antwalk run --steps 10000
  antwalk run --config walk.yaml --seed 42 --svg walk.svg
  antwalk run --policy halt --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			svgPath, _ := cmd.Flags().GetString("svg")
			showFrame, _ := cmd.Flags().GetBool("frame")
			jsonOut, _ := cmd.Flags().GetBool("json")
			if steps < 0 {
				return fmt.Errorf("--steps must be >= 0 (got %d)", steps)
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Walk.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			if cmd.Flags().Changed("policy") {
				cfg.Walk.OnExhausted, _ = cmd.Flags().GetString("policy")
			}

			s, err := sim.New(cfg, newLogger(cfg, cmd.ErrOrStderr()), nil)
			if err != nil {
				return err
			}
			sum, err := s.Run(steps)
			if err != nil {
				return fmt.Errorf("run %s: %w", s.ID, err)
			}

			if svgPath != "" {
				if err := writeSVG(svgPath, s); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(out).Encode(sum)
			}
			if showFrame {
				fmt.Fprint(out, render.Terminal(s.Frame()))
			}
			printSummary(cmd, sum)
			if svgPath != "" {
				fmt.Fprintf(out, "svg:         %s\n", svgPath)
			}

			return nil
		},
	}

	cmd.Flags().Int("steps", 1000, "Number of steps to walk")
	cmd.Flags().Int64("seed", 0, "Override walk.seed (0 seeds from the clock)")
	cmd.Flags().String("policy", "", "Override walk.on_exhausted (halt, clear_exclusions, restart)")
	cmd.Flags().String("svg", "", "Write the final walk as SVG to this path")
	cmd.Flags().Bool("frame", false, "Print the final grid before the summary")

	return cmd
}

func printSummary(cmd *cobra.Command, sum sim.Summary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run:         %s\n", sum.RunID)
	fmt.Fprintf(out, "grid:        %dx%d (policy %s)\n", sum.Width, sum.Height, sum.Policy)
	fmt.Fprintf(out, "steps:       %d of %d\n", sum.Steps, sum.Requested)
	fmt.Fprintf(out, "backtracks:  %d\n", sum.Backtracks)
	fmt.Fprintf(out, "exhaustions: %d\n", sum.Exhaustions)
	fmt.Fprintf(out, "path:        %d vertices, %d excluded\n", sum.PathLength, sum.Exclusions)
	fmt.Fprintf(out, "visited:     %d distinct\n", sum.Distinct)
	fmt.Fprintf(out, "current:     %s\n", sum.Current)
	if sum.Halted {
		fmt.Fprintln(out, "status:      halted (path exhausted)")
	}
	fmt.Fprintf(out, "elapsed:     %s\n", sum.Elapsed)
}

func writeSVG(path string, s *sim.Simulation) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create svg: %w", err)
	}
	if err := render.SVG(f, s.Frame(), s.Window()); err != nil {
		f.Close()
		return fmt.Errorf("write svg %s: %w", path, err)
	}

	return f.Close()
}
