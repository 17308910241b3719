package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/antwalk/aco"
	"github.com/katalvlaran/antwalk/gridgraph"
	"github.com/katalvlaran/antwalk/roulette"
)

// probeRow is one neighbor of the probed vertex.
type probeRow struct {
	To          string  `json:"to"`
	Cost        float32 `json:"cost"`
	Pheromone   float32 `json:"pheromone"`
	Likelihood  float32 `json:"likelihood"`
	Probability float32 `json:"probability"`
}

func newProbeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe <x> <y>",
		Short: "Show the move distribution out of one vertex on a fresh map",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("x: %w", err)
			}
			y, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("y: %w", err)
			}
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			m, err := aco.NewMap(cfg.Grid.Width, cfg.Grid.Height, cfg.Pheromone.EvaporationRate,
				aco.WithInitialPheromone(cfg.Pheromone.Initial))
			if err != nil {
				return err
			}
			rows, err := probe(m, gridgraph.Vertex{X: x, Y: y})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(out).Encode(rows)
			}
			if len(rows) == 0 {
				fmt.Fprintln(out, "dead end: no neighbor has positive likelihood")
				return nil
			}
			fmt.Fprintf(out, "%-10s %8s %10s %10s %8s\n", "to", "cost", "pheromone", "likelihood", "p")
			for _, r := range rows {
				fmt.Fprintf(out, "%-10s %8.4f %10.4f %10.4f %8.4f\n", r.To, r.Cost, r.Pheromone, r.Likelihood, r.Probability)
			}

			return nil
		},
	}

	return cmd
}

func probe(m *aco.Map, v gridgraph.Vertex) ([]probeRow, error) {
	wheel, err := m.Candidates(v, nil)
	if err != nil {
		return nil, err
	}
	norm := roulette.Normalize(wheel)
	if norm == nil {
		return nil, nil
	}

	rows := make([]probeRow, len(wheel))
	for i, c := range wheel {
		cost, err := m.Cost(v, c.Item)
		if err != nil {
			return nil, err
		}
		ph, err := m.Pheromone(v, c.Item)
		if err != nil {
			return nil, err
		}
		rows[i] = probeRow{
			To:          c.Item.String(),
			Cost:        cost,
			Pheromone:   ph,
			Likelihood:  c.Weight,
			Probability: norm[i].Weight,
		}
	}

	return rows, nil
}
