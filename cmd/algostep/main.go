// Command algostep is a terminal player for the algorithm-visualization
// core: it lists the registered visualizers, replays their operations
// as interactive animations, and exports graph snapshots to PNG.
package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algostep"
	"github.com/katalvlaran/algostep/export"
	"github.com/katalvlaran/algostep/graphdata"
	"github.com/katalvlaran/algostep/playback"
	"github.com/katalvlaran/algostep/viz"
)

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "algostep",
		Short:         "Replay classic algorithms as step-by-step animations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newListCmd(), newPlayCmd(), newExportCmd())

	return root
}

// registry builds a fresh registry with every built-in wired.
func registry() (*viz.Registry, error) {
	r := viz.NewRegistry()
	if err := algostep.RegisterAll(r); err != nil {
		return nil, err
	}

	return r, nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List visualizers and their operations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := registry()
			if err != nil {
				return err
			}
			for _, id := range r.IDs() {
				v, err := r.Lookup(id)
				if err != nil {
					return err
				}
				ops := make([]string, 0, len(v.Actions()))
				for _, a := range v.Actions() {
					ops = append(ops, a.Type)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-36s %s\n", id, v.Name(), strings.Join(ops, ", "))
			}

			return nil
		},
	}
}

func newPlayCmd() *cobra.Command {
	var (
		params []string
		speed  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "play <visualizer> [operation]",
		Short: "Animate one operation interactively",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			r, err := registry()
			if err != nil {
				return err
			}
			v, err := r.Lookup(args[0])
			if err != nil {
				return err
			}

			action := viz.Action{Params: map[string]string{}}
			if len(args) > 1 {
				action.Type = args[1]
			} else if specs := v.Actions(); len(specs) > 0 {
				action.Type = specs[0].Type
			}
			for _, p := range params {
				k, val, ok := strings.Cut(p, "=")
				if !ok {
					return fmt.Errorf("bad --param %q, want key=value", p)
				}
				action.Params[k] = val
			}

			steps, err := algostep.Replay(v, action)
			if err != nil {
				return err
			}
			player, err := playback.NewPlayer(playback.WithSpeed(speed))
			if err != nil {
				return err
			}
			player.Load(steps)

			_, err = tea.NewProgram(newPlayerModel(v, action.Type, player)).Run()

			return err
		},
	}
	cmd.Flags().StringArrayVar(&params, "param", nil, "operation parameter key=value (repeatable)")
	cmd.Flags().DurationVar(&speed, "speed", playback.DefaultSpeed, "delay between steps")

	return cmd
}

func newExportCmd() *cobra.Command {
	var (
		id     string
		op     string
		scale  float64
		stepAt int
	)
	cmd := &cobra.Command{
		Use:   "export <file.png>",
		Short: "Run a graph operation and export one snapshot as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := registry()
			if err != nil {
				return err
			}
			v, err := r.Lookup(id)
			if err != nil {
				return err
			}
			steps, err := algostep.Replay(v, viz.Action{Type: op})
			if err != nil {
				return err
			}

			i := stepAt
			if i < 0 || i >= len(steps) {
				i = len(steps) - 1
			}
			g, ok := steps[i].Snapshot.(graphdata.Graph)
			if !ok {
				return fmt.Errorf("visualizer %q does not produce graph snapshots", id)
			}
			if err := export.GraphPNG(g, args[0], export.WithScale(scale)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (step %d of %d)\n", args[0], i+1, len(steps))

			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "mst", "graph visualizer id (mst or traversal)")
	cmd.Flags().StringVar(&op, "op", "", "operation type; empty means the visualizer default")
	cmd.Flags().Float64Var(&scale, "scale", 2, "pixels per layout unit")
	cmd.Flags().IntVar(&stepAt, "step", -1, "step index to export; -1 means the final step")

	return cmd
}
