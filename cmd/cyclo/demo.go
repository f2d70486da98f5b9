package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cyclo/digraph"
	"github.com/katalvlaran/cyclo/internal/render"
	"github.com/katalvlaran/cyclo/kahn"
)

// demoCases are the built-in showcase graphs: a 4-vertex graph whose single
// loop is 1→3→1, a diamond DAG, and a 5-vertex graph where the loop 0→1→2→0
// feeds a dangling acyclic tail.
var demoCases = []struct {
	name string
	rows [][]int
}{
	{
		name: "Cyclic Graph",
		rows: [][]int{
			{0, 1, 0, 0},
			{0, 0, 1, 1},
			{0, 0, 0, 0},
			{0, 1, 0, 0}, // edge 3→1 closes the loop 1→3→1
		},
	},
	{
		name: "Acyclic Graph",
		rows: [][]int{
			{0, 1, 1, 0},
			{0, 0, 0, 1},
			{0, 0, 0, 1},
			{0, 0, 0, 0},
		},
	},
	{
		name: "Cyclic Graph with a Dangling Tail",
		rows: [][]int{
			{0, 1, 0, 0, 0},
			{0, 0, 1, 0, 0},
			{1, 0, 0, 1, 0}, // edge 2→0 closes the loop 0→1→2→0
			{0, 0, 0, 0, 1},
			{0, 0, 0, 0, 0},
		},
	},
}

func newDemoCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in showcase graphs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, flags)
		},
	}
}

func runDemo(cmd *cobra.Command, flags *rootFlags) error {
	log, err := newRunLogger(flags)
	if err != nil {
		return err
	}
	log = log.WithFields(map[string]any{"run_id": uuid.NewString(), "command": "demo"})

	out := cmd.OutOrStdout()
	styled := styledOutput(flags)
	fmt.Fprintln(out, render.Section("BFS Cycle Detection (Kahn's Algorithm)", styled))

	start := time.Now()
	for i, demo := range demoCases {
		g, err := digraph.FromMatrix(demo.rows)
		if err != nil {
			return fmt.Errorf("demo %d (%s): %w", i+1, demo.name, err)
		}

		res, err := kahn.Detect(g, kahn.WithContext(cmd.Context()))
		if err != nil {
			return fmt.Errorf("demo %d (%s): %w", i+1, demo.name, err)
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, render.Section(fmt.Sprintf("Demo %d: %s", i+1, demo.name), styled))
		fmt.Fprintln(out, render.Matrix(g, styled))
		fmt.Fprintln(out, render.Report(res, styled))

		log.Debug("demo case classified", map[string]any{
			"case":    demo.name,
			"verdict": res.Verdict.String(),
		})
	}

	log.Info("demo finished", map[string]any{
		"cases":    len(demoCases),
		"duration": time.Since(start).String(),
	})

	return nil
}
