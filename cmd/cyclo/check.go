package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cyclo/internal/config"
	"github.com/katalvlaran/cyclo/internal/render"
	"github.com/katalvlaran/cyclo/kahn"
)

// errCyclicGraph marks the cyclic outcome so main can translate it into
// exitCyclic; by the time it is returned the report is already on stdout.
var errCyclicGraph = errors.New("graph is cyclic")

type checkOptions struct {
	configPath string
	quiet      bool
}

func newCheckCmd(flags *rootFlags) *cobra.Command {
	opts := checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Classify a YAML-described graph and print one witness cycle if any",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to the YAML graph document")
	cmd.MarkFlagRequired("config") //nolint:errcheck
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress the adjacency matrix dump")

	return cmd
}

func runCheck(cmd *cobra.Command, flags *rootFlags, opts checkOptions) error {
	log, err := newRunLogger(flags)
	if err != nil {
		return err
	}
	log = log.WithFields(map[string]any{"run_id": uuid.NewString(), "command": "check"})

	start := time.Now()
	log.Debug("loading graph document", map[string]any{"config": opts.configPath})

	doc, err := config.Load(opts.configPath)
	if err != nil {
		log.WithErr(err).Error("document rejected")

		return err
	}

	g, err := doc.Build()
	if err != nil {
		log.WithErr(err).Error("graph construction failed")

		return err
	}

	res, err := kahn.Detect(g, kahn.WithContext(cmd.Context()))
	if err != nil {
		log.WithErr(err).Error("detection failed")

		return err
	}

	out := cmd.OutOrStdout()
	styled := styledOutput(flags)
	if !opts.quiet {
		fmt.Fprintln(out, render.Matrix(g, styled))
	}
	fmt.Fprintln(out, render.Report(res, styled))

	log.Info("graph classified", map[string]any{
		"name":      doc.Name,
		"vertices":  g.VertexCount(),
		"edges":     g.EdgeCount(),
		"verdict":   res.Verdict.String(),
		"processed": res.Processed,
		"duration":  time.Since(start).String(),
	})

	if res.Verdict == kahn.VerdictCyclic {
		return errCyclicGraph
	}

	return nil
}
