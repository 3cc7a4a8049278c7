package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-inview/internal/scenario"
	"github.com/grindlemire/go-inview/internal/telemetry"
)

type replayOptions struct {
	debounce time.Duration
	json     bool
	metrics  bool
}

func newReplayCmd(root *rootOptions) *cobra.Command {
	opts := &replayOptions{}

	cmd := &cobra.Command{
		Use:   "replay <scenario.yaml>",
		Short: "Replay a scripted scroll and resize session",
		Long: `Loads a YAML scenario, replays its steps through a debounced tracker on a
simulated clock, and prints one line per visibility change.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, root, opts, args[0])
		},
	}

	f := cmd.Flags()
	f.DurationVar(&opts.debounce, "debounce", 0, "Override the scenario debounce period")
	f.BoolVar(&opts.json, "json", false, "Print transitions as NDJSON")
	f.BoolVar(&opts.metrics, "metrics", false, "Print prometheus metrics after the replay")
	return cmd
}

func runReplay(cmd *cobra.Command, root *rootOptions, opts *replayOptions, path string) error {
	logger := root.logger

	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	col, err := telemetry.NewCollector(reg)
	if err != nil {
		return err
	}

	logger.Debug("replaying scenario", "path", path, "name", sc.Name, "steps", len(sc.Steps))
	res, err := scenario.Run(cmd.Context(), sc, scenario.Options{
		Debounce: opts.debounce,
		Observer: col,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("replay %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	if opts.json {
		if err := writeJSON(out, res); err != nil {
			return err
		}
	} else {
		writeText(out, res)
	}

	if opts.metrics {
		return telemetry.WriteText(out, reg)
	}
	return nil
}

func writeText(w io.Writer, res *scenario.Result) {
	fmt.Fprintf(w, "initial inViewport=%v\n", res.Initial)
	for _, tr := range res.Transitions {
		fmt.Fprintf(w, "%8s inViewport=%v\n", tr.At, tr.InViewport)
	}
	fmt.Fprintf(w, "final inViewport=%v signals=%d evaluations=%d elapsed=%s\n",
		res.Final, res.Signals, res.Evaluations, res.Elapsed)
}

type jsonTransition struct {
	AtMillis   int64 `json:"atMs"`
	InViewport bool  `json:"inViewport"`
}

func writeJSON(w io.Writer, res *scenario.Result) error {
	enc := json.NewEncoder(w)
	for _, tr := range res.Transitions {
		if err := enc.Encode(jsonTransition{AtMillis: tr.At.Milliseconds(), InViewport: tr.InViewport}); err != nil {
			return fmt.Errorf("encode transition: %w", err)
		}
	}
	return nil
}
