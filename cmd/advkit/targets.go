package main

import (
	"errors"
	"fmt"

	"github.com/hupe1980/advkit"
	"github.com/hupe1980/advkit/labels"
	"github.com/spf13/cobra"
)

// TargetsResponse is the output of the targets command.
type TargetsResponse struct {
	Mode    string      `json:"mode"`
	Seed    *int64      `json:"seed,omitempty"`
	Targets []int       `json:"targets"`
	OneHot  [][]float64 `json:"one_hot,omitempty"`
}

func (c *cli) targetsCmd() *cobra.Command {
	var (
		path    string
		classes int
		seed    int64
		mode    string
		legacy  bool
		oneHot  bool
	)

	cmd := &cobra.Command{
		Use:   "targets",
		Short: "Draw a random wrong-class target for every label",
		Long: `Draw, for every label, a class different from it.

--legacy (or --mode per-class) draws one target per class and shares it
between all samples of that class, as older tooling did.

Examples:
  advkit targets --labels test.txt --classes 10 --seed 1
  advkit targets --labels test.txt --classes 10 --legacy --one-hot`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ids, err := readLabels(path)
			if err != nil {
				return dataError(fmt.Errorf("reading labels: %w", err))
			}

			tm, err := labels.ParseTargetMode(mode)
			if err != nil {
				return err
			}
			if legacy {
				tm = labels.PerClass
			}

			kit := c.newKit(cmd, seed, advkit.WithTargetMode(tm))
			targets, err := kit.RandomTargetIDs(cmd.Context(), labels.Scalar(ids), classes)
			if err != nil {
				if errors.Is(err, advkit.ErrInvalidArgument) {
					return dataError(err)
				}
				return err
			}

			resp := TargetsResponse{Mode: tm.String(), Targets: targets}
			if s, ok := kit.Seed(); ok {
				resp.Seed = &s
			}
			if oneHot {
				m, err := labels.ToCategorical(targets, classes)
				if err != nil {
					return err
				}
				resp.OneHot = m.ToRows()
			}

			out := cmd.OutOrStdout()
			if c.human {
				for i, t := range targets {
					outputHuman(out, "%d\t%d -> %d\n", i, ids[i], t)
				}
				return nil
			}
			return outputJSON(out, resp)
		},
	}

	cmd.Flags().StringVar(&path, "labels", "", "Label file (JSON, YAML or one integer per line)")
	cmd.Flags().IntVar(&classes, "classes", 0, "Number of classes")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (default: config seed or current time)")
	cmd.Flags().StringVar(&mode, "mode", "per-sample", "Target mode: per-sample or per-class")
	cmd.Flags().BoolVar(&legacy, "legacy", false, "Shorthand for --mode per-class")
	cmd.Flags().BoolVar(&oneHot, "one-hot", false, "Also print targets as one-hot rows")
	_ = cmd.MarkFlagRequired("labels")
	_ = cmd.MarkFlagRequired("classes")
	return cmd
}
