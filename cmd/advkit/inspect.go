package main

import (
	"errors"
	"time"

	"github.com/hupe1980/advkit"
	"github.com/hupe1980/advkit/manifest"
	"github.com/hupe1980/advkit/pairs"
	"github.com/spf13/cobra"
)

// InspectResponse summarises a stored manifest.
type InspectResponse struct {
	Name        string            `json:"name"`
	Version     int               `json:"version"`
	CreatedAt   time.Time         `json:"created_at"`
	Seed        *int64            `json:"seed,omitempty"`
	NumClasses  int               `json:"num_classes"`
	NumSamples  int               `json:"num_samples"`
	PosScore    float64           `json:"pos_score"`
	NegScore    float64           `json:"neg_score"`
	Pairs       int               `json:"pairs"`
	Positives   int               `json:"positives"`
	Negatives   int               `json:"negatives"`
	Compression string            `json:"compression"`
	Codec       string            `json:"codec"`
	StoredBytes uint32            `json:"stored_bytes"`
	RawBytes    uint32            `json:"raw_bytes"`
	PairList    []pairs.IndexPair `json:"pair_list,omitempty"`
	Scores      []float64         `json:"scores,omitempty"`
}

func (c *cli) inspectCmd() *cobra.Command {
	var withPairs bool
	cmd := &cobra.Command{
		Use:   "inspect <name>",
		Short: "Show a stored manifest",
		Long: `Load a manifest from the configured store, verify it and print a summary.

Examples:
  advkit inspect run-1
  advkit inspect run-1 --pairs`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd, args[0], withPairs)
		},
	}
	cmd.Flags().BoolVar(&withPairs, "pairs", false, "Include the pair list and scores")
	return cmd
}

func (c *cli) runInspect(cmd *cobra.Command, name string, withPairs bool) error {
	ctx := cmd.Context()

	blobs, err := openStore(ctx, c.cfg.Store)
	if err != nil {
		return configError(err)
	}

	kit := advkit.New(advkit.WithLogger(c.logger))
	m, h, err := kit.LoadPairManifest(ctx, manifest.NewStore(blobs), name)
	if err != nil {
		if errors.Is(err, advkit.ErrCorrupt) || errors.Is(err, advkit.ErrInvalidArgument) {
			return dataError(err)
		}
		return err
	}

	resp := InspectResponse{
		Name:        name,
		Version:     m.Version,
		CreatedAt:   m.CreatedAt,
		Seed:        m.Seed,
		NumClasses:  m.NumClasses,
		NumSamples:  m.NumSamples,
		PosScore:    m.PosScore,
		NegScore:    m.NegScore,
		Pairs:       m.Len(),
		Positives:   m.Positives,
		Negatives:   m.Negatives,
		Compression: h.Compression.String(),
		Codec:       h.Codec,
		StoredBytes: h.Length,
		RawBytes:    h.RawLength,
	}
	if withPairs {
		resp.PairList = m.Pairs
		resp.Scores = m.Scores
	}

	out := cmd.OutOrStdout()
	if c.human {
		outputHuman(out, "%s (v%d, created %s)\n", resp.Name, resp.Version, resp.CreatedAt.Format(time.RFC3339))
		outputHuman(out, "  samples: %d in %d classes\n", resp.NumSamples, resp.NumClasses)
		outputHuman(out, "  pairs:   %d (%d at %g, %d at %g)\n", resp.Pairs, resp.Positives, resp.PosScore, resp.Negatives, resp.NegScore)
		if resp.Seed != nil {
			outputHuman(out, "  seed:    %d\n", *resp.Seed)
		}
		outputHuman(out, "  payload: %d bytes (%s, %s; %d raw)\n", resp.StoredBytes, resp.Compression, resp.Codec, resp.RawBytes)
		for i, p := range resp.PairList {
			outputHuman(out, "  %6d %6d %g\n", p.First, p.Second, resp.Scores[i])
		}
		return nil
	}
	return outputJSON(out, resp)
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [prefix]",
		Short: "List stored manifests",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}

			blobs, err := openStore(cmd.Context(), c.cfg.Store)
			if err != nil {
				return configError(err)
			}
			names, err := manifest.NewStore(blobs).List(cmd.Context(), prefix)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if c.human {
				if len(names) == 0 {
					outputHuman(out, "No manifests\n")
				}
				for _, n := range names {
					outputHuman(out, "%s\n", n)
				}
				return nil
			}
			if names == nil {
				names = []string{}
			}
			return outputJSON(out, names)
		},
	}
}
