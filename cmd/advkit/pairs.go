package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hupe1980/advkit"
	"github.com/hupe1980/advkit/codec"
	"github.com/hupe1980/advkit/manifest"
	"github.com/spf13/cobra"
)

// PairsResponse is the output of the pairs command.
type PairsResponse struct {
	Name        string `json:"name"`
	Samples     int    `json:"samples"`
	Pairs       int    `json:"pairs"`
	Positives   int    `json:"positives"`
	Negatives   int    `json:"negatives"`
	Seed        *int64 `json:"seed,omitempty"`
	Compression string `json:"compression"`
	Codec       string `json:"codec"`
	StoredBytes uint32 `json:"stored_bytes"`
	RawBytes    uint32 `json:"raw_bytes"`
}

type pairsFlags struct {
	labels      string
	classes     int
	seed        int64
	pos         float64
	neg         float64
	name        string
	compression string
	codec       string
}

func (c *cli) pairsCmd() *cobra.Command {
	f := &pairsFlags{}
	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "Generate a pair set and save it as a manifest",
		Long: `Generate one positive and one negative pair per sample and save the
result as a manifest in the configured store.

Examples:
  advkit pairs --labels train.txt --classes 10 --seed 42
  advkit pairs --labels train.json --classes 10 --name run-1 --compression lz4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runPairs(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.labels, "labels", "", "Label file (JSON, YAML or one integer per line)")
	cmd.Flags().IntVar(&f.classes, "classes", 0, "Number of classes")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Random seed (default: config seed or current time)")
	cmd.Flags().Float64Var(&f.pos, "pos", 1, "Score of positive pairs")
	cmd.Flags().Float64Var(&f.neg, "neg", 0, "Score of negative pairs")
	cmd.Flags().StringVar(&f.name, "name", "", "Manifest name (default: label file name)")
	cmd.Flags().StringVar(&f.compression, "compression", "", "Payload compression: none, lz4, zstd (default from config)")
	cmd.Flags().StringVar(&f.codec, "codec", "", "Payload codec: go-json, json (default from config)")
	_ = cmd.MarkFlagRequired("labels")
	_ = cmd.MarkFlagRequired("classes")
	return cmd
}

func (c *cli) runPairs(cmd *cobra.Command, f *pairsFlags) error {
	ctx := cmd.Context()

	ids, err := readLabels(f.labels)
	if err != nil {
		return dataError(fmt.Errorf("reading labels: %w", err))
	}

	pos, neg := c.cfg.Pairs.Pos, c.cfg.Pairs.Neg
	if cmd.Flags().Changed("pos") {
		pos = f.pos
	}
	if cmd.Flags().Changed("neg") {
		neg = f.neg
	}

	compName := firstNonEmpty(f.compression, c.cfg.Pairs.Compression)
	comp, err := manifest.ParseCompression(compName)
	if err != nil {
		return err
	}
	codecName := firstNonEmpty(f.codec, c.cfg.Pairs.Codec, codec.Default.Name())
	cd, ok := codec.ByName(codecName)
	if !ok {
		return fmt.Errorf("unknown codec %q", codecName)
	}

	name := f.name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(f.labels), filepath.Ext(f.labels))
	}

	blobs, err := openStore(ctx, c.cfg.Store)
	if err != nil {
		return configError(err)
	}

	kit := c.newKit(cmd, f.seed)
	m, h, err := kit.SavePairManifest(ctx, manifest.NewStore(blobs), name, ids, f.classes, pos, neg,
		manifest.WithCompression(comp), manifest.WithCodec(cd))
	if err != nil {
		if errors.Is(err, advkit.ErrInvalidArgument) {
			return dataError(err)
		}
		return err
	}

	resp := PairsResponse{
		Name:        name,
		Samples:     len(ids),
		Pairs:       m.Len(),
		Positives:   m.Positives,
		Negatives:   m.Negatives,
		Seed:        m.Seed,
		Compression: h.Compression.String(),
		Codec:       h.Codec,
		StoredBytes: h.Length,
		RawBytes:    h.RawLength,
	}

	out := cmd.OutOrStdout()
	if c.human {
		outputHuman(out, "Saved %s: %d pairs (%d positive, %d negative) from %d samples\n",
			resp.Name, resp.Pairs, resp.Positives, resp.Negatives, resp.Samples)
		if resp.Seed != nil {
			outputHuman(out, "  seed:    %d\n", *resp.Seed)
		}
		outputHuman(out, "  payload: %d bytes (%s, %s; %d raw)\n", resp.StoredBytes, resp.Compression, resp.Codec, resp.RawBytes)
		return nil
	}
	return outputJSON(out, resp)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
