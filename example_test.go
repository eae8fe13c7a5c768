package advkit_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/advkit"
	"github.com/hupe1980/advkit/blobstore"
	"github.com/hupe1980/advkit/labels"
	"github.com/hupe1980/advkit/manifest"
	"github.com/hupe1980/advkit/testutil"
)

// Example_pairIndices shows the draw order of pair generation with a
// scripted random source.
func Example_pairIndices() {
	// Per sample: same-class rank, other-class offset, other-class rank.
	kit := advkit.New(advkit.WithRand(testutil.NewScriptedRNG(
		1, 0, 0,
		0, 0, 1,
		0, 0, 1,
		1, 0, 0,
	)))

	set, err := kit.GeneratePairIndices(context.Background(), []int{0, 0, 1, 1}, 2, 1, -1)
	if err != nil {
		log.Fatal(err)
	}

	for i, p := range set.Pairs {
		fmt.Println(p.First, p.Second, set.Scores[i])
	}
	// Output:
	// 0 1 1
	// 0 2 -1
	// 1 0 1
	// 1 3 -1
	// 2 2 1
	// 2 1 -1
	// 3 3 1
	// 3 0 -1
}

// Example_randomTargets draws a wrong class for every sample.
func Example_randomTargets() {
	kit := advkit.New(advkit.WithRand(testutil.NewScriptedRNG(0, 0, 1)))

	ids, err := kit.RandomTargetIDs(context.Background(), labels.Scalar([]int{0, 1, 2}), 3)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(ids)
	// Output: [1 0 1]
}

// Example_labelConf reads the most confident class per row.
func Example_labelConf() {
	preds, err := labels.FromRows([][]float64{
		{0.1, 0.7, 0.2},
		{0.5, 0.5, 0.0},
	})
	if err != nil {
		log.Fatal(err)
	}

	kit := advkit.New()
	confs, ids, err := kit.LabelConf(preds)
	if err != nil {
		log.Fatal(err)
	}

	hard, err := kit.LabelsFromConfidences(preds)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(confs, ids)
	fmt.Println(hard.ToRows())
	// Output:
	// [0.7 0.5] [1 0]
	// [[0 1 0] [0.5 0.5 0]]
}

// Example_manifest saves a pair set and loads it back.
func Example_manifest() {
	ctx := context.Background()
	store := manifest.NewStore(blobstore.NewMemoryStore())
	kit := advkit.New(advkit.WithSeed(7))

	m, _, err := kit.SavePairManifest(ctx, store, "train", []int{0, 1, 0, 1, 2, 2}, 3, 1, -1)
	if err != nil {
		log.Fatal(err)
	}

	loaded, h, err := kit.LoadPairManifest(ctx, store, "train")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(m.Len(), *loaded.Seed, h.Codec)
	// Output: 12 7 go-json
}
