package manifest

import (
	"fmt"
	"time"

	"github.com/hupe1980/advkit/pairs"
)

// CurrentVersion is the format version written by Encode.
const CurrentVersion = 1

// Manifest is the persisted record of an index-form pair set.
type Manifest struct {
	Version    int               `json:"version"`
	Name       string            `json:"name,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	Seed       *int64            `json:"seed,omitempty"` // nil when the random source was not seeded by advkit
	NumClasses int               `json:"num_classes"`
	NumSamples int               `json:"num_samples"`
	PosScore   float64           `json:"pos_score"`
	NegScore   float64           `json:"neg_score"`
	Positives  int               `json:"positives"`
	Negatives  int               `json:"negatives"`
	Pairs      []pairs.IndexPair `json:"pairs"`
	Scores     []float64         `json:"scores"`
}

// FromIndexSet builds a manifest for set, generated from numSamples labels
// over numClasses classes with the given scores.
func FromIndexSet(set *pairs.IndexSet, numSamples, numClasses int, pos, neg float64) *Manifest {
	return &Manifest{
		Version:    CurrentVersion,
		CreatedAt:  time.Now().UTC(),
		NumClasses: numClasses,
		NumSamples: numSamples,
		PosScore:   pos,
		NegScore:   neg,
		Positives:  set.Positives,
		Negatives:  set.Negatives,
		Pairs:      set.Pairs,
		Scores:     set.Scores,
	}
}

// IndexSet returns the pair set recorded in the manifest.
func (m *Manifest) IndexSet() *pairs.IndexSet {
	return &pairs.IndexSet{
		Pairs:     m.Pairs,
		Scores:    m.Scores,
		Positives: m.Positives,
		Negatives: m.Negatives,
	}
}

// Len returns the number of recorded pairs.
func (m *Manifest) Len() int { return len(m.Pairs) }

// Validate checks the manifest for internal consistency.
func (m *Manifest) Validate() error {
	if m.NumClasses < 2 {
		return &ValidationError{Field: "num_classes", Reason: fmt.Sprintf("must be at least 2, got %d", m.NumClasses)}
	}
	if m.NumSamples < 0 {
		return &ValidationError{Field: "num_samples", Reason: "must not be negative"}
	}
	if len(m.Pairs) != len(m.Scores) {
		return &ValidationError{Field: "scores", Reason: fmt.Sprintf("%d scores for %d pairs", len(m.Scores), len(m.Pairs))}
	}
	if m.Positives+m.Negatives != len(m.Pairs) {
		return &ValidationError{Field: "positives", Reason: fmt.Sprintf("%d positives + %d negatives != %d pairs", m.Positives, m.Negatives, len(m.Pairs))}
	}

	for i, p := range m.Pairs {
		if p.First < 0 || p.First >= m.NumSamples || p.Second < 0 || p.Second >= m.NumSamples {
			return &ValidationError{Field: "pairs", Reason: fmt.Sprintf("pair %d (%d, %d) outside [0, %d)", i, p.First, p.Second, m.NumSamples)}
		}
	}

	pos := 0
	for i, s := range m.Scores {
		switch s {
		case m.PosScore:
			pos++
		case m.NegScore:
		default:
			return &ValidationError{Field: "scores", Reason: fmt.Sprintf("score %d is %v, want %v or %v", i, s, m.PosScore, m.NegScore)}
		}
	}
	// Equal scores make the split unobservable.
	if m.PosScore != m.NegScore && pos != m.Positives {
		return &ValidationError{Field: "positives", Reason: fmt.Sprintf("recorded %d, scores show %d", m.Positives, pos)}
	}
	return nil
}
