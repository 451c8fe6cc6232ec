package match

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/ontomatch/core"
	"github.com/poiesic/ontomatch/storage"
)

// NormalizedFlag marks a store whose broad-synonym index has been built.
const NormalizedFlag = "broad-synonyms-normalized"

// Normalizer materializes the case-folded broad-synonym index the matcher
// relies on for case-insensitive lookups. It runs once per store; repeat
// runs detect the flag and return without touching any concept.
type Normalizer struct {
	store  storage.TermStore
	logger *slog.Logger
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer) error

// WithNormalizerLogger sets the logger for normalization progress.
func WithNormalizerLogger(logger *slog.Logger) NormalizerOption {
	return func(n *Normalizer) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		n.logger = logger
		return nil
	}
}

// NewNormalizer creates a Normalizer over the given store.
func NewNormalizer(store storage.TermStore, opts ...NormalizerOption) (*Normalizer, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	n := &Normalizer{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(n); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Run builds the broad-synonym index for every concept in the store. For
// each concept it folds the label and every exact synonym to lower case
// and appends the folded forms to the concept's broad synonyms, then sets
// NormalizedFlag so later runs are no-ops.
func (n *Normalizer) Run(ctx context.Context) error {
	done, err := n.store.HasFlag(ctx, NormalizedFlag)
	if err != nil {
		return fmt.Errorf("checking normalization flag: %w", err)
	}
	if done {
		n.logger.Debug("store already normalized, skipping")
		return nil
	}

	if err := n.store.DeclareAttribute(ctx, core.AttrBroadSynonym); err != nil {
		return fmt.Errorf("declaring broad-synonym attribute: %w", err)
	}

	concepts, err := n.store.AllConcepts(ctx)
	if err != nil {
		return fmt.Errorf("listing concepts: %w", err)
	}

	augmented := 0
	for _, c := range concepts {
		folded := n.foldedForms(c)
		if len(folded) == 0 {
			continue
		}
		if err := n.store.AppendBroadSynonyms(ctx, c.Id, folded...); err != nil {
			return fmt.Errorf("appending broad synonyms for %s: %w", c.TermID, err)
		}
		augmented++
	}

	if err := n.store.SetFlag(ctx, NormalizedFlag); err != nil {
		return fmt.Errorf("setting normalization flag: %w", err)
	}

	n.logger.Info("normalization complete",
		"concepts", len(concepts),
		"augmented", augmented)
	return nil
}

// foldedForms returns the case-folded label and exact synonyms of c that
// should join its broad-synonym set. Membership is checked against the
// authored exact-synonym strings, not their folded forms, so a folded form
// is emitted whenever it does not literally appear among the exact
// synonyms. The store deduplicates the broad set itself.
func (n *Normalizer) foldedForms(c *core.Concept) []string {
	authored := make(map[string]bool, len(c.ExactSynonyms))
	for _, syn := range c.ExactSynonyms {
		authored[syn] = true
	}

	var folded []string
	for _, syn := range c.ExactSynonyms {
		if low := core.Fold(syn); !authored[low] {
			folded = append(folded, low)
		}
	}
	if low := core.Fold(c.Label()); !authored[low] {
		folded = append(folded, low)
	}
	return folded
}
