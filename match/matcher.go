package match

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/ontomatch/core"
	"github.com/poiesic/ontomatch/storage"
)

// Matcher resolves queries against a normalized term store.
type Matcher struct {
	store     storage.TermStore
	condition *Condition
	logger    *slog.Logger
}

// Option configures a Matcher.
type Option func(*Matcher) error

// WithCondition restricts every lookup to concepts satisfying the extra
// attribute equality.
func WithCondition(cond *Condition) Option {
	return func(m *Matcher) error {
		if cond == nil {
			return fmt.Errorf("condition cannot be nil")
		}
		m.condition = cond
		return nil
	}
}

// WithLogger sets the logger for match diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matcher) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		m.logger = logger
		return nil
	}
}

// NewMatcher creates a Matcher over the given store. The store should have
// been normalized already; without the broad-synonym index only the
// case-sensitive lookups will produce hits.
func NewMatcher(store storage.TermStore, opts ...Option) (*Matcher, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	m := &Matcher{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Match resolves query through the tier cascade and returns the hits of
// the first stage that produced any. A nil slice with a nil error means
// the query matched nothing.
func (m *Matcher) Match(ctx context.Context, query string) ([]*core.Hit, error) {
	return m.MatchWithMonitor(ctx, query, nil)
}

// MatchWithMonitor is Match with per-stage observation. A nil monitor is
// allowed.
func (m *Matcher) MatchWithMonitor(ctx context.Context, query string, monitor MatchMonitor) ([]*core.Hit, error) {
	if monitor == nil {
		monitor = noopMonitor{}
	}
	monitor.Start(query)

	hits, err := m.exactTier(ctx, query, monitor)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		hits, err = m.decompositionTier(ctx, query, monitor)
		if err != nil {
			return nil, err
		}
	}

	monitor.Finish(hits)
	return hits, nil
}

// exactTier runs the three-way lookup on the whole query as written.
func (m *Matcher) exactTier(ctx context.Context, query string, monitor MatchMonitor) ([]*core.Hit, error) {
	hits, err := m.lookupPhrase(ctx, query)
	if err != nil {
		return nil, err
	}
	monitor.AfterExactLookup(hits)
	return hits, nil
}

// decompositionTier walks the sub-phrase groups longest first and stops at
// the first word count that produces hits. Note that the longest group is
// the whole query with its separators collapsed to single spaces, which is
// not necessarily the string the exact tier already tried.
func (m *Matcher) decompositionTier(ctx context.Context, query string, monitor MatchMonitor) ([]*core.Hit, error) {
	for _, group := range decomposeGroups(query) {
		var hits []*core.Hit
		for _, phrase := range group {
			phraseHits, err := m.lookupPhrase(ctx, phrase)
			if err != nil {
				return nil, err
			}
			hits = append(hits, phraseHits...)
		}
		monitor.AfterGroupLookup(strings.Count(group[0], " ")+1, hits)
		if len(hits) > 0 {
			return hits, nil
		}
	}
	return nil, nil
}

// lookupPhrase performs the three-way lookup for a single phrase: labels
// and exact synonyms case-sensitively, then the folded phrase against the
// broad-synonym index. Broad hits are reclassified as label or
// exact-synonym hits by re-checking the concept's own fields, and a
// concept already reported as a label hit for this phrase is not reported
// again.
func (m *Matcher) lookupPhrase(ctx context.Context, phrase string) ([]*core.Hit, error) {
	filters := m.filters()
	var hits []*core.Hit
	labelled := make(map[core.ID]bool)

	concepts, err := m.store.FindByAttribute(ctx, core.AttrLabel, phrase, filters...)
	if err != nil {
		m.logger.Error("label lookup failed", "phrase", phrase, "error", err)
		return nil, err
	}
	for _, c := range concepts {
		hits = append(hits, &core.Hit{
			Concept:     c,
			Kind:        core.MatchLabel,
			MatchedPart: phrase,
		})
		labelled[c.Id] = true
	}

	concepts, err = m.store.FindByAttribute(ctx, core.AttrExactSynonym, phrase, filters...)
	if err != nil {
		m.logger.Error("synonym lookup failed", "phrase", phrase, "error", err)
		return nil, err
	}
	for _, c := range concepts {
		for _, syn := range c.ExactSynonyms {
			if syn == phrase {
				hits = append(hits, &core.Hit{
					Concept:        c,
					Kind:           core.MatchExactSynonym,
					MatchedPart:    phrase,
					MatchedSynonym: syn,
				})
				break
			}
		}
	}

	folded := core.Fold(phrase)
	concepts, err = m.store.FindByAttribute(ctx, core.AttrBroadSynonym, folded, filters...)
	if err != nil {
		m.logger.Error("folded lookup failed", "phrase", phrase, "error", err)
		return nil, err
	}
	for _, c := range concepts {
		label := c.Label()
		if core.Fold(label) == folded {
			if !labelled[c.Id] {
				hits = append(hits, &core.Hit{
					Concept:     c,
					Kind:        core.MatchLabel,
					MatchedPart: phrase,
				})
				labelled[c.Id] = true
			}
			continue
		}
		for _, syn := range c.ExactSynonyms {
			if core.Fold(syn) != folded {
				continue
			}
			// Skip synonyms that are pure case variants of the label.
			if core.Fold(syn) != core.Fold(label) {
				hits = append(hits, &core.Hit{
					Concept:        c,
					Kind:           core.MatchExactSynonym,
					MatchedPart:    phrase,
					MatchedSynonym: syn,
				})
			}
			break
		}
	}

	return hits, nil
}

func (m *Matcher) filters() []storage.Filter {
	if m.condition == nil {
		return nil
	}
	return []storage.Filter{m.condition.filter()}
}
