// Package resolver maps free-text listing names onto configured properties.
package resolver

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/labstack/gommon/log"
	"github.com/radhian/reservation-reconciliation/consts"
)

// DefaultAutoLinkThreshold is the minimum fuzzy score that links a name without review.
const DefaultAutoLinkThreshold = consts.DefaultAutoLinkThreshold

type Outcome string

const (
	OutcomeManual      Outcome = "manual"
	OutcomeExact       Outcome = "exact"
	OutcomeLearned     Outcome = "learned"
	OutcomeCreated     Outcome = "created"
	OutcomeNeedsReview Outcome = "needs_review"
)

// Store persists what the resolver learns.
//
//go:generate mockgen -destination=mocks/mock_store.go -package=mocks -source=resolver.go Store
type Store interface {
	AddAlias(ctx context.Context, accountID string, propertyID int64, platform, alias string) error
	ProvisionProperty(ctx context.Context, accountID, name, platform string) (PropertyEntry, error)
}

type Options struct {
	// ManualOverrides maps a listing name to a human-confirmed property id.
	ManualOverrides map[string]int64
	AllowAutoLink   bool
	AllowCreate     bool
	CaseSensitive   bool
}

type Resolution struct {
	Outcome      Outcome
	PropertyID   int64
	Confidence   int
	MatchedAlias string
	AliasAdded   bool
	Property     PropertyEntry
}

func (r Resolution) Resolved() bool {
	return r.Outcome != OutcomeNeedsReview
}

type Resolver struct {
	store     Store
	threshold int
}

func New(store Store, threshold int) *Resolver {
	if threshold <= 0 || threshold > 100 {
		threshold = DefaultAutoLinkThreshold
	}
	return &Resolver{store: store, threshold: threshold}
}

func (r *Resolver) Threshold() int {
	return r.threshold
}

// Resolve classifies name against catalog and returns the catalog to use from now on.
// An unmatched name is never an error; only store failures are.
func (r *Resolver) Resolve(ctx context.Context, name, platform string, catalog Catalog, opts Options) (Resolution, Catalog, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Resolution{Outcome: OutcomeNeedsReview}, catalog, nil
	}

	if id, ok := opts.ManualOverrides[name]; ok {
		p, found := catalog.Find(id)
		if !found {
			log.Warnf("[Resolver] manual override for %q points to unknown property %d", name, id)
			return Resolution{Outcome: OutcomeNeedsReview}, catalog, nil
		}
		res := Resolution{Outcome: OutcomeManual, PropertyID: id, Confidence: 100, MatchedAlias: name, Property: p}
		return r.learn(ctx, res, platform, name, catalog)
	}

	if p, alias, ok := exactMatch(catalog, name, platform, opts.CaseSensitive); ok {
		return Resolution{Outcome: OutcomeExact, PropertyID: p.PropertyID, Confidence: 100, MatchedAlias: alias, Property: p}, catalog, nil
	}

	if opts.AllowAutoLink {
		p, alias, score := bestFuzzyMatch(catalog, name)
		if score >= r.threshold {
			log.Infof("[Resolver] linked %q to property %d via %q (score %d)", name, p.PropertyID, alias, score)
			res := Resolution{Outcome: OutcomeLearned, PropertyID: p.PropertyID, Confidence: score, MatchedAlias: alias, Property: p}
			return r.learn(ctx, res, platform, name, catalog)
		}
	}

	if opts.AllowCreate {
		p, err := r.store.ProvisionProperty(ctx, catalog.AccountID, name, platform)
		if err != nil {
			return Resolution{}, catalog, fmt.Errorf("provision property %q: %w", name, err)
		}
		log.Infof("[Resolver] provisioned property %d for %q", p.PropertyID, name)
		return Resolution{Outcome: OutcomeCreated, PropertyID: p.PropertyID, MatchedAlias: name, AliasAdded: true, Property: p}, catalog.withProperty(p), nil
	}

	return Resolution{Outcome: OutcomeNeedsReview}, catalog, nil
}

// learn writes name through to the store as an alias of the resolved property.
func (r *Resolver) learn(ctx context.Context, res Resolution, platform, name string, catalog Catalog) (Resolution, Catalog, error) {
	if res.Property.hasAlias(platform, name) {
		return res, catalog, nil
	}
	if err := r.store.AddAlias(ctx, catalog.AccountID, res.PropertyID, platform, name); err != nil {
		return Resolution{}, catalog, fmt.Errorf("add alias %q to property %d: %w", name, res.PropertyID, err)
	}
	next := catalog.withAlias(res.PropertyID, platform, name)
	res.Property, _ = next.Find(res.PropertyID)
	res.AliasAdded = true
	return res, next, nil
}

func exactMatch(catalog Catalog, name, platform string, caseSensitive bool) (PropertyEntry, string, bool) {
	equal := func(a, b string) bool {
		if caseSensitive {
			return a == b
		}
		return Normalize(a) == Normalize(b)
	}
	for _, p := range catalog.Properties {
		for _, a := range p.Aliases[platform] {
			if equal(a, name) {
				return p, a, true
			}
		}
	}
	for _, p := range catalog.Properties {
		if equal(p.Name, name) {
			return p, p.Name, true
		}
	}
	return PropertyEntry{}, "", false
}

func bestFuzzyMatch(catalog Catalog, name string) (PropertyEntry, string, int) {
	var (
		best      PropertyEntry
		bestAlias string
		bestScore = -1
	)
	for _, p := range catalog.Properties {
		platforms := make([]string, 0, len(p.Aliases))
		for platform := range p.Aliases {
			platforms = append(platforms, platform)
		}
		sort.Strings(platforms)

		candidates := []string{p.Name}
		for _, platform := range platforms {
			candidates = append(candidates, p.Aliases[platform]...)
		}
		for _, c := range candidates {
			if s := Similarity(name, c); s > bestScore {
				best, bestAlias, bestScore = p, c, s
			}
		}
	}
	return best, bestAlias, bestScore
}
