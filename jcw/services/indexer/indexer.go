// Package indexer keeps the marketing copy the assistant answers from.
package indexer

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"jcw/jcw/utils/logging"
	"jcw/jcw/utils/types"

	"go.uber.org/zap"
)

// MaxAge is how long a population stays fresh.
const MaxAge = time.Hour

// RetryBackoff is how long a failed live refresh is not retried while there
// is still content to serve.
const RetryBackoff = time.Minute

// KnownPaths are indexed in this order: home, plans, custom, print, builder.
var KnownPaths = []string{"/", "/websites", "/custom", "/prints", "/build"}

// ErrNothingIndexed is returned when a refresh produced no entries at all.
var ErrNothingIndexed = errors.New("no page could be indexed")

// Source derives the content of one path.
type Source interface {
	Extract(ctx context.Context, path string) (types.PageContent, error)
}

// SnapshotStore persists the last good population.
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, pages []types.PageContent) error
	LoadSnapshot(ctx context.Context) ([]types.PageContent, error)
}

// DefaultPage is what lookups of unindexed paths return.
func DefaultPage(path string) types.PageContent {
	return types.PageContent{
		Path:        path,
		Title:       "Just Code Works",
		Description: "Professional website development services",
		Content:     "Content not yet indexed for this page.",
		Sections:    []types.Section{},
		Services:    []string{},
	}
}

// Indexer caches PageContent per path. Reads and writes are guarded for
// memory safety only; concurrent refreshes are not collapsed and the last
// writer wins.
type Indexer struct {
	source    Source
	snapshots SnapshotStore
	paths     []string
	maxAge    time.Duration
	now       func() time.Time

	mu          sync.RWMutex
	cache       map[string]types.PageContent
	lastUpdated time.Time
	lastFailure time.Time
}

type Option func(*Indexer)

// WithSnapshots enables saving and cold-start seeding from store.
func WithSnapshots(store SnapshotStore) Option {
	return func(ix *Indexer) { ix.snapshots = store }
}

// WithPaths overrides the indexed path list.
func WithPaths(paths ...string) Option {
	return func(ix *Indexer) { ix.paths = slices.Clone(paths) }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(ix *Indexer) { ix.now = now }
}

func New(source Source, opts ...Option) *Indexer {
	ix := &Indexer{
		source: source,
		paths:  slices.Clone(KnownPaths),
		maxAge: MaxAge,
		now:    time.Now,
		cache:  map[string]types.PageContent{},
	}
	for _, opt := range opts {
		opt(ix)
	}
	return ix
}

// ShouldUpdate reports whether the cache was never populated or is stale.
func (ix *Indexer) ShouldUpdate() bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.lastUpdated.IsZero() || ix.now().Sub(ix.lastUpdated) > ix.maxAge
}

// EnsureFresh refreshes only when ShouldUpdate says so, and not again within
// RetryBackoff of a failed refresh unless the cache is empty.
func (ix *Indexer) EnsureFresh(ctx context.Context) error {
	if !ix.ShouldUpdate() || ix.backingOff() {
		return nil
	}
	return ix.Refresh(ctx)
}

func (ix *Indexer) backingOff() bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if len(ix.cache) == 0 || ix.lastFailure.IsZero() {
		return false
	}
	return ix.now().Sub(ix.lastFailure) < RetryBackoff
}

// Refresh re-derives every path. Paths that fail are logged and skipped; if
// none succeed the previous cache is left untouched.
func (ix *Indexer) Refresh(ctx context.Context) error {
	defer logging.LogDuration(ctx, "indexer_refresh")()

	fresh := make(map[string]types.PageContent, len(ix.paths))
	var failed []string
	for _, path := range ix.paths {
		page, err := ix.source.Extract(ctx, path)
		if err != nil {
			logging.ErrorLogger.Error("error indexing page", zap.String("path", path), zap.Error(err))
			failed = append(failed, path)
			continue
		}
		page.Path = path
		fresh[path] = page
	}

	if len(fresh) == 0 {
		ix.mu.Lock()
		ix.lastFailure = ix.now()
		ix.mu.Unlock()
		if ix.seedFromSnapshot(ctx) {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrNothingIndexed, strings.Join(failed, ", "))
	}

	ix.mu.Lock()
	ix.cache = fresh
	ix.lastUpdated = ix.now()
	ix.lastFailure = time.Time{}
	ix.mu.Unlock()

	logging.AppLogger.Info("content indexed",
		zap.Int("pages", len(fresh)),
		zap.Strings("failed", failed),
	)

	if ix.snapshots != nil {
		if err := ix.snapshots.SaveSnapshot(ctx, ix.ordered()); err != nil {
			logging.ErrorLogger.Error("snapshot save failed", zap.Error(err))
		}
	}
	return nil
}

// seedFromSnapshot fills an empty cache from the snapshot store. A cache that
// already has content is never replaced by a snapshot.
func (ix *Indexer) seedFromSnapshot(ctx context.Context) bool {
	if ix.snapshots == nil {
		return false
	}
	ix.mu.RLock()
	populated := len(ix.cache) > 0
	ix.mu.RUnlock()
	if populated {
		return false
	}

	pages, err := ix.snapshots.LoadSnapshot(ctx)
	if err != nil || len(pages) == 0 {
		if err != nil {
			logging.ErrorLogger.Error("snapshot load failed", zap.Error(err))
		}
		return false
	}
	seeded := make(map[string]types.PageContent, len(pages))
	for _, p := range pages {
		if slices.Contains(ix.paths, p.Path) {
			seeded[p.Path] = p
		}
	}
	if len(seeded) == 0 {
		return false
	}

	ix.mu.Lock()
	ix.cache = seeded
	// lastUpdated stays zero so the next request tries the live source again
	ix.mu.Unlock()
	logging.AppLogger.Info("content seeded from snapshot", zap.Int("pages", len(seeded)))
	return true
}

// ordered returns cached entries in path-list order.
func (ix *Indexer) ordered() []types.PageContent {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	out := make([]types.PageContent, 0, len(ix.cache))
	for _, path := range ix.paths {
		if p, ok := ix.cache[path]; ok {
			out = append(out, p)
		}
	}
	return out
}

// AggregateText renders every cached page as one prompt-ready block.
func (ix *Indexer) AggregateText() string {
	var sb strings.Builder
	for _, p := range ix.ordered() {
		writePage(&sb, p)
	}
	return sb.String()
}

func writePage(sb *strings.Builder, p types.PageContent) {
	fmt.Fprintf(sb, "\n\nPage: %s (%s)\n", p.Title, p.Path)
	fmt.Fprintf(sb, "Description: %s\n", p.Description)
	fmt.Fprintf(sb, "Content: %s\n", p.Content)

	if len(p.Sections) > 0 {
		sb.WriteString("Sections:\n")
		for _, s := range p.Sections {
			fmt.Fprintf(sb, "- %s: %s\n", s.Heading, s.Content)
		}
	}
	if len(p.Services) > 0 {
		fmt.Fprintf(sb, "Services: %s\n", strings.Join(p.Services, ", "))
	}
	if len(p.Pricing) > 0 {
		sb.WriteString("Pricing:\n")
		for _, tier := range p.Pricing {
			fmt.Fprintf(sb, "- %s: %s - Features: %s\n", tier.Plan, tier.Price, strings.Join(tier.Features, ", "))
		}
	}
}

// PageContent returns a copy of the cached entry for path, or DefaultPage.
func (ix *Indexer) PageContent(path string) types.PageContent {
	ix.mu.RLock()
	p, ok := ix.cache[path]
	ix.mu.RUnlock()
	if !ok {
		return DefaultPage(path)
	}
	return clonePage(p)
}

// Lookup is PageContent plus whether the path was actually indexed.
func (ix *Indexer) Lookup(path string) (types.PageContent, bool) {
	ix.mu.RLock()
	p, ok := ix.cache[path]
	ix.mu.RUnlock()
	if !ok {
		return DefaultPage(path), false
	}
	return clonePage(p), true
}

// IndexedPaths lists cached paths; order is not significant.
func (ix *Indexer) IndexedPaths() []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	out := make([]string, 0, len(ix.cache))
	for _, path := range ix.paths {
		if _, ok := ix.cache[path]; ok {
			out = append(out, path)
		}
	}
	return out
}

// LastUpdated is the time of the last successful live population.
func (ix *Indexer) LastUpdated() time.Time {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.lastUpdated
}

func clonePage(p types.PageContent) types.PageContent {
	p.Sections = slices.Clone(p.Sections)
	p.Services = slices.Clone(p.Services)
	if p.Pricing != nil {
		tiers := make([]types.PricingTier, len(p.Pricing))
		for i, t := range p.Pricing {
			t.Features = slices.Clone(t.Features)
			tiers[i] = t
		}
		p.Pricing = tiers
	}
	return p
}
