package gateway

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/goliatone/go-catalog-gateway/cache"
	"github.com/goliatone/go-catalog-gateway/catalog"
	"github.com/goliatone/go-catalog-gateway/observe"
	"github.com/goliatone/go-catalog-gateway/store"
)

// Catalog is the read surface of the relational store the service
// orchestrates: plan execution for listings, flat and graph loads for
// point lookups.
type Catalog interface {
	ListShows(ctx context.Context, plan store.Plan) ([]store.ShowRow, int, error)
	LightByIMDB(ctx context.Context, imdb string) (*store.ShowRow, error)
	LoadByIMDB(ctx context.Context, imdb string) (*store.Show, error)
}

// Interface assertion to ensure the bun-backed catalog satisfies the
// service's contract.
var _ Catalog = (*store.Catalog)(nil)

// ListingTTL bounds the lifetime of cached listing pages. Listings drift
// as the catalogue grows, so they expire daily; point lookups are
// comparatively stable and are cached with the backend's default policy
// (no explicit TTL).
const ListingTTL = 24 * time.Hour

// Request kinds used as cache key prefixes.
const (
	kindListing = "shows:list"
	kindLight   = "shows:light"
	kindDetail  = "shows:detail"
)

// Service is the query gateway: it composes the key deriver, cache
// gateway, query planner, graph loader, and projector into the
// cache-aside read path. Each request flows one way: params -> key ->
// cache lookup -> (miss) -> store query -> projection -> cache write ->
// response.
type Service struct {
	cat   Catalog
	cache *cache.Gateway
	keys  cache.KeyDeriver
	sink  observe.Sink
}

// New wires a service. All collaborators are injected; the service holds
// no mutable state of its own, so one instance serves concurrent
// requests.
func New(cat Catalog, cacheGw *cache.Gateway, keys cache.KeyDeriver, sink observe.Sink) *Service {
	return &Service{
		cat:   cat,
		cache: cacheGw,
		keys:  keys,
		sink:  sink,
	}
}

// List serves one page of the filtered, sorted catalogue. The cache key
// derives from the normalized filters, so requests that clamp to the same
// page share an entry. Concurrent cold-cache requests for the same key
// all fall through to the store and all repopulate; the last write wins
// and entries are idempotent, so no coalescing is attempted.
func (s *Service) List(ctx context.Context, f store.Filters) (*catalog.ShowPage, error) {
	f = f.Normalize()
	key := s.keys.DeriveKey(kindListing, f.Page, f.Limit, f.MinRating, f.QueryTerm, f.Genre, f.SortBy)

	if !refreshRequested(ctx) {
		if page, ok := cache.Lookup[*catalog.ShowPage](ctx, s.cache, key); ok {
			return page, nil
		}
	}

	rows, total, err := s.cat.ListShows(ctx, store.PlanListing(f))
	if err != nil {
		return nil, errors.Wrap(err, "gateway: listing")
	}

	page := &catalog.ShowPage{
		TotalShows: total,
		Shows:      make([]catalog.ShowLight, 0, len(rows)),
	}
	for _, r := range rows {
		page.Shows = append(page.Shows, catalog.ProjectRow(r))
	}

	cache.Fill(ctx, s.cache, key, page, ListingTTL)
	return page, nil
}

// GetLight serves the flat shape for a single show. Returns
// store.ErrNotFound when the identity is absent; not-found is a client
// condition and is never cached or logged as a fault.
func (s *Service) GetLight(ctx context.Context, imdb string) (*catalog.ShowLight, error) {
	key := s.keys.DeriveKey(kindLight, imdb)

	if !refreshRequested(ctx) {
		if light, ok := cache.Lookup[*catalog.ShowLight](ctx, s.cache, key); ok {
			return light, nil
		}
	}

	row, err := s.cat.LightByIMDB(ctx, imdb)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "gateway: light lookup")
	}

	light := catalog.ProjectRow(*row)
	cache.Fill(ctx, s.cache, key, &light, 0)
	return &light, nil
}

// GetDetail serves the full graph-projected shape for a single show.
// Returns store.ErrNotFound when the identity is absent.
func (s *Service) GetDetail(ctx context.Context, imdb string) (*catalog.ShowDetail, error) {
	key := s.keys.DeriveKey(kindDetail, imdb)

	if !refreshRequested(ctx) {
		if detail, ok := cache.Lookup[*catalog.ShowDetail](ctx, s.cache, key); ok {
			return detail, nil
		}
	}

	show, err := s.cat.LoadByIMDB(ctx, imdb)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "gateway: graph lookup")
	}

	detail := catalog.ProjectShow(show)
	cache.Fill(ctx, s.cache, key, detail, 0)
	return detail, nil
}
