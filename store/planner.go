package store

import "strings"

// Page size bounds for the listing endpoint. Out-of-range limits fall
// back to the default instead of erroring; this is a permissive-input
// policy, not validation.
const (
	DefaultPageSize = 20
	MinPageSize     = 20
	MaxPageSize     = 50
)

// Filters carries the already-parsed listing parameters. Zero values mean
// "absent": an absent filter must not restrict the result set.
type Filters struct {
	Page      int
	Limit     int
	MinRating int
	QueryTerm string
	Genre     string
	SortBy    string
}

// Normalize clamps paging, trims text filters, and resolves the sort key
// through the whitelist. The result is the canonical form used both for
// planning and for cache key derivation, so semantically equivalent
// requests share a cache entry.
func (f Filters) Normalize() Filters {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < MinPageSize || f.Limit > MaxPageSize {
		f.Limit = DefaultPageSize
	}
	f.QueryTerm = strings.TrimSpace(f.QueryTerm)
	f.Genre = strings.TrimSpace(f.Genre)
	if _, ok := sortExprs[f.SortBy]; !ok {
		f.SortBy = SortDateAdded
	}
	return f
}

// Predicate is one bound WHERE clause of a plan. Expr contains exactly one
// placeholder; Arg is always passed as a bound parameter, never
// interpolated into the query text.
type Predicate struct {
	Expr string
	Arg  any
}

// Plan is the executable form of a listing request: additive predicates,
// a whitelist-resolved ORDER BY expression, and offset-based paging.
type Plan struct {
	Predicates []Predicate
	Order      string
	Offset     int
	Limit      int
}

// Accepted sort keys. Anything else falls back to SortDateAdded.
const (
	SortTitle     = "title"
	SortYear      = "year"
	SortRating    = "rating"
	SortLoved     = "loved"
	SortVotes     = "votes"
	SortWatching  = "watching"
	SortDateAdded = "date_added"
)

// sortExprs maps client sort tokens to fixed ORDER BY expressions. The
// map is the only path from client input to query text: an unknown token
// never reaches the store.
var sortExprs = map[string]string{
	SortTitle:     "show.title ASC",
	SortYear:      "show.year DESC",
	SortRating:    "rating.percentage DESC",
	SortLoved:     "rating.loved DESC",
	SortVotes:     "rating.votes DESC",
	SortWatching:  "rating.watching DESC",
	SortDateAdded: "show.last_updated DESC",
}

// PlanListing turns filters into an executable plan. Each predicate is
// included only when its input is present; the rating threshold is active
// only inside the open interval (0, 10).
func PlanListing(f Filters) Plan {
	f = f.Normalize()

	p := Plan{
		Order:  sortExprs[f.SortBy],
		Offset: (f.Page - 1) * f.Limit,
		Limit:  f.Limit,
	}

	if f.MinRating > 0 && f.MinRating < 10 {
		p.Predicates = append(p.Predicates, Predicate{
			Expr: "rating.percentage >= ?",
			Arg:  f.MinRating,
		})
	}
	if f.QueryTerm != "" {
		p.Predicates = append(p.Predicates, Predicate{
			Expr: "lower(show.title) LIKE '%' || lower(?) || '%'",
			Arg:  f.QueryTerm,
		})
	}
	if f.Genre != "" {
		p.Predicates = append(p.Predicates, Predicate{
			Expr: "lower(show.genre_names) LIKE '%' || lower(?) || '%'",
			Arg:  f.Genre,
		})
	}

	return p
}
