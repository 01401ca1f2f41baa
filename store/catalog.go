// Package store implements the relational read path of the catalogue:
// bun models, the listing query planner, the plan executor, and the graph
// loader for single-show lookups. The store is read-only; writes happen in
// the ingestion pipeline, outside this module.
package store

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/uptrace/bun"
)

// ErrNotFound reports that no show exists for the requested identity. It
// is a client-facing condition, distinct from a store fault.
var ErrNotFound = errors.New("show not found")

// Catalog executes listing plans and graph loads against a shared bun
// handle. The handle owns the connection pool; Catalog acquires and
// releases connections per call.
type Catalog struct {
	db *bun.DB
}

// NewCatalog wraps a bun database handle. The caller keeps ownership of
// the handle's lifecycle.
func NewCatalog(db *bun.DB) *Catalog {
	return &Catalog{db: db}
}

// graphRelations are the relations the detailed view needs, loaded in one
// logically-consistent read.
var graphRelations = []string{
	"Rating",
	"Images",
	"Genres",
	"Similars",
	"Episodes",
	"Episodes.Torrents",
	"Episodes.Torrents.Torrent0",
	"Episodes.Torrents.Torrent480",
	"Episodes.Torrents.Torrent720",
	"Episodes.Torrents.Torrent1080",
}

// flatColumns selects the fixed tuple contract of the flat views.
func (c *Catalog) flatSelect() *bun.SelectQuery {
	return c.db.NewSelect().
		TableExpr("shows AS show").
		ColumnExpr("show.title, show.year, show.last_updated").
		ColumnExpr("show.imdb_id, show.tvdb_id, show.genre_names").
		ColumnExpr("rating.percentage, rating.loved, rating.votes, rating.hated, rating.watching").
		ColumnExpr("image.banner, image.fanart, image.poster").
		Join("JOIN show_images AS image ON image.id = show.images_id").
		Join("JOIN ratings AS rating ON rating.id = show.rating_id")
}

// ListShows executes a listing plan and returns one page of flat rows plus
// the total match count. The count comes from a window function so it is
// consistent with the page in a single query. An empty page with zero
// total is a valid result, not an error.
func (c *Catalog) ListShows(ctx context.Context, plan Plan) ([]ShowRow, int, error) {
	q := c.flatSelect().
		ColumnExpr("count(*) OVER () AS total_count")

	for _, p := range plan.Predicates {
		q = q.Where(p.Expr, p.Arg)
	}

	q = q.OrderExpr(plan.Order).
		Offset(plan.Offset).
		Limit(plan.Limit)

	var rows []ShowRow
	if err := q.Scan(ctx, &rows); err != nil {
		return nil, 0, errors.Wrap(err, "store: list shows")
	}

	total := 0
	if len(rows) > 0 {
		total = rows[0].TotalCount
	}
	return rows, total, nil
}

// LightByIMDB loads the flat tuple for a single show by its imdb id.
// Returns ErrNotFound when the identity is absent.
func (c *Catalog) LightByIMDB(ctx context.Context, imdb string) (*ShowRow, error) {
	row := new(ShowRow)
	err := c.flatSelect().
		Where("show.imdb_id = ?", imdb).
		Limit(1).
		Scan(ctx, row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "store: light lookup")
	}
	return row, nil
}

// LoadByIMDB loads one show with its full nested graph: rating, images,
// genres, episodes with torrent quality slots, and similar-show ids.
// Returns ErrNotFound when the identity is absent; an existing show with
// empty collections is a present result.
func (c *Catalog) LoadByIMDB(ctx context.Context, imdb string) (*Show, error) {
	show := new(Show)
	q := c.db.NewSelect().Model(show)
	for _, rel := range graphRelations {
		q = q.Relation(rel)
	}
	err := q.Where("show.imdb_id = ?", imdb).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "store: graph load")
	}
	return show, nil
}
