// Package testsupport provides schema and seed helpers for tests that
// exercise the store layer against an in-memory SQLite catalogue.
package testsupport

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/goliatone/go-catalog-gateway/store"
)

// OpenSQLite opens a private in-memory catalogue database for one test.
// The database lives until the test finishes.
func OpenSQLite(t *testing.T) *bun.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	// A shared-cache memory database disappears when its last connection
	// closes; pin the pool to one connection to keep it alive.
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })
	return db
}

// CreateSchema creates every catalogue table.
func CreateSchema(t *testing.T, db *bun.DB) {
	t.Helper()

	ctx := context.Background()
	models := []any{
		(*store.Rating)(nil),
		(*store.ImageSet)(nil),
		(*store.Torrent)(nil),
		(*store.TorrentNode)(nil),
		(*store.Show)(nil),
		(*store.Genre)(nil),
		(*store.Episode)(nil),
		(*store.Similar)(nil),
	}
	for _, m := range models {
		if _, err := db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			t.Fatalf("failed to create table for %T: %v", m, err)
		}
	}
}

// Ptr returns a pointer to v. Fixture shorthand for the many nullable
// columns in the catalogue schema.
func Ptr[T any](v T) *T {
	return &v
}

// FullShow builds a fully-populated show graph: rating, artwork, two
// genres, one date-based episode carrying a single 720p torrent, and one
// similar-show reference. Callers mutate the result before seeding when a
// test needs absent pieces.
func FullShow(imdb, title string) *store.Show {
	return &store.Show{
		IMDBID:      imdb,
		TVDBID:      Ptr(uuid.NewString()),
		Title:       Ptr(title),
		Year:        Ptr(2016),
		Slug:        Ptr("the-" + imdb),
		Synopsis:    Ptr("synopsis for " + title),
		Runtime:     Ptr("60"),
		Country:     Ptr("us"),
		Network:     Ptr("HBO"),
		AirDay:      Ptr("Sunday"),
		AirTime:     Ptr("21:00"),
		Status:      Ptr("returning series"),
		NumSeasons:  2,
		LastUpdated: 1700000000,
		GenreNames:  Ptr("drama,thriller"),
		Rating: &store.Rating{
			Percentage: Ptr(87),
			Loved:      Ptr(95),
			Votes:      Ptr(12345),
			Hated:      Ptr(5),
			Watching:   Ptr(42),
		},
		Images: &store.ImageSet{
			Banner: Ptr("http://img/banner.jpg"),
			Fanart: Ptr("http://img/fanart.jpg"),
			Poster: Ptr("http://img/poster.jpg"),
		},
		Genres: []*store.Genre{
			{Name: "drama"},
			{Name: "thriller"},
		},
		Episodes: []*store.Episode{
			{
				Season:        1,
				EpisodeNumber: 1,
				Title:         Ptr("Pilot"),
				Overview:      Ptr("it begins"),
				FirstAired:    1690000000,
				DateBased:     false,
				TVDBID:        Ptr(uuid.NewString()),
				Torrents: &store.TorrentNode{
					Torrent720: &store.Torrent{
						Seeds:    Ptr(120),
						Peers:    Ptr(30),
						Provider: Ptr("eztv"),
						URL:      Ptr("magnet:?xt=urn:btih:abc"),
					},
				},
			},
		},
		Similars: []*store.Similar{
			{TMDBID: "tmdb-100"},
		},
	}
}

// SeedShow inserts a show graph, wiring up foreign keys as it goes. The
// passed model is updated in place with generated ids.
func SeedShow(t *testing.T, db *bun.DB, show *store.Show) *store.Show {
	t.Helper()

	ctx := context.Background()

	if show.Rating != nil {
		mustInsert(t, db, ctx, show.Rating)
		show.RatingID = &show.Rating.ID
	}
	if show.Images != nil {
		mustInsert(t, db, ctx, show.Images)
		show.ImagesID = &show.Images.ID
	}

	mustInsert(t, db, ctx, show)

	for _, g := range show.Genres {
		g.ShowID = show.ID
		mustInsert(t, db, ctx, g)
	}
	for _, e := range show.Episodes {
		if e.Torrents != nil {
			seedTorrentNode(t, db, ctx, e.Torrents)
			e.TorrentsID = &e.Torrents.ID
		}
		e.ShowID = show.ID
		mustInsert(t, db, ctx, e)
	}
	for _, sim := range show.Similars {
		sim.ShowID = show.ID
		mustInsert(t, db, ctx, sim)
	}

	return show
}

func seedTorrentNode(t *testing.T, db *bun.DB, ctx context.Context, node *store.TorrentNode) {
	t.Helper()

	if node.Torrent0 != nil {
		mustInsert(t, db, ctx, node.Torrent0)
		node.Torrent0ID = &node.Torrent0.ID
	}
	if node.Torrent480 != nil {
		mustInsert(t, db, ctx, node.Torrent480)
		node.Torrent480ID = &node.Torrent480.ID
	}
	if node.Torrent720 != nil {
		mustInsert(t, db, ctx, node.Torrent720)
		node.Torrent720ID = &node.Torrent720.ID
	}
	if node.Torrent1080 != nil {
		mustInsert(t, db, ctx, node.Torrent1080)
		node.Torrent1080ID = &node.Torrent1080.ID
	}
	mustInsert(t, db, ctx, node)
}

func mustInsert(t *testing.T, db *bun.DB, ctx context.Context, model any) {
	t.Helper()

	if _, err := db.NewInsert().Model(model).Exec(ctx); err != nil {
		t.Fatalf("failed to insert %T: %v", model, err)
	}
}
