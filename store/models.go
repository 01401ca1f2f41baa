package store

import "github.com/uptrace/bun"

// Show is the root catalogue record. Relations cover the full graph the
// detailed view needs: rating, artwork, genre rows, episodes with their
// torrent quality slots, and similar-show references.
type Show struct {
	bun.BaseModel `bun:"table:shows,alias:show"`

	ID          int64   `bun:"id,pk,autoincrement"`
	IMDBID      string  `bun:"imdb_id,notnull,unique"`
	TVDBID      *string `bun:"tvdb_id"`
	Title       *string `bun:"title"`
	Year        *int    `bun:"year"`
	Slug        *string `bun:"slug"`
	Synopsis    *string `bun:"synopsis"`
	Runtime     *string `bun:"runtime"`
	Country     *string `bun:"country"`
	Network     *string `bun:"network"`
	AirDay      *string `bun:"air_day"`
	AirTime     *string `bun:"air_time"`
	Status      *string `bun:"status"`
	NumSeasons  int     `bun:"num_seasons"`
	LastUpdated int64   `bun:"last_updated"`
	// GenreNames is the comma-joined denormalization used by the flat
	// view and the genre containment filter. The Genres relation holds
	// the same data as rows for the graph view.
	GenreNames *string `bun:"genre_names"`
	RatingID   *int64  `bun:"rating_id"`
	ImagesID   *int64  `bun:"images_id"`

	Rating   *Rating    `bun:"rel:belongs-to,join:rating_id=id"`
	Images   *ImageSet  `bun:"rel:belongs-to,join:images_id=id"`
	Genres   []*Genre   `bun:"rel:has-many,join:id=show_id"`
	Episodes []*Episode `bun:"rel:has-many,join:id=show_id"`
	Similars []*Similar `bun:"rel:has-many,join:id=show_id"`
}

// Rating holds the vote aggregates for one show. Every column is nullable
// at the storage layer.
type Rating struct {
	bun.BaseModel `bun:"table:ratings,alias:rating"`

	ID         int64 `bun:"id,pk,autoincrement"`
	Percentage *int  `bun:"percentage"`
	Loved      *int  `bun:"loved"`
	Votes      *int  `bun:"votes"`
	Hated      *int  `bun:"hated"`
	Watching   *int  `bun:"watching"`
}

// ImageSet holds the artwork URLs for one show.
type ImageSet struct {
	bun.BaseModel `bun:"table:show_images,alias:image"`

	ID     int64   `bun:"id,pk,autoincrement"`
	Banner *string `bun:"banner"`
	Fanart *string `bun:"fanart"`
	Poster *string `bun:"poster"`
}

// Genre is one genre row of a show.
type Genre struct {
	bun.BaseModel `bun:"table:show_genres,alias:genre"`

	ID     int64  `bun:"id,pk,autoincrement"`
	ShowID int64  `bun:"show_id,notnull"`
	Name   string `bun:"name,notnull"`
}

// Similar references a related show by its external id.
type Similar struct {
	bun.BaseModel `bun:"table:show_similars,alias:similar"`

	ID     int64  `bun:"id,pk,autoincrement"`
	ShowID int64  `bun:"show_id,notnull"`
	TMDBID string `bun:"tmdb_id,notnull"`
}

// Episode belongs to one show and owns a torrent node with up to four
// quality slots.
type Episode struct {
	bun.BaseModel `bun:"table:episodes,alias:episode"`

	ID            int64   `bun:"id,pk,autoincrement"`
	ShowID        int64   `bun:"show_id,notnull"`
	Season        int     `bun:"season"`
	EpisodeNumber int     `bun:"episode_number"`
	Title         *string `bun:"title"`
	Overview      *string `bun:"overview"`
	FirstAired    int64   `bun:"first_aired"`
	DateBased     bool    `bun:"date_based"`
	TVDBID        *string `bun:"tvdb_id"`
	TorrentsID    *int64  `bun:"torrents_id"`

	Torrents *TorrentNode `bun:"rel:belongs-to,join:torrents_id=id"`
}

// TorrentNode fans an episode out to its per-quality torrent records.
// A nil slot means no torrent was recorded for that quality.
type TorrentNode struct {
	bun.BaseModel `bun:"table:torrent_nodes,alias:torrents"`

	ID            int64  `bun:"id,pk,autoincrement"`
	Torrent0ID    *int64 `bun:"torrent0_id"`
	Torrent480ID  *int64 `bun:"torrent480_id"`
	Torrent720ID  *int64 `bun:"torrent720_id"`
	Torrent1080ID *int64 `bun:"torrent1080_id"`

	Torrent0    *Torrent `bun:"rel:belongs-to,join:torrent0_id=id"`
	Torrent480  *Torrent `bun:"rel:belongs-to,join:torrent480_id=id"`
	Torrent720  *Torrent `bun:"rel:belongs-to,join:torrent720_id=id"`
	Torrent1080 *Torrent `bun:"rel:belongs-to,join:torrent1080_id=id"`
}

// Torrent is one torrent link.
type Torrent struct {
	bun.BaseModel `bun:"table:torrents,alias:torrent"`

	ID       int64   `bun:"id,pk,autoincrement"`
	Seeds    *int    `bun:"seeds"`
	Peers    *int    `bun:"peers"`
	Provider *string `bun:"provider"`
	URL      *string `bun:"url"`
}

// ShowRow is the flat tuple produced by the listing query: one row per
// show across the shows/ratings/images join, plus the window total.
// Every column except the window count is nullable.
type ShowRow struct {
	Title       *string `bun:"title"`
	Year        *int    `bun:"year"`
	Percentage  *int    `bun:"percentage"`
	Loved       *int    `bun:"loved"`
	Votes       *int    `bun:"votes"`
	Hated       *int    `bun:"hated"`
	Watching    *int    `bun:"watching"`
	LastUpdated *int64  `bun:"last_updated"`
	Banner      *string `bun:"banner"`
	Fanart      *string `bun:"fanart"`
	Poster      *string `bun:"poster"`
	IMDBID      *string `bun:"imdb_id"`
	TVDBID      *string `bun:"tvdb_id"`
	GenreNames  *string `bun:"genre_names"`
	TotalCount  int     `bun:"total_count"`
}
