// Package catalog defines the client-facing response shapes for the show
// catalogue and the projections that build them from store results.
package catalog

// Rating carries vote aggregates for a show. All fields are optional: the
// graph projection leaves absent values nil, the flat projection coerces
// them to zero (see project.go for the asymmetry).
type Rating struct {
	Percentage *int `json:"percentage" msgpack:"percentage"`
	Loved      *int `json:"loved" msgpack:"loved"`
	Votes      *int `json:"votes" msgpack:"votes"`
	Hated      *int `json:"hated" msgpack:"hated"`
	Watching   *int `json:"watching" msgpack:"watching"`
}

// Images holds the artwork URLs for a show.
type Images struct {
	Banner *string `json:"banner" msgpack:"banner"`
	Fanart *string `json:"fanart" msgpack:"fanart"`
	Poster *string `json:"poster" msgpack:"poster"`
}

// TorrentQuality describes one torrent link for a quality slot.
type TorrentQuality struct {
	Seeds    *int    `json:"seeds" msgpack:"seeds"`
	Peers    *int    `json:"peers" msgpack:"peers"`
	Provider *string `json:"provider" msgpack:"provider"`
	URL      *string `json:"url" msgpack:"url"`
}

// TorrentSet is the fixed-shape torrent map for an episode. All four
// quality slots are always present in the output; a slot that has no
// torrent recorded carries nil fields, never a missing key.
type TorrentSet struct {
	Quality0    TorrentQuality `json:"0" msgpack:"0"`
	Quality480  TorrentQuality `json:"480p" msgpack:"480p"`
	Quality720  TorrentQuality `json:"720p" msgpack:"720p"`
	Quality1080 TorrentQuality `json:"1080p" msgpack:"1080p"`
}

// Episode is one episode of a show in the detailed view.
type Episode struct {
	Season        int        `json:"season" msgpack:"season"`
	EpisodeNumber int        `json:"episode" msgpack:"episode"`
	Title         *string    `json:"title" msgpack:"title"`
	Overview      *string    `json:"overview" msgpack:"overview"`
	FirstAired    int64      `json:"first_aired" msgpack:"first_aired"`
	DateBased     bool       `json:"date_based" msgpack:"date_based"`
	TVDBID        *string    `json:"tvdb_id" msgpack:"tvdb_id"`
	Torrents      TorrentSet `json:"torrents" msgpack:"torrents"`
}

// ShowLight is the flat, denormalized shape used by the listing endpoint
// and the light point lookup. Missing scalars are coerced to zero values.
type ShowLight struct {
	Title  string `json:"title" msgpack:"title"`
	Year   int    `json:"year" msgpack:"year"`
	Rating Rating `json:"rating" msgpack:"rating"`
	Images Images `json:"images" msgpack:"images"`
	IMDBID string `json:"imdb_id" msgpack:"imdb_id"`
	TVDBID string `json:"tvdb_id" msgpack:"tvdb_id"`
	// Genres is comma-joined in the flat view.
	Genres string `json:"genres" msgpack:"genres"`
}

// ShowPage is the listing response: one page of flat shows plus the total
// number of matches independent of the page size.
type ShowPage struct {
	TotalShows int         `json:"totalShows" msgpack:"totalShows"`
	Shows      []ShowLight `json:"shows" msgpack:"shows"`
}

// ShowDetail is the full graph-projected shape for the detailed point
// lookup. Nullable store columns stay nullable here; the flat-view
// zero-coercion does not apply.
type ShowDetail struct {
	IMDBID      string    `json:"imdb_id" msgpack:"imdb_id"`
	TVDBID      *string   `json:"tvdb_id" msgpack:"tvdb_id"`
	Title       *string   `json:"title" msgpack:"title"`
	Year        *int      `json:"year" msgpack:"year"`
	Slug        *string   `json:"slug" msgpack:"slug"`
	Synopsis    *string   `json:"synopsis" msgpack:"synopsis"`
	Runtime     *string   `json:"runtime" msgpack:"runtime"`
	Country     *string   `json:"country" msgpack:"country"`
	Network     *string   `json:"network" msgpack:"network"`
	AirDay      *string   `json:"air_day" msgpack:"air_day"`
	AirTime     *string   `json:"air_time" msgpack:"air_time"`
	Status      *string   `json:"status" msgpack:"status"`
	NumSeasons  int       `json:"num_seasons" msgpack:"num_seasons"`
	LastUpdated int64     `json:"last_updated" msgpack:"last_updated"`
	Rating      Rating    `json:"rating" msgpack:"rating"`
	Images      Images    `json:"images" msgpack:"images"`
	Genres      []string  `json:"genres" msgpack:"genres"`
	Episodes    []Episode `json:"episodes" msgpack:"episodes"`
	Similar     []string  `json:"similar" msgpack:"similar"`
}
