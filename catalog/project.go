package catalog

import "github.com/goliatone/go-catalog-gateway/store"

// The two projection modes deliberately disagree about absent values. The
// flat mode collapses NULL columns to zero values because listing clients
// render every field; the graph mode keeps absence explicit so detail
// clients can distinguish "no rating recorded" from "rated zero". Both
// behaviors are documented per-endpoint contracts.

// ProjectRow maps one flat listing tuple to the light response shape,
// defaulting missing scalars to the type's zero value.
func ProjectRow(r store.ShowRow) ShowLight {
	return ShowLight{
		Title: strVal(r.Title),
		Year:  intVal(r.Year),
		Rating: Rating{
			Percentage: ptr(intVal(r.Percentage)),
			Loved:      ptr(intVal(r.Loved)),
			Votes:      ptr(intVal(r.Votes)),
			Hated:      ptr(intVal(r.Hated)),
			Watching:   ptr(intVal(r.Watching)),
		},
		Images: Images{
			Banner: ptr(strVal(r.Banner)),
			Fanart: ptr(strVal(r.Fanart)),
			Poster: ptr(strVal(r.Poster)),
		},
		IMDBID: strVal(r.IMDBID),
		TVDBID: strVal(r.TVDBID),
		Genres: strVal(r.GenreNames),
	}
}

// ProjectShow maps a loaded show graph to the detailed response shape.
// Absent sub-entities surface with all fields nil rather than zeroed, and
// the torrent set always carries its four quality slots.
func ProjectShow(s *store.Show) *ShowDetail {
	d := &ShowDetail{
		IMDBID:      s.IMDBID,
		TVDBID:      s.TVDBID,
		Title:       s.Title,
		Year:        s.Year,
		Slug:        s.Slug,
		Synopsis:    s.Synopsis,
		Runtime:     s.Runtime,
		Country:     s.Country,
		Network:     s.Network,
		AirDay:      s.AirDay,
		AirTime:     s.AirTime,
		Status:      s.Status,
		NumSeasons:  s.NumSeasons,
		LastUpdated: s.LastUpdated,
		Genres:      make([]string, 0, len(s.Genres)),
		Episodes:    make([]Episode, 0, len(s.Episodes)),
		Similar:     make([]string, 0, len(s.Similars)),
	}

	if s.Rating != nil {
		d.Rating = Rating{
			Percentage: s.Rating.Percentage,
			Loved:      s.Rating.Loved,
			Votes:      s.Rating.Votes,
			Hated:      s.Rating.Hated,
			Watching:   s.Rating.Watching,
		}
	}
	if s.Images != nil {
		d.Images = Images{
			Banner: s.Images.Banner,
			Fanart: s.Images.Fanart,
			Poster: s.Images.Poster,
		}
	}

	for _, g := range s.Genres {
		d.Genres = append(d.Genres, g.Name)
	}
	for _, e := range s.Episodes {
		d.Episodes = append(d.Episodes, projectEpisode(e))
	}
	for _, sim := range s.Similars {
		d.Similar = append(d.Similar, sim.TMDBID)
	}

	return d
}

func projectEpisode(e *store.Episode) Episode {
	return Episode{
		Season:        e.Season,
		EpisodeNumber: e.EpisodeNumber,
		Title:         e.Title,
		Overview:      e.Overview,
		FirstAired:    e.FirstAired,
		DateBased:     e.DateBased,
		TVDBID:        e.TVDBID,
		Torrents:      projectTorrents(e.Torrents),
	}
}

// projectTorrents builds the fixed four-slot set. A nil node or slot
// yields an empty slot, keeping the key present in the output.
func projectTorrents(n *store.TorrentNode) TorrentSet {
	if n == nil {
		return TorrentSet{}
	}
	return TorrentSet{
		Quality0:    projectQuality(n.Torrent0),
		Quality480:  projectQuality(n.Torrent480),
		Quality720:  projectQuality(n.Torrent720),
		Quality1080: projectQuality(n.Torrent1080),
	}
}

func projectQuality(t *store.Torrent) TorrentQuality {
	if t == nil {
		return TorrentQuality{}
	}
	return TorrentQuality{
		Seeds:    t.Seeds,
		Peers:    t.Peers,
		Provider: t.Provider,
		URL:      t.URL,
	}
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intVal(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func ptr[T any](v T) *T {
	return &v
}
