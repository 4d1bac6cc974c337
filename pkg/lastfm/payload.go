package lastfm

import (
	"fmt"

	"github.com/trackfetch/lastfm-client/pkg/pagination"
	"github.com/trackfetch/lastfm-client/pkg/schema"
)

// Raw response shapes. Last.fm nests every list under a method-specific key
// with pagination metadata in "@attr", and serializes numbers and booleans
// as strings; the schema coercion types normalize those.

// pageAttr is the pagination metadata common to all list responses.
type pageAttr struct {
	Page       schema.Int `json:"page"`
	PerPage    schema.Int `json:"perPage"`
	Total      schema.Int `json:"total"`
	TotalPages schema.Int `json:"totalPages"`
}

func (a pageAttr) validate() error {
	if a.Page < 1 {
		return fmt.Errorf("missing pagination metadata (@attr)")
	}
	return nil
}

// artistPayload covers both artist encodings: the compact form puts the
// name under "#text", the extended form under "name" with a URL.
type artistPayload struct {
	Text string `json:"#text"`
	Name string `json:"name"`
	MBID string `json:"mbid"`
	URL  string `json:"url"`
}

func (a artistPayload) toArtist() Artist {
	name := a.Name
	if name == "" {
		name = a.Text
	}
	return Artist{Name: name, MBID: a.MBID, URL: a.URL}
}

type albumPayload struct {
	Text string `json:"#text"`
	MBID string `json:"mbid"`
}

// recentTrackPayload is one entry of user.getRecentTracks. The date is
// absent and "@attr".nowplaying set while the track is still playing.
type recentTrackPayload struct {
	MBID   string        `json:"mbid"`
	Name   string        `json:"name"`
	URL    string        `json:"url"`
	Artist artistPayload `json:"artist"`
	Album  albumPayload  `json:"album"`
	Loved  schema.Bool   `json:"loved"`
	Date   *struct {
		UTS schema.UnixTime `json:"uts"`
	} `json:"date"`
	Attr *struct {
		NowPlaying schema.Bool `json:"nowplaying"`
	} `json:"@attr"`
}

func (t recentTrackPayload) toTrack() RecentTrack {
	track := RecentTrack{
		MBID:   t.MBID,
		Name:   t.Name,
		Artist: t.Artist.toArtist(),
		Album:  t.Album.Text,
		URL:    t.URL,
		Loved:  t.Loved.Value(),
	}
	if t.Attr != nil {
		track.NowPlaying = t.Attr.NowPlaying.Value()
	}
	if t.Date != nil {
		track.PlayedAt = t.Date.UTS.Time
	}
	return track
}

type recentTracksPayload struct {
	RecentTracks struct {
		Track []recentTrackPayload `json:"track"`
		Attr  pageAttr             `json:"@attr"`
	} `json:"recenttracks"`
}

// Validate implements schema.Validator.
func (p *recentTracksPayload) Validate() error {
	if err := p.RecentTracks.Attr.validate(); err != nil {
		return err
	}
	for i, t := range p.RecentTracks.Track {
		if t.Name == "" {
			return fmt.Errorf("track %d has no name", i)
		}
	}
	return nil
}

// toPage converts the payload into an ordered page. Entries still playing
// are dropped when includeNowPlaying is false: Last.fm prepends them
// without counting them toward the requested limit, which would otherwise
// break the per-page limit invariant.
func (p *recentTracksPayload) toPage(includeNowPlaying bool) pagination.Page[RecentTrack] {
	attr := p.RecentTracks.Attr
	page := pagination.Page[RecentTrack]{
		Items:      make([]RecentTrack, 0, len(p.RecentTracks.Track)),
		Total:      attr.Total.Value(),
		TotalPages: attr.TotalPages.Value(),
		PageNum:    attr.Page.Value(),
		PerPage:    attr.PerPage.Value(),
	}
	for _, t := range p.RecentTracks.Track {
		track := t.toTrack()
		if track.NowPlaying && !includeNowPlaying {
			continue
		}
		page.Items = append(page.Items, track)
	}
	return page
}

// lovedTrackPayload is one entry of user.getLovedTracks; the date is the
// moment the track was loved.
type lovedTrackPayload struct {
	MBID   string        `json:"mbid"`
	Name   string        `json:"name"`
	URL    string        `json:"url"`
	Artist artistPayload `json:"artist"`
	Date   struct {
		UTS schema.UnixTime `json:"uts"`
	} `json:"date"`
}

type lovedTracksPayload struct {
	LovedTracks struct {
		Track []lovedTrackPayload `json:"track"`
		Attr  pageAttr            `json:"@attr"`
	} `json:"lovedtracks"`
}

// Validate implements schema.Validator.
func (p *lovedTracksPayload) Validate() error {
	if err := p.LovedTracks.Attr.validate(); err != nil {
		return err
	}
	for i, t := range p.LovedTracks.Track {
		if t.Name == "" {
			return fmt.Errorf("track %d has no name", i)
		}
	}
	return nil
}

func (p *lovedTracksPayload) toPage() pagination.Page[LovedTrack] {
	attr := p.LovedTracks.Attr
	page := pagination.Page[LovedTrack]{
		Items:      make([]LovedTrack, 0, len(p.LovedTracks.Track)),
		Total:      attr.Total.Value(),
		TotalPages: attr.TotalPages.Value(),
		PageNum:    attr.Page.Value(),
		PerPage:    attr.PerPage.Value(),
	}
	for _, t := range p.LovedTracks.Track {
		page.Items = append(page.Items, LovedTrack{
			MBID:    t.MBID,
			Name:    t.Name,
			Artist:  t.Artist.toArtist(),
			URL:     t.URL,
			LovedAt: t.Date.UTS.Time,
		})
	}
	return page
}

// topTrackPayload is one entry of user.getTopTracks; the rank lives in the
// per-track "@attr".
type topTrackPayload struct {
	MBID      string        `json:"mbid"`
	Name      string        `json:"name"`
	URL       string        `json:"url"`
	Artist    artistPayload `json:"artist"`
	PlayCount schema.Int    `json:"playcount"`
	Duration  schema.Int    `json:"duration"`
	Attr      struct {
		Rank schema.Int `json:"rank"`
	} `json:"@attr"`
}

type topTracksPayload struct {
	TopTracks struct {
		Track []topTrackPayload `json:"track"`
		Attr  pageAttr          `json:"@attr"`
	} `json:"toptracks"`
}

// Validate implements schema.Validator.
func (p *topTracksPayload) Validate() error {
	if err := p.TopTracks.Attr.validate(); err != nil {
		return err
	}
	for i, t := range p.TopTracks.Track {
		if t.Name == "" {
			return fmt.Errorf("track %d has no name", i)
		}
		if t.Attr.Rank < 1 {
			return fmt.Errorf("track %d has no rank", i)
		}
	}
	return nil
}

func (p *topTracksPayload) toPage() pagination.Page[TopTrack] {
	attr := p.TopTracks.Attr
	page := pagination.Page[TopTrack]{
		Items:      make([]TopTrack, 0, len(p.TopTracks.Track)),
		Total:      attr.Total.Value(),
		TotalPages: attr.TotalPages.Value(),
		PageNum:    attr.Page.Value(),
		PerPage:    attr.PerPage.Value(),
	}
	for _, t := range p.TopTracks.Track {
		page.Items = append(page.Items, TopTrack{
			MBID:      t.MBID,
			Name:      t.Name,
			Artist:    t.Artist.toArtist(),
			URL:       t.URL,
			Rank:      t.Attr.Rank.Value(),
			PlayCount: t.PlayCount.Value(),
			Duration:  t.Duration.Value(),
		})
	}
	return page
}

// trackInfoPayload is the track.getInfo response.
type trackInfoPayload struct {
	Track struct {
		MBID     string     `json:"mbid"`
		Name     string     `json:"name"`
		URL      string     `json:"url"`
		Duration schema.Int `json:"duration"`
		Artist   struct {
			Name string `json:"name"`
			MBID string `json:"mbid"`
			URL  string `json:"url"`
		} `json:"artist"`
		Album struct {
			Title string `json:"title"`
		} `json:"album"`
		Listeners     schema.Int  `json:"listeners"`
		PlayCount     schema.Int  `json:"playcount"`
		UserPlayCount schema.Int  `json:"userplaycount"`
		UserLoved     schema.Bool `json:"userloved"`
	} `json:"track"`
}

// Validate implements schema.Validator.
func (p *trackInfoPayload) Validate() error {
	if p.Track.Name == "" {
		return fmt.Errorf("track has no name")
	}
	return nil
}

func (p *trackInfoPayload) toInfo() *TrackInfo {
	t := p.Track
	return &TrackInfo{
		MBID: t.MBID,
		Name: t.Name,
		Artist: Artist{
			Name: t.Artist.Name,
			MBID: t.Artist.MBID,
			URL:  t.Artist.URL,
		},
		Album:         t.Album.Title,
		URL:           t.URL,
		Duration:      t.Duration.Value(),
		Listeners:     t.Listeners.Value(),
		PlayCount:     t.PlayCount.Value(),
		UserPlayCount: t.UserPlayCount.Value(),
		UserLoved:     t.UserLoved.Value(),
	}
}
