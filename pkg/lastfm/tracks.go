package lastfm

import "time"

// Artist identifies a track's artist. Compact responses carry only the
// name and MBID; extended recent-track responses add the artist URL.
type Artist struct {
	Name string
	MBID string
	URL  string
}

// RecentTrack is one play from the user's listening history.
type RecentTrack struct {
	MBID       string
	Name       string
	Artist     Artist
	Album      string
	URL        string
	Loved      bool      // only populated by extended responses
	NowPlaying bool      // the track is playing right now
	PlayedAt   time.Time // zero while the track is still playing
}

// LovedTrack is one entry of the user's favorites.
type LovedTrack struct {
	MBID    string
	Name    string
	Artist  Artist
	URL     string
	LovedAt time.Time
}

// TopTrack is one entry of the user's most-played ranking.
type TopTrack struct {
	MBID      string
	Name      string
	Artist    Artist
	URL       string
	Rank      int
	PlayCount int
	Duration  int // seconds, 0 when unknown
}

// TrackInfo is the detailed record returned by the track-info lookup.
// UserPlayCount and UserLoved are scoped to the configured user.
type TrackInfo struct {
	MBID          string
	Name          string
	Artist        Artist
	Album         string
	URL           string
	Duration      int // milliseconds as reported upstream
	Listeners     int
	PlayCount     int
	UserPlayCount int
	UserLoved     bool
}
