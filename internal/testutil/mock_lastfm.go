// Package testutil provides testing utilities for the Last.fm client.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

// baseUTS anchors the synthetic play timestamps.
const baseUTS int64 = 1700000000

// MockLastFM is a configurable in-process Last.fm API server backed by a
// deterministic synthetic dataset: track at index i is named "Track i" with
// mbid "mbid-i", so tests can assert global ordering across pages.
type MockLastFM struct {
	server *httptest.Server

	mu         sync.Mutex
	total      int
	nowPlaying bool
	delay      time.Duration
	failPages  map[int]int // page -> HTTP status
	errorPages map[int]int // page -> Last.fm error code

	// Tracking
	RequestCount int
	PagesSeen    []int
	LastQuery    url.Values
	inFlight     int
	MaxInFlight  int
}

// NewMockLastFM creates a mock server whose dataset holds total tracks for
// every list method.
func NewMockLastFM(total int) *MockLastFM {
	mock := &MockLastFM{
		total:      total,
		failPages:  make(map[int]int),
		errorPages: make(map[int]int),
	}
	mock.server = httptest.NewServer(http.HandlerFunc(mock.handler))
	return mock
}

// URL returns the mock server URL.
func (m *MockLastFM) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockLastFM) Close() {
	m.server.Close()
}

// Reset clears all tracking counters and injected failures.
func (m *MockLastFM) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.PagesSeen = nil
	m.MaxInFlight = 0
	m.failPages = make(map[int]int)
	m.errorPages = make(map[int]int)
}

// SetNowPlaying controls whether a synthetic now-playing track is prepended
// to page 1 of the recent-tracks response.
func (m *MockLastFM) SetNowPlaying(playing bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nowPlaying = playing
}

// SetDelay adds a fixed latency to every response, making concurrent
// requests observably overlap.
func (m *MockLastFM) SetDelay(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delay = d
}

// FailPage makes the given page respond with an HTTP error status and a
// non-JSON body.
func (m *MockLastFM) FailPage(page, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failPages[page] = status
}

// FailPageWithCode makes the given page respond with a well-formed Last.fm
// error payload.
func (m *MockLastFM) FailPageWithCode(page, code int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorPages[page] = code
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockLastFM) GetRequestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.RequestCount
}

// GetMaxInFlight returns the peak number of concurrently served requests.
func (m *MockLastFM) GetMaxInFlight() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.MaxInFlight
}

// GetLastQuery returns the query parameters of the most recent request.
func (m *MockLastFM) GetLastQuery() url.Values {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.LastQuery
}

// GetPagesSeen returns the requested page numbers in arrival order.
func (m *MockLastFM) GetPagesSeen() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.PagesSeen...)
}

func (m *MockLastFM) handler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := atoiDefault(q.Get("page"), 1)
	limit := atoiDefault(q.Get("limit"), 50)

	m.mu.Lock()
	m.RequestCount++
	m.PagesSeen = append(m.PagesSeen, page)
	m.LastQuery = q
	m.inFlight++
	if m.inFlight > m.MaxInFlight {
		m.MaxInFlight = m.inFlight
	}
	delay := m.delay
	failStatus, failed := m.failPages[page]
	errCode, apiErr := m.errorPages[page]
	total := m.total
	nowPlaying := m.nowPlaying
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.inFlight--
		m.mu.Unlock()
	}()

	if delay > 0 {
		time.Sleep(delay)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if apiErr {
		w.WriteHeader(http.StatusBadRequest)
		writeJSON(w, map[string]any{"error": errCode, "message": "injected failure"})
		return
	}
	if failed {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(failStatus)
		fmt.Fprint(w, "upstream failure")
		return
	}

	switch strings.ToLower(q.Get("method")) {
	case "user.getrecenttracks":
		m.writeList(w, "recenttracks", page, limit, total, func(i int) map[string]any {
			return m.recentTrack(i, false)
		}, nowPlaying && page == 1)
	case "user.getlovedtracks":
		m.writeList(w, "lovedtracks", page, limit, total, m.lovedTrack, false)
	case "user.gettoptracks":
		m.writeList(w, "toptracks", page, limit, total, m.topTrack, false)
	case "track.getinfo":
		m.writeTrackInfo(w, q.Get("artist"), q.Get("track"))
	default:
		w.WriteHeader(http.StatusBadRequest)
		writeJSON(w, map[string]any{"error": 3, "message": "Invalid Method"})
	}
}

// writeList renders one page of a list method. Attr values are strings,
// matching the live API's loose typing.
func (m *MockLastFM) writeList(w http.ResponseWriter, key string, page, limit, total int, track func(int) map[string]any, prependNowPlaying bool) {
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	tracks := make([]map[string]any, 0, end-start+1)
	if prependNowPlaying {
		tracks = append(tracks, m.recentTrack(-1, true))
	}
	for i := start; i < end; i++ {
		tracks = append(tracks, track(i))
	}

	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	writeJSON(w, map[string]any{
		key: map[string]any{
			"track": tracks,
			"@attr": map[string]any{
				"user":       "mock-user",
				"page":       strconv.Itoa(page),
				"perPage":    strconv.Itoa(limit),
				"total":      strconv.Itoa(total),
				"totalPages": strconv.Itoa(totalPages),
			},
		},
	})
}

func (m *MockLastFM) recentTrack(i int, nowPlaying bool) map[string]any {
	track := map[string]any{
		"mbid": fmt.Sprintf("mbid-%d", i),
		"name": fmt.Sprintf("Track %d", i),
		"url":  fmt.Sprintf("https://www.last.fm/music/track-%d", i),
		"artist": map[string]any{
			"#text": fmt.Sprintf("Artist %d", i%10),
			"mbid":  fmt.Sprintf("artist-mbid-%d", i%10),
		},
		"album": map[string]any{
			"#text": fmt.Sprintf("Album %d", i%25),
		},
	}
	if nowPlaying {
		track["mbid"] = "mbid-nowplaying"
		track["name"] = "Now Playing Track"
		track["@attr"] = map[string]any{"nowplaying": "true"}
	} else {
		track["date"] = map[string]any{
			"uts": strconv.FormatInt(baseUTS-int64(i)*180, 10),
		}
	}
	return track
}

func (m *MockLastFM) lovedTrack(i int) map[string]any {
	return map[string]any{
		"mbid": fmt.Sprintf("mbid-%d", i),
		"name": fmt.Sprintf("Track %d", i),
		"url":  fmt.Sprintf("https://www.last.fm/music/track-%d", i),
		"artist": map[string]any{
			"name": fmt.Sprintf("Artist %d", i%10),
			"url":  fmt.Sprintf("https://www.last.fm/music/artist-%d", i%10),
		},
		"date": map[string]any{
			"uts": strconv.FormatInt(baseUTS-int64(i)*3600, 10),
		},
	}
}

func (m *MockLastFM) topTrack(i int) map[string]any {
	return map[string]any{
		"mbid":      fmt.Sprintf("mbid-%d", i),
		"name":      fmt.Sprintf("Track %d", i),
		"url":       fmt.Sprintf("https://www.last.fm/music/track-%d", i),
		"playcount": strconv.Itoa(1000 - i),
		"duration":  "215",
		"artist": map[string]any{
			"name": fmt.Sprintf("Artist %d", i%10),
		},
		"@attr": map[string]any{
			"rank": strconv.Itoa(i + 1),
		},
	}
}

func (m *MockLastFM) writeTrackInfo(w http.ResponseWriter, artist, track string) {
	if artist == "" || track == "" {
		w.WriteHeader(http.StatusBadRequest)
		writeJSON(w, map[string]any{"error": 6, "message": "Invalid parameters"})
		return
	}
	writeJSON(w, map[string]any{
		"track": map[string]any{
			"mbid":     "mbid-info",
			"name":     track,
			"url":      "https://www.last.fm/music/info-track",
			"duration": "215000",
			"artist": map[string]any{
				"name": artist,
				"url":  "https://www.last.fm/music/info-artist",
			},
			"album":         map[string]any{"title": "Info Album"},
			"listeners":     "4321",
			"playcount":     "98765",
			"userplaycount": "42",
			"userloved":     "1",
		},
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	_ = json.NewEncoder(w).Encode(v)
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
