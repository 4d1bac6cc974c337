package lastfm

import (
	"context"
	"strconv"
	"time"

	"github.com/trackfetch/lastfm-client/pkg/pagination"
	"github.com/trackfetch/lastfm-client/pkg/schema"
)

// RecentTracksOptions filters the listening-history fetch.
type RecentTracksOptions struct {
	// Limit caps the number of tracks returned. nil fetches everything
	// available; zero or negative yields an empty result without any
	// network call.
	Limit *int

	// From and To bound the history by play time (inclusive). Zero
	// values are omitted.
	From time.Time
	To   time.Time

	// Extended requests richer artist data plus the per-track loved flag.
	Extended bool
}

// recentPager adapts user.getRecentTracks to pagination.Fetcher.
type recentPager struct {
	c    *Client
	opts RecentTracksOptions

	// includeNowPlaying keeps the synthetic now-playing entry that
	// Last.fm prepends without counting it toward the limit. Only the
	// NowPlaying probe wants it.
	includeNowPlaying bool
}

func (p *recentPager) FetchPage(ctx context.Context, pageNum, limit int) (pagination.Page[RecentTrack], error) {
	params := map[string]string{
		"user":  p.c.username,
		"limit": strconv.Itoa(limit),
		"page":  strconv.Itoa(pageNum),
	}
	if p.opts.Extended {
		params["extended"] = "1"
	}
	if !p.opts.From.IsZero() {
		params["from"] = strconv.FormatInt(p.opts.From.Unix(), 10)
	}
	if !p.opts.To.IsZero() {
		params["to"] = strconv.FormatInt(p.opts.To.Unix(), 10)
	}

	body, err := p.c.get(ctx, MethodRecentTracks, params)
	if err != nil {
		return pagination.Page[RecentTrack]{}, err
	}

	payload, err := schema.Decode[recentTracksPayload](body, "recenttracks")
	if err != nil {
		errorsTotal.WithLabelValues("validation").Inc()
		return pagination.Page[RecentTrack]{}, err
	}
	return payload.toPage(p.includeNowPlaying), nil
}

// RecentTracks fetches the user's listening history, paginating past the
// upstream per-call cap as needed. Tracks still playing are excluded; use
// NowPlaying for the live probe. The returned slice is ordered newest
// first, exactly as the pages arrive.
func (c *Client) RecentTracks(ctx context.Context, opts RecentTracksOptions) ([]RecentTrack, error) {
	bf, err := pagination.NewBatchFetcher[RecentTrack](&recentPager{c: c, opts: opts}, c.pageCfg)
	if err != nil {
		return nil, err
	}
	return bf.FetchAll(ctx, opts.Limit)
}

// NowPlaying probes the most recent track and returns it when Last.fm
// marks it as currently playing. It returns nil without an error when
// nothing is playing.
func (c *Client) NowPlaying(ctx context.Context) (*RecentTrack, error) {
	pager := &recentPager{c: c, includeNowPlaying: true}

	page, err := pager.FetchPage(ctx, 1, 1)
	if err != nil {
		return nil, err
	}
	if len(page.Items) == 0 || !page.Items[0].NowPlaying {
		return nil, nil
	}

	track := page.Items[0]
	return &track, nil
}
