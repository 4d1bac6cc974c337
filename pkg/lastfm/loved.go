package lastfm

import (
	"context"
	"strconv"

	"github.com/trackfetch/lastfm-client/pkg/pagination"
	"github.com/trackfetch/lastfm-client/pkg/schema"
)

// LovedTracksOptions filters the loved-tracks fetch.
type LovedTracksOptions struct {
	// Limit caps the number of tracks returned. nil fetches everything
	// available; zero or negative yields an empty result without any
	// network call.
	Limit *int
}

// lovedPager adapts user.getLovedTracks to pagination.Fetcher.
type lovedPager struct {
	c *Client
}

func (p *lovedPager) FetchPage(ctx context.Context, pageNum, limit int) (pagination.Page[LovedTrack], error) {
	params := map[string]string{
		"user":  p.c.username,
		"limit": strconv.Itoa(limit),
		"page":  strconv.Itoa(pageNum),
	}

	body, err := p.c.get(ctx, MethodLovedTracks, params)
	if err != nil {
		return pagination.Page[LovedTrack]{}, err
	}

	payload, err := schema.Decode[lovedTracksPayload](body, "lovedtracks")
	if err != nil {
		errorsTotal.WithLabelValues("validation").Inc()
		return pagination.Page[LovedTrack]{}, err
	}
	return payload.toPage(), nil
}

// LovedTracks fetches the user's loved tracks, newest first.
func (c *Client) LovedTracks(ctx context.Context, opts LovedTracksOptions) ([]LovedTrack, error) {
	bf, err := pagination.NewBatchFetcher[LovedTrack](&lovedPager{c: c}, c.pageCfg)
	if err != nil {
		return nil, err
	}
	return bf.FetchAll(ctx, opts.Limit)
}
