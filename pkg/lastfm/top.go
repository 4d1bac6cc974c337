package lastfm

import (
	"context"
	"fmt"
	"strconv"

	"github.com/trackfetch/lastfm-client/pkg/pagination"
	"github.com/trackfetch/lastfm-client/pkg/schema"
)

// TopTracksOptions filters the top-tracks fetch.
type TopTracksOptions struct {
	// Limit caps the number of tracks returned. nil fetches everything
	// available; zero or negative yields an empty result without any
	// network call.
	Limit *int

	// Period selects the aggregation window, PeriodOverall by default.
	Period Period
}

// topPager adapts user.getTopTracks to pagination.Fetcher.
type topPager struct {
	c      *Client
	period Period
}

func (p *topPager) FetchPage(ctx context.Context, pageNum, limit int) (pagination.Page[TopTrack], error) {
	params := map[string]string{
		"user":   p.c.username,
		"period": string(p.period),
		"limit":  strconv.Itoa(limit),
		"page":   strconv.Itoa(pageNum),
	}

	body, err := p.c.get(ctx, MethodTopTracks, params)
	if err != nil {
		return pagination.Page[TopTrack]{}, err
	}

	payload, err := schema.Decode[topTracksPayload](body, "toptracks")
	if err != nil {
		errorsTotal.WithLabelValues("validation").Inc()
		return pagination.Page[TopTrack]{}, err
	}
	return payload.toPage(), nil
}

// TopTracks fetches the user's most-played ranking for the selected
// period, ordered by ascending rank.
func (c *Client) TopTracks(ctx context.Context, opts TopTracksOptions) ([]TopTrack, error) {
	period := opts.Period
	if period == "" {
		period = PeriodOverall
	}
	if !period.valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}

	bf, err := pagination.NewBatchFetcher[TopTrack](&topPager{c: c, period: period}, c.pageCfg)
	if err != nil {
		return nil, err
	}
	return bf.FetchAll(ctx, opts.Limit)
}
