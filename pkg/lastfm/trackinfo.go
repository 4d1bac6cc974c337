package lastfm

import (
	"context"
	"fmt"

	"github.com/trackfetch/lastfm-client/pkg/schema"
)

// TrackInfo looks up metadata for a single track by artist and name. The
// configured username is passed along so the user-scoped fields
// (UserPlayCount, UserLoved) are populated.
func (c *Client) TrackInfo(ctx context.Context, artist, track string) (*TrackInfo, error) {
	if artist == "" || track == "" {
		return nil, fmt.Errorf("artist and track are required")
	}

	params := map[string]string{
		"artist":   artist,
		"track":    track,
		"username": c.username,
	}

	body, err := c.get(ctx, MethodTrackInfo, params)
	if err != nil {
		return nil, err
	}

	payload, err := schema.Decode[trackInfoPayload](body, "track")
	if err != nil {
		errorsTotal.WithLabelValues("validation").Inc()
		return nil, err
	}
	return payload.toInfo(), nil
}
