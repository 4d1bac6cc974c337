package lastfm

import (
	"context"
	"errors"
	"testing"

	"github.com/trackfetch/lastfm-client/internal/testutil"
	"github.com/trackfetch/lastfm-client/pkg/pagination"
)

func TestTopTracks_RanksAscending(t *testing.T) {
	mock := testutil.NewMockLastFM(250)
	defer mock.Close()

	client := newTestClient(t, mock)

	tracks, err := client.TopTracks(context.Background(), TopTracksOptions{})
	if err != nil {
		t.Fatalf("TopTracks() failed: %v", err)
	}

	if len(tracks) != 250 {
		t.Fatalf("got %d tracks, want 250", len(tracks))
	}
	for i, track := range tracks {
		if track.Rank != i+1 {
			t.Fatalf("track %d has rank %d, want %d", i, track.Rank, i+1)
		}
		if track.PlayCount == 0 {
			t.Errorf("track %d has no play count", i)
		}
	}
}

func TestTopTracks_DefaultPeriod(t *testing.T) {
	mock := testutil.NewMockLastFM(30)
	defer mock.Close()

	client := newTestClient(t, mock)

	if _, err := client.TopTracks(context.Background(), TopTracksOptions{}); err != nil {
		t.Fatalf("TopTracks() failed: %v", err)
	}

	if got := mock.GetLastQuery().Get("period"); got != string(PeriodOverall) {
		t.Errorf("period = %q, want %q", got, PeriodOverall)
	}
}

func TestTopTracks_PeriodParameter(t *testing.T) {
	mock := testutil.NewMockLastFM(30)
	defer mock.Close()

	client := newTestClient(t, mock)

	_, err := client.TopTracks(context.Background(), TopTracksOptions{
		Period: Period7Day,
		Limit:  pagination.Limit(10),
	})
	if err != nil {
		t.Fatalf("TopTracks() failed: %v", err)
	}

	if got := mock.GetLastQuery().Get("period"); got != "7day" {
		t.Errorf("period = %q, want %q", got, "7day")
	}
}

func TestTopTracks_InvalidPeriod(t *testing.T) {
	mock := testutil.NewMockLastFM(30)
	defer mock.Close()

	client := newTestClient(t, mock)

	_, err := client.TopTracks(context.Background(), TopTracksOptions{Period: "fortnight"})
	if !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
	if n := mock.GetRequestCount(); n != 0 {
		t.Errorf("invalid period must fail before any request, issued %d", n)
	}
}
