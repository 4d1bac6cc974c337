package lastfm

import (
	"context"
	"testing"

	"github.com/trackfetch/lastfm-client/internal/testutil"
)

func TestTrackInfo(t *testing.T) {
	mock := testutil.NewMockLastFM(0)
	defer mock.Close()

	client := newTestClient(t, mock)

	info, err := client.TrackInfo(context.Background(), "Some Artist", "Some Track")
	if err != nil {
		t.Fatalf("TrackInfo() failed: %v", err)
	}

	if info.Name != "Some Track" {
		t.Errorf("Name = %q, want %q", info.Name, "Some Track")
	}
	if info.Artist.Name != "Some Artist" {
		t.Errorf("Artist = %q, want %q", info.Artist.Name, "Some Artist")
	}
	if info.Duration != 215000 {
		t.Errorf("Duration = %d, want 215000", info.Duration)
	}
	if info.PlayCount != 98765 {
		t.Errorf("PlayCount = %d, want 98765", info.PlayCount)
	}
	if info.UserPlayCount != 42 {
		t.Errorf("UserPlayCount = %d, want 42", info.UserPlayCount)
	}
	if !info.UserLoved {
		t.Error("UserLoved should be true")
	}

	q := mock.GetLastQuery()
	if q.Get("username") != "mock-user" {
		t.Errorf("username = %q, want %q", q.Get("username"), "mock-user")
	}
}

func TestTrackInfo_MissingArguments(t *testing.T) {
	mock := testutil.NewMockLastFM(0)
	defer mock.Close()

	client := newTestClient(t, mock)

	if _, err := client.TrackInfo(context.Background(), "", "Some Track"); err == nil {
		t.Error("expected error for missing artist")
	}
	if _, err := client.TrackInfo(context.Background(), "Some Artist", ""); err == nil {
		t.Error("expected error for missing track")
	}
	if n := mock.GetRequestCount(); n != 0 {
		t.Errorf("argument validation must fail before any request, issued %d", n)
	}
}
