// Package lastfm provides a read-only client for the Last.fm API 2.0
// bound to a single configured user.
//
// The client fetches recent, loved and top tracks past the upstream
// 1000-items-per-call cap by delegating pagination to pkg/pagination:
// one exploratory call learns the true total, the remainder is fetched
// in bounded parallel batches and merged in page order.
//
// Example usage:
//
//	client, err := lastfm.New(lastfm.DefaultConfig(apiKey, "some-user"))
//	if err != nil {
//	    return err
//	}
//
//	tracks, err := client.RecentTracks(ctx, lastfm.RecentTracksOptions{
//	    Limit: pagination.Limit(2500),
//	})
//
// The client holds no session state and performs no writes; scrobbling and
// authentication are out of scope.
package lastfm
