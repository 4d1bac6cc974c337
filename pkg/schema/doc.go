// Package schema validates and normalizes raw Last.fm API payloads.
//
// The Last.fm API is loosely typed: counts and page numbers arrive as JSON
// strings, booleans as "0"/"1", and timestamps as unix-second strings. This
// package provides coercion types (Int, Bool, UnixTime) that decode either
// representation, plus a generic Decode that turns a raw payload into a
// strongly-typed record or a descriptive ValidationError naming the shape
// that was expected.
//
// Example usage:
//
//	page, err := schema.Decode[recentTracksPayload](body, "recenttracks")
//	if err != nil {
//	    var vErr *schema.ValidationError
//	    if errors.As(err, &vErr) {
//	        // response did not match the recenttracks shape
//	    }
//	}
package schema
