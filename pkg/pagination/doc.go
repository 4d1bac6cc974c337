// Package pagination assembles large result sets from a paginated upstream API.
//
// Last.fm caps any single response to 1000 items, so a request for more than
// that turns into several page fetches. This package computes the fetch plan
// (how many calls, at which page offsets), executes each chunk of calls in
// parallel with fail-fast semantics, and merges the pages back in order.
//
// Example usage:
//
//	config := pagination.DefaultConfig()
//	fetcher, err := pagination.NewBatchFetcher(pageSource, config)
//	if err != nil {
//	    return err
//	}
//	tracks, err := fetcher.FetchAll(ctx, pagination.Limit(2500))
//
// The batch fetcher:
//   - Fetches page 1 to learn the true total available
//   - Partitions the remaining need into chunks of at most ChunkSize items
//   - Dispatches each chunk's calls concurrently (at most ChunkSize/PerRequestCap
//     in flight), chunks strictly one after another
//   - Aborts the whole operation on the first failed call, no partial results
//   - Truncates the merged sequence to the effective target
package pagination
