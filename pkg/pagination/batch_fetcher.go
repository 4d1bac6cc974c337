package pagination

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Prometheus metrics for batch fetching.
var (
	pagesFetchedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lastfm_pages_fetched_total",
		Help: "Total upstream pages fetched",
	})

	fetchAllDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lastfm_fetch_all_duration_seconds",
		Help:    "Duration of full multi-page fetch operations",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
	})

	batchCalls = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lastfm_batch_calls",
		Help:    "Number of concurrent calls per chunk batch",
		Buckets: []float64{1, 2, 3, 4, 5, 10},
	})
)

// ErrPageOverflow is returned when a page carries more items than the
// per-page limit it was requested with.
var ErrPageOverflow = fmt.Errorf("page exceeds its declared per-page limit")

// Page is one upstream-paginated slice of results.
type Page[T any] struct {
	Items      []T
	Total      int
	TotalPages int
	PageNum    int
	PerPage    int
}

// Fetcher is the interface a client must implement for single-page fetching.
type Fetcher[T any] interface {
	// FetchPage fetches one page with the given 1-based page number and
	// per-page limit. The returned Page reports the true total available.
	FetchPage(ctx context.Context, pageNum, limit int) (Page[T], error)
}

// BatchFetcher assembles multi-page result sets with bounded parallelism.
type BatchFetcher[T any] struct {
	fetcher Fetcher[T]
	config  Config
}

// NewBatchFetcher creates a batch fetcher. The config is validated up
// front: a chunk size that is not a multiple of the per-request cap is a
// configuration error and fails before any network call.
func NewBatchFetcher[T any](fetcher Fetcher[T], config Config) (*BatchFetcher[T], error) {
	if config.Timeout <= 0 {
		config.Timeout = DefaultConfig().Timeout
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &BatchFetcher[T]{fetcher: fetcher, config: config}, nil
}

// FetchAll fetches up to limit items, or everything available when limit is
// nil. A limit of zero or less returns an empty slice without any network
// call. The result is ordered by ascending page; either the full effective
// target is returned or an error, never a partial sequence.
func (bf *BatchFetcher[T]) FetchAll(ctx context.Context, limit *int) ([]T, error) {
	start := time.Now()

	if limit != nil && *limit <= 0 {
		return []T{}, nil
	}

	firstLimit := bf.config.PerRequestCap
	if limit != nil && *limit < firstLimit {
		firstLimit = *limit
	}

	first, err := bf.fetchOne(ctx, 1, firstLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch first page: %w", err)
	}

	plan := BuildPlan(limit, first.Total, bf.config)

	log.Debug().
		Int("total", plan.Total).
		Int("target", plan.Target).
		Int("chunks", len(plan.Chunks)).
		Int("calls", plan.Calls()).
		Msg("Fetch plan computed")

	items := make([]T, 0, plan.Target)
	items = append(items, first.Items...)

	for i, pages := range plan.Chunks {
		batchCalls.Observe(float64(len(pages)))

		batch, err := bf.fetchChunk(ctx, pages)
		if err != nil {
			return nil, fmt.Errorf("chunk %d failed: %w", i, err)
		}
		for _, pageItems := range batch {
			items = append(items, pageItems...)
		}
	}

	if len(items) > plan.Target {
		items = items[:plan.Target]
	}

	fetchAllDuration.Observe(time.Since(start).Seconds())
	log.Info().
		Int("items", len(items)).
		Int("calls", plan.Calls()).
		Dur("duration", time.Since(start)).
		Msg("Fetch complete")

	return items, nil
}

// fetchChunk dispatches one chunk's calls concurrently and reassembles the
// results in issued page order. The first failure cancels the remaining
// in-flight siblings through the group context and aborts the chunk.
func (bf *BatchFetcher[T]) fetchChunk(ctx context.Context, pages []int) ([][]T, error) {
	g, gctx := errgroup.WithContext(ctx)
	results := make([][]T, len(pages))

	for i, pageNum := range pages {
		i, pageNum := i, pageNum
		g.Go(func() error {
			page, err := bf.fetchOne(gctx, pageNum, bf.config.PerRequestCap)
			if err != nil {
				return fmt.Errorf("page %d: %w", pageNum, err)
			}
			results[i] = page.Items
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// fetchOne fetches a single page with the configured timeout and enforces
// the per-page limit invariant.
func (bf *BatchFetcher[T]) fetchOne(ctx context.Context, pageNum, limit int) (Page[T], error) {
	pageCtx, cancel := context.WithTimeout(ctx, bf.config.Timeout)
	defer cancel()

	page, err := bf.fetcher.FetchPage(pageCtx, pageNum, limit)
	if err != nil {
		return Page[T]{}, err
	}
	if len(page.Items) > limit {
		return Page[T]{}, fmt.Errorf("%w: page %d has %d items, limit %d",
			ErrPageOverflow, pageNum, len(page.Items), limit)
	}

	pagesFetchedTotal.Inc()
	return page, nil
}
