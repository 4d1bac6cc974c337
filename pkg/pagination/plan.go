package pagination

import (
	"errors"
	"time"
)

// Config holds planner and executor configuration.
type Config struct {
	// PerRequestCap is the upstream maximum number of items per call.
	// Last.fm rejects larger limits silently by clamping them.
	PerRequestCap int

	// ChunkSize is the maximum number of items fetched in one parallel
	// batch. It bounds peak concurrency to ChunkSize/PerRequestCap and
	// must be an exact multiple of PerRequestCap so that page offsets
	// stay whole. The default is a conservative value observed to be
	// safe against the live API, not an upstream-mandated limit.
	ChunkSize int

	// Timeout per page fetch.
	Timeout time.Duration
}

// DefaultConfig returns the canonical configuration: 1000 items per call,
// 5000 items per chunk (at most 5 concurrent calls).
func DefaultConfig() Config {
	return Config{
		PerRequestCap: 1000,
		ChunkSize:     5000,
		Timeout:       15 * time.Second,
	}
}

// Configuration errors. Both are detected before any network call is made.
var (
	// ErrChunkNotMultiple is returned when ChunkSize is not an exact
	// multiple of PerRequestCap. Fractional page offsets would repeat or
	// skip pages, so this is rejected up front.
	ErrChunkNotMultiple = errors.New("chunk size must be a multiple of the per-request cap")

	// ErrInvalidConfig is returned for non-positive cap or chunk size.
	ErrInvalidConfig = errors.New("per-request cap and chunk size must be positive")
)

// Validate checks the planner preconditions.
func (c Config) Validate() error {
	if c.PerRequestCap <= 0 || c.ChunkSize <= 0 {
		return ErrInvalidConfig
	}
	if c.ChunkSize%c.PerRequestCap != 0 {
		return ErrChunkNotMultiple
	}
	return nil
}

// Limit is a convenience for building the optional limit argument of
// FetchAll. A nil limit means "fetch everything available".
func Limit(n int) *int {
	return &n
}

// Plan describes every call needed to assemble the effective target count.
// It is computed once per top-level fetch and discarded after use.
type Plan struct {
	// Target is the item count the caller should receive:
	// min(requested limit, true total available).
	Target int

	// Total is the true total reported by the upstream API.
	Total int

	// Chunks holds the page numbers of each sequential batch. Page 1 is
	// not listed; it is always fetched up front to learn Total.
	Chunks [][]int
}

// Calls returns the total number of page fetches the plan issues,
// including the exploratory first page.
func (p Plan) Calls() int {
	n := 1
	for _, pages := range p.Chunks {
		n += len(pages)
	}
	return n
}

// BuildPlan computes the fetch plan for a requested limit (nil means all)
// against the true total learned from the first page. The config must have
// been validated; BuildPlan assumes ChunkSize is a multiple of PerRequestCap.
//
// Pages are issued strictly increasing and contiguous: call j of chunk i
// fetches page (i*ChunkSize)/PerRequestCap + j + 2, the +2 accounting for
// page 1 already fetched and 1-based page numbering.
func BuildPlan(limit *int, total int, cfg Config) Plan {
	target := total
	if limit != nil && *limit < total {
		target = *limit
	}
	if target < 0 {
		target = 0
	}

	plan := Plan{Target: target, Total: total}

	remaining := target - cfg.PerRequestCap
	if remaining <= 0 {
		return plan
	}

	chunks := (remaining + cfg.ChunkSize - 1) / cfg.ChunkSize
	plan.Chunks = make([][]int, 0, chunks)

	for i := 0; i < chunks; i++ {
		need := remaining - i*cfg.ChunkSize
		if need > cfg.ChunkSize {
			need = cfg.ChunkSize
		}
		calls := (need + cfg.PerRequestCap - 1) / cfg.PerRequestCap

		pages := make([]int, calls)
		base := i * cfg.ChunkSize / cfg.PerRequestCap
		for j := 0; j < calls; j++ {
			pages[j] = base + j + 2
		}
		plan.Chunks = append(plan.Chunks, pages)
	}

	return plan
}
