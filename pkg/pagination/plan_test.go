package pagination

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.PerRequestCap != 1000 {
		t.Errorf("PerRequestCap = %d, want 1000", cfg.PerRequestCap)
	}
	if cfg.ChunkSize != 5000 {
		t.Errorf("ChunkSize = %d, want 5000", cfg.ChunkSize)
	}
	if cfg.Timeout <= 0 {
		t.Error("Timeout should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "valid",
			config:  Config{PerRequestCap: 1000, ChunkSize: 5000},
			wantErr: nil,
		},
		{
			name:    "chunk equals cap",
			config:  Config{PerRequestCap: 1000, ChunkSize: 1000},
			wantErr: nil,
		},
		{
			name:    "chunk not a multiple",
			config:  Config{PerRequestCap: 1000, ChunkSize: 4500},
			wantErr: ErrChunkNotMultiple,
		},
		{
			name:    "zero cap",
			config:  Config{PerRequestCap: 0, ChunkSize: 5000},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "negative chunk",
			config:  Config{PerRequestCap: 1000, ChunkSize: -5000},
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuildPlan(t *testing.T) {
	cfg := Config{PerRequestCap: 1000, ChunkSize: 5000}

	tests := []struct {
		name       string
		limit      *int
		total      int
		wantTarget int
		wantChunks [][]int
	}{
		{
			name:       "fits in first call",
			limit:      Limit(800),
			total:      10000,
			wantTarget: 800,
			wantChunks: nil,
		},
		{
			name:       "exactly the cap",
			limit:      Limit(1000),
			total:      10000,
			wantTarget: 1000,
			wantChunks: nil,
		},
		{
			name:       "one extra page",
			limit:      Limit(1200),
			total:      10000,
			wantTarget: 1200,
			wantChunks: [][]int{{2}},
		},
		{
			name:       "full chunk beyond first page",
			limit:      Limit(5500),
			total:      10000,
			wantTarget: 5500,
			wantChunks: [][]int{{2, 3, 4, 5, 6}},
		},
		{
			name:       "three chunks",
			limit:      Limit(12000),
			total:      20000,
			wantTarget: 12000,
			wantChunks: [][]int{{2, 3, 4, 5, 6}, {7, 8, 9, 10, 11}, {12}},
		},
		{
			name:       "no limit fetches the total",
			limit:      nil,
			total:      2500,
			wantTarget: 2500,
			wantChunks: [][]int{{2, 3}},
		},
		{
			name:       "limit exceeds total",
			limit:      Limit(9999),
			total:      1300,
			wantTarget: 1300,
			wantChunks: [][]int{{2}},
		},
		{
			name:       "empty dataset",
			limit:      nil,
			total:      0,
			wantTarget: 0,
			wantChunks: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := BuildPlan(tt.limit, tt.total, cfg)

			if plan.Target != tt.wantTarget {
				t.Errorf("Target = %d, want %d", plan.Target, tt.wantTarget)
			}
			if plan.Total != tt.total {
				t.Errorf("Total = %d, want %d", plan.Total, tt.total)
			}
			if len(plan.Chunks) != len(tt.wantChunks) {
				t.Fatalf("Chunks = %v, want %v", plan.Chunks, tt.wantChunks)
			}
			for i, pages := range tt.wantChunks {
				if len(plan.Chunks[i]) != len(pages) {
					t.Fatalf("chunk %d = %v, want %v", i, plan.Chunks[i], pages)
				}
				for j, page := range pages {
					if plan.Chunks[i][j] != page {
						t.Errorf("chunk %d call %d = page %d, want %d", i, j, plan.Chunks[i][j], page)
					}
				}
			}
		})
	}
}

// Pages across a whole plan must be strictly increasing and contiguous
// starting at 2, whatever the target.
func TestBuildPlan_PagesContiguous(t *testing.T) {
	cfg := Config{PerRequestCap: 1000, ChunkSize: 5000}

	for _, target := range []int{1001, 3000, 5000, 5001, 17500, 50000} {
		plan := BuildPlan(Limit(target), 100000, cfg)

		next := 2
		for _, pages := range plan.Chunks {
			for _, page := range pages {
				if page != next {
					t.Fatalf("target %d: got page %d, want %d", target, page, next)
				}
				next++
			}
		}

		wantCalls := (target + cfg.PerRequestCap - 1) / cfg.PerRequestCap
		if plan.Calls() != wantCalls {
			t.Errorf("target %d: Calls() = %d, want %d", target, plan.Calls(), wantCalls)
		}
	}
}

func TestPlanCalls(t *testing.T) {
	plan := Plan{Chunks: [][]int{{2, 3}, {4}}}
	if plan.Calls() != 4 {
		t.Errorf("Calls() = %d, want 4", plan.Calls())
	}

	empty := Plan{}
	if empty.Calls() != 1 {
		t.Errorf("Calls() on plan without chunks = %d, want 1", empty.Calls())
	}
}
