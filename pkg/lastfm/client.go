package lastfm

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/trackfetch/lastfm-client/pkg/logging"
	"github.com/trackfetch/lastfm-client/pkg/pagination"
)

// Prometheus metrics for Last.fm client operations.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lastfm_requests_total",
		Help: "Total Last.fm requests by method and status",
	}, []string{"method", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lastfm_request_duration_seconds",
		Help:    "Last.fm request duration in seconds by method",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"method"})

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lastfm_errors_total",
		Help: "Total Last.fm errors by class",
	}, []string{"class"})
)

// DefaultBaseURL is the production Last.fm API endpoint.
const DefaultBaseURL = "https://ws.audioscrobbler.com/2.0/"

// Method identifies one of the supported Last.fm API methods.
type Method string

const (
	// MethodRecentTracks fetches the user's listening history.
	MethodRecentTracks Method = "user.getRecentTracks"

	// MethodLovedTracks fetches the user's loved tracks.
	MethodLovedTracks Method = "user.getLovedTracks"

	// MethodTopTracks fetches the user's most-played ranking.
	MethodTopTracks Method = "user.getTopTracks"

	// MethodTrackInfo looks up metadata for a single track.
	MethodTrackInfo Method = "track.getInfo"
)

// Period selects the aggregation window for top tracks.
type Period string

const (
	PeriodOverall Period = "overall"
	Period7Day    Period = "7day"
	Period1Month  Period = "1month"
	Period3Month  Period = "3month"
	Period6Month  Period = "6month"
	Period12Month Period = "12month"
)

// valid reports whether the period is one of the closed enumeration.
func (p Period) valid() bool {
	switch p {
	case PeriodOverall, Period7Day, Period1Month, Period3Month, Period6Month, Period12Month:
		return true
	default:
		return false
	}
}

// Client is a Last.fm API client bound to one user. Construct it with New
// and pass it by reference; there is no package-level singleton.
type Client struct {
	apiKey     string
	username   string
	baseURL    string
	userAgent  string
	httpClient *http.Client
	pageCfg    pagination.Config
	logger     zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	// APIKey authenticates every request. Required.
	APIKey string

	// Username is the Last.fm user whose tracks are fetched. Required.
	Username string

	// BaseURL overrides the API endpoint (used for testing).
	BaseURL string

	// UserAgent identifies the application to Last.fm.
	UserAgent string

	// HTTPClient overrides the transport (defaults to a 30s-timeout client).
	HTTPClient *http.Client

	// Pagination controls the per-request cap, chunk size and per-call
	// timeout. The chunk size must be an exact multiple of the cap.
	Pagination pagination.Config
}

// DefaultConfig returns a safe default configuration for the given user.
func DefaultConfig(apiKey, username string) Config {
	return Config{
		APIKey:     apiKey,
		Username:   username,
		BaseURL:    DefaultBaseURL,
		UserAgent:  "lastfm-client/1.0",
		Pagination: pagination.DefaultConfig(),
	}
}

// New creates a Last.fm client. Configuration errors, including a chunk
// size that is not a multiple of the per-request cap, are reported here so
// that no network call is ever made with an invalid setup.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if cfg.Username == "" {
		return nil, fmt.Errorf("username is required")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "lastfm-client/1.0"
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.Pagination.PerRequestCap == 0 && cfg.Pagination.ChunkSize == 0 {
		cfg.Pagination = pagination.DefaultConfig()
	}
	if err := cfg.Pagination.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		apiKey:     cfg.APIKey,
		username:   cfg.Username,
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		httpClient: cfg.HTTPClient,
		pageCfg:    cfg.Pagination,
		logger:     logging.NewLogger("lastfm-client").With().Str("user", cfg.Username).Logger(),
	}, nil
}

// Username returns the user the client is bound to.
func (c *Client) Username() string {
	return c.username
}
