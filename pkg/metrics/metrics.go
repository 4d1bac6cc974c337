// Package metrics provides the Prometheus registry reference for the
// Last.fm client. All metrics are defined in their respective packages
// (lastfm, pagination) to maintain modularity and avoid circular
// dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the client.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/lastfm):
//   - lastfm_requests_total{method, status} (Counter): Total requests by API method and HTTP status
//   - lastfm_request_duration_seconds{method} (Histogram): Request duration by API method
//   - lastfm_errors_total{class} (Counter): Errors by class (network, upstream, validation)
//
// Pagination Metrics (pkg/pagination):
//   - lastfm_pages_fetched_total (Counter): Upstream pages fetched
//   - lastfm_fetch_all_duration_seconds (Histogram): Duration of full multi-page fetches
//   - lastfm_batch_calls (Histogram): Concurrent calls per chunk batch
//
// Example Prometheus Queries:
//
//   # Request Error Rate
//   rate(lastfm_errors_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(lastfm_request_duration_seconds_bucket[5m]))
//
//   # Pages per Fetch
//   rate(lastfm_pages_fetched_total[5m]) / rate(lastfm_fetch_all_duration_seconds_count[5m])
