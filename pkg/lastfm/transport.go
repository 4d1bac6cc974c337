package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/trackfetch/lastfm-client/pkg/schema"
)

// errorEnvelope matches the error payload Last.fm returns in place of the
// requested document.
type errorEnvelope struct {
	Error   schema.Int `json:"error"`
	Message string     `json:"message"`
}

// get performs one GET against the API and returns the raw JSON body.
// params holds the method-specific parameters only; method, api_key and
// format are added here. Error mapping:
//   - transport failure or unparseable non-2xx -> *NetworkError
//   - well-formed upstream error payload       -> *APIError
func (c *Client) get(ctx context.Context, method Method, params map[string]string) ([]byte, error) {
	q := url.Values{}
	q.Set("method", string(method))
	q.Set("api_key", c.apiKey)
	q.Set("format", "json")
	for k, v := range params {
		q.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	requestDuration.WithLabelValues(string(method)).Observe(time.Since(start).Seconds())

	if err != nil {
		c.logger.Error().Err(err).Str("method", string(method)).Msg("HTTP request failed")
		requestsTotal.WithLabelValues(string(method), "network_error").Inc()
		errorsTotal.WithLabelValues("network").Inc()
		return nil, &NetworkError{Method: method, Params: params, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		requestsTotal.WithLabelValues(string(method), "network_error").Inc()
		errorsTotal.WithLabelValues("network").Inc()
		return nil, &NetworkError{Method: method, Params: params, Status: resp.StatusCode, Err: err}
	}

	requestsTotal.WithLabelValues(string(method), strconv.Itoa(resp.StatusCode)).Inc()

	// Last.fm reports API errors as JSON, usually with a 4xx status but
	// occasionally with a 200. Check the payload before the status.
	var env errorEnvelope
	if json.Unmarshal(body, &env) == nil && env.Error != 0 {
		c.logger.Warn().
			Str("method", string(method)).
			Int("code", env.Error.Value()).
			Str("message", env.Message).
			Msg("Last.fm API error")
		errorsTotal.WithLabelValues("upstream").Inc()
		return nil, &APIError{Code: env.Error.Value(), Message: env.Message}
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().
			Str("method", string(method)).
			Int("status", resp.StatusCode).
			Msg("Unexpected status")
		errorsTotal.WithLabelValues("network").Inc()
		return nil, &NetworkError{
			Method: method,
			Params: params,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	c.logger.Debug().
		Str("method", string(method)).
		Dur("duration", time.Since(start)).
		Msg("Request complete")

	return body, nil
}
