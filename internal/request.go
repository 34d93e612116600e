package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"
	"golang.org/x/time/rate"

	"github.com/micutio/delayspottr/internal/config"
)

const (
	// flightsEndpoint is the upstream path serving on-time performance data.
	flightsEndpoint = "/flights"
	// minArrivalDelay asks the upstream to pre-filter the response to flights
	// that were at least one minute late on arrival. Cancelled and diverted
	// flights may still come through without a delay value.
	minArrivalDelay = 1
	// retryBaseInterval is the wait before the first retry; every further
	// retry doubles it.
	retryBaseInterval = 1 * time.Second
	retryMultiplier   = 2
)

// newRetryBackoff creates the exponential backoff policy for request retries.
// Randomization is disabled so the wait after attempt n is exactly 2^n seconds.
func newRetryBackoff() *backoff.ExponentialBackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = retryBaseInterval
	bo.RandomizationFactor = 0
	bo.Multiplier = retryMultiplier
	bo.MaxInterval = 24 * time.Hour // the schedule is effectively uncapped

	return bo
}

// fetchState tracks where the bounded retry loop is.
type fetchState int

const (
	stateAttempting fetchState = iota
	stateSucceeded
	stateFailed
)

// Client queries the flights API and converts responses into FlightRecords.
// A single Client performs one logical fetch at a time; attempts run strictly
// sequentially with blocking backoff sleeps in between.
type Client struct {
	baseURL    string
	accessKey  string
	maxRetries int
	httpClient *http.Client
	limiter    *rate.Limiter
	normalizer *Normalizer
	logger     *slog.Logger
	sleep      func(time.Duration)
}

func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    cfg.API.BaseURL,
		accessKey:  cfg.API.AccessKey,
		maxRetries: cfg.API.MaxRetries,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second,
			// The timeout applies per attempt and connections are not carried
			// over from one attempt to the next.
			Transport: &http.Transport{DisableKeepAlives: true},
		},
		limiter:    rate.NewLimiter(rate.Limit(cfg.API.RequestsPerSecond), 1),
		normalizer: NewNormalizer(Lenient, logger),
		logger:     logger,
		sleep:      time.Sleep,
	}
}

// FetchFlights requests all delayed flights for the given date.
// Up to maxRetries attempts are made; between attempts the client sleeps
// 1s, 2s, 4s, ... . A rate-limited (429) attempt retries on the same schedule
// and surfaces as a StatusError when it happens on the final attempt.
// A 2xx response with a body that does not decode fails immediately since
// asking again cannot fix a broken payload.
func (c *Client) FetchFlights(ctx context.Context, params QueryParams) ([]FlightRecord, error) {
	endpoint := c.baseURL + flightsEndpoint

	c.logger.Info("fetching flights", "flight_date", params.FlightDate)
	c.logger.Debug("api endpoint", "url", endpoint)

	bo := newRetryBackoff()
	state := stateAttempting

	var (
		records []FlightRecord
		lastErr error
	)

	for attempt := 0; attempt < c.maxRetries && state == stateAttempting; attempt++ {
		records, lastErr = c.attemptFetch(ctx, endpoint, params, attempt)

		switch {
		case lastErr == nil:
			state = stateSucceeded
		case isPermanent(lastErr):
			state = stateFailed
		case attempt == c.maxRetries-1:
			state = stateFailed
		default:
			wait := bo.NextBackOff()
			c.logger.Warn("attempt failed, backing off",
				"attempt", attempt+1,
				"wait", wait,
				"err", lastErr,
			)
			c.sleep(wait)
		}
	}

	switch state {
	case stateSucceeded:
		return records, nil
	case stateFailed:
		return nil, lastErr
	default:
		// Unreachable unless the loop above is misconfigured.
		return nil, fmt.Errorf("FetchFlights: %w", ErrRetryExhausted)
	}
}

// attemptFetch performs a single request attempt against the flights endpoint.
func (c *Client) attemptFetch(
	ctx context.Context,
	endpoint string,
	params QueryParams,
	attempt int,
) ([]FlightRecord, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("attemptFetch: rate limit wait canceled: %w", err))
	}

	c.logger.Debug("api request attempt", "attempt", attempt+1)

	query := url.Values{}
	query.Set("access_key", c.accessKey)
	query.Set("flight_date", params.FlightDate)
	query.Set("min_delay_arr", strconv.Itoa(minArrivalDelay))

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if reqErr != nil {
		return nil, backoff.Permanent(fmt.Errorf("attemptFetch: invalid request: %w", reqErr))
	}

	resp, respErr := c.httpClient.Do(req)
	if respErr != nil {
		return nil, fmt.Errorf("attemptFetch: %w: %w", ErrConnection, respErr)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		c.logger.Warn("rate limit exceeded, retrying with backoff", "attempt", attempt+1)

		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	body, bodyErr := io.ReadAll(resp.Body)
	if bodyErr != nil {
		return nil, fmt.Errorf("attemptFetch: failed to read response body: %w", bodyErr)
	}

	var result flightsResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("attemptFetch: %w: %w", ErrInvalidJSON, err))
	}

	c.logger.Info("api request success", "records", len(result.Data), "status", resp.StatusCode)

	return c.normalizer.NormalizeEntries(result.Data), nil
}

// isPermanent reports whether the attempt failed in a way no retry can fix.
func isPermanent(err error) bool {
	var perm *backoff.PermanentError

	return errors.As(err, &perm)
}
