// Package goals sums a football team's scored goals for a season using the
// hackerrank football_matches mock API.
package goals

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public football_matches endpoint.
const DefaultBaseURL = "https://jsonmock.hackerrank.com/api/football_matches"

// Client fetches match pages and aggregates goals.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger

	maxInterval    time.Duration
	maxElapsedTime time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithLogger sets the client logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithRetryWindow bounds the per-page retry schedule.
func WithRetryWindow(maxInterval, maxElapsed time.Duration) Option {
	return func(c *Client) {
		c.maxInterval = maxInterval
		c.maxElapsedTime = maxElapsed
	}
}

// NewClient creates a goals client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:        DefaultBaseURL,
		httpClient:     &http.Client{Timeout: 10 * time.Second},
		logger:         zerolog.Nop(),
		maxInterval:    5 * time.Second,
		maxElapsedTime: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

type match struct {
	Team1      string `json:"team1"`
	Team2      string `json:"team2"`
	Team1Goals string `json:"team1goals"`
	Team2Goals string `json:"team2goals"`
}

type matchesPage struct {
	Page       int     `json:"page"`
	TotalPages int     `json:"total_pages"`
	Data       []match `json:"data"`
}

// TotalScoredGoals sums the goals team scored in year, counting matches
// played both as the home side and as the away side.
func (c *Client) TotalScoredGoals(ctx context.Context, team string, year int) (int, error) {
	home, err := c.sumGoals(ctx, team, year, "team1")
	if err != nil {
		return 0, fmt.Errorf("sum home goals: %w", err)
	}

	away, err := c.sumGoals(ctx, team, year, "team2")
	if err != nil {
		return 0, fmt.Errorf("sum away goals: %w", err)
	}

	return home + away, nil
}

// sumGoals walks every page of matches where team played in the given side
// slot and sums that slot's goals.
func (c *Client) sumGoals(ctx context.Context, team string, year int, side string) (int, error) {
	total := 0

	for page, totalPages := 1, 1; page <= totalPages; page++ {
		result, err := c.fetchPage(ctx, team, year, side, page)
		if err != nil {
			return 0, err
		}

		for _, m := range result.Data {
			raw := m.Team1Goals
			if side == "team2" {
				raw = m.Team2Goals
			}

			goals, err := strconv.Atoi(raw)
			if err != nil {
				return 0, fmt.Errorf("parse goals %q on page %d: %w", raw, page, err)
			}

			total += goals
		}

		totalPages = result.TotalPages
	}

	return total, nil
}

// fetchPage retrieves one page, retrying transient failures with exponential
// backoff. Non-2xx responses other than 5xx are permanent.
func (c *Client) fetchPage(ctx context.Context, team string, year int, side string, page int) (*matchesPage, error) {
	query := url.Values{}
	query.Set("year", strconv.Itoa(year))
	query.Set(side, team)
	query.Set("page", strconv.Itoa(page))

	endpoint := c.baseURL + "?" + query.Encode()

	b := backoff.NewExponentialBackOff()
	b.MaxInterval = c.maxInterval
	b.MaxElapsedTime = c.maxElapsedTime

	var result matchesPage

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.logger.Warn().Err(err).Int("page", page).Msg("page fetch failed, retrying")
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			c.logger.Warn().Int("status", resp.StatusCode).Int("page", page).Msg("server error, retrying")
			return fmt.Errorf("server error: %s", resp.Status)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("unexpected status: %s", resp.Status))
		}

		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return backoff.Permanent(fmt.Errorf("decode page: %w", err))
		}

		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("fetch page %d: %w", page, err)
	}

	return &result, nil
}
