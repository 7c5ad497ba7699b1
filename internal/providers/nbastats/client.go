package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/retry"
)

const (
	BaseURL = "https://stats.nba.com/stats"

	// LeagueID is the NBA league identifier
	LeagueID = "00"

	defaultTimeout    = 15 * time.Second
	defaultRetryDelay = 500 * time.Millisecond
)

// Client handles stats.nba.com API requests
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	season     string // season used for directory queries
	retry      *retry.Policy
	logger     *logrus.Logger
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at another host (tests, proxies)
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout bounds every HTTP request
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetries sets the attempt budget per request
func WithRetries(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		c.retry = retry.NewPolicy(attempts, delay)
	}
}

// WithSeason sets the season passed to directory endpoints
func WithSeason(season string) Option {
	return func(c *Client) {
		c.season = season
	}
}

// WithLogger sets the client logger
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a new stats.nba.com client
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL:   BaseURL,
		userAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
		season:    "2023-24",
		retry:     retry.NewPolicy(2, defaultRetryDelay),
		logger:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// fetch makes a GET request against endpoint, retrying transient failures
func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values) (*response, error) {
	u := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())
	log := c.logger.WithField("endpoint", endpoint)

	var result *response
	attempt := 0
	err := c.retry.Execute(ctx, func() error {
		attempt++
		res, err := c.do(ctx, u)
		if err != nil {
			log.WithError(err).WithField("attempt", attempt).Warn("stats request failed")
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", endpoint, err)
	}

	log.WithField("attempts", attempt).Debug("stats request completed")
	return result, nil
}

func (c *Client) do(ctx context.Context, u string) (*response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, retry.Permanent(fmt.Errorf("creating request: %w", err))
	}

	// stats.nba.com rejects requests that do not look like they come from nba.com
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Origin", "https://www.nba.com")
	req.Header.Set("Referer", "https://www.nba.com/")
	req.Header.Set("x-nba-stats-origin", "stats")
	req.Header.Set("x-nba-stats-token", "true")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("stats API error: status=%d, body=%s", resp.StatusCode, string(body))
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return nil, retry.Permanent(err)
		}
		return nil, err
	}

	var result response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, retry.Permanent(fmt.Errorf("decoding response: %w", err))
	}

	return &result, nil
}
