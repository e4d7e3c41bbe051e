// Package tmdb implements the metadata-provider client for the TMDB HTTP API.
package tmdb

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"catalogue-service/internal/domain"
)

// allowedProviders is the fixed allow-list of streaming services surfaced to
// callers. Anything else in the regional flatrate list is dropped.
var allowedProviders = map[string]struct{}{
	"Netflix":            {},
	"Disney+":            {},
	"Apple TV":           {},
	"Canal+":             {},
	"Amazon Prime Video": {},
	"Max":                {},
}

// Config holds configuration for the TMDB client.
type Config struct {
	BaseURL      string
	ImageBaseURL string
	APIKey       string
	Language     string
	Region       string
	Timeout      time.Duration
	Retry        RetryConfig
	CB           CBConfig
}

// RetryConfig holds retry configuration for outbound calls.
type RetryConfig struct {
	MaxAttempts int
	WaitTime    time.Duration
	MaxWaitTime time.Duration
}

// CBConfig holds circuit breaker configuration.
type CBConfig struct {
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	FailureRatio float64
}

// Client implements domain.MetadataProvider against the TMDB API.
type Client struct {
	cfg    Config
	client *resty.Client
	cb     *gobreaker.CircuitBreaker[*resty.Response]
	logger *zap.Logger
}

// New creates a new TMDB client.
func New(cfg Config, logger *zap.Logger) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retry.MaxAttempts).
		SetRetryWaitTime(cfg.Retry.WaitTime).
		SetRetryMaxWaitTime(cfg.Retry.MaxWaitTime).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// Retry on network errors or 5xx status codes
			if err != nil {
				return true
			}

			return r.StatusCode() >= 500
		})

	settings := gobreaker.Settings{
		Name:        "tmdb",
		MaxRequests: cfg.CB.MaxRequests,
		Interval:    cfg.CB.Interval,
		Timeout:     cfg.CB.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

			return counts.Requests >= 3 && failureRatio >= cfg.CB.FailureRatio
		},
	}

	return &Client{
		cfg:    cfg,
		client: client,
		cb:     gobreaker.NewCircuitBreaker[*resty.Response](settings),
		logger: logger,
	}
}

// FetchContentInfo issues the details and streaming-provider calls for the
// given content and merges them. Each sub-call is independently fail-soft: a
// transport error or non-2xx response marks that half unavailable and the
// merged result still carries whatever the other half produced.
func (c *Client) FetchContentInfo(ctx context.Context, contentID int64, contentType domain.ContentType) *domain.ContentInfo {
	info := &domain.ContentInfo{}

	details, err := c.getContentDetails(ctx, contentID, contentType)
	if err != nil {
		c.logger.Warn("tmdb details fetch failed",
			zap.Int64("content_id", contentID),
			zap.String("type", string(contentType)),
			zap.String("state", c.cb.State().String()),
			zap.Error(err),
		)
		info.DetailsUnavailable = true
	} else {
		info.Details = details
	}

	providers, err := c.getStreamingProviders(ctx, contentID, contentType)
	if err != nil {
		c.logger.Warn("tmdb providers fetch failed",
			zap.Int64("content_id", contentID),
			zap.String("type", string(contentType)),
			zap.String("state", c.cb.State().String()),
			zap.Error(err),
		)
		info.ProvidersUnavailable = true
	} else {
		info.Providers = providers
	}

	return info
}

// getContentDetails fetches the detail payload for one content item.
func (c *Client) getContentDetails(ctx context.Context, contentID int64, contentType domain.ContentType) (*domain.ContentDetails, error) {
	resp, err := c.execute(ctx, fmt.Sprintf("/%s/%d", contentType, contentID), &detailsResponse{})
	if err != nil {
		return nil, err
	}

	result := resp.Result().(*detailsResponse)

	return result.toDomain(c.cfg.ImageBaseURL), nil
}

// getStreamingProviders fetches the regional streaming availability and
// filters it down to the allow-list. A nil result with a nil error means the
// provider answered and nothing allow-listed carries the item.
func (c *Client) getStreamingProviders(ctx context.Context, contentID int64, contentType domain.ContentType) ([]domain.StreamingProvider, error) {
	resp, err := c.execute(ctx, fmt.Sprintf("/%s/%d/watch/providers", contentType, contentID), &providersResponse{})
	if err != nil {
		return nil, err
	}

	result := resp.Result().(*providersResponse)

	offers, ok := result.Results[c.cfg.Region]
	if !ok {
		return nil, nil
	}

	var providers []domain.StreamingProvider
	for _, entry := range offers.Flatrate {
		if _, known := allowedProviders[entry.ProviderName]; known {
			providers = append(providers, entry.toDomain())
		}
	}

	return providers, nil
}

// execute runs one GET through the circuit breaker with the common query
// parameters applied.
func (c *Client) execute(ctx context.Context, path string, result any) (*resty.Response, error) {
	return c.cb.Execute(func() (*resty.Response, error) {
		r, err := c.client.R().
			SetContext(ctx).
			SetQueryParam("api_key", c.cfg.APIKey).
			SetQueryParam("language", c.cfg.Language).
			SetResult(result).
			Get(path)
		if err != nil {
			return nil, err
		}
		if r.IsError() {
			return nil, fmt.Errorf("tmdb returned status %d", r.StatusCode())
		}

		return r, nil
	})
}
