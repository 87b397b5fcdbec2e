package duneclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/morlord/builders-service/internal/clients/client"
	"github.com/morlord/builders-service/internal/config"
)

type Client struct {
	httpClient *http.Client
	cfg        *config.DuneConfig
}

func NewClient(cfg *config.DuneConfig) *Client {
	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
	}
}

func (c *Client) GetBaseURL() string {
	return c.cfg.BaseURL
}

func (c *Client) GetDefaultRequestTimeout() time.Duration {
	return c.cfg.Timeout
}

func (c *Client) GetHttpClient() *http.Client {
	return c.httpClient
}

// GetQueryResults fetches the latest result rows of a saved analytics query.
func (c *Client) GetQueryResults(ctx context.Context, queryID string) ([]map[string]any, error) {
	if queryID == "" {
		return nil, fmt.Errorf("empty query id provided")
	}

	type empty struct{}
	type resultsResponse struct {
		Result struct {
			Rows []map[string]any `json:"rows"`
		} `json:"result"`
	}

	callForResults := func() ([]map[string]any, error) {
		opts := &client.HttpClientOptions{
			Path:         fmt.Sprintf("/query/%s/results", queryID),
			TemplatePath: "/query/results",
			Headers:      map[string]string{"X-Dune-API-Key": c.cfg.APIKey},
		}

		resp, err := client.SendRequest[empty, resultsResponse](ctx, c, http.MethodGet, opts, nil)
		if err != nil {
			return nil, err
		}
		return resp.Result.Rows, nil
	}

	rows, err := clientCallWithRetry(ctx, callForResults, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get results for query %q: %w", queryID, err)
	}

	return rows, nil
}

func clientCallWithRetry[T any](
	ctx context.Context,
	call retry.RetryableFuncWithData[T],
	cfg *config.DuneConfig,
) (T, error) {
	result, err := retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(cfg.MaxRetryTimes),
		retry.Delay(cfg.RetryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			// Only retry on rate limit errors (429)
			return err != nil && strings.Contains(err.Error(), "rate limit exceeded")
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", cfg.MaxRetryTimes).
				Err(err).
				Msg("rate limit exceeded, retrying with exponential backoff")
		}))
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
