// Package client ranks strings through HTTP API of 'permrank serve'.
package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"github.com/tarantool/permrank/internal/permrank/models"
	"github.com/tarantool/permrank/internal/permrank/ranker"
)

const (
	DefaultRetryMax = 3
	maxBodySize     = 1 << 20 // 1 Mb
	retryWaitMin    = 100 * time.Millisecond
	retryWaitMax    = 5 * time.Second
)

// Client type is HTTP client of permrank API.
type Client struct {
	baseURL         *url.URL
	retryableClient *retryablehttp.Client
}

// errorResponse type is an error body sent by server.
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// New creates Client for server at baseURL, failed requests are retried up to retryMax times.
func New(baseURL string, retryMax int) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Errorf("invalid server url %q: %v", baseURL, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.Errorf("invalid server url %q: scheme should be http or https", baseURL)
	}

	retryableClient := retryablehttp.NewClient()
	retryableClient.Logger = nil
	retryableClient.RetryWaitMin = retryWaitMin
	retryableClient.RetryWaitMax = retryWaitMax
	retryableClient.RetryMax = max(retryMax, 0)
	retryableClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		baseURL:         parsed,
		retryableClient: retryableClient,
	}, nil
}

// Rank ranks input on server. Inputs rejected by server are reported as ranker.ErrInvalidInput.
func (c *Client) Rank(ctx context.Context, input string) (*models.RankResult, error) {
	endpoint := c.baseURL.JoinPath("rank")
	endpoint.RawQuery = url.Values{"input": []string{input}}.Encode()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.New(err.Error())
	}

	resp, err := c.retryableClient.Do(req)
	if err != nil {
		return nil, errors.Errorf("failed to send request to %s: %v", c.baseURL, err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, errors.Errorf("failed to read response body: %v", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest:
		return nil, errors.WithMessage(ranker.ErrInvalidInput, decodeError(body))
	default:
		return nil, errors.Errorf("unexpected status %d: %s", resp.StatusCode, decodeError(body))
	}

	var result models.RankResult

	if err = json.Unmarshal(body, &result); err != nil {
		return nil, errors.WithMessage(err, "failed to decode rank result")
	}

	return &result, nil
}

func decodeError(body []byte) string {
	var resp errorResponse

	if err := json.Unmarshal(body, &resp); err != nil || resp.Message == "" {
		return string(body)
	}

	if resp.Error == "" {
		return resp.Message
	}

	return resp.Message + ": " + resp.Error
}
