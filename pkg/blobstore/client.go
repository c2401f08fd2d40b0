package blobstore

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client talks to the external image store that holds seller-uploaded
// listing photos. Only deletion is needed here; uploads happen directly from
// the mobile clients.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// DeleteByPath removes a stored object by its storage path. A 404 from the
// store counts as success: the object is gone either way.
func (c *Client) DeleteByPath(ctx context.Context, path string) error {

	endpoint := fmt.Sprintf("%s/objects/%s", c.baseURL, url.PathEscape(path))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", path, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("failed to delete object %s, status code: %d", path, resp.StatusCode)
	}

	return nil
}
