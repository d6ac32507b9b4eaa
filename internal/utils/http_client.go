package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly and records
// whether the wrapper owns the underlying connection pool.
//
// Example usage:
//
//	client := utils.NewHTTPClient(10 * time.Second)
//	defer client.Close()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client

	owned bool
}

// NewHTTPClient creates an HTTPClient with its own resty.Client and
// connection pool. A non-positive timeout leaves resty's default (none).
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	cli := resty.New()
	if timeout > 0 {
		cli.SetTimeout(timeout)
	}
	return &HTTPClient{Client: cli, owned: true}
}

// WrapHTTPClient adopts an externally managed resty.Client. Close on the
// returned wrapper leaves the shared pool untouched.
func WrapHTTPClient(cli *resty.Client) *HTTPClient {
	return &HTTPClient{Client: cli}
}

// Owned reports whether Close releases the underlying connection pool.
func (c *HTTPClient) Owned() bool {
	return c.owned
}

// Close releases idle connections of an owned client. It is a no-op for
// wrapped clients and safe to call more than once.
func (c *HTTPClient) Close() {
	if !c.owned || c.Client == nil {
		return
	}
	c.GetClient().CloseIdleConnections()
}
