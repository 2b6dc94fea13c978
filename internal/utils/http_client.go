package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultHTTPTimeout = 30 * time.Second

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional SDK-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://api.ticktick.com/api/v2/user/status")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance with a
// default-configured underlying resty.Client and a sane request timeout.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and cookie jar. Callers are expected to
// finish configuration (base URL, headers, cookies) before issuing requests.
//
// Returns:
//
//	*HTTPClient - a ready-to-use HTTP client
func NewHTTPClient() *HTTPClient {
	c := resty.New()
	c.SetTimeout(defaultHTTPTimeout)

	return &HTTPClient{Client: c}
}
