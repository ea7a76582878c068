package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is the resty client used to talk to the sync server.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures NewHTTPClient. Zero values leave resty's
// defaults in place.
type HTTPClientOptions struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string

	// Signer, when enabled, adds the HashSHA256 header to every request
	// whose body is a []byte.
	Signer *BodySigner
}

// NewHTTPClient returns an independent client that accepts JSON.
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	c := resty.New().SetHeader("Accept", "application/json")
	if opts.BaseURL != "" {
		c.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		c.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		c.SetHeader("User-Agent", opts.UserAgent)
	}
	if opts.Signer.Enabled() {
		signer := opts.Signer
		c.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if body, ok := r.Body.([]byte); ok {
				r.SetHeader(BodyHashHeader, signer.Sign(body))
			}
			return nil
		})
	}

	return &HTTPClient{Client: c}
}
