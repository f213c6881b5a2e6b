// Package leapdist downloads the leap-seconds.list file published by the
// IETF.
//
// Clients are advised to store the [ETags] returned by this package and pass
// them to subsequent calls to avoid downloading the same data multiple
// times. The file carries its own expiry timestamp (see leapdata.File), so a
// cached copy remains authoritative until that moment even without a
// successful refresh.
//
// [ETags]: https://developer.mozilla.org/en-US/docs/Web/HTTP/Headers/ETag
package leapdist

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/ngrash/go-utc/leapdata"
)

// DefaultURL is the published location of the leap-seconds.list file.
const DefaultURL = "https://www.ietf.org/timezones/data/leap-seconds.list"

// emptyEtag is the empty etag value.
const emptyEtag = ""

// DefaultClient is the default client to download the leap second list.
// It is ready to use and is used by the top-level function [Latest].
var DefaultClient = &Client{}

// Client is a client to download and parse the leap second list.
// The zero value is ready to use.
type Client struct {
	// HTTPClient is the http.Client used for the download.
	// If HTTPClient is nil, http.DefaultClient is used.
	//
	// This variable is useful to prevent network calls during tests by
	// using a http.Client with a fake http.RoundTripper that returns
	// canned responses. You can also use it to set timeouts, control
	// redirects, etc. However, timeouts are also controlled by the context
	// passed to the Latest method.
	HTTPClient *http.Client

	// URL overrides the location of the file. If URL is empty, DefaultURL
	// is used.
	URL string
}

// httpClient returns the http.Client used by the client.
// If HTTPClient is nil, http.DefaultClient is returned.
func (c *Client) httpClient() *http.Client {
	if c.HTTPClient == nil {
		return http.DefaultClient
	}
	return c.HTTPClient
}

func (c *Client) url() string {
	if c.URL == "" {
		return DefaultURL
	}
	return c.URL
}

// Latest downloads and parses the latest leap second list.
//
// If the server responds with a 304 Not Modified status code, the returned
// ETag is the same as the input and the returned File and error are both
// nil.
//
// If an error is returned, the returned ETag is empty and the returned File
// is nil.
//
// Latest is a wrapper around DefaultClient.Latest.
func Latest(ctx context.Context, etag string) (*leapdata.File, string, error) {
	return DefaultClient.Latest(ctx, etag)
}

// Latest downloads and parses the latest leap second list.
//
// If the server responds with a 304 Not Modified status code, the returned
// ETag is the same as the input and the returned File and error are both
// nil.
//
// If an error is returned, the returned ETag is empty and the returned File
// is nil.
//
// The given context.Context is passed to the http.Request and can be used to
// control cancellation and timeouts.
func (c *Client) Latest(ctx context.Context, etag string) (*leapdata.File, string, error) {
	r, newEtag, err := c.downloadIfNoneMatch(ctx, c.url(), etag)
	if err != nil {
		return nil, emptyEtag, err
	}
	if r == nil {
		return nil, etag, nil // Not modified.
	}
	defer func() {
		// Drain and close the response body to ensure the
		// connection can be reused.
		_, _ = io.ReadAll(r)
		_ = r.Close()
	}()

	f, err := leapdata.Parse(r)
	if err != nil {
		return nil, emptyEtag, err
	}

	return &f, newEtag, nil
}

// downloadIfNoneMatch downloads the resource at the given URL with caching
// using the given ETag.
//
// If the etag is not empty and the server responds with a 304 Not Modified
// status code, the returned io.ReadCloser and error are both nil, and the
// etag is the same as the input.
func (c *Client) downloadIfNoneMatch(ctx context.Context, url, etag string) (io.ReadCloser, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, emptyEtag, fmt.Errorf("create request for %q: %w", url, err)
	}

	if etag != emptyEtag {
		req.Header.Set("If-None-Match", etag)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, emptyEtag, fmt.Errorf("GET %q: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		// Drain and close the response body to reuse the connection.
		// In theory, the server will not send a body with all status
		// codes, but draining before closing the body is the safe thing
		// to do.
		_, _ = io.ReadAll(resp.Body)
		_ = resp.Body.Close()

		// Not modified response means the resource has not changed
		// based on the ETag we sent. This is fine.
		if resp.StatusCode == http.StatusNotModified {
			return nil, etag, nil
		}

		return nil, emptyEtag, fmt.Errorf("response for %q: unexpected status: %s", url, resp.Status)
	}

	// Caller must take care of closing the response body.
	return resp.Body, resp.Header.Get("etag"), nil
}
