// Package backend is the HTTP client for the chatbot API server.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HelloPath is appended to the base URL by Hello.
const HelloPath = "api/hello"

var (
	// ErrUnreachable wraps transport failures (refused, timeout, DNS...).
	ErrUnreachable = errors.New("backend unreachable")
	// ErrDecode is returned when the body is not a JSON document.
	ErrDecode = errors.New("response is not JSON")
	// ErrStatus is returned for non-2xx responses when RequireOK is set.
	ErrStatus = errors.New("unexpected status")
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Payload is a decoded response body. Value holds whatever JSON type the
// server sent (string, number, bool, nil, map[string]any, []any).
type Payload struct {
	Value  any
	Raw    json.RawMessage
	Status int
}

// Options configure a Client.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	RequireOK bool
	// HTTPClient overrides the transport; nil uses a client with Timeout.
	HTTPClient *http.Client
}

// Client issues requests against one API server.
type Client struct {
	baseURL   string
	requireOK bool
	http      *http.Client
}

// New returns a Client for opt.BaseURL. The base URL is used as given, so it
// should end with "/".
func New(opt Options) *Client {
	hc := opt.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opt.Timeout}
	}
	return &Client{baseURL: opt.BaseURL, requireOK: opt.RequireOK, http: hc}
}

// HelloURL is the full address Hello requests.
func (c *Client) HelloURL() string { return c.baseURL + HelloPath }

// Hello performs GET {base}api/hello with no headers or body and decodes the
// response as JSON. The status code is not checked unless RequireOK is set.
func (c *Client) Hello(ctx context.Context) (Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.HelloURL(), nil)
	if err != nil {
		return Payload{}, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	p := Payload{Status: resp.StatusCode}
	if c.requireOK && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return p, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return p, fmt.Errorf("%w: read body: %w", ErrUnreachable, err)
	}
	b = bytes.TrimPrefix(b, utf8BOM)
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&p.Value); err != nil {
		return p, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return p, fmt.Errorf("%w: trailing data after value", ErrDecode)
	}
	p.Raw = json.RawMessage(bytes.TrimSpace(b))
	return p, nil
}
