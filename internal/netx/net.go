// Package netx contains the HTTP plumbing used to reach the remote endpoint.
package netx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// ContentTypeText is sent on every POST. A JSON body labelled text/plain is a
// "simple" request, so Apps Script web apps answer it without a CORS
// preflight.
const ContentTypeText = "text/plain;charset=utf-8"

// TextPoster POSTs a body and returns the response body as text.
//
// The status code is deliberately not inspected: the endpoint reports
// failures inside the body, and redirects are followed by http.Client.
// Only transport-level failures are returned as errors.
type TextPoster struct {
	client *http.Client
}

// NewTextPoster returns a TextPoster using c, or http.DefaultClient when c is nil.
func NewTextPoster(c *http.Client) *TextPoster {
	if c == nil {
		c = http.DefaultClient
	}
	return &TextPoster{client: c}
}

// Post sends body to endpoint with Content-Type ContentTypeText.
func (p *TextPoster) Post(ctx context.Context, endpoint string, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", ContentTypeText)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}
	return string(b), nil
}
