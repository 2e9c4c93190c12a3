package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/alumnet/admin-gateway/pkg/config"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
)

// Client is the single shared HTTP wrapper for the alumni-network backend.
// Every call attaches the session bearer token and propagates the request
// context, so client disconnects cancel in-flight proxy calls.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// Response captures an upstream reply for verbatim relay.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// OK reports whether the upstream answered with a 2xx status.
func (r *Response) OK() bool {
	return r != nil && r.Status >= 200 && r.Status < 300
}

// Message extracts the upstream error message, falling back to the given
// default when the body carries none.
func (r *Response) Message(fallback string) string {
	if r == nil || len(r.Body) == 0 {
		return fallback
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(r.Body, &payload); err != nil || payload.Message == "" {
		return fallback
	}
	return payload.Message
}

// New constructs the shared client.
func New(cfg config.UpstreamConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

// Do issues one request against the backend. A non-2xx reply is not an
// error: the caller relays status and body unchanged. Transport failures
// surface as UPSTREAM_UNREACHABLE carrying the best-available message.
func (c *Client) Do(ctx context.Context, method, path, token string, query [][2]string, body interface{}) (*Response, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		values := url.Values{}
		for _, pair := range query {
			values.Add(pair[0], pair[1])
		}
		target += "?" + values.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode upstream payload")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build upstream request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("upstream_call_failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrUpstreamUnreachable.Code, appErrors.ErrUpstreamUnreachable.Status, fmt.Sprintf("upstream call failed: %v", err))
	}
	defer resp.Body.Close() //nolint:errcheck

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstreamUnreachable.Code, appErrors.ErrUpstreamUnreachable.Status, "failed to read upstream response")
	}

	return &Response{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        payload,
	}, nil
}

// Get issues a GET with the bearer token attached.
func (c *Client) Get(ctx context.Context, path, token string, query [][2]string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, token, query, nil)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path, token string, body interface{}) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, token, nil, body)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path, token string, body interface{}) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, token, nil, body)
}

// Patch issues a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path, token string, body interface{}) (*Response, error) {
	return c.Do(ctx, http.MethodPatch, path, token, nil, body)
}

// Delete issues a DELETE with the bearer token attached.
func (c *Client) Delete(ctx context.Context, path, token string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, token, nil, nil)
}
