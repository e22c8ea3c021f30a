// Package labapi talks to the hosted laboratory REST API, the source of truth for
// every record the dashboard shows.
package labapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxErrorBody = 512

// Config holds the upstream location.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is a thin JSON client over net/http. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for cfg.BaseURL.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewClientWithHTTP lets tests inject an http.Client.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// Get decodes the JSON body of GET path into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	body, _, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return decode(body, out, path)
}

// GetList decodes a collection. The upstream answers either a bare array or an
// object wrapping it under "data".
func (c *Client) GetList(ctx context.Context, path string, query url.Values, out interface{}) error {
	body, _, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		trimmed = envelope.Data
	}
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		trimmed = []byte("[]")
	}
	return decode(trimmed, out, path)
}

// Send issues a mutation with an optional JSON body and decodes the answer
// into out when out is non-nil and the upstream returned content.
func (c *Client) Send(ctx context.Context, method, path string, in, out interface{}) error {
	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
	}
	body, _, err := c.do(ctx, method, path, nil, payload)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	return decode(body, out, path)
}

// Download returns the raw body and its content type.
func (c *Client) Download(ctx context.Context, path string, query url.Values) ([]byte, string, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload []byte) ([]byte, string, error) {
	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, "", fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("lab api %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(body))
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
		return nil, "", &Error{Method: method, Path: path, StatusCode: resp.StatusCode, Body: msg}
	}
	return body, resp.Header.Get("Content-Type"), nil
}

func decode(body []byte, out interface{}, path string) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
