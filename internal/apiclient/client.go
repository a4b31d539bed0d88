// internal/apiclient/client.go
package apiclient

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

	"github.com/sirupsen/logrus"

	"github.com/atelier-gestor/atelier/internal/config"
)

const defaultLanguage = "pt-BR"

// Client talks to the atelier REST API.
type Client struct {
	baseURL    string
	language   string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   defaultLanguage,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func NewFromConfig(cfg config.APIConfig) *Client {
	return NewClient(cfg.BaseURL, time.Duration(cfg.Timeout)*time.Second)
}

// WithLanguage sets the Accept-Language sent with every request.
func (c *Client) WithLanguage(lang string) *Client {
	c.language = lang
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// ResolveURL turns a stored path such as /uploads/artes/x.png into an
// absolute URL. Absolute URLs are returned as is.
func (c *Client) ResolveURL(p string) string {
	if p == "" || strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	return c.baseURL + "/" + strings.TrimLeft(p, "/")
}

// Get decodes the JSON body into out. On 204 out is left untouched.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post sends payload as JSON, or as is when it is a *Multipart.
func (c *Client) Post(ctx context.Context, path string, payload, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, payload, out)
}

func (c *Client) Patch(ctx context.Context, path string, payload, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, nil, payload, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// DeleteInto is Delete for the nested routes that answer with the parent.
func (c *Client) DeleteInto(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload, out interface{}) error {
	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	body, contentType, err := encodePayload(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.language != "" {
		req.Header.Set("Accept-Language", c.language)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	logrus.WithFields(logrus.Fields{
		"method":   method,
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(start).String(),
	}).Debug("API request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp, localeOf(c.language))
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

func encodePayload(payload interface{}) (io.Reader, string, error) {
	switch p := payload.(type) {
	case nil:
		return nil, "", nil
	case *Multipart:
		return p.Reader(), p.ContentType(), nil
	default:
		data, err := json.Marshal(p)
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode payload: %w", err)
		}
		return bytes.NewReader(data), "application/json", nil
	}
}
