// Package translate talks to the translation relay: a stateless
// endpoint that forwards text to the upstream provider while holding
// the credential server-side.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"bilingual-todo/internal/model"
)

// DefaultTimeout bounds a single translation round trip. A hung request
// is treated like any other failure.
const DefaultTimeout = 10 * time.Second

// Translator is the contract the coordinator depends on.
type Translator interface {
	Translate(ctx context.Context, from, to model.Lang, text string) (string, error)
}

// Client calls the relay over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type translateRequest struct {
	From model.Lang `json:"from"`
	To   model.Lang `json:"to"`
	Data string     `json:"data"`
}

type translateResponse struct {
	Result string `json:"result"`
}

// Translate sends text to the relay and returns the translated string.
func (c *Client) Translate(ctx context.Context, from, to model.Lang, text string) (string, error) {
	body, err := json.Marshal(translateRequest{From: from, To: to, Data: text})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call relay: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("relay returned %s", resp.Status)
	}

	var decoded translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if decoded.Result == "" {
		return "", fmt.Errorf("relay response missing result")
	}
	return decoded.Result, nil
}
