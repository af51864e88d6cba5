// Package support provides the public Go SDK for the support engine API.
package support

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client is the public SDK client for the support engine.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientConfig holds client configuration.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// NewClient creates a support engine client.
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8000"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// ChatRequest is a conversation turn.
type ChatRequest struct {
	Message   string         `json:"message"`
	SessionID string         `json:"session_id,omitempty"`
	Context   map[string]any `json:"context,omitempty"`
}

// ChatMetadata records how the response was produced.
type ChatMetadata struct {
	ResponseType string         `json:"response_type"`
	Confidence   float64        `json:"confidence"`
	TrainingUsed bool           `json:"training_used"`
	Context      map[string]any `json:"context,omitempty"`
}

// ChatResponse is the rendered bot reply.
type ChatResponse struct {
	Message      string       `json:"message"`
	SessionID    string       `json:"session_id"`
	Timestamp    time.Time    `json:"timestamp"`
	Suggestions  []string     `json:"suggestions"`
	QuickReplies []string     `json:"quick_replies"`
	Metadata     ChatMetadata `json:"metadata"`
}

// Chat sends one message and returns the bot's reply.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	var resp ChatResponse
	if err := c.post(ctx, "/api/chat", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Welcome fetches the greeting for a new session.
func (c *Client) Welcome(ctx context.Context) (*ChatResponse, error) {
	var resp ChatResponse
	if err := c.get(ctx, "/api/chat/welcome", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TrainingStatus is the outcome of the engine's last training run.
type TrainingStatus struct {
	Success      bool           `json:"success"`
	StepsRun     []string       `json:"steps_run"`
	StepsSkipped []string       `json:"steps_skipped"`
	Summary      map[string]any `json:"summary"`
}

// TrainingStatus fetches the last training result.
func (c *Client) TrainingStatus(ctx context.Context) (*TrainingStatus, error) {
	var resp TrainingStatus
	if err := c.get(ctx, "/api/training/status", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Retrain triggers a reload of the data source and a full retrain.
func (c *Client) Retrain(ctx context.Context) (*TrainingStatus, error) {
	var resp TrainingStatus
	if err := c.post(ctx, "/api/training/retrain", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ProductSales is one ranked best-seller row.
type ProductSales struct {
	ProductID    int64   `json:"product_id"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	UnitPrice    float64 `json:"unit_price"`
	UnitsSold    int     `json:"units_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}

// TopProducts fetches the best-selling products.
func (c *Client) TopProducts(ctx context.Context, limit int) ([]ProductSales, error) {
	var resp struct {
		Products []ProductSales `json:"products"`
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := c.get(ctx, "/api/products/top", q, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// SearchProducts searches the catalog by name, category or brand.
func (c *Client) SearchProducts(ctx context.Context, query string) ([]map[string]any, error) {
	var resp struct {
		Products []map[string]any `json:"products"`
	}
	q := url.Values{"q": {query}}
	if err := c.get(ctx, "/api/products/search", q, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error != "" {
			return fmt.Errorf("%s: %s (status %d)", req.URL.Path, apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s: unexpected status %d", req.URL.Path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
