// Package client is a small Go client for the electrical dashboard API.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to one dashboard API server.
type Client struct {
	BaseURL string
	Client  *http.Client
}

// New creates a client for the server at baseURL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Errors     []string // present on validation failures
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// Calculate runs one calculation.
func (c *Client) Calculate(req CalculateRequest) (*Calculation, error) {
	var out Calculation
	if err := c.doJSON(http.MethodPost, "/api/v1/calculate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Compare runs the base request plus named variations in one call.
func (c *Client) Compare(base CalculateRequest, variations []CompareVariation) ([]CompareResult, error) {
	body := struct {
		Base       CalculateRequest   `json:"base"`
		Variations []CompareVariation `json:"variations"`
	}{Base: base, Variations: variations}

	var out compareResponse
	if err := c.doJSON(http.MethodPost, "/api/v1/calculate/compare", body, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// Validate checks inputs without running the calculation.
func (c *Client) Validate(req CalculateRequest) (*ValidationResult, error) {
	var out ValidationResult
	if err := c.doJSON(http.MethodPost, "/api/v1/validate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Rules fetches the server's validation rules and defaults.
func (c *Client) Rules() (*Rules, error) {
	var out Rules
	if err := c.doJSON(http.MethodGet, "/api/v1/rules", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// History lists saved calculations, newest first.
func (c *Client) History() (*HistoryList, error) {
	var out HistoryList
	if err := c.doJSON(http.MethodGet, "/api/v1/history", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveHistory computes and saves one calculation, returning the stored item.
func (c *Client) SaveHistory(req CalculateRequest) (*HistoryItem, error) {
	var out HistoryItem
	if err := c.doJSON(http.MethodPost, "/api/v1/history", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetHistoryItem fetches one saved calculation by id.
func (c *Client) GetHistoryItem(id string) (*HistoryItem, error) {
	var out HistoryItem
	if err := c.doJSON(http.MethodGet, "/api/v1/history/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteHistoryItem removes one saved calculation by id.
func (c *Client) DeleteHistoryItem(id string) error {
	return c.doJSON(http.MethodDelete, "/api/v1/history/"+url.PathEscape(id), nil, nil)
}

// ClearHistory removes all saved calculations.
func (c *Client) ClearHistory() error {
	return c.doJSON(http.MethodDelete, "/api/v1/history", nil, nil)
}

// Theme fetches the active theme ("light" or "dark").
func (c *Client) Theme() (string, error) {
	var out themePayload
	if err := c.doJSON(http.MethodGet, "/api/v1/theme", nil, &out); err != nil {
		return "", err
	}
	return out.Theme, nil
}

// SetTheme stores a theme.
func (c *Client) SetTheme(theme string) error {
	return c.doJSON(http.MethodPut, "/api/v1/theme", themePayload{Theme: theme}, nil)
}

// ToggleTheme flips the stored theme and returns the new value.
func (c *Client) ToggleTheme() (string, error) {
	var out themePayload
	if err := c.doJSON(http.MethodPost, "/api/v1/theme/toggle", nil, &out); err != nil {
		return "", err
	}
	return out.Theme, nil
}

// Rates fetches the rate preset catalog.
func (c *Client) Rates() (*RatesList, error) {
	var out RatesList
	if err := c.doJSON(http.MethodGet, "/api/v1/rates", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RankRates ranks the presets by projected annual cost for one load,
// cheapest first.
func (c *Client) RankRates(params RateRankParams) ([]RateRanking, error) {
	q := url.Values{}
	q.Set("voltage", formatFloat(params.Voltage))
	q.Set("current", formatFloat(params.Current))
	if params.Phase != 0 {
		q.Set("phase", strconv.Itoa(params.Phase))
	}
	if params.PowerFactor != nil {
		q.Set("power_factor", formatFloat(*params.PowerFactor))
	}
	if params.Efficiency != nil {
		q.Set("efficiency", formatFloat(*params.Efficiency))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}

	var out rateRankPayload
	if err := c.doJSON(http.MethodGet, "/api/v1/rates/rank?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out.Rankings, nil
}

// Health checks that the server is up.
func (c *Client) Health() error {
	return c.doJSON(http.MethodGet, "/health", nil, nil)
}

// doJSON sends one request and decodes the JSON response into out (when out
// is non-nil). Non-2xx responses decode into an *APIError.
func (c *Client) doJSON(method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Code:       "API_ERROR",
		Message:    resp.Status,
	}

	var envelope struct {
		Error struct {
			Code    string         `json:"code"`
			Message string         `json:"message"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error.Code != "" {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
		if raw, ok := envelope.Error.Details["errors"].([]any); ok {
			for _, e := range raw {
				if s, ok := e.(string); ok {
					apiErr.Errors = append(apiErr.Errors, s)
				}
			}
		}
	}
	return apiErr
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
