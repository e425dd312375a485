package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/yatrika/travel-assistant/backend/internal/model/travel"
)

const sourceSerper = "Google (Serper)"

// SerperClient queries the Serper keyword search API, the cheaper provider
// used to pad under-filled aggregations.
type SerperClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewSerperClient returns a client, or nil when no API key is configured.
func NewSerperClient(httpClient *http.Client, apiKey string) *SerperClient {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &SerperClient{
		apiKey:     apiKey,
		baseURL:    "https://google.serper.dev",
		httpClient: httpClient,
	}
}

// Name identifies the provider in digests and logs.
func (c *SerperClient) Name() string { return sourceSerper }

// Search returns up to three organic results.
func (c *SerperClient) Search(ctx context.Context, query string) ([]travel.SearchResult, error) {
	if c == nil {
		return nil, errors.New("serper api key missing")
	}

	payload, err := json.Marshal(map[string]any{
		"q":   query,
		"num": 5,
		"gl":  "in",
		"hl":  "en",
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("serper search: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var decoded struct {
		Organic []struct {
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
			Link    string `json:"link"`
		} `json:"organic"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}

	organic := decoded.Organic
	if len(organic) > 3 {
		organic = organic[:3]
	}

	results := make([]travel.SearchResult, 0, len(organic))
	for _, item := range organic {
		results = append(results, travel.SearchResult{
			Title:   item.Title,
			Content: item.Snippet,
			URL:     item.Link,
			Source:  sourceSerper,
		})
	}
	return results, nil
}
