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

const sourceTavily = "Tavily"

// TavilyClient queries the Tavily semantic search API.
type TavilyClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewTavilyClient returns a client, or nil when no API key is configured.
func NewTavilyClient(httpClient *http.Client, apiKey string) *TavilyClient {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &TavilyClient{
		apiKey:     apiKey,
		baseURL:    "https://api.tavily.com",
		httpClient: httpClient,
	}
}

// Name identifies the provider in digests and logs.
func (c *TavilyClient) Name() string { return sourceTavily }

// Search returns up to three basic-depth results.
func (c *TavilyClient) Search(ctx context.Context, query string) ([]travel.SearchResult, error) {
	return c.search(ctx, query, "basic", 3)
}

// SearchAdvanced runs an advanced-depth query, used by the travel guide to
// dig up richer page content.
func (c *TavilyClient) SearchAdvanced(ctx context.Context, query string, maxResults int) ([]travel.SearchResult, error) {
	return c.search(ctx, query, "advanced", maxResults)
}

func (c *TavilyClient) search(ctx context.Context, query, depth string, maxResults int) ([]travel.SearchResult, error) {
	body := map[string]any{
		"query":        query,
		"search_depth": depth,
		"max_results":  maxResults,
	}

	var resp struct {
		Results []struct {
			Title   string `json:"title"`
			URL     string `json:"url"`
			Content string `json:"content"`
		} `json:"results"`
	}
	if err := c.do(ctx, "/search", body, &resp); err != nil {
		return nil, err
	}

	results := make([]travel.SearchResult, 0, len(resp.Results))
	for _, item := range resp.Results {
		results = append(results, travel.SearchResult{
			Title:   item.Title,
			Content: item.Content,
			URL:     item.URL,
			Source:  sourceTavily,
		})
	}
	return results, nil
}

func (c *TavilyClient) do(ctx context.Context, path string, payload, v any) error {
	if c == nil {
		return errors.New("tavily api key missing")
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("tavily %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
