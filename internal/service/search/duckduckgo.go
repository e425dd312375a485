package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/yatrika/travel-assistant/backend/internal/model/travel"
)

const sourceDuckDuckGo = "DuckDuckGo"

// DuckDuckGoClient wraps the keyless Instant Answer API, the last-resort
// provider when the paid ones come up short.
type DuckDuckGoClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewDuckDuckGoClient returns a client, or nil when the fallback is disabled.
func NewDuckDuckGoClient(httpClient *http.Client, enabled bool) *DuckDuckGoClient {
	if !enabled {
		return nil
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &DuckDuckGoClient{
		baseURL:    "https://api.duckduckgo.com",
		httpClient: httpClient,
	}
}

// Name identifies the provider in digests and logs.
func (c *DuckDuckGoClient) Name() string { return sourceDuckDuckGo }

// Search collapses the instant answer into a single result titled after the
// query itself.
func (c *DuckDuckGoClient) Search(ctx context.Context, query string) (travel.SearchResult, error) {
	if c == nil {
		return travel.SearchResult{}, errors.New("duckduckgo fallback disabled")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("no_html", "1")
	params.Set("skip_disambig", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+params.Encode(), nil)
	if err != nil {
		return travel.SearchResult{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return travel.SearchResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return travel.SearchResult{}, fmt.Errorf("duckduckgo: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var decoded struct {
		AbstractText  string `json:"AbstractText"`
		AbstractURL   string `json:"AbstractURL"`
		RelatedTopics []struct {
			Text     string `json:"Text"`
			FirstURL string `json:"FirstURL"`
		} `json:"RelatedTopics"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return travel.SearchResult{}, err
	}

	content := strings.TrimSpace(decoded.AbstractText)
	link := decoded.AbstractURL
	if content == "" {
		var parts []string
		for _, topic := range decoded.RelatedTopics {
			if topic.Text == "" {
				continue
			}
			parts = append(parts, topic.Text)
			if link == "" {
				link = topic.FirstURL
			}
			if len(parts) == 3 {
				break
			}
		}
		content = strings.Join(parts, " | ")
	}
	if content == "" {
		return travel.SearchResult{}, fmt.Errorf("no instant answer for %q", query)
	}

	return travel.SearchResult{
		Title:   query,
		Content: content,
		URL:     link,
		Source:  sourceDuckDuckGo,
	}, nil
}
