// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/kauman3/workshop-abm-researcher/internal/httputil"
	"github.com/kauman3/workshop-abm-researcher/pkg/types"
)

// tavilyAPIBase is the Tavily search endpoint. Declared as a var so tests
// can substitute an httptest server.
var tavilyAPIBase = "https://api.tavily.com/search"

// Hit is one raw search result before category tagging and index assignment.
type Hit struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// SearchClient searches the external web search provider. The pipeline
// depends on this interface so tests can supply fakes.
type SearchClient interface {
	Search(ctx context.Context, query, depth string, maxResults int) ([]Hit, error)
}

// TavilyClient queries the Tavily search API.
type TavilyClient struct {
	APIKey string
	Config types.HTTPConfig
	Client *http.Client
}

// tavilyRequest is the request body for the Tavily search API.
type tavilyRequest struct {
	APIKey      string `json:"api_key"`
	Query       string `json:"query"`
	SearchDepth string `json:"search_depth"`
	MaxResults  int    `json:"max_results"`
}

// tavilyResponse is the response body from the Tavily search API.
type tavilyResponse struct {
	Results []tavilyResult `json:"results"`
}

type tavilyResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// Search issues one query against the Tavily API and returns its hits in
// provider order.
func (c *TavilyClient) Search(ctx context.Context, query, depth string, maxResults int) ([]Hit, error) {
	if depth == "" {
		depth = "advanced"
	}

	body, err := json.Marshal(tavilyRequest{
		APIKey:      c.APIKey,
		Query:       query,
		SearchDepth: depth,
		MaxResults:  maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tavilyAPIBase, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Config.UserAgent != "" {
		req.Header.Set("User-Agent", c.Config.UserAgent)
	}

	client := c.Client
	if client == nil {
		client = &http.Client{Timeout: c.Config.Timeout}
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("Tavily API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("Tavily API returned HTTP %d: %s", resp.StatusCode, string(msg))
	}

	var tr tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("parsing Tavily response: %w", err)
	}

	hits := make([]Hit, 0, len(tr.Results))
	for _, r := range tr.Results {
		hits = append(hits, Hit{Title: r.Title, URL: r.URL, Content: r.Content})
	}
	return hits, nil
}
