// Package client is the Go counterpart of the prompt-library front end's data
// layer: it talks to the community API and keeps the per-user local state
// (vote marks, saved prompts) that a browser would hold in localStorage.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

type Client struct {
	baseURL string
	http    *http.Client
	ledger  *Ledger

	mu     sync.Mutex
	marks  map[string]Mark
	saved  []string
	votes  map[string]int
	counts map[string]int
}

// New builds a client for the API at baseURL. dataDir holds the local
// ledgers; pass the same directory across sessions to keep vote marks and
// saved prompts, the way a browser keeps localStorage.
func New(baseURL, dataDir string) (*Client, error) {
	ledger := NewLedger(dataDir)

	marks, err := ledger.LoadMarks()
	if err != nil {
		return nil, err
	}
	saved, err := ledger.LoadSaved()
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		ledger:  ledger,
		marks:   marks,
		saved:   saved,
		votes:   map[string]int{},
		counts:  map[string]int{},
	}, nil
}

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", req.Method, req.URL.Path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: unexpected status %d", req.Method, req.URL.Path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
