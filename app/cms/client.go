// Package cms is the REST client for the target content collections:
// paginated listing, single item fetch and live create/update calls.
package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	userAgent  string
}

func NewClient(httpClient *http.Client, baseURL, token, userAgent string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      token,
		userAgent:  userAgent,
	}
}

// ListItems fetches one page of a collection.
func (c *Client) ListItems(ctx context.Context, collectionID string, limit, offset int) ([]Item, error) {
	url := fmt.Sprintf("%s/collections/%s/items?limit=%d&offset=%d", c.baseURL, collectionID, limit, offset)

	resp, status, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("list items: HTTP %d", status)
	}

	var list itemListResponse
	if err := json.Unmarshal(resp, &list); err != nil {
		return nil, fmt.Errorf("failed to decode item list: %w", err)
	}

	return list.Items, nil
}

// GetItem fetches a single item by id.
func (c *Client) GetItem(ctx context.Context, collectionID, itemID string) (*Item, error) {
	url := fmt.Sprintf("%s/collections/%s/items/%s", c.baseURL, collectionID, itemID)

	resp, status, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("get item %s: HTTP %d", itemID, status)
	}

	var item Item
	if err := json.Unmarshal(resp, &item); err != nil {
		return nil, fmt.Errorf("failed to decode item: %w", err)
	}

	return &item, nil
}

// CreateItemLive creates a new item published as live. The HTTP status
// code is returned alongside the error for per-item reporting.
func (c *Client) CreateItemLive(ctx context.Context, collectionID string, payload ItemPayload) (int, error) {
	url := fmt.Sprintf("%s/collections/%s/items/live", c.baseURL, collectionID)

	_, status, err := c.do(ctx, http.MethodPost, url, payload)
	if err != nil {
		return 0, err
	}
	if status != http.StatusOK && status != http.StatusAccepted {
		return status, fmt.Errorf("create item: HTTP %d", status)
	}

	return status, nil
}

// UpdateItemLive patches an existing item's live endpoint.
func (c *Client) UpdateItemLive(ctx context.Context, collectionID, itemID string, payload ItemPayload) (int, error) {
	url := fmt.Sprintf("%s/collections/%s/items/%s/live", c.baseURL, collectionID, itemID)

	_, status, err := c.do(ctx, http.MethodPatch, url, payload)
	if err != nil {
		return 0, err
	}
	if status != http.StatusOK {
		return status, fmt.Errorf("update item %s: HTTP %d", itemID, status)
	}

	return status, nil
}

func (c *Client) do(ctx context.Context, method, url string, payload any) ([]byte, int, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", c.userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, resp.StatusCode, nil
}
