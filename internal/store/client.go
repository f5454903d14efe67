package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"resumecraft/internal/errors"
	"resumecraft/internal/resume"
)

// Client ships documents to a remote save endpoint. A failed save is
// reported once; there is no retry and the caller's document is untouched.
type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewClient creates a save client for the given endpoint.
func NewClient(endpoint, apiKey string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Save POSTs the document. An empty id asks the server to mint one; the
// response carries the effective identifier either way.
func (c *Client) Save(ctx context.Context, doc resume.Document, id string) (SaveResponse, error) {
	body, err := json.Marshal(SaveRequest{ResumeData: doc, ResumeID: id})
	if err != nil {
		return SaveResponse{}, errors.NewInternalError(errors.ErrCodeSaveFailed,
			"Failed to encode save request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return SaveResponse{}, errors.NewNetworkError(errors.ErrCodeSaveFailed,
			"Failed to build save request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return SaveResponse{}, errors.NewNetworkError(errors.ErrCodeSaveFailed,
			"Save request failed", err).
			WithContext("endpoint", c.endpoint)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return SaveResponse{}, errors.NewNetworkError(errors.ErrCodeSaveFailed,
			fmt.Sprintf("Save endpoint returned status %d", resp.StatusCode), nil).
			WithContext("endpoint", c.endpoint).
			WithContext("body", string(message))
	}

	var out SaveResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return SaveResponse{}, errors.NewNetworkError(errors.ErrCodeSaveFailed,
			"Failed to decode save response", err)
	}
	return out, nil
}
