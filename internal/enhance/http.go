package enhance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"resumecraft/internal/config"
	appErrors "resumecraft/internal/errors"
)

// HTTPProvider forwards enhancement requests to a remote endpoint, typically
// a resumecraft server in serve mode. Calls are not retried; the caller's
// session handles the failure.
type HTTPProvider struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// Ensure HTTPProvider implements Provider
var _ Provider = (*HTTPProvider)(nil)

// NewHTTPProvider creates a provider that POSTs requests to cfg.Endpoint.
func NewHTTPProvider(cfg *config.EnhanceConfig) (*HTTPProvider, error) {
	if cfg.Endpoint == "" {
		return nil, appErrors.NewConfigError(appErrors.ErrCodeInvalidConfig,
			"HTTP provider requires an endpoint", nil)
	}

	return &HTTPProvider{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		client: &http.Client{
			Timeout: *cfg.Timeout,
		},
	}, nil
}

func (p *HTTPProvider) Name() string { return "http" }

// Enhance POSTs the request as JSON. Any transport error or non-2xx status
// is a network error; the response body is read for its message but never
// interpreted beyond that.
func (p *HTTPProvider) Enhance(ctx context.Context, req Request) (Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Response{}, appErrors.NewInternalError(appErrors.ErrCodeInvalidRequest,
			"Failed to encode enhancement request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return Response{}, appErrors.NewNetworkError(appErrors.ErrCodeEnhanceFailed,
			"Failed to build enhancement request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		httpReq.Header.Set("X-API-Key", p.apiKey)
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return Response{}, appErrors.NewNetworkError(appErrors.ErrCodeNetworkTimeout,
			"Enhancement request failed", err).
			WithContext("endpoint", p.endpoint)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Response{}, appErrors.NewNetworkError(appErrors.ErrCodeEnhanceFailed,
			fmt.Sprintf("Enhancement endpoint returned status %d", resp.StatusCode), nil).
			WithContext("endpoint", p.endpoint).
			WithContext("body", string(message))
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Response{}, appErrors.NewNetworkError(appErrors.ErrCodeEnhanceFailed,
			"Failed to decode enhancement response", err)
	}
	return out, nil
}
