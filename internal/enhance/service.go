package enhance

import (
	"context"
	"fmt"
	"strings"

	"resumecraft/internal/config"
	"resumecraft/internal/errors"
)

// Service dispatches enhancement requests to the configured provider through
// the circuit breaker. Requests are not retried; a failed call surfaces
// immediately and the session reports it.
type Service struct {
	Provider Provider // Exported for access from server package
	breaker  *Breaker
	config   *config.EnhanceConfig
	logger   *errors.Logger
}

// NewService creates an enhancement service for the configured provider.
func NewService(cfg *config.EnhanceConfig, logger *errors.Logger) (*Service, error) {
	var provider Provider
	var err error

	logger.Debug("Initializing enhancement service",
		"provider", cfg.Provider,
		"model", cfg.Model,
		"timeout", *cfg.Timeout)

	switch cfg.Provider {
	case "mock":
		provider = NewMockProvider()
	case "http":
		provider, err = NewHTTPProvider(cfg)
	case "gemini":
		provider, err = NewGeminiProvider(cfg, logger)
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported enhancement provider: %s", cfg.Provider), nil)
	}

	if err != nil {
		return nil, errors.NewEnhanceError(errors.ErrCodeEnhanceFailed,
			"Failed to create enhancement provider", err)
	}

	return &Service{
		Provider: provider,
		breaker:  NewBreaker(&cfg.CircuitBreaker, logger),
		config:   cfg,
		logger:   logger,
	}, nil
}

// Enhance validates the request and runs it through the provider. Content
// that is empty after trimming never reaches the provider.
func (s *Service) Enhance(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.Content) == "" {
		return Response{}, errors.NewValidationError(errors.ErrCodeEmptyContent,
			"Content cannot be empty", nil).
			WithContext("section", req.Section)
	}

	resp, err := s.breaker.Execute(func() (Response, error) {
		return s.Provider.Enhance(ctx, req)
	})
	if err != nil {
		s.logger.LogError(err, "Enhancement request failed",
			"provider", s.Provider.Name(),
			"section", req.Section)
		return Response{}, err
	}
	return resp, nil
}

// Stats reports breaker state for the stats endpoint.
func (s *Service) Stats() map[string]any {
	stats := s.breaker.Stats()
	stats["provider"] = s.Provider.Name()
	return stats
}

// IsHealthy reports whether the service is accepting requests.
func (s *Service) IsHealthy() bool {
	return s.breaker.IsHealthy()
}
