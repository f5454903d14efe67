package enhance

import (
	"errors"
	"net/http"

	"resumecraft/internal/config"
	appErrors "resumecraft/internal/errors"

	"github.com/sony/gobreaker/v2"
	"google.golang.org/api/googleapi"
)

// Breaker wraps enhancement calls with circuit breaker protection. A nil
// Breaker is a passthrough, used when the breaker is disabled in config.
type Breaker struct {
	cb *gobreaker.CircuitBreaker[Response]
}

// NewBreaker creates a circuit breaker from the enhancement configuration.
// Returns nil when the breaker is disabled.
func NewBreaker(cfg *config.CircuitBreakerConfig, logger *appErrors.Logger) *Breaker {
	if !cfg.Enabled {
		return nil
	}

	settings := gobreaker.Settings{
		Name:        "enhance",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.MinRequests &&
				failureRatio >= cfg.FailureThreshold
		},
		// Caller mistakes must not open the breaker: a 4xx from the backend
		// counts as a completed call, only transport and 5xx failures trip.
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var apiErr *googleapi.Error
			if errors.As(err, &apiErr) {
				return apiErr.Code >= http.StatusBadRequest && apiErr.Code < http.StatusInternalServerError
			}
			var appErr *appErrors.AppError
			if errors.As(err, &appErr) && appErr.Type == appErrors.ErrorTypeValidation {
				return true
			}
			return false
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
				"max_requests", cfg.MaxRequests,
				"failure_threshold", cfg.FailureThreshold)
		},
	}

	return &Breaker{cb: gobreaker.NewCircuitBreaker[Response](settings)}
}

// Execute runs fn through the breaker, or directly when disabled.
func (b *Breaker) Execute(fn func() (Response, error)) (Response, error) {
	if b == nil || b.cb == nil {
		return fn()
	}
	return b.cb.Execute(fn)
}

// Stats returns circuit breaker statistics for the stats endpoint.
func (b *Breaker) Stats() map[string]any {
	if b == nil || b.cb == nil {
		return map[string]any{
			"enabled": false,
		}
	}

	return map[string]any{
		"name":    b.cb.Name(),
		"state":   b.cb.State().String(),
		"counts":  b.cb.Counts(),
		"enabled": true,
	}
}

// IsHealthy returns true if the circuit breaker is in closed state.
func (b *Breaker) IsHealthy() bool {
	if b == nil || b.cb == nil {
		return true
	}
	return b.cb.State() == gobreaker.StateClosed
}
