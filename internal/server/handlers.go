package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"resumecraft/internal/enhance"
	"resumecraft/internal/errors"
	"resumecraft/internal/observability"
	"resumecraft/internal/store"

	"go.opentelemetry.io/otel/attribute"
)

// createEnhanceHandler wraps the enhance handler with observability
func (s *Server) createEnhanceHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumecraft.api")
		ctx, span := tracer.Start(ctx, "api.enhance")
		defer span.End()

		var req enhance.Request
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Content) == "" {
			err := fmt.Errorf("missing content")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing content", "content field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("request.section", req.Section),
			attribute.Int("request.content_length", len(req.Content)),
			attribute.String("operation", "enhance"),
		)

		metrics := om.GetMetrics()
		var result enhance.Response
		err := metrics.TrackEnhanceOperation(ctx, req.Section, func(ctx context.Context) error {
			var enhanceErr error
			result, enhanceErr = s.Enhancer.Enhance(ctx, req)
			return enhanceErr
		})

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "enhance_processing"))
			metrics.RecordBusinessMetric(ctx, "enhancement_proposed", false,
				attribute.String("section", req.Section),
				attribute.String("error", err.Error()))

			var appErr *errors.AppError
			if stderrors.As(err, &appErr) && appErr.Type == errors.ErrorTypeValidation {
				writeErrorResponse(w, "Invalid enhancement request", appErr.Message, http.StatusBadRequest)
				return
			}
			writeErrorResponse(w, "Failed to enhance content", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "enhancement_proposed", true,
			attribute.String("section", req.Section),
			attribute.Int("output.enhanced_length", len(result.EnhancedContent)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.enhanced_length", len(result.EnhancedContent)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createSaveHandler wraps the save handler with observability
func (s *Server) createSaveHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumecraft.api")
		ctx, span := tracer.Start(ctx, "api.save")
		defer span.End()

		var req store.SaveRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Bool("request.id_provided", req.ResumeID != ""),
			attribute.String("operation", "save"),
		)

		stored, err := s.Store.Save(req.ResumeData, req.ResumeID)
		metrics := om.GetMetrics()
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "storage"))
			metrics.RecordBusinessMetric(ctx, "resume_saved", false,
				attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to save resume", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "resume_saved", true,
			attribute.String("resume_id", stored.ID))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("resume.id", stored.ID),
		)

		w.Header().Set("Content-Type", "application/json")
		response := store.SaveResponse{
			Message:  "Resume saved successfully",
			ResumeID: stored.ID,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createGetHandler returns one stored resume envelope by id
func (s *Server) createGetHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tracer := om.Tracer("resumecraft.api")
		_, span := tracer.Start(r.Context(), "api.get")
		defer span.End()

		id := r.PathValue("id")
		span.SetAttributes(
			attribute.String("resume.id", id),
			attribute.String("operation", "get"),
		)

		stored, err := s.Store.Get(id)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "not_found"))
			writeErrorResponse(w, "Resume not found", fmt.Sprintf("no resume with id %s", id), http.StatusNotFound)
			return
		}

		span.SetAttributes(attribute.Bool("success", true))

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stored); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createListHandler returns summaries of all stored resumes
func (s *Server) createListHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tracer := om.Tracer("resumecraft.api")
		_, span := tracer.Start(r.Context(), "api.list")
		defer span.End()

		summaries := s.Store.List()

		span.SetAttributes(
			attribute.String("operation", "list"),
			attribute.Int("resume.count", len(summaries)),
		)

		response := map[string]any{
			"resumes": summaries,
			"count":   len(summaries),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// healthHandler provides a health check endpoint including provider status
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":  "healthy",
		"service": "resumecraft",
		"version": s.Version,
	}

	providerHealthy := s.Enhancer.IsHealthy()
	response["enhancement"] = map[string]any{
		"provider":  s.Enhancer.Provider.Name(),
		"available": providerHealthy,
	}
	response["circuit_breaker"] = s.Enhancer.Stats()
	response["store"] = map[string]any{
		"dir":   s.Store.Dir(),
		"count": len(s.Store.List()),
	}

	if !providerHealthy {
		response["status"] = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode health response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// statsHandler provides server statistics including rate limiting info
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"service": "resumecraft",
		"version": s.Version,
		"server": map[string]any{
			"max_request_size_bytes": s.MaxRequestSize,
		},
		"enhancement": s.Enhancer.Stats(),
	}

	if s.RateLimiter != nil {
		response["rate_limiting"] = s.RateLimiter.GetStats()
	} else {
		response["rate_limiting"] = map[string]any{
			"enabled": false,
		}
	}

	if s.RateLimit != nil {
		response["rate_limit_config"] = map[string]any{
			"enabled":          s.RateLimit.Enabled,
			"requests_per_min": s.RateLimit.RequestsPerMin,
			"burst_capacity":   s.RateLimit.BurstCapacity,
			"by_ip":            s.RateLimit.ByIP,
			"by_api_key":       s.RateLimit.ByAPIKey,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode stats response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// parseJSONRequest parses JSON request body into the provided struct
func parseJSONRequest(r *http.Request, v any) error {
	if r.Header.Get("Content-Type") != "application/json" {
		return fmt.Errorf("content-type must be application/json")
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if stderrors.As(err, &maxBytesErr) {
			return fmt.Errorf("request body too large (limit is %d bytes)", maxBytesErr.Limit)
		}
		return fmt.Errorf("failed to read request body: %w", err)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.Printf("Failed to close request body: %v", err)
		}
	}()

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return nil
}

// writeErrorResponse writes a standardized error response
func writeErrorResponse(w http.ResponseWriter, error, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error:   error,
		Message: message,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode error response: %v", err)
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
