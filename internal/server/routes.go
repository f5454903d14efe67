package server

import (
	"net/http"

	"resumecraft/internal/observability"
)

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes(om *observability.ObservabilityManager) *http.ServeMux {
	mux := http.NewServeMux()

	rateLimitHandler := s.createRateLimitMiddleware(om)
	requestLimitHandler := s.requestSizeLimitMiddleware()

	mux.HandleFunc("GET /health", s.healthHandler)
	mux.HandleFunc("GET /stats", s.statsHandler)
	mux.HandleFunc("POST /enhance",
		rateLimitHandler(
			s.authMiddleware(requestLimitHandler(s.createEnhanceHandler(om))),
		),
	)
	mux.HandleFunc("POST /resumes",
		rateLimitHandler(
			s.authMiddleware(requestLimitHandler(s.createSaveHandler(om))),
		),
	)
	mux.HandleFunc("GET /resumes",
		rateLimitHandler(
			s.authMiddleware(s.createListHandler(om)),
		),
	)
	mux.HandleFunc("GET /resumes/{id}",
		rateLimitHandler(
			s.authMiddleware(s.createGetHandler(om)),
		),
	)

	return mux
}
