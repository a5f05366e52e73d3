package server

import (
	"net/http"
	"time"
)

// loggingMiddleware wraps an http.HandlerFunc to log the details of each
// request. It records the HTTP method, URL path, remote address, and the
// duration required to process the request.
func (s *Server) loggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		s.logger.Printf("%s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)

		next(w, r)

		duration := time.Since(start)
		s.logger.Printf("%s %s completed in %v", r.Method, r.URL.Path, duration)
	}
}
