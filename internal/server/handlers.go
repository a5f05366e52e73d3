package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/agbru/polymul/internal/config"
	apperrors "github.com/agbru/polymul/internal/errors"
	"github.com/agbru/polymul/internal/poly"
)

// handleHealth responds to health check requests.
// It returns a 200 OK status with a JSON payload indicating the service is
// healthy.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	response := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	}

	s.writeJSONResponse(w, http.StatusOK, response)
}

// handleAlgorithms returns the list of available multiplication algorithms.
// It queries the internal registry and returns the keys as a JSON array.
func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	algorithms := s.factory.List()

	response := map[string]any{
		"algorithms": algorithms,
	}

	s.writeJSONResponse(w, http.StatusOK, response)
}

// handleMultiply processes requests to multiply polynomials.
// It parses the query parameters 'a' and 'b' (comma-separated coefficient
// lists, lowest degree first) and 'algo' (the algorithm), executes the
// multiplication, and returns the result in JSON format.
func (s *Server) handleMultiply(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	// Parse and validate parameters using helper
	a, b, algo, err := parseMultiplyParams(r)
	if err != nil {
		if parseErr, ok := err.(MultiplyParseError); ok {
			s.writeErrorResponse(w, parseErr.StatusCode, parseErr.Message)
		} else {
			s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	// Enforce the operand size limit before any allocation-heavy work
	if len(a) > s.securityConfig.MaxCoefficients || len(b) > s.securityConfig.MaxCoefficients {
		s.writeErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("Operand exceeds maximum allowed coefficient count (%d). This limit prevents resource exhaustion.", s.securityConfig.MaxCoefficients))
		return
	}

	multiplier, ok := s.factory.Get(algo)
	if !ok {
		s.writeErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("Unknown algorithm %q. See /algorithms for the available ones.", algo))
		return
	}

	// Create a context with timeout for the multiplication
	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()

	// Perform the multiplication
	start := time.Now()
	product, err := multiplier.Multiply(ctx, nil, 0, poly.FromReals(a), poly.FromReals(b), s.cfg.ToMultiplyOptions())
	duration := time.Since(start)
	if errors.Is(err, context.DeadlineExceeded) {
		// Report the configured limit to the client instead of the bare
		// context error.
		err = apperrors.TimeoutError{Operation: "multiply", Limit: s.timeouts.RequestTimeout}
	}

	// Build and send response using helper
	resp := buildMultiplyResponse(algo, product, duration, err)
	s.writeJSONResponse(w, http.StatusOK, resp)
}

// parseMultiplyParams extracts and validates the multiplication parameters
// from the request.
//
// Returns:
//   - a, b: The parsed operand coefficients, lowest degree first.
//   - algo: The algorithm name (defaults to "fft" if not specified).
//   - err: A MultiplyParseError if validation fails, nil otherwise.
func parseMultiplyParams(r *http.Request) (a, b []float64, algo string, err error) {
	aStr := r.URL.Query().Get("a")
	if aStr == "" {
		return nil, nil, "", MultiplyParseError{
			Message:    "Missing 'a' parameter",
			StatusCode: http.StatusBadRequest,
		}
	}
	bStr := r.URL.Query().Get("b")
	if bStr == "" {
		return nil, nil, "", MultiplyParseError{
			Message:    "Missing 'b' parameter",
			StatusCode: http.StatusBadRequest,
		}
	}

	a, parseErr := config.ParseCoefficients(aStr)
	if parseErr != nil {
		return nil, nil, "", MultiplyParseError{
			Message:    fmt.Sprintf("Invalid 'a' parameter: %v", parseErr),
			StatusCode: http.StatusBadRequest,
		}
	}
	b, parseErr = config.ParseCoefficients(bStr)
	if parseErr != nil {
		return nil, nil, "", MultiplyParseError{
			Message:    fmt.Sprintf("Invalid 'b' parameter: %v", parseErr),
			StatusCode: http.StatusBadRequest,
		}
	}

	algo = r.URL.Query().Get("algo")
	if algo == "" {
		algo = poly.AlgoFFT // Default algorithm
	}

	return a, b, algo, nil
}

// buildMultiplyResponse constructs the response struct for a multiplication.
func buildMultiplyResponse(algo string, product *poly.Polynomial, duration time.Duration, err error) Response {
	resp := Response{
		Algorithm: algo,
		Duration:  duration.String(),
	}

	if err != nil {
		resp.Error = err.Error()
	} else {
		resp.Degree = product.Degree()
		resp.Coefficients = product.Reals()
		resp.Polynomial = product.String()
	}

	return resp
}

// writeJSONResponse helper function to write a JSON response with the correct
// content type.
func (s *Server) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Printf("Error encoding JSON response: %v", err)
	}
}

// writeErrorResponse helper function to write a standardized error response.
func (s *Server) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	errResp := ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	s.writeJSONResponse(w, statusCode, errResp)
}
