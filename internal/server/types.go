package server

// Response represents the standardized JSON response for a multiplication
// request.
type Response struct {
	// Algorithm is the name of the algorithm used for the multiplication.
	Algorithm string `json:"algorithm"`
	// Degree is the degree of the product. It is omitted if an error occurred.
	Degree int `json:"degree,omitempty"`
	// Coefficients are the real coefficients of the product, lowest degree
	// first. Omitted if an error occurred.
	Coefficients []float64 `json:"coefficients,omitempty"`
	// Polynomial is the human-readable rendering of the product.
	Polynomial string `json:"polynomial,omitempty"`
	// Duration is the formatted execution time string.
	Duration string `json:"duration"`
	// Error contains the error message if the multiplication failed.
	Error string `json:"error,omitempty"`
}

// ErrorResponse represents the standardized JSON response for an API error.
type ErrorResponse struct {
	// Error is the short error code or status text.
	Error string `json:"error"`
	// Message is a descriptive error message.
	Message string `json:"message,omitempty"`
}

// MultiplyParseError represents a parameter parsing error with HTTP status.
type MultiplyParseError struct {
	Message    string
	StatusCode int
}

// Error implements the error interface.
func (e MultiplyParseError) Error() string {
	return e.Message
}
