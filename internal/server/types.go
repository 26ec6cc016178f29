package server

// EvalResponse represents the standardized JSON response for an evaluation
// request.
type EvalResponse struct {
	// Op is the operation that was evaluated.
	Op string `json:"op"`
	// Operands are the textual operands as supplied by the client.
	Operands []string `json:"operands"`
	// Results are the decimal renderings of the evaluation results. divmod
	// returns two entries (quotient, remainder); most operations return one.
	// Omitted if an error occurred.
	Results []string `json:"results,omitempty"`
	// Digits holds the decimal digit count of each result.
	Digits []int `json:"digits,omitempty"`
	// Duration is the formatted execution time string.
	Duration string `json:"duration"`
	// Error contains the error message if the evaluation failed.
	Error string `json:"error,omitempty"`
}

// ErrorResponse represents the standardized JSON response for an API error.
type ErrorResponse struct {
	// Error is the short error code or status text.
	Error string `json:"error"`
	// Message is a descriptive error message.
	Message string `json:"message,omitempty"`
}

// EvalParseError represents a query parameter error with its HTTP status.
type EvalParseError struct {
	Message    string
	StatusCode int
}

// Error implements the error interface.
func (e EvalParseError) Error() string {
	return e.Message
}
