package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	apperrors "github.com/agbru/omnicalc/internal/errors"
)

// handleHealth responds to health check requests.
// It returns a 200 OK status with a JSON payload indicating the service is healthy.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
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

// operationInfo is the JSON description of one registered operation.
type operationInfo struct {
	Name        string `json:"name"`
	Arity       int    `json:"arity"`
	Description string `json:"description"`
}

// handleOperations returns the list of available calculator operations.
// It queries the operation registry and returns each operation's name,
// arity, and description as a JSON array.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleOperations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	ops := s.registry.All()
	infos := make([]operationInfo, 0, len(ops))
	for _, name := range s.registry.List() {
		op := ops[name]
		infos = append(infos, operationInfo{
			Name:        op.Name,
			Arity:       op.Arity,
			Description: op.Description,
		})
	}

	response := map[string]any{
		"operations": infos,
	}

	s.writeJSONResponse(w, http.StatusOK, response)
}

// handleEval processes evaluation requests.
// It parses the query parameters 'op' (the operation name) and 'a'/'b' (the
// operands), executes the evaluation, and returns the result in JSON format.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	op, operands, err := s.parseEvalParams(r)
	if err != nil {
		if parseErr, ok := err.(EvalParseError); ok {
			s.writeErrorResponse(w, parseErr.StatusCode, parseErr.Message)
		} else {
			s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	// Create a context with timeout for the evaluation
	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()

	start := time.Now()
	results, err := s.evaluator.Evaluate(ctx, op, operands...)
	duration := time.Since(start)

	if err != nil {
		s.writeEvalError(w, op, operands, duration, err)
		return
	}

	resp := EvalResponse{
		Op:       op,
		Operands: operands,
		Results:  make([]string, len(results)),
		Digits:   make([]int, len(results)),
		Duration: duration.String(),
	}
	for i, v := range results {
		resp.Results[i] = v.String()
		resp.Digits[i] = v.DigitCount()
	}

	s.writeJSONResponse(w, http.StatusOK, resp)
}

// parseEvalParams extracts and validates the evaluation parameters from the
// request. The operand count is checked against the operation's arity, and
// each operand against the configured length limit.
//
// Parameters:
//   - r: The HTTP request containing query parameters.
//
// Returns:
//   - op: The operation name.
//   - operands: The textual operands, in order.
//   - err: An EvalParseError if validation fails, nil otherwise.
func (s *Server) parseEvalParams(r *http.Request) (op string, operands []string, err error) {
	query := r.URL.Query()

	op = query.Get("op")
	if op == "" {
		return "", nil, EvalParseError{
			Message:    "Missing 'op' parameter",
			StatusCode: http.StatusBadRequest,
		}
	}

	registered, lookupErr := s.registry.Get(op)
	if lookupErr != nil {
		return "", nil, EvalParseError{
			Message:    lookupErr.Error(),
			StatusCode: http.StatusBadRequest,
		}
	}

	for _, key := range []string{"a", "b"}[:registered.Arity] {
		value := query.Get(key)
		if value == "" {
			return "", nil, EvalParseError{
				Message:    "Missing '" + key + "' parameter",
				StatusCode: http.StatusBadRequest,
			}
		}
		if len(value) > s.securityConfig.MaxOperandDigits {
			return "", nil, EvalParseError{
				Message:    "Operand '" + key + "' exceeds the maximum allowed length. This limit prevents resource exhaustion.",
				StatusCode: http.StatusBadRequest,
			}
		}
		operands = append(operands, value)
	}

	return op, operands, nil
}

// writeEvalError maps an evaluation error to an HTTP response.
// Input-class errors (bad operands, domain violations) yield 400, cancelled
// or timed-out evaluations yield 503, anything else 500.
func (s *Server) writeEvalError(w http.ResponseWriter, op string, operands []string, duration time.Duration, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsContextError(err):
		status = http.StatusServiceUnavailable
	case apperrors.ExitCodeFor(err) == apperrors.ExitErrorInput,
		apperrors.ExitCodeFor(err) == apperrors.ExitErrorConfig:
		status = http.StatusBadRequest
	}

	resp := EvalResponse{
		Op:       op,
		Operands: operands,
		Duration: duration.String(),
		Error:    err.Error(),
	}
	s.writeJSONResponse(w, status, resp)
}

// writeJSONResponse helper function to write a JSON response with the correct content type.
//
// Parameters:
//   - w: The HTTP response writer.
//   - statusCode: The HTTP status code to write.
//   - data: The data to be encoded as JSON.
func (s *Server) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Printf("Error encoding JSON response: %v", err)
	}
}

// writeErrorResponse helper function to write a standardized error response.
//
// Parameters:
//   - w: The HTTP response writer.
//   - statusCode: The HTTP status code to write.
//   - message: The error message to be included in the response body.
func (s *Server) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	errResp := ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	s.writeJSONResponse(w, statusCode, errResp)
}
