package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/agbru/omnicalc/internal/calc"
	"github.com/agbru/omnicalc/internal/config"
	"github.com/agbru/omnicalc/internal/logging"
)

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	registry := calc.NewRegistry()
	evaluator := calc.NewEvaluator(registry, logging.NopLogger{})
	cfg := config.AppConfig{Port: "0", Timeout: 5 * time.Second}

	opts = append([]Option{WithLogger(logging.NopLogger{})}, opts...)
	s := NewServer(registry, evaluator, cfg, opts...)
	t.Cleanup(s.rateLimiter.Stop)
	return s
}

func doRequest(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeEval(t *testing.T, rec *httptest.ResponseRecorder) EvalResponse {
	t.Helper()
	var resp EvalResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v\n%s", err, rec.Body.String())
	}
	return resp
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, "/health")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status field = %v, want healthy", body["status"])
	}
}

func TestHandleOperations(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, "/operations")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Operations []operationInfo `json:"operations"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	names := make(map[string]operationInfo, len(body.Operations))
	for _, op := range body.Operations {
		names[op.Name] = op
	}
	for _, want := range []string{"add", "sub", "mul", "quo", "rem", "divmod", "sqrt", "gcd"} {
		if _, ok := names[want]; !ok {
			t.Errorf("operations list missing %q", want)
		}
	}
	if got := names["sqrt"].Arity; got != 1 {
		t.Errorf("sqrt arity = %d, want 1", got)
	}
}

func TestHandleEval(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantResults []string
	}{
		{"add", "op=add&a=12345678901234567890&b=54321", []string{"12345678901234622211"}},
		{"sub negative result", "op=sub&a=5&b=8", []string{"-3"}},
		{"mul", "op=mul&a=123456789&b=987654321", []string{"121932631112635269"}},
		{"quo truncates toward zero", "op=quo&a=-10&b=3", []string{"-3"}},
		{"rem sign follows dividend", "op=rem&a=-10&b=3", []string{"-1"}},
		{"divmod two results", "op=divmod&a=10&b=3", []string{"3", "1"}},
		{"sqrt", "op=sqrt&a=98765432109876543210", []string{"9938079900"}},
		{"gcd", "op=gcd&a=48&b=18", []string{"6"}},
	}

	s := newTestServer(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, s, "/eval?"+tc.query)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200\n%s", rec.Code, rec.Body.String())
			}
			resp := decodeEval(t, rec)
			if len(resp.Results) != len(tc.wantResults) {
				t.Fatalf("Results = %v, want %v", resp.Results, tc.wantResults)
			}
			for i, want := range tc.wantResults {
				if resp.Results[i] != want {
					t.Errorf("Results[%d] = %q, want %q", i, resp.Results[i], want)
				}
			}
		})
	}
}

func TestHandleEval_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantMsg string
	}{
		{"missing op", "a=1&b=2", "Missing 'op' parameter"},
		{"unknown op", "op=pow&a=2&b=10", "unknown operation"},
		{"missing operand", "op=add&a=1", "Missing 'b' parameter"},
	}

	s := newTestServer(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, s, "/eval?"+tc.query)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400\n%s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleEval_EvaluationErrors(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantError string
	}{
		{"division by zero", "op=quo&a=1&b=0", "division by zero"},
		{"negative sqrt", "op=sqrt&a=-4", "square root of negative number -4"},
		{"bad operand", "op=add&a=12x&b=1", "invalid decimal integer"},
	}

	s := newTestServer(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, s, "/eval?"+tc.query)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400\n%s", rec.Code, rec.Body.String())
			}
			resp := decodeEval(t, rec)
			if resp.Error == "" {
				t.Fatal("Error field empty, want message")
			}
		})
	}
}

func TestHandleEval_OperandLengthLimit(t *testing.T) {
	s := newTestServer(t, WithMaxOperandDigits(10))
	rec := doRequest(t, s, "/eval?op=add&a=12345678901&b=1")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400\n%s", rec.Code, rec.Body.String())
	}
}

func TestHandleEval_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/eval?op=add&a=1&b=2", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, "/health")

	headers := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
	}
	for key, want := range headers {
		if got := rec.Header().Get(key); got != want {
			t.Errorf("header %s = %q, want %q", key, got, want)
		}
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS origin = %q, want *", got)
	}
}

func TestRateLimiting(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{RequestsPerMinute: 2})
	s := newTestServer(t, WithRateLimiter(rl))

	for i := 0; i < 2; i++ {
		rec := doRequest(t, s, "/health")
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, rec.Code)
		}
	}
	rec := doRequest(t, s, "/health")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "60" {
		t.Errorf("Retry-After = %q, want 60", got)
	}
}

func TestRateLimiter_WindowReset(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{RequestsPerMinute: 1})
	defer rl.Stop()

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first request should be allowed")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("second request in window should be denied")
	}
	// A different client has its own window
	if !rl.Allow("10.0.0.2") {
		t.Fatal("different client should be allowed")
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"remote addr with port", "192.168.1.1:1234", nil, "192.168.1.1"},
		{"ipv6 with port", "[::1]:8080", nil, "::1"},
		{"x-forwarded-for single", "10.0.0.1:80", map[string]string{"X-Forwarded-For": "203.0.113.5"}, "203.0.113.5"},
		{"x-forwarded-for list", "10.0.0.1:80", map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.2"}, "203.0.113.5"},
		{"x-real-ip", "10.0.0.1:80", map[string]string{"X-Real-IP": "203.0.113.9"}, "203.0.113.9"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for key, value := range tc.headers {
				req.Header.Set(key, value)
			}
			if got := getClientIP(req); got != tc.want {
				t.Errorf("getClientIP = %q, want %q", got, tc.want)
			}
		})
	}
}
