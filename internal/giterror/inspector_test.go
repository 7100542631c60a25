package giterror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	gogithub "github.com/google/go-github/v55/github"
)

func errorResponse(status int) error {
	return &gogithub.ErrorResponse{
		Response: &http.Response{StatusCode: status},
		Message:  http.StatusText(status),
	}
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestInspector_IsAuthError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"typed 401", errorResponse(http.StatusUnauthorized), true},
		{"typed 403", errorResponse(http.StatusForbidden), true},
		{"typed 404 is not auth", errorResponse(http.StatusNotFound), false},
		{"wrapped typed 401", fmt.Errorf("call failed: %w", errorResponse(http.StatusUnauthorized)), true},
		{"string bad credentials", errors.New("GET /user: bad credentials"), true},
		{"unrelated", errors.New("something else"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsAuthError(tt.err); got != tt.want {
				t.Errorf("IsAuthError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestInspector_IsNotFoundError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"typed 404", errorResponse(http.StatusNotFound), true},
		{"typed 401 is not not-found", errorResponse(http.StatusUnauthorized), false},
		{"string not found", errors.New("repository not found"), true},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsNotFoundError(tt.err); got != tt.want {
				t.Errorf("IsNotFoundError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestInspector_IsRateLimitError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"typed rate limit", &gogithub.RateLimitError{}, true},
		{"typed abuse rate limit", &gogithub.AbuseRateLimitError{}, true},
		{"wrapped typed rate limit", fmt.Errorf("fetch: %w", &gogithub.RateLimitError{}), true},
		{"string rate limit", errors.New("API rate limit exceeded"), true},
		{"unrelated", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsRateLimitError(tt.err); got != tt.want {
				t.Errorf("IsRateLimitError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestInspector_IsDecodeError(t *testing.T) {
	inspector := NewInspector()

	var syntaxTarget struct{ N int }
	syntaxErr := json.Unmarshal([]byte("{not json"), &syntaxTarget)
	typeErr := json.Unmarshal([]byte(`{"N":"nope"}`), &syntaxTarget)

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"json syntax error", syntaxErr, true},
		{"json type error", typeErr, true},
		{"wrapped syntax error", fmt.Errorf("page decode: %w", syntaxErr), true},
		{"string invalid character", errors.New("invalid character '<' looking for beginning of value"), true},
		{"unrelated", errors.New("boom"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsDecodeError(tt.err); got != tt.want {
				t.Errorf("IsDecodeError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestInspector_IsNetworkError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"net.Error in chain", fmt.Errorf("request: %w", timeoutErr{}), true},
		{"string connection refused", errors.New("dial tcp 127.0.0.1:443: connection refused"), true},
		{"string no such host", errors.New("lookup api.example.com: no such host"), true},
		{"unrelated", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsNetworkError(tt.err); got != tt.want {
				t.Errorf("IsNetworkError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
