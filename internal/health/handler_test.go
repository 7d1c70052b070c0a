package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLiveHandler(t *testing.T) {
	t.Parallel()

	checker := NewChecker("test")
	checker.Register("redis", func(context.Context) error { return errors.New("down") })

	rec := httptest.NewRecorder()
	checker.LiveHandler(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestReadyHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		checks     map[string]CheckFunc
		wantStatus int
		wantHealth Status
	}{
		{
			name:       "no dependencies",
			wantStatus: http.StatusOK,
			wantHealth: StatusHealthy,
		},
		{
			name: "all healthy",
			checks: map[string]CheckFunc{
				"redis":    func(context.Context) error { return nil },
				"postgres": func(context.Context) error { return nil },
			},
			wantStatus: http.StatusOK,
			wantHealth: StatusHealthy,
		},
		{
			name: "one unhealthy",
			checks: map[string]CheckFunc{
				"redis":    func(context.Context) error { return errors.New("connection refused") },
				"postgres": func(context.Context) error { return nil },
			},
			wantStatus: http.StatusServiceUnavailable,
			wantHealth: StatusUnhealthy,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			checker := NewChecker("test")
			for name, check := range tt.checks {
				checker.Register(name, check)
			}

			rec := httptest.NewRecorder()
			checker.ReadyHandler(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var resp Response
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if resp.Status != tt.wantHealth {
				t.Fatalf("health = %q, want %q", resp.Status, tt.wantHealth)
			}

			if len(resp.Dependencies) != len(tt.checks) {
				t.Fatalf("dependencies = %v, want %d entries", resp.Dependencies, len(tt.checks))
			}
		})
	}
}
