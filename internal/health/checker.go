package health

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"
)

type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

const defaultCheckTimeout = 2 * time.Second

type CheckFunc func(ctx context.Context) error

type DependencyStatus struct {
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
}

type Response struct {
	Status       Status                      `json:"status"`
	Version      string                      `json:"version,omitempty"`
	Dependencies map[string]DependencyStatus `json:"dependencies,omitempty"`
}

type Checker struct {
	version string
	timeout time.Duration

	mu     sync.RWMutex
	checks map[string]CheckFunc
}

func NewChecker(version string) *Checker {
	return &Checker{
		version: version,
		timeout: defaultCheckTimeout,
		checks:  make(map[string]CheckFunc),
	}
}

func (c *Checker) Register(name string, check CheckFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.checks[name] = check
}

// Check runs every registered dependency check concurrently.
func (c *Checker) Check(ctx context.Context) Response {
	c.mu.RLock()
	names := make([]string, 0, len(c.checks))
	for name := range c.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	checks := make([]CheckFunc, len(names))
	for i, name := range names {
		checks[i] = c.checks[name]
	}
	c.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	results := make([]DependencyStatus, len(names))

	var wg sync.WaitGroup
	for i := range names {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			if err := checks[i](ctx); err != nil {
				slog.WarnContext(ctx, "dependency check failed",
					slog.String("dependency", names[i]),
					slog.String("error", err.Error()),
				)

				results[i] = DependencyStatus{Status: StatusUnhealthy, Error: err.Error()}

				return
			}

			results[i] = DependencyStatus{Status: StatusHealthy}
		}(i)
	}
	wg.Wait()

	resp := Response{Status: StatusHealthy, Version: c.version}

	if len(names) > 0 {
		resp.Dependencies = make(map[string]DependencyStatus, len(names))
	}

	for i, name := range names {
		resp.Dependencies[name] = results[i]
		if results[i].Status != StatusHealthy {
			resp.Status = StatusUnhealthy
		}
	}

	return resp
}
