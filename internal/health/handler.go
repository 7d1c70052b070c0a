package health

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// LiveHandler reports that the process is serving; dependencies are not checked.
func (c *Checker) LiveHandler(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, http.StatusOK, Response{Status: StatusHealthy, Version: c.version})
}

// ReadyHandler runs every registered dependency check and answers 503 when
// any of them fails.
func (c *Checker) ReadyHandler(w http.ResponseWriter, r *http.Request) {
	status := c.Check(r.Context())

	code := http.StatusOK
	if status.Status != StatusHealthy {
		code = http.StatusServiceUnavailable
	}

	writeResponse(w, code, status)
}

func writeResponse(w http.ResponseWriter, code int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("failed to write health response", slog.String("error", err.Error()))
	}
}
