package oidc

import (
	"encoding/json"
	"log/slog"
	"net/http"

	applogout "github.com/KasumiMercury/primind-auth/internal/auth/app/logout"
	"github.com/KasumiMercury/primind-auth/internal/auth/domain/autherr"
)

type backchannelErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// Logout clears the session cookie and redirects to the provider's end
// session endpoint when there is one.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.logout == nil {
		renderError(w, http.StatusServiceUnavailable, ErrLogoutNotConfigured)

		return
	}

	var sessionToken string
	if cookie, err := r.Cookie(h.cookieName()); err == nil {
		sessionToken = cookie.Value
	}

	result, err := h.logout.Logout(ctx, &applogout.LogoutRequest{SessionToken: sessionToken})
	if err != nil {
		h.logger.ErrorContext(ctx, "logout failed", slog.String("error", err.Error()))
		renderError(w, http.StatusInternalServerError, nil)

		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure(),
		SameSite: http.SameSiteLaxMode,
	})

	target := result.EndSessionURL
	if target == "" {
		target = "/"
	}

	noStore(w)
	http.Redirect(w, r, target, http.StatusFound)
}

// BackchannelLogout receives a logout token from the provider.
func (h *Handler) BackchannelLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	noStore(w)

	if h.limiter != nil && !h.limiter.AllowRequest(r) {
		writeJSON(w, http.StatusTooManyRequests, backchannelErrorResponse{Error: "rate_limited"})

		return
	}

	if h.logout == nil {
		writeJSON(w, http.StatusNotImplemented, backchannelErrorResponse{Error: "not_configured"})

		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBackchannelBody)

	var logoutToken string
	if err := r.ParseForm(); err == nil {
		logoutToken = r.PostForm.Get(logoutTokenField)
	}

	result, err := h.logout.HandleBackchannelLogout(ctx, logoutToken)
	if err != nil {
		code, ok := autherr.CodeOf(err)
		if !ok {
			h.logger.ErrorContext(ctx, "backchannel logout failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, backchannelErrorResponse{Error: "server_error"})

			return
		}

		writeJSON(w, statusFor(err), backchannelErrorResponse{
			Error:            string(code),
			ErrorDescription: err.Error(),
		})

		return
	}

	h.logger.InfoContext(ctx, "backchannel logout processed",
		slog.String("provider", string(result.Provider)),
		slog.Int("deleted_sessions", result.DeletedSessions),
	)

	w.WriteHeader(http.StatusOK)
}

const maxBackchannelBody = 64 << 10

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("failed to write response", slog.String("error", err.Error()))
	}
}
