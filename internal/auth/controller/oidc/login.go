package oidc

import (
	"errors"
	"log/slog"
	"net/http"

	appoidc "github.com/KasumiMercury/primind-auth/internal/auth/app/oidc"
	"github.com/KasumiMercury/primind-auth/internal/auth/domain/autherr"
	domainoidc "github.com/KasumiMercury/primind-auth/internal/auth/domain/oidc"
)

// Login starts the authorization code flow and redirects to the provider.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.params == nil {
		renderError(w, http.StatusServiceUnavailable, ErrLoginNotConfigured)

		return
	}

	query := r.URL.Query()

	provider := domainoidc.ProviderID(query.Get("provider"))
	if provider == "" {
		provider = h.defaultProvider
	}

	result, err := h.params.Generate(ctx, &appoidc.GenerateRequest{
		Provider: provider,
		ReturnTo: query.Get("return_to"),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "failed to start login",
			slog.String("provider", string(provider)),
			slog.String("error", err.Error()),
		)

		switch {
		case errors.Is(err, appoidc.ErrProviderUnsupported),
			errors.Is(err, domainoidc.ErrReturnToInvalid):
			renderError(w, http.StatusBadRequest, err)
		case errors.Is(err, appoidc.ErrOIDCNotConfigured):
			renderError(w, http.StatusServiceUnavailable, err)
		default:
			renderError(w, http.StatusInternalServerError, nil)
		}

		return
	}

	noStore(w)
	http.Redirect(w, r, result.AuthorizationURL, http.StatusFound)
}

// Callback completes the flow, sets the session cookie and redirects to the
// stored return-to path.
func (h *Handler) Callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.login == nil {
		renderError(w, http.StatusServiceUnavailable, ErrLoginNotConfigured)

		return
	}

	query := r.URL.Query()

	result, err := h.login.Login(ctx, &appoidc.LoginRequest{
		Code:             query.Get("code"),
		State:            query.Get("state"),
		Error:            query.Get("error"),
		ErrorDescription: query.Get("error_description"),
	})
	if err != nil {
		attrs := []any{slog.String("error", err.Error())}
		for _, attr := range autherr.LogAttrs(err) {
			attrs = append(attrs, attr)
		}

		h.logger.WarnContext(ctx, "login callback failed", attrs...)

		if _, ok := autherr.CodeOf(err); ok {
			renderError(w, statusFor(err), err)
		} else {
			renderError(w, http.StatusInternalServerError, nil)
		}

		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName(),
		Value:    result.SessionToken,
		Path:     "/",
		Expires:  result.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure(),
		SameSite: http.SameSiteLaxMode,
	})

	returnTo := result.ReturnTo
	if !domainoidc.IsLocalPath(returnTo) {
		returnTo = "/"
	}

	noStore(w)
	http.Redirect(w, r, returnTo, http.StatusFound)
}

func noStore(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
}
