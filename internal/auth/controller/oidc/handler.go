package oidc

import (
	"log/slog"
	"net/http"

	applogout "github.com/KasumiMercury/primind-auth/internal/auth/app/logout"
	appoidc "github.com/KasumiMercury/primind-auth/internal/auth/app/oidc"
	sessioncfg "github.com/KasumiMercury/primind-auth/internal/auth/config/session"
	domainoidc "github.com/KasumiMercury/primind-auth/internal/auth/domain/oidc"
)

const (
	LoginPath             = "/auth/login"
	CallbackPath          = "/auth/callback"
	LogoutPath            = "/auth/logout"
	BackchannelLogoutPath = "/auth/backchannel-logout"

	logoutTokenField = "logout_token"
)

// Handler serves the browser side of the login and logout flows.
type Handler struct {
	params          appoidc.OIDCParamsGenerator
	login           appoidc.OIDCLoginUseCase
	logout          applogout.LogoutUseCase
	sessionCfg      *sessioncfg.Config
	defaultProvider domainoidc.ProviderID
	limiter         *IPRateLimiter
	logger          *slog.Logger
}

type Config struct {
	Params     appoidc.OIDCParamsGenerator
	Login      appoidc.OIDCLoginUseCase
	Logout     applogout.LogoutUseCase
	SessionCfg *sessioncfg.Config
	// DefaultProvider is used when /auth/login has no provider parameter.
	DefaultProvider domainoidc.ProviderID
	// BackchannelLimiter throttles backchannel logout calls per client IP.
	BackchannelLimiter *IPRateLimiter
}

func NewHandler(cfg Config) *Handler {
	return &Handler{
		params:          cfg.Params,
		login:           cfg.Login,
		logout:          cfg.Logout,
		sessionCfg:      cfg.SessionCfg,
		defaultProvider: cfg.DefaultProvider,
		limiter:         cfg.BackchannelLimiter,
		logger:          slog.Default().WithGroup("auth").WithGroup("web"),
	}
}

// Routes registers the login, callback and logout endpoints.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET "+LoginPath, h.Login)
	mux.HandleFunc("GET "+CallbackPath, h.Callback)
	mux.HandleFunc("GET "+LogoutPath, h.Logout)
	mux.HandleFunc("POST "+BackchannelLogoutPath, h.BackchannelLogout)
}

func (h *Handler) cookieName() string {
	if h.sessionCfg == nil {
		return sessioncfg.DefaultCookieName
	}

	return h.sessionCfg.Cookie()
}

func (h *Handler) cookieSecure() bool {
	return h.sessionCfg == nil || h.sessionCfg.CookieSecure
}
