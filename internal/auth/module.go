package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/netip"
	"sort"
	"time"

	"connectrpc.com/connect"
	"connectrpc.com/otelconnect"
	applogout "github.com/KasumiMercury/primind-auth/internal/auth/app/logout"
	appoidc "github.com/KasumiMercury/primind-auth/internal/auth/app/oidc"
	appsession "github.com/KasumiMercury/primind-auth/internal/auth/app/session"
	apptoken "github.com/KasumiMercury/primind-auth/internal/auth/app/token"
	authconfig "github.com/KasumiMercury/primind-auth/internal/auth/config"
	oidcctrl "github.com/KasumiMercury/primind-auth/internal/auth/controller/oidc"
	domainoidc "github.com/KasumiMercury/primind-auth/internal/auth/domain/oidc"
	"github.com/KasumiMercury/primind-auth/internal/auth/domain/oidcidentity"
	domainsession "github.com/KasumiMercury/primind-auth/internal/auth/domain/session"
	"github.com/KasumiMercury/primind-auth/internal/auth/infra/interceptor"
	sessionjwt "github.com/KasumiMercury/primind-auth/internal/auth/infra/jwt"
	infraoidc "github.com/KasumiMercury/primind-auth/internal/auth/infra/oidc"
	"github.com/KasumiMercury/primind-auth/internal/auth/infra/repository"
	authsvc "github.com/KasumiMercury/primind-auth/internal/auth/infra/service"
	"github.com/KasumiMercury/primind-auth/internal/observability/logging"
	"github.com/KasumiMercury/primind-auth/internal/observability/middleware"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"gorm.io/gorm"
)

const moduleName logging.Module = "auth"

const providerHTTPTimeout = 10 * time.Second

var ErrRepositoryMissing = errors.New("auth repository is not configured")

type Repositories struct {
	Params       domainoidc.ParamsRepository
	Sessions     domainsession.SessionRepository
	OIDCIdentity oidcidentity.OIDCIdentityRepository
	UserIdentity appoidc.UserWithOIDCIdentityRepository
}

// NewRepositories picks redis for params and sessions and postgres for users
// when a client is given, and in-memory stores otherwise.
func NewRepositories(redisClient *redis.Client, db *gorm.DB) Repositories {
	var repos Repositories

	if redisClient != nil {
		repos.Params = repository.NewOIDCParamsRepository(redisClient)
		repos.Sessions = repository.NewSessionRepository(redisClient)
	} else {
		repos.Params = repository.NewInMemoryOIDCParamsRepository()
		repos.Sessions = repository.NewInMemorySessionRepository()
	}

	if db != nil {
		repos.OIDCIdentity = repository.NewOIDCIdentityRepository(db)
		repos.UserIdentity = repository.NewUserWithIdentityRepository(db)
	} else {
		store := repository.NewInMemoryUserStore()
		repos.OIDCIdentity = store
		repos.UserIdentity = store
	}

	return repos
}

func (r Repositories) Validate() error {
	switch {
	case r.Params == nil:
		return fmt.Errorf("%w: params", ErrRepositoryMissing)
	case r.Sessions == nil:
		return fmt.Errorf("%w: sessions", ErrRepositoryMissing)
	case r.OIDCIdentity == nil:
		return fmt.Errorf("%w: oidc identity", ErrRepositoryMissing)
	case r.UserIdentity == nil:
		return fmt.Errorf("%w: user identity", ErrRepositoryMissing)
	}

	return nil
}

type WebOptions struct {
	BackchannelLogoutRPS   float64
	BackchannelLogoutBurst int
	TrustedProxies         []netip.Prefix
}

// Handlers holds the Connect service and the browser routes of the module.
type Handlers struct {
	RPCPath string
	RPC     http.Handler
	Web     http.Handler
}

// Register mounts the Connect service at its path and the browser routes
// under /auth/.
func (h *Handlers) Register(mux *http.ServeMux) {
	mux.Handle(h.RPCPath, h.RPC)
	mux.Handle("/auth/", h.Web)
}

// NewHTTPHandler wires the auth module.
func NewHTTPHandler(ctx context.Context, repos Repositories, webOpts WebOptions) (*Handlers, error) {
	logger := slog.Default().WithGroup("auth")

	logger.Debug("loading auth configuration")

	authCfg, err := authconfig.Load()
	if err != nil {
		logger.Error("failed to load auth config", slog.String("error", err.Error()))

		return nil, err
	}

	if err := repos.Validate(); err != nil {
		logger.Error("auth repositories incomplete", slog.String("error", err.Error()))

		return nil, err
	}

	providers, err := newProviders(ctx, logger, authCfg)
	if err != nil {
		return nil, err
	}

	var (
		paramsProviders = make(map[domainoidc.ProviderID]appoidc.OIDCProvider, len(providers))
		loginProviders  = make(map[domainoidc.ProviderID]appoidc.OIDCProviderWithLogin, len(providers))
		tokenProviders  = make(map[domainoidc.ProviderID]apptoken.TokenProvider, len(providers))
		logoutProviders = make(map[domainoidc.ProviderID]applogout.LogoutProvider, len(providers))
	)

	for id, p := range providers {
		paramsProviders[id] = p
		loginProviders[id] = p
		tokenProviders[id] = p
		logoutProviders[id] = p
	}

	jwtGenerator := sessionjwt.NewSessionJWTGenerator(authCfg.Session)
	jwtValidator := sessionjwt.NewSessionJWTValidator(authCfg.Session)

	sessions := appsession.NewValidateSessionHandler(repos.Sessions, jwtValidator)
	tokens := apptoken.NewAccessTokenHandler(tokenProviders, sessions, repos.Sessions, authCfg.Session)
	logout := applogout.NewLogoutHandler(logoutProviders, sessions, repos.Sessions)

	var (
		paramsGenerator appoidc.OIDCParamsGenerator
		loginHandler    appoidc.OIDCLoginUseCase
	)

	if len(providers) > 0 {
		paramsGenerator = appoidc.NewParamsGenerator(paramsProviders, repos.Params)
		loginHandler = appoidc.NewLoginHandler(
			loginProviders,
			repos.Params,
			repos.Sessions,
			repos.OIDCIdentity,
			repos.UserIdentity,
			jwtGenerator,
			authCfg.Session,
		)

		logger.Info("login handler initialized")
	} else {
		logger.Warn("oidc configuration not provided; login endpoints will be disabled")
	}

	interceptorOpts, err := newInterceptorOptions(authCfg.Session.Cookie())
	if err != nil {
		return nil, err
	}

	rpcPath, rpcHandler := authsvc.NewAuthServiceHandler(
		authsvc.NewService(tokens, sessions, logout),
		interceptorOpts,
	)
	logger.Info("auth service handler registered", slog.String("path", rpcPath))

	web := oidcctrl.NewHandler(oidcctrl.Config{
		Params:             paramsGenerator,
		Login:              loginHandler,
		Logout:             logout,
		SessionCfg:         authCfg.Session,
		DefaultProvider:    defaultProvider(providers),
		BackchannelLimiter: oidcctrl.NewIPRateLimiter(webOpts.BackchannelLogoutRPS, webOpts.BackchannelLogoutBurst, webOpts.TrustedProxies...),
	})

	webMux := http.NewServeMux()
	web.Routes(webMux)

	return &Handlers{
		RPCPath: rpcPath,
		RPC:     rpcHandler,
		Web:     middleware.HTTPLogging(moduleName, webMux),
	}, nil
}

func newProviders(
	ctx context.Context,
	logger *slog.Logger,
	authCfg *authconfig.AuthConfig,
) (map[domainoidc.ProviderID]*infraoidc.RPProvider, error) {
	providers := make(map[domainoidc.ProviderID]*infraoidc.RPProvider)

	if authCfg.OIDC == nil {
		logger.Warn("no oidc provider configured, sign-in is disabled")

		return providers, nil
	}

	logger.Debug("initializing oidc providers")

	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   providerHTTPTimeout,
	}

	for providerID, providerCfg := range authCfg.OIDC.Providers {
		rpProvider, err := infraoidc.NewRPProvider(ctx, providerCfg, infraoidc.WithHTTPClient(httpClient))
		if err != nil {
			logger.Error(
				"failed to initialize oidc provider",
				slog.String("provider", string(providerID)),
				slog.String("error", err.Error()),
			)

			return nil, fmt.Errorf("failed to initialize OIDC provider %s: %w", providerID, err)
		}

		providers[providerID] = rpProvider
		logger.Info("initialized oidc provider", slog.String("provider", string(providerID)))
	}

	return providers, nil
}

func newInterceptorOptions(cookieName string) (connect.HandlerOption, error) {
	otelInterceptor, err := otelconnect.NewInterceptor()
	if err != nil {
		return nil, fmt.Errorf("failed to create otelconnect interceptor: %w", err)
	}

	return connect.WithInterceptors(
		otelInterceptor,
		middleware.ConnectLoggingInterceptor(moduleName),
		interceptor.SessionTokenInterceptor(cookieName),
	), nil
}

// defaultProvider is used by /auth/login without a provider parameter.
func defaultProvider(providers map[domainoidc.ProviderID]*infraoidc.RPProvider) domainoidc.ProviderID {
	for _, preferred := range []domainoidc.ProviderID{domainoidc.ProviderDefault, domainoidc.ProviderGoogle} {
		if _, ok := providers[preferred]; ok {
			return preferred
		}
	}

	ids := make([]string, 0, len(providers))
	for id := range providers {
		ids = append(ids, string(id))
	}

	if len(ids) == 0 {
		return ""
	}

	sort.Strings(ids)

	return domainoidc.ProviderID(ids[0])
}
