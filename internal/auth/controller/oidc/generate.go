package oidc

//go:generate mockgen -destination=mock_oidc_usecase.go -package=oidc github.com/KasumiMercury/primind-auth/internal/auth/app/oidc OIDCParamsGenerator,OIDCLoginUseCase
//go:generate mockgen -destination=mock_logout_usecase.go -package=oidc github.com/KasumiMercury/primind-auth/internal/auth/app/logout LogoutUseCase
