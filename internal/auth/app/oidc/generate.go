package oidc

//go:generate mockgen -destination=mock_oidc_provider.go -package=oidc . OIDCProvider,OIDCProviderWithLogin
//go:generate mockgen -destination=mock_session_token_generator.go -package=oidc . SessionTokenGenerator
