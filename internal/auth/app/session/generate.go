package session

//go:generate mockgen -destination=mock_token_verifier.go -package=session github.com/KasumiMercury/primind-auth/internal/auth/app/session TokenVerifier
