package auth

//go:generate mockgen -destination=mock_service_token.go -package=auth github.com/KasumiMercury/primind-auth/internal/auth/app/token AccessTokenUseCase
//go:generate mockgen -destination=mock_service_session.go -package=auth github.com/KasumiMercury/primind-auth/internal/auth/app/session ValidateSessionUseCase
//go:generate mockgen -destination=mock_service_logout.go -package=auth github.com/KasumiMercury/primind-auth/internal/auth/app/logout LogoutUseCase
