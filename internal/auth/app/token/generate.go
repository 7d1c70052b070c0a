package token

//go:generate mockgen -destination=mock_token_provider.go -package=token . TokenProvider
