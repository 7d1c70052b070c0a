package logout

//go:generate mockgen -destination=mock_logout_provider.go -package=logout . LogoutProvider
