package auth

const (
	AuthServiceName = "auth.v1.AuthService"

	GetAccessTokenProcedure              = "/auth.v1.AuthService/GetAccessToken"
	GetAccessTokenForConnectionProcedure = "/auth.v1.AuthService/GetAccessTokenForConnection"
	GetSessionProcedure                  = "/auth.v1.AuthService/GetSession"
	LogoutProcedure                      = "/auth.v1.AuthService/Logout"

	// AuthErrorCodeHeader carries the autherr code of a failed call.
	AuthErrorCodeHeader = "Auth-Error-Code"
)

type GetAccessTokenRequest struct {
	Refresh bool `json:"refresh,omitempty"`
}

type GetAccessTokenForConnectionRequest struct {
	Connection string `json:"connection"`
	LoginHint  string `json:"loginHint,omitempty"`
}

type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
	Scope       string `json:"scope,omitempty"`
	// ExpiresAt is a unix timestamp in seconds; zero when unknown.
	ExpiresAt int64 `json:"expiresAt,omitempty"`
}

type GetSessionRequest struct{}

type GetSessionResponse struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
}

type LogoutRequest struct{}

type LogoutResponse struct {
	EndSessionURL string `json:"endSessionUrl,omitempty"`
}
